// internal/events/bus.go
package events

import (
	"sync"
	"sync/atomic"
)

// Bus adalah kanal publish/subscribe bertipe. Kode akses data mem-publish,
// lapisan presentasi (logger, metrik, stream notifikasi) berlangganan.
//
// Publish tidak pernah memblokir: subscriber yang buffer-nya penuh akan
// kehilangan event tersebut dan jumlahnya tercatat di Dropped.
type Bus[T any] struct {
	mu      sync.RWMutex
	subs    map[uint64]chan T
	nextID  uint64
	closed  bool
	dropped atomic.Uint64
}

func NewBus[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[uint64]chan T)}
}

// Publish mengirim event ke semua subscriber aktif. Aman dipanggil pada Bus nil.
func (b *Bus[T]) Publish(evt T) {
	if b == nil {
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
			b.dropped.Add(1)
		}
	}
}

// Subscribe mendaftarkan subscriber baru dengan buffer tertentu.
// Fungsi cancel yang dikembalikan menutup channel dan idempoten; pemanggil wajib
// memanggilnya di setiap jalur keluar.
func (b *Bus[T]) Subscribe(buffer int) (<-chan T, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan T, buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Subscribers mengembalikan jumlah subscriber aktif.
func (b *Bus[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped mengembalikan jumlah event yang dibuang karena buffer subscriber penuh.
func (b *Bus[T]) Dropped() uint64 { return b.dropped.Load() }

// Close menutup semua subscriber. Publish setelah Close diabaikan.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
