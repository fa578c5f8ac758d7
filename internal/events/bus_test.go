package events_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/apperrors"
	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBus_PublishSubscribe(t *testing.T) {
	bus := events.NewBus[int]()
	defer bus.Close()

	a, cancelA := bus.Subscribe(4)
	b, cancelB := bus.Subscribe(4)
	defer cancelA()
	require.Equal(t, 2, bus.Subscribers())

	bus.Publish(1)
	bus.Publish(2)

	assert.Equal(t, 1, <-a)
	assert.Equal(t, 2, <-a)
	assert.Equal(t, 1, <-b)

	cancelB()
	cancelB() // idempoten
	_, open := <-drain(b)
	assert.False(t, open)
	assert.Equal(t, 1, bus.Subscribers())
}

// drain membuang sisa event lalu mengembalikan channel yang sudah tertutup.
func drain(ch <-chan int) <-chan int {
	for range ch {
	}
	return ch
}

func TestBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := events.NewBus[string]()
	defer bus.Close()

	ch, cancel := bus.Subscribe(1)
	defer cancel()

	bus.Publish("a")
	bus.Publish("b") // buffer penuh
	bus.Publish("c")

	assert.Equal(t, "a", <-ch)
	assert.Equal(t, uint64(2), bus.Dropped())
}

func TestBus_CloseEndsSubscribers(t *testing.T) {
	bus := events.NewBus[int]()
	ch, cancel := bus.Subscribe(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range ch {
		}
	}()

	bus.Close()
	wg.Wait()
	cancel() // aman setelah Close
	bus.Publish(9)

	late, lateCancel := bus.Subscribe(1)
	defer lateCancel()
	_, open := <-late
	assert.False(t, open, "subscribe after close returns a closed channel")
}

func TestBus_NilPublishIsNoop(t *testing.T) {
	var bus *events.Bus[int]
	assert.NotPanics(t, func() { bus.Publish(1) })
}

func TestReportStoreError(t *testing.T) {
	bus := events.NewBus[events.ErrorEvent]()
	defer bus.Close()
	ch, cancel := bus.Subscribe(8)
	defer cancel()

	events.ReportStoreError(bus, apperrors.NotFound("visits.get", "visits/x"))
	events.ReportStoreError(bus, apperrors.Validation("visits.update", "negatif"))
	events.ReportStoreError(bus, &apperrors.Error{Kind: apperrors.KindNetwork, Op: "visits.update", Path: "visits/goa-jatijajar-2024-5", Err: errors.New("dial tcp")})

	require.Len(t, ch, 1)
	evt := <-ch
	assert.Equal(t, apperrors.KindNetwork, evt.Kind)
	assert.Equal(t, "visits/goa-jatijajar-2024-5", evt.Path)
	assert.Equal(t, "Gagal menyimpan data kunjungan (visits/goa-jatijajar-2024-5): koneksi terputus, silakan coba lagi", evt.Message)
}

func TestErrorEvent_Redacted(t *testing.T) {
	evt := events.NewErrorEvent(&apperrors.Error{Kind: apperrors.KindNetwork, Op: "visits.list", Path: "destinations/pantai-menganti/visits", Err: errors.New("dial tcp")})
	require.Equal(t, "Gagal memuat daftar kunjungan (destinations/pantai-menganti/visits): koneksi terputus, silakan coba lagi", evt.Message)

	red := evt.Redacted()
	assert.Empty(t, red.Path)
	assert.Equal(t, "Gagal memuat daftar kunjungan: koneksi terputus, silakan coba lagi", red.Message)
	assert.Equal(t, evt.Kind, red.Kind)
	assert.Equal(t, "destinations/pantai-menganti/visits", evt.Path, "original event is unchanged")

	plain := events.NewErrorEvent(errors.New("boom"))
	assert.Equal(t, plain, plain.Redacted())
}
