package realtime

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const visitsChannel = "visits_changed"

// fakeConn mensimulasikan koneksi LISTEN: notifikasi dari src, error dari fail.
type fakeConn struct {
	src      chan *pgconn.Notification
	fail     chan error
	connects atomic.Int32
	released atomic.Int32

	mu       sync.Mutex
	channels []string
}

func newFakeConn() *fakeConn {
	return &fakeConn{src: make(chan *pgconn.Notification, 4), fail: make(chan error, 1)}
}

func (f *fakeConn) connect(_ context.Context, channels []string) (waitFunc, func(), error) {
	f.connects.Add(1)
	f.mu.Lock()
	f.channels = channels
	f.mu.Unlock()

	wait := func(ctx context.Context) (*pgconn.Notification, error) {
		select {
		case n := <-f.src:
			return n, nil
		case err := <-f.fail:
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return wait, func() { f.released.Add(1) }, nil
}

func receive(t *testing.T, ch <-chan Notification) Notification {
	t.Helper()
	select {
	case n, ok := <-ch:
		require.True(t, ok, "subscription closed early")
		return n
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
		return Notification{}
	}
}

func TestListener_FansOutOverOneConnection(t *testing.T) {
	defer goleak.VerifyNone(t)

	conn := newFakeConn()
	l := newListener(conn.connect, visitsChannel)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)

	a, cancelA, err := l.Subscribe(ctx, visitsChannel)
	require.NoError(t, err)
	b, cancelB, err := l.Subscribe(ctx, visitsChannel)
	require.NoError(t, err)
	c, cancelC, err := l.Subscribe(ctx, visitsChannel)
	require.NoError(t, err)
	defer cancelA()
	defer cancelB()

	go func() { done <- l.Run(ctx) }()

	conn.src <- &pgconn.Notification{Channel: visitsChannel, Payload: `{"op":"UPDATE","id":"goa-jatijajar-2024-5"}`}
	for _, ch := range []<-chan Notification{a, b, c} {
		n := receive(t, ch)
		vc, err := DecodeVisitChange(n.Payload)
		require.NoError(t, err)
		assert.Equal(t, "goa-jatijajar-2024-5", vc.ID)
	}
	assert.Equal(t, int32(1), conn.connects.Load(), "three subscribers share one connection")

	cancelC()
	cancelC() // idempoten
	_, open := <-c
	assert.False(t, open)

	stop()
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), conn.released.Load())

	_, open = <-a
	assert.False(t, open, "subscriptions end when the listener stops")
}

func TestListener_ReconnectsAfterConnectionLoss(t *testing.T) {
	defer goleak.VerifyNone(t)

	conn := newFakeConn()
	l := newListener(conn.connect, visitsChannel)
	l.backoff = time.Millisecond

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	sub, cancel, err := l.Subscribe(ctx, visitsChannel)
	require.NoError(t, err)
	defer cancel()

	go func() { done <- l.Run(ctx) }()

	conn.fail <- errors.New("conn closed")
	require.Eventually(t, func() bool { return conn.connects.Load() == 2 }, time.Second, time.Millisecond)
	conn.src <- &pgconn.Notification{Channel: visitsChannel, Payload: `{"op":"INSERT","id":"curug-sikopel-2024-6"}`}

	n := receive(t, sub)
	assert.Contains(t, n.Payload, "curug-sikopel-2024-6")

	conn.mu.Lock()
	assert.Equal(t, []string{visitsChannel}, conn.channels)
	conn.mu.Unlock()

	stop()
	require.NoError(t, <-done)
	assert.Equal(t, int32(2), conn.released.Load())
}

func TestListener_IgnoresUnknownChannel(t *testing.T) {
	defer goleak.VerifyNone(t)

	conn := newFakeConn()
	l := newListener(conn.connect, visitsChannel)

	_, _, err := l.Subscribe(context.Background(), "other_channel")
	assert.Error(t, err)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	sub, cancel, err := l.Subscribe(ctx, visitsChannel)
	require.NoError(t, err)
	defer cancel()
	go func() { done <- l.Run(ctx) }()

	conn.src <- &pgconn.Notification{Channel: "other_channel", Payload: "x"}
	conn.src <- &pgconn.Notification{Channel: visitsChannel, Payload: `{"op":"DELETE"}`}
	assert.Equal(t, `{"op":"DELETE"}`, receive(t, sub).Payload)

	stop()
	require.NoError(t, <-done)
}

func TestListener_StopsWhileConnectFails(t *testing.T) {
	defer goleak.VerifyNone(t)

	var attempts atomic.Int32
	l := newListener(func(context.Context, []string) (waitFunc, func(), error) {
		attempts.Add(1)
		return nil, nil, errors.New("connection refused")
	}, visitsChannel)
	l.backoff = time.Millisecond

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	require.Eventually(t, func() bool { return attempts.Load() >= 2 }, time.Second, time.Millisecond)
	stop()
	require.NoError(t, <-done)
}

func TestDecodeVisitChangeInvalid(t *testing.T) {
	_, err := DecodeVisitChange("not-json")
	assert.Error(t, err)
}
