package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu     sync.Mutex
	values []string
	calls  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{calls: make(chan struct{}, 16)}
}

func (r *recorder) fn(v string) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
	r.calls <- struct{}{}
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestPushTrailingEdge(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := newRecorder()
	d := New(30*time.Millisecond, rec.fn)

	for _, v := range []string{"l", "la", "lag", "lago", "lagos"} {
		d.Push(v)
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, d.Pending())

	select {
	case <-rec.calls:
	case <-time.After(time.Second):
		t.Fatal("debounced function was not called")
	}

	// Nothing else may arrive after the single trailing call.
	select {
	case <-rec.calls:
		t.Fatal("unexpected second call")
	case <-time.After(80 * time.Millisecond):
	}

	assert.Equal(t, []string{"lagos"}, rec.got())
	assert.False(t, d.Pending())
}

func TestFlush(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := newRecorder()
	d := New(time.Hour, rec.fn)

	d.Push("abuja")
	d.Flush()

	require.Equal(t, []string{"abuja"}, rec.got())
	assert.False(t, d.Pending())

	d.Flush()
	assert.Len(t, rec.got(), 1)
}

func TestCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := newRecorder()
	d := New(20*time.Millisecond, rec.fn)

	d.Push("ikeja")
	d.Cancel()
	assert.False(t, d.Pending())

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.got())
}

func TestZeroDelayIsSynchronous(t *testing.T) {
	rec := newRecorder()
	d := New(0, rec.fn)

	d.Push("now")

	assert.Equal(t, []string{"now"}, rec.got())
	assert.False(t, d.Pending())
}
