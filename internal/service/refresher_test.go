package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRefresher_FiresOnInterval(t *testing.T) {
	var fires atomic.Int32
	r := NewRefresher(time.Second, func(context.Context) { fires.Add(1) }, zap.NewNop())

	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	deadline := time.After(3 * time.Second)
	for fires.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("scheduler never fired")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestRefresher_StopPreventsFurtherFires(t *testing.T) {
	var fires atomic.Int32
	r := NewRefresher(time.Second, func(context.Context) { fires.Add(1) }, zap.NewNop())

	require.NoError(t, r.Start(context.Background()))
	time.Sleep(1200 * time.Millisecond)
	r.Stop()

	after := fires.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, after, fires.Load())
}

func TestRefresher_SetIntervalRestartsSchedule(t *testing.T) {
	var fires atomic.Int32
	r := NewRefresher(time.Hour, func(context.Context) { fires.Add(1) }, zap.NewNop())

	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()
	assert.Equal(t, time.Hour, r.Interval())

	require.NoError(t, r.SetInterval(context.Background(), time.Second))
	assert.Equal(t, time.Second, r.Interval())

	deadline := time.After(3 * time.Second)
	for fires.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("scheduler never fired after reschedule")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestRefresher_SetIntervalRejectsSubSecond(t *testing.T) {
	r := NewRefresher(time.Second, func(context.Context) {}, zap.NewNop())

	require.ErrorIs(t, r.SetInterval(context.Background(), 10*time.Millisecond), ErrIntervalTooShort)
}

func TestRefresher_StartTwiceIsNoOp(t *testing.T) {
	r := NewRefresher(time.Hour, func(context.Context) {}, zap.NewNop())

	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()
	require.NoError(t, r.Start(context.Background()))
}

func TestRefresher_StopWithoutStart(t *testing.T) {
	r := NewRefresher(time.Second, func(context.Context) {}, zap.NewNop())
	r.Stop() // must not panic
}
