package actionsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMainQueueRunsDueTasksInOrder(t *testing.T) {
	now := time.Unix(100, 0)
	q := NewMainQueueWithClock(func() time.Time { return now })

	var ran []string
	q.Schedule(200*time.Millisecond, func() { ran = append(ran, "late") })
	q.Schedule(100*time.Millisecond, func() { ran = append(ran, "early") })
	q.Schedule(100*time.Millisecond, func() { ran = append(ran, "early-second") })

	assert.Zero(t, q.Drain())
	assert.Equal(t, 3, q.Len())

	now = now.Add(150 * time.Millisecond)
	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, []string{"early", "early-second"}, ran)

	now = now.Add(time.Second)
	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, []string{"early", "early-second", "late"}, ran)
	assert.Zero(t, q.Len())
}

func TestMainQueueStop(t *testing.T) {
	q := NewMainQueue()
	ran := false

	q.Schedule(0, func() { ran = true })
	q.Stop()
	q.Schedule(0, func() { ran = true })

	assert.Zero(t, q.Drain())
	assert.Zero(t, q.Len())
	assert.False(t, ran)
}

func TestImmediateAndNopSchedulers(t *testing.T) {
	ran := 0
	ImmediateScheduler{}.Schedule(time.Hour, func() { ran++ })
	NopScheduler{}.Schedule(0, func() { ran++ })

	assert.Equal(t, 1, ran)
}
