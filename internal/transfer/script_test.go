package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(s *Script) []Event {
	events := make(chan Event, 32)
	s.Run(context.Background(), events)
	close(events)

	var got []Event
	for ev := range events {
		got = append(got, ev)
	}
	return got
}

func TestScriptFullLifecycle(t *testing.T) {
	got := runScript(&Script{Dir: Receive, Remote: "Phone", Items: 3, Interval: time.Millisecond})

	require.Len(t, got, 14)
	assert.Equal(t, Event{Kind: EventConnect}, got[0])
	assert.Equal(t, Event{Kind: EventHeader, ItemCount: 3}, got[1])
	for i := 0; i < 10; i++ {
		assert.Equal(t, Event{Kind: EventProgress, Percent: (i + 1) * 10}, got[2+i])
	}
	assert.Equal(t, Event{Kind: EventSuccess}, got[12])
	assert.Equal(t, Event{Kind: EventFinish}, got[13])
}

func TestScriptStop(t *testing.T) {
	s := &Script{Dir: Send, Remote: "Laptop", Interval: time.Millisecond}
	s.Stop()
	got := runScript(s)

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, EventFinish, last.Kind)
	errorEvent := got[len(got)-2]
	require.Equal(t, EventError, errorEvent.Kind)
	assert.NotEmpty(t, errorEvent.Message)
}

func TestScriptContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := make(chan Event, 32)
	(&Script{Dir: Send, Remote: "Laptop", Interval: time.Hour}).Run(ctx, events)
	close(events)

	var got []Event
	for ev := range events {
		got = append(got, ev)
	}
	require.NotEmpty(t, got)
	assert.Equal(t, EventFinish, got[len(got)-1].Kind)
}
