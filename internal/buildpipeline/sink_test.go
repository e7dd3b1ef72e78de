package buildpipeline

import (
	"sync"
	"testing"
)

func TestCollectorConcurrent(t *testing.T) {
	var c Collector
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Emit(&c, Event{File: string(rune('a' + i)), Stage: StageParse, Status: StatusDone})
		}(i)
	}
	wg.Wait()
	if got := len(c.Events()); got != 8 {
		t.Fatalf("events = %d, want 8", got)
	}
}

func TestChannelAndFuncSinks(t *testing.T) {
	ch := make(chan Event, 1)
	Emit(ChannelSink{Ch: ch}, Event{Stage: StageEmit, Status: StatusWorking})
	if ev := <-ch; ev.Stage != StageEmit {
		t.Fatalf("stage = %q", ev.Stage)
	}

	var seen Status
	Emit(FuncSink(func(e Event) { seen = e.Status }), Event{Status: StatusCached})
	if seen != StatusCached {
		t.Fatalf("status = %q", seen)
	}

	Emit(nil, Event{})
	ChannelSink{}.OnEvent(Event{})
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusDone, StatusSkipped, StatusCached, StatusError} {
		if !s.Terminal() {
			t.Errorf("%s must be terminal", s)
		}
	}
	if StatusWorking.Terminal() || StatusQueued.Terminal() {
		t.Error("queued/working are not terminal")
	}
}
