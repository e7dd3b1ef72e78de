package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	done := tm.Track("discover")
	done("12 files")
	idx := tm.Begin("parse")
	tm.End(idx, "")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 2 || r.Phases[0].Note != "12 files" {
		t.Fatalf("phase 0 = %+v", r.Phases[0])
	}
	if r.TotalMS != 4 {
		t.Fatalf("total = %v", r.TotalMS)
	}

	sum := tm.Summary()
	if !strings.Contains(sum, "discover") || !strings.Contains(sum, "// 12 files") || !strings.Contains(sum, "total") {
		t.Fatalf("summary:\n%s", sum)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("x")("")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatal("nil timer must report nothing")
	}
}
