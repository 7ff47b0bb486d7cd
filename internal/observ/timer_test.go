package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAggregatesConcurrentPhases(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
			tm.Add("layout", 2*time.Millisecond)
		}()
	}
	wg.Wait()

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %+v", report.Phases)
	}
	for _, p := range report.Phases {
		if p.Count != 8 {
			t.Errorf("%s count = %d, want 8", p.Name, p.Count)
		}
	}
	if got := report.Phases[0].DurationMS + report.Phases[1].DurationMS; got != 24 {
		t.Errorf("total = %v ms, want 24", got)
	}
}

func TestSummaryListsPhases(t *testing.T) {
	tm := NewTimer()
	stop := tm.Measure("write")
	stop()
	out := tm.Summary()
	if !strings.Contains(out, "write") || !strings.Contains(out, "wall") {
		t.Errorf("summary:\n%s", out)
	}
}

func TestNilTimerIgnoresAdd(t *testing.T) {
	var tm *Timer
	tm.Add("x", time.Second)
}
