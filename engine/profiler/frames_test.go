package profiler

import (
	"math"
	"testing"
	"time"
)

func TestFrameStatsEmpty(t *testing.T) {
	fs := NewFrameStats(4)
	if fs.Average() != 0 || fs.FPS() != 0 || fs.Count() != 0 {
		t.Fatalf("empty stats: avg=%v fps=%v count=%d", fs.Average(), fs.FPS(), fs.Count())
	}
}

func TestFrameStatsRolling(t *testing.T) {
	fs := NewFrameStats(4)
	for i := 0; i < 4; i++ {
		fs.Add(10 * time.Millisecond)
	}
	if fs.Average() != 10*time.Millisecond {
		t.Fatalf("avg = %v", fs.Average())
	}
	if math.Abs(fs.FPS()-100) > 1e-9 {
		t.Fatalf("fps = %v", fs.FPS())
	}

	// evict all four 10ms samples
	for i := 0; i < 4; i++ {
		fs.Add(20 * time.Millisecond)
	}
	if fs.Count() != 4 {
		t.Fatalf("count = %d", fs.Count())
	}
	if fs.Average() != 20*time.Millisecond {
		t.Fatalf("avg after eviction = %v", fs.Average())
	}
}

func TestFrameStatsPartial(t *testing.T) {
	fs := NewFrameStats(0) // default capacity
	fs.Add(10 * time.Millisecond)
	fs.Add(30 * time.Millisecond)
	if fs.Average() != 20*time.Millisecond || fs.Count() != 2 {
		t.Fatalf("avg=%v count=%d", fs.Average(), fs.Count())
	}
}
