package profiler

import "time"

// FrameStats keeps the durations of the most recent frames in a ring.
// Not safe for concurrent use; the frame loop is its only writer.
type FrameStats struct {
	samples []time.Duration
	next    int
	count   int
	total   time.Duration
}

// NewFrameStats returns a ring holding up to capacity samples.
func NewFrameStats(capacity int) *FrameStats {
	if capacity <= 0 {
		capacity = 120
	}
	return &FrameStats{samples: make([]time.Duration, capacity)}
}

// Add records one frame duration, evicting the oldest when full.
func (fs *FrameStats) Add(d time.Duration) {
	if fs.count == len(fs.samples) {
		fs.total -= fs.samples[fs.next]
	} else {
		fs.count++
	}
	fs.samples[fs.next] = d
	fs.total += d
	fs.next = (fs.next + 1) % len(fs.samples)
}

func (fs *FrameStats) Count() int { return fs.count }

// Average is the mean duration of the recorded frames, zero when empty.
func (fs *FrameStats) Average() time.Duration {
	if fs.count == 0 {
		return 0
	}
	return fs.total / time.Duration(fs.count)
}

// FPS derives frames per second from Average.
func (fs *FrameStats) FPS() float64 {
	avg := fs.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
