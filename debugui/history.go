package debugui

import "time"

// History is a fixed-size ring of samples for ImGui line plots.
type History struct {
	samples []float32
	next    int
	filled  int
}

func NewHistory(size int) *History {
	if size <= 0 {
		panic("debugui: history size must be positive")
	}
	return &History{samples: make([]float32, size)}
}

func (h *History) Push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average is the mean of the samples pushed so far, zero when empty.
func (h *History) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.Ordered() {
		sum += v
	}
	return sum / float32(h.filled)
}

// Ordered returns the pushed samples oldest first.
func (h *History) Ordered() []float32 {
	out := make([]float32, 0, h.filled)
	start := (h.next - h.filled + len(h.samples)) % len(h.samples)
	for i := 0; i < h.filled; i++ {
		out = append(out, h.samples[(start+i)%len(h.samples)])
	}
	return out
}

// Plot returns the full ring, oldest first, padded with leading zeros.
func (h *History) Plot() []float32 {
	out := make([]float32, len(h.samples))
	copy(out[len(out)-h.filled:], h.Ordered())
	return out
}

func (h *History) Len() int { return h.filled }

type FrameTimer struct {
	last time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now()}
}

// Delta returns the seconds since the previous call.
func (ft *FrameTimer) Delta() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.last).Seconds())
	ft.last = now
	return delta
}
