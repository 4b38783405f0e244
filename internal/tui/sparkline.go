package tui

// sparkLevels maps a sample column to one of eight vertical block
// elements, from empty to full.
var sparkLevels = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History is a fixed-capacity chronological window of percent samples.
// It backs the CPU and memory rows of the chart panel: samples are
// clamped to [0,100] when recorded, and Spark renders the current
// window as a row of block elements without materializing a copy.
type History struct {
	samples []float64
	head    int
	count   int
}

// NewHistory creates a history window with the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{samples: make([]float64, capacity)}
}

// Record adds a sample, clamped to [0,100], overwriting the oldest
// sample when the window is full.
func (h *History) Record(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	h.samples[h.head] = v
	h.head = (h.head + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Len returns the number of recorded samples in the window.
func (h *History) Len() int { return h.count }

// Cap returns the window capacity.
func (h *History) Cap() int { return len(h.samples) }

// Last returns the most recent sample, or 0 if the window is empty.
func (h *History) Last() float64 {
	if h.count == 0 {
		return 0
	}
	idx := h.head - 1
	if idx < 0 {
		idx = len(h.samples) - 1
	}
	return h.samples[idx]
}

// Peak returns the largest sample still in the window, or 0 if empty.
// Samples that have been overwritten no longer count.
func (h *History) Peak() float64 {
	// Valid samples always occupy samples[:count]: head only wraps once
	// count has reached capacity.
	var peak float64
	for _, v := range h.samples[:h.count] {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Window returns the samples in chronological order, oldest first.
func (h *History) Window() []float64 {
	if h.count == 0 {
		return nil
	}
	out := make([]float64, h.count)
	start := h.head - h.count
	if start < 0 {
		start += len(h.samples)
	}
	for i := range h.count {
		out[i] = h.samples[(start+i)%len(h.samples)]
	}
	return out
}

// Resize changes the capacity, preserving the most recent samples that fit.
func (h *History) Resize(newCap int) {
	if newCap <= 0 {
		newCap = 1
	}
	if newCap == len(h.samples) {
		return
	}
	old := h.Window()
	h.samples = make([]float64, newCap)
	h.head = 0
	h.count = 0
	start := 0
	if len(old) > newCap {
		start = len(old) - newCap
	}
	for _, v := range old[start:] {
		h.Record(v)
	}
}

// Reset clears all samples.
func (h *History) Reset() {
	h.head = 0
	h.count = 0
}

// Spark renders the window as a sparkline, oldest sample first. It
// walks the ring directly instead of going through Window.
func (h *History) Spark() string {
	if h.count == 0 {
		return ""
	}
	runes := make([]rune, h.count)
	start := h.head - h.count
	if start < 0 {
		start += len(h.samples)
	}
	for i := range h.count {
		v := h.samples[(start+i)%len(h.samples)]
		runes[i] = sparkLevels[int(v/100*7)]
	}
	return string(runes)
}
