package debugui

// History is a fixed-size ring of samples for frame graphs.
type History struct {
	samples []float32
	offset  int
	count   int
}

func NewHistory(size int) *History {
	if size <= 0 {
		panic("debugui: history size must be positive")
	}
	return &History{samples: make([]float32, size)}
}

// Push records a sample, overwriting the oldest once full.
func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	h.count = min(h.count+1, len(h.samples))
}

// Ordered returns the samples from oldest to newest, padded with zeros until full.
func (h *History) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.offset:])
	copy(out[n:], h.samples[:h.offset])
	return out
}

// Average returns the mean of the recorded samples.
func (h *History) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(h.count)
}

// Max returns the largest recorded sample.
func (h *History) Max() float32 {
	var m float32
	for _, v := range h.samples {
		m = max(m, v)
	}
	return m
}
