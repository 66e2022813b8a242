package tui

import "strings"

// blockRamp holds the eight block elements used for sparklines, from the
// one-eighth block up to the full block.
var blockRamp = [...]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RingBuffer stores the most recent float64 samples up to a fixed capacity.
// Pushing past capacity discards the oldest sample. The zero value is not
// usable; construct with NewRingBuffer.
type RingBuffer struct {
	buf  []float64
	next int
	n    int
}

// NewRingBuffer creates a ring buffer holding at most capacity samples.
// A capacity below one is raised to one.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{buf: make([]float64, capacity)}
}

// Push records a sample, evicting the oldest one when the buffer is full.
func (r *RingBuffer) Push(v float64) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.n < len(r.buf) {
		r.n++
	}
}

// Len returns the number of samples currently held.
func (r *RingBuffer) Len() int { return r.n }

// Cap returns the maximum number of samples the buffer can hold.
func (r *RingBuffer) Cap() int { return len(r.buf) }

// Last returns the most recently pushed sample, or 0 when empty.
func (r *RingBuffer) Last() float64 {
	if r.n == 0 {
		return 0
	}
	return r.buf[(r.next-1+len(r.buf))%len(r.buf)]
}

// Slice copies the samples out in push order, oldest first.
// It returns nil when the buffer is empty.
func (r *RingBuffer) Slice() []float64 {
	if r.n == 0 {
		return nil
	}
	out := make([]float64, 0, r.n)
	first := (r.next - r.n + len(r.buf)) % len(r.buf)
	if first+r.n <= len(r.buf) {
		out = append(out, r.buf[first:first+r.n]...)
	} else {
		out = append(out, r.buf[first:]...)
		out = append(out, r.buf[:r.next]...)
	}
	return out
}

// Resize replaces the capacity, keeping the most recent samples that fit.
// Resizing to the current capacity is a no-op.
func (r *RingBuffer) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == len(r.buf) {
		return
	}
	kept := r.Slice()
	if len(kept) > capacity {
		kept = kept[len(kept)-capacity:]
	}
	r.buf = make([]float64, capacity)
	r.next = 0
	r.n = 0
	for _, v := range kept {
		r.Push(v)
	}
}

// Reset discards all samples without releasing the backing array.
func (r *RingBuffer) Reset() {
	r.next = 0
	r.n = 0
}

// clampPercent bounds v to the 0..100 range expected by the renderers.
func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// RenderSparkline maps percentage samples onto a single line of block
// elements, one rune per sample. Values outside 0..100 are clamped.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(clampPercent(v) / 100.0 * 7.0)
		if idx > len(blockRamp)-1 {
			idx = len(blockRamp) - 1
		}
		b.WriteRune(blockRamp[idx])
	}
	return b.String()
}

// brailleBit returns the dot bit for a position inside one braille cell.
// A cell is 2 dot columns wide and 4 dot rows tall; the Unicode braille
// block assigns bits 0,1,2,6 to the left column and 3,4,5,7 to the right,
// top to bottom.
func brailleBit(subCol, subRow int) rune {
	left := [4]rune{0x01, 0x02, 0x04, 0x40}
	right := [4]rune{0x08, 0x10, 0x20, 0x80}
	if subCol == 0 {
		return left[subRow]
	}
	return right[subRow]
}

// RenderBrailleChart plots percentage samples as braille dots across
// `rows` text rows of `width` runes each. Each rune offers a 2x4 dot
// grid, so the chart resolves width*2 samples; older samples beyond that
// are dropped and the remainder is right-aligned. Higher values plot
// nearer the top row.
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}

	dotRows := rows * 4
	dotCols := width * 2

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}

	if len(values) > dotCols {
		values = values[len(values)-dotCols:]
	}
	// Right-align: the newest sample lands in the last dot column.
	offset := dotCols - len(values)

	for i, raw := range values {
		v := clampPercent(raw)
		dotCol := offset + i
		dotRow := dotRows - 1 - int(v/100.0*float64(dotRows-1))
		if dotRow < 0 {
			dotRow = 0
		}
		grid[dotRow/4][dotCol/2] |= brailleBit(dotCol%2, dotRow%4)
	}

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return lines
}
