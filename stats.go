package gui

import "time"

// statsWindow is the number of frames frame timings are averaged over.
const statsWindow = 60

// FrameStats describes the last finished frame.
type FrameStats struct {
	Frame       uint64
	Widgets     int // live arena records
	Declared    int // declarations this frame
	Reclaimed   int // records freed at the start of this frame
	Commands    int // render commands emitted, including flushed batches
	Flushes     int // mid-frame flushes caused by Config.MaxCommands
	StringBytes int // bytes formatted through Sprintf

	// Averages over the last statsWindow frames
	LayoutTime time.Duration
	InputTime  time.Duration
	RenderTime time.Duration

	InputConsumed bool
}

// statsAccumulator keeps the timing ring and the last snapshot.
type statsAccumulator struct {
	layout, input, render [statsWindow]time.Duration
	n                     int
	commands              int
	last                  FrameStats
}

func (s *statsAccumulator) begin() {
	s.commands = 0
}

// countFlush records commands handed to the renderer before the frame ended.
func (s *statsAccumulator) countFlush(n int) {
	s.commands += n
}

func (s *statsAccumulator) end(ctx *Context, layout, input, render uint64) {
	freq := ctx.deps.Clock.PerformanceFrequency()
	i := s.n % statsWindow
	s.layout[i] = ticksToDuration(layout, freq)
	s.input[i] = ticksToDuration(input, freq)
	s.render[i] = ticksToDuration(render, freq)
	s.n++

	bytes := 0
	for _, str := range ctx.strings {
		bytes += len(str)
	}
	s.last = FrameStats{
		Frame:         ctx.frame,
		Widgets:       ctx.arena.len(),
		Declared:      ctx.declared,
		Reclaimed:     len(ctx.freed),
		Commands:      s.commands + ctx.commands.Len(),
		Flushes:       ctx.flushes,
		StringBytes:   bytes,
		LayoutTime:    average(s.layout[:], s.n),
		InputTime:     average(s.input[:], s.n),
		RenderTime:    average(s.render[:], s.n),
		InputConsumed: ctx.consumed,
	}
}

func ticksToDuration(ticks, freq uint64) time.Duration {
	if freq == 0 {
		return 0
	}
	return time.Duration(float64(ticks) / float64(freq) * float64(time.Second))
}

func average(ring []time.Duration, n int) time.Duration {
	if n > len(ring) {
		n = len(ring)
	}
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range ring[:n] {
		sum += d
	}
	return sum / time.Duration(n)
}

// Stats returns statistics of the last finished frame.
func (ctx *Context) Stats() FrameStats {
	return ctx.stats.last
}
