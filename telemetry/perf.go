package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseInput      = "input"
	PhaseInteract   = "interact"
	PhaseTransition = "transition"
	PhaseLayout     = "layout"
	PhaseDraw       = "draw"
)

// Phases lists the frame phases in execution order.
var Phases = []string{PhaseInput, PhaseInteract, PhaseTransition, PhaseLayout, PhaseDraw}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	windowTotal   time.Duration
	frames        uint64
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to aggregate over (e.g., 120 for 2 seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.record(PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	})
}

func (p *PerfCollector) record(s PerfSample) {
	if p.sampleCount == p.windowSize {
		p.windowTotal -= p.samples[p.writeIndex].FrameDuration
	}
	p.windowTotal += s.FrameDuration
	p.samples[p.writeIndex] = s
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
	p.frames++
}

// Frames returns the number of frames recorded since creation.
func (p *PerfCollector) Frames() uint64 {
	return p.frames
}

// FPS returns the frame rate over the current window without computing
// full statistics. Cheap enough to call every frame.
func (p *PerfCollector) FPS() float64 {
	if p.windowTotal <= 0 {
		return 0
	}
	return float64(p.sampleCount) * float64(time.Second) / float64(p.windowTotal)
}

// PerfStats holds aggregated frame statistics.
type PerfStats struct {
	Samples int

	AvgFrame    time.Duration
	StdDevFrame time.Duration
	MinFrame    time.Duration
	MaxFrame    time.Duration
	P95Frame    time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total frame time
	PhasePct map[string]float64

	FramesPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	durations := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		durations[i] = float64(s.FrameDuration)
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	mean := stat.Mean(durations, nil)
	var std float64
	if len(durations) > 1 {
		std = stat.StdDev(durations, nil)
	}
	minFrame, maxFrame := floats.Min(durations), floats.Max(durations)

	sorted := append([]float64(nil), durations...)
	sort.Float64s(sorted)
	p95 := stat.Quantile(0.95, stat.Empirical, sorted, nil)

	avg := time.Duration(mean)
	phaseAvg := make(map[string]time.Duration, len(phaseSum))
	phasePct := make(map[string]float64, len(phaseSum))
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avg > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avg) * 100
		}
	}

	var fps float64
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}

	return PerfStats{
		Samples:         p.sampleCount,
		AvgFrame:        avg,
		StdDevFrame:     time.Duration(std),
		MinFrame:        time.Duration(minFrame),
		MaxFrame:        time.Duration(maxFrame),
		P95Frame:        time.Duration(p95),
		PhaseAvg:        phaseAvg,
		PhasePct:        phasePct,
		FramesPerSecond: fps,
	}
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrame.Microseconds(),
		"std_frame_us", s.StdDevFrame.Microseconds(),
		"max_frame_us", s.MaxFrame.Microseconds(),
		"p95_frame_us", s.P95Frame.Microseconds(),
		"fps", int(s.FramesPerSecond),
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("samples", s.Samples),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Float64("fps", s.FramesPerSecond),
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Frame         uint64  `csv:"frame"`
	State         string  `csv:"state"`
	AvgFrameUS    int64   `csv:"avg_frame_us"`
	StdFrameUS    int64   `csv:"std_frame_us"`
	MinFrameUS    int64   `csv:"min_frame_us"`
	MaxFrameUS    int64   `csv:"max_frame_us"`
	P95FrameUS    int64   `csv:"p95_frame_us"`
	FPS           float64 `csv:"fps"`
	InputPct      float64 `csv:"input_pct"`
	InteractPct   float64 `csv:"interact_pct"`
	TransitionPct float64 `csv:"transition_pct"`
	LayoutPct     float64 `csv:"layout_pct"`
	DrawPct       float64 `csv:"draw_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(frame uint64, state string) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:         frame,
		State:         state,
		AvgFrameUS:    s.AvgFrame.Microseconds(),
		StdFrameUS:    s.StdDevFrame.Microseconds(),
		MinFrameUS:    s.MinFrame.Microseconds(),
		MaxFrameUS:    s.MaxFrame.Microseconds(),
		P95FrameUS:    s.P95Frame.Microseconds(),
		FPS:           s.FramesPerSecond,
		InputPct:      s.PhasePct[PhaseInput],
		InteractPct:   s.PhasePct[PhaseInteract],
		TransitionPct: s.PhasePct[PhaseTransition],
		LayoutPct:     s.PhasePct[PhaseLayout],
		DrawPct:       s.PhasePct[PhaseDraw],
	}
}
