package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"sync"
	"time"
)

var (
	ErrCaptureCooldown = errors.New("capture on cooldown")
	ErrCaptureBusy     = errors.New("already profiling")
)

// LayerLoad is one particle layer's share of the frame at capture time
type LayerLoad struct {
	Kind     GroupKind
	Count    int
	Respawns uint64
}

// ParticleLoad snapshots the simulation when a slow frame window is seen
type ParticleLoad struct {
	FPS    float64
	Frames uint64
	Layers []LayerLoad
}

// Load reports the current particle load at the given frame rate
func (s *Starfield) Load(fps float64) ParticleLoad {
	load := ParticleLoad{FPS: fps, Frames: s.Frames}
	for _, g := range []*ParticleGroup{s.Foreground, s.Background, s.Dust} {
		load.Layers = append(load.Layers, LayerLoad{
			Kind:     g.Config.Kind,
			Count:    g.Len(),
			Respawns: s.Respawns[g.Config.Kind],
		})
	}
	return load
}

// Particles is the total particle count across layers
func (l ParticleLoad) Particles() int {
	n := 0
	for _, layer := range l.Layers {
		n += layer.Count
	}
	return n
}

// Tag names the capture files, e.g. "fps41-n5200"
func (l ParticleLoad) Tag() string {
	return fmt.Sprintf("fps%.0f-n%d", l.FPS, l.Particles())
}

func (l ParticleLoad) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.1f FPS at frame %d:", l.FPS, l.Frames)
	for _, layer := range l.Layers {
		fmt.Fprintf(&b, " %s=%d", layer.Kind, layer.Count)
		if l.Frames > 0 {
			fmt.Fprintf(&b, " (%.2f respawns/frame)", float64(layer.Respawns)/float64(l.Frames))
		}
	}
	return b.String()
}

// Profiler records a CPU profile and an execution trace of the frame loop
// while the starfield is running slow
type Profiler struct {
	mu        sync.Mutex
	capturing bool
	lastStart time.Time
	cooldown  time.Duration
	window    time.Duration
	dir       string
}

// NewProfiler writes captures of the given length into dir
func NewProfiler(dir string, window time.Duration) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		cooldown: 10 * time.Second,
		window:   window,
		dir:      dir,
	}, nil
}

// CaptureProfile starts recording in the background and returns at once
func (p *Profiler) CaptureProfile(load ParticleLoad) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lastStart.IsZero() && time.Since(p.lastStart) < p.cooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrCaptureCooldown, time.Since(p.lastStart))
	}
	if p.capturing {
		return ErrCaptureBusy
	}

	p.capturing = true
	p.lastStart = time.Now()
	base := filepath.Join(p.dir, fmt.Sprintf("slow-%s-%s", p.lastStart.Format("20060102-150405"), load.Tag()))

	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.record(base+".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				log.Printf("CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.record(base+".trace", trace.Start, trace.Stop); err != nil {
				log.Printf("trace: %v", err)
			}
		}()
		wg.Wait()

		summarize(base, load)
	}()

	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

// record runs one start/stop profiler pair for the capture window
func (p *Profiler) record(path string, start func(w io.Writer) error, stop func()) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	time.Sleep(p.window)
	stop()
	return nil
}

// summarize logs the load that triggered the capture and the heap cost per particle
func summarize(base string, load ParticleLoad) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	log.Printf("slow frames: %s", load)
	if n := load.Particles(); n > 0 {
		log.Printf("heap: %d KB live, %.0f B/particle, %d GCs", m.HeapAlloc/1024, float64(m.HeapAlloc)/float64(n), m.NumGC)
	}
	log.Printf("view with: go tool pprof -http=:8080 %s.cpu.prof", base)
}
