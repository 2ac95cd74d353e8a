package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// DebugEnv enables debug tracing when set to 1.
const DebugEnv = "ACTIONMENU_DEBUG"

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *stdlog.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "actionmenu-debug.log")

// InitDebug turns on layout, input and render tracing if ACTIONMENU_DEBUG=1.
// Call this after Initialize() in main.
func InitDebug() {
	if os.Getenv(DebugEnv) != "1" {
		DebugLog = stdlog.New(io.Discard, "", 0)
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = stdlog.New(io.Discard, "", 0)
		return
	}
	debugLogFile = f
	EnableDebug(f)

	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// EnableDebug turns tracing on and writes it to w.
func EnableDebug(w io.Writer) {
	DebugEnabled = true
	DebugLog = NewLogger(w, charmlog.DebugLevel).
		WithPrefix("debug").
		StandardLog(charmlog.StandardLogOptions{ForceLevel: charmlog.DebugLevel})
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// RenderProfiler tracks how long views take to render.
type RenderProfiler struct {
	mu           sync.RWMutex
	components   map[string]*ComponentMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration // last frameWindow frames
}

// ComponentMetrics tracks metrics for a single component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
}

const (
	frameWindow = 100
	slowFrame   = 16 * time.Millisecond
)

var profiler = newProfiler()

func newProfiler() *RenderProfiler {
	return &RenderProfiler{
		components:   make(map[string]*ComponentMetrics),
		frameTimings: make([]time.Duration, 0, frameWindow),
	}
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing a component render and returns the function that stops it.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordRender(component, time.Since(start))
	}
}

func (p *RenderProfiler) recordRender(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	metrics, ok := p.components[component]
	if !ok {
		metrics = &ComponentMetrics{Name: component, MinTime: elapsed, MaxTime: elapsed}
		p.components[component] = metrics
	}

	metrics.RenderCount++
	metrics.TotalTime += elapsed
	metrics.MinTime = min(metrics.MinTime, elapsed)
	metrics.MaxTime = max(metrics.MaxTime, elapsed)
}

// RecordFrame records a complete frame render.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed

	if len(p.frameTimings) >= frameWindow {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > slowFrame && DebugLog != nil {
		DebugLog.Printf("[PERF] slow frame: %v", elapsed)
	}
}

// GetStats returns a summary of render statistics.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	fmt.Fprintf(&sb, "Total frames: %d\n", p.frameCount)

	if p.frameCount > 0 {
		avg := p.totalTime / time.Duration(p.frameCount)
		fmt.Fprintf(&sb, "Avg frame time: %v\n", avg)
	}

	if len(p.frameTimings) > 0 {
		var sum time.Duration
		lo, hi := p.frameTimings[0], p.frameTimings[0]
		for _, t := range p.frameTimings {
			sum += t
			lo = min(lo, t)
			hi = max(hi, t)
		}
		fmt.Fprintf(&sb, "Recent %d frames: avg=%v min=%v max=%v\n",
			len(p.frameTimings), sum/time.Duration(len(p.frameTimings)), lo, hi)
	}

	sb.WriteString("\n--- Components ---\n")

	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})

	for _, m := range sorted {
		fmt.Fprintf(&sb, "  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.TotalTime/time.Duration(m.RenderCount), m.MinTime, m.MaxTime)
	}

	return sb.String()
}

// LogStats logs the current render statistics.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, frameWindow)
}

// LayoutTrace logs layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// RenderTrace logs render events.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[RENDER:%s] %s", component, fmt.Sprintf(format, v...))
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}
