package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks the engine tick rate, the cost of each debug camera pass and basic
// heap statistics. It logs a summary line once per interval.
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration

	passTotal time.Duration
	passMax   time.Duration
	passCount int
	cameras   int

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler.
//
// Parameters:
//   - interval: how often to log; values <= 0 default to 1 second
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: interval,
	}
}

// RecordPass adds one camera pass to the current interval.
//
// Parameters:
//   - d: how long the pass took
//   - cameras: how many cameras the pass updated
func (p *Profiler) RecordPass(d time.Duration, cameras int) {
	p.passTotal += d
	p.passCount++
	p.passMax = max(p.passMax, d)
	p.cameras = cameras
}

// Tick should be called once per engine tick. Logs the interval's statistics when
// the interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.tickCount++
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()

	var passAvg time.Duration
	if p.passCount > 0 {
		passAvg = p.passTotal / time.Duration(p.passCount)
	}

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	log.Printf("[Profiler] TPS: %.2f | Pass: avg %s, max %s | Cameras: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		tps, passAvg, p.passMax, p.cameras, heapMB, allocRateMB, p.memStats.NumGC-p.lastGCCount)

	p.tickCount = 0
	p.lastTime = now
	p.passTotal, p.passMax, p.passCount = 0, 0, 0
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
