package monitoring

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stage names accepted by ProfiledFunction.
const (
	StageRaycast    = "raycast"
	StageNPCUpdate  = "npc_update"
	StageProjection = "projection"
)

// PerformanceMonitor tracks per-tick timings and counts of the engine.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last tick

	// Stage metrics, last tick
	raycastTime    atomic.Uint64
	npcUpdateTime  atomic.Uint64
	projectionTime atomic.Uint64

	// World metrics
	npcsAlive      atomic.Int32
	spritesVisible atomic.Int32
	wallSlices     atomic.Int32
	pathQueries    atomic.Uint64

	// Statistics
	mutex          sync.RWMutex
	totalFrameTime float64
	totalRaycast   float64
	raycastSamples uint64
	startTime      time.Time

	// Configuration
	enableDetailed bool
	minFPS         float64
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
		minFPS:         30,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.RecordFrame(time.Since(ft.startTime))
}

// RecordFrame stores the duration of one tick.
func (pm *PerformanceMonitor) RecordFrame(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	pm.frameCount.Add(1)

	if pm.detailed() {
		pm.mutex.Lock()
		pm.totalFrameTime += float64(d.Nanoseconds())
		pm.mutex.Unlock()
	}
}

func (pm *PerformanceMonitor) detailed() bool {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return pm.enableDetailed
}

// ProfiledFunction runs fn and records its duration under name.
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)
	ns := uint64(duration.Nanoseconds())

	switch name {
	case StageRaycast:
		pm.raycastTime.Store(ns)
		if pm.detailed() {
			pm.mutex.Lock()
			pm.totalRaycast += float64(ns)
			pm.raycastSamples++
			pm.mutex.Unlock()
		}
	case StageNPCUpdate:
		pm.npcUpdateTime.Store(ns)
	case StageProjection:
		pm.projectionTime.Store(ns)
	}

	return duration
}

// AddPathQueries counts pathfinder calls.
func (pm *PerformanceMonitor) AddPathQueries(n int) {
	pm.pathQueries.Add(uint64(n))
}

// UpdateWorldMetrics stores the per-tick world counts.
func (pm *PerformanceMonitor) UpdateWorldMetrics(npcsAlive, spritesVisible, wallSlices int) {
	pm.npcsAlive.Store(int32(npcsAlive))
	pm.spritesVisible.Store(int32(spritesVisible))
	pm.wallSlices.Store(int32(wallSlices))
}

// Metrics is a snapshot of the latest tick.
type Metrics struct {
	FramesPerSecond float64
	FrameTime       time.Duration
	RaycastTime     time.Duration
	NPCUpdateTime   time.Duration
	ProjectionTime  time.Duration
	NPCsAlive       int
	SpritesVisible  int
	WallSlices      int
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() Metrics {
	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	return Metrics{
		FramesPerSecond: fps,
		FrameTime:       time.Duration(frameTime),
		RaycastTime:     time.Duration(pm.raycastTime.Load()),
		NPCUpdateTime:   time.Duration(pm.npcUpdateTime.Load()),
		ProjectionTime:  time.Duration(pm.projectionTime.Load()),
		NPCsAlive:       int(pm.npcsAlive.Load()),
		SpritesVisible:  int(pm.spritesVisible.Load()),
		WallSlices:      int(pm.wallSlices.Load()),
	}
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	frames := pm.frameCount.Load()
	avgFrame := 0.0
	if frames > 0 {
		avgFrame = pm.totalFrameTime / float64(frames)
	}
	avgRaycast := 0.0
	if pm.raycastSamples > 0 {
		avgRaycast = pm.totalRaycast / float64(pm.raycastSamples)
	}

	return map[string]interface{}{
		"uptime_seconds":      time.Since(pm.startTime).Seconds(),
		"frame_count":         frames,
		"avg_frame_time_ms":   avgFrame / 1e6,
		"avg_raycast_time_ms": avgRaycast / 1e6,
		"npcs_alive":          pm.npcsAlive.Load(),
		"sprites_visible":     pm.spritesVisible.Load(),
		"wall_slices":         pm.wallSlices.Load(),
		"path_queries":        pm.pathQueries.Load(),
		"memory_alloc_mb":     memStats.Alloc / 1024 / 1024,
		"gc_cycles":           memStats.NumGC,
		"goroutines":          runtime.NumGoroutine(),
	}
}

// Summary formats the detailed stats as one log line.
func (pm *PerformanceMonitor) Summary() string {
	s := pm.GetDetailedStats()
	return fmt.Sprintf("frames=%d avg_frame=%.2fms avg_raycast=%.2fms npcs=%d sprites=%d paths=%d mem=%dMB",
		s["frame_count"], s["avg_frame_time_ms"], s["avg_raycast_time_ms"],
		s["npcs_alive"], s["sprites_visible"], s["path_queries"], s["memory_alloc_mb"])
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)

	pm.mutex.RLock()
	minFPS := pm.minFPS
	pm.mutex.RUnlock()

	if m := pm.GetCurrentMetrics(); m.FramesPerSecond > 0 && m.FramesPerSecond < minFPS {
		alerts = append(alerts, PerformanceAlert{
			Type:      "low_fps",
			Message:   fmt.Sprintf("Frame rate is below %.0f FPS", minFPS),
			Value:     m.FramesPerSecond,
			Threshold: minFPS,
			Timestamp: time.Now(),
		})
	}

	return alerts
}

// SetMinFPS sets the frame rate under which CheckPerformanceAlerts reports
// low_fps. Non-positive values are ignored.
func (pm *PerformanceMonitor) SetMinFPS(fps float64) {
	if fps <= 0 {
		return
	}
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.minFPS = fps
}

// EnableDetailedLogging enables/disables running averages
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.npcUpdateTime.Store(0)
	pm.projectionTime.Store(0)
	pm.npcsAlive.Store(0)
	pm.spritesVisible.Store(0)
	pm.wallSlices.Store(0)
	pm.pathQueries.Store(0)

	pm.mutex.Lock()
	pm.totalFrameTime = 0
	pm.totalRaycast = 0
	pm.raycastSamples = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
