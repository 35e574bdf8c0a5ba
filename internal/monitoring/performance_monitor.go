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
	StageSimulation = "simulation"
	StageRaycast    = "raycast"
	StageWorld      = "world_render"
	StageSprites    = "sprite_render"
)

// PerformanceMonitor tracks per-frame timings of the engine pipeline
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Pipeline metrics, last frame
	simulationTime   atomic.Uint64
	raycastTime      atomic.Uint64
	worldRenderTime  atomic.Uint64
	spriteRenderTime atomic.Uint64

	// Statistics
	mutex          sync.RWMutex
	avgFrameTime   float64 // Exponential moving average, nanoseconds
	avgRaycastTime float64
	startTime      time.Time

	smoothing float64 // EMA weight of the newest sample
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime: time.Now(),
		smoothing: 0.1,
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
	frameTime := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	count := ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.avgFrameTime = ft.monitor.smooth(ft.monitor.avgFrameTime, float64(frameTime.Nanoseconds()), count)
	ft.monitor.mutex.Unlock()
}

func (pm *PerformanceMonitor) smooth(avg, sample float64, count uint64) float64 {
	if count <= 1 {
		return sample
	}
	return avg + pm.smoothing*(sample-avg)
}

// ProfiledFunction runs fn and records its duration under the given stage.
// Unknown stage names are timed but not stored.
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)
	nanos := uint64(duration.Nanoseconds())

	switch name {
	case StageSimulation:
		pm.simulationTime.Store(nanos)
	case StageRaycast:
		pm.raycastTime.Store(nanos)
		pm.mutex.Lock()
		pm.avgRaycastTime = pm.smooth(pm.avgRaycastTime, float64(nanos), pm.frameCount.Load()+1)
		pm.mutex.Unlock()
	case StageWorld:
		pm.worldRenderTime.Store(nanos)
	case StageSprites:
		pm.spriteRenderTime.Store(nanos)
	}

	return duration
}

// FrameMetrics is a snapshot of the monitor
type FrameMetrics struct {
	Frames          uint64
	FramesPerSecond float64
	AvgFrameMs      float64
	SimulationMs    float64
	RaycastMs       float64
	AvgRaycastMs    float64
	WorldRenderMs   float64
	SpriteRenderMs  float64
	MemoryUsageMB   uint64
}

func nanosToMs(n uint64) float64 {
	return float64(n) / float64(time.Millisecond)
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	pm.mutex.RLock()
	avgFrame, avgRaycast := pm.avgFrameTime, pm.avgRaycastTime
	pm.mutex.RUnlock()

	fps := 0.0
	if avgFrame > 0 {
		fps = float64(time.Second) / avgFrame
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return FrameMetrics{
		Frames:          pm.frameCount.Load(),
		FramesPerSecond: fps,
		AvgFrameMs:      avgFrame / float64(time.Millisecond),
		SimulationMs:    nanosToMs(pm.simulationTime.Load()),
		RaycastMs:       nanosToMs(pm.raycastTime.Load()),
		AvgRaycastMs:    avgRaycast / float64(time.Millisecond),
		WorldRenderMs:   nanosToMs(pm.worldRenderTime.Load()),
		SpriteRenderMs:  nanosToMs(pm.spriteRenderTime.Load()),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
}

// Summary formats the current metrics as one log line.
func (pm *PerformanceMonitor) Summary() string {
	m := pm.GetCurrentMetrics()
	return fmt.Sprintf("frames=%d fps=%.1f frame=%.3fms sim=%.3fms cast=%.3fms world=%.3fms sprites=%.3fms mem=%dMB",
		m.Frames, m.FramesPerSecond, m.AvgFrameMs, m.SimulationMs, m.RaycastMs, m.WorldRenderMs, m.SpriteRenderMs, m.MemoryUsageMB)
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
	currentTime := time.Now()
	m := pm.GetCurrentMetrics()

	if m.Frames > 0 && m.FramesPerSecond > 0 && m.FramesPerSecond < 30 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "low_fps",
			Message:   "Frame rate is below 30 FPS",
			Value:     m.FramesPerSecond,
			Threshold: 30,
			Timestamp: currentTime,
		})
	}

	// A software frame should never need more than a few milliseconds to cast.
	if m.AvgRaycastMs > 8 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_raycast",
			Message:   "Ray casting takes more than 8ms per frame",
			Value:     m.AvgRaycastMs,
			Threshold: 8,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// Uptime returns the time since the monitor was created.
func (pm *PerformanceMonitor) Uptime() time.Duration {
	return time.Since(pm.startTime)
}
