package monitoring

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()

	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}

	if pm.smoothing <= 0 || pm.smoothing > 1 {
		t.Errorf("Expected smoothing in (0, 1], got %v", pm.smoothing)
	}

	// Check that start time is recent
	if pm.Uptime() > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(10 * time.Millisecond) // Simulate some work
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}

	// Frame time should be at least 10ms (in nanoseconds)
	minExpectedTime := uint64(10 * time.Millisecond)
	if frameTime := pm.frameTime.Load(); frameTime < minExpectedTime {
		t.Errorf("Expected frame time to be at least %d ns, got %d ns", minExpectedTime, frameTime)
	}

	metrics := pm.GetCurrentMetrics()
	if metrics.AvgFrameMs < 10 {
		t.Errorf("Expected average frame time of at least 10ms, got %.3f", metrics.AvgFrameMs)
	}
	if metrics.FramesPerSecond <= 0 || metrics.FramesPerSecond > 100 {
		t.Errorf("Unexpected FPS %.1f for a 10ms frame", metrics.FramesPerSecond)
	}
}

func TestProfiledFunctionStages(t *testing.T) {
	pm := NewPerformanceMonitor()

	stages := []string{StageSimulation, StageRaycast, StageWorld, StageSprites}
	for _, stage := range stages {
		d := pm.ProfiledFunction(stage, func() { time.Sleep(time.Millisecond) })
		if d < time.Millisecond {
			t.Errorf("%s: duration %v shorter than the work", stage, d)
		}
	}

	m := pm.GetCurrentMetrics()
	for name, got := range map[string]float64{
		StageSimulation: m.SimulationMs,
		StageRaycast:    m.RaycastMs,
		StageWorld:      m.WorldRenderMs,
		StageSprites:    m.SpriteRenderMs,
	} {
		if got < 1 {
			t.Errorf("%s: recorded %.3fms, want at least 1ms", name, got)
		}
	}

	called := false
	pm.ProfiledFunction("unknown", func() { called = true })
	if !called {
		t.Error("unknown stages should still run")
	}
}

func TestPerformanceAlerts(t *testing.T) {
	pm := NewPerformanceMonitor()
	if alerts := pm.CheckPerformanceAlerts(); len(alerts) != 0 {
		t.Errorf("Expected no alerts before any frame, got %d", len(alerts))
	}

	frameTimer := pm.StartFrame()
	time.Sleep(40 * time.Millisecond)
	frameTimer.EndFrame()

	found := false
	for _, alert := range pm.CheckPerformanceAlerts() {
		if alert.Type == "low_fps" {
			found = true
		}
	}
	if !found {
		t.Error("Expected a low_fps alert for a 40ms frame")
	}
}

func TestSummaryMentionsStages(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.StartFrame().EndFrame()
	s := pm.Summary()
	for _, want := range []string{"fps=", "cast=", "sprites="} {
		if !strings.Contains(s, want) {
			t.Errorf("summary %q missing %q", s, want)
		}
	}
}

func TestPerformanceMonitorConcurrency(t *testing.T) {
	pm := NewPerformanceMonitor()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pm.StartFrame().EndFrame()
				pm.ProfiledFunction(StageRaycast, func() {})
				_ = pm.GetCurrentMetrics()
			}
		}()
	}
	wg.Wait()

	if pm.frameCount.Load() != 1000 {
		t.Errorf("Expected 1000 frames, got %d", pm.frameCount.Load())
	}
}

func BenchmarkPerformanceMonitorFrameTiming(b *testing.B) {
	pm := NewPerformanceMonitor()
	for i := 0; i < b.N; i++ {
		pm.StartFrame().EndFrame()
	}
}
