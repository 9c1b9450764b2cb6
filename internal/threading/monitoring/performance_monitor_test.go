package monitoring

import (
	"strings"
	"testing"
	"time"
)

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()

	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}
	if !pm.enableDetailed {
		t.Error("Expected enableDetailed to be true")
	}
	if time.Since(pm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(10 * time.Millisecond)
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}
	minExpectedTime := uint64(10 * time.Millisecond)
	if pm.frameTime.Load() < minExpectedTime {
		t.Errorf("Expected frame time to be at least %d ns, got %d ns", minExpectedTime, pm.frameTime.Load())
	}
}

func TestPerformanceMonitorAverages(t *testing.T) {
	pm := NewPerformanceMonitor()

	pm.RecordFrame(10 * time.Millisecond)
	pm.RecordFrame(20 * time.Millisecond)

	stats := pm.GetDetailedStats()
	if avg := stats["avg_frame_time_ms"].(float64); avg != 15 {
		t.Errorf("avg_frame_time_ms = %v, want 15", avg)
	}

	pm.EnableDetailedLogging(false)
	pm.RecordFrame(90 * time.Millisecond)
	if pm.totalFrameTime != float64(30*time.Millisecond) {
		t.Error("running total should not grow while detailed stats are off")
	}
}

func TestProfiledFunction(t *testing.T) {
	pm := NewPerformanceMonitor()

	testCases := []struct {
		stage string
		read  func(Metrics) time.Duration
	}{
		{StageRaycast, func(m Metrics) time.Duration { return m.RaycastTime }},
		{StageNPCUpdate, func(m Metrics) time.Duration { return m.NPCUpdateTime }},
		{StageProjection, func(m Metrics) time.Duration { return m.ProjectionTime }},
	}

	for _, tc := range testCases {
		t.Run(tc.stage, func(t *testing.T) {
			ran := false
			d := pm.ProfiledFunction(tc.stage, func() {
				ran = true
				time.Sleep(time.Millisecond)
			})
			if !ran {
				t.Fatal("profiled function did not run")
			}
			if got := tc.read(pm.GetCurrentMetrics()); got != d {
				t.Errorf("stored %v, returned %v", got, d)
			}
		})
	}
}

func TestPerformanceAlerts(t *testing.T) {
	pm := NewPerformanceMonitor()

	pm.RecordFrame(10 * time.Millisecond)
	if alerts := pm.CheckPerformanceAlerts(); len(alerts) != 0 {
		t.Errorf("100 FPS should not alert, got %+v", alerts)
	}

	pm.RecordFrame(50 * time.Millisecond)
	alerts := pm.CheckPerformanceAlerts()
	if len(alerts) != 1 || alerts[0].Type != "low_fps" {
		t.Errorf("expected one low_fps alert, got %+v", alerts)
	}
}

func TestPerformanceAlerts_ConfiguredThreshold(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.SetMinFPS(50)

	pm.RecordFrame(25 * time.Millisecond) // 40 FPS, fine under the default 30
	alerts := pm.CheckPerformanceAlerts()
	if len(alerts) != 1 || alerts[0].Threshold != 50 {
		t.Fatalf("expected one alert at threshold 50, got %+v", alerts)
	}

	pm.SetMinFPS(0)
	if got := pm.CheckPerformanceAlerts(); len(got) != 1 {
		t.Errorf("non-positive threshold should be ignored, got %+v", got)
	}
}

func TestResetAndSummary(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.RecordFrame(time.Millisecond)
	pm.UpdateWorldMetrics(3, 5, 640)
	pm.AddPathQueries(3)

	if !strings.Contains(pm.Summary(), "npcs=3") {
		t.Errorf("summary missing npc count: %s", pm.Summary())
	}

	pm.Reset()
	m := pm.GetCurrentMetrics()
	if m.NPCsAlive != 0 || m.WallSlices != 0 || pm.frameCount.Load() != 0 || pm.pathQueries.Load() != 0 {
		t.Errorf("counters not cleared: %+v", m)
	}
}
