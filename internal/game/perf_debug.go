package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	perfLowFpsDuration = 3 * time.Second
	perfLogInterval    = 3 * time.Second
)

// perfState tracks how long the frame rate has stayed under the threshold.
type perfState struct {
	lowFpsSince time.Time
	lastLog     time.Time

	lastUpdate time.Duration
	lastDraw   time.Duration
}

func (g *Game) maybeLogPerfDrop() {
	if !g.cfg.Debug.PerfDebug {
		return
	}

	fps := ebiten.ActualFPS()
	if fps >= g.cfg.Debug.PerfLowFPS {
		g.perf.lowFpsSince = time.Time{}
		g.perf.lastLog = time.Time{}
		return
	}

	now := time.Now()
	if g.perf.lowFpsSince.IsZero() {
		g.perf.lowFpsSince = now
		return
	}
	if now.Sub(g.perf.lowFpsSince) < perfLowFpsDuration {
		return
	}
	if !g.perf.lastLog.IsZero() && now.Sub(g.perf.lastLog) < perfLogInterval {
		return
	}

	g.perf.lastLog = now
	g.logPerfSnapshot(fps)
}

func (g *Game) logPerfSnapshot(fps float64) {
	stats := g.world.Monitor().GetDetailedStats()
	m := g.world.Monitor().GetCurrentMetrics()
	npcs := getPerfInt(stats, "npcs_alive")
	sprites := getPerfInt(stats, "sprites_visible")
	walls := getPerfInt(stats, "wall_slices")

	causes := make([]string, 0, 4)
	if g.cfg.Raycasting.Workers <= 1 && g.cfg.Raycasting.NumRays > 400 {
		causes = append(causes, fmt.Sprintf("sequential casting of %d rays", g.cfg.Raycasting.NumRays))
	}
	if sprites > 50 {
		causes = append(causes, fmt.Sprintf("sprites (%d)", sprites))
	}
	if npcs > 30 {
		causes = append(causes, fmt.Sprintf("npcs (%d)", npcs))
	}
	if g.showMinimap {
		causes = append(causes, "minimap")
	}

	causeText := "none obvious"
	if len(causes) > 0 {
		causeText = strings.Join(causes, ", ")
	}

	fmt.Printf(
		"[PERF] FPS<%.0f for >=%s | fps=%.1f tps=%.1f causes=%s\n",
		g.cfg.Debug.PerfLowFPS,
		perfLowFpsDuration,
		fps,
		ebiten.ActualTPS(),
		causeText,
	)
	fmt.Printf(
		"[PERF] update=%.2fms draw=%.2fms budget=%.2fms idle=%.2fms tick=%.2fms raycast=%.2fms npcs=%.2fms projection=%.2fms\n",
		durationMs(g.perf.lastUpdate),
		durationMs(g.perf.lastDraw),
		frameBudgetMs(fps),
		idleBudgetMs(fps, g.perf.lastUpdate, g.perf.lastDraw),
		durationMs(m.FrameTime),
		durationMs(m.RaycastTime),
		durationMs(m.NPCUpdateTime),
		durationMs(m.ProjectionTime),
	)
	fmt.Printf(
		"[PERF] npcs=%d sprites=%d walls=%d paths=%d goroutines=%d mem_alloc=%dMB gc_cycles=%d\n",
		npcs,
		sprites,
		walls,
		getPerfUint(stats, "path_queries"),
		getPerfInt(stats, "goroutines"),
		getPerfUint(stats, "memory_alloc_mb"),
		getPerfUint(stats, "gc_cycles"),
	)
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

func frameBudgetMs(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return 1000.0 / fps
}

func idleBudgetMs(fps float64, updateDur, drawDur time.Duration) float64 {
	idle := frameBudgetMs(fps) - durationMs(updateDur) - durationMs(drawDur)
	if idle < 0 {
		return 0
	}
	return idle
}

func getPerfInt(stats map[string]interface{}, key string) int {
	if val, ok := stats[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case uint64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}

func getPerfUint(stats map[string]interface{}, key string) uint64 {
	if val, ok := stats[key]; ok {
		switch v := val.(type) {
		case uint64:
			return v
		case uint32:
			return uint64(v)
		case int64:
			return uint64(v)
		case int:
			return uint64(v)
		case float64:
			return uint64(v)
		}
	}
	return 0
}
