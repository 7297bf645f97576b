package system

import (
	"math"
	"testing"

	"go-arena/internal/entity"
	"go-arena/internal/event"
	"go-arena/internal/input"
	"go-arena/pkg/geom"
)

func TestStatsTrackDistanceSpeedAndWallHits(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	ecs.SpawnPlayer(geom.V(400, 0), 1, 50, testColor)
	player := NewPlayerControlSystem(ecs, testTunables, testBounds, d)
	stats := NewStatsSystem(ecs, d)

	for i := 0; i < 60; i++ {
		player.Update(1.0/60, input.Snapshot{Right: true})
		stats.Update(1.0 / 60)
	}

	got := stats.Snapshot()
	if got.Ticks != 60 {
		t.Errorf("ticks = %d, expected 60", got.Ticks)
	}
	if math.Abs(got.Elapsed-1) > 1e-9 {
		t.Errorf("elapsed = %v, expected 1", got.Elapsed)
	}
	// Starting 20 units from the right limit; the first tick's step happens before
	// the first sample, so slightly less than 20 is recorded.
	if got.PlayerDistance < 19 || got.PlayerDistance > 20+1e-9 {
		t.Errorf("distance = %v, expected just under 20", got.PlayerDistance)
	}
	if got.WallHits == 0 {
		t.Error("expected wall hits to be counted")
	}
	if got.PeakSpeed <= 0 || got.PeakSpeed > testTunables.MaxSpeed {
		t.Errorf("peak speed = %v", got.PeakSpeed)
	}
}

func TestStatsCountTargetLossAndReset(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	stats := NewStatsSystem(ecs, d)

	d.Dispatch(event.Event{Type: event.EnemyTargetLost})
	d.Dispatch(event.Event{Type: event.SceneReset})
	stats.Update(0.5)

	got := stats.Snapshot()
	if got.TargetLosses != 1 {
		t.Errorf("target losses = %d, expected 1", got.TargetLosses)
	}
	if got.PlayerDistance != 0 {
		t.Errorf("distance without a player = %v", got.PlayerDistance)
	}
}
