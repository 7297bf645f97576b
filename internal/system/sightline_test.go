package system

import (
	"math"
	"testing"

	"go-arena/internal/entity"
	"go-arena/internal/input"
	"go-arena/pkg/geom"
)

func TestSightlinePointsAtCursor(t *testing.T) {
	ecs := entity.NewECS()
	player := ecs.SpawnPlayer(geom.V(100, 50), 1, 50, testColor)
	lineID := ecs.SpawnSightline(player, 200)
	sys := NewSightlineSystem(ecs, 1000, 700)

	// Screen (600, 250) is world (100, 100): straight up from the player, 50 units away.
	sys.Update(input.Snapshot{Cursor: geom.V(600, 250), HasCursor: true})

	line := ecs.Sightlines[lineID]
	if math.Abs(line.Angle-math.Pi/2) > eps {
		t.Errorf("angle = %v, expected pi/2", line.Angle)
	}
	if math.Abs(line.Length-50) > eps {
		t.Errorf("length = %v, expected 50", line.Length)
	}
	if !vecNear(line.Start, geom.V(100, 50)) {
		t.Errorf("start = %v, expected the player centre", line.Start)
	}
	if !vecNear(line.End, geom.V(100, 100)) {
		t.Errorf("end = %v, expected the cursor", line.End)
	}
}

func TestSightlineLengthIsCapped(t *testing.T) {
	ecs := entity.NewECS()
	player := ecs.SpawnPlayer(geom.Zero, 1, 50, testColor)
	lineID := ecs.SpawnSightline(player, 200)
	sys := NewSightlineSystem(ecs, 1000, 700)

	// World (-300, -400) is 500 units away.
	sys.Update(input.Snapshot{Cursor: geom.V(200, 750), HasCursor: true})

	line := ecs.Sightlines[lineID]
	if math.Abs(line.Length-200) > eps {
		t.Errorf("length = %v, expected 200", line.Length)
	}
	if !vecNear(line.End, geom.V(-120, -160)) {
		t.Errorf("end = %v, expected (-120, -160)", line.End)
	}
}

func TestSightlineKeepsAimWithoutCursor(t *testing.T) {
	ecs := entity.NewECS()
	player := ecs.SpawnPlayer(geom.Zero, 1, 50, testColor)
	lineID := ecs.SpawnSightline(player, 200)
	sys := NewSightlineSystem(ecs, 1000, 700)

	sys.Update(input.Snapshot{})
	if ecs.Sightlines[lineID].HasCursor {
		t.Fatal("sightline updated without a cursor")
	}

	// Screen (600, 350) is world (100, 0).
	sys.Update(input.Snapshot{Cursor: geom.V(600, 350), HasCursor: true})
	before := *ecs.Sightlines[lineID]
	sys.Update(input.Snapshot{})
	if *ecs.Sightlines[lineID] != before {
		t.Errorf("idle player without a cursor changed the sightline: %+v -> %+v", before, *ecs.Sightlines[lineID])
	}
}

func TestSightlineFollowsPlayerWithoutCursor(t *testing.T) {
	ecs, player, control, _ := newPlayerWorld(t, geom.Zero)
	lineID := ecs.SpawnSightline(player, 200)
	sys := NewSightlineSystem(ecs, 1000, 700)

	sys.Update(input.Snapshot{Cursor: geom.V(600, 350), HasCursor: true})
	aimed := *ecs.Sightlines[lineID]

	right := input.Snapshot{Right: true}
	for i := 0; i < 60; i++ {
		control.Update(1.0/60, right)
		sys.Update(right)
	}

	pos := ecs.Positions[player].Vec()
	if pos.X <= 100 {
		t.Fatalf("player barely moved: %v", pos)
	}
	line := ecs.Sightlines[lineID]
	if line.Angle != aimed.Angle || line.Length != aimed.Length {
		t.Errorf("aim changed without a cursor: angle %v -> %v, length %v -> %v",
			aimed.Angle, line.Angle, aimed.Length, line.Length)
	}
	if !vecNear(line.Start, pos) {
		t.Errorf("start = %v, expected the player centre %v", line.Start, pos)
	}
	if want := pos.Add(geom.V(100, 0)); !vecNear(line.End, want) {
		t.Errorf("end = %v, expected %v", line.End, want)
	}
}
