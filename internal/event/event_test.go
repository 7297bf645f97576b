package event

import "testing"

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatchRoutesByType(t *testing.T) {
	d := NewDispatcher()
	walls := &countingListener{}
	spawns := &countingListener{}
	d.Subscribe(walls, PlayerHitWall)
	d.Subscribe(spawns, EnemySpawned)

	d.Dispatch(Event{Type: PlayerHitWall, Data: WallHitData{ID: 1}})
	d.Dispatch(Event{Type: PlayerHitWall})
	d.Dispatch(Event{Type: SceneReset})

	if len(walls.got) != 2 {
		t.Errorf("wall listener got %d events, expected 2", len(walls.got))
	}
	if len(spawns.got) != 0 {
		t.Errorf("spawn listener got %d events, expected 0", len(spawns.got))
	}
	if data, ok := walls.got[0].Data.(WallHitData); !ok || data.ID != 1 {
		t.Errorf("unexpected payload %#v", walls.got[0].Data)
	}
}

func TestSubscribeToSeveralTypes(t *testing.T) {
	d := NewDispatcher()
	a, b := &countingListener{}, &countingListener{}
	d.Subscribe(a, SceneReset, EnemyTargetLost)
	d.Subscribe(b, SceneReset)

	d.Dispatch(Event{Type: SceneReset})
	d.Dispatch(Event{Type: EnemyTargetLost})
	d.Dispatch(Event{Type: PlayerSpawned})

	if len(a.got) != 2 || len(b.got) != 1 {
		t.Fatalf("a=%d b=%d, expected 2 and 1", len(a.got), len(b.got))
	}
	if a.got[0].Type != SceneReset || a.got[1].Type != EnemyTargetLost {
		t.Errorf("events out of order: %v, %v", a.got[0].Type, a.got[1].Type)
	}
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var none *Dispatcher
	none.Dispatch(Event{Type: EnemyTargetLost}) // must not panic
}
