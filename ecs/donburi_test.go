package ecs

import (
	"testing"

	rh "github.com/phanxgames/rangehighlight"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestWorld_Queries(t *testing.T) {
	dw := donburi.NewWorld()
	AddBuilding(dw, rh.Building{Type: "Junimo Hut", Tile: rh.TilePoint{X: 4, Y: 4}, Width: 3, Height: 2})
	AddObject(dw, rh.Item{Name: "Sprinkler", Tile: rh.TilePoint{X: 1, Y: 1}})
	AddObject(dw, rh.Item{Name: "Scarecrow", Tile: rh.TilePoint{X: 9, Y: 9}})
	AddSprite(dw, rh.Sprite{Name: "Cherry Bomb", Tile: rh.TilePoint{X: 2, Y: 2}})

	w := NewWorld(dw, nil)
	if got := len(w.Buildings()); got != 1 {
		t.Errorf("len(Buildings()) = %d, want 1", got)
	}
	if got := len(w.Objects()); got != 2 {
		t.Errorf("len(Objects()) = %d, want 2", got)
	}
	if got := len(w.Sprites()); got != 1 {
		t.Errorf("len(Sprites()) = %d, want 1", got)
	}
	if w.Blocked() {
		t.Error("Blocked() = true with nil predicate")
	}
}

func TestWorld_BuildingAt(t *testing.T) {
	dw := donburi.NewWorld()
	AddBuilding(dw, rh.Building{Type: "Junimo Hut", Tile: rh.TilePoint{X: 4, Y: 4}, Width: 3, Height: 2})
	w := NewWorld(dw, nil)

	tests := []struct {
		p    rh.TilePoint
		want bool
	}{
		{rh.TilePoint{X: 4, Y: 4}, true},
		{rh.TilePoint{X: 6, Y: 5}, true},
		{rh.TilePoint{X: 7, Y: 5}, false},
		{rh.TilePoint{X: 4, Y: 6}, false},
	}
	for _, tt := range tests {
		b, ok := w.BuildingAt(tt.p)
		if ok != tt.want {
			t.Errorf("BuildingAt(%v) ok = %v, want %v", tt.p, ok, tt.want)
		}
		if ok && b.Type != "Junimo Hut" {
			t.Errorf("BuildingAt(%v).Type = %q", tt.p, b.Type)
		}
	}
}

func TestWorld_HostState(t *testing.T) {
	menu := false
	w := NewWorld(donburi.NewWorld(), func() bool { return menu })

	if _, _, ok := w.HeldItem(); ok {
		t.Error("HeldItem() ok before SetHeld")
	}
	w.SetHeld(&rh.Item{Name: "Bee House"}, 3)
	item, slot, ok := w.HeldItem()
	if !ok || item.Name != "Bee House" || slot != 3 {
		t.Errorf("HeldItem() = %v, %d, %v", item, slot, ok)
	}
	w.SetHeld(nil, 0)
	if _, _, ok := w.HeldItem(); ok {
		t.Error("HeldItem() ok after clearing")
	}

	w.SetBlueprint(&rh.Blueprint{Type: "Junimo Hut"})
	if bp, ok := w.Blueprint(); !ok || bp.Type != "Junimo Hut" {
		t.Errorf("Blueprint() = %v, %v", bp, ok)
	}

	menu = true
	if !w.Blocked() {
		t.Error("Blocked() = false, want true")
	}
}

func TestRunPass_PublishesStats(t *testing.T) {
	dw := donburi.NewWorld()
	AddObject(dw, rh.Item{Name: "Sprinkler", Tile: rh.TilePoint{X: 10, Y: 10}})
	w := NewWorld(dw, nil)

	cfg := rh.DefaultConfig()
	cfg.TickInterval = 1
	h := rh.NewHighlighter(rh.NewSettings(cfg))
	rh.InstallDefaults(h, rh.NewDefaultShapes())

	in := rh.NewMapInput()
	in.Press(cfg.ShowAllRangesKey[0]...)

	var got []rh.PassStats
	PassEventType.Subscribe(dw, func(_ donburi.World, st rh.PassStats) {
		got = append(got, st)
	})

	if !RunPass(h, w, in) {
		t.Fatal("RunPass = false with TickInterval 1")
	}
	events.ProcessAllEvents(dw)

	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].Records != 4 {
		t.Errorf("Records = %d, want 4", got[0].Records)
	}
	if got[0].ObjectsVisited != 1 {
		t.Errorf("ObjectsVisited = %d, want 1", got[0].ObjectsVisited)
	}
}
