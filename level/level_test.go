package level

import (
	"testing"

	"gridfire/engine"
)

func TestParseWallsAndFloor(t *testing.T) {
	g, placements, err := Parse([]string{
		"####",
		"#.3#",
		"####",
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("Expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Solid(1, 1) {
		t.Error("Expected floor at (1,1)")
	}
	if !g.Solid(2, 1) {
		t.Error("Expected wall at (2,1)")
	}
	if g.Cell(2, 1) != 3 {
		t.Errorf("Expected occupancy 3 at (2,1), got %d", g.Cell(2, 1))
	}
	if len(placements) != 0 {
		t.Errorf("Expected no placements, got %d", len(placements))
	}
}

func TestParsePlacementsAreCellCentered(t *testing.T) {
	_, placements, err := Parse([]string{
		"#####",
		"#P.E#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(placements) != 2 {
		t.Fatalf("Expected 2 placements, got %d", len(placements))
	}
	p := placements[0]
	if p.Kind != PlacementPlayer || p.X != 1.5 || p.Y != 1.5 {
		t.Errorf("Expected player at (1.5, 1.5), got %+v", p)
	}
	e := placements[1]
	if e.Kind != PlacementEnemy || e.X != 3.5 || e.Y != 1.5 {
		t.Errorf("Expected enemy at (3.5, 1.5), got %+v", e)
	}
}

func TestParseRejectsRaggedAndUnknown(t *testing.T) {
	if _, _, err := Parse([]string{"###", "##"}); err == nil {
		t.Error("Expected an error for ragged rows")
	}
	if _, _, err := Parse([]string{"#x#"}); err == nil {
		t.Error("Expected an error for an unknown rune")
	}
	if _, _, err := Parse(nil); err == nil {
		t.Error("Expected an error for an empty map")
	}
}

func TestPopulateSpawnsEntities(t *testing.T) {
	_, placements, err := Parse([]string{
		"#####",
		"#P.E#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}

	w := engine.NewWorld()
	if err := Populate(w, placements); err != nil {
		t.Fatal(err)
	}

	players := w.Query().With(w.Positions).With(w.Players).Execute()
	if len(players) != 1 {
		t.Fatalf("Expected 1 player, got %d", len(players))
	}
	cam, ok := w.Cameras.Get(players[0])
	if !ok {
		t.Fatal("Expected the player to carry a camera")
	}
	if cam.FOV != DefaultFOV {
		t.Errorf("Expected FOV %v, got %v", DefaultFOV, cam.FOV)
	}

	enemies := w.Query().With(w.Positions).With(w.Enemies).Execute()
	if len(enemies) != 1 {
		t.Fatalf("Expected 1 enemy, got %d", len(enemies))
	}
	enemy, _ := w.Enemies.Get(enemies[0])
	if enemy.PatrolMin != 2.0 || enemy.PatrolMax != 5.0 {
		t.Errorf("Expected patrol bounds (2, 5) around the spawn, got (%v, %v)",
			enemy.PatrolMin, enemy.PatrolMax)
	}
}
