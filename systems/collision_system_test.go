package systems

import (
	"testing"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
)

func TestBulletHitsEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	state := g.State
	state.Enemies = []components.Enemy{
		components.NewEnemy(10.7, 3.9, 5),
		components.NewEnemy(30, 3, 5),
	}
	state.Bullets = []components.Bullet{{X: 12.5, Y: 3.2}}
	scoreBefore := state.Score

	NewCollisionSystem().Update(state, testStart)

	if len(state.Bullets) != 0 {
		t.Errorf("Expected bullet removed, have %d", len(state.Bullets))
	}
	if len(state.Enemies) != 1 || state.Enemies[0].X != 30 {
		t.Fatalf("Expected only the untouched enemy to remain, got %+v", state.Enemies)
	}
	if state.Score != scoreBefore+constants.PointsPerEnemy {
		t.Errorf("Expected score %d, got %d", scoreBefore+constants.PointsPerEnemy, state.Score)
	}
}

func TestBulletHitBoundaries(t *testing.T) {
	enemy := components.NewEnemy(10, 3, 5)

	tests := []struct {
		name   string
		bullet components.Bullet
		hit    bool
	}{
		{"left edge", components.Bullet{X: 10, Y: 3}, true},
		{"last cell", components.Bullet{X: 14.9, Y: 3.5}, true},
		{"right edge exclusive", components.Bullet{X: 15, Y: 3}, false},
		{"left of enemy", components.Bullet{X: 9.9, Y: 3}, false},
		{"row above", components.Bullet{X: 12, Y: 2.9}, false},
		{"row below", components.Bullet{X: 12, Y: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bullets, enemies, kills := ResolveBulletHits(
				[]components.Bullet{tt.bullet},
				[]components.Enemy{enemy},
			)
			if (kills == 1) != tt.hit {
				t.Fatalf("Expected hit=%v, got %d kills", tt.hit, kills)
			}
			if tt.hit && (len(bullets) != 0 || len(enemies) != 0) {
				t.Errorf("Expected both removed on hit, have %d bullets, %d enemies", len(bullets), len(enemies))
			}
			if !tt.hit && (len(bullets) != 1 || len(enemies) != 1) {
				t.Errorf("Expected nothing removed on miss, have %d bullets, %d enemies", len(bullets), len(enemies))
			}
		})
	}
}

// TestBulletKillsOnlyFirstEnemy verifies a bullet stops scanning after its first hit
func TestBulletKillsOnlyFirstEnemy(t *testing.T) {
	enemies := []components.Enemy{
		components.NewEnemy(10, 3, 5),
		components.NewEnemy(12, 3, 5),
	}
	bullets := []components.Bullet{{X: 13, Y: 3}}

	_, survivors, kills := ResolveBulletHits(bullets, enemies)

	if kills != 1 {
		t.Fatalf("Expected 1 kill, got %d", kills)
	}
	if len(survivors) != 1 || survivors[0].X != 12 {
		t.Errorf("Expected second enemy to survive, got %+v", survivors)
	}
}

func TestMultipleBulletsMultipleKills(t *testing.T) {
	g, _ := newTestGame(t)
	state := g.State
	state.Enemies = []components.Enemy{
		components.NewEnemy(1, 1, 5),
		components.NewEnemy(8, 1, 5),
		components.NewEnemy(15, 2, 5),
	}
	state.Bullets = []components.Bullet{
		{X: 16, Y: 2.5},
		{X: 3, Y: 1.1},
		{X: 40, Y: 5},
	}

	NewCollisionSystem().Update(state, testStart)

	if state.Score != 2*constants.PointsPerEnemy {
		t.Errorf("Expected score %d, got %d", 2*constants.PointsPerEnemy, state.Score)
	}
	if len(state.Enemies) != 1 || state.Enemies[0].X != 8 {
		t.Errorf("Expected middle enemy to survive, got %+v", state.Enemies)
	}
	if len(state.Bullets) != 1 || state.Bullets[0].X != 40 {
		t.Errorf("Expected missing bullet to survive, got %+v", state.Bullets)
	}
}

func TestTwoBulletsSameEnemyScoreOnce(t *testing.T) {
	bullets := []components.Bullet{{X: 11, Y: 3}, {X: 12, Y: 3.4}}
	enemies := []components.Enemy{components.NewEnemy(10, 3, 5)}

	survivingBullets, survivingEnemies, kills := ResolveBulletHits(bullets, enemies)

	if kills != 1 {
		t.Errorf("Expected one enemy destroyed, got %d", kills)
	}
	if len(survivingBullets) != 0 || len(survivingEnemies) != 0 {
		t.Errorf("Expected both bullets and the enemy removed, have %d/%d", len(survivingBullets), len(survivingEnemies))
	}
}
