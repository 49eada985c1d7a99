package systems

import (
	"testing"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/types"
	"github.com/decker502/zshooter/pkg/utils"
)

func newTestControl(w *testWorld) *PlayerControlSystem {
	return NewPlayerControlSystem(w.em, w.state, w.cfg, w.combat, w.camera, w.index, w.player, w.platform)
}

func (w *testWorld) playerComponent() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.player)
	return p
}

func (w *testWorld) inventory() *components.InventoryComponent {
	inv, _ := ecs.GetComponent[*components.InventoryComponent](w.em, w.player)
	return inv
}

func TestSelectItem(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	n := len(w.inventory().Items)

	tests := []struct {
		name  string
		input game.InputIntent
		want  int
	}{
		{"select slot 3", game.InputIntent{SelectSlot: 3}, 2},
		{"out of range slot ignored", game.InputIntent{SelectSlot: n + 1}, 2},
		{"scroll forward", game.InputIntent{ScrollDelta: 1}, 3},
		{"scroll wraps backwards", game.InputIntent{SelectSlot: 1, ScrollDelta: -1}, n - 1},
		{"scroll wraps forwards", game.InputIntent{ScrollDelta: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			control.Update(tt.input)
			if got := w.playerComponent().CurrentWeapon; got != tt.want {
				t.Errorf("Expected slot %d, got %d", tt.want, got)
			}
		})
	}
}

func TestMoveAndScroll(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	zombie := w.addZombie(t, 200, 350)

	t.Run("inside dead zone", func(t *testing.T) {
		w.restPlayerOnPlatform(700)
		control.Update(game.InputIntent{Right: true})
		if got := w.position(w.player).X; got != 705 {
			t.Errorf("Expected player x=705, got %v", got)
		}
		if w.state.CameraX != 0 {
			t.Errorf("Camera should not scroll inside the dead zone, got %v", w.state.CameraX)
		}
	})

	t.Run("beyond dead zone", func(t *testing.T) {
		w.restPlayerOnPlatform(768)
		control.Update(game.InputIntent{Right: true})
		if got := w.position(w.player).X; got != 768 {
			t.Errorf("Player should stay put while scrolling, got %v", got)
		}
		if got := w.position(zombie).X; got != 195 {
			t.Errorf("Expected world shifted left to 195, got %v", got)
		}
	})

	t.Run("blocked by contact", func(t *testing.T) {
		block := w.addBlock(t, 900, 630)
		w.restPlayerOnPlatform(600)
		w.contact(w.player).Left = block
		control.Update(game.InputIntent{Left: true})
		if got := w.position(w.player).X; got != 600 {
			t.Errorf("Blocked player should not move, got %v", got)
		}
	})
}

func TestJump(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.player)

	w.restPlayerOnPlatform(700)
	y := w.position(w.player).Y
	control.Update(game.InputIntent{Jump: true})

	if vel.VY != -w.cfg.Player.JumpHeight {
		t.Errorf("Expected vy=%v, got %v", -w.cfg.Player.JumpHeight, vel.VY)
	}
	if got := w.position(w.player).Y; got != y-w.cfg.Player.JumpHeight {
		t.Errorf("Expected y=%v, got %v", y-w.cfg.Player.JumpHeight, got)
	}
	if w.contact(w.player).IsResting() {
		t.Error("Player should leave the ground when jumping")
	}

	control.Update(game.InputIntent{Jump: true})
	if vel.VY != -w.cfg.Player.JumpHeight {
		t.Error("Player should not jump again while airborne")
	}
}

func TestJetpack(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.player)
	player := w.playerComponent()
	jp := w.cfg.Player.Jetpack

	w.restPlayerOnPlatform(700)
	control.Update(game.InputIntent{Jetpack: true})
	if !player.JetpackActive || vel.VY != -jp.Thrust {
		t.Fatalf("Expected active jetpack with vy=%v, got active=%v vy=%v", -jp.Thrust, player.JetpackActive, vel.VY)
	}
	if player.JetpackFuel != jp.MaxFuel-jp.BurnPerTick {
		t.Errorf("Expected fuel %v, got %v", jp.MaxFuel-jp.BurnPerTick, player.JetpackFuel)
	}

	control.Update(game.InputIntent{})
	if player.JetpackActive || vel.VY != 0 {
		t.Errorf("Releasing the jetpack should stop thrust, active=%v vy=%v", player.JetpackActive, vel.VY)
	}

	player.JetpackFuel = 0
	control.Update(game.InputIntent{Jetpack: true})
	if player.JetpackActive {
		t.Error("Jetpack should not fire without fuel")
	}
}

func TestAimAndFire(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	w.restPlayerOnPlatform(700)
	cursor := utils.Vector2{X: 900, Y: 600}

	control.Update(game.InputIntent{Cursor: cursor, Fire: true})
	if !control.Preview.Valid || len(control.Preview.Path) == 0 {
		t.Fatal("Expected a trajectory preview toward a reachable cursor")
	}
	if n := countWith[*components.BulletComponent](w.em); n != 1 {
		t.Fatalf("Expected 1 bullet, got %d", n)
	}

	control.Update(game.InputIntent{Cursor: cursor, Fire: true})
	if n := countWith[*components.BulletComponent](w.em); n != 1 {
		t.Errorf("Recoil should block the second shot, got %d bullets", n)
	}

	t.Run("unreachable target", func(t *testing.T) {
		angle := w.playerComponent().GunAngle
		w.state.CurrentTimeMs += 1000
		control.Update(game.InputIntent{Cursor: utils.Vector2{X: 100000, Y: -100000}, Fire: true})
		if control.Preview.Valid {
			t.Error("Preview should be empty without a ballistic solution")
		}
		if w.playerComponent().GunAngle != angle {
			t.Error("Gun angle should be kept without a ballistic solution")
		}
		if n := countWith[*components.BulletComponent](w.em); n != 1 {
			t.Errorf("No bullet should be fired without a solution, got %d", n)
		}
	})
}

func TestTrajectoryPreviewObstructed(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	w.restPlayerOnPlatform(700)
	w.addBlock(t, 800, 560)

	control.Update(game.InputIntent{Cursor: utils.Vector2{X: 900, Y: 600}})

	if !control.Preview.Valid {
		t.Fatal("Expected a valid preview")
	}
	if !control.Preview.Obstructed {
		t.Error("Preview should stop at the block in the way")
	}
	if control.Preview.End.X < 800 || control.Preview.End.X > 870 {
		t.Errorf("Expected preview end inside the block, got %v", control.Preview.End)
	}
}

func TestPlaceBlocks(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	w.restPlayerOnPlatform(700)

	slot := len(w.cfg.Guns) + 1 // 方块槽位（从 1 开始）
	item := w.inventory().Item(slot - 1)
	if item.Kind != types.ItemBlock {
		t.Fatalf("Expected block slot, got %s", item.Kind)
	}
	count := item.Count
	cursor := utils.Vector2{X: 300, Y: 650}

	control.Update(game.InputIntent{SelectSlot: slot, Cursor: cursor, Place: true})
	blocks := AliveBlocks(w.em)
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	r, _ := EntityBounds(w.em, blocks[0])
	if r.X != 265 || r.Y != 630 {
		t.Errorf("Expected block at (265,630), got (%v,%v)", r.X, r.Y)
	}

	// 光标落在已有方块内部时向上堆叠
	control.Update(game.InputIntent{Cursor: cursor, Place: true})
	blocks = AliveBlocks(w.em)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	r, _ = EntityBounds(w.em, blocks[1])
	if r.Y != 560 {
		t.Errorf("Expected stacked block at y=560, got %v", r.Y)
	}

	if item.Count != count-2 {
		t.Errorf("Expected %d blocks left, got %d", count-2, item.Count)
	}

	t.Run("cursor above stack", func(t *testing.T) {
		control.Update(game.InputIntent{Cursor: utils.Vector2{X: 300, Y: 100}})
		if !control.Placement.Valid || control.Placement.Rect.Y != 490 {
			t.Errorf("Expected preview on top of the stack at y=490, got %+v", control.Placement)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		item.Count = 0
		control.Update(game.InputIntent{Cursor: cursor, Place: true})
		if control.Placement.Valid {
			t.Error("Preview should be empty with nothing left to place")
		}
		if n := len(AliveBlocks(w.em)); n != 2 {
			t.Errorf("Expected no new block, got %d", n)
		}
	})
}

func TestPlaceMine(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	w.restPlayerOnPlatform(700)

	slot := len(w.cfg.Guns) + 3
	control.Update(game.InputIntent{SelectSlot: slot, Cursor: utils.Vector2{X: 300, Y: 100}, Place: true})

	ids := ecs.GetEntitiesWith1[*components.PlaceableComponent](w.em)
	if len(ids) != 1 {
		t.Fatalf("Expected 1 placeable, got %d", len(ids))
	}
	p, _ := ecs.GetComponent[*components.PlaceableComponent](w.em, ids[0])
	if p.Kind != types.ItemMine {
		t.Errorf("Expected mine, got %s", p.Kind)
	}
	r, _ := EntityBounds(w.em, ids[0])
	if r.Y+r.H != 700 {
		t.Errorf("Mine should sit on the platform, bottom=%v", r.Y+r.H)
	}
}

func TestPlaceBlockRejectsBodies(t *testing.T) {
	w := newTestWorld(t)
	control := newTestControl(w)
	w.restPlayerOnPlatform(700)
	stats, _ := w.cfg.ZombieStatsFor(types.ZombieNormal)
	zombie := w.addZombie(t, 300, testScreenH-w.cfg.World.PlatformHeight-stats.Height)

	blockSlot := len(w.cfg.Guns) + 1
	item := w.inventory().Item(blockSlot - 1)
	count := item.Count

	tests := []struct {
		name   string
		cursor utils.Vector2
		valid  bool
	}{
		{"on the player", utils.Vector2{X: 725, Y: 650}, false},
		{"on a zombie", utils.Vector2{X: 325, Y: 650}, false},
		{"clear ground", utils.Vector2{X: 500, Y: 650}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			control.Update(game.InputIntent{SelectSlot: blockSlot, Cursor: tt.cursor})
			if control.Placement.Valid != tt.valid {
				t.Errorf("Expected placement valid=%v, got %+v", tt.valid, control.Placement)
			}
		})
	}

	control.Update(game.InputIntent{SelectSlot: blockSlot, Cursor: utils.Vector2{X: 725, Y: 650}, Place: true})
	if n := len(AliveBlocks(w.em)); n != 0 {
		t.Errorf("Expected no block on the player, got %d", n)
	}
	if item.Count != count {
		t.Errorf("Rejected placement should not consume stock, got %d", item.Count)
	}
	if pos := w.position(zombie); pos.X != 300 {
		t.Errorf("Zombie should stay put, x=%v", pos.X)
	}

	// 其他放置物可以放在僵尸脚下
	control.Update(game.InputIntent{SelectSlot: len(w.cfg.Guns) + 3, Cursor: utils.Vector2{X: 325, Y: 650}})
	if !control.Placement.Valid {
		t.Error("Mine placement under a zombie should be allowed")
	}
}
