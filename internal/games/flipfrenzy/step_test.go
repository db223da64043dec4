package flipfrenzy

import (
	"testing"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
)

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Players[0]

	w.Step(core.NewMultiInputFrame())

	wantY := GameHeight - FloorHeight - p.H
	if p.Y != wantY {
		t.Errorf("Y = %v, want %v", p.Y, wantY)
	}
	if !p.OnGround {
		t.Error("OnGround = false, want true")
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, want 0", p.VY)
	}
}

func TestEnemySettlesOnPlatform(t *testing.T) {
	w := newTestWorld(t, 1)
	plat := w.Platforms[1]
	e := placeEnemy(w, KindBasic, plat.X+40, plat.Y-30)

	for range 30 {
		w.Step(core.NewMultiInputFrame())
		if e.Y != plat.Y-e.H || e.VY != 0 || !e.OnGround || e.Support != 1 {
			t.Fatalf("enemy not resting: y=%v vy=%v ground=%v support=%d", e.Y, e.VY, e.OnGround, e.Support)
		}
	}
}

func TestHeadButtFlipsEnemyAbove(t *testing.T) {
	w := newTestWorld(t, 1)
	plat := w.Platforms[1] // classic lower-left ledge
	p := w.Players[0]
	e := placeEnemy(w, KindBasic, p.X, plat.Y-30)
	e.OnGround = true
	e.Support = 1

	// Rising into the underside this tick.
	p.Y = plat.Y + plat.H + 2
	p.VY = -6
	p.OnGround = false

	w.Step(core.NewMultiInputFrame())

	if !e.Flipped {
		t.Fatal("enemy not flipped by head-butt")
	}
	if p.Score != w.cfg.Scoring.Flip {
		t.Errorf("Score = %d, want %d", p.Score, w.cfg.Scoring.Flip)
	}
	if p.Y != plat.Y+plat.H || p.VY != 0 {
		t.Errorf("player not popped below: y=%v vy=%v", p.Y, p.VY)
	}
	if !hasEvent(w.drainEvents(), core.EventFlip) {
		t.Error("missing flip event")
	}
}

func TestHeadButtOutsideWindow(t *testing.T) {
	w := newTestWorld(t, 1)
	plat := w.Platforms[1]
	p := w.Players[0]
	e := placeEnemy(w, KindBasic, p.X+w.cfg.Player.HitWindow+40, plat.Y-30)
	e.OnGround = true
	e.Support = 1

	p.Y = plat.Y + plat.H + 2
	p.VY = -6
	p.OnGround = false

	w.Step(core.NewMultiInputFrame())

	if e.Flipped {
		t.Error("enemy outside the hit window was flipped")
	}
	if p.Score != 0 {
		t.Errorf("Score = %d, want 0", p.Score)
	}
}

func TestTouchFlippedEnemyKills(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Players[0]
	e := placeEnemy(w, KindBasic, p.X+10, GameHeight-FloorHeight-30)
	e.trigger(w, true)

	w.Step(core.NewMultiInputFrame())

	if len(w.Enemies) != 0 {
		t.Fatalf("roster has %d enemies, want 0", len(w.Enemies))
	}
	if p.Score != w.cfg.Scoring.Kill {
		t.Errorf("Score = %d, want %d", p.Score, w.cfg.Scoring.Kill)
	}

	cx, cy := e.X+e.W/2, e.Y+e.H/2
	sparks := 0
	for _, pt := range w.Particles.All() {
		if pt.Text == "" && pt.X == cx && pt.Y == cy {
			sparks++
		}
	}
	if sparks != w.cfg.Effects.KillParticles {
		t.Errorf("burst has %d particles at the enemy, want %d", sparks, w.cfg.Effects.KillParticles)
	}
	if !hasEvent(w.drainEvents(), core.EventKill) {
		t.Error("missing kill event")
	}
}

func TestTouchUprightEnemyHurts(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Players[0]
	placeEnemy(w, KindBasic, p.X+10, GameHeight-FloorHeight-30)
	lives := p.Lives

	w.Step(core.NewMultiInputFrame())

	if p.Lives != lives-1 {
		t.Errorf("Lives = %d, want %d", p.Lives, lives-1)
	}
	if p.Invulnerable <= 0 {
		t.Error("no invulnerability after respawn")
	}
	if !hasEvent(w.drainEvents(), core.EventDeath) {
		t.Error("missing death event")
	}
}

func TestKillBeforeHurtInRosterOrder(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Players[0]
	p.Lives = 1
	y := GameHeight - FloorHeight - 30
	flipped := placeEnemy(w, KindBasic, p.X+5, y)
	flipped.trigger(w, true)
	placeEnemy(w, KindBasic, p.X+10, y)

	w.Step(core.NewMultiInputFrame())

	if p.Score != w.cfg.Scoring.Kill {
		t.Errorf("Score = %d, want %d", p.Score, w.cfg.Scoring.Kill)
	}
	if !p.Dead {
		t.Error("player survived touching an upright enemy on the last life")
	}
	if len(w.Enemies) != 1 {
		t.Errorf("roster has %d enemies, want 1", len(w.Enemies))
	}
}

func TestBomberDetonation(t *testing.T) {
	w := newTestWorld(t, 1)
	guard := w.claimGuardPlatform()
	plat := w.Platforms[guard]
	e := placeEnemy(w, KindIceBomber, plat.X, plat.Y-30)
	e.Guard = guard
	e.Fuse = core.TickMS

	w.Step(core.NewMultiInputFrame())

	if len(w.Enemies) != 0 {
		t.Fatalf("roster has %d enemies, want 0", len(w.Enemies))
	}
	if !plat.Frozen {
		t.Fatal("guarded platform not frozen")
	}
	if plat.FrozenTimer < w.cfg.Enemies.FreezeMS-core.TickMS-1e-9 {
		t.Errorf("FrozenTimer = %v, want about %v", plat.FrozenTimer, w.cfg.Enemies.FreezeMS)
	}
	if plat.Guarded {
		t.Error("platform still guarded after detonation")
	}

	shards := 0
	for _, pt := range w.Particles.All() {
		if pt.Glyph == '❄' {
			shards++
		}
	}
	if shards != w.cfg.Effects.BomberParticles {
		t.Errorf("burst has %d particles, want %d", shards, w.cfg.Effects.BomberParticles)
	}
	if !hasEvent(w.drainEvents(), core.EventFreeze) {
		t.Error("missing freeze event")
	}
}

func TestFrozenPlatformContact(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Players[0]
	w.Platforms[0].Freeze(1000)

	w.Step(core.NewMultiInputFrame())

	if !p.OnFrozenPlatform {
		t.Error("OnFrozenPlatform = false on a frozen floor")
	}
}

func TestBlockHitFlipsEveryEnemy(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Players[0]
	b := w.Block
	a := placeEnemy(w, KindBasic, 60, 100)
	tough := placeEnemy(w, KindTough, 600, 100)

	p.X = b.X + 5
	p.Y = b.Bottom + 2
	p.VY = -6
	p.OnGround = false

	w.Step(core.NewMultiInputFrame())

	if !a.Flipped || !tough.Flipped {
		t.Errorf("flipped basic=%v tough=%v, want both", a.Flipped, tough.Flipped)
	}
	if b.UsesLeft != b.MaxUses-1 {
		t.Errorf("UsesLeft = %d, want %d", b.UsesLeft, b.MaxUses-1)
	}
	if p.Score != 0 {
		t.Errorf("Score = %d, block flips award nothing", p.Score)
	}
	if !hasEvent(w.drainEvents(), core.EventExplosion) {
		t.Error("missing explosion event")
	}
}

func TestPlayerStandsOnBlock(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Players[0]
	top := w.Block.Box().Y
	p.X = w.Block.X + 5
	p.Y = top - p.H - 1
	p.VY = 2
	p.OnGround = false

	w.Step(core.NewMultiInputFrame())

	if p.Y != top-p.H || !p.OnGround {
		t.Errorf("player y=%v ground=%v, want resting at %v", p.Y, p.OnGround, top-p.H)
	}
}

func TestEnemiesBounceApart(t *testing.T) {
	w := newTestWorld(t, 1)
	y := GameHeight - FloorHeight - 30
	a := placeEnemy(w, KindBasic, 300, y)
	b := placeEnemy(w, KindBasic, 320, y)
	b.Dir = -1

	w.Step(core.NewMultiInputFrame())

	if a.Dir != -1 || b.Dir != 1 {
		t.Errorf("directions after bounce a=%d b=%d, want -1 and 1", a.Dir, b.Dir)
	}
	if b.X-a.X <= 20 {
		t.Errorf("enemies not nudged apart: a=%v b=%v", a.X, b.X)
	}
}

func TestMovingPlatformCarriesPlayer(t *testing.T) {
	w := newTestWorld(t, 1)
	plat := newPlatform(config.PlatformSpec{X: 250, Y: 380, W: 140, H: 20, VX: 1, Range: 160})
	w.Platforms = append(w.Platforms, plat)
	p := w.Players[0]
	p.X = plat.X + 40
	p.Y = plat.Y - p.H
	p.OnGround = true

	before := p.X
	w.Step(core.NewMultiInputFrame())

	if p.X-before != plat.DX || plat.DX == 0 {
		t.Errorf("player moved %v with platform drift %v", p.X-before, plat.DX)
	}
}
