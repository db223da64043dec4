package flipfrenzy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// newTestWorld starts a match on level 1 and removes the generated roster
// so tests can place enemies by hand.
func newTestWorld(t *testing.T, players int) *World {
	t.Helper()
	w := NewWorld(config.DefaultFlipConfig(), 1)
	w.Start(players)
	w.Enemies = nil
	return w
}

func placeEnemy(w *World, kind EnemyKind, x, y float64) *Enemy {
	e := w.newEnemy(kind, 1)
	e.X, e.Y, e.Dir = x, y, 1
	w.Enemies = append(w.Enemies, e)
	return e
}

func TestFlipIsIdempotent(t *testing.T) {
	for _, kind := range []EnemyKind{KindBasic, KindFast, KindJumping, KindIceBomber} {
		t.Run(kind.String(), func(t *testing.T) {
			w := newTestWorld(t, 1)
			e := placeEnemy(w, kind, 100, 100)

			if got := e.trigger(w, false); got != flipFlipped {
				t.Fatalf("first trigger = %v, want flipped", got)
			}
			timer, fuse := e.FlipTimer, e.Fuse
			if got := e.trigger(w, false); got != flipIgnored {
				t.Errorf("second trigger = %v, want ignored", got)
			}
			if e.FlipTimer != timer {
				t.Errorf("FlipTimer changed from %v to %v", timer, e.FlipTimer)
			}
			if e.Fuse != fuse {
				t.Errorf("Fuse changed from %v to %v", fuse, e.Fuse)
			}
		})
	}
}

func TestToughEnemyNeedsTwoTriggers(t *testing.T) {
	w := newTestWorld(t, 1)
	e := placeEnemy(w, KindTough, 100, 100)

	if got := e.trigger(w, false); got != flipDamaged {
		t.Fatalf("first trigger = %v, want damaged", got)
	}
	if e.Flipped {
		t.Fatal("tough enemy flipped on first trigger")
	}
	if !e.Damaged || e.HitAnimTimer <= 0 {
		t.Errorf("expected damaged state with hit flicker, got damaged=%v anim=%v", e.Damaged, e.HitAnimTimer)
	}

	if got := e.trigger(w, false); got != flipFlipped {
		t.Fatalf("second trigger = %v, want flipped", got)
	}
	if !e.Flipped {
		t.Error("tough enemy not flipped on second trigger")
	}
}

func TestFullTriggerBypassesToughStaging(t *testing.T) {
	w := newTestWorld(t, 1)
	e := placeEnemy(w, KindTough, 100, 100)

	if got := e.trigger(w, true); got != flipFlipped {
		t.Fatalf("full trigger = %v, want flipped", got)
	}
}

func TestFlipShortensBomberFuse(t *testing.T) {
	w := newTestWorld(t, 1)
	e := placeEnemy(w, KindIceBomber, 100, 100)

	e.trigger(w, false)
	if e.Fuse != w.cfg.Enemies.FlippedFuseMS {
		t.Errorf("Fuse = %v, want %v", e.Fuse, w.cfg.Enemies.FlippedFuseMS)
	}
}

func TestFlippedEnemyRecovers(t *testing.T) {
	w := newTestWorld(t, 1)
	e := placeEnemy(w, KindBasic, 100, 100)
	e.trigger(w, false)
	e.FlipTimer = core.TickMS

	e.advance(w)

	if e.Flipped {
		t.Fatal("enemy still flipped after timer expiry")
	}
	// Recovery hop plus one tick of gravity.
	want := w.cfg.Enemies.RecoverHop + w.cfg.Physics.Gravity
	if math.Abs(e.VY-want) > 1e-9 {
		t.Errorf("VY = %v, want %v", e.VY, want)
	}
}

func TestFlippedEnemyDoesNotWalk(t *testing.T) {
	w := newTestWorld(t, 1)
	e := placeEnemy(w, KindFast, 100, 100)
	e.trigger(w, false)

	x := e.X
	e.advance(w)
	if e.X != x {
		t.Errorf("flipped enemy moved from %v to %v", x, e.X)
	}
}

func TestEnemyRespawnsAtEdge(t *testing.T) {
	w := newTestWorld(t, 1)
	e := placeEnemy(w, KindBasic, -20, 300)
	e.Dir = -1
	e.VY = 5

	e.advance(w)

	var found bool
	for _, sp := range w.cfg.Levels.SpawnPoints {
		if e.X == sp.X && e.Y == sp.Y {
			found = true
		}
	}
	if !found {
		t.Errorf("enemy at (%v, %v), want a spawn point", e.X, e.Y)
	}
	if e.VY != 0 {
		t.Errorf("VY = %v after respawn, want 0", e.VY)
	}
}

func TestJumpingEnemyHops(t *testing.T) {
	w := newTestWorld(t, 1)
	e := placeEnemy(w, KindJumping, 300, 530)
	e.OnGround = true
	e.JumpCooldown = 0

	e.advance(w)

	if e.VY >= 0 {
		t.Errorf("VY = %v, want an upward jump", e.VY)
	}
	if e.JumpCooldown != w.cfg.Enemies.JumpCooldownMS {
		t.Errorf("JumpCooldown = %v, want %v", e.JumpCooldown, w.cfg.Enemies.JumpCooldownMS)
	}
}

func TestBomberPatrolsGuardedPlatform(t *testing.T) {
	w := newTestWorld(t, 1)
	guard := w.claimGuardPlatform()
	if guard < 0 {
		t.Fatal("no guard platform on level 1")
	}
	p := w.Platforms[guard]
	e := placeEnemy(w, KindIceBomber, p.X, p.Y-30)
	e.Guard = guard

	for range 600 {
		e.Fuse = w.cfg.Enemies.FuseMS
		e.advance(w)
		if e.X < p.X || e.X+e.W > p.X+p.W {
			t.Fatalf("bomber left its platform: x=%v platform=[%v,%v]", e.X, p.X, p.X+p.W)
		}
		if e.Y != p.Y-e.H {
			t.Fatalf("bomber y = %v, want %v", e.Y, p.Y-e.H)
		}
	}
}

func TestPlayerIcePhysics(t *testing.T) {
	cfg := config.DefaultFlipConfig()
	p := newPlayer(core.Player1, 100, cfg)
	p.VX = cfg.Player.Speed
	p.OnFrozenPlatform = true

	p.advance(core.NewInputFrame(), cfg)

	want := cfg.Player.Speed * cfg.Physics.IceFriction
	if math.Abs(p.VX-want) > 1e-9 {
		t.Errorf("VX on ice = %v, want %v", p.VX, want)
	}

	// Off the ice the velocity snaps to input.
	p.OnGround = true
	p.advance(core.NewInputFrame(), cfg)
	if p.VX != 0 {
		t.Errorf("VX off ice = %v, want 0", p.VX)
	}
}

func TestPlayerIceAccelerationAdds(t *testing.T) {
	cfg := config.DefaultFlipConfig()
	p := newPlayer(core.Player1, 100, cfg)
	p.OnFrozenPlatform = true

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	p.advance(in, cfg)

	if math.Abs(p.VX-cfg.Physics.IceAccel) > 1e-9 {
		t.Errorf("VX = %v, want %v", p.VX, cfg.Physics.IceAccel)
	}
}

func TestPlayerWraps(t *testing.T) {
	cfg := config.DefaultFlipConfig()
	p := newPlayer(core.Player1, 100, cfg)
	p.X = -14

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	p.advance(in, cfg)

	if p.X < GameWidth-p.W {
		t.Errorf("X = %v, want wrapped to the right edge", p.X)
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	cfg := config.DefaultFlipConfig()
	p := newPlayer(core.Player1, 100, cfg)
	in := core.NewInputFrame()
	in.Set(core.ActionJump)

	if !p.advance(in, cfg) {
		t.Fatal("grounded player did not jump")
	}
	if p.advance(in, cfg) {
		t.Error("airborne player jumped again")
	}
}

func TestExtraLifeOncePerAward(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		points    int
		wantLives int
		wantNext  int
	}{
		{"below threshold", 0, 50, 3, 2000},
		{"crosses one", 1950, 200, 4, 4000},
		{"crosses two", 1900, 2500, 4, 4000},
		{"exact", 1800, 200, 4, 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFlipConfig()
			p := newPlayer(core.Player1, 100, cfg)
			p.Score = tt.start

			p.addScore(tt.points, cfg.Scoring.ExtraLifeEvery)

			if p.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", p.Lives, tt.wantLives)
			}
			if p.NextExtraLife != tt.wantNext {
				t.Errorf("NextExtraLife = %d, want %d", p.NextExtraLife, tt.wantNext)
			}
			if p.Score != tt.start+tt.points {
				t.Errorf("Score = %d, want %d", p.Score, tt.start+tt.points)
			}
		})
	}
}

func TestHurtRespectsInvulnerability(t *testing.T) {
	cfg := config.DefaultFlipConfig()
	p := newPlayer(core.Player1, 100, cfg)

	if !p.hurt(cfg.Player.InvulnerableMS) {
		t.Fatal("first hit did not land")
	}
	if p.Lives != cfg.Player.Lives-1 {
		t.Errorf("Lives = %d, want %d", p.Lives, cfg.Player.Lives-1)
	}
	if p.hurt(cfg.Player.InvulnerableMS) {
		t.Error("hit landed during invulnerability")
	}
}

func TestHurtLastLifeKills(t *testing.T) {
	cfg := config.DefaultFlipConfig()
	p := newPlayer(core.Player1, 100, cfg)
	p.Lives = 1

	p.hurt(cfg.Player.InvulnerableMS)

	if !p.Dead || p.Lives != 0 {
		t.Errorf("Dead=%v Lives=%d, want dead with 0 lives", p.Dead, p.Lives)
	}
	if p.hurt(cfg.Player.InvulnerableMS) {
		t.Error("dead player was hurt again")
	}
}

func TestBlockResetRoundTrip(t *testing.T) {
	b := NewExplosiveBlock(config.DefaultFlipConfig().Block)
	baseH, uses := b.H, b.UsesLeft

	for b.Active() {
		if !b.Trigger() {
			t.Fatal("ready block did not trigger")
		}
		b.Cooldown = 0
	}
	if b.H != 0 {
		t.Errorf("H = %v after all uses, want 0", b.H)
	}

	b.Reset()
	if b.H != baseH || b.UsesLeft != uses || b.Cooldown != 0 {
		t.Errorf("after reset H=%v uses=%d cooldown=%v, want H=%v uses=%d cooldown=0",
			b.H, b.UsesLeft, b.Cooldown, baseH, uses)
	}
}

func TestBlockCooldown(t *testing.T) {
	b := NewExplosiveBlock(config.DefaultFlipConfig().Block)
	if !b.Trigger() {
		t.Fatal("fresh block did not trigger")
	}
	if b.Trigger() {
		t.Error("block triggered during cooldown")
	}
	for b.Cooldown > 0 {
		b.advance()
	}
	if !b.Ready() {
		t.Error("block not ready after cooldown")
	}
}

func TestBlockKeepsBottomEdge(t *testing.T) {
	b := NewExplosiveBlock(config.DefaultFlipConfig().Block)
	bottom := b.Box().Bottom()
	b.Trigger()
	if got := b.Box().Bottom(); math.Abs(got-bottom) > 1e-9 {
		t.Errorf("bottom moved from %v to %v", bottom, got)
	}
	if b.H >= b.BaseH {
		t.Errorf("H = %v, want shrunk below %v", b.H, b.BaseH)
	}
}

func TestPlatformPatrolBounds(t *testing.T) {
	p := newPlatform(config.PlatformSpec{X: 250, Y: 320, W: 140, H: 20, VX: 1.5, Range: 160})

	reversed := false
	for range 1000 {
		vx := p.VX
		p.advance()
		if p.X < p.StartX || p.X > p.StartX+p.Range {
			t.Fatalf("X = %v outside [%v, %v]", p.X, p.StartX, p.StartX+p.Range)
		}
		if p.VX != vx {
			reversed = true
		}
	}
	if !reversed {
		t.Error("platform never reversed")
	}
}

func TestPlatformThaws(t *testing.T) {
	p := newFloor()
	p.Freeze(100)
	p.Freeze(50)
	if p.FrozenTimer != 100 {
		t.Errorf("FrozenTimer = %v, want the longer freeze kept", p.FrozenTimer)
	}
	for range 10 {
		p.advance()
	}
	if p.Frozen {
		t.Error("platform still frozen after its timer ran out")
	}
}

func TestParticlesExpire(t *testing.T) {
	s := NewParticles(1, 0.25)
	s.Burst(10, 10, 5, core.ColorRed, 0)
	s.Popup(10, 10, "+50", core.ColorYellow)

	if s.Len() != 6 {
		t.Fatalf("Len = %d, want 6", s.Len())
	}
	for range 4 {
		s.Advance()
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after full decay, want 0", s.Len())
	}
}

func TestParseKind(t *testing.T) {
	for k := KindBasic; k < kindCount; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("dragon"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
