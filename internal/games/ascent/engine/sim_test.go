package engine

import (
	"testing"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
)

func newTestSim(t *testing.T, seed int64, mutate func(*config.AscentConfig), l Listener) *Simulation {
	t.Helper()
	cfg := config.DefaultAscentConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(Options{Config: cfg, Seed: seed, Listener: l, Debug: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// isolate empties the generated level so a test can place entities by hand.
func isolate(s *Simulation) *World {
	w := s.world
	w.Platforms = w.Platforms[:0]
	w.Coins = w.Coins[:0]
	w.Hazards = w.Hazards[:0]
	w.Particles = w.Particles[:0]
	w.Frontier = w.Camera - 10000
	return w
}

type counter struct {
	scores    []int
	coins     int
	roundEnds int
	cues      []core.Cue
}

func (c *counter) hooks() Hooks {
	return Hooks{
		ScoreChange:    func(score int) { c.scores = append(c.scores, score) },
		CoinsCollected: func(n int) { c.coins += n },
		RoundEnd:       func() { c.roundEnds++ },
		Cue:            func(cue core.Cue) { c.cues = append(c.cues, cue) },
	}
}

func hasCue(events []Event, cue core.Cue) bool {
	for _, c := range Cues(events) {
		if c == cue {
			return true
		}
	}
	return false
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultAscentConfig()
	cfg.World.Width = 0
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Fatal("expected error for zero world width")
	}
}

func TestTickBeforeStartPanics(t *testing.T) {
	s := newTestSim(t, 1, nil, nil)
	defer func() {
		if recover() == nil {
			t.Error("Tick before Start should panic")
		}
	}()
	s.Tick()
}

func TestStartResetsRound(t *testing.T) {
	s := newTestSim(t, 7, nil, nil)
	if s.State() != StateIdle {
		t.Fatalf("state = %v, want idle", s.State())
	}
	if s.Latest() != nil {
		t.Error("Latest should be nil before Start")
	}

	s.Start()
	snap := s.Latest()
	if snap == nil || snap.State != StateRunning {
		t.Fatalf("after Start: %+v", snap)
	}
	if snap.Avatar.VY != s.cfg.Physics.JumpImpulse {
		t.Errorf("start VY = %v, want jump impulse %v", snap.Avatar.VY, s.cfg.Physics.JumpImpulse)
	}
	if snap.Avatar.X != snap.Width/2 {
		t.Errorf("start X = %v, want centre", snap.Avatar.X)
	}
	if snap.Score != 0 || snap.CoinsCollected != 0 || len(snap.Particles) != 0 {
		t.Errorf("start should be clean: score=%d coins=%d particles=%d", snap.Score, snap.CoinsCollected, len(snap.Particles))
	}

	for i := 0; i < 30; i++ {
		s.Tick()
	}
	s.Start()
	if got := s.Latest().Tick; got != 0 {
		t.Errorf("tick after restart = %d, want 0", got)
	}
}

func TestBounceFromRest(t *testing.T) {
	s := newTestSim(t, 1, nil, nil)
	s.Start()
	w := isolate(s)
	w.Platforms = append(w.Platforms, Platform{ID: w.ids.Next(), X: 0, Y: 500, Width: w.Width})
	w.Avatar = Avatar{X: 200, Y: 488}
	s.SetTarget(200)

	res := s.Tick()
	if res.Snapshot.Avatar.VY != -14 {
		t.Fatalf("VY after landing = %v, want -14", res.Snapshot.Avatar.VY)
	}
	if !hasCue(res.Events, core.CueBounce) {
		t.Error("expected a bounce cue")
	}
	if got := len(res.Snapshot.Particles); got != s.cfg.Effects.BounceBurst {
		t.Errorf("particles = %d, want %d", got, s.cfg.Effects.BounceBurst)
	}
}

func TestNoLandingWhileAscending(t *testing.T) {
	s := newTestSim(t, 1, nil, nil)
	s.Start()
	w := isolate(s)
	w.Platforms = append(w.Platforms, Platform{ID: w.ids.Next(), X: 0, Y: 500, Width: w.Width})
	// Bottom edge ends inside the landing band, but the avatar is still rising.
	w.Avatar = Avatar{X: 200, Y: 493, VY: -1}
	s.SetTarget(200)

	res := s.Tick()
	if res.Snapshot.Avatar.VY == s.cfg.Physics.JumpImpulse {
		t.Error("ascending avatar must not land")
	}
	if hasCue(res.Events, core.CueBounce) {
		t.Error("unexpected bounce cue while ascending")
	}
}

func TestBreakingPlatformBreaksOnce(t *testing.T) {
	s := newTestSim(t, 1, nil, nil)
	s.Start()
	w := isolate(s)
	w.Platforms = append(w.Platforms, Platform{ID: w.ids.Next(), X: 150, Y: 500, Width: 100, Kind: PlatformBreaking})
	w.Avatar = Avatar{X: 200, Y: 488}
	s.SetTarget(200)

	res := s.Tick()
	if !res.Snapshot.Platforms[0].Broken {
		t.Fatal("breaking platform should be broken after landing")
	}
	want := s.cfg.Effects.BounceBurst + s.cfg.Effects.BreakBurst
	if got := len(res.Snapshot.Particles); got != want {
		t.Errorf("particles = %d, want %d", got, want)
	}

	// Drop onto the same platform again.
	w.Avatar = Avatar{X: 200, Y: 488}
	before := len(w.Particles)
	res = s.Tick()
	if hasCue(res.Events, core.CueBounce) {
		t.Error("broken platform must not bounce again")
	}
	if res.Snapshot.Avatar.VY < 0 {
		t.Errorf("VY = %v, avatar should keep falling through", res.Snapshot.Avatar.VY)
	}
	if got := len(res.Snapshot.Particles); got > before {
		t.Errorf("particles grew from %d to %d without a new burst", before, got)
	}
	if !res.Snapshot.Platforms[0].Broken {
		t.Error("broken flag must stay set")
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	var c counter
	s := newTestSim(t, 1, nil, c.hooks())
	s.Start()
	w := isolate(s)
	w.Coins = append(w.Coins, Coin{ID: w.ids.Next(), X: 200, Y: 300})
	w.Avatar = Avatar{X: 200, Y: 300}
	s.SetTarget(200)

	res := s.Tick()
	if c.coins != 1 {
		t.Fatalf("coins reported = %d, want 1", c.coins)
	}
	if res.Snapshot.CoinsCollected != 1 || !res.Snapshot.Coins[0].Collected {
		t.Errorf("snapshot coins=%d collected=%v", res.Snapshot.CoinsCollected, res.Snapshot.Coins[0].Collected)
	}
	if !hasCue(res.Events, core.CueCoin) {
		t.Error("expected a coin cue")
	}

	for i := 0; i < 5; i++ {
		w.Avatar = Avatar{X: 200, Y: 300}
		res = s.Tick()
		if hasCue(res.Events, core.CueCoin) {
			t.Fatalf("tick %d: coin cue fired again", i)
		}
	}
	if c.coins != 1 || res.Snapshot.CoinsCollected != 1 {
		t.Errorf("coins after re-overlap = %d/%d, want 1", c.coins, res.Snapshot.CoinsCollected)
	}
}

func TestRoundEndsOnceOnHazard(t *testing.T) {
	var c counter
	s := newTestSim(t, 1, nil, c.hooks())
	s.Start()
	w := isolate(s)
	w.Hazards = append(w.Hazards, Hazard{ID: w.ids.Next(), X: 200, Y: 300, Kind: HazardSpike})
	w.Avatar = Avatar{X: 200, Y: 300}
	s.SetTarget(200)

	res := s.Tick()
	if s.State() != StateTerminal || res.Snapshot.State != StateTerminal {
		t.Fatalf("state = %v, want terminal", s.State())
	}
	if !hasCue(res.Events, core.CueGameOver) {
		t.Error("expected a game over cue")
	}

	last := res.Snapshot
	for i := 0; i < 10; i++ {
		res = s.Tick()
		if len(res.Events) != 0 {
			t.Fatalf("terminal tick %d raised events: %v", i, res.Events)
		}
		if res.Snapshot != last {
			t.Fatal("terminal tick should return the last snapshot")
		}
	}
	if c.roundEnds != 1 {
		t.Errorf("OnRoundEnd fired %d times, want 1", c.roundEnds)
	}
}

func TestRoundEndsOnFallOff(t *testing.T) {
	var c counter
	s := newTestSim(t, 1, nil, c.hooks())
	s.Start()
	w := isolate(s)
	w.Avatar = Avatar{X: 200, Y: w.Camera + w.ViewHeight + s.cfg.World.FallMargin + 1}

	s.Tick()
	s.Tick()
	if c.roundEnds != 1 {
		t.Errorf("OnRoundEnd fired %d times, want 1", c.roundEnds)
	}
}

func TestEndRoundLatch(t *testing.T) {
	var c counter
	s := newTestSim(t, 1, nil, c.hooks())
	s.Start()
	s.endRound()
	s.endRound()
	s.endRound()
	if c.roundEnds != 1 {
		t.Errorf("OnRoundEnd fired %d times, want 1", c.roundEnds)
	}
	if !s.world.GameOver() {
		t.Error("latch should be set")
	}

	s.Start()
	if s.world.GameOver() || s.State() != StateRunning {
		t.Error("Start should clear the latch")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	s := newTestSim(t, 3, nil, nil)
	s.Start()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	s.Pause()
	if !s.Paused() || !s.Latest().Paused {
		t.Fatal("Pause should be reflected in the snapshot")
	}

	frozen := s.Latest()
	hash := frozen.Hash()
	for i := 0; i < 50; i++ {
		s.SetTarget(float64(i * 7))
		res := s.Tick()
		if len(res.Events) != 0 {
			t.Fatal("paused tick raised events")
		}
		if res.Snapshot.Hash() != hash || res.Tick != frozen.Tick {
			t.Fatalf("paused tick %d changed the world", i)
		}
	}

	s.Resume()
	if res := s.Tick(); res.Tick != frozen.Tick+1 {
		t.Errorf("tick after resume = %d, want %d", res.Tick, frozen.Tick+1)
	}
}

func TestSimulationDeterminism(t *testing.T) {
	run := func(seed int64) []uint64 {
		s := newTestSim(t, seed, nil, nil)
		s.Start()
		hashes := make([]uint64, 0, 600)
		for i := 0; i < 600; i++ {
			s.SetTarget(float64((i * 37) % 400))
			res := s.Tick()
			if s.State() == StateTerminal {
				s.Start()
			}
			hashes = append(hashes, res.Snapshot.Hash())
		}
		return hashes
	}

	a, b := run(42), run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: hashes differ for equal seeds", i)
		}
	}

	c := run(43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical runs")
	}
}

func TestFlightKeepsWorldBounded(t *testing.T) {
	s := newTestSim(t, 99, func(cfg *config.AscentConfig) {
		cfg.Generation.Hazards.Probability = 0
	}, nil)
	s.Start()

	prevCamera, prevScore := 0.0, 0
	maxLive := 0
	for i := 0; i < 10000; i++ {
		// Keep the avatar rising so the round never ends.
		s.world.Avatar.VY = -10
		s.SetTarget(float64((i * 13) % 400))
		snap := s.Tick().Snapshot

		if snap.Camera > prevCamera {
			t.Fatalf("tick %d: camera regressed %v -> %v", i, prevCamera, snap.Camera)
		}
		if snap.Score < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prevScore, snap.Score)
		}
		prevCamera, prevScore = snap.Camera, snap.Score
		maxLive = max(maxLive, snap.Live())

		visible := 0
		for _, p := range snap.Platforms {
			if p.Y >= snap.Camera && p.Y <= snap.Camera+snap.ViewHeight {
				visible++
			}
		}
		if visible < 4 {
			t.Fatalf("tick %d: only %d platforms in view", i, visible)
		}
	}

	if s.State() != StateRunning {
		t.Fatalf("round ended during flight: %v", s.State())
	}
	if prevScore < 5000 {
		t.Errorf("score = %d, flight should have climbed far", prevScore)
	}
	if maxLive > 100 {
		t.Errorf("live entities peaked at %d, want a bounded window", maxLive)
	}
}

func TestScoreEventsMatchScore(t *testing.T) {
	var c counter
	s := newTestSim(t, 5, func(cfg *config.AscentConfig) {
		cfg.Generation.Hazards.Probability = 0
	}, c.hooks())
	s.Start()
	for i := 0; i < 300; i++ {
		s.world.Avatar.VY = -8
		s.Tick()
	}
	if len(c.scores) == 0 {
		t.Fatal("no score events while climbing")
	}
	for i := 1; i < len(c.scores); i++ {
		if c.scores[i] <= c.scores[i-1] {
			t.Fatalf("score events not strictly increasing: %v", c.scores)
		}
	}
	if last := c.scores[len(c.scores)-1]; last != s.Latest().Score {
		t.Errorf("last score event %d, snapshot score %d", last, s.Latest().Score)
	}
}

func TestOpeningArc(t *testing.T) {
	s := newTestSim(t, 11, nil, nil)
	s.Start()
	startY := s.Latest().Avatar.Y

	prevY := startY
	rising := true
	apex := startY
	for i := 0; i < 200; i++ {
		res := s.Tick()
		y := res.Snapshot.Avatar.Y
		if rising && y > prevY {
			rising = false
			apex = prevY
		}
		if !rising && hasCue(res.Events, core.CueBounce) {
			if res.Snapshot.Avatar.VY != s.cfg.Physics.JumpImpulse {
				t.Errorf("VY after bounce = %v", res.Snapshot.Avatar.VY)
			}
			if apex >= startY {
				t.Errorf("apex %v should be above start %v", apex, startY)
			}
			return
		}
		prevY = y
	}
	t.Fatal("avatar never came back down onto a platform")
}

func TestSetSkinRepublishes(t *testing.T) {
	s := newTestSim(t, 1, nil, nil)
	s.Start()
	skin, ok := s.cfg.SkinByID("pink")
	if !ok {
		t.Fatal("pink skin missing from defaults")
	}
	s.SetSkin(skin)
	if got := s.Latest().Skin.ID; got != "pink" {
		t.Errorf("snapshot skin = %q, want pink", got)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestSim(t, 1, nil, nil)
	s.Start()
	snap := s.Latest()
	snap.Platforms[0].X = -999
	if s.world.Platforms[0].X == -999 {
		t.Error("mutating a snapshot must not touch the world")
	}
}

func TestViewHeightChangeWaitsForNextRound(t *testing.T) {
	cfg := config.DefaultAscentConfig()
	build := func() *Simulation {
		s, err := New(Options{Config: cfg, Seed: 21})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		s.Start()
		return s
	}
	resized, control := build(), build()
	for i := 0; i < 5; i++ {
		resized.Tick()
		control.Tick()
	}

	resized.SetViewHeight(2 * DefaultViewHeight)
	for i := 0; i < 3; i++ {
		resized.Tick()
		control.Tick()
	}
	resized.SetViewHeight(DefaultViewHeight / 2)
	for i := 0; i < 3; i++ {
		a, b := resized.Tick(), control.Tick()
		if a.Snapshot.Score != b.Snapshot.Score {
			t.Fatalf("score after resize = %d, want %d", a.Snapshot.Score, b.Snapshot.Score)
		}
		if a.Snapshot.Hash() != b.Snapshot.Hash() {
			t.Fatal("resize changed the running round")
		}
	}
	if resized.State() != StateRunning {
		t.Fatalf("state after resize = %v, want running", resized.State())
	}

	resized.Start()
	if got := resized.Latest().ViewHeight; got != DefaultViewHeight/2 {
		t.Errorf("view height after Start = %v, want %v", got, DefaultViewHeight/2)
	}
}

func TestShrinkDoesNotEndRound(t *testing.T) {
	s, err := New(Options{Config: config.DefaultAscentConfig(), Seed: 4, ViewHeight: 1100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start()
	w := isolate(s)
	w.Avatar = Avatar{X: 200, Y: w.Camera + w.ViewHeight*0.9}

	s.SetViewHeight(DefaultViewHeight)
	s.Tick()
	if s.State() != StateRunning {
		t.Errorf("state after shrink = %v, want running", s.State())
	}
}
