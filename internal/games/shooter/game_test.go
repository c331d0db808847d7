package shooter

import (
	"strings"
	"testing"

	"github.com/minigamehub/arcade/internal/config"
	"github.com/minigamehub/arcade/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func hasEvent(res core.StepResult, kind core.EventKind) bool {
	for _, ev := range res.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestGameWaitsForEnter(t *testing.T) {
	g := newTestGame(t, 1)

	for range 120 {
		g.Step(idle())
	}
	if g.Started() || g.World().Progress().Elapsed != 0 {
		t.Fatal("simulation ran before Enter")
	}

	res := g.Step(press(core.ActionConfirm))
	if !g.Started() {
		t.Fatal("Enter did not start the run")
	}
	if !hasEvent(res, core.EventStarted) {
		t.Error("no started event")
	}

	for range 60 {
		g.Step(idle())
	}
	if got := g.World().Progress().Elapsed; got != 1 {
		t.Errorf("elapsed = %d, want 1", got)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P did not pause")
	}
	for range 120 {
		g.Step(idle())
	}
	if got := g.World().Progress().Elapsed; got != 0 {
		t.Errorf("elapsed while paused = %d, want 0", got)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("P did not resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))

	// Restart is ignored while the run is alive
	g.Step(press(core.ActionRestart))
	first := g.World()

	first.Player.HP = 5
	first.Enemies = append(first.Enemies, still(first.Player.X, first.Player.Y, 16, 50))
	res := g.Step(idle())
	if !res.State.GameOver || !hasEvent(res, core.EventGameOver) {
		t.Fatalf("state = %+v, want game over", res.State)
	}

	res = g.Step(press(core.ActionRestart))
	if g.World() == first {
		t.Fatal("R did not build a new world")
	}
	if res.State.GameOver || g.World().Player.HP != 100 {
		t.Errorf("restarted state = %+v hp %v, want fresh run", res.State, g.World().Player.HP)
	}
}

func TestGameChoiceShortcut(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	g.World().AddExp(100)
	g.World().drainEvents()

	if !g.State().Paused {
		t.Fatal("open upgrade step should pause")
	}

	want := g.World().Offers()[2].Title
	res := g.Step(press(core.ActionChoice3))
	if g.World().Choice() != ChoiceRelic {
		t.Fatalf("choice = %s, want relic after upgrade", g.World().Choice())
	}
	if len(res.Events) != 1 || res.Events[0].Message != want {
		t.Errorf("events = %+v, want upgrade %q", res.Events, want)
	}

	// A relic step has no third option
	g.Step(press(core.ActionChoice3))
	if g.World().Choice() != ChoiceRelic {
		t.Fatal("out-of-range shortcut resolved the relic step")
	}

	res = g.Step(press(core.ActionChoice2))
	if g.World().Choice() != ChoiceNone || !hasEvent(res, core.EventRelicChosen) {
		t.Errorf("choice = %s, want none after relic", g.World().Choice())
	}
}

func TestGameChoiceClick(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	g.World().AddExp(100)

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	_, cards := g.cardRects(UpgradeOffers)
	want := g.World().Offers()[1].Title
	if !strings.Contains(screen.Row(cards[1].Y+1), want) {
		t.Fatalf("card row %q does not show %q", screen.Row(cards[1].Y+1), want)
	}

	// A click outside every card does nothing
	miss := core.NewInputFrame()
	miss.ClickAt(0, 0)
	g.Step(miss)
	if g.World().Choice() != ChoiceUpgrade {
		t.Fatal("click outside the cards resolved the step")
	}

	cx, cy := cards[1].Center()
	hit := core.NewInputFrame()
	hit.ClickAt(cx, cy)
	res := g.Step(hit)

	if g.World().Choice() != ChoiceRelic {
		t.Fatalf("choice = %s, want relic after click", g.World().Choice())
	}
	if !hasEvent(res, core.EventUpgradeChosen) || res.Events[0].Message != want {
		t.Errorf("events = %+v, want upgrade %q", res.Events, want)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		g := newTestGame(t, seed)
		g.Step(press(core.ActionConfirm))

		dirs := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}
		aims := []core.Action{core.ActionAimUp, core.ActionAimRight, core.ActionAimDown, core.ActionAimLeft}
		for i := range 4000 {
			in := core.NewInputFrame()
			in.Hold(dirs[(i/90)%len(dirs)])
			in.Hold(aims[(i/40)%len(aims)])
			if g.World().Choice() != ChoiceNone {
				in.Set(core.ActionChoice1)
			}
			if g.World().Over() {
				break
			}
			g.Step(in)
		}
		return g.Snapshot().Hash()
	}

	a := run(42)
	b := run(42)
	if a != b {
		t.Errorf("same seed diverged: %x != %x", a, b)
	}
}

func TestGameSummary(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionConfirm))
	for range 120 {
		g.Step(idle())
	}

	s := g.Summary()
	if s.Seconds != 2 || s.Score != 2 || s.Level != 1 || s.Won {
		t.Errorf("summary = %+v, want 2s, score 2, level 1", s)
	}
}

func TestGameRender(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  []string
	}{
		{
			name:  "start screen",
			setup: func(g *Game) {},
			want:  []string{"Score: 0", "Press Enter to start"},
		},
		{
			name: "upgrade modal",
			setup: func(g *Game) {
				g.Step(press(core.ActionConfirm))
				g.World().AddExp(100)
			},
			want: []string{"Level: 2", "Level Up! Choose an upgrade", "[1]", "[3]"},
		},
		{
			name: "game over",
			setup: func(g *Game) {
				g.Step(press(core.ActionConfirm))
				w := g.World()
				w.Player.HP = 5
				w.Enemies = append(w.Enemies, still(w.Player.X, w.Player.Y, 16, 50))
				g.Step(idle())
			},
			want: []string{"Game Over", "Press R to restart"},
		},
		{
			name: "boss",
			setup: func(g *Game) {
				g.Step(press(core.ActionConfirm))
				g.World().Enemies = append(g.World().Enemies, Enemy{X: 100, Y: 100, W: 40, H: 40, HP: 200, Kind: Boss})
			},
			want: []string{"BOSS", "@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			tt.setup(g)
			screen := core.NewScreen(80, 30)
			g.Render(screen)
			out := screen.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("render missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too") {
		t.Errorf("tiny screen should show a size warning:\n%s", screen.String())
	}
}
