package game

import (
	"strings"
	"testing"

	"github.com/nvoss/tetra/internal/core"
	"github.com/nvoss/tetra/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"marathon", "sprint", "ultra"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestGoalReached(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		lines    int
		tick     uint64
		tickRate int
		want     bool
	}{
		{"marathon never ends", ModeMarathon, 1000, 1 << 30, 60, false},
		{"sprint below goal", ModeSprint, 39, 0, 60, false},
		{"sprint at goal", ModeSprint, 40, 0, 60, true},
		{"sprint past goal", ModeSprint, 43, 0, 60, true},
		{"ultra before time", ModeUltra, 0, 7199, 60, false},
		{"ultra at time", ModeUltra, 0, 7200, 60, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := goalReached(tc.mode, tc.lines, tc.tick, tc.tickRate); got != tc.want {
				t.Errorf("goalReached(%s, %d, %d, %d) = %v, want %v",
					tc.mode, tc.lines, tc.tick, tc.tickRate, got, tc.want)
			}
		})
	}
}

func TestUltraEndsAfterTimeLimit(t *testing.T) {
	g := New(ModeUltra)
	// Tick rate 1 keeps the test short: the time limit is 120 ticks and
	// gravity barely moves the piece in that window.
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 42})

	for i := 0; i < 120; i++ {
		if g.State().GameOver {
			t.Fatalf("game ended early at step %d", i)
		}
		g.Step(frame())
	}

	if !g.Won() {
		t.Fatal("ultra should be won when the time limit is reached")
	}
	if !g.State().GameOver {
		t.Error("won game should report GameOver to the platform")
	}

	// Simulation is frozen until restart.
	before := g.Snapshot()
	g.Step(frame(core.ActionSoftDrop))
	if g.Snapshot() != before {
		t.Error("finished game should ignore play input")
	}

	// Restart starts a fresh game.
	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Won || snap.Tick != 0 || snap.Core.Score != 0 {
		t.Errorf("restart produced %+v, expected fresh state", snap)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New(ModeMarathon)
	g.Reset(testRuntime(7))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.Snapshot()
	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionSoftDrop))
	}
	if g.Snapshot() != before {
		t.Error("paused game must not advance")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestHardDropLocksAndSpawnsNext(t *testing.T) {
	g := New(ModeMarathon)
	g.Reset(testRuntime(11))

	g.Step(frame(core.ActionHardDrop))
	if g.Snapshot().Core.PieceActive {
		t.Fatal("hard drop should lock the piece")
	}

	// The next frame brings in the next piece.
	g.Step(frame())
	snap := g.Snapshot().Core
	if !snap.PieceActive {
		t.Fatal("next piece should spawn on the following frame")
	}

	locked := 0
	for row := range snap.Board {
		for col := range snap.Board[row] {
			if snap.Board[row][col] != 0 {
				locked++
			}
		}
	}
	if locked != 4 {
		t.Errorf("board has %d locked cells, expected 4", locked)
	}
}

func TestGameDeterminism(t *testing.T) {
	script := []core.InputFrame{
		frame(core.ActionMoveLeft),
		frame(),
		frame(core.ActionRotateCW),
		frame(core.ActionSoftDrop),
		frame(core.ActionMoveRight),
		frame(core.ActionHardDrop),
		frame(),
	}

	run := func() Snapshot {
		g := New(ModeMarathon)
		g.Reset(testRuntime(1234))
		for i := 0; i < 600; i++ {
			g.Step(script[i%len(script)])
			if g.State().GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	if run() != run() {
		t.Error("same seed and input script should produce identical snapshots")
	}
}

func TestRenderShowsBoardAndHUD(t *testing.T) {
	g := New(ModeMarathon)
	g.Reset(testRuntime(3))

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if got := dst.Get(boardX, boardY); got != '┌' {
		t.Errorf("playfield box corner = %q, expected box drawing", got)
	}
	if !strings.Contains(dst.Row(boardY+2), "Score: 0") {
		t.Errorf("HUD row missing score: %q", dst.Row(boardY+2))
	}
	if !strings.Contains(dst.Row(boardY), "Marathon") {
		t.Errorf("HUD row missing title: %q", dst.Row(boardY))
	}

	// The spawned piece is visible near the top of the playfield.
	found := false
	for y := boardY + 1; y < boardY+3; y++ {
		if strings.ContainsRune(dst.Row(y), BlockChar) {
			found = true
		}
	}
	if !found {
		t.Error("active piece not rendered in the spawn rows")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(ModeMarathon)
	g.Reset(testRuntime(3))

	dst := core.NewScreen(30, 10)
	g.Render(dst)

	if !strings.Contains(dst.String(), "too small") {
		t.Error("undersized screen should show a resize hint")
	}
}
