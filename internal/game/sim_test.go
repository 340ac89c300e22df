package game

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/deepdig/deepdig/internal/world"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSim returns a sim with default tuning, no rare finds and rocks that
// always spawn at the right edge, clear of the starting player position.
func newTestSim(t *testing.T, st PlayerState) *Sim {
	t.Helper()
	return NewSim(world.DefaultTuning(), WithRoller(noRare), WithLogger(quietLogger()), WithState(st))
}

func TestCrossedMilestone(t *testing.T) {
	cases := []struct {
		before, after float64
		want          bool
	}{
		{9.9, 10.0, true},
		{10.0, 10.05, false},
		{0, 9.99, false},
		{0, 0, false},
		{19.5, 31, true}, // jumped over 20 and 30
		{29.9, 29.99, false},
		{39.95, 40.0, true},
	}
	for _, c := range cases {
		if got := CrossedMilestone(c.before, c.after, 10); got != c.want {
			t.Fatalf("CrossedMilestone(%g, %g) = %v, want %v", c.before, c.after, got, c.want)
		}
	}
	if CrossedMilestone(0, 100, 0) {
		t.Fatalf("zero step should never cross")
	}
}

func TestCaveInActivatesOncePerMilestone(t *testing.T) {
	st := NewPlayerState()
	st.Depth = 9.9
	st.Equipment[world.EquipHiredMiner] = 1
	sim := newTestSim(t, st)

	if snap := sim.Snapshot(); snap.CaveIn != nil {
		t.Fatalf("cave-in active before the milestone")
	}

	sim.Mine()
	snap := sim.Snapshot()
	if snap.Player.Depth < 10 {
		t.Fatalf("depth = %g, want >= 10", snap.Player.Depth)
	}
	if snap.CaveIn == nil || snap.CaveIn.Outcome != OutcomePending {
		t.Fatalf("cave-in did not activate at 10m")
	}
	runID := snap.CaveIn.RunID

	// One auto-mine interval moves depth from 10.0 to 10.05.
	for range 60 {
		sim.Tick()
	}
	snap = sim.Snapshot()
	if !approx(snap.Player.Depth, 10.05) {
		t.Fatalf("depth = %g, want 10.05", snap.Player.Depth)
	}
	if snap.CaveIn == nil || snap.CaveIn.RunID != runID {
		t.Fatalf("cave-in was replaced after a non-crossing tick")
	}
	if snap.CaveIn.Outcome != OutcomePending {
		t.Fatalf("outcome = %v, want pending", snap.CaveIn.Outcome)
	}
}

func TestCaveInWinGrantsExperience(t *testing.T) {
	st := NewPlayerState()
	st.Depth = 9.9
	sim := newTestSim(t, st)

	sim.Mine()
	before := sim.Snapshot().Player.Experience
	for range 600 {
		sim.Tick()
	}

	snap := sim.Snapshot()
	if snap.CaveIn == nil || snap.CaveIn.Outcome != OutcomeWon {
		t.Fatalf("cave-in = %+v, want won", snap.CaveIn)
	}
	if got := snap.Player.Experience - before; !approx(got, 50) {
		t.Fatalf("experience gained = %g, want 50", got)
	}

	// Dismissing a finished run changes nothing else.
	sim.Dismiss()
	after := sim.Snapshot()
	if after.CaveIn != nil {
		t.Fatalf("overlay still shown after dismiss")
	}
	if after.Player.Experience != snap.Player.Experience {
		t.Fatalf("result applied twice")
	}
}

func TestCaveInLossResetsCurrencyOnly(t *testing.T) {
	st := NewPlayerState()
	st.Depth = 9.9
	st.Currency = 500
	st.Resources[world.ResourceIron] = 7
	sim := newTestSim(t, st)

	sim.Mine()
	sim.Dismiss()

	snap := sim.Snapshot()
	if snap.CaveIn != nil {
		t.Fatalf("overlay still shown after dismiss")
	}
	p := snap.Player
	if p.Currency != 0 {
		t.Fatalf("currency = %g, want 0", p.Currency)
	}
	if p.Depth < 10 {
		t.Fatalf("depth reduced to %g", p.Depth)
	}
	if p.Resources[world.ResourceIron] != 7 || p.Resources[world.ResourceStone] != 1 {
		t.Fatalf("resources changed: %v", p.Resources)
	}
}

func TestCaveInFromFreshSwings(t *testing.T) {
	sim := newTestSim(t, NewPlayerState())
	for range 99 {
		sim.Mine()
	}
	if snap := sim.Snapshot(); snap.CaveIn != nil {
		t.Fatalf("cave-in started early at depth %g", snap.Player.Depth)
	}

	sim.Mine()
	snap := sim.Snapshot()
	if snap.CaveIn == nil || snap.CaveIn.Outcome != OutcomePending {
		t.Fatalf("100th swing to depth %.17g did not start a cave-in", snap.Player.Depth)
	}
	if got := snap.Player.CurrentResource(); got != world.ResourceIron {
		t.Fatalf("resource at 10m = %v, want iron", got)
	}
}

func TestCaveInFromAutoMining(t *testing.T) {
	st := NewPlayerState()
	st.Equipment[world.EquipHiredMiner] = 1
	sim := newTestSim(t, st)
	interval := world.DefaultTuning().Ticks(world.DefaultTuning().AutoMineInterval)

	for range 199 * interval {
		sim.Tick()
	}
	if snap := sim.Snapshot(); snap.CaveIn != nil {
		t.Fatalf("cave-in started early at depth %g", snap.Player.Depth)
	}

	for range interval {
		sim.Tick()
	}
	snap := sim.Snapshot()
	if snap.Player.Depth != 10 {
		t.Fatalf("depth after 200 intervals = %.17g, want 10", snap.Player.Depth)
	}
	if snap.CaveIn == nil || snap.CaveIn.Outcome != OutcomePending {
		t.Fatalf("auto-mining past 10m did not start a cave-in")
	}
}

func TestMilestoneIgnoredWhileCaveInActive(t *testing.T) {
	st := NewPlayerState()
	st.Depth = 9.9
	var logs bytes.Buffer
	sim := NewSim(world.DefaultTuning(), WithRoller(noRare), WithState(st),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	sim.Mine()
	runID := sim.Snapshot().CaveIn.RunID

	sim.mu.Lock()
	sim.state.Depth = 19.95
	sim.mu.Unlock()
	sim.Mine()

	snap := sim.Snapshot()
	if snap.CaveIn.RunID != runID {
		t.Fatalf("a second cave-in replaced the active one")
	}
	if !strings.Contains(logs.String(), "milestone ignored") {
		t.Fatalf("ignored milestone missing from the info log:\n%s", logs.String())
	}
	last := snap.Messages[len(snap.Messages)-1]
	if last.Priority != MsgWarning || !strings.Contains(last.Text, "20m") {
		t.Fatalf("last message = %+v, want a warning about 20m", last)
	}
}

func TestSimRejectionsAreLogged(t *testing.T) {
	sim := newTestSim(t, NewPlayerState())
	start := len(sim.Snapshot().Messages)

	if sim.BuyEquipment(world.EquipBasicPickaxe) {
		t.Fatalf("bought equipment with no money")
	}
	if sim.Sell(world.ResourceGold, 1) {
		t.Fatalf("sold gold the player does not have")
	}

	msgs := sim.Snapshot().Messages
	if len(msgs) != start+2 {
		t.Fatalf("messages = %d, want %d", len(msgs), start+2)
	}
	for _, m := range msgs[start:] {
		if m.Priority != MsgWarning {
			t.Fatalf("rejection logged as %v: %q", m.Priority, m.Text)
		}
	}
}

func TestSimSellAll(t *testing.T) {
	st := NewPlayerState()
	st.Resources[world.ResourceGold] = 4
	sim := newTestSim(t, st)

	if !sim.SellAll(world.ResourceGold) {
		t.Fatalf("sell all rejected")
	}
	p := sim.Snapshot().Player
	if p.Resources[world.ResourceGold] != 0 || p.Currency != 100 {
		t.Fatalf("after sell all: gold %g, currency %g", p.Resources[world.ResourceGold], p.Currency)
	}
	if sim.SellAll(world.ResourceGold) {
		t.Fatalf("sell all of an empty stock accepted")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	sim := newTestSim(t, NewPlayerState())
	sim.Mine()

	snap := sim.Snapshot()
	snap.Player.Resources[world.ResourceStone] = 1000
	snap.Player.Equipment[world.EquipExcavator] = 3
	snap.Messages[0].Text = "edited"

	again := sim.Snapshot()
	if again.Player.Resources[world.ResourceStone] != 1 {
		t.Fatalf("snapshot aliased resources")
	}
	if again.Player.Equipment[world.EquipExcavator] != 0 {
		t.Fatalf("snapshot aliased equipment")
	}
	if again.Messages[0].Text == "edited" {
		t.Fatalf("snapshot aliased the message log")
	}
}

func TestSimConcurrentIntents(t *testing.T) {
	sim := newTestSim(t, NewPlayerState())

	const workers, swings = 8, 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range swings {
				sim.Mine()
				sim.Tick()
				_ = sim.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := sim.Snapshot()
	if !approx(snap.Player.TotalMined, workers*swings) {
		t.Fatalf("total mined = %g, want %d", snap.Player.TotalMined, workers*swings)
	}
	if snap.Ticks != workers*swings {
		t.Fatalf("ticks = %d, want %d", snap.Ticks, workers*swings)
	}
}
