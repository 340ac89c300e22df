package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/deepdig/deepdig/internal/world"
)

// Sim is the game simulation. It owns the player state and the active
// cave-in, and is safe to call from several goroutines.
type Sim struct {
	mu     sync.Mutex
	tuning world.Tuning
	rng    Roller
	logger *slog.Logger

	state    PlayerState
	caveIn   *Minigame
	log      *MessageLog
	ticks    uint64
	autoMine Interval
}

// Option customizes a Sim.
type Option func(*Sim)

// WithRoller replaces the random source.
func WithRoller(r Roller) Option {
	return func(s *Sim) { s.rng = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sim) { s.logger = l }
}

// WithState starts the simulation from st instead of a fresh game.
func WithState(st PlayerState) Option {
	return func(s *Sim) {
		s.state = st
		s.state.recomputeDerived()
		s.state.recomputeMultipliers()
	}
}

// NewSim creates a simulation at the start of a fresh game.
func NewSim(t world.Tuning, opts ...Option) *Sim {
	seed := uint64(time.Now().UnixNano())
	s := &Sim{
		tuning:   t,
		rng:      rand.New(rand.NewPCG(seed, seed>>1)),
		logger:   slog.Default(),
		state:    NewPlayerState(),
		log:      NewMessageLog(t.MessageLogSize),
		autoMine: NewInterval(t.Ticks(t.AutoMineInterval)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.autoMine.Start()

	s.log.Add("You stand at the mouth of an abandoned shaft.", MsgInfo)
	s.log.Add("Click to swing your pick. Sell ore to buy gear.", MsgInfo)
	return s
}

// Mine performs one manual swing.
func (s *Sim) Mine() Haul {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state.Depth
	h := s.state.Mine(s.rng)
	if h.Rare {
		s.log.Add(fmt.Sprintf("Rare find! Double haul: %s %s.", amount(h.Amount), world.Resource(h.Resource).Name), MsgDiscovery)
	}
	s.noteLevels(h.Levels)
	s.checkMilestone(before)
	return h
}

// Sell sells amount units of k.
func (s *Sim) Sell(k world.ResourceKind, qty float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sell(k, qty)
}

// SellAll sells the whole stock of k.
func (s *Sim) SellAll(k world.ResourceKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sell(k, s.state.Quantity(k))
}

func (s *Sim) sell(k world.ResourceKind, qty float64) bool {
	levelBefore := s.state.Level
	money, ok := s.state.Sell(k, qty)
	if !ok {
		if k.Valid() {
			s.log.Add(fmt.Sprintf("Not enough %s to sell.", world.Resource(k).Name), MsgWarning)
		}
		return false
	}
	s.log.Add(fmt.Sprintf("Sold %s %s for $%s.", amount(qty), world.Resource(k).Name, amount(money)), MsgInfo)
	s.noteLevels(s.state.Level - levelBefore)
	return true
}

// BuyEquipment buys one unit of k.
func (s *Sim) BuyEquipment(k world.EquipmentKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cost, _ := s.state.EquipmentCost(k)
	if !s.state.BuyEquipment(k) {
		if k.Valid() {
			s.log.Add(fmt.Sprintf("%s costs $%s.", world.Equipment(k).Name, amount(cost)), MsgWarning)
		}
		return false
	}
	t := world.Equipment(k)
	s.log.Add(fmt.Sprintf("Bought %s #%d.", t.Name, s.state.Equipment[k]), MsgInfo)
	s.logger.Debug("equipment bought", "equipment", k.String(), "owned", s.state.Equipment[k],
		"cost", cost, "click_power", s.state.ClickPower, "auto_rate", s.state.AutoMineRate)
	return true
}

// BuyUpgrade buys the next level of k.
func (s *Sim) BuyUpgrade(k world.UpgradeKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cost, _ := s.state.UpgradeCost(k)
	if !s.state.BuyUpgrade(k) {
		if k.Valid() {
			s.log.Add(fmt.Sprintf("%s costs $%s.", world.Upgrade(k).Name, amount(cost)), MsgWarning)
		}
		return false
	}
	s.log.Add(fmt.Sprintf("Researched %s (level %d).", world.Upgrade(k).Name, s.state.Upgrades[k]), MsgInfo)
	s.logger.Debug("upgrade bought", "upgrade", k.String(), "level", s.state.Upgrades[k], "cost", cost)
	return true
}

// SpendSkillPoint raises skill id by one level.
func (s *Sim) SpendSkillPoint(id world.SkillID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.SpendSkillPoint(id) {
		if id.Valid() {
			s.log.Add(fmt.Sprintf("Can't train %s right now.", world.Skill(id).Name), MsgWarning)
		}
		return false
	}
	s.log.Add(fmt.Sprintf("%s trained to level %d.", world.Skill(id).Name, s.state.Skills[id]), MsgDiscovery)
	return true
}

// Tick advances the simulation by one frame: auto-mining and the cave-in.
func (s *Sim) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks++
	if s.state.AutoMineRate > 0 && s.autoMine.Step() {
		before := s.state.Depth
		if h, ok := s.state.AutoTick(); ok {
			s.noteLevels(h.Levels)
			s.checkMilestone(before)
		}
	}
	if s.caveIn != nil {
		s.caveIn.Update()
	}
}

// MoveLeft dodges left during a cave-in.
func (s *Sim) MoveLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.caveIn != nil {
		s.caveIn.MoveLeft()
	}
}

// MoveRight dodges right during a cave-in.
func (s *Sim) MoveRight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.caveIn != nil {
		s.caveIn.MoveRight()
	}
}

// Dismiss closes the cave-in overlay. An unresolved run is lost.
// Once Dismiss returns, the run is gone and cannot report again.
func (s *Sim) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.caveIn == nil {
		return
	}
	s.caveIn.Dismiss()
	s.caveIn = nil
}

// CrossedMilestone reports whether floor(depth) reached a new positive
// multiple of step between before and after.
func CrossedMilestone(before, after float64, step int) bool {
	if step <= 0 {
		return false
	}
	b := int(math.Floor(before)) / step
	a := int(math.Floor(after)) / step
	return a > b && a > 0
}

// checkMilestone starts a cave-in if the last mutation pushed depth past a
// milestone. Called with s.mu held, after the mutation.
func (s *Sim) checkMilestone(before float64) {
	if !CrossedMilestone(before, s.state.Depth, s.tuning.Minigame.MilestoneStep) {
		return
	}
	if s.caveIn != nil && s.caveIn.Active() {
		s.log.Add(fmt.Sprintf("Rock shifts at %.0fm, but you are still dodging.", math.Floor(s.state.Depth)), MsgWarning)
		s.logger.Info("milestone ignored, cave-in already running", "run", s.caveIn.RunID, "depth", s.state.Depth)
		return
	}

	cfg := MinigameConfig{
		Rules:          s.tuning.Minigame,
		TicksPerSecond: s.tuning.TicksPerSecond,
		Depth:          s.state.Depth,
		Duration:       s.tuning.Minigame.Duration + s.state.MinigameBonusSeconds(),
	}
	var run *Minigame
	run = NewMinigame(cfg, s.rng, func(o Outcome) { s.resolveCaveIn(run, o) })
	s.caveIn = run

	s.log.Add(fmt.Sprintf("CAVE-IN at %.0fm! Dodge the rocks for %d seconds.", math.Floor(s.state.Depth), cfg.Duration), MsgCritical)
	s.logger.Info("cave-in started", "run", run.RunID, "depth", s.state.Depth,
		"duration", cfg.Duration, "difficulty", run.Difficulty())
}

// resolveCaveIn applies a run's result. Called with s.mu held.
func (s *Sim) resolveCaveIn(run *Minigame, o Outcome) {
	switch o {
	case OutcomeWon:
		levels := s.state.GainExperience(s.tuning.Minigame.WinExperience)
		s.log.Add(fmt.Sprintf("You made it out! +%s experience.", amount(s.tuning.Minigame.WinExperience)), MsgDiscovery)
		s.noteLevels(levels)
	case OutcomeLost:
		lost := s.state.Currency
		s.state.TriggerReset()
		s.log.Add(fmt.Sprintf("Buried by the cave-in. Lost $%s digging out.", amount(lost)), MsgCritical)
	}
	s.logger.Info("cave-in resolved", "run", run.RunID, "outcome", o.String(), "frame", run.frame)
}

func (s *Sim) noteLevels(n int) {
	if n <= 0 {
		return
	}
	s.log.Add(fmt.Sprintf("Level up! Now level %d. Skill points: %d.", s.state.Level, s.state.SkillPoints), MsgDiscovery)
	s.logger.Info("level up", "level", s.state.Level, "gained", n, "skill_points", s.state.SkillPoints)
}

// Snapshot is a read-only copy of everything the host renders.
type Snapshot struct {
	Player   PlayerState
	CaveIn   *MinigameView // nil when no cave-in is on screen
	Messages []Message
	Ticks    uint64
}

// Snapshot copies the current state.
func (s *Sim) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Player:   s.state,
		Messages: s.log.Recent(s.log.Len()),
		Ticks:    s.ticks,
	}
	if s.caveIn != nil {
		v := s.caveIn.View()
		snap.CaveIn = &v
	}
	return snap
}
