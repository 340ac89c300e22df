package game

import "github.com/deepdig/deepdig/internal/world"

// Depth gained per unit of mining power.
const (
	manualDepthRate = 0.1
	autoDepthRate   = 0.05

	depthPrecision = 1e6 // depth is kept to millionths of a meter
)

// Experience needed for the first level-up, and the growth per level.
const (
	baseExperienceThreshold = 100
	thresholdGrowth         = 1.5
)

// Roller is the random source for rare finds and obstacle spawns.
// *math/rand/v2.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// Multipliers is the bundle of scalar modifiers applied to mining,
// auto-mining, sales and experience.
type Multipliers struct {
	Click      float64
	Auto       float64
	Efficiency float64
	SellPrice  float64
	Experience float64
	RareFind   float64 // percent chance of doubling a manual swing
}

// DefaultMultipliers returns the bundle of a fresh game.
func DefaultMultipliers() Multipliers {
	return Multipliers{Click: 1, Auto: 1, Efficiency: 1, SellPrice: 1, Experience: 1}
}

func (m *Multipliers) field(f world.MultiplierField) *float64 {
	switch f {
	case world.FieldClick:
		return &m.Click
	case world.FieldAuto:
		return &m.Auto
	case world.FieldEfficiency:
		return &m.Efficiency
	case world.FieldSellPrice:
		return &m.SellPrice
	case world.FieldExperience:
		return &m.Experience
	case world.FieldRareFind:
		return &m.RareFind
	default:
		return nil
	}
}

// Apply folds e into its field. Effects on FieldNone are ignored.
func (m *Multipliers) Apply(e world.Effect) {
	if p := m.field(e.Field); p != nil {
		*p = e.Fold(*p)
	}
}

// PlayerState is everything the economy tracks for one session.
// It holds only scalars and fixed arrays, so assigning it copies it.
type PlayerState struct {
	Level            int
	Experience       float64
	ExperienceToNext float64
	SkillPoints      int

	Currency   float64
	Resources  [world.ResourceCount]float64
	Depth      float64
	TotalMined float64

	// Derived from Equipment; rebuilt on every purchase.
	ClickPower   float64
	AutoMineRate float64

	Equipment   [world.EquipmentCount]int
	Upgrades    [world.UpgradeCount]int
	Skills      [world.SkillCount]int
	Multipliers Multipliers // derived from Upgrades and Skills
}

// NewPlayerState creates the starting state: level 1, nothing owned.
func NewPlayerState() PlayerState {
	return PlayerState{
		Level:            1,
		ExperienceToNext: baseExperienceThreshold,
		ClickPower:       1,
		Multipliers:      DefaultMultipliers(),
	}
}

// CurrentResource returns the resource a swing at the current depth yields.
func (s *PlayerState) CurrentResource() world.ResourceKind {
	return world.ResourceAtDepth(s.Depth)
}

// Quantity returns how much of k the player holds.
func (s *PlayerState) Quantity(k world.ResourceKind) float64 {
	if !k.Valid() {
		return 0
	}
	return s.Resources[k]
}

// recomputeDerived rebuilds click power and auto-mine rate from ownership counts.
func (s *PlayerState) recomputeDerived() {
	click, auto := 1.0, 0.0
	for k, t := range world.EquipmentTemplates {
		contrib := t.Power * float64(s.Equipment[k])
		switch t.Category {
		case world.CategoryPowerBoost:
			click += contrib
		case world.CategoryAutomation:
			auto += contrib
		}
	}
	s.ClickPower = click
	s.AutoMineRate = auto
}

// recomputeMultipliers rebuilds the bundle from upgrade levels and skill levels.
// Upgrades compound once per level bought; skills then scale their field by
// the absolute effect of their current level.
func (s *PlayerState) recomputeMultipliers() {
	m := DefaultMultipliers()
	for k := world.UpgradeKind(0); k < world.UpgradeCount; k++ {
		e := world.Upgrade(k).Effect
		for range s.Upgrades[k] {
			m.Apply(e)
		}
	}
	for id := world.SkillID(0); id < world.SkillCount; id++ {
		m.Apply(world.Skill(id).EffectAt(s.Skills[id]))
	}
	s.Multipliers = m
}
