package game

import (
	"math"

	"github.com/deepdig/deepdig/internal/world"
)

// Haul describes what a single mining action produced.
type Haul struct {
	Resource world.ResourceKind
	Amount   float64
	Rare     bool
	Levels   int // level-ups caused by the experience it granted
}

// Mine performs one manual swing. It always succeeds.
// One roll per call decides a rare find, which doubles the swing.
func (s *PlayerState) Mine(r Roller) Haul {
	kind := s.CurrentResource()
	power := s.ClickPower * s.Multipliers.Click
	rare := r.Float64() < s.Multipliers.RareFind/100
	if rare {
		power *= 2
	}

	s.Resources[kind] += power
	s.TotalMined += power
	s.addDepth(power * manualDepthRate)
	levels := s.GainExperience(power)

	return Haul{Resource: kind, Amount: power, Rare: rare, Levels: levels}
}

// AutoTick performs one interval of idle mining. It reports false and
// changes nothing when the player owns no automation.
func (s *PlayerState) AutoTick() (Haul, bool) {
	power := s.AutoMineRate * s.Multipliers.Auto
	if power <= 0 {
		return Haul{}, false
	}
	kind := s.CurrentResource()

	s.Resources[kind] += power
	s.TotalMined += power
	s.addDepth(power * autoDepthRate)
	levels := s.GainExperience(power / 2)

	return Haul{Resource: kind, Amount: power, Levels: levels}, true
}

// addDepth advances depth and snaps it to depthPrecision so repeated
// fractional steps land exactly on unlock and milestone boundaries.
func (s *PlayerState) addDepth(d float64) {
	s.Depth = math.Round((s.Depth+d)*depthPrecision) / depthPrecision
}

// Sell converts amount units of k into currency and returns the money made.
// It is rejected when the player holds less than amount.
func (s *PlayerState) Sell(k world.ResourceKind, amount float64) (float64, bool) {
	if !k.Valid() || !(amount > 0) || s.Resources[k] < amount {
		return 0, false
	}
	money := amount * world.Resource(k).Value * s.Multipliers.SellPrice
	s.Resources[k] -= amount
	s.Currency += money
	s.GainExperience(money / 10)
	return money, true
}

// EquipmentCost returns the price of the next unit of k.
func (s *PlayerState) EquipmentCost(k world.EquipmentKind) (float64, bool) {
	if !k.Valid() {
		return 0, false
	}
	return world.Equipment(k).CostAt(s.Equipment[k]), true
}

// BuyEquipment buys one unit of k if the player can afford it.
func (s *PlayerState) BuyEquipment(k world.EquipmentKind) bool {
	cost, ok := s.EquipmentCost(k)
	if !ok || s.Currency < cost {
		return false
	}
	s.Currency -= cost
	s.Equipment[k]++
	s.recomputeDerived()
	return true
}

// UpgradeCost returns the price of the next level of k.
func (s *PlayerState) UpgradeCost(k world.UpgradeKind) (float64, bool) {
	if !k.Valid() {
		return 0, false
	}
	return world.Upgrade(k).CostAt(s.Upgrades[k]), true
}

// BuyUpgrade buys the next level of k if the player can afford it.
func (s *PlayerState) BuyUpgrade(k world.UpgradeKind) bool {
	cost, ok := s.UpgradeCost(k)
	if !ok || s.Currency < cost {
		return false
	}
	s.Currency -= cost
	s.Upgrades[k]++
	s.recomputeMultipliers()
	return true
}

// GainExperience adds amount, scaled by the experience multiplier, and
// resolves every level-up it pays for. It returns the number of levels gained.
func (s *PlayerState) GainExperience(amount float64) int {
	s.Experience += amount * s.Multipliers.Experience
	levels := 0
	for s.ExperienceToNext > 0 && s.Experience >= s.ExperienceToNext {
		s.Experience -= s.ExperienceToNext
		s.Level++
		s.SkillPoints++
		s.ExperienceToNext = math.Floor(s.ExperienceToNext * thresholdGrowth)
		levels++
	}
	return levels
}

// TriggerReset is the cave-in penalty: currency is lost, nothing else is.
func (s *PlayerState) TriggerReset() {
	s.Currency = 0
}
