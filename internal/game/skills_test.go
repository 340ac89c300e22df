package game

import (
	"testing"

	"github.com/deepdig/deepdig/internal/world"
)

func TestSpendSkillPointRequiresPrerequisite(t *testing.T) {
	s := NewPlayerState()
	s.SkillPoints = 5

	if s.SpendSkillPoint(world.SkillAutoMineSpeed) {
		t.Fatalf("auto_mine_speed accepted before click_power_boost")
	}
	if s.SkillPoints != 5 || s.Skills[world.SkillAutoMineSpeed] != 0 {
		t.Fatalf("rejected spend changed state")
	}

	if !s.SpendSkillPoint(world.SkillClickPowerBoost) {
		t.Fatalf("click_power_boost rejected")
	}
	if !s.SpendSkillPoint(world.SkillAutoMineSpeed) {
		t.Fatalf("auto_mine_speed rejected once its prerequisite is level 1")
	}
	if s.SkillPoints != 3 {
		t.Fatalf("skill points = %d, want 3", s.SkillPoints)
	}
}

func TestSpendSkillPointRejections(t *testing.T) {
	s := NewPlayerState()
	if s.SpendSkillPoint(world.SkillXPGain) {
		t.Fatalf("accepted with zero skill points")
	}

	s.SkillPoints = 1
	s.Skills[world.SkillXPGain] = 1
	if s.SpendSkillPoint(world.SkillMinigameBonus) {
		t.Fatalf("accepted with fewer points than the cost")
	}
	if s.SpendSkillPoint(world.SkillCount) {
		t.Fatalf("unknown skill accepted")
	}

	s.SkillPoints = 100
	s.Skills[world.SkillMinigameBonus] = world.Skill(world.SkillMinigameBonus).MaxLevel
	if s.SpendSkillPoint(world.SkillMinigameBonus) {
		t.Fatalf("accepted past max level")
	}
}

func TestSkillCostGrowsWithLevel(t *testing.T) {
	s := NewPlayerState()
	s.SkillPoints = 10
	s.Skills[world.SkillClickPowerBoost] = 1

	for level, want := range []int{1, 2, 3} {
		cost, _ := s.SkillCost(world.SkillRareResourceChance)
		if cost != want {
			t.Fatalf("level %d: cost %d, want %d", level, cost, want)
		}
		s.SpendSkillPoint(world.SkillRareResourceChance)
	}
	if s.SkillPoints != 10-1-2-3 {
		t.Fatalf("skill points = %d", s.SkillPoints)
	}
}

func TestSkillEffectsAreAbsolute(t *testing.T) {
	cases := []struct {
		id    world.SkillID
		level int
		get   func(Multipliers) float64
		want  float64
	}{
		{world.SkillClickPowerBoost, 3, func(m Multipliers) float64 { return m.Click }, 1.15},
		{world.SkillAutoMineSpeed, 4, func(m Multipliers) float64 { return m.Auto }, 1.20},
		{world.SkillXPGain, 2, func(m Multipliers) float64 { return m.Experience }, 1.20},
		{world.SkillRareResourceChance, 5, func(m Multipliers) float64 { return m.RareFind }, 5},
	}
	for _, c := range cases {
		s := NewPlayerState()
		s.SkillPoints = 1000
		if c.id != world.SkillClickPowerBoost {
			s.Skills[world.SkillClickPowerBoost] = 1
		}
		for range c.level {
			if !s.SpendSkillPoint(c.id) {
				t.Fatalf("%v: spend rejected", c.id)
			}
		}
		if got := c.get(s.Multipliers); !approx(got, c.want) {
			t.Fatalf("%v at level %d: got %g want %g", c.id, c.level, got, c.want)
		}

		// Recomputing at the same level changes nothing.
		s.recomputeMultipliers()
		if !approx(c.get(s.Multipliers), c.want) {
			t.Fatalf("%v: recompute drifted to %g", c.id, c.get(s.Multipliers))
		}
	}
}

func TestSkillStacksWithUpgrades(t *testing.T) {
	s := NewPlayerState()
	s.Currency = 1e6
	s.BuyUpgrade(world.UpgradeReinforcedHandles)
	s.SkillPoints = 2
	s.SpendSkillPoint(world.SkillClickPowerBoost)
	s.SpendSkillPoint(world.SkillClickPowerBoost)

	if !approx(s.Multipliers.Click, 1.2*1.1) {
		t.Fatalf("click multiplier = %g, want %g", s.Multipliers.Click, 1.2*1.1)
	}

	s.Upgrades[world.UpgradeGeologistsEye] = 2
	s.Skills[world.SkillRareResourceChance] = 1
	s.recomputeMultipliers()
	if !approx(s.Multipliers.RareFind, 3) {
		t.Fatalf("rare find = %g, want upgrades 2 + skill 1", s.Multipliers.RareFind)
	}
	if !approx(s.Multipliers.Click, 1.2*1.1) {
		t.Fatalf("click multiplier moved to %g", s.Multipliers.Click)
	}
}

func TestMinigameBonusSeconds(t *testing.T) {
	s := NewPlayerState()
	s.Skills[world.SkillMinigameBonus] = 3
	if got := s.MinigameBonusSeconds(); got != 3 {
		t.Fatalf("bonus = %d, want 3", got)
	}
}
