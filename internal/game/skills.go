package game

import "github.com/deepdig/deepdig/internal/world"

// SkillCost returns the skill points the next level of id costs.
func (s *PlayerState) SkillCost(id world.SkillID) (int, bool) {
	if !id.Valid() {
		return 0, false
	}
	return world.Skill(id).CostAt(s.Skills[id]), true
}

// SkillUnlocked reports whether every prerequisite of id has at least one level.
func (s *PlayerState) SkillUnlocked(id world.SkillID) bool {
	if !id.Valid() {
		return false
	}
	for _, req := range world.Skill(id).Requires {
		if s.Skills[req] <= 0 {
			return false
		}
	}
	return true
}

// CanSpendSkill reports whether SpendSkillPoint(id) would be accepted.
func (s *PlayerState) CanSpendSkill(id world.SkillID) bool {
	cost, ok := s.SkillCost(id)
	if !ok || s.SkillPoints <= 0 {
		return false
	}
	if s.Skills[id] >= world.Skill(id).MaxLevel {
		return false
	}
	return s.SkillUnlocked(id) && s.SkillPoints >= cost
}

// SpendSkillPoint raises id by one level and rebuilds the multiplier it drives.
func (s *PlayerState) SpendSkillPoint(id world.SkillID) bool {
	if !s.CanSpendSkill(id) {
		return false
	}
	cost, _ := s.SkillCost(id)
	s.SkillPoints -= cost
	s.Skills[id]++
	s.recomputeMultipliers()
	return true
}

// MinigameBonusSeconds is the extra cave-in countdown bought in the skill tree.
func (s *PlayerState) MinigameBonusSeconds() int {
	n := world.Skill(world.SkillMinigameBonus)
	return int(n.PerLevel * float64(s.Skills[world.SkillMinigameBonus]))
}
