package world

// SkillID identifies a node in the skill tree.
type SkillID uint8

const (
	SkillClickPowerBoost SkillID = iota
	SkillAutoMineSpeed
	SkillXPGain
	SkillRareResourceChance
	SkillMinigameBonus
	SkillCount // sentinel
)

// SkillNode is the static catalog entry for a skill.
// Cost at level L is BaseCost + CostStep*L skill points.
// The effect at level L is Effect{Field, Op, 1 + PerLevel*L} for multiplicative
// fields and Effect{Field, Op, PerLevel*L} for additive ones.
//
// Skill effects fold on top of the value the upgrades already produced, so
// they stack rather than replace: Reinforced Handles at level 1 plus Click
// Power at level 1 gives a click multiplier of 1.2 * 1.05, and Geologist's
// Eye at level U plus Keen Eye at level L gives a rare-find chance of U + L.
type SkillNode struct {
	ID       SkillID
	Key      string
	Name     string
	MaxLevel int
	BaseCost int
	CostStep int
	Field    MultiplierField
	Op       Combinator
	PerLevel float64
	Requires []SkillID
}

var skillTree = [SkillCount]SkillNode{
	SkillClickPowerBoost: {
		ID: SkillClickPowerBoost, Key: "click_power_boost", Name: "Click Power",
		MaxLevel: 10, BaseCost: 1,
		Field: FieldClick, Op: CombineMultiply, PerLevel: 0.05,
	},
	SkillAutoMineSpeed: {
		ID: SkillAutoMineSpeed, Key: "auto_mine_speed", Name: "Auto-Mine Speed",
		MaxLevel: 10, BaseCost: 1,
		Field: FieldAuto, Op: CombineMultiply, PerLevel: 0.05,
		Requires: []SkillID{SkillClickPowerBoost},
	},
	SkillXPGain: {
		ID: SkillXPGain, Key: "xp_gain", Name: "Quick Learner",
		MaxLevel: 10, BaseCost: 1,
		Field: FieldExperience, Op: CombineMultiply, PerLevel: 0.10,
	},
	SkillRareResourceChance: {
		ID: SkillRareResourceChance, Key: "rare_resource_chance", Name: "Keen Eye",
		MaxLevel: 10, BaseCost: 1, CostStep: 1,
		Field: FieldRareFind, Op: CombineAdd, PerLevel: 1,
		Requires: []SkillID{SkillClickPowerBoost},
	},
	SkillMinigameBonus: {
		ID: SkillMinigameBonus, Key: "minigame_bonus", Name: "Steady Nerves",
		MaxLevel: 5, BaseCost: 2,
		Field: FieldNone, PerLevel: 1, // seconds added to the cave-in countdown
		Requires: []SkillID{SkillXPGain},
	},
}

// Valid reports whether id is a catalog skill.
func (id SkillID) Valid() bool { return id < SkillCount }

// Skill returns the catalog node for id.
func Skill(id SkillID) SkillNode {
	if !id.Valid() {
		return SkillNode{}
	}
	return skillTree[id]
}

// CostAt returns the skill points needed to go from level to level+1.
func (n SkillNode) CostAt(level int) int {
	return n.BaseCost + n.CostStep*level
}

// EffectAt returns the bundle transform granted by the node at level.
func (n SkillNode) EffectAt(level int) Effect {
	v := n.PerLevel * float64(level)
	if n.Op == CombineMultiply {
		v += 1
	}
	return Effect{Field: n.Field, Op: n.Op, Value: v}
}

// ParseSkill maps a catalog key ("xp_gain", ...) to its id.
func ParseSkill(key string) (SkillID, bool) {
	for _, n := range skillTree {
		if n.Key == key {
			return n.ID, true
		}
	}
	return SkillCount, false
}

func (id SkillID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return skillTree[id].Key
}
