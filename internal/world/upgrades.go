package world

import "math"

// UpgradeKind identifies a one-line research upgrade.
type UpgradeKind uint8

const (
	UpgradeReinforcedHandles UpgradeKind = iota
	UpgradeLubricatedGears
	UpgradeOreSorting
	UpgradeMarketContacts
	UpgradeFieldNotes
	UpgradeGeologistsEye
	UpgradeCount // sentinel
)

// UpgradeGrowth doubles the price of every successive purchase.
const UpgradeGrowth = 2.0

// UpgradeTemplate is the static catalog entry for an upgrade.
type UpgradeTemplate struct {
	Kind     UpgradeKind
	ID       string
	Name     string
	BaseCost float64
	Effect   Effect
}

var upgradeTable = [UpgradeCount]UpgradeTemplate{
	UpgradeReinforcedHandles: {UpgradeReinforcedHandles, "reinforced_handles", "Reinforced Handles", 100, Effect{FieldClick, CombineMultiply, 1.2}},
	UpgradeLubricatedGears:   {UpgradeLubricatedGears, "lubricated_gears", "Lubricated Gears", 250, Effect{FieldAuto, CombineMultiply, 1.2}},
	UpgradeOreSorting:        {UpgradeOreSorting, "ore_sorting", "Ore Sorting", 400, Effect{FieldEfficiency, CombineAdd, 0.1}},
	UpgradeMarketContacts:    {UpgradeMarketContacts, "market_contacts", "Market Contacts", 500, Effect{FieldSellPrice, CombineMultiply, 1.15}},
	UpgradeFieldNotes:        {UpgradeFieldNotes, "field_notes", "Field Notes", 750, Effect{FieldExperience, CombineMultiply, 1.1}},
	UpgradeGeologistsEye:     {UpgradeGeologistsEye, "geologists_eye", "Geologist's Eye", 1000, Effect{FieldRareFind, CombineAdd, 1}},
}

// Valid reports whether k is a catalog upgrade.
func (k UpgradeKind) Valid() bool { return k < UpgradeCount }

// Upgrade returns the catalog entry for k.
func Upgrade(k UpgradeKind) UpgradeTemplate {
	if !k.Valid() {
		return UpgradeTemplate{}
	}
	return upgradeTable[k]
}

// CostAt returns the price of the purchase that lifts the upgrade past level.
func (t UpgradeTemplate) CostAt(level int) float64 {
	return t.BaseCost * math.Pow(UpgradeGrowth, float64(level))
}

// ParseUpgrade maps a catalog id to its kind.
func ParseUpgrade(id string) (UpgradeKind, bool) {
	for _, t := range upgradeTable {
		if t.ID == id {
			return t.Kind, true
		}
	}
	return UpgradeCount, false
}

func (k UpgradeKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return upgradeTable[k].ID
}
