package world

import "math"

// EquipmentCategory says which derived stat a piece of equipment feeds.
type EquipmentCategory uint8

const (
	CategoryPowerBoost EquipmentCategory = iota // adds to click power
	CategoryAutomation                          // adds to auto-mine rate
)

// EquipmentKind identifies a purchasable piece of mining equipment.
type EquipmentKind uint8

const (
	EquipBasicPickaxe EquipmentKind = iota
	EquipSteelPickaxe
	EquipHiredMiner
	EquipPowerDrill
	EquipLaserCutter
	EquipMiningCart
	EquipExcavator
	EquipmentCount // sentinel
)

// EquipmentGrowth is the cost multiplier applied per unit already owned.
const EquipmentGrowth = 1.5

// EquipmentTemplate defines the base stats for an equipment kind.
type EquipmentTemplate struct {
	Kind     EquipmentKind
	ID       string
	Name     string
	Category EquipmentCategory
	Power    float64
	BaseCost float64
}

// EquipmentTemplates is the fixed equipment catalog, in shop order.
var EquipmentTemplates = [EquipmentCount]EquipmentTemplate{
	// --- power boosts ---
	EquipBasicPickaxe: {EquipBasicPickaxe, "basic_pickaxe", "Basic Pickaxe", CategoryPowerBoost, 1, 50},
	EquipSteelPickaxe: {EquipSteelPickaxe, "steel_pickaxe", "Steel Pickaxe", CategoryPowerBoost, 3, 200},

	// --- automation ---
	EquipHiredMiner: {EquipHiredMiner, "hired_miner", "Hired Miner", CategoryAutomation, 1, 300},

	// --- heavy power boosts ---
	EquipPowerDrill:  {EquipPowerDrill, "power_drill", "Power Drill", CategoryPowerBoost, 10, 1500},
	EquipLaserCutter: {EquipLaserCutter, "laser_cutter", "Laser Cutter", CategoryPowerBoost, 50, 7500},

	// --- heavy automation ---
	EquipMiningCart: {EquipMiningCart, "mining_cart", "Mining Cart", CategoryAutomation, 5, 1000},
	EquipExcavator:  {EquipExcavator, "excavator", "Excavator", CategoryAutomation, 25, 5000},
}

// Valid reports whether k is a catalog equipment kind.
func (k EquipmentKind) Valid() bool { return k < EquipmentCount }

// Equipment returns the catalog entry for k.
func Equipment(k EquipmentKind) EquipmentTemplate {
	if !k.Valid() {
		return EquipmentTemplate{}
	}
	return EquipmentTemplates[k]
}

// CostAt returns the price of the next unit when owned units are already held.
func (t EquipmentTemplate) CostAt(owned int) float64 {
	return t.BaseCost * math.Pow(EquipmentGrowth, float64(owned))
}

// ParseEquipment maps a catalog id to its kind.
func ParseEquipment(id string) (EquipmentKind, bool) {
	for _, t := range EquipmentTemplates {
		if t.ID == id {
			return t.Kind, true
		}
	}
	return EquipmentCount, false
}

func (k EquipmentKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return EquipmentTemplates[k].ID
}
