package world

// MultiplierField names one scalar of the player's multiplier bundle.
type MultiplierField uint8

const (
	FieldNone MultiplierField = iota // affects nothing in the bundle
	FieldClick
	FieldAuto
	FieldEfficiency
	FieldSellPrice
	FieldExperience
	FieldRareFind // percentage points, not a factor
)

// Combinator says how an Effect folds into its field.
type Combinator uint8

const (
	CombineMultiply Combinator = iota
	CombineAdd
)

// Effect is a multiplier-bundle transform expressed as data.
type Effect struct {
	Field MultiplierField
	Op    Combinator
	Value float64
}

// Fold applies the effect to the current value of its field.
func (e Effect) Fold(current float64) float64 {
	switch e.Op {
	case CombineAdd:
		return current + e.Value
	default:
		return current * e.Value
	}
}

func (f MultiplierField) String() string {
	switch f {
	case FieldClick:
		return "click"
	case FieldAuto:
		return "auto"
	case FieldEfficiency:
		return "efficiency"
	case FieldSellPrice:
		return "sell_price"
	case FieldExperience:
		return "experience"
	case FieldRareFind:
		return "rare_find"
	default:
		return "none"
	}
}
