package world

// ResourceKind identifies a mineable resource tier.
type ResourceKind uint8

const (
	ResourceStone ResourceKind = iota
	ResourceIron
	ResourceGold
	ResourceDiamond
	ResourceCount // sentinel
)

// ResourceTemplate is the static catalog entry for a resource tier.
type ResourceTemplate struct {
	Kind        ResourceKind
	ID          string
	Name        string
	Value       float64 // currency per unit before multipliers
	UnlockDepth float64
}

// resourceTable is ordered by unlock depth, ascending.
var resourceTable = [ResourceCount]ResourceTemplate{
	ResourceStone:   {ResourceStone, "stone", "Stone", 1, 0},
	ResourceIron:    {ResourceIron, "iron", "Iron", 5, 10},
	ResourceGold:    {ResourceGold, "gold", "Gold", 25, 25},
	ResourceDiamond: {ResourceDiamond, "diamond", "Diamond", 100, 50},
}

// Valid reports whether k is a catalog resource.
func (k ResourceKind) Valid() bool { return k < ResourceCount }

// Resource returns the catalog entry for k. Unknown kinds return the zero template.
func Resource(k ResourceKind) ResourceTemplate {
	if !k.Valid() {
		return ResourceTemplate{}
	}
	return resourceTable[k]
}

// Resources returns the full catalog in unlock order.
func Resources() []ResourceTemplate {
	out := make([]ResourceTemplate, ResourceCount)
	copy(out, resourceTable[:])
	return out
}

// ResourceAtDepth returns the deepest unlocked resource for the given depth.
// Stone is returned when nothing qualifies.
func ResourceAtDepth(depth float64) ResourceKind {
	for i := int(ResourceCount) - 1; i >= 0; i-- {
		if depth >= resourceTable[i].UnlockDepth {
			return ResourceKind(i)
		}
	}
	return ResourceStone
}

// ParseResource maps a catalog id ("stone", "iron", ...) to its kind.
func ParseResource(id string) (ResourceKind, bool) {
	for _, r := range resourceTable {
		if r.ID == id {
			return r.Kind, true
		}
	}
	return ResourceCount, false
}

func (k ResourceKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return resourceTable[k].ID
}
