package burn

// Zone is the visual classification of a surface point at a given progress.
type Zone uint8

const (
	ZoneVoid Zone = iota
	ZoneEmber
	ZoneChar
	ZoneIntact

	zoneCount = 4
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneVoid:
		return "void"
	case ZoneEmber:
		return "ember"
	case ZoneChar:
		return "char"
	case ZoneIntact:
		return "intact"
	default:
		return "unknown"
	}
}

// Zone classifies a front-minus-threshold difference. The bands are half-open:
// [-inf,0) void, [0,EmberBand) ember, [EmberBand,CharBand) char, rest intact.
func (p Params) Zone(diff float64) Zone {
	switch {
	case diff < 0:
		return ZoneVoid
	case diff < p.EmberBand:
		return ZoneEmber
	case diff < p.CharBand:
		return ZoneChar
	default:
		return ZoneIntact
	}
}
