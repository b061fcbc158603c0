package hrsize

// UnitSystem selects the base and label set used to express magnitude.
type UnitSystem string

const (
	Decimal UnitSystem = "decimal"
	Binary  UnitSystem = "binary"
)

// MaxPower is the highest supported magnitude, exa scale. Sizes that reduce
// past it cannot be rendered.
const MaxPower = 6

var (
	decimalUnits = [MaxPower + 1]string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	binaryUnits  = [MaxPower + 1]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

// Base returns the divisor for one magnitude step: 1000 or 1024.
func (u UnitSystem) Base() int64 {
	if u == Binary {
		return 1024
	}
	return 1000
}

// Units returns the ordered label table for powers 0 through MaxPower.
func (u UnitSystem) Units() []string {
	if u == Binary {
		return binaryUnits[:]
	}
	return decimalUnits[:]
}

// rank returns the table position of label, or -1 when the label is not part
// of this unit system. Linear scan; the table has seven entries.
func (u UnitSystem) rank(label string) int {
	for i, l := range u.Units() {
		if l == label {
			return i
		}
	}
	return -1
}

func (u UnitSystem) valid() bool {
	return u == Decimal || u == Binary
}
