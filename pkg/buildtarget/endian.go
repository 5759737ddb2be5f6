package buildtarget

// Endian is the byte order of the target, matching cfg(target_endian).
type Endian string

const (
	// EndianBig stores the most significant byte first.
	EndianBig Endian = "big"
	// EndianLittle stores the least significant byte first.
	EndianLittle Endian = "little"
)

var endians = newEnum(EndianBig, EndianLittle)

// ParseEndian classifies s case-insensitively, falling back to an unknown
// Endian holding the lower-cased string.
func ParseEndian(s string) Endian { return endians.parse(s) }

// KnownEndians returns the named byte orders.
func KnownEndians() []Endian { return endians.list() }

func (e Endian) String() string { return string(e) }

func (e Endian) IsKnown() bool { return endians.known(e) }

func (e Endian) Compare(other Endian) int { return endians.compare(e, other) }

func (e Endian) Suggest() (Endian, bool) { return endians.suggest(e) }

func (e *Endian) UnmarshalText(text []byte) error {
	*e = ParseEndian(string(text))
	return nil
}
