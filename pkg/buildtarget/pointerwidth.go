package buildtarget

import (
	"fmt"
	"strconv"

	"github.com/OpenByteDev/build-target/pkg/errors"
)

// PointerWidth is the pointer size of the target in bits, matching
// cfg(target_pointer_width).
type PointerWidth string

const (
	PointerWidth16 PointerWidth = "16"
	PointerWidth32 PointerWidth = "32"
	PointerWidth64 PointerWidth = "64"
)

var pointerWidths = newEnum(PointerWidth16, PointerWidth32, PointerWidth64)

// ParsePointerWidth classifies s, falling back to an unknown PointerWidth
// holding the lower-cased string.
func ParsePointerWidth(s string) PointerWidth {
	return pointerWidths.parse(s)
}

// PointerWidthFromUint8 converts a bit count into a PointerWidth. Widths
// other than 16, 32 and 64 become unknown values holding the decimal string.
func PointerWidthFromUint8(bits uint8) PointerWidth {
	switch bits {
	case 16:
		return PointerWidth16
	case 32:
		return PointerWidth32
	case 64:
		return PointerWidth64
	default:
		return PointerWidth(strconv.FormatUint(uint64(bits), 10))
	}
}

// KnownPointerWidths returns the named pointer widths.
func KnownPointerWidths() []PointerWidth {
	return pointerWidths.list()
}

// Uint8 returns the width in bits. An unknown value that is not a decimal
// integer in [0, 255] yields an INVALID_INPUT error naming the value.
func (p PointerWidth) Uint8() (uint8, error) {
	switch p {
	case PointerWidth16:
		return 16, nil
	case PointerWidth32:
		return 32, nil
	case PointerWidth64:
		return 64, nil
	}

	n, err := strconv.ParseUint(string(p), 10, 8)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("pointer width %q is not a valid integer", string(p)), err,
			map[string]any{"value": string(p)})
	}
	return uint8(n), nil
}

func (p PointerWidth) String() string {
	return string(p)
}

func (p PointerWidth) IsKnown() bool {
	return pointerWidths.known(p)
}

func (p PointerWidth) Compare(other PointerWidth) int {
	return pointerWidths.compare(p, other)
}

func (p PointerWidth) Suggest() (PointerWidth, bool) {
	return pointerWidths.suggest(p)
}

// UnmarshalText decodes text through ParsePointerWidth.
func (p *PointerWidth) UnmarshalText(text []byte) error {
	*p = ParsePointerWidth(string(text))
	return nil
}
