package buildtarget

import "strings"

// Family is a coarse grouping of targets, matching cfg(target_family).
// A target may belong to zero, one or several families.
type Family string

const (
	// FamilyUnix covers Unix-like operating systems.
	FamilyUnix Family = "unix"
	// FamilyWindows covers Microsoft Windows.
	FamilyWindows Family = "windows"
	// FamilyWasm covers WebAssembly targets.
	FamilyWasm Family = "wasm"
)

var families = newEnum(FamilyUnix, FamilyWindows, FamilyWasm)

// ParseFamily classifies a single family name case-insensitively.
func ParseFamily(s string) Family {
	return families.parse(s)
}

// ParseFamilies classifies a comma-separated family list, keeping the input
// order and dropping empty segments. The result is never nil.
func ParseFamilies(s string) []Family {
	out := make([]Family, 0, strings.Count(s, ",")+1)
	for part := range strings.SplitSeq(s, ",") {
		if part == "" {
			continue
		}
		out = append(out, ParseFamily(part))
	}
	return out
}

// KnownFamilies returns the named families in declaration order.
func KnownFamilies() []Family {
	return families.list()
}

func (f Family) String() string {
	return string(f)
}

func (f Family) IsKnown() bool {
	return families.known(f)
}

func (f Family) Compare(other Family) int {
	return families.compare(f, other)
}

func (f Family) Suggest() (Family, bool) {
	return families.suggest(f)
}

// UnmarshalText decodes text through ParseFamily.
func (f *Family) UnmarshalText(text []byte) error {
	*f = ParseFamily(string(text))
	return nil
}
