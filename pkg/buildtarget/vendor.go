package buildtarget

// Vendor is the hardware or OS provider of the target, matching
// cfg(target_vendor).
type Vendor string

const (
	VendorApple    Vendor = "apple"
	VendorFortanix Vendor = "fortanix"
	VendorNvidia   Vendor = "nvidia"
	// VendorPC is the generic PC platform.
	VendorPC   Vendor = "pc"
	VendorSony Vendor = "sony"
	// VendorUnknown is reported by most targets without a specific vendor.
	VendorUnknown Vendor = "unknown"
	// VendorWRS is Wind River Systems.
	VendorWRS Vendor = "wrs"
	// VendorUWP is the Universal Windows Platform.
	VendorUWP Vendor = "uwp"
)

var vendors = newEnum(
	VendorApple, VendorFortanix, VendorNvidia, VendorPC, VendorSony,
	VendorUnknown, VendorWRS, VendorUWP,
)

// ParseVendor classifies s case-insensitively, falling back to an unknown
// Vendor holding the lower-cased string.
func ParseVendor(s string) Vendor { return vendors.parse(s) }

// KnownVendors returns the named vendors in declaration order.
func KnownVendors() []Vendor { return vendors.list() }

func (v Vendor) String() string { return string(v) }

func (v Vendor) IsKnown() bool { return vendors.known(v) }

func (v Vendor) Compare(other Vendor) int { return vendors.compare(v, other) }

func (v Vendor) Suggest() (Vendor, bool) { return vendors.suggest(v) }

func (v *Vendor) UnmarshalText(text []byte) error {
	*v = ParseVendor(string(text))
	return nil
}
