package buildtarget

// The Current functions read from the process environment with the default
// prefix. They are shorthands for the matching NewSource() methods.

// Current returns the full build target.
func Current() (Target, error) { return NewSource().Target() }

// CurrentArch returns the target architecture.
func CurrentArch() (Arch, error) { return NewSource().Arch() }

// CurrentEndian returns the target byte order.
func CurrentEndian() (Endian, error) { return NewSource().Endian() }

// CurrentEnv returns the target environment, if any.
func CurrentEnv() (Env, bool) { return NewSource().Env() }

// CurrentOS returns the target operating system.
func CurrentOS() (OS, error) { return NewSource().OS() }

// CurrentPointerWidth returns the target pointer width.
func CurrentPointerWidth() (PointerWidth, error) { return NewSource().PointerWidth() }

// CurrentFamily returns the target families.
func CurrentFamily() []Family { return NewSource().Family() }

// CurrentVendor returns the target vendor.
func CurrentVendor() (Vendor, error) { return NewSource().Vendor() }

// CurrentTriple returns the target triple.
func CurrentTriple() (string, error) { return NewSource().Triple() }

// CurrentProfile returns the build profile.
func CurrentProfile() (Profile, error) { return NewSource().Profile() }
