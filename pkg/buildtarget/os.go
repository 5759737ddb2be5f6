package buildtarget

// OS is the operating system of the target, matching cfg(target_os).
//
// It is related to the second and third components of a target triple but
// not identical to them. Bare-metal targets report OSNone.
type OS string

const (
	OSAIX        OS = "aix"
	OSAMDHSA     OS = "amdhsa"
	OSAndroid    OS = "android"
	OSCUDA       OS = "cuda"
	OSCygwin     OS = "cygwin"
	OSDragonfly  OS = "dragonfly"
	OSEmscripten OS = "emscripten"
	// OSESPIDF is the Espressif IoT Development Framework.
	OSESPIDF  OS = "espidf"
	OSFreeBSD OS = "freebsd"
	OSFuchsia OS = "fuchsia"
	OSHaiku   OS = "haiku"
	// OSHermit is the Hermit unikernel.
	OSHermit  OS = "hermit"
	OSHorizon OS = "horizon"
	OSHurd    OS = "hurd"
	OSIllumos OS = "illumos"
	OSIOS     OS = "ios"
	OSL4Re    OS = "l4re"
	OSLinux   OS = "linux"
	// OSLynxOS178 is the LynxOS-178 real-time OS.
	OSLynxOS178 OS = "lynxos178"
	OSMacOS     OS = "macos"
	OSNetBSD    OS = "netbsd"
	// OSNone means the target has no operating system.
	OSNone    OS = "none"
	OSNTO     OS = "nto"
	OSNuttX   OS = "nuttx"
	OSOpenBSD OS = "openbsd"
	OSPSP     OS = "psp"
	OSPSX     OS = "psx"
	OSRedox   OS = "redox"
	OSRTEMS   OS = "rtems"
	OSSolaris OS = "solaris"
	// OSSolidASP3 is the SOLID ASP3 kernel.
	OSSolidASP3 OS = "solid_asp3"
	OSTeeOS     OS = "teeos"
	OSTrusty    OS = "trusty"
	OSTvOS      OS = "tvos"
	OSUEFI      OS = "uefi"
	OSUnknown   OS = "unknown"
	OSVisionOS  OS = "visionos"
	OSVita      OS = "vita"
	OSVxWorks   OS = "vxworks"
	// OSWASI is the WebAssembly System Interface.
	OSWASI    OS = "wasi"
	OSWatchOS OS = "watchos"
	OSWindows OS = "windows"
	OSXous    OS = "xous"
	// OSZkVM is a zero-knowledge proof VM.
	OSZkVM OS = "zkvm"
)

var oses = newEnum(
	OSAIX, OSAMDHSA, OSAndroid, OSCUDA, OSCygwin, OSDragonfly, OSEmscripten,
	OSESPIDF, OSFreeBSD, OSFuchsia, OSHaiku, OSHermit, OSHorizon, OSHurd,
	OSIllumos, OSIOS, OSL4Re, OSLinux, OSLynxOS178, OSMacOS, OSNetBSD, OSNone,
	OSNTO, OSNuttX, OSOpenBSD, OSPSP, OSPSX, OSRedox, OSRTEMS, OSSolaris,
	OSSolidASP3, OSTeeOS, OSTrusty, OSTvOS, OSUEFI, OSUnknown, OSVisionOS,
	OSVita, OSVxWorks, OSWASI, OSWatchOS, OSWindows, OSXous, OSZkVM,
)

// ParseOS classifies s case-insensitively, falling back to an unknown OS
// holding the lower-cased string.
func ParseOS(s string) OS {
	return oses.parse(s)
}

// KnownOSes returns the named operating systems in declaration order.
func KnownOSes() []OS {
	return oses.list()
}

// String returns the canonical cfg(target_os) string.
func (o OS) String() string {
	return string(o)
}

// IsKnown reports whether o is one of the named operating systems.
func (o OS) IsKnown() bool {
	return oses.known(o)
}

// Compare orders named operating systems by declaration, unknown ones last.
func (o OS) Compare(other OS) int {
	return oses.compare(o, other)
}

// Suggest returns the named operating system closest to an unrecognized o.
func (o OS) Suggest() (OS, bool) {
	return oses.suggest(o)
}

// UnmarshalText decodes text through ParseOS.
func (o *OS) UnmarshalText(text []byte) error {
	*o = ParseOS(string(text))
	return nil
}
