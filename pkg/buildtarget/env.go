package buildtarget

// Env disambiguates a target by ABI or C library, matching cfg(target_env).
//
// It is related to the fourth component of a target triple but not equal to
// it: embedded ABIs such as gnueabihf report plain "gnu".
//
// Many targets have no environment at all. The accessor reports that as an
// absent value rather than as an Env.
type Env string

const (
	// EnvGNU is the GNU C Library (glibc).
	EnvGNU Env = "gnu"
	// EnvMSVC is Microsoft Visual C++.
	EnvMSVC Env = "msvc"
	// EnvMusl is the musl libc.
	EnvMusl Env = "musl"
	// EnvNewlib is the newlib embedded C library.
	EnvNewlib Env = "newlib"
	// QNX Neutrino releases.
	EnvNTO70       Env = "nto70"
	EnvNTO71       Env = "nto71"
	EnvNTO71IOSock Env = "nto71_iosock"
	EnvNTO80       Env = "nto80"
	// EnvOHOS is OpenHarmony.
	EnvOHOS Env = "ohos"
	// WASI preview releases.
	EnvP1 Env = "p1"
	EnvP2 Env = "p2"
	// EnvRelibc is the Redox C library.
	EnvRelibc Env = "relibc"
	// EnvSGX is an Intel SGX enclave.
	EnvSGX Env = "sgx"
	// EnvUClibc is uClibc for embedded Linux.
	EnvUClibc Env = "uclibc"
)

var envs = newEnum(
	EnvGNU, EnvMSVC, EnvMusl, EnvNewlib, EnvNTO70, EnvNTO71, EnvNTO71IOSock,
	EnvNTO80, EnvOHOS, EnvP1, EnvP2, EnvRelibc, EnvSGX, EnvUClibc,
)

// ParseEnv classifies s case-insensitively, falling back to an unknown Env
// holding the lower-cased string.
func ParseEnv(s string) Env {
	return envs.parse(s)
}

// KnownEnvs returns the named environments in declaration order.
func KnownEnvs() []Env {
	return envs.list()
}

// String returns the canonical cfg(target_env) string.
func (e Env) String() string {
	return string(e)
}

// IsKnown reports whether e is one of the named environments.
func (e Env) IsKnown() bool {
	return envs.known(e)
}

// Compare orders named environments by declaration, unknown ones last.
func (e Env) Compare(other Env) int {
	return envs.compare(e, other)
}

// Suggest returns the named environment closest to an unrecognized e.
func (e Env) Suggest() (Env, bool) {
	return envs.suggest(e)
}

// UnmarshalText decodes text through ParseEnv.
func (e *Env) UnmarshalText(text []byte) error {
	*e = ParseEnv(string(text))
	return nil
}
