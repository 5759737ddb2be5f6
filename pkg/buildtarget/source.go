package buildtarget

import (
	"fmt"
	"os"

	"github.com/OpenByteDev/build-target/pkg/errors"
)

// DefaultCfgPrefix is the prefix the orchestrator puts in front of the
// cfg(target_*) variable names.
const DefaultCfgPrefix = "CARGO_CFG_"

// Variable names. The cfg variables are relative to the Source prefix.
const (
	VarTargetArch         = "TARGET_ARCH"
	VarTargetEndian       = "TARGET_ENDIAN"
	VarTargetEnv          = "TARGET_ENV"
	VarTargetOS           = "TARGET_OS"
	VarTargetPointerWidth = "TARGET_POINTER_WIDTH"
	VarTargetFamily       = "TARGET_FAMILY"
	VarTargetVendor       = "TARGET_VENDOR"

	// VarTriple holds the full target triple. It is not prefixed.
	VarTriple = "TARGET"
	// VarProfile holds the build profile. It is not prefixed.
	VarProfile = "PROFILE"
)

// Lookup retrieves environment variables. It has the shape of os.LookupEnv.
type Lookup interface {
	LookupEnv(key string) (string, bool)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(key string) (string, bool)

// LookupEnv calls f(key).
func (f LookupFunc) LookupEnv(key string) (string, bool) {
	return f(key)
}

// MapLookup is a fixed environment, mostly useful in tests.
type MapLookup map[string]string

// LookupEnv returns m[key].
func (m MapLookup) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ProcessEnv reads the environment of the current process.
var ProcessEnv Lookup = LookupFunc(os.LookupEnv)

// Option is a functional option for configuring a Source.
type Option func(*Source)

// WithLookup returns an Option that reads variables from l instead of the
// process environment.
func WithLookup(l Lookup) Option {
	return func(s *Source) {
		s.env = l
	}
}

// WithCfgPrefix returns an Option that replaces DefaultCfgPrefix.
func WithCfgPrefix(prefix string) Option {
	return func(s *Source) {
		s.cfgPrefix = prefix
	}
}

// Source reads target information from an environment. Every call performs
// a fresh lookup; nothing is cached.
type Source struct {
	env       Lookup
	cfgPrefix string
}

// NewSource creates a Source over the process environment with the default
// prefix, then applies opts.
func NewSource(opts ...Option) *Source {
	s := &Source{
		env:       ProcessEnv,
		cfgPrefix: DefaultCfgPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CfgVar returns the full variable name for a cfg variable such as VarTargetArch.
func (s *Source) CfgVar(name string) string {
	return s.cfgPrefix + name
}

// required returns the value of key or a NOT_FOUND error naming it. A
// variable that is set but empty is returned as is.
func (s *Source) required(key string) (string, error) {
	v, ok := s.env.LookupEnv(key)
	if !ok {
		return "", errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("environment variable %s not set", key),
			map[string]any{"variable": key})
	}
	return v, nil
}

// Arch returns the target architecture.
func (s *Source) Arch() (Arch, error) {
	v, err := s.required(s.CfgVar(VarTargetArch))
	if err != nil {
		return "", err
	}
	return ParseArch(v), nil
}

// Endian returns the target byte order.
func (s *Source) Endian() (Endian, error) {
	v, err := s.required(s.CfgVar(VarTargetEndian))
	if err != nil {
		return "", err
	}
	return ParseEndian(v), nil
}

// Env returns the target environment. It reports false when the variable
// is unset or empty, which means no ABI environment applies.
func (s *Source) Env() (Env, bool) {
	v, ok := s.env.LookupEnv(s.CfgVar(VarTargetEnv))
	if !ok || v == "" {
		return "", false
	}
	return ParseEnv(v), true
}

// OS returns the target operating system.
func (s *Source) OS() (OS, error) {
	v, err := s.required(s.CfgVar(VarTargetOS))
	if err != nil {
		return "", err
	}
	return ParseOS(v), nil
}

// PointerWidth returns the target pointer width.
func (s *Source) PointerWidth() (PointerWidth, error) {
	v, err := s.required(s.CfgVar(VarTargetPointerWidth))
	if err != nil {
		return "", err
	}
	return ParsePointerWidth(v), nil
}

// Family returns the target families in the order reported. An unset
// variable yields an empty slice.
func (s *Source) Family() []Family {
	v, _ := s.env.LookupEnv(s.CfgVar(VarTargetFamily))
	return ParseFamilies(v)
}

// Vendor returns the target vendor.
func (s *Source) Vendor() (Vendor, error) {
	v, err := s.required(s.CfgVar(VarTargetVendor))
	if err != nil {
		return "", err
	}
	return ParseVendor(v), nil
}

// Triple returns the unprocessed target triple.
func (s *Source) Triple() (string, error) {
	return s.required(VarTriple)
}

// Profile returns the build profile.
func (s *Source) Profile() (Profile, error) {
	v, err := s.required(VarProfile)
	if err != nil {
		return "", err
	}
	return ParseProfile(v), nil
}

// IsNotSet reports whether err is the error returned for a missing
// required variable.
func IsNotSet(err error) bool {
	return errors.HasCode(err, errors.ErrCodeNotFound)
}

// IsInvalidInteger reports whether err is the error returned by
// PointerWidth.Uint8 for a non-numeric width.
func IsInvalidInteger(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidRequest)
}
