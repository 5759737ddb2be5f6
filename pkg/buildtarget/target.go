package buildtarget

import (
	"cmp"
	"slices"
	"strings"

	"k8s.io/utils/ptr"
)

// Target is a snapshot of everything the orchestrator reports about the
// build target. Treat it as read-only once built.
type Target struct {
	// Arch is the CPU architecture, such as x86_64 or aarch64.
	Arch Arch `json:"arch" yaml:"arch"`
	// Endian is the byte order, big or little.
	Endian Endian `json:"endian" yaml:"endian"`
	// Env is the ABI environment, such as gnu or msvc. Nil when none applies.
	Env *Env `json:"env,omitempty" yaml:"env,omitempty"`
	// OS is the operating system, such as linux, windows or none.
	OS OS `json:"os" yaml:"os"`
	// PointerWidth is the pointer size in bits.
	PointerWidth PointerWidth `json:"pointerWidth" yaml:"pointerWidth"`
	// Family lists the target families, possibly none.
	Family []Family `json:"family" yaml:"family"`
	// Vendor is the platform vendor, such as apple, pc or unknown.
	Vendor Vendor `json:"vendor" yaml:"vendor"`
	// Triple is the target triple exactly as reported.
	Triple string `json:"triple" yaml:"triple"`
}

// Target reads every field of the build target. The first missing required
// variable aborts the read and its error is returned unchanged.
func (s *Source) Target() (Target, error) {
	arch, err := s.Arch()
	if err != nil {
		return Target{}, err
	}
	endian, err := s.Endian()
	if err != nil {
		return Target{}, err
	}
	os, err := s.OS()
	if err != nil {
		return Target{}, err
	}
	pointerWidth, err := s.PointerWidth()
	if err != nil {
		return Target{}, err
	}
	vendor, err := s.Vendor()
	if err != nil {
		return Target{}, err
	}
	triple, err := s.Triple()
	if err != nil {
		return Target{}, err
	}

	t := Target{
		Arch:         arch,
		Endian:       endian,
		OS:           os,
		PointerWidth: pointerWidth,
		Family:       s.Family(),
		Vendor:       vendor,
		Triple:       triple,
	}
	if env, ok := s.Env(); ok {
		t.Env = ptr.To(env)
	}
	return t, nil
}

// HasFamily reports whether f is among the target's families.
func (t Target) HasFamily(f Family) bool {
	return slices.Contains(t.Family, f)
}

// Equal reports whether t and o hold the same values field by field.
func (t Target) Equal(o Target) bool {
	return t.Compare(o) == 0
}

// Compare orders targets field by field in declaration order. An absent
// environment sorts before any present one.
func (t Target) Compare(o Target) int {
	return cmp.Or(
		t.Arch.Compare(o.Arch),
		t.Endian.Compare(o.Endian),
		compareEnv(t.Env, o.Env),
		t.OS.Compare(o.OS),
		t.PointerWidth.Compare(o.PointerWidth),
		slices.CompareFunc(t.Family, o.Family, Family.Compare),
		t.Vendor.Compare(o.Vendor),
		strings.Compare(t.Triple, o.Triple),
	)
}

func compareEnv(a, b *Env) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
