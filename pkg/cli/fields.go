package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/OpenByteDev/build-target/pkg/buildtarget"
)

// field describes one target field addressable from the command line.
type field struct {
	// read returns the canonical text of the field. An absent optional
	// field reads as "".
	read func(*buildtarget.Source) (string, error)
	// known lists the named variants, nil for free-form fields.
	known func() []string
}

var fields = map[string]field{
	"arch": {
		read:  readEnum((*buildtarget.Source).Arch),
		known: knownOf(buildtarget.KnownArches),
	},
	"endian": {
		read:  readEnum((*buildtarget.Source).Endian),
		known: knownOf(buildtarget.KnownEndians),
	},
	"env": {
		read: func(s *buildtarget.Source) (string, error) {
			env, _ := s.Env()
			return env.String(), nil
		},
		known: knownOf(buildtarget.KnownEnvs),
	},
	"os": {
		read:  readEnum((*buildtarget.Source).OS),
		known: knownOf(buildtarget.KnownOSes),
	},
	"pointer-width": {
		read:  readEnum((*buildtarget.Source).PointerWidth),
		known: knownOf(buildtarget.KnownPointerWidths),
	},
	"family": {
		read: func(s *buildtarget.Source) (string, error) {
			families := s.Family()
			parts := make([]string, len(families))
			for i, f := range families {
				parts[i] = f.String()
			}
			return strings.Join(parts, ","), nil
		},
		known: knownOf(buildtarget.KnownFamilies),
	},
	"vendor": {
		read:  readEnum((*buildtarget.Source).Vendor),
		known: knownOf(buildtarget.KnownVendors),
	},
	"triple": {
		read: (*buildtarget.Source).Triple,
	},
	"profile": {
		read:  readEnum((*buildtarget.Source).Profile),
		known: knownOf(buildtarget.KnownProfiles),
	},
}

func readEnum[T ~string](get func(*buildtarget.Source) (T, error)) func(*buildtarget.Source) (string, error) {
	return func(s *buildtarget.Source) (string, error) {
		v, err := get(s)
		return string(v), err
	}
}

func knownOf[T ~string](list func() []T) func() []string {
	return func() []string {
		values := list()
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = string(v)
		}
		return out
	}
}

// fieldNames returns the sorted names accepted by get and known.
func fieldNames() []string {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func lookupField(name string) (field, error) {
	f, ok := fields[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return field{}, fmt.Errorf("unknown field: %q, valid fields are: %s", name, strings.Join(fieldNames(), ", "))
	}
	return f, nil
}
