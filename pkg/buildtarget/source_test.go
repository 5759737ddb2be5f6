package buildtarget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/OpenByteDev/build-target/pkg/errors"
)

func linuxEnv() MapLookup {
	return MapLookup{
		"CARGO_CFG_TARGET_ARCH":          "X86_64",
		"CARGO_CFG_TARGET_ENDIAN":        "little",
		"CARGO_CFG_TARGET_ENV":           "",
		"CARGO_CFG_TARGET_OS":            "linux",
		"CARGO_CFG_TARGET_POINTER_WIDTH": "64",
		"CARGO_CFG_TARGET_FAMILY":        "unix",
		"CARGO_CFG_TARGET_VENDOR":        "unknown",
		"TARGET":                         "x86_64-unknown-linux-gnu",
	}
}

func TestSource_Target(t *testing.T) {
	src := NewSource(WithLookup(linuxEnv()))

	got, err := src.Target()
	require.NoError(t, err)

	want := Target{
		Arch:         ArchX86_64,
		Endian:       EndianLittle,
		OS:           OSLinux,
		PointerWidth: PointerWidth64,
		Family:       []Family{FamilyUnix},
		Vendor:       VendorUnknown,
		Triple:       "x86_64-unknown-linux-gnu",
	}
	assert.Equal(t, want, got)
	assert.Nil(t, got.Env)
	assert.True(t, got.Equal(want))
}

func TestSource_TargetWithEnv(t *testing.T) {
	env := linuxEnv()
	env["CARGO_CFG_TARGET_ENV"] = "Musl"

	got, err := NewSource(WithLookup(env)).Target()
	require.NoError(t, err)
	assert.Equal(t, ptr.To(EnvMusl), got.Env)
}

func TestSource_TargetMissingVariable(t *testing.T) {
	tests := []struct {
		name    string
		remove  []string
		wantVar string
	}{
		{"arch", []string{"CARGO_CFG_TARGET_ARCH"}, "CARGO_CFG_TARGET_ARCH"},
		{"endian", []string{"CARGO_CFG_TARGET_ENDIAN"}, "CARGO_CFG_TARGET_ENDIAN"},
		{"os", []string{"CARGO_CFG_TARGET_OS"}, "CARGO_CFG_TARGET_OS"},
		{"pointer width", []string{"CARGO_CFG_TARGET_POINTER_WIDTH"}, "CARGO_CFG_TARGET_POINTER_WIDTH"},
		{"vendor", []string{"CARGO_CFG_TARGET_VENDOR"}, "CARGO_CFG_TARGET_VENDOR"},
		{"triple", []string{"TARGET"}, "TARGET"},
		{"first failure wins", []string{"CARGO_CFG_TARGET_ARCH", "TARGET"}, "CARGO_CFG_TARGET_ARCH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := linuxEnv()
			for _, k := range tt.remove {
				delete(env, k)
			}

			got, err := NewSource(WithLookup(env)).Target()
			require.Error(t, err)
			assert.Equal(t, Target{}, got)
			assert.True(t, IsNotSet(err))
			assert.Contains(t, err.Error(), tt.wantVar)

			var se *errors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantVar, se.Context["variable"])
		})
	}
}

func TestSource_OptionalVariablesMayBeMissing(t *testing.T) {
	env := linuxEnv()
	delete(env, "CARGO_CFG_TARGET_ENV")
	delete(env, "CARGO_CFG_TARGET_FAMILY")

	got, err := NewSource(WithLookup(env)).Target()
	require.NoError(t, err)
	assert.Nil(t, got.Env)
	assert.NotNil(t, got.Family)
	assert.Empty(t, got.Family)
}

func TestSource_Env(t *testing.T) {
	tests := []struct {
		name   string
		env    MapLookup
		want   Env
		wantOK bool
	}{
		{"unset", MapLookup{}, "", false},
		{"empty", MapLookup{"CARGO_CFG_TARGET_ENV": ""}, "", false},
		{"known", MapLookup{"CARGO_CFG_TARGET_ENV": "GNU"}, EnvGNU, true},
		{"unknown", MapLookup{"CARGO_CFG_TARGET_ENV": "Exotic"}, Env("exotic"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewSource(WithLookup(tt.env)).Env()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSource_Family(t *testing.T) {
	tests := []struct {
		name string
		env  MapLookup
		want []Family
	}{
		{"unset", MapLookup{}, []Family{}},
		{"empty", MapLookup{"CARGO_CFG_TARGET_FAMILY": ""}, []Family{}},
		{"single", MapLookup{"CARGO_CFG_TARGET_FAMILY": "windows"}, []Family{FamilyWindows}},
		{"ordered pair", MapLookup{"CARGO_CFG_TARGET_FAMILY": "unix,wasm"}, []Family{FamilyUnix, FamilyWasm}},
		{"empty segment", MapLookup{"CARGO_CFG_TARGET_FAMILY": "unix,,wasm"}, []Family{FamilyUnix, FamilyWasm}},
		{"trailing separator", MapLookup{"CARGO_CFG_TARGET_FAMILY": "UNIX,"}, []Family{FamilyUnix}},
		{"only separators", MapLookup{"CARGO_CFG_TARGET_FAMILY": ",,"}, []Family{}},
		{"unknown kept", MapLookup{"CARGO_CFG_TARGET_FAMILY": "wasm,Plan9"}, []Family{FamilyWasm, "plan9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSource(WithLookup(tt.env)).Family()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSource_RequiredEmptyValuePassesThrough(t *testing.T) {
	src := NewSource(WithLookup(MapLookup{"CARGO_CFG_TARGET_VENDOR": ""}))

	vendor, err := src.Vendor()
	require.NoError(t, err)
	assert.Equal(t, Vendor(""), vendor)
	assert.False(t, vendor.IsKnown())
}

func TestSource_Profile(t *testing.T) {
	src := NewSource(WithLookup(MapLookup{"PROFILE": "Release"}))
	profile, err := src.Profile()
	require.NoError(t, err)
	assert.Equal(t, ProfileRelease, profile)

	_, err = NewSource(WithLookup(MapLookup{})).Profile()
	assert.True(t, IsNotSet(err))
	assert.Contains(t, err.Error(), "PROFILE")
}

func TestSource_WithCfgPrefix(t *testing.T) {
	src := NewSource(
		WithCfgPrefix("MY_"),
		WithLookup(MapLookup{"MY_TARGET_OS": "Windows", "CARGO_CFG_TARGET_OS": "linux"}),
	)

	os, err := src.OS()
	require.NoError(t, err)
	assert.Equal(t, OSWindows, os)
	assert.Equal(t, "MY_TARGET_ARCH", src.CfgVar(VarTargetArch))
}

func TestSource_ReadsFreshEachCall(t *testing.T) {
	env := MapLookup{"CARGO_CFG_TARGET_ARCH": "arm"}
	src := NewSource(WithLookup(env))

	first, err := src.Arch()
	require.NoError(t, err)
	env["CARGO_CFG_TARGET_ARCH"] = "aarch64"
	second, err := src.Arch()
	require.NoError(t, err)

	assert.Equal(t, ArchARM, first)
	assert.Equal(t, ArchAArch64, second)
}

func TestLookupFunc(t *testing.T) {
	var asked []string
	l := LookupFunc(func(key string) (string, bool) {
		asked = append(asked, key)
		return "big", true
	})

	endian, err := NewSource(WithLookup(l)).Endian()
	require.NoError(t, err)
	assert.Equal(t, EndianBig, endian)
	assert.Equal(t, []string{"CARGO_CFG_TARGET_ENDIAN"}, asked)
}
