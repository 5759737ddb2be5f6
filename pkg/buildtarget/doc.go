// Package buildtarget exposes the build target reported by a build
// orchestrator through environment variables as typed values.
//
// # Classifiers
//
// Each target property has its own string type with named constants:
// [Arch], [Endian], [Env], [OS], [PointerWidth], [Family], [Vendor] and
// [Profile]. The constants hold the canonical lower-case spelling used by
// cfg(target_*). Parsing is case-insensitive and never fails:
//
//	buildtarget.ParseArch("X86_64")   // ArchX86_64
//	buildtarget.ParseArch("riscv128") // Arch("riscv128"), IsKnown() == false
//
// Unknown values are data, not errors. New platforms appear faster than any
// list can track, so a value outside the constants round-trips unchanged and
// callers match on the constants they care about:
//
//	switch arch {
//	case buildtarget.ArchX86_64, buildtarget.ArchX86:
//	    // ...
//	default:
//	    // unknown or uninteresting architecture
//	}
//
// # Reading the environment
//
// A [Source] reads the variables through a [Lookup]. [NewSource] uses the
// process environment; tests inject a [MapLookup]:
//
//	src := buildtarget.NewSource(buildtarget.WithLookup(buildtarget.MapLookup{
//	    "CARGO_CFG_TARGET_ARCH": "aarch64",
//	}))
//	arch, err := src.Arch()
//
// Presence rules:
//
//   - Arch, Endian, OS, PointerWidth, Vendor, triple (TARGET) and profile
//     (PROFILE) are required. A missing variable returns an error naming it;
//     check with [IsNotSet].
//   - Env is optional. Unset or empty means no ABI environment applies.
//   - Family is a comma-separated list. Empty segments are dropped and an
//     unset variable yields an empty list.
//
// [Source.Target] assembles all fields into a [Target]. The first missing
// variable aborts assembly and its error is returned as is.
//
// The Current functions ([Current], [CurrentArch], ...) are shorthands over
// the process environment.
package buildtarget
