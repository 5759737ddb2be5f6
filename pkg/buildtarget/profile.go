package buildtarget

// Profile is the build profile the orchestrator is running, as reported in
// the PROFILE variable.
type Profile string

const (
	// ProfileDev is used for normal development and debugging builds.
	ProfileDev Profile = "dev"
	// ProfileRelease is used for optimized release artifacts.
	ProfileRelease Profile = "release"
	// ProfileTest is used when building tests.
	ProfileTest Profile = "test"
	// ProfileBench is used when building benchmarks.
	ProfileBench Profile = "bench"
)

var profiles = newEnum(ProfileDev, ProfileRelease, ProfileTest, ProfileBench)

// ParseProfile classifies s case-insensitively, falling back to an unknown
// Profile holding the lower-cased string.
func ParseProfile(s string) Profile { return profiles.parse(s) }

// KnownProfiles returns the named profiles in declaration order.
func KnownProfiles() []Profile { return profiles.list() }

func (p Profile) String() string { return string(p) }

func (p Profile) IsKnown() bool { return profiles.known(p) }

func (p Profile) Compare(other Profile) int { return profiles.compare(p, other) }

func (p Profile) Suggest() (Profile, bool) { return profiles.suggest(p) }

func (p *Profile) UnmarshalText(text []byte) error {
	*p = ParseProfile(string(text))
	return nil
}
