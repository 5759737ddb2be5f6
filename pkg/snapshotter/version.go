package snapshotter

import "github.com/OpenByteDev/build-target/pkg/header"

const (
	// Kind is the resource kind for snapshots.
	Kind = "Snapshot"

	// MetadataID is the metadata key holding the unique snapshot id.
	MetadataID = "snapshot-id"

	// MetadataVersion is the metadata key holding the tool version.
	MetadataVersion = "snapshot-version"
)

// FullAPIVersion is the complete API version string for snapshots.
var FullAPIVersion = header.APIVersion(Kind)
