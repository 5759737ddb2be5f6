// Package cli implements the command-line interface for the buildtarget tool.
//
// # Overview
//
// buildtarget reads the target configuration a build orchestrator exports
// to build scripts (CARGO_CFG_TARGET_ARCH, TARGET, PROFILE and friends) and
// prints it in normalized form.
//
// # Commands
//
// snapshot - Capture the whole target:
//
//	buildtarget snapshot [--output FILE] [--format yaml|json|table]
//
// get - Print a single field:
//
//	buildtarget get arch
//	buildtarget get family    # comma separated
//
// known - List the named variants of a field:
//
//	buildtarget known os
//
// Fields accepted by get and known: arch, endian, env, family, os,
// pointer-width, profile, triple, vendor. triple is free-form and has no
// named variants.
//
// # Global Flags
//
//	--cfg-prefix   Prefix of the cfg variables (default: CARGO_CFG_)
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL               Set logging verbosity (debug, info, warn, error)
//	BUILDTARGET_CFG_PREFIX  Same as --cfg-prefix
//	BUILDTARGET_DEBUG       Same as --debug
//
// # Exit Codes
//
//	0  Success
//	1  General error (missing variable, invalid arguments)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/OpenByteDev/build-target/pkg/cli.version=1.0.0'"
package cli
