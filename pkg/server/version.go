package server

import (
	"net/http"
	"regexp"
	"slices"
)

const (
	// DefaultAPIVersion is served when the client does not ask for one.
	DefaultAPIVersion = "v1"

	// HeaderAPIVersion names the response header carrying the served version.
	HeaderAPIVersion = "X-API-Version"
)

var (
	supportedAPIVersions = []string{"v1"}

	vendorMediaType = regexp.MustCompile(`^application/vnd\.buildtarget\.(v[0-9]+)\+json$`)
)

// negotiateAPIVersion picks the API version from an Accept header of the
// form application/vnd.buildtarget.v1+json, falling back to the default.
func negotiateAPIVersion(r *http.Request) string {
	m := vendorMediaType.FindStringSubmatch(r.Header.Get("Accept"))
	if m == nil || !isValidAPIVersion(m[1]) {
		return DefaultAPIVersion
	}
	return m[1]
}

func isValidAPIVersion(v string) bool {
	return slices.Contains(supportedAPIVersions, v)
}
