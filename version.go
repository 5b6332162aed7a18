// Package parselib is a small character-stream scanning toolkit for hand-written
// parsers. The cursor lives in the reader package and the character predicates in
// charclass.
package parselib

import (
	_ "embed"
	"strings"

	"github.com/Masterminds/semver/v3"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a strict SemVer 2.0.0 version. A leading `v` is
// rejected; use VersionTag for the tag form.
func IsSemver(v string) bool {
	_, err := semver.StrictNewVersion(strings.TrimSpace(v))
	return err == nil
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
