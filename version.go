// Package gostcrypt is the home of the gost block cipher (see package
// gost) and the configuration glue around it.
package gostcrypt

import "fmt"

const (
	MajorVersion = 0
	MinorVersion = 1
	PatchVersion = 0
)

// Version returns the version of this module as triple.
func Version() (int, int, int) {
	return MajorVersion, MinorVersion, PatchVersion
}

// VersionString returns the version as "major.minor.patch".
func VersionString() string {
	return fmt.Sprintf("%d.%d.%d", MajorVersion, MinorVersion, PatchVersion)
}
