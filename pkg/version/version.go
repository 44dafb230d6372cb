// Package version holds the build version string.
package version

// Version is the current release.
const Version = "1.2.0"
