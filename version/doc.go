// Package version provides version information and build metadata for fq.
//
// It supports compile-time version injection via build flags
// (-ldflags "-X .../version.Version=v1.0.0" plus Commit and Date) and
// falls back to the runtime build info from debug.ReadBuildInfo(), so
// development, CI and release builds all report something sensible.
// GetFullVersion() is the string cobra shows for --version.
package version
