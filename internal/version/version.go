// Where: internal/version/version.go
// What: Build version lookup for the -V flag.
// Why: Report which revision of mvnew is installed.
package version

import "runtime/debug"

// Get returns a human-readable version string. Binaries built from a VCS
// checkout report the short revision, marked "(dirty)" when local edits
// were present at build time; anything else reports "dev".
func Get() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	revision := settings["vcs.revision"]
	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if settings["vcs.modified"] == "true" {
		return revision + " (dirty)"
	}
	return revision
}
