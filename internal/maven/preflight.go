// Where: internal/maven/preflight.go
// What: Checks for the Maven installation and the local archetype cache.
// Why: Fail before generation when the external toolchain is unusable.
package maven

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// DefaultBinary is the Maven executable resolved on PATH.
	DefaultBinary = "mvn"
	// HomeVar must point at the Maven installation.
	HomeVar = "M2_HOME"
)

// ArchetypeCachePath returns the fixed location under the user's home
// directory where Maven caches the standard archetypes.
func ArchetypeCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".m2", "repository", "org", "apache", "maven", "archetypes"), nil
}

// CheckArchetypes reports whether the archetype cache directory exists.
func CheckArchetypes() (string, bool, error) {
	path, err := ArchetypeCachePath()
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, false, nil
		}
		return path, false, err
	}
	return path, info.IsDir(), nil
}

// CheckTool verifies the Maven binary is resolvable and HomeVar is set.
// Each missing precondition gets its own message.
func CheckTool(binary string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s not found on PATH", binary)
	}
	if strings.TrimSpace(os.Getenv(HomeVar)) == "" {
		return fmt.Errorf("%s is not set", HomeVar)
	}
	return nil
}
