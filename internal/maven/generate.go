// Where: internal/maven/generate.go
// What: Assembly and execution of mvn archetype:generate invocations.
// Why: Provide a minimal, testable surface for project generation.
package maven

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

const (
	quickstartGroupID    = "org.apache.maven.archetypes"
	quickstartArtifactID = "maven-archetype-quickstart"
	quickstartVersion    = "1.4"

	basePomGroupID    = "org.codehaus.mojo.archetypes"
	basePomArtifactID = "pom-root"
)

// Archetype identifies a Maven archetype plus any extra properties forwarded
// to archetype:generate as -D arguments.
type Archetype struct {
	GroupID    string
	ArtifactID string
	Version    string // empty means unpinned
	Properties map[string]string
}

// Quickstart returns the general-purpose archetype, pinned.
func Quickstart() Archetype {
	return Archetype{
		GroupID:    quickstartGroupID,
		ArtifactID: quickstartArtifactID,
		Version:    quickstartVersion,
	}
}

// BasePom returns the minimal archetype producing only a POM, unpinned.
func BasePom() Archetype {
	return Archetype{
		GroupID:    basePomGroupID,
		ArtifactID: basePomArtifactID,
	}
}

// Coordinates identify the project being generated. Package is empty for
// base-POM projects.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
	Package    string
}

// Invocation is a fully resolved archetype:generate call.
type Invocation struct {
	Archetype   Archetype
	Coordinates Coordinates
	Dir         string // working directory for mvn; empty inherits
	ToolFlag    string // "-X", "-q", or empty
}

// Args assembles the argument vector passed to mvn. Extra archetype
// properties are emitted in sorted key order so the vector is stable.
func (inv Invocation) Args() []string {
	args := make([]string, 0, 12+len(inv.Archetype.Properties))
	if inv.ToolFlag != "" {
		args = append(args, inv.ToolFlag)
	}
	args = append(args,
		"archetype:generate",
		"-DinteractiveMode=false",
		"-DarchetypeGroupId="+inv.Archetype.GroupID,
		"-DarchetypeArtifactId="+inv.Archetype.ArtifactID,
	)
	if inv.Archetype.Version != "" {
		args = append(args, "-DarchetypeVersion="+inv.Archetype.Version)
	}
	args = append(args,
		"-DgroupId="+inv.Coordinates.GroupID,
		"-DartifactId="+inv.Coordinates.ArtifactID,
		"-Dversion="+inv.Coordinates.Version,
	)
	if inv.Coordinates.Package != "" {
		args = append(args, "-Dpackage="+inv.Coordinates.Package)
	}
	keys := make([]string, 0, len(inv.Archetype.Properties))
	for key := range inv.Archetype.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		args = append(args, fmt.Sprintf("-D%s=%s", key, inv.Archetype.Properties[key]))
	}
	return args
}

// CommandLine renders the invocation for display, e.g. in dry runs.
func (inv Invocation) CommandLine() string {
	return DefaultBinary + " " + strings.Join(inv.Args(), " ")
}

// Invoker runs archetype:generate through a CommandRunner.
type Invoker struct {
	Runner CommandRunner
	Binary string // defaults to DefaultBinary
}

// Generate blocks until mvn terminates. A non-zero child status is reported
// as a StatusError so callers can forward it verbatim.
func (i Invoker) Generate(ctx context.Context, inv Invocation) error {
	if i.Runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	binary := i.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	err := i.Runner.Run(ctx, inv.Dir, binary, inv.Args()...)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return &StatusError{Code: exitErr.ExitCode()}
	}
	return err
}
