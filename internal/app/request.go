// Where: internal/app/request.go
// What: Option resolution into an immutable ProjectRequest.
// Why: Turn parsed flags into a single record threaded through the pipeline.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvnew/mvnew/internal/config"
	"github.com/mvnew/mvnew/internal/maven"
)

// DefaultVersion is used when neither the flag nor the config supplies one.
const DefaultVersion = "1.0-SNAPSHOT"

// MissingOptionsError reports required flags that were not supplied.
type MissingOptionsError struct {
	Flags []string
}

func (e *MissingOptionsError) Error() string {
	return "missing required options: " + strings.Join(e.Flags, ", ")
}

// ErrConflictingTemplate rejects combining a named archetype with -b.
var ErrConflictingTemplate = errors.New("-t cannot be combined with -b")

// ProjectRequest is the resolved configuration consumed by the pipeline.
// It is constructed once and never mutated afterwards.
type ProjectRequest struct {
	GroupID       string
	ArtifactID    string
	Version       string
	Package       string // empty for base-POM projects
	BasePom       bool
	Dir           string // always absolute
	Archetype     maven.Archetype
	ArchetypeName string
	Quiet         bool
	Mute          bool
	Debug         bool
	DryRun        bool
}

// ShowSummary reports whether the resolved summary is printed.
func (r ProjectRequest) ShowSummary() bool {
	return !r.Mute
}

// NeedsConfirmation reports whether the interactive y/n step runs.
func (r ProjectRequest) NeedsConfirmation() bool {
	return !r.Quiet && !r.Mute
}

// ToolFlag returns the verbosity flag forwarded to mvn. Debug wins over
// mute when both were requested.
func (r ProjectRequest) ToolFlag() string {
	switch {
	case r.Debug:
		return "-X"
	case r.Mute:
		return "-q"
	}
	return ""
}

// Invocation assembles the mvn call for this request.
func (r ProjectRequest) Invocation() maven.Invocation {
	return maven.Invocation{
		Archetype: r.Archetype,
		Coordinates: maven.Coordinates{
			GroupID:    r.GroupID,
			ArtifactID: r.ArtifactID,
			Version:    r.Version,
			Package:    r.Package,
		},
		Dir:      r.Dir,
		ToolFlag: r.ToolFlag(),
	}
}

// NormalizePackage replaces every dash and space with a dot, left to right,
// in a single pass. The result is a fixpoint, so applying it twice yields
// the same string.
func NormalizePackage(s string) string {
	return strings.NewReplacer("-", ".", " ", ".").Replace(s)
}

// Resolve validates the parsed flags against config defaults and builds the
// ProjectRequest. Target directories are created here; no other side
// effects happen before the external call.
func Resolve(cli CLI, cfg config.GlobalConfig) (ProjectRequest, error) {
	req := ProjectRequest{
		GroupID:    strings.TrimSpace(cli.Group),
		ArtifactID: strings.TrimSpace(cli.Artifact),
		Version:    strings.TrimSpace(cli.Version),
		BasePom:    cli.BasePom,
		Quiet:      cli.Quiet,
		Mute:       cli.Mute,
		Debug:      cli.Debug,
		DryRun:     cli.DryRun,
	}

	if req.GroupID == "" {
		req.GroupID = cfg.Defaults.GroupID
	}
	var missing []string
	if req.ArtifactID == "" {
		missing = append(missing, "-a")
	}
	if req.GroupID == "" {
		missing = append(missing, "-g")
	}
	if len(missing) > 0 {
		return ProjectRequest{}, &MissingOptionsError{Flags: missing}
	}
	if cli.BasePom && cli.Archetype != "" {
		return ProjectRequest{}, ErrConflictingTemplate
	}

	if req.Version == "" {
		req.Version = cfg.Defaults.Version
	}
	if req.Version == "" {
		req.Version = DefaultVersion
	}

	if !req.BasePom {
		pkg := strings.TrimSpace(cli.Package)
		if pkg == "" {
			pkg = req.ArtifactID
		}
		req.Package = NormalizePackage(pkg)
	}

	dir, err := resolveDir(cli.Dir)
	if err != nil {
		return ProjectRequest{}, err
	}
	req.Dir = dir

	switch {
	case req.BasePom:
		req.Archetype = maven.BasePom()
		req.ArchetypeName = "base-pom"
	case cli.Archetype != "":
		archetype, err := resolveCustomArchetype(cli.Archetype, req)
		if err != nil {
			return ProjectRequest{}, err
		}
		req.Archetype = archetype
		req.ArchetypeName = cli.Archetype
	default:
		req.Archetype = maven.Quickstart()
		req.ArchetypeName = "quickstart"
	}

	return req, nil
}

// resolveDir creates the target directory if requested and returns the
// absolute working directory for the external call.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return wd, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create target directory: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return abs, nil
}

// resolveCustomArchetype looks the name up in the user catalog and renders
// its property templates against the resolved request.
func resolveCustomArchetype(name string, req ProjectRequest) (maven.Archetype, error) {
	path, err := config.ArchetypeCatalogPath()
	if err != nil {
		return maven.Archetype{}, err
	}
	catalog, err := config.LoadArchetypeCatalog(path)
	if err != nil {
		if os.IsNotExist(err) {
			return maven.Archetype{}, fmt.Errorf("no archetype catalog at %s", path)
		}
		return maven.Archetype{}, err
	}
	spec, ok := catalog.Lookup(name)
	if !ok {
		return maven.Archetype{}, fmt.Errorf("unknown archetype %q in %s", name, path)
	}
	properties, err := config.RenderProperties(spec, config.TemplateContext{
		GroupID:    req.GroupID,
		ArtifactID: req.ArtifactID,
		Version:    req.Version,
		Package:    req.Package,
		Dir:        req.Dir,
	})
	if err != nil {
		return maven.Archetype{}, err
	}
	return maven.Archetype{
		GroupID:    spec.GroupID,
		ArtifactID: spec.ArtifactID,
		Version:    spec.Version,
		Properties: properties,
	}, nil
}
