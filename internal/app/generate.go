// Where: internal/app/generate.go
// What: The generation pipeline: preflight, summary, confirmation, dispatch.
// Why: Orchestrate the external call in a testable way.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mvnew/mvnew/internal/config"
	"github.com/mvnew/mvnew/internal/interaction"
	"github.com/mvnew/mvnew/internal/maven"
	"github.com/mvnew/mvnew/internal/ui"
)

func runGenerate(req ProjectRequest, cfg config.GlobalConfig, cfgPath string, deps Dependencies, out io.Writer) int {
	if deps.Checker == nil || deps.Generator == nil {
		fmt.Fprintln(out, "generate: not implemented")
		return 1
	}

	if err := deps.Checker.Tool(); err != nil {
		return exitWithError(out, err)
	}
	path, found, err := deps.Checker.Archetypes()
	if err != nil {
		return exitWithError(out, err)
	}
	if !found {
		fmt.Fprintf(out, "archetype cache not found at %s\n", path)
		return 1
	}

	console := ui.New(out)
	if req.ShowSummary() {
		printSummary(console, req)
	}

	if req.NeedsConfirmation() {
		if deps.Prompter == nil {
			fmt.Fprintln(out, "confirmation required but no prompter available")
			return 1
		}
		decision, err := deps.Prompter.Confirm("Generate project?")
		if err != nil {
			return exitWithError(out, err)
		}
		if decision == interaction.Decline {
			console.Info("aborted, nothing generated")
			return 0
		}
	}

	inv := req.Invocation()
	if req.DryRun {
		fmt.Fprintln(out, inv.CommandLine())
		return 0
	}

	if err := deps.Generator.Generate(context.Background(), inv); err != nil {
		fmt.Fprintln(out, err)
		return maven.ExitStatus(err)
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}
	config.RecordGeneration(&cfg, config.GenerationEntry{
		GroupID:    req.GroupID,
		ArtifactID: req.ArtifactID,
		Dir:        req.Dir,
	}, now())
	if err := config.SaveGlobalConfig(cfgPath, cfg); err != nil {
		fmt.Fprintf(out, "Warning: failed to record generation: %v\n", err)
	}

	if req.ShowSummary() {
		console.Success(fmt.Sprintf("project %s generated in %s", req.ArtifactID, req.Dir))
	}
	return 0
}

func printSummary(console *ui.Console, req ProjectRequest) {
	console.Header("📦", "New Maven project")
	console.Item("Group id", req.GroupID)
	console.Item("Artifact id", req.ArtifactID)
	console.Item("Version", req.Version)
	console.Item("Type", req.ArchetypeName)
	if !req.BasePom {
		console.Item("Package", req.Package)
	}
	console.Item("Directory", req.Dir)
}
