// Where: cmd/mvnew/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/mvnew/mvnew/internal/app"
	"github.com/mvnew/mvnew/internal/interaction"
	"github.com/mvnew/mvnew/internal/maven"
)

var stdinIsTerminal = func() bool {
	return interaction.IsTerminal(os.Stdin)
}

// buildDependencies constructs all runtime dependencies for the pipeline.
// The prompter depends on whether stdin is a terminal: interactive sessions
// get the TUI prompt, piped input gets the plain line reader.
func buildDependencies() app.Dependencies {
	var prompter interaction.Prompter = interaction.ReaderPrompter{
		In:  os.Stdin,
		Out: os.Stderr,
	}
	if stdinIsTerminal() {
		prompter = interaction.HuhPrompter{}
	}

	return app.Dependencies{
		Out:       os.Stdout,
		Prompter:  prompter,
		Generator: maven.Invoker{Runner: maven.ExecRunner{}},
		Checker:   mavenChecker{},
		Now:       time.Now,
	}
}

// mavenChecker adapts the maven preflight functions to the app interface.
type mavenChecker struct{}

func (mavenChecker) Tool() error {
	return maven.CheckTool(maven.DefaultBinary)
}

func (mavenChecker) Archetypes() (string, bool, error) {
	return maven.CheckArchetypes()
}
