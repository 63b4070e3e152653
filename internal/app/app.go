// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable, exit-code-returning command pipeline.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mvnew/mvnew/internal/config"
	"github.com/mvnew/mvnew/internal/version"
)

// CLI defines the flag surface parsed by Kong. The program is flag-driven:
// there are no subcommands, only one generation pipeline.
type CLI struct {
	Artifact    string `short:"a" help:"Artifact id of the new project (required)"`
	Group       string `short:"g" help:"Group id of the new project (required)"`
	Version     string `short:"v" name:"project-version" help:"Project version (default ${default_version})"`
	Package     string `short:"p" help:"Package name (default: artifact id)"`
	BasePom     bool   `short:"b" name:"base-pom" help:"Generate a minimal base POM instead of the quickstart layout"`
	Dir         string `short:"d" help:"Target directory, created if missing"`
	Quiet       bool   `short:"q" help:"Skip confirmation, keep build output"`
	Mute        bool   `short:"m" help:"Skip confirmation, suppress summary and build noise"`
	Debug       bool   `short:"D" help:"Forward Maven debug tracing (overrides -m)"`
	Check       bool   `short:"c" help:"Check the local archetype cache and exit"`
	Archetype   string `short:"t" name:"archetype" help:"Named archetype from the user catalog"`
	DryRun      bool   `short:"n" name:"dry-run" help:"Print the mvn command without running it"`
	EnvFile     string `name:"env-file" help:"Path to .env file"`
	ShowVersion bool   `short:"V" name:"version" help:"Show mvnew version"`
	Help        bool   `short:"h" help:"Show usage"`
}

// Run is the main entry point for command execution. It parses the
// command-line arguments and walks the pipeline: resolve, preflight,
// summary, confirmation, dispatch. The returned value is the process exit
// code, including a forwarded mvn status on generation failure.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("mvnew"),
		kong.Description("Scaffold Maven projects from archetypes."),
		kong.Writers(out, out),
		kong.NoDefaultHelp(),
		kong.Vars{"default_version": DefaultVersion},
	)
	if err != nil {
		return exitWithError(out, err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return usageError(out, err)
	}

	if cli.Help {
		if err := kctx.PrintUsage(false); err != nil {
			return exitWithError(out, err)
		}
		return 0
	}
	if cli.ShowVersion {
		fmt.Fprintln(out, version.Get())
		return 0
	}

	loadDotenv(cli, out)

	// Standalone cache check short-circuits everything else.
	if cli.Check {
		return runCheck(deps, out)
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}
	cfgPath, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(cfgPath)
	if err != nil {
		return exitWithError(out, err)
	}

	req, err := Resolve(cli, cfg)
	if err != nil {
		var missingErr *MissingOptionsError
		if errors.As(err, &missingErr) || errors.Is(err, ErrConflictingTemplate) {
			return usageError(out, err)
		}
		return exitWithError(out, err)
	}

	return runGenerate(req, cfg, cfgPath, deps, out)
}

// loadDotenv loads an explicit env file, or .env from the current
// directory when present. Failures only warn.
func loadDotenv(cli CLI, out io.Writer) {
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}
}
