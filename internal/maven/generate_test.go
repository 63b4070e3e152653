// Where: internal/maven/generate_test.go
// What: Tests for archetype invocation assembly and execution.
// Why: Ensure the mvn argument vector is stable and status mapping holds.
package maven

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

type fakeRunner struct {
	dir  string
	name string
	args []string
	err  error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.dir = dir
	f.name = name
	f.args = append([]string{}, args...)
	return f.err
}

func TestArgsQuickstart(t *testing.T) {
	inv := Invocation{
		Archetype: Quickstart(),
		Coordinates: Coordinates{
			GroupID:    "com.example",
			ArtifactID: "demo-app",
			Version:    "1.0-SNAPSHOT",
			Package:    "com.example.demo",
		},
	}

	expected := []string{
		"archetype:generate",
		"-DinteractiveMode=false",
		"-DarchetypeGroupId=org.apache.maven.archetypes",
		"-DarchetypeArtifactId=maven-archetype-quickstart",
		"-DarchetypeVersion=1.4",
		"-DgroupId=com.example",
		"-DartifactId=demo-app",
		"-Dversion=1.0-SNAPSHOT",
		"-Dpackage=com.example.demo",
	}
	if got := inv.Args(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected args: %v", got)
	}
}

func TestArgsBasePomOmitsPackageAndPin(t *testing.T) {
	inv := Invocation{
		Archetype: BasePom(),
		Coordinates: Coordinates{
			GroupID:    "com.example",
			ArtifactID: "parent",
			Version:    "1.0-SNAPSHOT",
		},
	}

	joined := strings.Join(inv.Args(), " ")
	if strings.Contains(joined, "-Dpackage=") {
		t.Fatalf("base POM invocation must not carry a package: %s", joined)
	}
	if strings.Contains(joined, "-DarchetypeVersion=") {
		t.Fatalf("base POM archetype must stay unpinned: %s", joined)
	}
	if !strings.Contains(joined, "-DarchetypeArtifactId=pom-root") {
		t.Fatalf("expected pom-root archetype: %s", joined)
	}
}

func TestArgsToolFlagFirst(t *testing.T) {
	inv := Invocation{
		Archetype:   Quickstart(),
		Coordinates: Coordinates{GroupID: "g", ArtifactID: "a", Version: "1", Package: "a"},
		ToolFlag:    "-X",
	}
	args := inv.Args()
	if args[0] != "-X" {
		t.Fatalf("expected tool flag first, got %v", args)
	}
}

func TestArgsExtraPropertiesSorted(t *testing.T) {
	inv := Invocation{
		Archetype: Archetype{
			GroupID:    "io.example.archetypes",
			ArtifactID: "service",
			Properties: map[string]string{"port": "8080", "basePackage": "com.x"},
		},
		Coordinates: Coordinates{GroupID: "g", ArtifactID: "a", Version: "1", Package: "com.x"},
	}
	args := inv.Args()
	tail := args[len(args)-2:]
	expected := []string{"-DbasePackage=com.x", "-Dport=8080"}
	if !reflect.DeepEqual(tail, expected) {
		t.Fatalf("expected sorted properties %v, got %v", expected, tail)
	}
}

func TestInvokerRunsInDir(t *testing.T) {
	runner := &fakeRunner{}
	invoker := Invoker{Runner: runner}
	inv := Invocation{
		Archetype:   Quickstart(),
		Coordinates: Coordinates{GroupID: "g", ArtifactID: "a", Version: "1", Package: "a"},
		Dir:         "/tmp/workdir",
	}

	if err := invoker.Generate(context.Background(), inv); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if runner.dir != "/tmp/workdir" {
		t.Fatalf("unexpected dir: %s", runner.dir)
	}
	if runner.name != "mvn" {
		t.Fatalf("unexpected binary: %s", runner.name)
	}
	if !reflect.DeepEqual(runner.args, inv.Args()) {
		t.Fatalf("unexpected args: %v", runner.args)
	}
}

func TestInvokerNilRunner(t *testing.T) {
	if err := (Invoker{}).Generate(context.Background(), Invocation{}); err == nil {
		t.Fatalf("expected error for nil runner")
	}
}

func TestInvokerPassesThroughNonExitErrors(t *testing.T) {
	boom := errors.New("spawn failed")
	invoker := Invoker{Runner: &fakeRunner{err: boom}}
	err := invoker.Generate(context.Background(), Invocation{Archetype: Quickstart()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected passthrough error, got %v", err)
	}
}

// realExitError produces a genuine *exec.ExitError with the given status.
func realExitError(t *testing.T, code int) *exec.ExitError {
	t.Helper()
	err := exec.Command("sh", "-c", "exit "+strconv.Itoa(code)).Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	return exitErr
}

func TestInvokerWrapsChildStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix shell")
	}
	invoker := Invoker{Runner: &fakeRunner{err: realExitError(t, 3)}}

	err := invoker.Generate(context.Background(), Invocation{Archetype: Quickstart()})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != 3 {
		t.Fatalf("expected status 3, got %d", statusErr.Code)
	}
	if got := ExitStatus(err); got != 3 {
		t.Fatalf("expected forwarded status 3, got %d", got)
	}
}

func TestExitStatus(t *testing.T) {
	if got := ExitStatus(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %d", got)
	}
	if got := ExitStatus(&StatusError{Code: 2}); got != 2 {
		t.Fatalf("expected forwarded status 2, got %d", got)
	}
	if got := ExitStatus(errors.New("boom")); got != 1 {
		t.Fatalf("expected 1 for generic error, got %d", got)
	}
}

func TestCommandLine(t *testing.T) {
	inv := Invocation{
		Archetype:   BasePom(),
		Coordinates: Coordinates{GroupID: "g", ArtifactID: "a", Version: "1"},
	}
	line := inv.CommandLine()
	if !strings.HasPrefix(line, "mvn archetype:generate") {
		t.Fatalf("unexpected command line: %s", line)
	}
}
