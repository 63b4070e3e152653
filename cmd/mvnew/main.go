// Where: cmd/mvnew/main.go
// What: CLI entrypoint.
// Why: Execute the generation pipeline with configured dependencies.
package main

import (
	"os"

	"github.com/mvnew/mvnew/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
