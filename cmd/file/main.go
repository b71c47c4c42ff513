// Command file is the Baize file operations skill. It reads a JSON
// invocation from the BAIZE_PARAMS environment variable (falling back to
// stdin), performs one filesystem operation, and writes a single JSON
// result envelope to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/baize-ai/skills/pkg/tools/operations"
	"github.com/baize-ai/skills/skill"
)

func main() {
	_ = godotenv.Load()

	describe := flag.Bool("describe", false, "print the skill manifest as YAML and exit")
	flag.Parse()

	if *describe {
		out, err := operations.Manifest().YAML()
		if err != nil {
			log.Fatalf("file: render manifest: %v", err)
		}
		fmt.Print(out)
		return
	}

	runner := skill.NewRunner("file", operations.Handle, skill.WithStdinFallback(os.Stdin))
	os.Exit(runner.Run(context.Background()))
}
