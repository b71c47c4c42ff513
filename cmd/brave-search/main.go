// Command brave-search is the Baize web search skill. It reads a JSON
// invocation from the BAIZE_PARAMS environment variable, performs one Brave
// Search API call, and writes a single JSON result envelope to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/baize-ai/skills/pkg/tools/search"
	"github.com/baize-ai/skills/skill"
)

func main() {
	// Load .env if present; the API key commonly lives there.
	_ = godotenv.Load()

	describe := flag.Bool("describe", false, "print the skill manifest as YAML and exit")
	flag.Parse()

	if *describe {
		out, err := search.Manifest().YAML()
		if err != nil {
			log.Fatalf("brave-search: render manifest: %v", err)
		}
		fmt.Print(out)
		return
	}

	client := search.New(search.Config{APIKey: os.Getenv("BRAVE_API_KEY")})
	runner := skill.NewRunner("brave-search", client.Handle)
	os.Exit(runner.Run(context.Background()))
}
