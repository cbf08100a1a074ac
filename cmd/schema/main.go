// Command schema regenerates the JSON schema for the newsdigest config
// file. It runs from pkg/config via go:generate and keeps the embedded
// schema.json in sync with the Config struct tags.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"newsdigest/pkg/config"
)

func main() {
	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	schema := jsonschema.Reflect(&config.Config{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal config schema: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("config schema written to %s\n", out)
}
