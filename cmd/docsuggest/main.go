// Command docsuggest serves per-user document title autocomplete.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version, bootstrap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
