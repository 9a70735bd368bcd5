// A command line tool to cut fields, bytes or characters from records
package main

import (
	"fmt"
	"os"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cmd := newCutCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cmd.Name(), err)
		os.Exit(1)
	}
}
