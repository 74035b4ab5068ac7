// Command hubsearch searches the community resource directory from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/dalemusser/communityhub/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
