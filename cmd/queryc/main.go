// Command queryc inspects the dialect lowering tables.
package main

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/queryc/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
