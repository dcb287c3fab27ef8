// dashctl reads the back-office dashboard from the command line.
//
// Usage:
//
//	dashctl dashboard
//	dashctl growth --months 12
//	dashctl locations --limit 10
//	dashctl categories
//	dashctl snapshot create
package main

import (
	"fmt"
	"os"

	"backoffice/cmd/dashctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
