// Command gridscan is a CLI around the dbscan package: generate synthetic
// point sets, cluster a point file, or benchmark the core across a matrix
// of sizes and parameters.
package main

import (
	"fmt"
	"os"

	"github.com/f3sch/DBSCAN/cmd/gridscan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
