// placeicon - placeholder icon generator
//
// placeicon writes a fixed set of square PNG icons for use while a browser
// extension has no branded artwork.
package main

import (
	"os"

	"github.com/jmylchreest/placeicon/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
