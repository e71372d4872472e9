// Command rectpack packs rectangular items into cost-ordered bins and
// reports per-item placements (SPEC_FULL.md 6.4).
package main

import (
	"fmt"
	"os"

	"github.com/loadbin/rectpack/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "rectpack:", err)
		os.Exit(1)
	}
}
