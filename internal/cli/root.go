// Package cli implements the rectpack command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// Root defines global CLI flags.
type Root struct{}

// Run parses arguments and executes the selected command.
func Run(args []string) error {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])
	prog := parser.Name

	if _, err := parser.AddCommand(
		"pack",
		"Pack a problem file and print per-item placements",
		fmt.Sprintf(
			`Read a problem file (N items, K bin types) and pack it.

Examples:
  %s pack problem.txt
  %s pack problem.txt --policy BAF --no-rotation
  %s pack problem.txt --preset presets/cheap-first.toml`,
			prog, prog, prog,
		),
		&CmdPack{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"validate",
		"Pack a problem file and re-check I1/I2 across all bins",
		fmt.Sprintf(
			`Pack a problem file and report whether the result is geometrically valid.

Examples:
  %s validate problem.txt`,
			prog,
		),
		&CmdValidate{},
	); err != nil {
		return err
	}

	_, err := parser.ParseArgs(args)
	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	return nil
}
