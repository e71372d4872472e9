package cli

import (
	"fmt"
)

// CmdValidate packs a problem file and re-checks I1/I2 across every bin
// that received a placement (spec.md 6.3's validate()).
type CmdValidate struct {
	Packing PackingFlags `group:"Packing"`

	Args struct {
		Problem string `positional-arg-name:"problem" description:"Problem file path" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the validate command.
func (c *CmdValidate) Execute(args []string) error {
	cfg, err := resolveConfig(c.Packing)
	if err != nil {
		return err
	}

	problem, err := readProblem(c.Args.Problem)
	if err != nil {
		return err
	}

	o, err := pack(problem, cfg)
	if err != nil {
		return err
	}

	if err := o.Validate(); err != nil {
		return err
	}

	placed := len(o.RectList())
	fmt.Printf("OK: %d/%d items placed across %d bins, total cost %.2f\n",
		placed, len(problem.Items), len(o.BinList()), o.TotalCost())
	return nil
}
