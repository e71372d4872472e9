package cli

import (
	"fmt"
	"os"

	"github.com/loadbin/rectpack"
	"github.com/loadbin/rectpack/format"
	"github.com/loadbin/rectpack/internal/config"
)

// PackingFlags defines the algorithm choices shared by pack and validate.
type PackingFlags struct {
	PackAlgo    string `short:"a" long:"algo" description:"Placement engine" choice:"MAXRECTS" choice:"GUILLOTINE" choice:"SKYLINE" default:"MAXRECTS"`
	Policy      string `short:"p" long:"policy" description:"Fitness policy" choice:"BSSF" choice:"BLSF" choice:"BAF" choice:"BL" default:"BAF"`
	Split       string `short:"s" long:"split" description:"Guillotine split heuristic" choice:"SHORTER_LEFTOVER_AXIS" choice:"LONGER_LEFTOVER_AXIS" choice:"MINIMIZE_AREA" choice:"MAXIMIZE_AREA" choice:"SHORTER_AXIS" choice:"LONGER_AXIS" default:"SHORTER_LEFTOVER_AXIS"`
	SortAlgo    string `short:"S" long:"sort" description:"Item sort policy" choice:"SORT_AREA" choice:"SORT_NONE" default:"SORT_AREA"`
	NoRotation  bool   `long:"no-rotation" description:"Disallow 90-degree item rotation"`
	Preset      string `long:"preset" description:"Load algorithm choices from a TOML preset file, overriding the flags above"`
}

// CmdPack packs a problem file and writes per-item placements to stdout.
type CmdPack struct {
	Packing PackingFlags `group:"Packing"`
	Report  string       `long:"report" description:"Write a TOML run report to this path"`
	Out     string       `short:"o" long:"out" description:"Write placement output here instead of stdout"`

	Args struct {
		Problem string `positional-arg-name:"problem" description:"Problem file path" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the pack command.
func (c *CmdPack) Execute(args []string) error {
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

	out := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.Out, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := format.WritePlacements(out, problem.Items, o.RectList()); err != nil {
		return fmt.Errorf("write placements: %w", err)
	}

	if c.Report != "" {
		if err := writeReport(c.Report, o, len(problem.Items)); err != nil {
			return err
		}
	}
	return nil
}

// resolveConfig builds a rectpack.Config from either a preset file or the
// individual packing flags; --preset takes precedence.
func resolveConfig(f PackingFlags) (rectpack.Config, error) {
	if f.Preset != "" {
		preset, err := config.Load(f.Preset)
		if err != nil {
			return rectpack.Config{}, err
		}
		return preset.Resolve()
	}

	algo, err := rectpack.ParseAlgorithmKind(f.PackAlgo)
	if err != nil {
		return rectpack.Config{}, err
	}
	policy, err := rectpack.ParseFitnessPolicy(f.Policy)
	if err != nil {
		return rectpack.Config{}, err
	}
	split, err := rectpack.ParseGuillotineSplit(f.Split)
	if err != nil {
		return rectpack.Config{}, err
	}
	sortAlgo, err := rectpack.ParseItemSortPolicy(f.SortAlgo)
	if err != nil {
		return rectpack.Config{}, err
	}
	return rectpack.Config{
		PackAlgo: algo,
		Policy:   policy,
		Split:    split,
		SortAlgo: sortAlgo,
		Rotation: !f.NoRotation,
	}, nil
}

func readProblem(path string) (*format.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	problem, err := format.ParseProblem(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return problem, nil
}

func pack(problem *format.Problem, cfg rectpack.Config) (*rectpack.Orchestrator, error) {
	o := rectpack.NewOrchestrator(cfg)
	for _, it := range problem.Items {
		if err := o.AddItem(it.Width, it.Height, it.RID); err != nil {
			return nil, err
		}
	}
	for _, b := range problem.Bins {
		if err := o.AddBin(b.Width, b.Height, b.Cost, b.Count, b.BID); err != nil {
			return nil, err
		}
	}
	if err := o.Pack(); err != nil {
		return nil, err
	}
	return o, nil
}

func writeReport(path string, o *rectpack.Orchestrator, itemCount int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	report := format.NewReport(o, itemCount)
	if err := format.WriteReport(f, report); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
