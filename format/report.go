package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/loadbin/rectpack"
)

// Report summarizes one Pack() invocation for the optional TOML run report
// (SPEC_FULL.md 4.9). RunID disambiguates reports collected from repeated
// runs over the same problem file; grounded on the short-uuid id style
// piwi3910-cnc-calculator's model package uses for entity ids.
type Report struct {
	RunID       string  `toml:"run_id"`
	ItemCount   int     `toml:"item_count"`
	PlacedCount int     `toml:"placed_count"`
	BinsUsed    int     `toml:"bins_used"`
	TotalCost   float64 `toml:"total_cost"`
}

// NewReport builds a Report from a packed Orchestrator.
func NewReport(o *rectpack.Orchestrator, itemCount int) Report {
	return Report{
		RunID:       uuid.New().String()[:8],
		ItemCount:   itemCount,
		PlacedCount: len(o.RectList()),
		BinsUsed:    len(o.BinList()),
		TotalCost:   o.TotalCost(),
	}
}

// WriteReport encodes the report as TOML.
func WriteReport(w io.Writer, r Report) error {
	return toml.NewEncoder(w).Encode(r)
}
