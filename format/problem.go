// Package format reads the textual problem file format and writes the
// per-item placement output and optional run reports (SPEC_FULL.md 6).
package format

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/loadbin/rectpack"
)

// Problem is a parsed problem file: N items and K bin types, in file order
// (spec.md 6.1).
type Problem struct {
	Items []rectpack.Item
	Bins  []rectpack.PendingBin
}

// ParseProblem reads the whitespace-delimited problem format from r:
//
//	N K
//	w_1 h_1
//	...
//	w_N h_N
//	W_1 H_1 c_1
//	...
//	W_K H_K c_K
//
// Item i and bin type j are assigned rid/bid i+1, j+1 respectively, matching
// the 1-based ids original_source/heuristic.py's process_test_case produces.
// Empty trailing lines are tolerated.
func ParseProblem(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	fields, err := readFields(scanner)
	if err != nil {
		return nil, err
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("rectpack/format: missing N K header line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("rectpack/format: invalid N %q: %w", fields[0], err)
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("rectpack/format: invalid K %q: %w", fields[1], err)
	}

	p := &Problem{Items: make([]rectpack.Item, 0, n), Bins: make([]rectpack.PendingBin, 0, k)}

	for i := 0; i < n; i++ {
		fields, err := readFields(scanner)
		if err != nil {
			return nil, fmt.Errorf("rectpack/format: item %d: %w", i+1, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("rectpack/format: item %d: expected \"w h\"", i+1)
		}
		w, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("rectpack/format: item %d width: %w", i+1, err)
		}
		h, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("rectpack/format: item %d height: %w", i+1, err)
		}
		p.Items = append(p.Items, rectpack.Item{Width: w, Height: h, RID: i + 1})
	}

	for j := 0; j < k; j++ {
		fields, err := readFields(scanner)
		if err != nil {
			return nil, fmt.Errorf("rectpack/format: bin %d: %w", j+1, err)
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("rectpack/format: bin %d: expected \"W H c\"", j+1)
		}
		w, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("rectpack/format: bin %d width: %w", j+1, err)
		}
		h, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("rectpack/format: bin %d height: %w", j+1, err)
		}
		c, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("rectpack/format: bin %d cost: %w", j+1, err)
		}
		p.Bins = append(p.Bins, rectpack.PendingBin{Width: w, Height: h, Cost: c, Count: 1, BID: j + 1})
	}

	return p, nil
}

// readFields returns the whitespace-delimited fields of the next
// non-blank line, skipping blank lines tolerated at the end of the file.
func readFields(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

// WritePlacements writes one output line per placement, in ascending rid
// order (spec.md 6.2):
//
//	<rid> <bin_id> <x> <y> <rotation_flag>
func WritePlacements(w io.Writer, items []rectpack.Item, placements []rectpack.Placement) error {
	widthByRID := make(map[int]int, len(items))
	heightByRID := make(map[int]int, len(items))
	for _, it := range items {
		widthByRID[it.RID] = it.Width
		heightByRID[it.RID] = it.Height
	}

	sorted := slices.Clone(placements)
	slices.SortFunc(sorted, func(a, b rectpack.Placement) int {
		return cmp.Compare(a.RID, b.RID)
	})

	bw := bufio.NewWriter(w)
	for _, pl := range sorted {
		flag := 0
		if pl.Width != widthByRID[pl.RID] || pl.Height != heightByRID[pl.RID] {
			flag = 1
		}
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d\n", pl.RID, pl.BID, pl.X, pl.Y, flag); err != nil {
			return err
		}
	}
	return bw.Flush()
}
