package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadbin/rectpack"
	"github.com/loadbin/rectpack/format"
)

func TestParseProblem(t *testing.T) {
	input := `1 1
3 2
5 4 10
`
	p, err := format.ParseProblem(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	require.Len(t, p.Bins, 1)

	assert.Equal(t, rectpack.Item{Width: 3, Height: 2, RID: 1}, p.Items[0])
	assert.Equal(t, 5, p.Bins[0].Width)
	assert.Equal(t, 4, p.Bins[0].Height)
	assert.Equal(t, 10.0, p.Bins[0].Cost)
	assert.Equal(t, 1, p.Bins[0].BID)
}

func TestParseProblemTrailingBlankLines(t *testing.T) {
	input := "1 1\n3 2\n5 4 10\n\n\n"
	p, err := format.ParseProblem(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, p.Items, 1)
	assert.Len(t, p.Bins, 1)
}

func TestParseProblemTruncated(t *testing.T) {
	_, err := format.ParseProblem(strings.NewReader("2 1\n3 2\n"))
	assert.Error(t, err)
}

func TestWritePlacements(t *testing.T) {
	items := []rectpack.Item{{Width: 3, Height: 2, RID: 1}, {Width: 4, Height: 2, RID: 2}}
	placements := []rectpack.Placement{
		{RID: 2, BID: 1, X: 0, Y: 0, Width: 2, Height: 4},
		{RID: 1, BID: 1, X: 2, Y: 0, Width: 3, Height: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, format.WritePlacements(&buf, items, placements))

	want := "1 1 2 0 0\n2 1 0 0 1\n"
	assert.Equal(t, want, buf.String())
}
