package format_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadbin/rectpack"
	"github.com/loadbin/rectpack/format"
)

func TestNewReportAndWrite(t *testing.T) {
	o := rectpack.NewOrchestrator(rectpack.DefaultConfig())
	require.NoError(t, o.AddItem(3, 2, 1))
	require.NoError(t, o.AddBin(5, 4, 10, 1, 1))
	require.NoError(t, o.Pack())

	report := format.NewReport(o, 1)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.ItemCount)
	assert.Equal(t, 1, report.PlacedCount)
	assert.Equal(t, 1, report.BinsUsed)
	assert.Equal(t, 10.0, report.TotalCost)

	var buf bytes.Buffer
	require.NoError(t, format.WriteReport(&buf, report))
	assert.Contains(t, buf.String(), "run_id")
	assert.Contains(t, buf.String(), "total_cost")
}
