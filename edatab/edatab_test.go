// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edatab

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edastat/edastat/edafmt"
	"github.com/edastat/edastat/edaproc"
	"github.com/edastat/edastat/edastat"
)

func metric(v edafmt.Value) edastat.Cell {
	return edastat.Cell{Value: v}
}

func delta(diff float64, isInt bool) edastat.Cell {
	return edastat.Cell{Delta: &edastat.Delta{Diff: diff, Int: isInt}}
}

func row(design string, area int64, slack edafmt.Value) *edastat.Row {
	return &edastat.Row{Design: design, Cells: map[string]edastat.Cell{
		"Design": metric(edafmt.StringValue(design)),
		"Area":   metric(edafmt.IntValue(area)),
		"Slack":  metric(slack),
	}}
}

// testTable returns a two-report table in which the second report
// carries an area delta.
func testTable() *edastat.Table {
	g1 := &edastat.Group{
		Report: &edaproc.Report{Index: 0, File: "floorplan.log", Title: "floorplan"},
		Rows: []*edastat.Row{
			row("gcd", 500, edafmt.FloatValue(0.25)),
			row("aes", 9000, edafmt.UnknownValue()),
		},
	}
	g2 := &edastat.Group{
		Report: &edaproc.Report{Index: 1, File: "place.log", Title: "Place <Detail>"},
		Rows: []*edastat.Row{
			row("gcd", 460, edafmt.FloatValue(-0.05)),
			row("aes", 9000, edafmt.FloatValue(0.5)),
		},
	}
	g2.Rows[0].Cells["Area Change"] = delta(-40, true)
	g2.Rows[1].Cells["Area Change"] = delta(0, true)
	return &edastat.Table{
		Columns:      []string{"Design", "Area", "Slack", "Area Change"},
		Deltas:       map[string]bool{"Area Change": true},
		DesignColumn: "Design",
		Groups:       []*edastat.Group{g1, g2},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testTable()))
	want := `Design,Area,Slack,Area Change
floorplan,,,
gcd,500,0.25,
aes,9000,N/A,
Place <Detail>,,,
gcd,460,-0.05,-40
aes,9000,0.5,+0
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testTable()))

	var got map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, float64(500), got["floorplan"]["gcd"]["Area"])
	assert.Equal(t, "N/A", got["floorplan"]["gcd"]["Area Change"])
	assert.Equal(t, "N/A", got["floorplan"]["aes"]["Slack"])
	assert.Equal(t, "-40", got["Place <Detail>"]["gcd"]["Area Change"])
	assert.Equal(t, -0.05, got["Place <Detail>"]["gcd"]["Slack"])

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n    \"Place <Detail>\": {\n        \"aes\": {"), "got:\n%s", out)
	assert.Less(t, strings.Index(out, `"Place <Detail>"`), strings.Index(out, `"floorplan"`))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, testTable(), Options{ColorDelta: true}))
	out := buf.String()
	assert.Contains(t, out, "<h2>Place &lt;Detail&gt;</h2>")
	assert.Contains(t, out, "<th>Design<th>Area<th>Slack<th>Area Change")
	assert.Contains(t, out, "<td class='down'>-40")
	assert.Contains(t, out, "<td class='flat'>+0")
	assert.Equal(t, 2, strings.Count(out, "<table"))

	buf.Reset()
	require.NoError(t, WriteHTML(&buf, testTable(), Options{}))
	assert.NotContains(t, buf.String(), "<td class=")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testTable()))
	want := `floorplan
Design  Area  Slack  Area Change
gcd      500   0.25
aes     9000    N/A

Place <Detail>
Design  Area  Slack  Area Change
gcd      460  -0.05          -40
aes     9000    0.5           +0
`
	assert.Equal(t, want, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testTable(), Options{ColorDelta: true}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Design", "Area", "Slack", "Area Change"}, rows[0])
	assert.Equal(t, "floorplan", rows[1][0])
	assert.Equal(t, "Place <Detail>", rows[4][0])
	assert.Equal(t, []string{"gcd", "460", "-0.05", "-40"}, rows[5])

	typ, err := f.GetCellType(sheet, "B3")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)

	width, err := f.GetColWidth(sheet, "D")
	require.NoError(t, err)
	assert.InDelta(t, float64(len("Area Change"))*1.4+4, width, 0.01)

	id, err := f.GetCellStyle(sheet, "D6")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Contains(t, strings.ToUpper(style.Font.Color), colorDown)
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, testTable(), "Area"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	buf.Reset()
	require.NoError(t, WriteChart(&buf, testTable(), "Area Change"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	assert.ErrorContains(t, WriteChart(&buf, testTable(), "Power"), "unknown column")
	assert.ErrorContains(t, WriteChart(&buf, testTable(), "Slack"), "not a number")
}
