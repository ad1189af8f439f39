// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edatab

import (
	"io"

	"github.com/google/safehtml/template"

	"github.com/edastat/edastat/edastat"
)

// Delta cell classes.
const (
	htmlPlain = iota
	htmlUp
	htmlDown
	htmlFlat
)

var htmlTemplate = template.Must(template.New("").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>EDA Report Comparison</title>
<style>
.edastat { border-collapse: collapse; margin-bottom: 2em; }
.edastat th, .edastat td { border: 1px solid #000; padding: 0.2em 0.8em; text-align: center; }
.edastat th { border-width: 2px; }
.edastat td.up { color: #00a933; font-weight: bold; }
.edastat td.down { color: #c9211e; font-weight: bold; }
.edastat td.flat { font-weight: bold; }
.edastat tr.summary td { font-style: italic; }
</style>
</head>
<body>
{{- range .}}
<h2>{{.Title}}</h2>
<table class='edastat'>
<tr>{{range .Headers}}<th>{{.}}{{end}}
{{range .Rows -}}
{{if .Summary}}<tr class='summary'>{{else}}<tr>{{end -}}
{{range .Cells -}}
{{if eq .Class 1}}<td class='up'>{{else if eq .Class 2}}<td class='down'>{{else if eq .Class 3}}<td class='flat'>{{else}}<td>{{end}}{{.Text}}
{{- end}}
{{end -}}
</table>
{{- end}}
</body>
</html>
`))

type htmlGroup struct {
	Title   string
	Headers []string
	Rows    []htmlRow
}

type htmlRow struct {
	Summary bool
	Cells   []htmlCell
}

type htmlCell struct {
	Text  string
	Class int
}

// WriteHTML writes t to w as an HTML document with one table per group.
func WriteHTML(w io.Writer, t *edastat.Table, opts Options) error {
	var groups []htmlGroup
	for _, g := range t.Groups {
		hg := htmlGroup{Title: g.Title(), Headers: t.Columns}
		for _, r := range g.Rows {
			hr := htmlRow{Summary: r.Summary}
			for _, col := range t.Columns {
				cell := htmlCell{Text: cellText(r, col)}
				if c, ok := r.Cell(col); ok && c.Delta != nil && opts.ColorDelta {
					switch c.Change() {
					case 1:
						cell.Class = htmlUp
					case -1:
						cell.Class = htmlDown
					default:
						cell.Class = htmlFlat
					}
				}
				hr.Cells = append(hr.Cells, cell)
			}
			hg.Rows = append(hg.Rows, hr)
		}
		groups = append(groups, hg)
	}
	return htmlTemplate.Execute(w, groups)
}
