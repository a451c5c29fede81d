// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"cogentcore.org/nodetable/colors"
	"cogentcore.org/nodetable/table"
	"github.com/muesli/termenv"
)

// render writes the given cells to out as a table, with a header line
// of knob names and a leading column of node names. Cells and node
// names get their background colors if out supports colors.
func render(out *termenv.Output, cells table.Cells) {
	nr, nc := cells.NumRows(), cells.NumColumns()
	grid := make([][]string, nr+1)
	grid[0] = make([]string, nc+1)
	grid[0][0] = "node"
	for c := range nc {
		grid[0][c+1], _ = cells.HeaderData(c, table.Horizontal, table.Display).(string)
	}
	for r := range nr {
		line := make([]string, nc+1)
		line[0], _ = cells.HeaderData(r, table.Vertical, table.Display).(string)
		for c := range nc {
			line[c+1] = cellText(cells, r, c)
		}
		grid[r+1] = line
	}

	widths := make([]int, nc+1)
	for _, line := range grid {
		for c, s := range line {
			widths[c] = max(widths[c], utf8.RuneCountInString(s))
		}
	}
	for i, line := range grid {
		var b strings.Builder
		for c, s := range line {
			if c > 0 {
				b.WriteByte(' ')
			}
			st := out.String(s + strings.Repeat(" ", widths[c]-utf8.RuneCountInString(s)))
			if i > 0 {
				st = styleCell(out, st, cells, i-1, c-1)
			}
			b.WriteString(st.String())
		}
		fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
	}
}

// cellText returns the text shown for a cell:
// a check box for boolean knobs, and the display value otherwise.
func cellText(cells table.Cells, row, col int) string {
	if on, ok := cells.Data(row, col, table.CheckState).(bool); ok {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	s, _ := cells.Data(row, col, table.Display).(string)
	return s
}

// styleCell returns the given style with the colors of the given cell,
// where column -1 is the node name header of the row.
func styleCell(out *termenv.Output, st termenv.Style, cells table.Cells, row, col int) termenv.Style {
	if col < 0 {
		if bg, ok := cells.HeaderData(row, table.Vertical, table.Background).(color.Color); ok {
			st = st.Background(out.Color(hex(bg)))
		}
		if fg, ok := cells.HeaderData(row, table.Vertical, table.Foreground).(color.Color); ok {
			st = st.Foreground(out.Color(hex(fg)))
		}
		return st
	}
	if bg, ok := cells.Data(row, col, table.Background).(color.Color); ok {
		st = st.Background(out.Color(hex(bg)))
	}
	return st
}

// hex returns the given color as #RRGGBB, the form terminal colors use.
func hex(c color.Color) string {
	n := colors.AsNRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
