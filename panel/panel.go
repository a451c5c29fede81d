// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panel provides the [Panel], the controller of a node table
// panel: it loads the selected nodes of the host into a [table.Model],
// filters them through a [filter.Pipeline], and edits cells through an
// [editor.Delegate], propagating edits across the selection.
package panel

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/nodetable/complete"
	"cogentcore.org/nodetable/config"
	"cogentcore.org/nodetable/editor"
	"cogentcore.org/nodetable/filter"
	"cogentcore.org/nodetable/host"
	"cogentcore.org/nodetable/multiedit"
	"cogentcore.org/nodetable/table"
	"golang.org/x/text/cases"
)

// Panel is the controller of a node table panel.
// All cell coordinates are those of the filtered view.
type Panel struct {

	// Host is the host of the nodes.
	Host host.Host

	// Config is the configuration.
	Config *config.Config

	// Model is the table of all loaded nodes.
	Model *table.Model

	// Filter is the filtered view of the Model shown to the user.
	Filter *filter.Pipeline

	// Delegate opens and commits the editors of cells.
	Delegate *editor.Delegate

	// grouped is whether nodes inside selected groups are loaded.
	grouped bool
}

// New returns a new empty [Panel] for the given host. If cfg is nil,
// the [config.Default] configuration is used.
func New(h host.Host, cfg *config.Config) *Panel {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Panel{Host: h, Config: cfg}
	p.Model = table.New(h, cfg)
	p.Filter = filter.New(p.Model, cfg)
	p.Delegate = editor.NewDelegate(h, cfg)
	return p
}

// LoadSelected loads the selected nodes of the host,
// see [Panel.SetNodes].
func (p *Panel) LoadSelected() bool {
	return p.SetNodes(p.Host.Selected(p.grouped))
}

// SetNodes loads the given nodes. If there are more than
// [config.Config.WarnNodes] of them, the user is asked to confirm
// first, and false is returned if they decline.
func (p *Panel) SetNodes(nodes []host.Node) bool {
	if n := len(nodes); n > p.Config.WarnNodes {
		q := fmt.Sprintf("Loading %d nodes may take a long time.\nDo you wish to proceed?", n)
		if !p.Host.Confirm(q) {
			slog.Info("loading cancelled", "nodes", n)
			return false
		}
	}
	p.Model.SetNodes(nodes)
	slog.Info("loaded", "nodes", p.Model.NumRows(), "knobs", p.Model.NumColumns())
	return true
}

// Grouped returns whether nodes inside selected groups are loaded.
func (p *Panel) Grouped() bool { return p.grouped }

// SetGrouped sets whether nodes inside selected groups are loaded,
// and reloads the selection.
func (p *Panel) SetGrouped(grouped bool) {
	p.grouped = grouped
	p.LoadSelected()
}

// SetShowHidden sets whether hidden knobs are shown.
func (p *Panel) SetShowHidden(show bool) { p.Filter.SetShowHidden(show) }

// SetShowDisabled sets whether disabled knobs are shown.
func (p *Panel) SetShowDisabled(show bool) { p.Filter.SetShowDisabled(show) }

// AllKnobStates returns whether both hidden and disabled knobs are shown.
func (p *Panel) AllKnobStates() bool {
	s := p.Filter.State()
	return s.ShowHidden && s.ShowDisabled
}

// SetAllKnobStates sets whether both hidden and disabled knobs are shown.
func (p *Panel) SetAllKnobStates(show bool) {
	s := p.Filter.State()
	s.ShowHidden, s.ShowDisabled = show, show
	p.Filter.SetState(s)
}

// SetClassFilter sets the class filter list.
func (p *Panel) SetClassFilter(s string) { p.Filter.SetClassFilter(s) }

// SetNameFilter sets the node name filter list.
func (p *Panel) SetNameFilter(s string) { p.Filter.SetNameFilter(s) }

// SetKnobFilter sets the knob name filter list.
func (p *Panel) SetKnobFilter(s string) { p.Filter.SetKnobFilter(s) }

// sortFold sorts the given strings case-insensitively.
func sortFold(s []string) []string {
	fold := cases.Fold()
	slices.SortFunc(s, func(a, b string) int {
		return cmp.Or(cmp.Compare(fold.String(a), fold.String(b)), cmp.Compare(a, b))
	})
	return s
}

// NodeNames returns the names of the loaded nodes, sorted.
func (p *Panel) NodeNames() []string {
	var names []string
	for _, n := range p.Model.Nodes() {
		names = append(names, n.Name())
	}
	return sortFold(names)
}

// NodeClasses returns the classes of the loaded nodes, sorted,
// or all classes of the host if no nodes are loaded.
func (p *Panel) NodeClasses() []string {
	nodes := p.Model.Nodes()
	if len(nodes) == 0 {
		return sortFold(p.Host.Classes())
	}
	var cls []string
	for _, n := range nodes {
		if c := n.Class(); !slices.Contains(cls, c) {
			cls = append(cls, c)
		}
	}
	return sortFold(cls)
}

// KnobNames returns the knob names of the loaded nodes, sorted.
func (p *Panel) KnobNames() []string {
	return p.Model.ColumnNames()
}

// Fields are the filter fields with completion.
type Fields int32

const (
	// ClassField is the class filter.
	ClassField Fields = iota

	// NameField is the node name filter.
	NameField

	// KnobField is the knob name filter.
	KnobField
)

// Complete returns the possible completions of the last term of the
// given text of the given filter field, as full texts of the field.
func (p *Panel) Complete(field Fields, text string) []string {
	var cands []string
	switch field {
	case ClassField:
		cands = p.NodeClasses()
	case NameField:
		cands = p.NodeNames()
	case KnobField:
		cands = p.KnobNames()
	}
	mc := complete.Multi{Delimiter: p.Config.Delimiter}
	matches := mc.Matches(cands, text)
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = mc.Complete(text, m)
	}
	return texts
}

// node returns the name of the node of the given row.
func (p *Panel) node(row int) (string, error) {
	name := p.Filter.RowName(row)
	if name == "" {
		return "", fmt.Errorf("row %d: %w", row, host.ErrGone)
	}
	return name, nil
}

// SelectNode selects the node of the given row in the host and zooms
// onto it. For a node inside a group, the group is selected.
func (p *Panel) SelectNode(row int) error {
	name, err := p.node(row)
	if err != nil {
		return err
	}
	return p.Host.SelectNode(name, 1)
}

// ShowProperties opens the properties of the node of the given row.
func (p *Panel) ShowProperties(row int) error {
	name, err := p.node(row)
	if err != nil {
		return err
	}
	return p.Host.ShowProperties(name)
}

// Edit writes the given value to the given cell, and propagates it
// to the other cells of the selection with knobs of the same kind.
// It returns false if the cell itself could not be written.
func (p *Panel) Edit(row, col int, value any, sel multiedit.Selection) (bool, multiedit.Result) {
	if !p.Filter.SetData(row, col, value) {
		return false, multiedit.Result{}
	}
	return true, multiedit.Commit(p.Filter, multiedit.Cell{Row: row, Column: col}, sel)
}

// CommitEditor writes the value of the given editor to the given
// cell, and propagates it like [Panel.Edit].
func (p *Panel) CommitEditor(ed editor.Editor, row, col int, sel multiedit.Selection) (bool, multiedit.Result) {
	if !p.Delegate.SetModelData(ed, p.Filter, row, col) {
		return false, multiedit.Result{}
	}
	return true, multiedit.Commit(p.Filter, multiedit.Cell{Row: row, Column: col}, sel)
}

// Toggle flips the check box of the given cell, and propagates
// the new state like [Panel.Edit].
func (p *Panel) Toggle(row, col int, sel multiedit.Selection) (bool, multiedit.Result) {
	if !p.Delegate.Toggle(p.Filter, row, col) {
		return false, multiedit.Result{}
	}
	return true, multiedit.Commit(p.Filter, multiedit.Cell{Row: row, Column: col}, sel)
}
