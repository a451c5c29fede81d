// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/nodetable/host"
	"cogentcore.org/nodetable/host/memhost"
	"cogentcore.org/nodetable/multiedit"
	"cogentcore.org/nodetable/panel"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var setOpts struct {
	selected []string
	write    bool
}

var setCmd = &cobra.Command{
	Use:   "set SCENE NODE KNOB VALUE",
	Short: "Set a knob of a node and of the selected nodes",
	Long: `Set a knob of a node to the given value, and the knob of the same name
and kind on the selected nodes too. Arrays are given as comma or space
separated numbers, and tile colors as 0xRRGGBBAA.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		scene := args[0]
		h, p, err := open(scene)
		if err != nil {
			return err
		}
		res, err := set(h, p, args[1], args[2], args[3], setOpts.selected)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "set %s.%s: %d propagated, %d failed, %d skipped\n", args[1], args[2], res.Applied, res.Failed, res.Skipped)
		if setOpts.write {
			return h.Save(scene)
		}
		render(termenv.NewOutput(w), p.Filter)
		return nil
	},
}

func init() {
	f := setCmd.Flags()
	f.StringSliceVar(&setOpts.selected, "select", nil, "nodes to propagate to (default is the selected nodes of the scene)")
	f.BoolVar(&setOpts.write, "write", false, "write the scene back")
}

// set loads the given node followed by the selected ones into the
// panel, and sets the knob of the node to the given value, propagating
// it down the knob column. If selected is empty, the selected nodes of
// the scene are used.
func set(h *memhost.Host, p *panel.Panel, node, knob, value string, selected []string) (multiedit.Result, error) {
	var res multiedit.Result
	n, ok := h.Node(node)
	if !ok {
		return res, fmt.Errorf("node %q: %w", node, host.ErrGone)
	}
	k, ok := n.Knob(knob)
	if !ok {
		return res, fmt.Errorf("node %q has no knob %q", node, knob)
	}
	v, err := host.Parse(k.Kind(), value)
	if err != nil {
		return res, fmt.Errorf("%s.%s: %w", node, knob, err)
	}

	nodes := []host.Node{n}
	if len(selected) == 0 {
		for _, s := range h.Selected(false) {
			if s.Name() != node {
				nodes = append(nodes, s)
			}
		}
	} else {
		for _, name := range selected {
			s, ok := h.Node(name)
			if !ok {
				slog.Warn("skipping missing node", "node", name)
				continue
			}
			if name != node {
				nodes = append(nodes, s)
			}
		}
	}
	if !p.SetNodes(nodes) {
		return res, fmt.Errorf("loading %d nodes cancelled", len(nodes))
	}
	p.SetAllKnobStates(true)

	col := slices.Index(p.Filter.ColumnNames(), knob)
	sel := multiedit.Selection{{Top: 0, Left: col, Bottom: p.Filter.NumRows() - 1, Right: col}}
	ok, res = p.Edit(0, col, v, sel)
	if !ok {
		return res, fmt.Errorf("could not set %s.%s to %q", node, knob, value)
	}
	return res, nil
}
