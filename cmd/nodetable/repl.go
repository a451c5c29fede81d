// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/nodetable/base/errors"
	"cogentcore.org/nodetable/host"
	"cogentcore.org/nodetable/host/memhost"
	"cogentcore.org/nodetable/multiedit"
	"cogentcore.org/nodetable/panel"
	"cogentcore.org/nodetable/table"
	"github.com/mattn/go-shellwords"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl SCENE",
	Short: "Edit the selected nodes of a scene interactively",
	Long: `Edit the selected nodes of a scene interactively. Type help for the
list of commands. Arguments are split like a shell does, so quote values
containing spaces.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, p, err := open(args[0])
		if err != nil {
			return err
		}
		r := newRepl(h, p, args[0], cmd.InOrStdin(), termenv.NewOutput(cmd.OutOrStdout()))
		if err := r.exec([]string{"load"}); err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
		return r.run()
	},
}

const replHelp = `commands:
  load                             load the selected nodes
  show                             show the table
  filter class|name|knob [LIST]    set or clear a filter
  toggle hidden|disabled|all|grouped
  set ROW COL VALUE [all]          set a cell, and the whole column with all
  check ROW COL [all]              toggle a check box cell
  complete class|name|knob TEXT    complete the last term of a filter
  select ROW                       select the node of a row
  props ROW                        show the properties of the node of a row
  delete NODE                      delete a node from the scene
  write [FILE]                     write the scene
  quit`

// errQuit is returned by [repl.exec] to end the loop.
var errQuit = errors.New("quit")

// repl is an interactive session on a scene.
type repl struct {
	host  *memhost.Host
	panel *panel.Panel
	scene string
	in    *bufio.Scanner
	out   *termenv.Output
}

func newRepl(h *memhost.Host, p *panel.Panel, scene string, in io.Reader, out *termenv.Output) *repl {
	r := &repl{host: h, panel: p, scene: scene, in: bufio.NewScanner(in), out: out}
	h.Confirmer = r.confirm
	return r
}

// confirm asks the given question, reading the answer from the input.
func (r *repl) confirm(question string) bool {
	fmt.Fprintf(r.out, "%s [y/N] ", question)
	if !r.in.Scan() {
		return false
	}
	a := strings.ToLower(strings.TrimSpace(r.in.Text()))
	return a == "y" || a == "yes"
}

// run reads and executes commands until the input ends or quit.
func (r *repl) run() error {
	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		args, err := shellwords.Parse(r.in.Text())
		if err == nil {
			err = r.exec(args)
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
	}
}

// exec executes the given command line.
func (r *repl) exec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	p := r.panel
	switch cmd {
	case "load":
		if !p.LoadSelected() {
			return errors.New("loading cancelled")
		}
		fmt.Fprintf(r.out, "loaded %d nodes\n", p.Model.NumRows())
	case "show":
		p.Model.Prune()
		render(r.out, p.Filter)
	case "filter":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: filter class|name|knob [LIST]")
		}
		list := ""
		if len(args) == 2 {
			list = args[1]
		}
		switch args[0] {
		case "class":
			p.SetClassFilter(list)
		case "name":
			p.SetNameFilter(list)
		case "knob":
			p.SetKnobFilter(list)
		default:
			return fmt.Errorf("unknown filter %q", args[0])
		}
	case "toggle":
		if len(args) != 1 {
			return errors.New("usage: toggle hidden|disabled|all|grouped")
		}
		st := p.Filter.State()
		switch args[0] {
		case "hidden":
			p.SetShowHidden(!st.ShowHidden)
		case "disabled":
			p.SetShowDisabled(!st.ShowDisabled)
		case "all":
			p.SetAllKnobStates(!p.AllKnobStates())
		case "grouped":
			p.SetGrouped(!p.Grouped())
		default:
			return fmt.Errorf("unknown toggle %q", args[0])
		}
	case "set":
		return r.set(args)
	case "check":
		return r.check(args)
	case "complete":
		if len(args) != 2 {
			return errors.New("usage: complete class|name|knob TEXT")
		}
		field, ok := map[string]panel.Fields{"class": panel.ClassField, "name": panel.NameField, "knob": panel.KnobField}[args[0]]
		if !ok {
			return fmt.Errorf("unknown filter %q", args[0])
		}
		for _, c := range p.Complete(field, args[1]) {
			fmt.Fprintln(r.out, c)
		}
	case "select", "props":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s ROW", cmd)
		}
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if cmd == "select" {
			return p.SelectNode(row)
		}
		return p.ShowProperties(row)
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: delete NODE")
		}
		if !r.host.Delete(args[0]) {
			return fmt.Errorf("node %q: %w", args[0], host.ErrGone)
		}
	case "write":
		file := r.scene
		if len(args) > 0 {
			file = args[0]
		}
		return r.host.Save(file)
	case "help":
		fmt.Fprintln(r.out, replHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

// cell parses a row index and a column index or knob name.
func (r *repl) cell(row, col string) (int, int, error) {
	ri, err := strconv.Atoi(row)
	if err != nil {
		return 0, 0, err
	}
	ci, err := strconv.Atoi(col)
	if err != nil {
		ci = slices.Index(r.panel.Filter.ColumnNames(), col)
	}
	if ri < 0 || ri >= r.panel.Filter.NumRows() || ci < 0 || ci >= r.panel.Filter.NumColumns() {
		return 0, 0, fmt.Errorf("no cell %s %s", row, col)
	}
	return ri, ci, nil
}

// selection returns the cell alone, or its whole column if all is set.
func (r *repl) selection(row, col int, all bool) multiedit.Selection {
	if all {
		return multiedit.Selection{{Top: 0, Left: col, Bottom: r.panel.Filter.NumRows() - 1, Right: col}}
	}
	return multiedit.Selection{{Top: row, Left: col, Bottom: row, Right: col}}
}

func (r *repl) set(args []string) error {
	if len(args) < 3 || len(args) > 4 || (len(args) == 4 && args[3] != "all") {
		return errors.New("usage: set ROW COL VALUE [all]")
	}
	row, col, err := r.cell(args[0], args[1])
	if err != nil {
		return err
	}
	k, ok := r.panel.Filter.Data(row, col, table.KnobRole).(host.Knob)
	if !ok {
		return fmt.Errorf("no knob at %d %d", row, col)
	}
	v, err := host.Parse(k.Kind(), args[2])
	if err != nil {
		return err
	}
	ok, res := r.panel.Edit(row, col, v, r.selection(row, col, len(args) == 4))
	if !ok {
		return fmt.Errorf("could not set %s.%s", k.Node().Name(), k.Name())
	}
	r.report(res)
	return nil
}

func (r *repl) check(args []string) error {
	if len(args) < 2 || len(args) > 3 || (len(args) == 3 && args[2] != "all") {
		return errors.New("usage: check ROW COL [all]")
	}
	row, col, err := r.cell(args[0], args[1])
	if err != nil {
		return err
	}
	ok, res := r.panel.Toggle(row, col, r.selection(row, col, len(args) == 3))
	if !ok {
		return fmt.Errorf("no check box at %d %d", row, col)
	}
	r.report(res)
	return nil
}

func (r *repl) report(res multiedit.Result) {
	if res == (multiedit.Result{}) {
		return
	}
	fmt.Fprintf(r.out, "%d propagated, %d failed, %d skipped\n", res.Applied, res.Failed, res.Skipped)
}
