// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/nodetable/base/errors"
	"cogentcore.org/nodetable/filter"
	"cogentcore.org/nodetable/panel"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// showOptions are the options of the show command.
type showOptions struct {
	filter.State

	// Grouped includes the selected nodes inside selected groups.
	Grouped bool

	// Watch shows the table again whenever the scene file changes.
	Watch bool
}

var showOpts showOptions

var showCmd = &cobra.Command{
	Use:   "show SCENE",
	Short: "Show the knobs of the selected nodes of a scene",
	Long: `Show the knobs of the selected nodes of a scene as a table,
filtered by node class, node name and knob name. Each filter is a
comma separated list: a single term matches names containing it, and
more terms match names equal to one of them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := termenv.NewOutput(cmd.OutOrStdout())
		scene := args[0]
		if err := show(out, scene, showOpts); err != nil {
			return err
		}
		if !showOpts.Watch {
			return nil
		}
		return watch(cmd.Context(), scene, func() error {
			return show(out, scene, showOpts)
		})
	},
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showOpts.Classes, "class", "", "node class filter")
	f.StringVar(&showOpts.Names, "name", "", "node name filter")
	f.StringVar(&showOpts.Knobs, "knob", "", "knob name filter")
	f.BoolVar(&showOpts.ShowHidden, "hidden", false, "show hidden knobs")
	f.BoolVar(&showOpts.ShowDisabled, "disabled", false, "show disabled knobs")
	f.BoolVar(&showOpts.Grouped, "grouped", false, "include selected nodes inside selected groups")
	f.BoolVar(&showOpts.Watch, "watch", false, "show the table again whenever the scene changes")
}

// show loads the selected nodes of the given scene and renders them.
func show(out *termenv.Output, scene string, opts showOptions) error {
	_, p, err := open(scene)
	if err != nil {
		return err
	}
	load(p, opts)
	render(out, p.Filter)
	return nil
}

// load loads the selected nodes into the panel with the given options.
func load(p *panel.Panel, opts showOptions) {
	p.Filter.SetState(opts.State)
	if opts.Grouped {
		p.SetGrouped(true)
		return
	}
	p.LoadSelected()
}

// watch calls fun whenever the given file is written or replaced,
// until the context is done.
func watch(ctx context.Context, filename string, fun func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so the directory is watched
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	filename = filepath.Clean(filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Info("reloading", "scene", filename)
			errors.Log(fun())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
