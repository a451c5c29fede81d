// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nodetable shows and edits the knobs of the nodes of a
// scene as a table, with one row per node and one column per knob.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/nodetable/config"
	"cogentcore.org/nodetable/host/memhost"
	"cogentcore.org/nodetable/logx"
	"cogentcore.org/nodetable/panel"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	verbose     bool
	veryVerbose bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "nodetable",
	Short: "nodetable edits the knobs of many nodes at once",
	Long: `nodetable shows the knobs of the selected nodes of a scene as a table,
with one row per node and one column per knob name, and edits a knob
across all selected nodes having it.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
		logx.SetDefaultLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show info messages")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "show debug messages")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only show errors")

	rootCmd.AddCommand(showCmd, setCmd, replCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// open reads the configuration and the given scene,
// and returns the scene host with an empty panel on it.
func open(scene string) (*memhost.Host, *panel.Panel, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	h, err := memhost.Open(scene)
	if err != nil {
		return nil, nil, err
	}
	return h, panel.New(h, cfg), nil
}
