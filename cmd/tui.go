/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-hand/config"
	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/tui"
	"github.com/SvenDH/go-card-hand/ui"
)

var tuiFlags handFlags

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Arrange the hand in the terminal with the mouse",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := tuiFlags.hand(cmd.Context())
		if err != nil {
			return err
		}
		// The terminal is the display; only log when a file is configured.
		l := zap.NewNop()
		if cfg.Log.File != "" {
			l = logger
		}
		ctrl := hand.NewController(h, hand.WithLogger(l))
		view := ui.NewHandView(ctrl, tuiFlags.presentation(), config.TerminalLayout().Geometry())
		view.TrackCursor = cfg.Hand.TrackCursor
		return tui.Run(view)
	},
}

func init() {
	tuiFlags.register(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}
