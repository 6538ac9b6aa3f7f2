/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/ui"
	"github.com/SvenDH/go-card-hand/ui/screens"
)

var playFlags handFlags

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window with the hand",
	Long: `Open a window with the hand.

Controls:
  Drag          - Reorder cards
  Click toggle  - Show or hide a card (with --show-toggle)
  Double click  - Cycle active, discard, lost
  ESC           - Cancel the current drag`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := playFlags.hand(cmd.Context())
		if err != nil {
			return err
		}
		ctrl := hand.NewController(h, hand.WithLogger(logger))
		view := ui.NewHandView(ctrl, playFlags.presentation(), cfg.Layout.Geometry())
		view.TrackCursor = cfg.Hand.TrackCursor

		geo := view.Geometry()
		last := geo.Rect(h.Len() - 1)
		width := int(2*geo.Left + geo.Width)
		height := int(last.Bottom + geo.Top)
		logger.Info("opening hand window",
			zap.Int("cards", h.Len()),
			zap.Int("width", width),
			zap.Int("height", height))

		prog := screens.NewProgram(view, width, height)
		return prog.Run("Hand")
	},
}

func init() {
	playFlags.register(playCmd)
	rootCmd.AddCommand(playCmd)
}
