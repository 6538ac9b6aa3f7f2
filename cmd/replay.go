/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-hand/script"
)

var replayCharacter string

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Run a gesture script against a hand and print the resulting order",
	Long: `Run a gesture script against a hand and print the resulting order.

A script has one statement per line:
  hand <id>...                    deal a new hand
  begin <index>                   start dragging a card
  hover <index> <top> <bottom> <y> hover over a card with the drag source at y
  end                             drop the card
  toggle <index>                  toggle visibility
  status <index> [name]           cycle the hand status, or until it reads name
Lines starting with # are comments.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		s, err := script.NewParser().Parse(args[0], string(src))
		if err != nil {
			return err
		}
		runner := &script.Runner{Character: replayCharacter, Logger: logger}
		res, err := runner.Run(s)
		if err != nil {
			return err
		}
		logger.Info("script replayed", zap.String("script", args[0]), zap.Int("swaps", res.Swaps))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "swaps: %d\n", res.Swaps)
		if res.Hand == nil {
			return nil
		}
		for _, c := range res.Hand.Cards() {
			fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", c.Index, c.ID, visibility(c.Visible), c.Status)
		}
		return nil
	},
}

func visibility(v bool) string {
	if v {
		return "visible"
	}
	return "hidden"
}

func init() {
	replayCmd.Flags().StringVarP(&replayCharacter, "character", "c", "demo", "character key for the dealt cards")
	rootCmd.AddCommand(replayCmd)
}
