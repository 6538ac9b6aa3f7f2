/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-hand/config"
	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/store"
)

var (
	cfgFile  string
	logLevel string
	dbPath   string

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cardhand",
	Short: "Arrange a character's hand of ability cards",
	Long: `Arrange a character's hand of ability cards.

Cards are reordered by dragging them past the middle of a neighbour, toggled
visible or hidden while choosing a hand, and cycled through the active,
discard and lost piles with a double click.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = logLevel
		}
		if cmd.Flags().Changed("db") {
			c.Store.Path = dbPath
		}
		if err := c.Validate(); err != nil {
			return err
		}
		l, err := config.NewLogger(c.Log)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "catalog.db", "card catalog database")
}

// handFlags selects the cards a host starts with.
type handFlags struct {
	character  string
	cards      string
	showToggle bool
}

func (f *handFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.character, "character", "c", "", "deal the character's catalog cards")
	cmd.Flags().StringVar(&f.cards, "cards", "1,2,3,4,5", "comma separated card ids when no character is given")
	cmd.Flags().BoolVar(&f.showToggle, "show-toggle", false, "show visibility toggles")
}

func (f *handFlags) hand(ctx context.Context) (*hand.Hand, error) {
	if f.character == "" {
		var cards []hand.Card
		for _, id := range strings.Split(f.cards, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cards = append(cards, hand.Card{ID: hand.CardID(id), Character: "demo", Visible: true, Status: hand.InHand})
			}
		}
		if len(cards) == 0 {
			return nil, fmt.Errorf("no cards given")
		}
		return hand.New(cards...), nil
	}

	s, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	h, err := s.NewHand(ctx, f.character)
	if err != nil {
		return nil, err
	}
	if h.Len() == 0 {
		return nil, fmt.Errorf("character %q has no cards", f.character)
	}
	return h, nil
}

func (f *handFlags) presentation() hand.Presentation {
	return hand.Presentation{ShowToggle: f.showToggle || cfg.Hand.ShowToggle}
}
