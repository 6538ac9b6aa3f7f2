/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/store"
)

var cardLevel int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the character and card catalog",
}

var addCharacterCmd = &cobra.Command{
	Use:   "add-character [key] [name]",
	Short: "Add a character",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.Store) error {
			return s.AddCharacter(cmd.Context(), store.Character{Key: args[0], Name: args[1]})
		})
	},
}

var addCardCmd = &cobra.Command{
	Use:   "add-card [character] [id] [name]",
	Short: "Add an ability card to a character",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.Store) error {
			return s.AddCard(cmd.Context(), store.Card{
				ID:        hand.CardID(args[1]),
				Character: args[0],
				Name:      args[2],
				Level:     cardLevel,
			})
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list [character]",
	Short: "List characters, or the cards of one character",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return withStore(cmd, func(s *store.Store) error {
			if len(args) == 0 {
				chars, err := s.Characters(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range chars {
					fmt.Fprintf(out, "%s\t%s\n", c.Key, c.Name)
				}
				return nil
			}
			cards, err := s.Cards(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, c := range cards {
				fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", c.ID, c.Level, c.Name,
					hand.ImagePath(hand.Card{ID: c.ID, Character: c.Character}))
			}
			return nil
		})
	},
}

func withStore(cmd *cobra.Command, fn func(*store.Store) error) error {
	s, err := store.Open(cmd.Context(), cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func init() {
	addCardCmd.Flags().IntVarP(&cardLevel, "level", "l", 1, "card level")
	catalogCmd.AddCommand(addCharacterCmd, addCardCmd, listCmd)
	rootCmd.AddCommand(catalogCmd)
}
