package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors WORD",
		Short: "List dictionary words one letter away from WORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.engine.Neighbors(args[0]), " "))
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD...",
		Short: "Report whether the given words form a valid ladder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.engine.IsWordLadder(args) {
				return fmt.Errorf("not a word ladder: %s", strings.Join(args, " "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid ladder")
			return nil
		},
	}
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of dictionary words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.WordCount())
			return nil
		},
	}
}
