package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/doublets/ladder"
)

func newLadderCmd(a *app) *cobra.Command {
	var minOnly bool

	cmd := &cobra.Command{
		Use:   "ladder START END",
		Short: "Print a depth-first ladder and a minimum ladder from START to END",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()

			strategies := []ladder.Strategy{ladder.DepthFirst, ladder.BreadthFirst}
			if minOnly {
				strategies = strategies[1:]
			}

			// the lexicon is read-only, so both searches can share the engine
			results := make([]*ladder.Result, len(strategies))
			g, gctx := errgroup.WithContext(ctx)
			for i, s := range strategies {
				g.Go(func() error {
					res, err := a.engine.Search(args[0], args[1], s, ladder.WithContext(gctx))
					if err != nil {
						return fmt.Errorf("%s search: %w", s, err)
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintf(out, "%s\t%s\n", res.Strategy, formatLadder(res.Path))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&minOnly, "min", false, "only search for a minimum ladder")

	return cmd
}

// formatLadder renders a ladder as "a -> b -> c", or a marker when empty.
func formatLadder(path []string) string {
	if len(path) == 0 {
		return "(no ladder)"
	}

	return fmt.Sprintf("%s (%d words)", strings.Join(path, " -> "), len(path))
}
