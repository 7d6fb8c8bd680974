package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/render"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [names...]",
		Short: "Solve puzzles from the manifest (all when no names are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := puzzle.LoadManifest(a.manifest)
			if err != nil {
				return err
			}
			entries, err := m.Select(args...)
			if err != nil {
				return err
			}

			r := a.runner()
			out := cmd.OutOrStdout()
			var failed []error
			for _, e := range entries {
				ans, err := r.Run(e)
				switch {
				case errors.Is(err, puzzle.ErrMismatch):
					fmt.Fprintf(out, "%s\t%s\t%s\tMISMATCH\n", e.Name, ans.Part1, ans.Part2)
					failed = append(failed, err)
				case err != nil:
					fmt.Fprintf(out, "%s\terror: %v\n", e.Name, err)
					failed = append(failed, err)
				default:
					fmt.Fprintf(out, "%s\t%s\t%s\n", e.Name, ans.Part1, ans.Part2)
				}
			}
			if len(failed) > 0 {
				a.logger.Warn("some puzzles failed", zap.Int("failed", len(failed)), zap.Int("total", len(entries)))
				return errors.Join(failed...)
			}
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:   "run <kind> <file>",
		Short: "Solve one input file as the given kind (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := puzzle.ParseParams(pairs)
			if err != nil {
				return err
			}
			input, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			ans, err := a.runner().Solve(args[0], input, params)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ans.Part1)
			fmt.Fprintln(cmd.OutOrStdout(), ans.Part2)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "param", "p", nil, "kind parameter as key=value (repeatable)")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		pairs []string
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "render <kind> <file>",
		Short: "Draw the puzzle grid with its search overlaid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := puzzle.ParseParams(pairs)
			if err != nil {
				return err
			}
			input, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			g, ov, err := a.runner().Draw(args[0], input, params)
			if err != nil {
				return err
			}
			var opts []render.Option
			if plain {
				opts = append(opts, render.WithPlain())
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Render(g, ov, opts...))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "param", "p", nil, "kind parameter as key=value (repeatable)")
	cmd.Flags().BoolVar(&plain, "plain", false, "no colours")
	return cmd
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List puzzle kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range a.reg.Kinds() {
				drawable := ""
				if k.Draw != nil {
					drawable = "render"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Name, k.Summary, drawable)
			}
			return tw.Flush()
		},
	}
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
