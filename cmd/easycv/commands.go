package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/server"
	"github.com/ironsheep/easycv/internal/transforms"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := server.New(a.registry, a.cache, a.logger, server.Options{
				OutputDir: a.cfg.Output.Dir,
				Version:   Version,
			})
			a.logger.Info().
				Str("version", Version).
				Str("backend", imaging.Backend).
				Int("transforms", len(a.registry.Names())).
				Msg("MCP server starting")
			return s.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newApplyCommand(a *app) *cobra.Command {
	var then []string

	cmd := &cobra.Command{
		Use:   "apply <input> <output> <transform> [name=value...]",
		Short: "Apply transforms to an image file or URL",
		Long: `Apply one transform to input and write the result to output. Argument
values are parsed as JSON when possible, so size=5, box=[0,0,10,10] and
labels=false have their natural types; anything else is a string. Arguments
that take text (text, color, language, background) are always strings, so
text=123 draws "123".

Further steps are added with --then, each a transform name followed by its
arguments:

  easycv apply in.png out.png blur size=9 --then "canny low=50 high=150"

Use "-" as output to skip writing an image. Measurements and field
statistics are printed to stdout as JSON.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseStep(a.registry, args[2], args[3:])
			if err != nil {
				return err
			}
			steps := []transforms.Step{first}
			for _, value := range then {
				step, err := parseThen(a.registry, value)
				if err != nil {
					return err
				}
				steps = append(steps, step)
			}
			return a.apply(cmd, args[0], args[1], steps)
		},
	}
	cmd.Flags().StringArrayVar(&then, "then", nil, `additional step, e.g. "crop box=[0,0,50,50]" (repeatable)`)
	return cmd
}

func (a *app) apply(cmd *cobra.Command, input, output string, steps []transforms.Step) error {
	img, err := a.cache.Load(input)
	if err != nil {
		return err
	}

	ctx := a.logger.WithContext(cmd.Context())
	out, err := transforms.Pipeline(ctx, a.registry, img, steps)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case out.Data != nil:
		if output != "-" {
			return fmt.Errorf("%s produces data, not an image; use - as output", steps[len(steps)-1].Name)
		}
		return writeJSON(w, out.Data)
	case output != "-":
		path := output
		if !filepath.IsAbs(path) {
			path = filepath.Join(a.cfg.Output.Dir, path)
		}
		if err := imaging.Save(out.Image, path); err != nil {
			return err
		}
		zerolog.Ctx(ctx).Info().Str("path", path).Int("steps", len(steps)).Msg("image saved")
	}

	if out.Field != nil {
		return writeJSON(w, out.Field.Stats())
	}
	return nil
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range a.registry.All() {
				fmt.Fprintf(tw, "%s\t%s\n", t.Name(), t.Description())
			}
			return tw.Flush()
		},
	}
}

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <transform>",
		Short: "Print a transform's argument schema as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"name":        t.Name(),
				"description": t.Description(),
				"arguments":   t.Arguments().Describe(),
			})
		},
	}
}

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Print image metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := imaging.LoadImageInfo(a.cache, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and backend information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "easycv %s\n", Version)
			fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(w, "  Kernels:    %s\n", imaging.Backend)

			info := a.engine.Info()
			if info.Available {
				fmt.Fprintf(w, "  OCR:        %s %s\n", info.Backend, info.Version)
			} else {
				fmt.Fprintf(w, "  OCR:        unavailable (build with -tags tesseract)\n")
			}
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
