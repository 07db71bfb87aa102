package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/seam-carver/internal/imaging"
	"github.com/ironsheep/seam-carver/internal/seam"
)

func newCarveCmd() *cobra.Command {
	var (
		mode    string
		preview string
		count   int
	)

	cmd := &cobra.Command{
		Use:   "carve <input> <output>",
		Short: "Remove seams from an image",
		Long: `Remove one seam (or --count seams) from the input image and write the narrower result.

With --preview, the image with the first seam highlighted is written before it is removed.`,
		Example: `  seamcarve carve photo.png narrower.png --mode energy
  seamcarve carve photo.jpg out.png --mode blue --preview marked.png
  seamcarve carve photo.png out.png -n 20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := seam.ParseMode(mode)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			return runCarve(cmd, args[0], args[1], m, count, preview)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "energy", "seam to remove: blue or energy")
	cmd.Flags().StringVar(&preview, "preview", "", "write the first highlighted seam to this file")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of seams to remove")

	return cmd
}

func runCarve(cmd *cobra.Command, in, out string, mode seam.Mode, count int, preview string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	prog := newProgress(logger)

	g, err := imaging.Load(in)
	if err != nil {
		return err
	}
	logger.Debug("loaded", "path", in, "width", g.Width(), "height", g.Rows())

	ed := seam.NewEditor(g, seam.WithWorkers(cfg.Energy.Workers))
	for i := 0; i < count; i++ {
		s, err := ed.Highlight(mode)
		if err != nil {
			return fmt.Errorf("seam %d: %w", i+1, err)
		}
		if i == 0 && preview != "" {
			if err := imaging.Save(preview, g); err != nil {
				return err
			}
			logger.Info("wrote preview", "path", preview)
		}
		if err := ed.Delete(s); err != nil {
			return fmt.Errorf("seam %d: %w", i+1, err)
		}
	}

	if err := imaging.Save(out, g); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Removed %d %s seam(s), %s is %dx%d", count, mode, out, g.Width(), g.Rows()))
	return nil
}

func newEnergyCmd() *cobra.Command {
	var overlay float64

	cmd := &cobra.Command{
		Use:   "energy <input> <output>",
		Short: "Write the energy heat map of an image",
		Long:  `Compute the energy of every pixel and write it as a heat map from dark blue (flat) to yellow (strong edges).`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if overlay < 0 || overlay > 1 {
				return fmt.Errorf("overlay must be between 0 and 1, got %v", overlay)
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			g, err := imaging.Load(args[0])
			if err != nil {
				return err
			}
			if err := imaging.SaveEnergyMap(args[1], g, overlay); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Wrote energy map %s", args[1]))
			return nil
		},
	}

	cmd.Flags().Float64Var(&overlay, "overlay", 0, "blend the heat map over the image at this opacity (0-1)")
	return cmd
}
