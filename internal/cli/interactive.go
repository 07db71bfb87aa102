package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/seam-carver/internal/config"
	"github.com/ironsheep/seam-carver/internal/imaging"
	"github.com/ironsheep/seam-carver/internal/seam"
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive <image>",
		Short: "Carve an image step by step from a menu",
		Long: `Load an image and repeatedly pick a seam to remove.

Each highlighted seam is written to a numbered preview file and removed only
after confirmation. On quit the current image is written to the configured
output file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			g, err := imaging.Load(args[0])
			if err != nil {
				return err
			}

			p := &prompt{
				in:     bufio.NewScanner(cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
				editor: seam.NewEditor(g, seam.WithWorkers(cfg.Energy.Workers)),
				cfg:    cfg,
				logger: loggerFromContext(ctx),
			}
			p.in.Split(bufio.ScanWords)
			return p.run()
		},
	}
}

// prompt is the menu loop of the interactive command.
type prompt struct {
	in     *bufio.Scanner
	out    io.Writer
	editor *seam.Editor
	cfg    *config.Config
	logger *log.Logger

	previews int // number of preview files written so far
}

func (p *prompt) printMenu() {
	fmt.Fprintln(p.out, "Please enter a command")
	fmt.Fprintln(p.out, "b - Remove the bluest column")
	fmt.Fprintln(p.out, "e - Remove the column with the lowest energy")
	fmt.Fprintln(p.out, "u - Undo previous edit")
	fmt.Fprintln(p.out, "q - Quit")
}

// next returns the next whitespace-separated word, lower-cased. At end of
// input it returns "q" so the session ends as if the user quit.
func (p *prompt) next() string {
	if !p.in.Scan() {
		return "q"
	}
	return strings.ToLower(p.in.Text())
}

func (p *prompt) run() error {
	for {
		p.printMenu()
		choice := p.next()

		var err error
		switch choice {
		case "b":
			err = p.carve(seam.MaxBlue, "Remove the bluest column")
		case "e":
			err = p.carve(seam.MinEnergy, "Remove the column with the lowest energy")
		case "u":
			err = p.undo()
		case "q":
			fmt.Fprintln(p.out, "Thanks for playing.")
			return p.export()
		default:
			fmt.Fprintln(p.out, "That is not a valid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (p *prompt) carve(mode seam.Mode, question string) error {
	s, err := p.editor.Highlight(mode)
	if errors.Is(err, seam.ErrEmptyGrid) {
		fmt.Fprintln(p.out, "Image too small")
		return nil
	}
	if err != nil {
		return err
	}
	if err := p.savePreview(); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "%s. Continue? (Y/N)\n", question)
	if p.next() != "y" {
		p.editor.Undo()
		p.logger.Debug("seam discarded", "mode", mode)
		return nil
	}
	if err := p.editor.Delete(s); err != nil {
		return err
	}
	p.logger.Debug("seam removed", "mode", mode, "width", p.editor.Grid().Width())
	return nil
}

func (p *prompt) undo() error {
	fmt.Fprintln(p.out, "Undo. Continue? (Y/N)")
	if p.next() != "y" {
		return nil
	}
	if !p.editor.Undo() {
		fmt.Fprintln(p.out, "Nothing to undo.")
		return nil
	}
	return p.savePreview()
}

func (p *prompt) savePreview() error {
	path := p.cfg.PreviewPath(p.previews)
	if err := imaging.Save(path, p.editor.Grid()); err != nil {
		return err
	}
	p.previews++
	p.logger.Info("wrote preview", "path", path)
	return nil
}

func (p *prompt) export() error {
	g := p.editor.Grid()
	if err := imaging.Save(p.cfg.Export.Output, g); err != nil {
		return err
	}
	p.logger.Info("wrote image", "path", p.cfg.Export.Output, "width", g.Width(), "height", g.Rows(), "edits", p.editor.EditCount())
	return nil
}
