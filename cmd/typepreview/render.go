package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/typepreview/internal/config"
	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/preview"
	"github.com/alexisbeaulieu97/typepreview/internal/tui"
)

type renderOptions struct {
	Out    string
	Text   string
	Size   float64
	Font   string
	Color  string
	Bold   bool
	Italic bool
	Width  int
	Height int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the preview to a PNG file without the interactive screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output PNG path (required)")
	cmd.Flags().StringVarP(&opts.Text, "text", "t", "", "Text to preview")
	cmd.Flags().Float64VarP(&opts.Size, "size", "s", 0, fmt.Sprintf("Font size in points (%g-%g)", customization.MinFontSize, customization.MaxFontSize))
	cmd.Flags().StringVarP(&opts.Font, "font", "f", "", "Font family: "+strings.Join(customization.FontFamilies(), ", "))
	cmd.Flags().StringVar(&opts.Color, "color", "", "Color: "+strings.Join(customization.ColorNames(), ", "))
	cmd.Flags().BoolVar(&opts.Bold, "bold", false, "Use the bold weight")
	cmd.Flags().BoolVar(&opts.Italic, "italic", false, "Use the italic style")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Image width in pixels (64-8192)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "Image height in pixels (64-8192)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	if strings.TrimSpace(opts.Out) == "" {
		return fmt.Errorf("output path is required")
	}

	app, err := newAppContext(root, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	values := applyRenderFlags(cmd, app.Config.Values(), opts)
	// Values from the command line are untrusted, unlike the bounded controls.
	if err := values.Validate(); err != nil {
		return err
	}

	style, err := preview.Derive(values, app.Catalog)
	if err != nil {
		return err
	}

	if err := (config.ExportSettings{Width: opts.Width, Height: opts.Height}).Validate(); err != nil {
		return err
	}

	geometry := app.Config.RenderOptions()
	if opts.Width > 0 {
		geometry.Width = opts.Width
	}
	if opts.Height > 0 {
		geometry.Height = opts.Height
	}

	log := app.Logger.WithFields(map[string]any{"out": opts.Out, "style": style.Summary()})
	if err := tui.ExportFile(opts.Out, values.Text, style, app.Catalog, geometry); err != nil {
		log.Error(err, "render failed")
		return err
	}
	log.Debug("render complete")

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", opts.Out, style.Summary())
	return nil
}

func applyRenderFlags(cmd *cobra.Command, values customization.Values, opts renderOptions) customization.Values {
	flags := cmd.Flags()
	if flags.Changed("text") {
		values.Text = opts.Text
	}
	if flags.Changed("size") {
		values.FontSize = opts.Size
	}
	if flags.Changed("font") {
		values.FontFamily = opts.Font
	}
	if flags.Changed("color") {
		values.Color = opts.Color
	}
	if flags.Changed("bold") {
		values.Weight = customization.WeightNormal
		if opts.Bold {
			values.Weight = customization.WeightBold
		}
	}
	if flags.Changed("italic") {
		values.Style = customization.StyleNormal
		if opts.Italic {
			values.Style = customization.StyleItalic
		}
	}
	return values
}
