package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the selectable font families and colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, fontTable(fonts.NewCatalog().Families()))
			fmt.Fprintln(out, paletteTable(customization.Palette()))
			return nil
		},
	}
}

func fontTable(families []fonts.Descriptor) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FONT", "CATEGORY", "GLYPHS").
		StyleFunc(styleCell)
	for _, desc := range families {
		t.Row(desc.Family, string(desc.Category), desc.Source)
	}
	return t.Render()
}

func paletteTable(palette []customization.Swatch) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COLOR", "HEX", "").
		StyleFunc(styleCell)
	for _, swatch := range palette {
		sample := lipgloss.NewStyle().Foreground(lipgloss.Color(swatch.Hex())).Render("■■■")
		t.Row(swatch.Name, swatch.Hex(), sample)
	}
	return t.Render()
}

func styleCell(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
