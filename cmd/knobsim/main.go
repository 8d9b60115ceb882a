// knobsim is a terminal host for the knob widget: an interactive TUI
// driven by mouse drags, and a PNG renderer for static snapshots.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/knob/cmd/knobsim/internal/config"
	"github.com/go-drift/knob/cmd/knobsim/internal/tui"
	"github.com/go-drift/knob/pkg/graphics"
	"github.com/go-drift/knob/pkg/layout"
	"github.com/go-drift/knob/pkg/rendering"
	"github.com/go-drift/knob/pkg/widgets"
)

var (
	configFile string
	outPath    string
	sizePx     int
	value      float64
	divisions  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "knobsim",
		Short: "rotary knob playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "knobsim.yaml", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "interactive terminal knob",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the knob to a PNG",
		RunE:  renderPNG,
	}
	renderCmd.Flags().StringVar(&outPath, "out", "knob.png", "output file")
	renderCmd.Flags().IntVar(&sizePx, "size", 256, "image size in pixels")
	renderCmd.Flags().Float64Var(&value, "value", 0, "knob value in turns")
	renderCmd.Flags().IntVar(&divisions, "divisions", 0, "steps per turn (0 disables)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configFile); err == nil {
				return fmt.Errorf("%s already exists", configFile)
			}
			if err := config.Save(configFile, config.Default()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", configFile)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, renderCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := config.LoadOptional(configFile)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func renderPNG(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOptional(configFile)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("value") {
		value = cfg.Knob.Value
	}
	if !cmd.Flags().Changed("divisions") {
		divisions = cfg.Knob.Divisions
	}

	w := widgets.Knob{
		Value:        value,
		Min:          cfg.Knob.Min,
		Max:          cfg.Knob.Max,
		Divisions:    divisions,
		Diameter:     float64(sizePx),
		FaceColor:    graphics.Color(0xFF2E3440),
		PointerColor: graphics.Color(0xFFEBCB8B),
	}

	ro := w.CreateRenderObject()
	size := graphics.Size{Width: float64(sizePx), Height: float64(sizePx)}
	ro.Layout(layout.Tight(size), false)

	raster := rendering.NewRasterizer(sizePx, sizePx)
	raster.Clear(graphics.ColorWhite)
	ro.Paint(&layout.PaintContext{Canvas: raster})

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, raster.Image()); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, value %.4f)\n", outPath, sizePx, sizePx, value)
	return nil
}
