// shooter runs the space shooter scene: a ship steered with the cursor
// keys inside a 512x512 canvas.
//
// Usage:
//
//	shooter                        - Run in a window (engo)
//	shooter --renderer terminal    - Run in the terminal (tcell)
//	shooter --renderer null        - Run headless for a fixed number of frames
//	shooter config                 - Print the default configuration
//
// Global flags:
//
//	--config <path>    - JSON or YAML configuration file
//	--log-file <path>  - Write logs to a file instead of stdout
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - steer a ship around a 512x512 canvas",
	Long: `Space Shooter opens a single scene with a starfield background and a
ship near the bottom of the canvas. The cursor keys move the ship; it
stops at the edges of the canvas.

Controls:
  Arrow keys   - Move
  Esc/Q/Ctrl+C - Quit (terminal)

Examples:
  shooter
  shooter --renderer terminal --fps 30
  shooter --config ./shooter.yaml
  shooter --renderer null --frames 120 --hold right,up
  shooter config --format yaml`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a JSON or YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (default from SHOOTER_LOG_LEVEL)")

	rootCmd.Flags().StringVar(&flagRenderer, "renderer", rendererEngo, "Front end: engo, terminal or null")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate (terminal and null)")
	rootCmd.Flags().IntVar(&flagFrames, "frames", 60, "Frames to run (null)")
	rootCmd.Flags().StringVar(&flagHold, "hold", "", "Comma-separated keys held for the whole run (null): left,right,up,down")

	rootCmd.AddCommand(configCmd)
}
