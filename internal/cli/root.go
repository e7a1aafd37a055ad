package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"subtext/internal/config"
	"subtext/internal/logging"
	"subtext/internal/subtitle"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "subtext",
	Short: "Subtitle parsing and conversion toolkit",
	Long: `Subtext reads subtitle files in fifteen dialects (SRT, WebVTT, LRC,
SSA/ASS, SBV, TTML, SCC, MicroDVD, SAMI, EBU-STL, TTXT, MPL2, TMPlayer,
Adobe Encore, Transtation) into one canonical track that can be
inspected, re-timed, converted, and exported as playback keyframes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger = logging.NewLoggerWithFile(verbose || cfg.Logging.Verbose, cfg.Logging.File)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default ~/.config/subtext/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		Float64("framerate", 0, "Framerate for frame-based formats (0 = format default)")
	rootCmd.PersistentFlags().
		Bool("keep-html", false, "Keep HTML markup in subtitle text")
	rootCmd.PersistentFlags().
		Bool("keep-ass", false, "Keep ASS override tags in subtitle text")
}

// parseOptions merges config-file defaults with command-line overrides.
func parseOptions(cmd *cobra.Command) subtitle.Options {
	opts := cfg.Options()
	if cmd.Flags().Changed("framerate") {
		opts.FrameRate, _ = cmd.Flags().GetFloat64("framerate")
	}
	if cmd.Flags().Changed("keep-html") {
		opts.KeepHTML, _ = cmd.Flags().GetBool("keep-html")
	}
	if cmd.Flags().Changed("keep-ass") {
		opts.KeepASS, _ = cmd.Flags().GetBool("keep-ass")
	}
	return opts
}

// warnOverlaps surfaces the track's overlap diagnostics without failing
// the command.
func warnOverlaps(track *subtitle.Track) {
	if track.OverlapCount() == 0 {
		return
	}
	for _, o := range track.Overlaps() {
		logger.Warnw("Overlapping captions",
			"first", o.IndexA,
			"second", o.IndexB,
			"overlap", o.Duration.String(),
		)
	}
	if extra := track.OverlapCount() - len(track.Overlaps()); extra > 0 {
		logger.Warnw("Further overlaps not listed", "count", extra)
	}
}

// formatClock renders a duration as hh:mm:ss.mmm for display.
func formatClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
