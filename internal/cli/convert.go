package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file to another format",
	Long: `Convert a subtitle file to SRT, VTT, or ASS.

Any of the fifteen supported dialects can be read; the input format is
picked from the file extension. Entries can be re-timed with --shift and
re-flowed to standard caption width with --wrap on the way through.

Examples:
  subtext convert episode.ssa
  subtext convert lyrics.lrc --format vtt
  subtext convert captions.scc -f srt --framerate 29.97
  subtext convert movie.srt --shift 1.5s -o fixed.srt
  subtext convert transcript.sbv --wrap`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt, ass)")
	convertCmd.Flags().
		Duration("shift", 0, "Shift all entries by a duration (e.g. 1.5s, -500ms)")
	convertCmd.Flags().
		Bool("wrap", false, "Rewrap caption text to standard line length")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	shift, _ := cmd.Flags().GetDuration("shift")
	wrap, _ := cmd.Flags().GetBool("wrap")
	outputPath, _ := cmd.Flags().GetString("output")

	format, ok := subtitle.FormatForExtension(formatStr)
	if !ok {
		return fmt.Errorf("unsupported format %q: use srt, vtt, or ass", formatStr)
	}

	track, err := subtitle.LoadFile(inputPath, parseOptions(cmd))
	if err != nil {
		return err
	}

	logger.Infow("Loaded subtitle file",
		"input", inputPath,
		"format", track.Format(),
		"entries", track.Len(),
		"duration", track.TotalDuration().String(),
	)
	warnOverlaps(track)

	if shift != 0 {
		track = track.Shifted(shift)
		logger.Infow("Shifted entries",
			"by", shift.String(),
			"remaining", track.Len(),
		)
	}
	if wrap {
		track = subtitle.NewWrapper().Rewrap(track)
		logger.Infow("Rewrapped entries",
			"entries", track.Len(),
		)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, formatStr)
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(track, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Converted successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", track.Len())
	fmt.Printf("  Duration: %s\n", track.TotalDuration().String())

	return nil
}

// defaultOutputPath swaps the input extension for the target one.
func defaultOutputPath(inputPath, ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + ext
}
