package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"subtext/internal/media"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract embedded subtitle streams from a video file",
	Long: `List or extract the subtitle streams embedded in a video container.

Text streams (SubRip, ASS/SSA, WebVTT, MOV text) are demuxed to standalone
subtitle files; bitmap streams (PGS, DVD subpictures) are listed but cannot
be extracted as text. Requires ffmpeg and ffprobe.

Examples:
  subtext extract movie.mkv --list
  subtext extract movie.mkv
  subtext extract movie.mkv --stream 1 -o german.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		Bool("list", false, "List subtitle streams without extracting")
	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream position to extract (0-based)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !media.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected a video container)", filepath.Ext(mediaPath))
	}

	listOnly, _ := cmd.Flags().GetBool("list")
	position, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")

	streams, err := media.ListSubtitleStreams(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("failed to probe media: %w", err)
	}
	if len(streams) == 0 {
		return fmt.Errorf("no subtitle streams in %s", mediaPath)
	}

	if listOnly {
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Stream", "Codec", "Language", "Title"})
		for _, s := range streams {
			tw.AppendRow(table.Row{s.Position, s.Codec, s.Language, s.Title})
		}
		tw.Render()
		return nil
	}

	if position < 0 || position >= len(streams) {
		return fmt.Errorf("stream %d out of range: file has %d subtitle streams", position, len(streams))
	}
	stream := streams[position]

	if !media.IsTextCodec(stream.Codec) {
		return fmt.Errorf("stream %d is a bitmap codec (%s) and cannot be extracted as text", position, stream.Codec)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		if stream.Language != "" {
			base += "." + stream.Language
		}
		outputPath = base + media.ExtensionForCodec(stream.Codec)
	}

	logger.Infow("Extracting subtitle stream",
		"input", mediaPath,
		"stream", position,
		"codec", stream.Codec,
		"output", outputPath,
	)

	if err := media.ExtractSubtitle(ctx, mediaPath, outputPath, position); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle stream extracted: %s\n", absOutput)

	return nil
}
