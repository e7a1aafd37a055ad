package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subtext/internal/subtitle"
)

var keyframesCmd = &cobra.Command{
	Use:   "keyframes [subtitle_file]",
	Short: "Export a subtitle file as JSON keyframes",
	Long: `Flatten a subtitle file into discrete keyframes: the text is set at
each entry's start and cleared at its end, producing the hand-off format
timeline tools consume. Times are seconds.

Examples:
  subtext keyframes episode.srt
  subtext keyframes lyrics.lrc --pretty -o lyrics.json`,
	Args: cobra.ExactArgs(1),
	RunE: runKeyframes,
}

func init() {
	rootCmd.AddCommand(keyframesCmd)

	keyframesCmd.Flags().
		Bool("pretty", false, "Indent the JSON output")
}

// serialized keyframe shape
type keyframeJSON struct {
	At   float64 `json:"at"`
	Text string  `json:"text"`
}

func runKeyframes(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	pretty, _ := cmd.Flags().GetBool("pretty")

	track, err := subtitle.LoadFile(inputPath, parseOptions(cmd))
	if err != nil {
		return err
	}
	warnOverlaps(track)

	frames, err := track.Keyframes()
	if err != nil {
		return err
	}

	out := make([]keyframeJSON, 0, len(frames))
	for _, f := range frames {
		out = append(out, keyframeJSON{At: f.At.Seconds(), Text: f.Text})
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("failed to encode keyframes: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write keyframes: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Keyframes written: %s (%d frames)\n", absOutput, len(out))

	return nil
}
