package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"subtext/internal/subtitle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Show the parsed contents of a subtitle file",
	Long: `Parse a subtitle file and print its entries as a table, along with
format, entry count, total duration, and any overlap diagnostics.

With --at, print only the caption active at the given playback time.

Examples:
  subtext inspect episode.srt
  subtext inspect captions.vtt --limit 20
  subtext inspect movie.ass --at 1m30.5s`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		String("at", "", "Print the caption active at a playback time (e.g. 90s, 1m30s)")
	inspectCmd.Flags().
		Int("limit", 0, "Show at most N entries (0 = all)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	atStr, _ := cmd.Flags().GetString("at")
	limit, _ := cmd.Flags().GetInt("limit")

	track, err := subtitle.LoadFile(inputPath, parseOptions(cmd))
	if err != nil {
		return err
	}
	warnOverlaps(track)

	if atStr != "" {
		at, err := time.ParseDuration(atStr)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: %w", atStr, err)
		}
		return printActiveAt(track, at)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "End", "Text"})

	shown := 0
	for i, entry := range track.All() {
		if limit > 0 && shown >= limit {
			break
		}
		tw.AppendRow(table.Row{
			i + 1,
			formatClock(entry.StartTime),
			formatClock(entry.EndTime),
			entry.Text,
		})
		shown++
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: 60},
	})
	tw.Render()

	if limit > 0 && track.Len() > limit {
		fmt.Printf("(%d more entries not shown)\n", track.Len()-limit)
	}

	fmt.Printf("\nFormat: %s\n", track.Format())
	fmt.Printf("Entries: %d\n", track.Len())
	fmt.Printf("Duration: %s\n", formatClock(track.TotalDuration()))
	if track.OverlapCount() > 0 {
		fmt.Printf("Overlaps beyond tolerance: %d\n", track.OverlapCount())
	}

	return nil
}

func printActiveAt(track *subtitle.Track, at time.Duration) error {
	idx := track.IndexAt(at)
	if idx < 0 {
		fmt.Printf("No caption active at %s\n", formatClock(at))
		return nil
	}

	entry, err := track.Entry(idx)
	if err != nil {
		return err
	}

	fmt.Printf("#%d [%s - %s]\n%s\n",
		idx+1,
		formatClock(entry.StartTime),
		formatClock(entry.EndTime),
		entry.Text,
	)
	return nil
}
