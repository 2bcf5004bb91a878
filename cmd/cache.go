package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/askvidya/vidya/internal/memory"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear the answer caches",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnedPath, videoPath, err := cachePaths()
		if err != nil {
			return err
		}

		learned := memory.NewLearnedStore(learnedPath).All()
		fmt.Printf("Learned answers (%d)\n", len(learned))
		fmt.Println(strings.Repeat("─", 72))
		for _, qa := range learned {
			fmt.Printf("%-19s  [%s]  %s\n",
				time.UnixMilli(qa.LearnedAt).Local().Format("2006-01-02 15:04:05"),
				qa.Source,
				truncate(qa.Question, 44))
		}

		videos := memory.NewVideoStore(videoPath).All()
		fmt.Printf("\nVideo answers (%d)\n", len(videos))
		fmt.Println(strings.Repeat("─", 72))
		for _, va := range videos {
			q := va.Question
			if q == "" {
				q = memory.SummaryKey
			}
			fmt.Printf("%-19s  %-14s  %s\n",
				time.UnixMilli(va.SavedAt).Local().Format("2006-01-02 15:04:05"),
				truncate(va.VideoID, 14),
				truncate(q, 36))
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		learnedPath, videoPath, err := cachePaths()
		if err != nil {
			return err
		}

		switch kind {
		case "learned":
			if err := memory.NewLearnedStore(learnedPath).Clear(); err != nil {
				return fmt.Errorf("clear learned cache: %w", err)
			}
			fmt.Println("Learned cache cleared.")
		case "video":
			if err := memory.NewVideoStore(videoPath).Clear(); err != nil {
				return fmt.Errorf("clear video cache: %w", err)
			}
			fmt.Println("Video cache cleared.")
		case "all":
			if err := memory.NewLearnedStore(learnedPath).Clear(); err != nil {
				return fmt.Errorf("clear learned cache: %w", err)
			}
			if err := memory.NewVideoStore(videoPath).Clear(); err != nil {
				return fmt.Errorf("clear video cache: %w", err)
			}
			fmt.Println("All caches cleared.")
		default:
			return fmt.Errorf("unknown cache kind %q (want learned, video or all)", kind)
		}
		return nil
	},
}

// truncate shortens s to at most n runes so multibyte text is never
// cut mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func init() {
	cacheClearCmd.Flags().String("kind", "all", "Which cache to clear: learned, video or all")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
