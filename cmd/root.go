package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/askvidya/vidya/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vidya",
	Short: "Tiered study-question answering for students",
	Long: "Vidya answers study questions through a tiered pipeline: learned answers,\n" +
		"a curated dataset, symbolic solvers, and a generative AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event database (overrides VIDYA_DB env var)")
	rootCmd.PersistentFlags().String("dataset", "", "Path to the dataset directory (overrides VIDYA_DATASET env var)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then VIDYA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDatasetPath returns the dataset root using --dataset flag, then
// VIDYA_DATASET env var. Empty means no dataset, which is valid.
func resolveDatasetPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("dataset"); p != "" {
		return p
	}
	return os.Getenv("VIDYA_DATASET")
}
