package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askvidya/vidya/internal/dataset"
	"github.com/askvidya/vidya/internal/resolve"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and query the curated dataset",
}

var datasetSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the dataset the way the pipeline does",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(resolveDatasetPath(cmd))
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		hit := ds.Search(strings.Join(args, " "))
		if !hit.Found {
			fmt.Println("No match.")
			return nil
		}
		fmt.Println(resolve.Format(hit))
		return nil
	},
}

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show loaded dataset counts per class",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(resolveDatasetPath(cmd))
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		entries := ds.Entries()
		if len(entries) == 0 {
			fmt.Println("No dataset loaded. Set --dataset or VIDYA_DATASET.")
			return nil
		}

		fmt.Printf("%d documents\n", len(entries))
		fmt.Println(strings.Repeat("─", 48))

		// Entries keep load order, so class changes mark group edges.
		current := ""
		count := 0
		flush := func() {
			if current != "" {
				fmt.Printf("Class %-6s  %d documents\n", current, count)
			}
		}
		for _, e := range entries {
			if e.Class != current {
				flush()
				current = e.Class
				count = 0
			}
			count++
		}
		flush()
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetSearchCmd)
	datasetCmd.AddCommand(datasetStatsCmd)
}
