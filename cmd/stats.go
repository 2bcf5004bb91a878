package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askvidya/vidya/internal/llm"
	"github.com/askvidya/vidya/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show resolution and model usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		if err := printResolutionStats(ctx, repo); err != nil {
			return err
		}
		return printUsageStats(ctx, repo)
	},
}

func printResolutionStats(ctx context.Context, repo store.EventRepo) error {
	sources, err := repo.ResolutionsBySource(ctx)
	if err != nil {
		return fmt.Errorf("query resolutions: %w", err)
	}

	if len(sources) == 0 {
		fmt.Println("No resolutions recorded yet.")
		return nil
	}

	fmt.Println("Resolutions by Source")
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("%-10s  %8s  %10s  %8s  %8s\n", "Source", "Total", "Succeeded", "Rate", "Avg Ms")
	fmt.Println(strings.Repeat("─", 56))

	var total, succeeded int
	for _, u := range sources {
		rate := 0.0
		if u.Total > 0 {
			rate = float64(u.Succeeded) / float64(u.Total) * 100
		}
		source := u.Source
		if source == "" {
			source = "(none)"
		}
		fmt.Printf("%-10s  %8d  %10d  %7.1f%%  %8d\n", source, u.Total, u.Succeeded, rate, u.AvgLatencyMs)
		total += u.Total
		succeeded += u.Succeeded
	}
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("%-10s  %8d  %10d\n", "TOTAL", total, succeeded)
	return nil
}

func printUsageStats(ctx context.Context, repo store.EventRepo) error {
	purposes, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		return fmt.Errorf("query usage: %w", err)
	}
	if len(purposes) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Model Usage by Purpose")
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	fmt.Println(strings.Repeat("─", 72))

	var totalCalls, totalIn, totalOut int
	for _, u := range purposes {
		fmt.Printf("%-16s  %6d  %10d  %10d  %10d  %8d\n",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		totalCalls += u.Calls
		totalIn += u.InputTokens
		totalOut += u.OutputTokens
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n",
		"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		return fmt.Errorf("query model usage: %w", err)
	}
	if len(models) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Estimated Cost by Model")
	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("%-32s  %6s  %10s  %10s\n", "Model", "Calls", "Tokens", "Cost")
	fmt.Println(strings.Repeat("─", 64))

	var totalCost float64
	for _, u := range models {
		costStr := "n/a"
		if mc := llm.LookupCost(u.Model); mc != nil {
			cost := mc.Cost(u.InputTokens, u.OutputTokens)
			totalCost += cost
			costStr = fmt.Sprintf("$%.4f", cost)
		}
		model := u.Model
		if len(model) > 32 {
			model = model[:32]
		}
		fmt.Printf("%-32s  %6d  %10d  %10s\n", model, u.Calls, u.InputTokens+u.OutputTokens, costStr)
	}
	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("%-32s  %6s  %10s  %9s$%.4f\n", "TOTAL", "", "", "", totalCost)
	return nil
}
