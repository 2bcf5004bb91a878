package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askvidya/vidya/internal/resolve"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question through the pipeline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		contextFile, _ := cmd.Flags().GetString("context-file")
		languageHint, _ := cmd.Flags().GetString("language")
		noClassify, _ := cmd.Flags().GetBool("no-classify")
		showSource, _ := cmd.Flags().GetBool("source")

		opts := resolve.Options{
			Language:     languageHint,
			SkipClassify: noClassify,
		}
		if contextFile != "" {
			data, err := os.ReadFile(contextFile)
			if err != nil {
				return fmt.Errorf("read context file: %w", err)
			}
			opts.Context = string(data)
		}

		p, err := buildPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		res := p.resolver.Resolve(cmd.Context(), question, opts)

		fmt.Println(resolve.Format(res))
		if showSource && res.Source != "" {
			fmt.Printf("\n(source: %s, category: %s, language: %s)\n", res.Source, res.Category, res.Language)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("context-file", "", "File whose contents are passed as question context")
	askCmd.Flags().String("language", "", "Answer language hint, e.g. \"Hindi\" (default: detected)")
	askCmd.Flags().Bool("no-classify", false, "Skip math classification and answer as a general question")
	askCmd.Flags().Bool("source", false, "Print the answering stage after the answer")
}
