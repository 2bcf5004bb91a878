package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/askvidya/vidya/internal/resolve"
)

var videoCmd = &cobra.Command{
	Use:   "video <video-id>",
	Short: "Ask about or summarize a video from its transcript",
	Long: "Answers a question about a video, or summarizes it when no question is\n" +
		"given. The transcript is read from --transcript (use \"-\" for stdin).\n" +
		"Answers are cached per video and question.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]
		question, _ := cmd.Flags().GetString("question")
		transcriptPath, _ := cmd.Flags().GetString("transcript")

		transcript, err := readTranscript(transcriptPath)
		if err != nil {
			return err
		}

		p, err := buildPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		res := p.resolver.ResolveVideo(cmd.Context(), videoID, question, transcript)
		fmt.Println(resolve.Format(res))
		return nil
	},
}

func readTranscript(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read transcript from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript file: %w", err)
	}
	return string(data), nil
}

func init() {
	videoCmd.Flags().StringP("question", "q", "", "Question about the video (default: summarize)")
	videoCmd.Flags().StringP("transcript", "t", "", "Transcript file, or \"-\" for stdin")
}
