package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var (
		file   string
		prompt string
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a transcript",
		Long: `Reads a transcript from --file (or stdin) and prints the model's summary.
An optional --prompt replaces the default summarization instruction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := readInput(cmd, file)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			result, err := a.summarizer.Summarize(cmd.Context(), entities.SummaryRequest{
				Transcript:        transcript,
				CustomInstruction: prompt,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "transcript file (default stdin)")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "custom summarization instruction")
	return cmd
}
