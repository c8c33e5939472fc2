package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

func newShareCmd(a *app) *cobra.Command {
	var (
		to      []string
		subject string
		sender  string
		file    string
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Email a summary",
		Long: `Reads a summary from --file (or stdin) and emails it to the --to
recipients. Invalid and duplicate addresses are dropped before sending.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, file)
			if err != nil {
				return fmt.Errorf("read summary: %w", err)
			}

			candidates := splitRecipients(to)
			recipients := a.admission.Admit(candidates)
			if dropped := len(candidates) - len(recipients); dropped > 0 {
				a.logger.Warn("recipients dropped by admission", zap.Int("dropped", dropped))
			}

			result, err := a.dispatcher.Share(cmd.Context(), entities.ShareRequest{
				Recipients: recipients,
				Subject:    subject,
				Summary:    body,
				SenderName: sender,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Summary shared with %d recipient(s)\n", result.Recipients)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&to, "to", "t", nil, "recipient addresses, comma-separated or repeated")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "email subject (default \""+entities.DefaultSubject+"\")")
	cmd.Flags().StringVar(&sender, "sender", "", "sender display name (default \""+entities.DefaultSenderName+"\")")
	cmd.Flags().StringVarP(&file, "file", "f", "", "summary file (default stdin)")
	return cmd
}
