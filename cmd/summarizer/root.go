package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/usecase/share"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/logger"
	"github.com/johnquangdev/meeting-summarizer/pkg/mailer"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

// app carries the services the subcommands run against. Fields left nil are
// built from the environment before the first subcommand runs.
type app struct {
	summarizer summary.Service
	dispatcher share.Service
	admission  *share.Admission
	logger     *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "summarizer",
		Short: "Summarize meeting transcripts and share the summaries by email",
		Long: `summarizer runs the summarize and share operations once from the
command line, using the same configuration as the API server.

Available subcommands:
  summarize - Summarize a transcript read from a file or stdin
  share     - Email a summary to a list of recipients`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(newSummarizeCmd(a), newShareCmd(a))
	return root
}

func (a *app) init() error {
	if a.summarizer != nil && a.dispatcher != nil {
		if a.admission == nil {
			a.admission = share.NewAdmission(nil)
		}
		if a.logger == nil {
			a.logger = zap.NewNop()
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if a.logger == nil {
		a.logger, err = logger.New(cfg.IsDevelopment(), cfg.Log.Level)
		if err != nil {
			return err
		}
	}
	for _, w := range cfg.Warnings() {
		a.logger.Warn("config.warning", zap.String("detail", w))
	}

	if a.summarizer == nil {
		a.summarizer = summary.NewService(pkgai.NewChatClient(cfg.LLM), cfg.LLM, a.logger)
	}
	if a.dispatcher == nil {
		a.dispatcher = share.NewService(mailer.NewSMTPSender(cfg.Mail), share.Options{Timeout: cfg.Mail.Timeout}, a.logger)
	}
	if a.admission == nil {
		a.admission = share.NewAdmission(pkgvalidator.New())
	}
	return nil
}

// readInput returns the content of path, or of stdin when path is empty or "-"
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// splitRecipients flattens repeated and comma-separated --to values
func splitRecipients(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
