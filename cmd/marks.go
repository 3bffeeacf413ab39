package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/answer-cli/internal/marks"
	"github.com/sells-group/answer-cli/internal/ocr"
)

var (
	marksPDF          string
	marksQuestion     string
	marksQuestionFile string
)

var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "Sum subject marks from the tables of a PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		question, err := readQuestion(cmd.InOrStdin(), marksQuestion, marksQuestionFile)
		if err != nil {
			return err
		}

		extractor, err := ocr.NewExtractor(cfg.OCR)
		if err != nil {
			return err
		}

		answer, err := marks.NewAggregator(extractor).Compute(ctx, marksPDF, question)
		if err != nil {
			return err
		}

		zap.L().Info("marks answered",
			zap.String("pdf", marksPDF),
			zap.String("provider", cfg.OCR.Provider),
			zap.String("answer", answer),
		)
		printAnswer(cmd, answer)
		return nil
	},
}

func init() {
	marksCmd.Flags().StringVar(&marksPDF, "pdf", "", "path to the PDF holding the marks tables (required)")
	_ = marksCmd.MarkFlagRequired("pdf")
	addQuestionFlags(marksCmd, &marksQuestion, &marksQuestionFile)
	rootCmd.AddCommand(marksCmd)
}
