package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/answer-cli/internal/sales"
)

var (
	salesData         string
	salesQuestion     string
	salesQuestionFile string
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Sum units sold in a city from a sales log",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		question, err := readQuestion(cmd.InOrStdin(), salesQuestion, salesQuestionFile)
		if err != nil {
			return err
		}

		answer, err := sales.NewAggregator(cfg.Sales).Compute(ctx, salesData, question)
		if err != nil {
			return err
		}

		zap.L().Info("sales answered",
			zap.String("data", salesData),
			zap.String("answer", answer),
		)
		printAnswer(cmd, answer)
		return nil
	},
}

func init() {
	salesCmd.Flags().StringVar(&salesData, "data", "", "path to the sales log: JSON, CSV or XLSX (required)")
	_ = salesCmd.MarkFlagRequired("data")
	addQuestionFlags(salesCmd, &salesQuestion, &salesQuestionFile)
	rootCmd.AddCommand(salesCmd)
}
