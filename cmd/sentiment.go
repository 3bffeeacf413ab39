package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/answer-cli/internal/codegen"
	"github.com/sells-group/answer-cli/pkg/anthropic"
)

var (
	sentimentQuestion     string
	sentimentQuestionFile string
	sentimentClassify     bool
)

// newClassifierClient is replaced in tests.
var newClassifierClient = func(key string) anthropic.Client {
	return anthropic.NewClient(key)
}

var sentimentCmd = &cobra.Command{
	Use:   "sentiment-code",
	Short: "Generate a Python program that classifies the sample text in a question",
	RunE: func(cmd *cobra.Command, _ []string) error {
		question, err := readQuestion(cmd.InOrStdin(), sentimentQuestion, sentimentQuestionFile)
		if err != nil {
			return err
		}

		gen, err := codegen.NewGenerator(codegen.OptionsFromConfig(cfg.Codegen))
		if err != nil {
			return eris.Wrap(err, "sentiment-code: build generator")
		}
		program, err := gen.Generate(question)
		if err != nil {
			return err
		}
		printAnswer(cmd, program)

		if !sentimentClassify {
			return nil
		}

		sample, ok := codegen.ExtractSample(question)
		if !ok {
			zap.L().Warn("sentiment-code: nothing to classify")
			return nil
		}
		if cfg.Anthropic.Key == "" {
			return eris.New("anthropic key is required for --classify (ANSWER_ANTHROPIC_KEY)")
		}

		classifier := codegen.NewClassifier(
			newClassifierClient(cfg.Anthropic.Key),
			cfg.Anthropic.Model,
			cfg.Anthropic.MaxTokens,
			cfg.Codegen.SystemPrompt,
		)
		label, err := classifier.Classify(cmd.Context(), sample)
		if err != nil {
			return err
		}
		printAnswer(cmd, label)
		return nil
	},
}

func init() {
	addQuestionFlags(sentimentCmd, &sentimentQuestion, &sentimentQuestionFile)
	sentimentCmd.Flags().BoolVar(&sentimentClassify, "classify", false, "also classify the sample text with Claude")
	rootCmd.AddCommand(sentimentCmd)
}
