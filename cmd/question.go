package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

// addQuestionFlags registers --question and --question-file on cmd.
func addQuestionFlags(cmd *cobra.Command, question, questionFile *string) {
	cmd.Flags().StringVar(question, "question", "", "question text")
	cmd.Flags().StringVar(questionFile, "question-file", "", "path to a file holding the question (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("question", "question-file")
}

// readQuestion returns the question from the flag value or the named file.
func readQuestion(in io.Reader, question, questionFile string) (string, error) {
	if question != "" {
		return question, nil
	}
	if questionFile == "" {
		return "", eris.New("one of --question or --question-file is required")
	}

	var (
		data []byte
		err  error
	)
	if questionFile == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(questionFile)
	}
	if err != nil {
		return "", eris.Wrapf(err, "read question file %s", questionFile)
	}

	q := strings.TrimSpace(string(data))
	if q == "" {
		return "", eris.Errorf("question file %s is empty", questionFile)
	}
	return q, nil
}

func printAnswer(cmd *cobra.Command, answer string) {
	fmt.Fprintln(cmd.OutOrStdout(), answer)
}
