// Package codegen writes sentiment-analysis client programs for sample text
// embedded in a question.
package codegen

import (
	"bytes"
	"embed"
	"regexp"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/answer-cli/internal/config"
)

// ErrorAnswer is returned by Generate when the question carries no sample text.
const ErrorAnswer = `{"answer": "Error: Could not extract the meaningless text."}`

//go:embed templates/*.tmpl
var templateFS embed.FS

var sampleRe = regexp.MustCompile(`(?i)One of the test cases involves sending a sample piece of meaningless text:\s*([\s\S]+?)\s*Write a Python program`)

// Options are the request values baked into generated programs.
type Options struct {
	APIURL       string
	Model        string
	SystemPrompt string
}

// DefaultOptions returns the stock chat-completions request values.
func DefaultOptions() Options {
	return Options{
		APIURL:       "https://api.openai.com/v1/chat/completions",
		Model:        "gpt-4o-mini",
		SystemPrompt: "Analyze the sentiment of the given text and classify it as GOOD, BAD, or NEUTRAL.",
	}
}

// OptionsFromConfig fills unset config values from DefaultOptions.
func OptionsFromConfig(cfg config.CodegenConfig) Options {
	opts := DefaultOptions()
	if cfg.APIURL != "" {
		opts.APIURL = cfg.APIURL
	}
	if cfg.Model != "" {
		opts.Model = cfg.Model
	}
	if cfg.SystemPrompt != "" {
		opts.SystemPrompt = cfg.SystemPrompt
	}
	return opts
}

// Generator renders sentiment client programs.
type Generator struct {
	opts Options
	tmpl *template.Template
}

// NewGenerator parses the embedded program template.
func NewGenerator(opts Options) (*Generator, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/sentiment.py.tmpl")
	if err != nil {
		return nil, eris.Wrap(err, "codegen: parse template")
	}
	return &Generator{opts: opts, tmpl: tmpl}, nil
}

// ExtractSample returns the trimmed text between the sample marker and the
// "Write a Python program" instruction.
func ExtractSample(question string) (string, bool) {
	m := sampleRe.FindStringSubmatch(question)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Generate returns program text posting the question's sample text to the
// configured API, or ErrorAnswer when no sample is found. The sample is
// inserted verbatim, without escaping.
func (g *Generator) Generate(question string) (string, error) {
	text, ok := ExtractSample(question)
	if !ok {
		return ErrorAnswer, nil
	}

	var buf bytes.Buffer
	err := g.tmpl.Execute(&buf, struct {
		Options
		Text string
	}{g.opts, text})
	if err != nil {
		return "", eris.Wrap(err, "codegen: execute template")
	}
	return buf.String(), nil
}

var defaultGenerator = mustGenerator(DefaultOptions())

func mustGenerator(opts Options) *Generator {
	g, err := NewGenerator(opts)
	if err != nil {
		panic(err)
	}
	return g
}

// Generate renders with DefaultOptions. A rendering failure is logged and
// reported as ErrorAnswer.
func Generate(question string) string {
	out, err := defaultGenerator.Generate(question)
	if err != nil {
		zap.L().Error("codegen: generate program", zap.Error(err))
		return ErrorAnswer
	}
	return out
}
