package codegen

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuestion = `DataSentinel Inc. is a tech company building a sentiment service.
One of the test cases involves sending a sample piece of meaningless text:

  3K9 q XOxWv  aY4 Vs8Lp
  V7 HzN

Write a Python program that uses httpx to send a POST request.`

func TestExtractSample(t *testing.T) {
	text, ok := ExtractSample(sampleQuestion)
	require.True(t, ok)
	assert.Equal(t, "3K9 q XOxWv  aY4 Vs8Lp\n  V7 HzN", text)
}

func TestExtractSample_CaseInsensitive(t *testing.T) {
	text, ok := ExtractSample("ONE OF THE TEST CASES INVOLVES SENDING A SAMPLE PIECE OF MEANINGLESS TEXT: abc WRITE A PYTHON PROGRAM")
	require.True(t, ok)
	assert.Equal(t, "abc", text)
}

func TestGenerate(t *testing.T) {
	code := Generate(sampleQuestion)

	assert.True(t, strings.HasPrefix(code, "\nimport httpx\n"))
	assert.Contains(t, code, `url = "https://api.openai.com/v1/chat/completions"`)
	assert.Contains(t, code, `"Authorization": "Bearer dummy_api_key"`)
	assert.Contains(t, code, `"model": "gpt-4o-mini"`)
	assert.Contains(t, code, `{"role": "system", "content": "Analyze the sentiment of the given text and classify it as GOOD, BAD, or NEUTRAL."}`)
	assert.Contains(t, code, "{\"role\": \"user\", \"content\": \"\"\"3K9 q XOxWv  aY4 Vs8Lp\n  V7 HzN\"\"\"}")
	assert.Contains(t, code, "response.raise_for_status()")
}

func TestGenerate_TextIsNotEscaped(t *testing.T) {
	q := `One of the test cases involves sending a sample piece of meaningless text: a "quoted" <b>&amp; """x Write a Python program`

	code := Generate(q)
	assert.Contains(t, code, `"""a "quoted" <b>&amp; """x"""`)
}

func TestGenerate_MissingMarkers(t *testing.T) {
	for _, q := range []string{
		"",
		"Write a Python program that prints hello.",
		"One of the test cases involves sending a sample piece of meaningless text: abc",
	} {
		assert.Equal(t, ErrorAnswer, Generate(q), q)
	}
	assert.Equal(t, `{"answer": "Error: Could not extract the meaningless text."}`, ErrorAnswer)
}

func TestGenerator_CustomOptions(t *testing.T) {
	g, err := NewGenerator(Options{
		APIURL:       "https://proxy.example.com/v1/chat/completions",
		Model:        "gpt-4.1-nano",
		SystemPrompt: "Classify sentiment.",
	})
	require.NoError(t, err)

	code, err := g.Generate(sampleQuestion)
	require.NoError(t, err)
	assert.Contains(t, code, `url = "https://proxy.example.com/v1/chat/completions"`)
	assert.Contains(t, code, `"model": "gpt-4.1-nano"`)
	assert.Contains(t, code, `"content": "Classify sentiment."`)
}

func TestGenerator_NoSample(t *testing.T) {
	g, err := NewGenerator(DefaultOptions())
	require.NoError(t, err)

	code, err := g.Generate("Write a Python program.")
	require.NoError(t, err)
	assert.Equal(t, ErrorAnswer, code)
}

func TestGenerator_ExecuteErrorIsReturned(t *testing.T) {
	g := &Generator{
		opts: DefaultOptions(),
		tmpl: template.Must(template.New("broken").Parse("{{.Missing}}")),
	}

	assert.NotPanics(t, func() {
		_, err := g.Generate(sampleQuestion)
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "codegen: execute template")
		}
	})
}
