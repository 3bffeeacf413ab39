package codegen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/answer-cli/pkg/anthropic"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
		Usage:   anthropic.TokenUsage{InputTokens: 30, OutputTokens: 1},
	}
}

func TestClassify(t *testing.T) {
	client := &mockClient{}
	client.On("CreateMessage", mock.Anything, mock.MatchedBy(func(req anthropic.MessageRequest) bool {
		return req.Model == "claude-haiku-4-5-20251001" &&
			req.MaxTokens == 16 &&
			len(req.System) == 1 &&
			req.System[0].Text == "Classify. Reply with exactly one word." &&
			len(req.Messages) == 1 &&
			req.Messages[0].Content == "qz fl wb" &&
			req.Temperature != nil && *req.Temperature == 0
	})).Return(textResponse(" neutral.\n"), nil)

	c := NewClassifier(client, "claude-haiku-4-5-20251001", 16, "Classify.")
	label, err := c.Classify(context.Background(), "qz fl wb")
	require.NoError(t, err)
	assert.Equal(t, Neutral, label)
	client.AssertExpectations(t)
}

func TestClassify_DefaultMaxTokens(t *testing.T) {
	client := &mockClient{}
	client.On("CreateMessage", mock.Anything, mock.MatchedBy(func(req anthropic.MessageRequest) bool {
		return req.MaxTokens == 16
	})).Return(textResponse("GOOD"), nil)

	label, err := NewClassifier(client, "m", 0, "p").Classify(context.Background(), "great")
	require.NoError(t, err)
	assert.Equal(t, Good, label)
}

func TestClassify_UnexpectedReply(t *testing.T) {
	client := &mockClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse("It is probably bad"), nil)

	_, err := NewClassifier(client, "m", 16, "p").Classify(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected sentiment reply")
}

func TestClassify_ClientError(t *testing.T) {
	client := &mockClient{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, errors.New("overloaded"))

	_, err := NewClassifier(client, "m", 16, "p").Classify(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codegen: classify sentiment")
	assert.Contains(t, err.Error(), "overloaded")
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		reply string
		want  string
		ok    bool
	}{
		{"GOOD", Good, true},
		{"bad", Bad, true},
		{"\"Neutral\"", Neutral, true},
		{"", "", false},
		{"GOOD BAD", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			got, ok := parseLabel(tt.reply)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
