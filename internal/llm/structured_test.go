package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Summary string  `json:"summary"`
	Score   float64 `json:"score"`
}

func TestExtractJSON_Plain(t *testing.T) {
	got, err := ExtractJSON[testPayload](`{"summary": "ok", "score": 0.5}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Summary)
	assert.Equal(t, 0.5, got.Score)
}

func TestExtractJSON_MarkdownFences(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"summary\": \"fenced\"}\n```\nHope that helps!"
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "fenced", got.Summary)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Sure! The object you asked for is {"summary": "embedded", "score": 1} and nothing else.`
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "embedded", got.Summary)
}

func TestExtractJSON_LineComments(t *testing.T) {
	raw := `{
		// the headline
		"summary": "commented",
		"score": 2 /* out of bounds but parseable */
	}`
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "commented", got.Summary)
}

func TestExtractJSON_CommentMarkersInsideStrings(t *testing.T) {
	raw := `{"summary": "https://example.com/path // not a comment"}`
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path // not a comment", got.Summary)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[testPayload]("I could not produce any JSON, sorry.", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"summary": "never closes`, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p testPayload) error {
		if p.Summary == "" {
			return errors.New("summary required")
		}
		return nil
	}

	_, err := ExtractJSON[testPayload](`{"score": 1}`, validator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))

	got, err := ExtractJSON[testPayload](`{"summary": "ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Summary)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Outer map[string]any `json:"outer"`
	}
	raw := `prefix {"outer": {"inner": {"deep": true}}} suffix`
	got, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	require.Contains(t, got.Outer, "inner")
}
