package formatter

import (
	"testing"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatBank(t *testing.T) {
	questions := []domain.QuestionDefinition{
		{
			ID:       "lump",
			Category: domain.CategorySymptom,
			Kind:     domain.AnswerBool,
			Weights:  map[string]float64{"yes": 40, "no": 0},
		},
		{
			ID:       "smoking",
			Category: domain.CategoryLifestyle,
			Kind:     domain.AnswerChoice,
			Weights:  map[string]float64{"never": 0, "former": 8, "current": 15},
		},
	}

	out := FormatBank(questions)
	assert.Contains(t, out, "MAX PTS")
	assert.Contains(t, out, "lump")
	assert.Contains(t, out, "40")
	assert.Contains(t, out, "smoking")
	assert.Contains(t, out, "15")
}
