package narrative

import (
	"testing"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFallbackNarrative_TierOpenings(t *testing.T) {
	tests := []struct {
		tier domain.RiskTier
		want string
	}{
		{domain.TierLow, "low range"},
		{domain.TierModerate, "moderate range"},
		{domain.TierHigh, "high range"},
		{domain.TierUrgent, "urgent range"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			got := fallbackNarrative(Summary{Tier: tt.tier, Score: 50, WindowDays: 14, Specialist: domain.SpecialistOncology}, "")
			assert.Contains(t, got.Text, tt.want)
			assert.Equal(t, SourceFallback, got.Source)
		})
	}
}

func TestFallbackNarrative_UrgentGetsEmergencySentence(t *testing.T) {
	urgent := fallbackNarrative(Summary{Tier: domain.TierUrgent, Score: 85, WindowDays: 1, Specialist: domain.SpecialistOncology}, "")
	assert.Contains(t, urgent.Text, "emergency care")
	assert.Contains(t, urgent.Text, "within 24 hours")

	high := fallbackNarrative(Summary{Tier: domain.TierHigh, Score: 65, WindowDays: 14, Specialist: domain.SpecialistOncology}, "")
	assert.NotContains(t, high.Text, "emergency care")
}

func TestFallbackNarrative_PartialCaveat(t *testing.T) {
	got := fallbackNarrative(Summary{Tier: domain.TierModerate, Score: 40, Partial: true, WindowDays: 90, Specialist: domain.SpecialistPrimaryCare}, "")
	assert.Contains(t, got.Text, "not completed")
	assert.Contains(t, got.Text, "may understate risk")
}

func TestFallbackNarrative_ContributionsHumanized(t *testing.T) {
	got := fallbackNarrative(Summary{
		Tier:       domain.TierHigh,
		Score:      70,
		WindowDays: 14,
		Specialist: domain.SpecialistOncology,
		Contributions: []domain.ContributionEntry{
			{QuestionID: "unusual-lumps", Points: 40},
			{QuestionID: "family-history", Points: 30},
			{QuestionID: "smoking-status", Points: 0},
		},
	}, "")

	assert.Contains(t, got.Text, "unusual lumps and family history")
	assert.NotContains(t, got.Text, "smoking", "zero-point answers are not named as factors")
}

func TestFallbackNarrative_ConsultWindows(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{1, "within 24 hours"},
		{14, "within 14 days"},
		{90, "within the next 3 months"},
		{365, "next routine visit"},
	}

	for _, tt := range tests {
		got := fallbackNarrative(Summary{Tier: domain.TierLow, WindowDays: tt.days, Specialist: domain.SpecialistPrimaryCare}, "")
		assert.Contains(t, got.Text, tt.want)
	}
}

func TestFallbackNarrative_CarriesNotice(t *testing.T) {
	got := fallbackNarrative(Summary{Tier: domain.TierLow, WindowDays: 365, Specialist: domain.SpecialistPrimaryCare}, "assistant offline")
	assert.Equal(t, "assistant offline", got.Notice)
}
