package scoring

import (
	"testing"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/questionbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Boundaries(t *testing.T) {
	bands := DefaultBands()

	assert.Equal(t, domain.TierLow, bands.Classify(0))
	assert.Equal(t, domain.TierLow, bands.Classify(29.9))
	assert.Equal(t, domain.TierModerate, bands.Classify(30))
	assert.Equal(t, domain.TierModerate, bands.Classify(59.9))
	assert.Equal(t, domain.TierHigh, bands.Classify(60))
	assert.Equal(t, domain.TierHigh, bands.Classify(70))
	assert.Equal(t, domain.TierHigh, bands.Classify(79.9))
	assert.Equal(t, domain.TierUrgent, bands.Classify(80))
	assert.Equal(t, domain.TierUrgent, bands.Classify(200))
}

func TestClassify_Monotone(t *testing.T) {
	bands := DefaultBands()
	prev := bands.Classify(0)
	for score := 1.0; score <= 120; score++ {
		cur := bands.Classify(score)
		assert.GreaterOrEqual(t, domain.TierRank(cur), domain.TierRank(prev),
			"classification must never decrease as the score grows (score %.0f)", score)
		prev = cur
	}
}

func TestBandsValidate(t *testing.T) {
	assert.NoError(t, DefaultBands().Validate())

	bad := Bands{Moderate: 60, High: 60, Urgent: 80}
	require.Error(t, bad.Validate())

	negative := Bands{Moderate: -1, High: 60, Urgent: 80}
	require.Error(t, negative.Validate())
}

func TestBandsFromConfig(t *testing.T) {
	got := BandsFromConfig(&questionbank.BandsConfig{Moderate: 25, High: 50, Urgent: 75})
	assert.Equal(t, Bands{Moderate: 25, High: 50, Urgent: 75}, got)

	assert.Equal(t, DefaultBands(), BandsFromConfig(nil))
}
