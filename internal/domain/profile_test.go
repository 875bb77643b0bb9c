package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate_Accepts(t *testing.T) {
	p := PatientProfile{Age: 52, Sex: SexMale, Symptoms: []string{"cough", "weight_loss"}}
	assert.NoError(t, p.Validate())
}

func TestProfileValidate_ZeroAge(t *testing.T) {
	p := PatientProfile{Age: 0, Sex: SexFemale}
	assert.NoError(t, p.Validate())
}

func TestProfileValidate_NegativeAge(t *testing.T) {
	p := PatientProfile{Age: -1, Sex: SexFemale}
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "age")
}

func TestProfileValidate_UnknownSex(t *testing.T) {
	p := PatientProfile{Age: 30, Sex: "unknown"}
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestProfileValidate_UnknownSymptomTag(t *testing.T) {
	p := PatientProfile{Age: 30, Sex: SexOther, Symptoms: []string{"sneezing"}}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sneezing")
}

func TestHasSymptom(t *testing.T) {
	p := PatientProfile{Age: 30, Sex: SexFemale, Symptoms: []string{"lump"}}
	assert.True(t, p.HasSymptom("lump"))
	assert.False(t, p.HasSymptom("cough"))
}

func TestTierRank_Ordering(t *testing.T) {
	assert.Less(t, TierRank(TierLow), TierRank(TierModerate))
	assert.Less(t, TierRank(TierModerate), TierRank(TierHigh))
	assert.Less(t, TierRank(TierHigh), TierRank(TierUrgent))
	assert.Equal(t, 0, TierRank(RiskTier("bogus")))
}

func TestCategoryPriority_SymptomsFirst(t *testing.T) {
	assert.Equal(t, 1, CategoryPriority(CategorySymptom))
	assert.Less(t, CategoryPriority(CategoryFamilyHistory), CategoryPriority(CategoryScreening))
	assert.Less(t, CategoryPriority(CategoryScreening), CategoryPriority(CategoryLifestyle))
	assert.Equal(t, 5, CategoryPriority(Category("bogus")))
}
