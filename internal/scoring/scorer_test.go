package scoring

import (
	"errors"
	"testing"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/engine"
	"github.com/alexanderramin/iaso/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerAll runs a session through the screening bank with the given values.
func answerAll(t *testing.T, m *engine.Machine, values map[string]string) *domain.AssessmentSession {
	t.Helper()
	sess, err := m.Start(testutil.NewTestProfile())
	require.NoError(t, err)
	for sess.State == domain.SessionActive {
		q, ok := m.Pending(sess)
		require.True(t, ok)
		require.NoError(t, m.SubmitAnswer(sess, q.ID, values[q.ID]))
	}
	return sess
}

func TestScore_SumsContributions(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	sess := answerAll(t, m, map[string]string{
		"lump": "yes", "family-history": "yes", "smoking": "no",
	})

	score, contributions := Score(sess, bank)
	assert.Equal(t, 70.0, score)
	require.Len(t, contributions, 3)

	// Ordered by descending points.
	assert.Equal(t, "lump", contributions[0].QuestionID)
	assert.Equal(t, 40.0, contributions[0].Points)
	assert.Equal(t, "family-history", contributions[1].QuestionID)
	assert.Equal(t, 30.0, contributions[1].Points)
	assert.Equal(t, "smoking", contributions[2].QuestionID)
	assert.Equal(t, 0.0, contributions[2].Points)
}

func TestScore_AllNegativeAnswersScoreZero(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	sess := answerAll(t, m, map[string]string{
		"lump": "no", "family-history": "no", "smoking": "no",
	})

	score, _ := Score(sess, bank)
	assert.Equal(t, 0.0, score)
}

func TestScore_Deterministic(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)
	values := map[string]string{"lump": "yes", "family-history": "no", "smoking": "yes"}

	first := answerAll(t, m, values)
	second := answerAll(t, m, values)

	s1, c1 := Score(first, bank)
	s2, c2 := Score(second, bank)
	assert.Equal(t, s1, s2)
	assert.Equal(t, c1, c2)
}

func TestScore_TieBrokenByCategoryPriority(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	// lump no (0), family-history no (0), smoking no (0): three-way tie.
	sess := answerAll(t, m, map[string]string{
		"lump": "no", "family-history": "no", "smoking": "no",
	})

	_, contributions := Score(sess, bank)
	require.Len(t, contributions, 3)
	assert.Equal(t, domain.CategorySymptom, contributions[0].Category)
	assert.Equal(t, domain.CategoryFamilyHistory, contributions[1].Category)
	assert.Equal(t, domain.CategoryLifestyle, contributions[2].Category)
}

func TestResult_RequiresCompletion(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	sess, err := m.Start(testutil.NewTestProfile())
	require.NoError(t, err)

	_, err = Result(sess, bank, DefaultBands())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteAssessment))
}

func TestResult_SpecExampleSeventy(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	sess := answerAll(t, m, map[string]string{
		"lump": "yes", "family-history": "yes", "smoking": "no",
	})

	result, err := Result(sess, bank, DefaultBands())
	require.NoError(t, err)
	assert.Equal(t, 70.0, result.Score)
	assert.Equal(t, domain.TierHigh, result.Tier)
	assert.False(t, result.Partial)
	assert.Equal(t, sess.ID, result.SessionID)
}

func TestPartialResult_AbandonedSession(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	sess, err := m.Start(testutil.NewTestProfile())
	require.NoError(t, err)
	require.NoError(t, m.SubmitAnswer(sess, "lump", "yes"))
	require.NoError(t, m.Abandon(sess))

	result := PartialResult(sess, bank, DefaultBands())
	assert.True(t, result.Partial)
	assert.Equal(t, 40.0, result.Score)
	assert.Equal(t, domain.TierModerate, result.Tier)
}

func TestPartialResult_CompletedSessionNotMarkedPartial(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	sess := answerAll(t, m, map[string]string{
		"lump": "no", "family-history": "no", "smoking": "no",
	})

	result := PartialResult(sess, bank, DefaultBands())
	assert.False(t, result.Partial)
	assert.Equal(t, domain.TierLow, result.Tier)
}

func TestScore_ReplayYieldsRecordedScore(t *testing.T) {
	bank := testutil.NewScreeningBank(t)
	m := engine.NewMachine(bank)

	sess := answerAll(t, m, map[string]string{
		"lump": "yes", "family-history": "yes", "smoking": "yes",
	})
	recorded, _ := Score(sess, bank)

	replayed, err := m.Replay(sess.Profile, sess.Answers)
	require.NoError(t, err)
	replayScore, _ := Score(replayed, bank)
	assert.Equal(t, recorded, replayScore)
}
