package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/iaso/internal/engine"
	"github.com/alexanderramin/iaso/internal/narrative"
	"github.com/alexanderramin/iaso/internal/repository"
	"github.com/alexanderramin/iaso/internal/scoring"
	"github.com/alexanderramin/iaso/internal/service"
	"github.com/alexanderramin/iaso/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	bank := testutil.NewScreeningBank(t)
	svc := service.NewAssessmentService(
		engine.NewMachine(bank),
		scoring.BandsFromConfig(bank.Bands()),
		repository.NewSQLiteAssessmentRepo(database),
		repository.NewSQLiteResultRepo(database),
		narrative.NewService(nil),
		testutil.NewTestUoW(database),
	)
	return &App{
		Assessments:   svc,
		IsInteractive: func() bool { return false },
	}
}

func TestResolveSessionID_ExactAndPrefix(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	sess, err := app.Assessments.Start(ctx, testutil.NewTestProfile())
	require.NoError(t, err)

	got, err := resolveSessionID(ctx, app, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got)

	got, err = resolveSessionID(ctx, app, sess.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got)
}

func TestResolveSessionID_NotFound(t *testing.T) {
	app := newTestApp(t)

	_, err := resolveSessionID(context.Background(), app, "zzzzzzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSessionID_EmptyInput(t *testing.T) {
	app := newTestApp(t)

	_, err := resolveSessionID(context.Background(), app, "")
	require.Error(t, err)
}
