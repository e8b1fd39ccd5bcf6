package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTestUsesDefaults(t *testing.T) {
	f := newFixture(t)

	created, err := f.admin.CreateTest(f.ctx, dto.CreateTestDTO{Name: "  Induction  "})
	require.NoError(t, err)
	assert.Equal(t, "Induction", created.Name)
	assert.False(t, created.IsActive)
	require.NotNil(t, created.Settings)
	assert.Equal(t, dto.TestSettingsDTO{QuestionsPerTest: 20, DurationMinutes: 10, PassingScore: 70}, *created.Settings)

	_, err = f.admin.CreateTest(f.ctx, dto.CreateTestDTO{Name: " "})
	assert.True(t, apperror.IsValidation(err))
}

func TestTestLifecycle(t *testing.T) {
	f := newFixture(t)
	created, err := f.admin.CreateTest(f.ctx, dto.CreateTestDTO{Name: "Induction"})
	require.NoError(t, err)

	require.NoError(t, f.admin.RenameTest(f.ctx, created.ID, "Induction v2"))
	require.NoError(t, f.admin.SetStatus(f.ctx, created.ID, true))

	list, err := f.admin.ListTests(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Induction v2", list[0].Name)
	assert.True(t, list[0].IsActive)

	public, err := f.catalog.ListActive(f.ctx, "")
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Nil(t, public[0].PassedStatus)

	missing := uuid.NewString()
	assert.True(t, apperror.IsNotFound(f.admin.RenameTest(f.ctx, missing, "x")))
	assert.True(t, apperror.IsNotFound(f.admin.SetStatus(f.ctx, missing, true)))
	assert.True(t, apperror.IsNotFound(f.admin.DeleteTest(f.ctx, missing)))
}

func TestDeleteTestRemovesEverything(t *testing.T) {
	f := newFixture(t)
	test, choice, text := safetyTest(t, f.db)
	res := f.submit(t, test.ID, "Ivanov I.I.", answer(choice, "a"), answer(text, "words"))

	require.NoError(t, f.admin.DeleteTest(f.ctx, test.ID))

	for _, m := range []any{&model.Test{}, &model.TestSettings{}, &model.Question{}, &model.Option{}, &model.Result{}, &model.Answer{}} {
		var n int64
		require.NoError(t, f.db.Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T rows left", m)
	}
	_, err := f.protocols.BuildProtocol(f.ctx, res.ResultID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSettings(t *testing.T) {
	f := newFixture(t)
	bare := model.Test{ID: uuid.NewString(), Name: "Legacy"}
	require.NoError(t, f.db.Create(&bare).Error)

	got, err := f.admin.GetSettings(f.ctx, bare.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, got.PassingScore)

	stored, err := f.testRepo.FindSettings(f.ctx, bare.ID)
	require.NoError(t, err, "defaults are persisted on first read")
	assert.Equal(t, 20, stored.QuestionsPerTest)

	saved, err := f.admin.SaveSettings(f.ctx, bare.ID, dto.TestSettingsDTO{QuestionsPerTest: 5, DurationMinutes: 30, PassingScore: 80})
	require.NoError(t, err)
	assert.Equal(t, 80, saved.PassingScore)
	got, err = f.admin.GetSettings(f.ctx, bare.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.TestSettingsDTO{QuestionsPerTest: 5, DurationMinutes: 30, PassingScore: 80}, *got)

	_, err = f.admin.SaveSettings(f.ctx, bare.ID, dto.TestSettingsDTO{QuestionsPerTest: 5, DurationMinutes: 30, PassingScore: 101})
	assert.True(t, apperror.IsValidation(err))
	_, err = f.admin.GetSettings(f.ctx, uuid.NewString())
	assert.True(t, apperror.IsNotFound(err))
}
