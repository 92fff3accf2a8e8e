package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/CEMAMI09/EVOQFORMS/internal/database"
	"github.com/CEMAMI09/EVOQFORMS/internal/models"
	"github.com/CEMAMI09/EVOQFORMS/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupService(t *testing.T) *SubmissionService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.IntakeSubmission{}, &models.QuizSubmission{}))
	database.DB = db

	return NewSubmissionService(zap.NewNop())
}

func TestSubmitQuizRejectsBlankClientName(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.SubmitQuiz(ctx, name, nil, 9)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "clientName %q", name)
	}

	// No row was written for any rejected submission.
	list, err := repository.ListQuiz(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitQuizRejectsOutOfRangeScore(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, score := range []int{-1, 11, 100} {
		_, err := svc.SubmitQuiz(ctx, "Jess Alvarez", nil, score)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "score %d", score)
	}
}

func TestSubmitQuizPersistsAnswersInOrder(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	answers := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10"}
	id, err := svc.SubmitQuiz(ctx, "Jess Alvarez", answers, 9)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := repository.GetQuizByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jess Alvarez", got.ClientName)
	assert.Equal(t, answers, got.Answers())
	assert.Equal(t, 9, got.Score)
	assert.True(t, got.Passed())
}

func TestSubmitQuizPadsMissingAnswers(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	id, err := svc.SubmitQuiz(ctx, "Jess Alvarez", []string{"only one"}, 1)
	require.NoError(t, err)

	got, err := repository.GetQuizByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "only one", got.Question1)
	assert.Equal(t, "", got.Question10)
}

func TestSubmitIntakeReturnsAssignedID(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	id, err := svc.SubmitIntake(ctx, &models.IntakeSubmission{
		AccountName:  "Lakeside Eye Care",
		PrimaryEmail: "front-desk@lakeside.example",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	list, err := repository.ListIntake(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "Lakeside Eye Care", list[0].AccountName)
}
