package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/CEMAMI09/EVOQFORMS/internal/database"
	"github.com/CEMAMI09/EVOQFORMS/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.IntakeSubmission{}, &models.QuizSubmission{}))
	database.DB = db
}

func TestCreateIntakeAssignsIncreasingIDs(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	first := &models.IntakeSubmission{AccountName: "Lakeside Eye Care"}
	require.NoError(t, CreateIntake(ctx, first))
	require.NotZero(t, first.ID)

	second := &models.IntakeSubmission{AccountName: "Summit Vision"}
	require.NoError(t, CreateIntake(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

func TestListIntakeReturnsFieldsVerbatimNewestFirst(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	submission := &models.IntakeSubmission{
		AccountName:       "Lakeside Eye Care",
		PrimaryEmail:      "front-desk@lakeside.example",
		BackupEmail:       "backup@lakeside.example",
		LocationAddress:   "12 Shore Rd",
		KeyContact:        "Dana Reyes",
		BillingAddress:    "PO Box 9",
		CardName:          "Dana Reyes",
		CardNumber:        "4111111111111111",
		CardExpiry:        "08/27",
		CardCVV:           "123",
		BillingZipCode:    "04401",
		PatientPopulation: "Adults 50+",
		OtherPatientInfo:  "High AMD prevalence",
		WifiSSID:          "lakeside-guest",
		WifiPassword:      "hunter2",
		WifiSecurity:      "WPA2",
		WifiFrequency:     "5 GHz",
		EhrSystems:        "Epic",
		PracticeLogoPath:  "uploads/logo-123.png",
	}
	require.NoError(t, CreateIntake(ctx, submission))
	require.NoError(t, CreateIntake(ctx, &models.IntakeSubmission{AccountName: "Summit Vision"}))

	list, err := ListIntake(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first
	assert.Equal(t, "Summit Vision", list[0].AccountName)

	// Fields come back exactly as stored, sensitive ones included.
	assert.Equal(t, *submission, list[1])
}

func TestCreateQuizAssignsSubmittedAt(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	submission := &models.QuizSubmission{ClientName: "Jess Alvarez", Score: 9}
	require.NoError(t, CreateQuiz(ctx, submission))

	assert.NotZero(t, submission.ID)
	assert.False(t, submission.SubmittedAt.IsZero())
}

func TestListQuizMostRecentFirst(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, CreateQuiz(ctx, &models.QuizSubmission{ClientName: name, Score: 7}))
	}

	list, err := ListQuiz(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].SubmittedAt.Before(list[i].SubmittedAt))
	}
}

func TestGetQuizByID(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	submission := &models.QuizSubmission{ClientName: "Jess Alvarez", Score: 10}
	submission.SetAnswers([]string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10"})
	require.NoError(t, CreateQuiz(ctx, submission))

	got, err := GetQuizByID(ctx, submission.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.ID, got.ID)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10"}, got.Answers())
}

func TestGetQuizByIDNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetQuizByID(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestScoreDistribution(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for _, score := range []int{8, 8, 5, 10} {
		require.NoError(t, CreateQuiz(ctx, &models.QuizSubmission{ClientName: "x", Score: score}))
	}

	buckets, err := ScoreDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ScoreBucket{{Score: 5, Count: 1}, {Score: 8, Count: 2}, {Score: 10, Count: 1}}, buckets)
}
