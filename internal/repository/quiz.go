package repository

import (
	"context"
	"time"

	"github.com/CEMAMI09/EVOQFORMS/internal/database"
	"github.com/CEMAMI09/EVOQFORMS/internal/models"
)

// CreateQuiz inserts a new quiz submission. The submission time is assigned
// here, not taken from the caller. The service layer has already rejected
// blank client names, so the row is assumed valid.
func CreateQuiz(ctx context.Context, submission *models.QuizSubmission) error {
	submission.SubmittedAt = time.Now().UTC()
	return database.DB.WithContext(ctx).Create(submission).Error
}

// ListQuiz returns every quiz submission, most recent first.
func ListQuiz(ctx context.Context) ([]models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	result := database.DB.WithContext(ctx).Order("submittedAt DESC").Find(&submissions)
	return submissions, result.Error
}

// GetQuizByID fetches a single quiz submission. A missing id surfaces as
// gorm.ErrRecordNotFound.
func GetQuizByID(ctx context.Context, id uint) (*models.QuizSubmission, error) {
	var submission models.QuizSubmission
	result := database.DB.WithContext(ctx).First(&submission, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &submission, nil
}
