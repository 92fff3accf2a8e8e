package repository

import (
	"context"

	"github.com/CEMAMI09/EVOQFORMS/internal/database"
	"github.com/CEMAMI09/EVOQFORMS/internal/models"
)

// CreateIntake inserts a new intake submission and fills in its assigned ID.
// Fields are persisted verbatim; there is no normalization and no uniqueness
// constraint on email.
func CreateIntake(ctx context.Context, submission *models.IntakeSubmission) error {
	return database.DB.WithContext(ctx).Create(submission).Error
}

// ListIntake returns every intake submission, newest first.
func ListIntake(ctx context.Context) ([]models.IntakeSubmission, error) {
	var submissions []models.IntakeSubmission
	result := database.DB.WithContext(ctx).Order("id DESC").Find(&submissions)
	return submissions, result.Error
}
