package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CEMAMI09/EVOQFORMS/internal/models"
	"github.com/CEMAMI09/EVOQFORMS/internal/repository"

	"go.uber.org/zap"
)

// SubmissionService turns raw form payloads into validated store writes.
// It applies presence checks and trimming only; field formats (email shape,
// card number checksum) are left to the browser's native form validation.
type SubmissionService struct {
	log *zap.Logger
}

func NewSubmissionService(log *zap.Logger) *SubmissionService {
	return &SubmissionService{log: log}
}

// SubmitIntake persists an intake form. The logo path is whatever the upload
// collaborator stored; this service only records the string. Returns the
// assigned id.
func (s *SubmissionService) SubmitIntake(ctx context.Context, submission *models.IntakeSubmission) (uint, error) {
	if err := repository.CreateIntake(ctx, submission); err != nil {
		s.log.Error("Failed to save intake submission", zap.Error(err))
		return 0, err
	}
	s.log.Info("Intake form saved",
		zap.Uint("id", submission.ID),
		zap.String("account", submission.AccountName),
	)
	return submission.ID, nil
}

// SubmitQuiz validates and persists a quiz attempt. The client name must be
// non-empty after trimming and the score must fall in 0..10; the score is
// otherwise trusted as reported by the quiz page, since the answers are free
// text with no machine-checkable key. Returns the assigned id.
func (s *SubmissionService) SubmitQuiz(ctx context.Context, clientName string, answers []string, score int) (uint, error) {
	if strings.TrimSpace(clientName) == "" {
		return 0, &ValidationError{Message: "Client name is required"}
	}
	if score < 0 || score > 10 {
		return 0, &ValidationError{Message: fmt.Sprintf("Score must be between 0 and 10, got %d", score)}
	}

	submission := &models.QuizSubmission{
		ClientName: clientName,
		Score:      score,
	}
	submission.SetAnswers(answers)

	if err := repository.CreateQuiz(ctx, submission); err != nil {
		s.log.Error("Failed to save quiz submission", zap.Error(err))
		return 0, err
	}
	s.log.Info("Quiz submitted",
		zap.Uint("id", submission.ID),
		zap.String("client", clientName),
		zap.Int("score", score),
	)
	return submission.ID, nil
}
