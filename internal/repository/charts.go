package repository

import (
	"context"

	"github.com/CEMAMI09/EVOQFORMS/internal/database"
)

type ScoreBucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ScoreDistribution returns how many quiz submissions landed on each score,
// ascending by score. Scores with no submissions are absent.
func ScoreDistribution(ctx context.Context) ([]ScoreBucket, error) {
	var buckets []ScoreBucket
	err := database.DB.WithContext(ctx).Raw(`
		SELECT score, COUNT(*) AS count
		FROM certification_quiz
		GROUP BY score
		ORDER BY score;
	`).Scan(&buckets).Error
	return buckets, err
}

// DailySubmissionCounts returns quiz submissions per calendar day, oldest first.
func DailySubmissionCounts(ctx context.Context) ([]DailyCount, error) {
	var counts []DailyCount
	err := database.DB.WithContext(ctx).Raw(`
		SELECT date(submittedAt) AS day, COUNT(*) AS count
		FROM certification_quiz
		GROUP BY date(submittedAt)
		ORDER BY day;
	`).Scan(&counts).Error
	return counts, err
}
