package models

import "time"

// PassingScore is the minimum score counted as a pass.
const PassingScore = 8

// QuizSubmission is one certification-quiz attempt: ten free-text answers
// plus the score reported by the quiz page. Immutable after insert.
type QuizSubmission struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"column:clientName;not null" json:"clientName"`

	Question1  string `gorm:"column:question1" json:"question1"`
	Question2  string `gorm:"column:question2" json:"question2"`
	Question3  string `gorm:"column:question3" json:"question3"`
	Question4  string `gorm:"column:question4" json:"question4"`
	Question5  string `gorm:"column:question5" json:"question5"`
	Question6  string `gorm:"column:question6" json:"question6"`
	Question7  string `gorm:"column:question7" json:"question7"`
	Question8  string `gorm:"column:question8" json:"question8"`
	Question9  string `gorm:"column:question9" json:"question9"`
	Question10 string `gorm:"column:question10" json:"question10"`

	Score       int       `gorm:"column:score" json:"score"`
	SubmittedAt time.Time `gorm:"column:submittedAt" json:"submittedAt"`
}

// TableName keeps the table name used by the original deployment.
func (QuizSubmission) TableName() string {
	return "certification_quiz"
}

// Passed reports whether the attempt met the passing score.
func (q *QuizSubmission) Passed() bool {
	return q.Score >= PassingScore
}

// ScoreTier classifies the score for display: "high", "medium" or "low".
func (q *QuizSubmission) ScoreTier() string {
	switch {
	case q.Score >= PassingScore:
		return "high"
	case q.Score >= 5:
		return "medium"
	default:
		return "low"
	}
}

// Answers returns the ten answers in question order.
func (q *QuizSubmission) Answers() []string {
	return []string{
		q.Question1, q.Question2, q.Question3, q.Question4, q.Question5,
		q.Question6, q.Question7, q.Question8, q.Question9, q.Question10,
	}
}

// SetAnswers fills the ten answer columns from a slice. Missing entries
// default to the empty string; extra entries are dropped.
func (q *QuizSubmission) SetAnswers(answers []string) {
	padded := make([]string, 10)
	copy(padded, answers)
	q.Question1 = padded[0]
	q.Question2 = padded[1]
	q.Question3 = padded[2]
	q.Question4 = padded[3]
	q.Question5 = padded[4]
	q.Question6 = padded[5]
	q.Question7 = padded[6]
	q.Question8 = padded[7]
	q.Question9 = padded[8]
	q.Question10 = padded[9]
}
