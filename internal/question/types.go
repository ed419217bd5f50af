package question

import "github.com/gokatarajesh/trivia-api/internal/db"

// DefaultPageSize is the number of questions per listing page.
const DefaultPageSize = 10

// Question is the wire representation of a stored question.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// Category is a read-only question category; Type is its label.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Page is one slice of the full question list plus the listing side payload.
type Page struct {
	Questions      []Question
	TotalQuestions int
	// Categories lists every category label regardless of the page contents.
	Categories []string
}

// CreateRequest carries a new question.
type CreateRequest struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int64
}

// FromRow converts a store row to its wire form.
func FromRow(row db.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

// FromRows converts store rows, never returning nil so listings encode as [].
func FromRows(rows []db.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row))
	}
	return out
}
