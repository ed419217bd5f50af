package repository

import "github.com/gokatarajesh/trivia-api/internal/db"

func question(id, category int64, text string) db.Question {
	return db.Question{ID: id, Question: text, Answer: "answer", Category: category, Difficulty: 1}
}
