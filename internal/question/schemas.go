package question

import (
	_ "embed"

	"github.com/gokatarajesh/trivia-api/pkg/http/request"
)

var (
	//go:embed schemas/create_question.json
	createQuestionSchemaJSON []byte
	//go:embed schemas/search.json
	searchSchemaJSON []byte

	createQuestionSchema = request.MustCompile("create_question", createQuestionSchemaJSON)
	searchSchema         = request.MustCompile("search", searchSchemaJSON)
)

type createQuestionBody struct {
	Question   string        `json:"question"`
	Answer     string        `json:"answer"`
	Difficulty request.Int64 `json:"difficulty"`
	Category   request.Int64 `json:"category"`
}

type searchBody struct {
	SearchTerm string `json:"searchTerm"`
}
