// Package seed loads the starter categories and questions from YAML.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

//go:embed data/trivia.yaml
var defaultData []byte

// Question is one seeded question; its category comes from the enclosing block.
type Question struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int64  `yaml:"difficulty"`
}

// Category is a category together with its questions.
type Category struct {
	ID        int64      `yaml:"id"`
	Type      string     `yaml:"type"`
	Questions []Question `yaml:"questions"`
}

// File is the top-level seed document.
type File struct {
	Categories []Category `yaml:"categories"`
}

// Default returns the seed data compiled into the binary.
func Default() (*File, error) {
	return decode(bytes.NewReader(defaultData))
}

// Load reads a seed document from path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	seenIDs := make(map[int64]struct{}, len(file.Categories))
	for _, c := range file.Categories {
		if c.ID <= 0 || c.Type == "" {
			return nil, fmt.Errorf("seed category %q needs a positive id and a type", c.Type)
		}
		if _, dup := seenIDs[c.ID]; dup {
			return nil, fmt.Errorf("seed category id %d appears twice", c.ID)
		}
		seenIDs[c.ID] = struct{}{}
	}
	return &file, nil
}

// Result summarises what Apply changed.
type Result struct {
	Categories       int
	Questions        int
	SkippedQuestions bool
}

// Seeder writes seed data through the repositories and the question service,
// so seeded questions pass the same validation as API-created ones.
type Seeder struct {
	categories *repository.CategoryRepository
	questions  *repository.QuestionRepository
	svc        *question.Service
	logger     zerolog.Logger
}

func NewSeeder(categories *repository.CategoryRepository, questions *repository.QuestionRepository, svc *question.Service, logger zerolog.Logger) *Seeder {
	return &Seeder{
		categories: categories,
		questions:  questions,
		svc:        svc,
		logger:     logger.With().Str("component", "seed").Logger(),
	}
}

func validate(file *File) error {
	for _, c := range file.Categories {
		for i, q := range c.Questions {
			req := question.CreateRequest{Question: q.Question, Answer: q.Answer, Category: c.ID, Difficulty: q.Difficulty}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("seed category %d question %d: %w", c.ID, i+1, err)
			}
		}
	}
	return nil
}

// Apply upserts every category and inserts the questions. Questions are only
// inserted into an empty question table unless force is set, so re-running
// the seed does not duplicate them.
func (s *Seeder) Apply(ctx context.Context, file *File, force bool) (Result, error) {
	var res Result
	// reject the whole file before writing so a bad entry cannot leave a partial seed
	if err := validate(file); err != nil {
		return res, err
	}
	for _, c := range file.Categories {
		if _, err := s.categories.Upsert(ctx, db.UpsertCategoryParams{ID: c.ID, Type: c.Type}); err != nil {
			return res, fmt.Errorf("upsert category %d: %w", c.ID, err)
		}
		res.Categories++
	}

	existing, err := s.questions.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count questions: %w", err)
	}
	if existing > 0 && !force {
		s.logger.Info().Int64("existing", existing).Msg("questions already present, skipping")
		res.SkippedQuestions = true
		return res, nil
	}

	for _, c := range file.Categories {
		for _, q := range c.Questions {
			created, err := s.svc.Create(ctx, question.CreateRequest{
				Question:   q.Question,
				Answer:     q.Answer,
				Category:   c.ID,
				Difficulty: q.Difficulty,
			})
			if err != nil {
				return res, fmt.Errorf("seed question %q: %w", q.Question, err)
			}
			s.logger.Debug().Int64("question_id", created.ID).Int64("category", c.ID).Msg("question seeded")
			res.Questions++
		}
	}
	s.logger.Info().Int("categories", res.Categories).Int("questions", res.Questions).Msg("seed applied")
	return res, nil
}
