package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories and starter questions",
	Long: "Upserts the seed categories and inserts their questions. Questions are skipped " +
		"when the store already has some, unless --force is given. Without --file the " +
		"built-in data set is used.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		force, _ := cmd.Flags().GetBool("force")

		var (
			file *seed.File
			err  error
		)
		if path != "" {
			file, err = seed.Load(path)
		} else {
			file, err = seed.Default()
		}
		if err != nil {
			return err
		}

		return withStore(cmd.Context(), func(ctx context.Context, store db.Store, logger zerolog.Logger) error {
			questions := repository.NewQuestionRepository(store)
			categories := repository.NewCategoryRepository(store)
			svc := question.NewService(questions, categories, question.ServiceOptions{})

			_, err := seed.NewSeeder(categories, questions, svc, logger).Apply(ctx, file, force)
			return err
		})
	},
}

func init() {
	seedCmd.Flags().String("file", "", "Path to a seed YAML file (defaults to the built-in data set)")
	seedCmd.Flags().Bool("force", false, "Insert questions even if the store is not empty")
}
