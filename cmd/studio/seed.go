package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dbmongo "github.com/zenlead/studio/db/mongo"
	"github.com/zenlead/studio/seed"
	"github.com/zenlead/studio/settings"
)

func seedCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the bundled model settings to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := dbmongo.NewMongoRepository()
			defer dbmongo.GetMongoClient().Close()
			store := settings.NewStore(repo)

			if model != "" {
				if err := seed.ApplyOne(cmd.Context(), store, model); err != nil {
					return err
				}
				fmt.Printf("Seeded settings for %s\n", model)
				return nil
			}

			if err := seed.Apply(cmd.Context(), store); err != nil {
				return err
			}
			slugs, err := seed.Catalog()
			if err != nil {
				return err
			}
			fmt.Printf("Seeded settings for %d models\n", len(slugs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "seed a single model slug")

	return cmd
}
