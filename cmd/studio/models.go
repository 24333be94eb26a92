package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	dbmongo "github.com/zenlead/studio/db/mongo"
	"github.com/zenlead/studio/seed"
	"github.com/zenlead/studio/settings"
)

func modelsCmd() *cobra.Command {
	var bundled bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List active model settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bundled {
				slugs, err := seed.Catalog()
				if err != nil {
					return err
				}
				for _, slug := range slugs {
					fmt.Println(slug)
				}
				return nil
			}

			repo := dbmongo.NewMongoRepository()
			defer dbmongo.GetMongoClient().Close()
			store := settings.NewStore(repo)

			docs, err := store.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			sort.Slice(docs, func(i, j int) bool { return docs[i].ModelSlug < docs[j].ModelSlug })

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "SLUG\tNAME\tVERSION\tCREDITS\tESTIMATED TIME")
			for _, doc := range docs {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
					doc.ModelSlug, doc.ModelName, doc.Version, doc.Pricing.CreditsPerUse, doc.EstimatedTime)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&bundled, "bundled", false, "list the bundled seed models instead of the database")

	cmd.AddCommand(deactivateCmd())

	return cmd
}

func deactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <model_slug>",
		Short: "Hide a model's settings from reads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := dbmongo.NewMongoRepository()
			defer dbmongo.GetMongoClient().Close()
			service := settings.NewService(settings.NewStore(repo))

			if err := service.DeactivateModel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deactivated settings for %s\n", args[0])
			return nil
		},
	}
}
