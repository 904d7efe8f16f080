package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag <id> <type>",
	Short: "Add a type tag to a resource",
	Long: `Tag adds a type tag (for example image/tiff or pcdmuse:ThumbnailImage)
to a resource. Tagging is idempotent.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		res, err := getResource(store, args[0])
		if err != nil {
			return err
		}

		res.Tag(args[1])
		if _, err := store.Save(res); err != nil {
			return fmt.Errorf("save %s: %w", res.ID, err)
		}
		return printResource(res)
	},
}
