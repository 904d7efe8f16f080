package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/shelf"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

var createKind string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new resource",
	Long: `Create makes a new collection, object, or file resource, saves it,
and prints its id.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		var id string
		switch createKind {
		case types.KindCollection:
			col, err := shelf.NewCollectionWithLogger(store, newLogger())
			if err != nil {
				return err
			}
			id, err = col.Save()
			if err != nil {
				return err
			}
		case types.KindObject:
			obj, err := shelf.NewObjectWithLogger(store, newLogger())
			if err != nil {
				return err
			}
			id, err = obj.Save()
			if err != nil {
				return err
			}
		case types.KindFile:
			file, err := shelf.NewFile(store)
			if err != nil {
				return err
			}
			id, err = file.Save()
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("kind %q: %w", createKind, types.ErrUnknownKind)
		}

		fmt.Println(id)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createKind, "kind", "", "resource kind: collection, object, or file")
	_ = createCmd.MarkFlagRequired("kind")
}
