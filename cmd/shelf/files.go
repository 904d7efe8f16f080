// File commands: attach files to objects and list them, optionally
// filtered by type tag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/shelf"
)

var (
	attachFileType string
	filesType      string
)

var attachFileCmd = &cobra.Command{
	Use:   "attach-file <object-id>",
	Short: "Attach a new file to an object",
	Long: `Attach-file creates a file resource and attaches it to an object.
With --type the file carries that type tag, and an existing file of the
same type is reused instead of creating a duplicate.`,
	Args: cobra.ExactArgs(1),
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
		obj, err := shelf.AsObject(store, res)
		if err != nil {
			return err
		}

		if attachFileType != "" {
			file, err := obj.FileOfType(attachFileType)
			if err != nil {
				return err
			}
			fmt.Println(file.ID())
			return nil
		}

		file, err := shelf.NewFile(store)
		if err != nil {
			return err
		}
		if err := obj.Files().Add(file.Resource()); err != nil {
			return err
		}
		fmt.Println(file.ID())
		return nil
	},
}

var filesCmd = &cobra.Command{
	Use:   "files <object-id>",
	Short: "List the files of an object",
	Args:  cobra.ExactArgs(1),
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
		obj, err := shelf.AsObject(store, res)
		if err != nil {
			return err
		}

		if filesType != "" {
			matches, err := obj.FilterFilesByType(filesType)
			if err != nil {
				return err
			}
			return printIDs(idsOf(matches))
		}

		ids, err := obj.Files().IDs()
		if err != nil {
			return err
		}
		return printIDs(ids)
	},
}

func init() {
	attachFileCmd.Flags().StringVar(&attachFileType, "type", "", "type tag for the file (reuses an existing file of that type)")
	filesCmd.Flags().StringVar(&filesType, "type", "", "only list files carrying this type tag")
}
