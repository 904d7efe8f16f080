// Related-object commands: edit and list the proxied related_objects
// relation of an object.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/shelf"
)

var addRelatedCmd = &cobra.Command{
	Use:   "add-related <object-id> <related-id>",
	Short: "Relate another object to an object",
	Long: `Add-related records a proxied related-object link from one object to
another. Related objects are not members: they do not participate in
containment or cycle checks.`,
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
		obj, err := shelf.AsObject(store, res)
		if err != nil {
			return err
		}

		target, err := getResource(store, args[1])
		if err != nil {
			return err
		}
		return obj.RelatedObjects().Add(target)
	},
}

var relatedCmd = &cobra.Command{
	Use:   "related <object-id>",
	Short: "List the related objects of an object",
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

		ids, err := obj.RelatedObjects().IDs()
		if err != nil {
			return err
		}
		return printIDs(ids)
	},
}
