// Collection-link commands: edit and list the proxied
// member_of_collections relation of an object.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/shelf"
)

var addToCollectionCmd = &cobra.Command{
	Use:   "add-to-collection <object-id> <collection-id>",
	Short: "Link an object to a collection it claims membership in",
	Long: `Add-to-collection records a proxied link from an object to a
collection. The link is independent of the collection's own member
list; reconcile the two sides with collections-of and members.`,
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
		return obj.MemberOfCollections().Add(target)
	},
}

var collectionsOfCmd = &cobra.Command{
	Use:   "collections-of <object-id>",
	Short: "List the collections an object claims membership in",
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

		ids, err := obj.MemberOfCollections().IDs()
		if err != nil {
			return err
		}
		return printIDs(ids)
	},
}
