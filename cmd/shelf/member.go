// Member commands: edit and list the ordered members of a collection
// or object.
package main

import (
	"github.com/spf13/cobra"
)

var addMemberCmd = &cobra.Command{
	Use:   "add-member <parent-id> <child-id>",
	Short: "Add a member to a collection or object",
	Long: `Add-member appends a child to the ordered members of a collection or
object. Collections accept collections and objects; objects accept only
objects. Edges that would make the child its own ancestor are rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		parent, err := getResource(store, args[0])
		if err != nil {
			return err
		}
		child, err := getResource(store, args[1])
		if err != nil {
			return err
		}

		members, err := membersRelation(store, parent)
		if err != nil {
			return err
		}
		return members.Add(child)
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove-member <parent-id> <child-id>",
	Short: "Remove a member from a collection or object",
	Long: `Remove-member removes the first matching membership edge. The
relative order of the remaining members is preserved.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		parent, err := getResource(store, args[0])
		if err != nil {
			return err
		}
		child, err := getResource(store, args[1])
		if err != nil {
			return err
		}

		members, err := membersRelation(store, parent)
		if err != nil {
			return err
		}
		return members.Remove(child)
	},
}

var membersCmd = &cobra.Command{
	Use:   "members <id>",
	Short: "List the members of a collection or object in order",
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

		members, err := membersRelation(store, res)
		if err != nil {
			return err
		}
		ids, err := members.IDs()
		if err != nil {
			return err
		}
		return printIDs(ids)
	},
}
