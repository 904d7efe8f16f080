package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/shelf"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

var parentsCmd = &cobra.Command{
	Use:   "parents <id>",
	Short: "List the direct parents of a resource",
	Long: `Parents lists the resources that directly contain the given one:
collections and objects holding it as a member, or for a file the
objects it is attached to.`,
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

		parents, err := parentsOf(store, res)
		if err != nil {
			return err
		}
		return printIDs(parents)
	},
}

// parentsOf returns the ids of the resources directly containing res.
func parentsOf(store types.Store, res *types.Resource) ([]string, error) {
	switch res.Kind {
	case types.KindCollection:
		col, err := shelf.AsCollection(store, res)
		if err != nil {
			return nil, err
		}
		parents, err := col.MemberOf()
		if err != nil {
			return nil, err
		}
		return idsOf(parents), nil
	case types.KindObject:
		obj, err := shelf.AsObject(store, res)
		if err != nil {
			return nil, err
		}
		parents, err := obj.MemberOf()
		if err != nil {
			return nil, err
		}
		return idsOf(parents), nil
	case types.KindFile:
		owners, err := store.QueryByProperty(types.RelationFiles, res.ID)
		if err != nil {
			return nil, err
		}
		return idsOf(owners), nil
	default:
		return nil, types.ErrUnknownKind
	}
}

func idsOf(resources []*types.Resource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	return ids
}
