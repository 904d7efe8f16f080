package shelf

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// AncestorChecker answers whether one resource is reachable from another
// through containment edges. It walks upward from a node along parent
// links: each frontier expansion issues one QueryByProperty call per node,
// so a check costs one store round trip per node per graph level. This is
// real I/O, not a free lookup.
type AncestorChecker struct {
	store  types.Store
	logger *zap.SugaredLogger
}

// NewAncestorChecker creates a checker over the given store. A nil logger
// disables traversal logging.
func NewAncestorChecker(store types.Store, logger *zap.SugaredLogger) *AncestorChecker {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AncestorChecker{store: store, logger: logger}
}

// IsAncestor reports whether candidateID is an ancestor of nodeID: true
// iff nodeID is reachable from candidateID by following members edges
// downward, checked here by walking parent links upward from nodeID.
// A resource is trivially its own ancestor (candidateID == nodeID is
// true), which is what blocks self-containment.
//
// The traversal is breadth-first with a visited set, so it terminates
// even if the existing graph already contains a cycle.
func (c *AncestorChecker) IsAncestor(candidateID, nodeID string) (bool, error) {
	if candidateID == nodeID {
		return true, nil
	}

	visited := map[string]bool{nodeID: true}
	frontier := []string{nodeID}
	level := 0

	for len(frontier) > 0 {
		var next []string
		for _, id := range frontier {
			parents, err := c.store.QueryByProperty(types.RelationMembers, id)
			if err != nil {
				return false, fmt.Errorf("looking up parents of %s: %w", id, err)
			}
			for _, p := range parents {
				if p.ID == candidateID {
					return true, nil
				}
				if !visited[p.ID] {
					visited[p.ID] = true
					next = append(next, p.ID)
				}
			}
		}
		level++
		c.logger.Debugw("ancestor check expanded frontier",
			"node", nodeID, "candidate", candidateID,
			"level", level, "frontier_size", len(next))
		frontier = next
	}

	return false, nil
}
