// Package snowflake implements domain.IDGenerator with Twitter-style snowflake ids.
package snowflake

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator produces time-ordered decimal ids unique per node.
type Generator struct {
	node *snowflake.Node
}

// New creates a generator for the given node id (0..1023).
// Every running process must use a distinct node id.
func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &Generator{node: node}, nil
}

// Generate returns a new id in base 10.
func (g *Generator) Generate() string {
	return g.node.Generate().String()
}
