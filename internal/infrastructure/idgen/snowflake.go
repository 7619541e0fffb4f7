package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"

	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
)

// SnowflakeGenerator gera IDs int64 ordenados no tempo para os logs de auditoria
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator cria um gerador para o nó informado (0..1023)
func NewSnowflakeGenerator(nodeID int64) (ports.IDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}
