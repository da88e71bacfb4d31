package ordernum

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator produces globally unique, time-ordered order numbers.
// Numbers are monotonically informative but not gap-free.
type Generator interface {
	Next() int64
}

type snowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(nodeID int64) (Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) Next() int64 {
	return g.node.Generate().Int64()
}

// FixedGenerator returns a predetermined sequence, then counts on past its
// end. Test use only.
type FixedGenerator struct {
	Numbers []int64

	mu  sync.Mutex
	idx int
}

func (g *FixedGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idx++
	if g.idx > len(g.Numbers) {
		return int64(1_000_000 + g.idx)
	}
	return g.Numbers[g.idx-1]
}
