package mcp

import (
	"context"
	"sync"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"namecraft/internal/generator"
	"namecraft/internal/store"
)

// Server exposes one generator session as MCP tools. Tool calls are
// serialised because the generator is single-threaded.
type Server struct {
	mu      sync.Mutex
	gen     *generator.Generator
	history store.Store
	mcp     *sdk.Server
}

// NewServer wires the tools. history may be nil, in which case saving and
// searching generated names is unavailable.
func NewServer(gen *generator.Generator, history store.Store, version string) *Server {
	s := &Server{
		gen:     gen,
		history: history,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "namecraft",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
