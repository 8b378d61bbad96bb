package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"namecraft/internal/generator"
	"namecraft/internal/store"
	"namecraft/internal/theme"
)

const maxCount = 100

var errNoHistory = errors.New("history store is not configured")

type GenerateNamesInput struct {
	Kind         string `json:"kind" jsonschema:"NPC, Building, City, District, Street or Faction"`
	Theme        string `json:"theme,omitempty" jsonschema:"built-in theme or custom theme id, defaults to Fantasy"`
	Count        int    `json:"count,omitempty" jsonschema:"number of names, 1 to 100"`
	Gender       string `json:"gender,omitempty" jsonschema:"Male, Female or Neutral, NPC only"`
	BuildingType string `json:"building_type,omitempty" jsonschema:"Tavern, Inn, Shop, Temple, Guild, Smithy or Library, Building only"`
	Save         bool   `json:"save,omitempty" jsonschema:"record the names in the history store"`
}

type GenerateNamesOutput struct {
	Names []string `json:"names"`
	Seed  int64    `json:"seed"`
	RunID string   `json:"run_id,omitempty"`
}

type ListThemesInput struct{}

type ListThemesOutput struct {
	Themes []string `json:"themes"`
}

type DescribeThemeInput struct {
	Theme string `json:"theme" jsonschema:"built-in theme or custom theme id"`
}

type DescribeThemeOutput struct {
	Theme        string               `json:"theme"`
	Pools        []generator.PoolSize `json:"pools"`
	Combinations map[string]int       `json:"combinations"`
}

type ResetSessionInput struct{}

type ResetSessionOutput struct {
	Seed int64 `json:"seed"`
}

type SearchHistoryInput struct {
	Query string `json:"query" jsonschema:"search terms"`
	Theme string `json:"theme,omitempty" jsonschema:"restrict to a theme"`
	Kind  string `json:"kind,omitempty" jsonschema:"restrict to an entity kind"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum results"`
}

type HistoryRecordOutput struct {
	RunID     string  `json:"run_id"`
	Seed      int64   `json:"seed"`
	Theme     string  `json:"theme"`
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"created_at"`
	Score     float64 `json:"score"`
}

type SearchHistoryOutput struct {
	Results []HistoryRecordOutput `json:"results"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "generate_names",
		Description: "Generate names that are unique within the session for one entity kind",
	}, s.handleGenerateNames)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_themes",
		Description: "List built-in and custom theme identifiers",
	}, s.handleListThemes)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "describe_theme",
		Description: "Report pool sizes and name combinations for a theme",
	}, s.handleDescribeTheme)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "reset_session",
		Description: "Forget generated names and restart from the session seed",
	}, s.handleResetSession)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_history",
		Description: "Search previously saved names",
	}, s.handleSearchHistory)
}

func (s *Server) handleGenerateNames(ctx context.Context, req *sdk.CallToolRequest, input GenerateNamesInput) (*sdk.CallToolResult, GenerateNamesOutput, error) {
	request, err := requestFromInput(input)
	if err != nil {
		return nil, GenerateNamesOutput{}, err
	}
	count := input.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > maxCount {
		return nil, GenerateNamesOutput{}, fmt.Errorf("count must be between 1 and %d", maxCount)
	}
	if input.Save && s.history == nil {
		return nil, GenerateNamesOutput{}, errNoHistory
	}

	s.mu.Lock()
	names := make([]string, 0, count)
	for range count {
		name, err := s.gen.Generate(request)
		if err != nil {
			s.mu.Unlock()
			return nil, GenerateNamesOutput{}, err
		}
		names = append(names, name)
	}
	seed := s.gen.Seed()
	s.mu.Unlock()

	output := GenerateNamesOutput{Names: names, Seed: seed}
	if input.Save {
		run := store.NewRun(seed, time.Now())
		for _, name := range names {
			run.Add(request.Theme.String(), request.Kind.String(), name)
		}
		if err := s.history.SaveNames(ctx, run.Records()); err != nil {
			return nil, GenerateNamesOutput{}, err
		}
		output.RunID = run.ID
	}
	return nil, output, nil
}

func (s *Server) handleListThemes(ctx context.Context, req *sdk.CallToolRequest, input ListThemesInput) (*sdk.CallToolResult, ListThemesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, ListThemesOutput{Themes: s.gen.ThemeNames()}, nil
}

func (s *Server) handleDescribeTheme(ctx context.Context, req *sdk.CallToolRequest, input DescribeThemeInput) (*sdk.CallToolResult, DescribeThemeOutput, error) {
	if input.Theme == "" {
		return nil, DescribeThemeOutput{}, fmt.Errorf("theme is required")
	}

	s.mu.Lock()
	desc, err := s.gen.DescribeTheme(theme.ParseRef(input.Theme))
	s.mu.Unlock()
	if err != nil {
		return nil, DescribeThemeOutput{}, err
	}
	return nil, DescribeThemeOutput{
		Theme:        desc.Theme,
		Pools:        desc.Pools,
		Combinations: desc.CombinationsByName(),
	}, nil
}

func (s *Server) handleResetSession(ctx context.Context, req *sdk.CallToolRequest, input ResetSessionInput) (*sdk.CallToolResult, ResetSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Reset()
	return nil, ResetSessionOutput{Seed: s.gen.Seed()}, nil
}

func (s *Server) handleSearchHistory(ctx context.Context, req *sdk.CallToolRequest, input SearchHistoryInput) (*sdk.CallToolResult, SearchHistoryOutput, error) {
	if input.Query == "" {
		return nil, SearchHistoryOutput{}, fmt.Errorf("query is required")
	}
	if s.history == nil {
		return nil, SearchHistoryOutput{}, errNoHistory
	}

	results, err := s.history.Search(ctx, input.Query, store.Filter{Theme: input.Theme, Kind: input.Kind, Limit: input.Limit})
	if err != nil {
		return nil, SearchHistoryOutput{}, err
	}

	output := make([]HistoryRecordOutput, 0, len(results))
	for _, r := range results {
		output = append(output, historyRecordOutput(r))
	}
	return nil, SearchHistoryOutput{Results: output}, nil
}

func requestFromInput(input GenerateNamesInput) (generator.Request, error) {
	if input.Kind == "" {
		return generator.Request{}, fmt.Errorf("kind is required")
	}
	kind, err := theme.ParseEntityKind(input.Kind)
	if err != nil {
		return generator.Request{}, err
	}

	ref := theme.Builtin(theme.Fantasy)
	if input.Theme != "" {
		ref = theme.ParseRef(input.Theme)
	}
	request := generator.Request{Kind: kind, Theme: ref}

	if input.Gender != "" {
		if kind != theme.KindNPC {
			return generator.Request{}, fmt.Errorf("gender only applies to %s names", theme.KindNPC)
		}
		gender, err := theme.ParseGender(input.Gender)
		if err != nil {
			return generator.Request{}, err
		}
		request.Gender = &gender
	}
	if input.BuildingType != "" {
		if kind != theme.KindBuilding {
			return generator.Request{}, fmt.Errorf("building type only applies to %s names", theme.KindBuilding)
		}
		bt, err := theme.ParseBuildingType(input.BuildingType)
		if err != nil {
			return generator.Request{}, err
		}
		request.BuildingType = &bt
	}
	return request, nil
}

func historyRecordOutput(r store.SearchResult) HistoryRecordOutput {
	return HistoryRecordOutput{
		RunID:     r.RunID,
		Seed:      r.Seed,
		Theme:     r.Theme,
		Kind:      r.Kind,
		Name:      r.Name,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		Score:     r.Score,
	}
}
