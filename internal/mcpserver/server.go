// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes KisanMitra tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/models"
	"github.com/aumai/kisanmitra/internal/pests"
)

// Server wraps the MCP server with the advisory tools.
type Server struct {
	mcp     *server.MCPServer
	store   market.Store
	catalog *pests.Catalog
	router  *advisory.Router
}

// New creates a new MCP server with all tools registered.
func New(store market.Store, catalog *pests.Catalog, router *advisory.Router) *Server {
	s := &Server{store: store, catalog: catalog, router: router}

	s.mcp = server.NewMCPServer(
		"KisanMitra",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("mandi_prices",
		mcp.WithDescription("Get mandi price records for a commodity, newest first, optionally filtered by state."),
		mcp.WithString("commodity", mcp.Required(), mcp.Description("Commodity name (e.g. rice, wheat)")),
		mcp.WithString("state", mcp.Description("Optional state filter (e.g. UP, Maharashtra)")),
	), s.mandiPrices)

	s.mcp.AddTool(mcp.NewTool("price_trend",
		mcp.WithDescription("Get chronological price records for a commodity at one mandi."),
		mcp.WithString("commodity", mcp.Required(), mcp.Description("Commodity name")),
		mcp.WithString("market", mcp.Required(), mcp.Description("Mandi/market name")),
	), s.priceTrend)

	s.mcp.AddTool(mcp.NewTool("identify_pest",
		mcp.WithDescription("Identify pests from observed field symptoms, ranked by symptom overlap."),
		mcp.WithString("symptoms", mcp.Required(), mcp.Description("Comma-separated observed symptoms (e.g. 'yellowing,wilting')")),
	), s.identifyPest)

	s.mcp.AddTool(mcp.NewTool("pests_by_crop",
		mcp.WithDescription("List all catalogued pests affecting a specific crop."),
		mcp.WithString("crop", mcp.Required(), mcp.Description("Crop name (e.g. Rice, Cotton)")),
	), s.pestsByCrop)

	s.mcp.AddTool(mcp.NewTool("ask_advisor",
		mcp.WithDescription("Route a free-text farming question to the advisory knowledge base. "+
			"Always returns an answer with sources and the standard disclaimer."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The farmer's question")),
		mcp.WithString("location", mcp.Description("Optional location for extension-office guidance")),
		mcp.WithString("language", mcp.Description("Language code echoed in the response (default en)")),
	), s.askAdvisor)

	// Resource: the mandatory advisory disclaimer.
	s.mcp.AddResource(
		mcp.NewResource("kisanmitra://disclaimer", "Advisory Disclaimer",
			mcp.WithResourceDescription("Disclaimer that must accompany every advisory answer shown to a farmer."),
			mcp.WithMIMEType("text/plain"),
		),
		s.readDisclaimerResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) mandiPrices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	commodity, err := req.RequireString("commodity")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	state := ""
	if v, stErr := req.RequireString("state"); stErr == nil {
		state = v
	}
	prices, err := s.store.Query(commodity, state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(prices) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no price data for %q", commodity)), nil
	}
	out, _ := json.MarshalIndent(prices, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) priceTrend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	commodity, err := req.RequireString("commodity")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mkt, err := req.RequireString("market")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	prices, err := s.store.Trend(commodity, mkt)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(prices) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no price data for %q at %q", commodity, mkt)), nil
	}
	out, _ := json.MarshalIndent(prices, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) identifyPest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("symptoms")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var symptoms []string
	for _, p := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(p); v != "" {
			symptoms = append(symptoms, v)
		}
	}
	matches := s.catalog.Identify(symptoms)
	if len(matches) == 0 {
		return mcp.NewToolResultText("no matching pests found; try different symptom keywords"), nil
	}
	out, _ := json.MarshalIndent(matches, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) pestsByCrop(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crop, err := req.RequireString("crop")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	matches := s.catalog.ByCrop(crop)
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no catalogued pests for crop %q", crop)), nil
	}
	out, _ := json.MarshalIndent(matches, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) askAdvisor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	q := models.Query{Text: query, Language: "en"}
	if v, locErr := req.RequireString("location"); locErr == nil {
		q.Location = v
	}
	if v, langErr := req.RequireString("language"); langErr == nil && v != "" {
		q.Language = v
	}
	resp := s.router.Respond(q)
	out, _ := json.MarshalIndent(resp, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readDisclaimerResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "kisanmitra://disclaimer",
			MIMEType: "text/plain",
			Text:     models.Disclaimer,
		},
	}, nil
}
