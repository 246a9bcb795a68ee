package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/preview"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the portfolio editor as tools.
type Server struct {
	ctrl     *editor.Controller
	renderer *preview.Renderer
	now      func() time.Time
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server editing the document held by ctrl.
func NewServer(ctrl *editor.Controller, renderer *preview.Renderer) *Server {
	s := &Server{
		ctrl:     ctrl,
		renderer: renderer,
		now:      time.Now,
	}

	s.mcp = server.NewMCPServer(
		"portfoliai",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getPortfolioTool, s.handleGetPortfolio)
	s.mcp.AddTool(updatePortfolioTool, s.handleUpdatePortfolio)
	s.mcp.AddTool(enhanceBioTool, s.handleEnhanceBio)
	s.mcp.AddTool(suggestSkillsTool, s.handleSuggestSkills)
	s.mcp.AddTool(suggestBrandKeywordsTool, s.handleSuggestBrandKeywords)
	s.mcp.AddTool(generateProjectStoryTool, s.handleGenerateProjectStory)
	s.mcp.AddTool(enhanceProjectDescriptionTool, s.handleEnhanceProjectDescription)
	s.mcp.AddTool(renderPreviewTool, s.handleRenderPreview)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
