package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"memo/internal/application/commands"
	"memo/internal/ports"
)

// RegisterReadTools adds all read-only note tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.NoteStore) {
	s.AddTool(listNotesTool(), listNotesHandler(store))
	s.AddTool(countNotesTool(), countNotesHandler(store))
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List notes. Without arguments lists the current view. With a filter lists that state without changing the current view."),
		mcp.WithString("filter",
			mcp.Description("Lifecycle state to list: active, archived or removed. Omit for the current view."),
		),
	)
}

func listNotesHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListNotesCommand(store)
		if name := req.GetString("filter", ""); name != "" {
			cmd = commands.NewListNotesInCommand(store, name)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Format()), nil
	}
}

// --- count_notes ---

func countNotesTool() mcp.Tool {
	return mcp.NewTool("count_notes",
		mcp.WithDescription("Count notes in each lifecycle state and show the current view."),
	)
}

func countNotesHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := store.Counts()
		return mcp.NewToolResultText(fmt.Sprintf(
			"active: %d\narchived: %d\nremoved: %d\nshowing: %s\n",
			c.Active, c.Archived, c.Removed, store.Filter(),
		)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
