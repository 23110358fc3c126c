package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"memo/internal/application/commands"
	"memo/internal/ports"
)

const refDescription = "Note ID (e.g. 1734000000000) or position in the current view (e.g. @1)"

// RegisterWriteTools adds all note mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.NoteStore) {
	s.AddTool(createNoteTool(), createNoteHandler(store))
	s.AddTool(editNoteTool(), editNoteHandler(store))
	s.AddTool(refTool("archive_note", "Archive a note. Archived notes leave the active view."),
		archiveHandler(store, true))
	s.AddTool(refTool("unarchive_note", "Move an archived note back to the active view."),
		archiveHandler(store, false))
	s.AddTool(refTool("remove_note", "Move a note to the trash. Removed notes can be restored until purged."),
		removeHandler(store, true))
	s.AddTool(refTool("restore_note", "Take a note out of the trash."),
		removeHandler(store, false))
	s.AddTool(purgeTool(), purgeHandler(store))
	s.AddTool(setFilterTool(), setFilterHandler(store))
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note at the top of the list. Empty text is ignored."),
		mcp.WithString("text",
			mcp.Description("Note text"),
			mcp.Required(),
		),
	)
}

func createNoteHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := req.GetString("text", "")

		result, err := commands.NewCreateNoteCommand(store, text).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- edit_note ---

func editNoteTool() mcp.Tool {
	return mcp.NewTool("edit_note",
		mcp.WithDescription("Replace the text of a note, whatever its state."),
		mcp.WithString("ref",
			mcp.Description(refDescription),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("New note text"),
			mcp.Required(),
		),
	)
}

func editNoteHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := req.GetString("ref", "")
		text := req.GetString("text", "")

		result, err := commands.NewEditNoteCommand(store, ref, text).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- archive_note / unarchive_note ---

func refTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("ref",
			mcp.Description(refDescription),
			mcp.Required(),
		),
	)
}

func archiveHandler(store ports.NoteStore, archived bool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := req.GetString("ref", "")

		cmd := commands.NewArchiveNoteCommand(store, ref)
		if !archived {
			cmd = commands.NewUnarchiveNoteCommand(store, ref)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_note / restore_note ---

func removeHandler(store ports.NoteStore, removed bool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := req.GetString("ref", "")

		cmd := commands.NewRemoveNoteCommand(store, ref)
		if !removed {
			cmd = commands.NewRestoreNoteCommand(store, ref)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- purge_removed ---

func purgeTool() mcp.Tool {
	return mcp.NewTool("purge_removed",
		mcp.WithDescription("Permanently delete every removed note. This cannot be undone."),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

func purgeHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewPurgeRemovedCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_filter ---

func setFilterTool() mcp.Tool {
	return mcp.NewTool("set_filter",
		mcp.WithDescription("Switch the current view. Positions like @1 refer to this view."),
		mcp.WithString("filter",
			mcp.Description("active, archived or removed"),
			mcp.Required(),
			mcp.Enum("active", "archived", "removed"),
		),
	)
}

func setFilterHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("filter", "")
		if name == "" {
			return toolError(fmt.Errorf("filter is required"))
		}

		result, err := commands.NewSetFilterCommand(store, name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
