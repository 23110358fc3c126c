// Package script drives a note session from line-oriented text input,
// one command per line.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"memo/internal/application/commands"
	"memo/internal/ports"
)

// Interpreter executes script lines against a note store and writes each
// command's message to out
type Interpreter struct {
	store  ports.NoteStore
	out    io.Writer
	logger *zap.Logger
}

// NewInterpreter creates a new Interpreter. A nil logger disables logging.
func NewInterpreter(store ports.NoteStore, out io.Writer, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{
		store:  store,
		out:    out,
		logger: logger.Named("script"),
	}
}

// LineError reports the script line a failure happened on
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Run executes every line from r, stopping at the first failing line
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.Exec(ctx, scanner.Text()); err != nil {
			in.logger.Debug("script line failed", zap.Int("line", lineNo), zap.Error(err))
			return &LineError{Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

// Exec executes a single line. Blank lines and lines starting with '#'
// are ignored.
func (in *Interpreter) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	verb, rest, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)

	switch verb {
	case "create", "add":
		result, err := commands.NewCreateNoteCommand(in.store, rest).Execute(ctx)
		if err != nil {
			return err
		}
		return in.println(result.Message)

	case "edit":
		ref, text, _ := strings.Cut(rest, " ")
		result, err := commands.NewEditNoteCommand(in.store, ref, strings.TrimSpace(text)).Execute(ctx)
		if err != nil {
			return err
		}
		return in.println(result.Message)

	case "archive", "unarchive":
		ref, err := singleArg(verb, rest)
		if err != nil {
			return err
		}
		cmd := commands.NewArchiveNoteCommand(in.store, ref)
		if verb == "unarchive" {
			cmd = commands.NewUnarchiveNoteCommand(in.store, ref)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return err
		}
		return in.println(result.Message)

	case "remove", "restore":
		ref, err := singleArg(verb, rest)
		if err != nil {
			return err
		}
		cmd := commands.NewRemoveNoteCommand(in.store, ref)
		if verb == "restore" {
			cmd = commands.NewRestoreNoteCommand(in.store, ref)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return err
		}
		return in.println(result.Message)

	case "purge":
		result, err := commands.NewPurgeRemovedCommand(in.store).Execute(ctx)
		if err != nil {
			return err
		}
		return in.println(result.Message)

	case "filter":
		name, err := singleArg(verb, rest)
		if err != nil {
			return err
		}
		result, err := commands.NewSetFilterCommand(in.store, name).Execute(ctx)
		if err != nil {
			return err
		}
		return in.println(result.Message)

	case "list":
		cmd := commands.NewListNotesCommand(in.store)
		if rest != "" {
			cmd = commands.NewListNotesInCommand(in.store, rest)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(in.out, ensureNewline(result.Format()))
		return err

	default:
		return fmt.Errorf("unknown command: %s", verb)
	}
}

func (in *Interpreter) println(msg string) error {
	_, err := fmt.Fprintln(in.out, msg)
	return err
}

func singleArg(verb, rest string) (string, error) {
	if rest == "" {
		return "", fmt.Errorf("%s: missing argument", verb)
	}
	if strings.ContainsAny(rest, " \t") {
		return "", fmt.Errorf("%s: expected one argument, got: %s", verb, rest)
	}
	return rest, nil
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
