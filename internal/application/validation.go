package application

import (
	"fmt"
	"strconv"
	"strings"

	"memo/internal/domain"
	"memo/internal/ports"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts field names to words for error messages
// (e.g., "noteRef" -> "note reference")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"noteRef": "note reference",
		"noteID":  "note ID",
		"text":    "text",
		"filter":  "filter",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ResolveRef turns a note reference into an id. A reference is either a
// numeric id ("1734000000000") or a 1-based position in the current view
// ("@2"). A well-formed position past the end of the view resolves to the
// zero id, which is never allocated, so mutations on it are no-ops.
func ResolveRef(store ports.NoteStore, ref string) (domain.ID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, &ValidationError{
			Field:   "noteRef",
			Message: "note reference is required",
			Err:     ErrInvalidRef,
		}
	}

	if pos, ok := strings.CutPrefix(ref, "@"); ok {
		n, err := strconv.Atoi(pos)
		if err != nil || n < 1 {
			return 0, &ValidationError{
				Field:   "noteRef",
				Message: fmt.Sprintf("expected a position like @1, got: %s", ref),
				Err:     ErrInvalidRef,
			}
		}
		visible := store.VisibleNotes()
		if n > len(visible) {
			return 0, nil
		}
		return visible[n-1].ID, nil
	}

	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{
			Field:   "noteRef",
			Message: fmt.Sprintf("expected a note ID or @position, got: %s", ref),
			Err:     ErrInvalidRef,
		}
	}
	return domain.ID(id), nil
}
