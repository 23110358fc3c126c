package ports

// Clipboard defines the interface for copying text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
