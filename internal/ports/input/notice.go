package input

// VariantDestructive marks a Notice that reports a failure.
const VariantDestructive = "destructive"

// Notice is a short user-facing message (a toast in the web client).
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}
