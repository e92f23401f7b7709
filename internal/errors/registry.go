package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Dynamic rendering errors (Q001-Q019)

	"Q001": {
		Category:   CategoryDynamic,
		Message:    "Render child exited with an error",
		Detail:     "The child process reported a failure before finishing the document. Any partial output was discarded.",
		Suggestion: "Check the child's stderr output included in the error for the underlying cause.",
	},
	"Q002": {
		Category:   CategoryDynamic,
		Message:    "Render child could not be started",
		Detail:     "The configured child executable could not be spawned.",
		Suggestion: "Verify the child path in quill.json exists and is executable, or use self mode.",
	},
	"Q003": {
		Category:   CategoryDynamic,
		Message:    "Render timed out",
		Detail:     "The child did not produce a complete document within the configured timeout and was killed.",
		Suggestion: "Raise dynamic.timeout_ms in quill.json or investigate slow template entry points.",
	},

	// Template errors (Q020-Q029)

	"Q020": {
		Category:   CategoryTemplate,
		Message:    "Unknown template id",
		Detail:     "No entry point is registered under the requested template id.",
		Suggestion: "Register the template before serving requests, and check the id for typos.",
	},
	"Q021": {
		Category:   CategoryTemplate,
		Message:    "Payload could not be decoded",
		Detail:     "The template's entry point rejected the request payload.",
		Suggestion: "Make sure the caller serializes the payload in the encoding the template expects.",
	},

	// Protocol errors (Q030-Q039)

	"Q030": {
		Category:   CategoryProtocol,
		Message:    "Malformed render request",
		Detail:     "The framed request on stdin was truncated or structurally invalid.",
		Suggestion: "Only write requests through the protocol package; do not share the child's stdin.",
	},

	// Configuration errors (Q040-Q049)

	"Q040": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Detail:     "quill.json could not be parsed or failed validation.",
		Suggestion: "Run quill with --help for the expected configuration fields.",
	},

	// Publish errors (Q050-Q059)

	"Q050": {
		Category:   CategoryPublish,
		Message:    "Upload failed",
		Detail:     "The rendered document could not be written to the configured bucket.",
		Suggestion: "Check bucket name, region and credentials.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
