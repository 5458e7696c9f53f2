package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No minivdom.json or minivdom.yaml was found in the given directory.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The port must be between 0 and 65535.",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid log setting",
		Detail:   "log.level must be one of debug, info, warn, error and log.format one of text, json.",
	},
	"E124": {
		Category: CategoryConfig,
		Message:  "Invalid panel size",
		Detail:   "panel.maxEntries must be positive.",
	},

	// ============================================
	// Render Errors (E200-E209)
	// ============================================

	"E201": {
		Category: CategoryRender,
		Message:  "Render target is nil",
		Detail:   "Render was called without a container handle to render into.",
	},
	"E202": {
		Category: CategoryRender,
		Message:  "Previous node was never mounted",
		Detail:   "The previous tree for this target has a node without a host handle. Nodes must not be shared between targets or reused after their target was re-rendered.",
	},

	// ============================================
	// Validation Errors (E210-E219)
	// ============================================

	"E210": {
		Category: CategoryValidation,
		Message:  "Invalid element tag",
		Detail:   "Element tags must be non-empty and must not start with '#', which is reserved for text nodes.",
	},
	"E211": {
		Category: CategoryValidation,
		Message:  "Nil node in children",
		Detail:   "A single child or an entry of a child sequence is nil.",
	},
	"E212": {
		Category: CategoryValidation,
		Message:  "Malformed text node",
		Detail:   "Text nodes carry a string payload and no properties or child nodes.",
	},
	"E213": {
		Category: CategoryValidation,
		Message:  "Duplicate property",
		Detail:   "The same attribute or event appears more than once on one element.",
	},
	"E214": {
		Category: CategoryValidation,
		Message:  "Invalid event property",
		Detail:   "Event properties need a *Handler, a func(Event) or a func() as their handler.",
	},
	"E215": {
		Category: CategoryValidation,
		Message:  "Node used more than once",
		Detail:   "A node instance appears at two places in the tree. Each position needs its own node because nodes record the handle they were mounted to.",
	},
	"E216": {
		Category: CategoryValidation,
		Message:  "Unknown node kind",
		Detail:   "Nodes must be elements or text nodes.",
	},

	// ============================================
	// CLI Errors (E300-E309)
	// ============================================

	"E300": {
		Category: CategoryCLI,
		Message:  "Unknown demo action",
		Detail:   "Valid actions are increment, decrement, change-text, add-list-item and style-toggle.",
	},
	"E301": {
		Category: CategoryCLI,
		Message:  "Unknown output format",
		Detail:   "Valid formats are text, json, yaml and html.",
	},
	"E302": {
		Category: CategoryCLI,
		Message:  "Dev panel server failed",
		Detail:   "The HTTP server stopped with an error.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
