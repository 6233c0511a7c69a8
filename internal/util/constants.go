package util

// Log message constants
const (
	LogStart   = "=== %s START ==="
	LogEnd     = "=== %s END ===\n"
	LogSection = "--- %s ---"
	LogError   = "ERROR: %v"
	LogWarning = "WARNING: %v"
)

// Client-facing response messages. The execute and health endpoints
// must report the uninitialized client with the exact same text.
const (
	MsgNotInitialized = "AI service not initialized. Check API key configuration."
	MsgMissingQuery   = `Missing or empty "query" field in the request.`
	MsgInvalidBody    = "Request body must be valid JSON."
	MsgInternalError  = "An internal error occurred while processing the request."
	MsgReady          = "Mental health agent is running."
)
