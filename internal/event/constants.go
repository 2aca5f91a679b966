package event

const (
	// EventSchemaVersion is the current version of the event schema
	EventSchemaVersion = "1.0"

	// LogMsgHandlerErrorFormat reports aggregated handler failures from Publish
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)
