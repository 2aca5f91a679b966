package worker

// Log Messages - Worker Pool
const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"
)

// Log Messages - Sweep Worker
const (
	LogMsgSweepStarting = "Venture sweep starting"
	LogMsgSweepFailed   = "Venture sweep failed"
)
