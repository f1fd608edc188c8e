package models

// HealthResponse is the response for GET /.
type HealthResponse struct {
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
	Uptime    string       `json:"uptime"`
	Sessions  SessionStats `json:"sessions"`
	Version   string       `json:"version"`
}

// SessionStats reports the state of the browser session limiter.
type SessionStats struct {
	// MaxSessions is the concurrent session cap; 0 means unlimited.
	MaxSessions    int   `json:"max_sessions"`
	ActiveSessions int   `json:"active_sessions"`
	TotalSessions  int64 `json:"total_sessions"`
}
