package model

import (
	"encoding/json"
	"time"
)

// LogEntry is the message archived on NSQ for every served request.
type LogEntry struct {
	Topic      string    `json:"topic,omitempty"`
	Severity   string    `json:"severity"`
	Message    string    `json:"message"`
	Component  string    `json:"component,omitempty"`
	Method     string    `json:"method,omitempty"`
	Path       string    `json:"path,omitempty"`
	Status     int       `json:"status,omitempty"`
	DurationMs int64     `json:"durationMs"`
	Time       time.Time `json:"time"`
}

func (e *LogEntry) Bytes() ([]byte, error) {
	if len(e.Severity) == 0 {
		e.Severity = "INFO"
	}
	return json.Marshal(e)
}
