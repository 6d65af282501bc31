package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hoheria/sandboxctl/internal/configs"
)

// Entry represents a single run log entry.
type Entry struct {
	RunID     string `json:"run_id"`
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Username performing the run.
	Operation string `json:"op"`   // "check" or "stamp".

	// Optional fields depending on operation.
	Mode       string `json:"mode,omitempty"`        // online/offline, for check.
	Outcome    string `json:"outcome,omitempty"`     // "success" or "failure".
	FailedStep string `json:"failed_step,omitempty"` // First failing stage, for failures.
	Target     string `json:"target,omitempty"`      // Target app dir or stamped dirs.
}

// NewEntry creates an entry for op with a fresh run ID and the current
// user filled in.
func NewEntry(op string) Entry {
	return Entry{
		RunID:     uuid.New().String(),
		User:      configs.SandboxSettings.Username,
		Operation: op,
	}
}

// Log appends an entry to the run log.
// If logging fails, the run continues; a bootstrap must never fail just
// because its log entry could not be written.
func Log(entry Entry) {
	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the run log file.
func LogPath() string {
	return filepath.Join(configs.SandboxSettings.DataPath, "runs.jsonl")
}

// ReadEntries reads all entries from the run log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into run log entries.
// Malformed lines are silently skipped to handle partial writes.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
