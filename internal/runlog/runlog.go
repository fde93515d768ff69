// Package runlog collects the ordered, human-readable record of everything a
// configuration run did (or skipped), and writes it to configure.log at the
// end of the run.
package runlog

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Log is an append-only list of run entries. Entries are mirrored to slog at
// debug level so --verbose shows them live; the flushed file is the canonical
// record.
type Log struct {
	entries []string
}

// New creates a run log whose first entry identifies the run.
func New() *Log {
	l := &Log{}
	l.Printf("=== siteconfig run %s @ %s ===", uuid.NewString(), time.Now().Format(time.RFC3339))
	return l
}

// Printf appends a formatted entry.
func (l *Log) Printf(format string, args ...any) {
	entry := fmt.Sprintf(format, args...)
	l.entries = append(l.entries, entry)
	slog.Debug("runlog", "entry", entry)
}

// Entries returns the accumulated entries in order.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Flush overwrites path with the full log. The file is rewritten each run,
// not appended across runs.
func (l *Log) Flush(path string) error {
	data := strings.Join(l.entries, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("failed to write run log: %w", err)
	}
	return nil
}
