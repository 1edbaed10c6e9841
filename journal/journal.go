// Package journal persists past integration requests to a flat text log
// where integrand lines and interval lines alternate:
//
//	x sin x *
//	[0 ; 2]
//	x 2 ^
//	[1 ; 0]
//
// The log is append-only; the most recent entry is the last pair of
// lines.  The integration engine never touches the file itself — it only
// receives the already-extracted pair of strings.
package journal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNoEntries is returned when the log is missing or holds no entry.
	ErrNoEntries = errors.New("journal: no saved entries")

	// ErrTruncatedEntry is returned when the log ends with an integrand
	// line that has no interval line after it.
	ErrTruncatedEntry = errors.New("journal: truncated entry at end of log")
)

// Entry is one saved request: an RPN integrand and its interval string.
type Entry struct {
	Integrand string
	Interval  string
}

// Journal reads and appends entries of a log file at a fixed path.
type Journal struct {
	path string
}

// New returns a Journal bound to path.  The file is created lazily on
// the first Append.
func New(path string) *Journal {
	return &Journal{path: path}
}

// Append writes one entry (two lines) to the end of the log.
func (j *Journal) Append(integrand, interval string) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("journal: open %s: %w", j.path, err)
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "%s\n%s\n", integrand, interval); err != nil {
		return fmt.Errorf("journal: write %s: %w", j.path, err)
	}

	return nil
}

// Entries reads the whole log and pairs its lines into entries.
// A missing file yields ErrNoEntries; an odd trailing line yields
// ErrTruncatedEntry.
func (j *Journal) Entries() ([]Entry, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoEntries
		}

		return nil, fmt.Errorf("journal: open %s: %w", j.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("journal: read %s: %w", j.path, err)
	}

	if len(lines) == 0 {
		return nil, ErrNoEntries
	}
	if len(lines)%2 != 0 {
		return nil, ErrTruncatedEntry
	}

	entries := make([]Entry, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		entries = append(entries, Entry{Integrand: lines[i], Interval: lines[i+1]})
	}

	return entries, nil
}

// Last returns the most recent entry.
func (j *Journal) Last() (Entry, error) {
	entries, err := j.Entries()
	if err != nil {
		return Entry{}, err
	}

	return entries[len(entries)-1], nil
}
