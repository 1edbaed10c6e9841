package journal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/darboux/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestJournal returns a Journal over a fresh temp file path.
func newTestJournal(t *testing.T) *journal.Journal {
	t.Helper()

	return journal.New(filepath.Join(t.TempDir(), "functions.txt"))
}

// TestJournal_EmptyLog ensures a missing log reports ErrNoEntries from
// both Entries and Last.
func TestJournal_EmptyLog(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.Entries()
	assert.ErrorIs(t, err, journal.ErrNoEntries)

	_, err = j.Last()
	assert.ErrorIs(t, err, journal.ErrNoEntries)
}

// TestJournal_AppendAndLast verifies the append → last round trip.
func TestJournal_AppendAndLast(t *testing.T) {
	j := newTestJournal(t)

	require.NoError(t, j.Append("x sin", "[0 ; 2]"))
	require.NoError(t, j.Append("x 2 ^", "[1 ; 0]"))

	last, err := j.Last()
	require.NoError(t, err)
	assert.Equal(t, journal.Entry{Integrand: "x 2 ^", Interval: "[1 ; 0]"}, last)
}

// TestJournal_Entries verifies ordering and pairing of the full log.
func TestJournal_Entries(t *testing.T) {
	j := newTestJournal(t)

	require.NoError(t, j.Append("x", "[0 ; 1]"))
	require.NoError(t, j.Append("x x *", "[-1 ; 1]"))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, journal.Entry{Integrand: "x", Interval: "[0 ; 1]"}, entries[0])
	assert.Equal(t, journal.Entry{Integrand: "x x *", Interval: "[-1 ; 1]"}, entries[1])
}

// TestJournal_TruncatedEntry ensures an integrand line without a matching
// interval line is reported, not silently paired with nothing.
func TestJournal_TruncatedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "functions.txt")
	require.NoError(t, os.WriteFile(path, []byte("x sin\n[0 ; 1]\nx cos\n"), 0o644))

	_, err := journal.New(path).Entries()
	assert.ErrorIs(t, err, journal.ErrTruncatedEntry)
}

// TestJournal_SkipsBlankLines ensures blank separator lines in the log do
// not break the pairing.
func TestJournal_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "functions.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n[0 ; 1]\n\nx exp\n[0 ; 2]\n"), 0o644))

	entries, err := journal.New(path).Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "x exp", entries[1].Integrand)
}
