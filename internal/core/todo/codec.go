package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line prefixes of the persisted format.
const (
	PendingPrefix   = "TODO: "
	CompletedPrefix = "DONE: "
)

// ParseLine classifies one line of the persisted format. Lines carrying
// neither prefix report ok=false.
func ParseLine(line string) (focus Focus, title string, ok bool) {
	if rest, found := strings.CutPrefix(line, PendingPrefix); found {
		return FocusPending, rest, true
	}
	if rest, found := strings.CutPrefix(line, CompletedPrefix); found {
		return FocusCompleted, rest, true
	}
	return FocusPending, "", false
}

// Decode reads the persisted format. Unrecognized lines, blank lines
// included, are skipped whatever their length. The only error is a read
// error from r.
func Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Snapshot{}, fmt.Errorf("read tasks: %w", err)
		}

		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if focus, title, ok := ParseLine(line); ok {
				if focus == FocusCompleted {
					snap.Completed = append(snap.Completed, title)
				} else {
					snap.Pending = append(snap.Pending, title)
				}
			}
		}

		if err != nil {
			return snap, nil
		}
	}
}

// Encode writes every pending title followed by every completed title, one
// newline-terminated line each.
func Encode(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)

	for _, title := range snap.Pending {
		if _, err := bw.WriteString(PendingPrefix + title + "\n"); err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
	}
	for _, title := range snap.Completed {
		if _, err := bw.WriteString(CompletedPrefix + title + "\n"); err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}
