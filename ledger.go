package ashare

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LedgerFile is the name of the success ledger inside the dataset directory.
const LedgerFile = "successful_stocks.csv"

// Ledger is the append-only record of stocks already downloaded successfully.
// Membership only ever grows; no entry is rewritten or removed. Each success
// is flushed to disk before the next stock is processed, so a crash loses at
// most the in-flight stock.
type Ledger struct {
	done map[string]bool
	f    *os.File
}

// OpenLedger loads the persisted ledger, creating an empty one (with its
// header row) if the file does not exist. The returned Ledger holds the file
// open in append mode; call Close when the run is over.
func OpenLedger(path string) (*Ledger, error) {
	done, err := readLedger(path)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", path, err)
	}
	if info, err := f.Stat(); err == nil && info.Size() == 0 {
		if _, err := f.WriteString("code\n"); err != nil {
			f.Close()
			return nil, fmt.Errorf("cannot write ledger header: %w", err)
		}
	}

	return &Ledger{done: done, f: f}, nil
}

// readLedger reads every code from an existing ledger file. A missing file
// yields an empty set.
func readLedger(path string) (map[string]bool, error) {
	done := make(map[string]bool)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return done, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code == "" || code == "code" {
			continue
		}
		done[code] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", path, err)
	}
	return done, nil
}

// Done reports whether code was already downloaded successfully, in this run
// or an earlier one.
func (l *Ledger) Done(code string) bool { return l.done[code] }

// Len returns the number of recorded successes.
func (l *Ledger) Len() int { return len(l.done) }

// RecordSuccess adds code to the ledger and durably appends it to the file
// before returning. Recording the same code twice is a no-op.
func (l *Ledger) RecordSuccess(code string) error {
	if l.done[code] {
		return nil
	}
	if _, err := l.f.WriteString(code + "\n"); err != nil {
		return fmt.Errorf("cannot append %q to ledger: %w", code, err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("cannot sync ledger: %w", err)
	}
	l.done[code] = true
	return nil
}

// Close releases the underlying file.
func (l *Ledger) Close() error { return l.f.Close() }
