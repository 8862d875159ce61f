// Package testutil provides shared test helpers for journals and polling.
package testutil

import (
	"testing"
	"time"

	"github.com/starford/tubetrack/internal/journal"
)

// TestJournal opens an in-memory activity journal that is closed on cleanup.
func TestJournal(t *testing.T) *journal.DB {
	t.Helper()
	db, err := journal.Open(journal.MemoryDSN)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Eventually polls fn every tick until it returns true or timeout elapses.
func Eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}
