package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/starford/tubetrack/internal/apperr"
)

type rec struct {
	ID   int64
	Name string
}

func newRecs(seed ...rec) *Collection[rec] {
	return New(
		func(r rec) int64 { return r.ID },
		func(r *rec, id int64) { r.ID = id },
		seed,
	)
}

func TestCreateAppendsWithFreshID(t *testing.T) {
	c := newRecs(rec{ID: 1, Name: "a"}, rec{ID: 2, Name: "b"})
	got := c.Create(rec{Name: "c"})
	if got.ID != 3 {
		t.Errorf("id = %d, want 3", got.ID)
	}
	all := c.All()
	if len(all) != 3 || all[2].Name != "c" {
		t.Errorf("all = %+v", all)
	}
}

func TestDeletedIDNeverReused(t *testing.T) {
	c := newRecs(rec{ID: 1}, rec{ID: 2}, rec{ID: 3})
	if _, err := c.Delete(3); err != nil {
		t.Fatal(err)
	}
	issued := map[int64]bool{1: true, 2: true, 3: true}
	for range 5 {
		r := c.Create(rec{})
		if issued[r.ID] {
			t.Fatalf("id %d reused", r.ID)
		}
		issued[r.ID] = true
		if _, err := c.Delete(r.ID); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResetKeepsSequence(t *testing.T) {
	c := newRecs(rec{ID: 1}, rec{ID: 2})
	r := c.Create(rec{})
	c.Reset([]rec{{ID: 1}})
	if next := c.Create(rec{}); next.ID <= r.ID {
		t.Errorf("id after reset = %d, want > %d", next.ID, r.ID)
	}
}

func TestResetAssignsMissingIDs(t *testing.T) {
	c := newRecs(rec{ID: 5}, rec{Name: "no id"})
	all := c.All()
	if all[1].ID != 6 {
		t.Errorf("assigned id = %d, want 6", all[1].ID)
	}
}

func TestGetAndDeleteMissing(t *testing.T) {
	c := newRecs(rec{ID: 1})
	if _, err := c.Get(9); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get err = %v", err)
	}
	if _, err := c.Delete(9); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Delete err = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("len = %d", c.Len())
	}
}

func TestUpdateLeavesOldSnapshotIntact(t *testing.T) {
	c := newRecs(rec{ID: 1, Name: "before"})
	snap := c.All()
	got, err := c.Update(1, func(r rec) (rec, error) {
		r.Name = "after"
		return r, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "after" || c.All()[0].Name != "after" {
		t.Errorf("update not applied: %+v", c.All())
	}
	if snap[0].Name != "before" {
		t.Errorf("old snapshot mutated: %+v", snap)
	}
}

func TestUpdateErrorAborts(t *testing.T) {
	c := newRecs(rec{ID: 1, Name: "keep"})
	boom := errors.New("boom")
	_, err := c.Update(1, func(r rec) (rec, error) {
		r.Name = "lost"
		return r, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if c.All()[0].Name != "keep" {
		t.Error("failed update was applied")
	}
}

func TestUpdateCannotChangeID(t *testing.T) {
	c := newRecs(rec{ID: 1})
	got, _ := c.Update(1, func(r rec) (rec, error) {
		r.ID = 42
		return r, nil
	})
	if got.ID != 1 {
		t.Errorf("id = %d, want 1", got.ID)
	}
}

func TestConcurrentCreateUniqueIDs(t *testing.T) {
	c := newRecs()
	var wg sync.WaitGroup
	ids := make(chan int64, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- c.Create(rec{}).ID
		}()
	}
	wg.Wait()
	close(ids)
	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if c.Len() != 100 {
		t.Errorf("len = %d", c.Len())
	}
}

func TestValueUpdate(t *testing.T) {
	v := NewValue(rec{Name: "x"})
	if _, err := v.Update(func(r rec) (rec, error) { return r, errors.New("no") }); err == nil {
		t.Fatal("expected error")
	}
	got, _ := v.Update(func(r rec) (rec, error) {
		r.Name = "y"
		return r, nil
	})
	if got.Name != "y" || v.Get().Name != "y" {
		t.Errorf("value = %+v", v.Get())
	}
}
