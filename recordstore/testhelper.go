// ABOUTME: In-memory fake store for tests without server dependency
// ABOUTME: Supports forced outer failures and per-record rejections
package recordstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// FakeStore implements Store against in-process maps. Failure knobs let
// tests exercise each arm of the service contract: Err forces outer
// failures, RejectWrites turns every submitted record into a
// per-record failure inside a successful envelope.
type FakeStore struct {
	mu     sync.Mutex
	tables map[string]map[int]Record
	nextID int

	Err          error
	RejectWrites bool
}

var _ Store = (*FakeStore)(nil)

// NewFakeStore returns an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		tables: make(map[string]map[int]Record),
		nextID: 1,
	}
}

// Seed inserts a record directly, assigning an id, and returns it.
func (f *FakeStore) Seed(table string, rec Record) Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insert(table, rec)
}

func (f *FakeStore) insert(table string, rec Record) Record {
	if f.tables[table] == nil {
		f.tables[table] = make(map[int]Record)
	}
	stored := Record{}
	for k, v := range rec {
		stored[k] = v
	}
	stored["Id"] = f.nextID
	f.tables[table][f.nextID] = stored
	f.nextID++
	return stored
}

// Count reports how many records a table holds.
func (f *FakeStore) Count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[table])
}

func (f *FakeStore) FetchRecords(_ context.Context, table string, _ Query) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	rows := f.tables[table]
	ids := make([]int, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	// Store-defined order is newest first
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, rows[id])
	}
	return out, nil
}

func (f *FakeStore) GetRecordByID(_ context.Context, table string, id int, _ []string) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	rec, ok := f.tables[table][id]
	if !ok {
		return nil, fmt.Errorf("record %d does not exist in %s", id, table)
	}
	return rec, nil
}

func (f *FakeStore) CreateRecords(_ context.Context, table string, records []Record) (*BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	result := &BatchResult{}
	for _, rec := range records {
		if f.RejectWrites {
			result.Failed = append(result.Failed, ItemFailure{Message: "rejected by store validation", Record: rec})
			continue
		}
		result.Succeeded = append(result.Succeeded, f.insert(table, rec))
	}
	return result, nil
}

func (f *FakeStore) UpdateRecords(_ context.Context, table string, records []Record) (*BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	result := &BatchResult{}
	for _, rec := range records {
		id, ok := recordID(rec)
		if !ok || f.tables[table][id] == nil {
			result.Failed = append(result.Failed, ItemFailure{Message: "record not found", Record: rec})
			continue
		}
		if f.RejectWrites {
			result.Failed = append(result.Failed, ItemFailure{Message: "rejected by store validation", Record: rec})
			continue
		}
		stored := f.tables[table][id]
		for k, v := range rec {
			stored[k] = v
		}
		result.Succeeded = append(result.Succeeded, stored)
	}
	return result, nil
}

func (f *FakeStore) DeleteRecords(_ context.Context, table string, ids []int) (*BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	result := &BatchResult{}
	for _, id := range ids {
		rec, ok := f.tables[table][id]
		if !ok || f.RejectWrites {
			result.Failed = append(result.Failed, ItemFailure{Message: fmt.Sprintf("record %d not deleted", id)})
			continue
		}
		delete(f.tables[table], id)
		result.Succeeded = append(result.Succeeded, rec)
	}
	return result, nil
}

func recordID(rec Record) (int, bool) {
	switch v := rec["Id"].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
