// ABOUTME: Core record and result types for the hosted record store
// ABOUTME: Models the batch envelope as explicit success/failure partitions
package recordstore

import "context"

// Record is a loosely-shaped row as the store returns it. Field values
// are whatever the JSON decoder produced; typed access goes through the
// schema package.
type Record map[string]any

// Order is one sort clause of a query.
type Order struct {
	FieldName string `json:"fieldName"`
	Sort      string `json:"sorttype"`
}

// Query selects fields and ordering for a fetch.
type Query struct {
	Fields  []string `json:"fields"`
	OrderBy []Order  `json:"orderBy,omitempty"`
}

// ItemFailure is a single rejected record inside an otherwise
// successful batch write or delete.
type ItemFailure struct {
	Message string `json:"message"`
	Record  Record `json:"data,omitempty"`
}

// BatchResult is the reduced form of the store's write envelope: the
// outer call succeeded and results are partitioned per record. An outer
// failure is reported as an error instead, so callers handle exactly
// three shapes: error, partial failure, success.
type BatchResult struct {
	Succeeded []Record
	Failed    []ItemFailure
}

// First returns the first successful record, or nil if none succeeded.
func (b *BatchResult) First() Record {
	if b == nil || len(b.Succeeded) == 0 {
		return nil
	}
	return b.Succeeded[0]
}

// Store is the record store boundary. The HTTP client implements it for
// the hosted platform; tests substitute the in-memory fake.
type Store interface {
	FetchRecords(ctx context.Context, table string, query Query) ([]Record, error)
	GetRecordByID(ctx context.Context, table string, id int, fields []string) (Record, error)
	CreateRecords(ctx context.Context, table string, records []Record) (*BatchResult, error)
	UpdateRecords(ctx context.Context, table string, records []Record) (*BatchResult, error)
	DeleteRecords(ctx context.Context, table string, ids []int) (*BatchResult, error)
}
