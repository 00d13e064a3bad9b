// ABOUTME: Shared plumbing for the per-entity record services
// ABOUTME: Reduces batch envelopes and logs every failure path
package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/schema"
)

// Services never return errors past their boundary: failures are
// logged and signalled by nil, false, or an empty slice, which callers
// must check. A transient store outage renders as "no records", not a
// crash.

func listQuery(e schema.Entity, orderField string) recordstore.Query {
	return recordstore.Query{
		Fields:  e.ReadFields(),
		OrderBy: []recordstore.Order{{FieldName: orderField, Sort: "DESC"}},
	}
}

// reduce collapses a size-one write batch to its single successful
// record. Outer failure and zero-success batches both come back nil;
// per-record rejections are logged with the store's message.
func reduce(log *zap.Logger, table, op string, result *recordstore.BatchResult, err error) recordstore.Record {
	if err != nil {
		log.Warn("store write failed",
			zap.String("table", table),
			zap.String("op", op),
			zap.Error(err))
		return nil
	}
	for _, f := range result.Failed {
		log.Warn("record rejected by store",
			zap.String("table", table),
			zap.String("op", op),
			zap.String("reason", f.Message))
	}
	return result.First()
}

func deleteOne(ctx context.Context, store recordstore.Store, log *zap.Logger, table string, id int) bool {
	result, err := store.DeleteRecords(ctx, table, []int{id})
	if err != nil {
		log.Warn("store delete failed",
			zap.String("table", table),
			zap.Int("id", id),
			zap.Error(err))
		return false
	}
	for _, f := range result.Failed {
		log.Warn("record not deleted",
			zap.String("table", table),
			zap.Int("id", id),
			zap.String("reason", f.Message))
	}
	return len(result.Succeeded) > 0
}

// stampIfEmpty fills a timestamp column the caller did not supply.
func stampIfEmpty(rec recordstore.Record, field string) {
	if s, ok := rec[field].(string); !ok || s == "" {
		rec[field] = time.Now().UTC().Format(time.RFC3339)
	}
}
