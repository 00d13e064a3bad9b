// ABOUTME: Quote record service
// ABOUTME: CRUD facade over the quote_c table
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/schema"
)

type QuoteService struct {
	store recordstore.Store
	log   *zap.Logger
}

func NewQuoteService(store recordstore.Store, log *zap.Logger) *QuoteService {
	return &QuoteService{store: store, log: log}
}

func (s *QuoteService) List(ctx context.Context) []models.Quote {
	records, err := s.store.FetchRecords(ctx, schema.TableQuote, listQuery(schema.Quote, "Id"))
	if err != nil {
		s.log.Warn("failed to fetch quotes", zap.Error(err))
		return nil
	}
	quotes := make([]models.Quote, 0, len(records))
	for _, rec := range records {
		quotes = append(quotes, models.QuoteFromRecord(rec))
	}
	return quotes
}

func (s *QuoteService) Get(ctx context.Context, id int) *models.Quote {
	rec, err := s.store.GetRecordByID(ctx, schema.TableQuote, id, schema.Quote.ReadFields())
	if err != nil {
		s.log.Warn("failed to fetch quote", zap.Int("id", id), zap.Error(err))
		return nil
	}
	quote := models.QuoteFromRecord(rec)
	return &quote
}

func (s *QuoteService) Create(ctx context.Context, input map[string]any) *models.Quote {
	rec, err := schema.Quote.Coerce(input)
	if err != nil {
		s.log.Warn("quote input rejected", zap.Error(err))
		return nil
	}

	result, callErr := s.store.CreateRecords(ctx, schema.TableQuote, []recordstore.Record{rec})
	created := reduce(s.log, schema.TableQuote, "create", result, callErr)
	if created == nil {
		return nil
	}
	quote := models.QuoteFromRecord(created)
	return &quote
}

func (s *QuoteService) Update(ctx context.Context, id int, input map[string]any) *models.Quote {
	rec, err := schema.Quote.Coerce(input)
	if err != nil {
		s.log.Warn("quote input rejected", zap.Int("id", id), zap.Error(err))
		return nil
	}
	rec["Id"] = id

	result, callErr := s.store.UpdateRecords(ctx, schema.TableQuote, []recordstore.Record{rec})
	updated := reduce(s.log, schema.TableQuote, "update", result, callErr)
	if updated == nil {
		return nil
	}
	quote := models.QuoteFromRecord(updated)
	return &quote
}

func (s *QuoteService) Delete(ctx context.Context, id int) bool {
	return deleteOne(ctx, s.store, s.log, schema.TableQuote, id)
}
