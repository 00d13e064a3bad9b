// ABOUTME: Deal record service
// ABOUTME: CRUD facade over the deal_c table plus stage moves
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/schema"
)

type DealService struct {
	store recordstore.Store
	log   *zap.Logger
}

func NewDealService(store recordstore.Store, log *zap.Logger) *DealService {
	return &DealService{store: store, log: log}
}

func (s *DealService) List(ctx context.Context) []models.Deal {
	records, err := s.store.FetchRecords(ctx, schema.TableDeal, listQuery(schema.Deal, "Id"))
	if err != nil {
		s.log.Warn("failed to fetch deals", zap.Error(err))
		return nil
	}
	deals := make([]models.Deal, 0, len(records))
	for _, rec := range records {
		deals = append(deals, models.DealFromRecord(rec))
	}
	return deals
}

func (s *DealService) Get(ctx context.Context, id int) *models.Deal {
	rec, err := s.store.GetRecordByID(ctx, schema.TableDeal, id, schema.Deal.ReadFields())
	if err != nil {
		s.log.Warn("failed to fetch deal", zap.Int("id", id), zap.Error(err))
		return nil
	}
	deal := models.DealFromRecord(rec)
	return &deal
}

func (s *DealService) Create(ctx context.Context, input map[string]any) *models.Deal {
	rec, err := schema.Deal.Coerce(input)
	if err != nil {
		s.log.Warn("deal input rejected", zap.Error(err))
		return nil
	}
	stampIfEmpty(rec, "created_at_c")

	result, callErr := s.store.CreateRecords(ctx, schema.TableDeal, []recordstore.Record{rec})
	created := reduce(s.log, schema.TableDeal, "create", result, callErr)
	if created == nil {
		return nil
	}
	deal := models.DealFromRecord(created)
	return &deal
}

func (s *DealService) Update(ctx context.Context, id int, input map[string]any) *models.Deal {
	rec, err := schema.Deal.Coerce(input)
	if err != nil {
		s.log.Warn("deal input rejected", zap.Int("id", id), zap.Error(err))
		return nil
	}
	rec["Id"] = id

	result, callErr := s.store.UpdateRecords(ctx, schema.TableDeal, []recordstore.Record{rec})
	updated := reduce(s.log, schema.TableDeal, "update", result, callErr)
	if updated == nil {
		return nil
	}
	deal := models.DealFromRecord(updated)
	return &deal
}

// MoveStage re-submits the deal with only its stage changed, the board
// drag operation.
func (s *DealService) MoveStage(ctx context.Context, id int, stage string) *models.Deal {
	current := s.Get(ctx, id)
	if current == nil {
		return nil
	}

	input := map[string]any{
		"title_c":               current.Title,
		"value_c":               current.Value,
		"stage_c":               stage,
		"probability_c":         current.Probability,
		"expected_close_date_c": current.ExpectedCloseDate,
		"notes_c":               current.Notes,
		"created_at_c":          current.CreatedAt,
	}
	if current.ContactID != nil {
		input["contact_id_c"] = *current.ContactID
	}
	return s.Update(ctx, id, input)
}

func (s *DealService) Delete(ctx context.Context, id int) bool {
	return deleteOne(ctx, s.store, s.log, schema.TableDeal, id)
}
