// ABOUTME: Activity record service
// ABOUTME: Timeline entries ordered by activity date, newest first
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/schema"
)

type ActivityService struct {
	store recordstore.Store
	log   *zap.Logger
}

func NewActivityService(store recordstore.Store, log *zap.Logger) *ActivityService {
	return &ActivityService{store: store, log: log}
}

func (s *ActivityService) List(ctx context.Context) []models.Activity {
	records, err := s.store.FetchRecords(ctx, schema.TableActivity, listQuery(schema.Activity, "date_c"))
	if err != nil {
		s.log.Warn("failed to fetch activities", zap.Error(err))
		return nil
	}
	activities := make([]models.Activity, 0, len(records))
	for _, rec := range records {
		activities = append(activities, models.ActivityFromRecord(rec))
	}
	return activities
}

func (s *ActivityService) Get(ctx context.Context, id int) *models.Activity {
	rec, err := s.store.GetRecordByID(ctx, schema.TableActivity, id, schema.Activity.ReadFields())
	if err != nil {
		s.log.Warn("failed to fetch activity", zap.Int("id", id), zap.Error(err))
		return nil
	}
	activity := models.ActivityFromRecord(rec)
	return &activity
}

func (s *ActivityService) Create(ctx context.Context, input map[string]any) *models.Activity {
	rec, err := schema.Activity.Coerce(input)
	if err != nil {
		s.log.Warn("activity input rejected", zap.Error(err))
		return nil
	}
	stampIfEmpty(rec, "date_c")

	result, callErr := s.store.CreateRecords(ctx, schema.TableActivity, []recordstore.Record{rec})
	created := reduce(s.log, schema.TableActivity, "create", result, callErr)
	if created == nil {
		return nil
	}
	activity := models.ActivityFromRecord(created)
	return &activity
}

func (s *ActivityService) Update(ctx context.Context, id int, input map[string]any) *models.Activity {
	rec, err := schema.Activity.Coerce(input)
	if err != nil {
		s.log.Warn("activity input rejected", zap.Int("id", id), zap.Error(err))
		return nil
	}
	rec["Id"] = id

	result, callErr := s.store.UpdateRecords(ctx, schema.TableActivity, []recordstore.Record{rec})
	updated := reduce(s.log, schema.TableActivity, "update", result, callErr)
	if updated == nil {
		return nil
	}
	activity := models.ActivityFromRecord(updated)
	return &activity
}

func (s *ActivityService) Delete(ctx context.Context, id int) bool {
	return deleteOne(ctx, s.store, s.log, schema.TableActivity, id)
}
