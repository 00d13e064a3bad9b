// ABOUTME: Contact record service
// ABOUTME: CRUD facade over the contact_c table
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/schema"
)

type ContactService struct {
	store recordstore.Store
	log   *zap.Logger
}

func NewContactService(store recordstore.Store, log *zap.Logger) *ContactService {
	return &ContactService{store: store, log: log}
}

func (s *ContactService) List(ctx context.Context) []models.Contact {
	records, err := s.store.FetchRecords(ctx, schema.TableContact, listQuery(schema.Contact, "Id"))
	if err != nil {
		s.log.Warn("failed to fetch contacts", zap.Error(err))
		return nil
	}
	contacts := make([]models.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, models.ContactFromRecord(rec))
	}
	return contacts
}

func (s *ContactService) Get(ctx context.Context, id int) *models.Contact {
	rec, err := s.store.GetRecordByID(ctx, schema.TableContact, id, schema.Contact.ReadFields())
	if err != nil {
		s.log.Warn("failed to fetch contact", zap.Int("id", id), zap.Error(err))
		return nil
	}
	contact := models.ContactFromRecord(rec)
	return &contact
}

func (s *ContactService) Create(ctx context.Context, input map[string]any) *models.Contact {
	rec, err := schema.Contact.Coerce(input)
	if err != nil {
		s.log.Warn("contact input rejected", zap.Error(err))
		return nil
	}
	stampIfEmpty(rec, "created_at_c")

	result, callErr := s.store.CreateRecords(ctx, schema.TableContact, []recordstore.Record{rec})
	created := reduce(s.log, schema.TableContact, "create", result, callErr)
	if created == nil {
		return nil
	}
	contact := models.ContactFromRecord(created)
	return &contact
}

func (s *ContactService) Update(ctx context.Context, id int, input map[string]any) *models.Contact {
	rec, err := schema.Contact.Coerce(input)
	if err != nil {
		s.log.Warn("contact input rejected", zap.Int("id", id), zap.Error(err))
		return nil
	}
	rec["Id"] = id

	result, callErr := s.store.UpdateRecords(ctx, schema.TableContact, []recordstore.Record{rec})
	updated := reduce(s.log, schema.TableContact, "update", result, callErr)
	if updated == nil {
		return nil
	}
	contact := models.ContactFromRecord(updated)
	return &contact
}

func (s *ContactService) Delete(ctx context.Context, id int) bool {
	return deleteOne(ctx, s.store, s.log, schema.TableContact, id)
}
