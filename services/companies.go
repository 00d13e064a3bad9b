// ABOUTME: Company record service
// ABOUTME: CRUD facade over the company_c table
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/schema"
)

type CompanyService struct {
	store recordstore.Store
	log   *zap.Logger
}

func NewCompanyService(store recordstore.Store, log *zap.Logger) *CompanyService {
	return &CompanyService{store: store, log: log}
}

// List returns companies in store order, or an empty slice on failure.
func (s *CompanyService) List(ctx context.Context) []models.Company {
	records, err := s.store.FetchRecords(ctx, schema.TableCompany, listQuery(schema.Company, "Id"))
	if err != nil {
		s.log.Warn("failed to fetch companies", zap.Error(err))
		return nil
	}
	companies := make([]models.Company, 0, len(records))
	for _, rec := range records {
		companies = append(companies, models.CompanyFromRecord(rec))
	}
	return companies
}

// Get returns one company, or nil if it is missing or the store failed.
func (s *CompanyService) Get(ctx context.Context, id int) *models.Company {
	rec, err := s.store.GetRecordByID(ctx, schema.TableCompany, id, schema.Company.ReadFields())
	if err != nil {
		s.log.Warn("failed to fetch company", zap.Int("id", id), zap.Error(err))
		return nil
	}
	company := models.CompanyFromRecord(rec)
	return &company
}

// Create coerces input to canonical fields and submits a size-one
// batch. Returns the created record, or nil if nothing succeeded.
func (s *CompanyService) Create(ctx context.Context, input map[string]any) *models.Company {
	rec, err := schema.Company.Coerce(input)
	if err != nil {
		s.log.Warn("company input rejected", zap.Error(err))
		return nil
	}

	result, callErr := s.store.CreateRecords(ctx, schema.TableCompany, []recordstore.Record{rec})
	created := reduce(s.log, schema.TableCompany, "create", result, callErr)
	if created == nil {
		return nil
	}
	company := models.CompanyFromRecord(created)
	return &company
}

// Update is Create's contract with the target id merged in.
func (s *CompanyService) Update(ctx context.Context, id int, input map[string]any) *models.Company {
	rec, err := schema.Company.Coerce(input)
	if err != nil {
		s.log.Warn("company input rejected", zap.Int("id", id), zap.Error(err))
		return nil
	}
	rec["Id"] = id

	result, callErr := s.store.UpdateRecords(ctx, schema.TableCompany, []recordstore.Record{rec})
	updated := reduce(s.log, schema.TableCompany, "update", result, callErr)
	if updated == nil {
		return nil
	}
	company := models.CompanyFromRecord(updated)
	return &company
}

// Delete returns true only when the store confirms the deletion.
func (s *CompanyService) Delete(ctx context.Context, id int) bool {
	return deleteOne(ctx, s.store, s.log, schema.TableCompany, id)
}
