// ABOUTME: Tests for the company service contract
// ABOUTME: Covers degradation to empty/nil/false on every failure arm
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/recordstore"
)

func TestCompanyCreateWithRequiredFields(t *testing.T) {
	store := recordstore.NewFakeStore()
	svc := NewCompanyService(store, zap.NewNop())

	company := svc.Create(context.Background(), map[string]any{
		"name":  "Acme Corp",
		"city":  "Chicago",
		"state": "IL",
	})

	require.NotNil(t, company)
	assert.NotZero(t, company.ID, "store assigns identity on create")
	assert.Equal(t, "Acme Corp", company.Name)
	assert.Equal(t, "Chicago", company.City)
	assert.Equal(t, 1, store.Count("company_c"))
}

func TestCompanyListDegradesToEmptyOnFailure(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Err = errors.New("store unreachable")
	svc := NewCompanyService(store, zap.NewNop())

	companies := svc.List(context.Background())
	assert.Empty(t, companies)
}

func TestCompanyListReturnsStoreOrder(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Seed("company_c", recordstore.Record{"name_c": "First"})
	store.Seed("company_c", recordstore.Record{"name_c": "Second"})
	svc := NewCompanyService(store, zap.NewNop())

	companies := svc.List(context.Background())
	require.Len(t, companies, 2)
	assert.Equal(t, "Second", companies[0].Name, "newest first")
}

func TestCompanyCreateOuterFailureReturnsNil(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Err = errors.New("platform down")
	svc := NewCompanyService(store, zap.NewNop())

	assert.Nil(t, svc.Create(context.Background(), map[string]any{"name": "Acme"}))
}

func TestCompanyCreatePartialFailureReturnsNil(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.RejectWrites = true
	svc := NewCompanyService(store, zap.NewNop())

	assert.Nil(t, svc.Create(context.Background(), map[string]any{"name": "Acme"}))
	assert.Equal(t, 0, store.Count("company_c"))
}

func TestCompanyCreateNonNumericInputReturnsNil(t *testing.T) {
	store := recordstore.NewFakeStore()
	svc := NewCompanyService(store, zap.NewNop())

	company := svc.Create(context.Background(), map[string]any{
		"name":          "Acme",
		"employeeCount": "lots",
	})
	assert.Nil(t, company)
	assert.Equal(t, 0, store.Count("company_c"), "no store call side effects survive a bad input")
}

func TestCompanyUpdateMergesID(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("company_c", recordstore.Record{"name_c": "Old Name", "city_c": "Chicago", "state_c": "IL"})
	svc := NewCompanyService(store, zap.NewNop())

	updated := svc.Update(context.Background(), seeded["Id"].(int), map[string]any{
		"name":  "New Name",
		"city":  "Chicago",
		"state": "IL",
	})
	require.NotNil(t, updated)
	assert.Equal(t, seeded["Id"].(int), updated.ID)
	assert.Equal(t, "New Name", updated.Name)
}

func TestCompanyDelete(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("company_c", recordstore.Record{"name_c": "Acme"})
	svc := NewCompanyService(store, zap.NewNop())

	assert.True(t, svc.Delete(context.Background(), seeded["Id"].(int)))
	assert.False(t, svc.Delete(context.Background(), 9999), "zero successful results means false")
}

func TestCompanyDeleteOuterFailure(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("company_c", recordstore.Record{"name_c": "Acme"})
	store.Err = errors.New("timeout")
	svc := NewCompanyService(store, zap.NewNop())

	assert.False(t, svc.Delete(context.Background(), seeded["Id"].(int)))
}

func TestCompanyGetMissingReturnsNil(t *testing.T) {
	svc := NewCompanyService(recordstore.NewFakeStore(), zap.NewNop())
	assert.Nil(t, svc.Get(context.Background(), 42))
}
