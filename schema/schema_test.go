// ABOUTME: Tests for field schemas and generic coercion
// ABOUTME: Covers alias precedence, defaults, references, and round-trips
package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-crm/trellis/recordstore"
)

func TestCoerceCanonicalWinsOverAlias(t *testing.T) {
	rec, err := Deal.Coerce(map[string]any{
		"title_c": "Canonical title",
		"title":   "Alias title",
	})
	require.NoError(t, err)
	assert.Equal(t, "Canonical title", rec["title_c"])
}

func TestCoerceAliasFallback(t *testing.T) {
	rec, err := Company.Coerce(map[string]any{
		"name":  "Acme Corp",
		"city":  "Chicago",
		"state": "IL",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", rec["name_c"])
	assert.Equal(t, "Acme Corp", rec["Name"])
	assert.Equal(t, "Chicago", rec["city_c"])
	assert.Equal(t, "IL", rec["state_c"])
	assert.Equal(t, "", rec["zip_c"])
}

func TestCoerceDefaults(t *testing.T) {
	rec, err := Quote.Coerce(map[string]any{"Name": "Q-1001"})
	require.NoError(t, err)
	assert.Equal(t, "Draft", rec["status_c"])
	assert.Equal(t, "", rec["delivery_method_c"])

	rec, err = Deal.Coerce(map[string]any{"title": "New deal"})
	require.NoError(t, err)
	assert.Equal(t, "Lead", rec["stage_c"])
	assert.Equal(t, 0.0, rec["value_c"])
}

func TestCoerceAbsentReferenceIsNil(t *testing.T) {
	rec, err := Quote.Coerce(map[string]any{"Name": "Q-1", "company": "Acme"})
	require.NoError(t, err)

	// nil, not 0: "no relation" is distinct from "relation to record 0"
	assert.Nil(t, rec["contact_id_c"])
	assert.Nil(t, rec["deal_id_c"])
}

func TestCoerceReferenceParsesStrings(t *testing.T) {
	rec, err := Quote.Coerce(map[string]any{"Name": "Q-1", "contactId": "17"})
	require.NoError(t, err)
	assert.Equal(t, 17, rec["contact_id_c"])
}

func TestCoerceNonNumericIsError(t *testing.T) {
	_, err := Deal.Coerce(map[string]any{"title": "Bad", "value": "lots"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value_c")

	_, err = Company.Coerce(map[string]any{"name": "Acme", "employeeCount": "many"})
	require.Error(t, err)
}

func TestCoerceEmptyStringFallsThrough(t *testing.T) {
	rec, err := Company.Coerce(map[string]any{
		"name_c": "   ",
		"name":   "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", rec["name_c"])
}

func TestCoerceRoundTripPreservesCanonicalValues(t *testing.T) {
	input := map[string]any{
		"title_c":               "Enterprise license",
		"contact_id_c":          4,
		"value_c":               12500.0,
		"stage_c":               "Negotiation",
		"probability_c":         60,
		"expected_close_date_c": "2024-06-30",
		"notes_c":               "renewal",
		"created_at_c":          "2024-01-02T10:00:00Z",
	}

	first, err := Deal.Coerce(input)
	require.NoError(t, err)

	second, err := Deal.Coerce(map[string]any(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReadFieldsIncludeSystemColumns(t *testing.T) {
	fields := Contact.ReadFields()
	assert.Contains(t, fields, "first_name_c")
	assert.Contains(t, fields, "CreatedOn")
	assert.Contains(t, fields, "ModifiedBy")
}

func TestReadHelpersAliasFallback(t *testing.T) {
	rec := recordstore.Record{
		"Id":    float64(9),
		"title": "Legacy only",
		"value": "2500.50",
	}

	assert.Equal(t, 9, ID(rec))
	assert.Equal(t, "Legacy only", Deal.Text(rec, "title_c"))
	assert.Equal(t, 2500.50, Deal.Number(rec, "value_c"))
	assert.Equal(t, "Lead", Deal.Text(rec, "stage_c"))
	assert.Nil(t, Deal.Reference(rec, "contact_id_c"))
}

func TestReferenceReadsJSONNumbers(t *testing.T) {
	rec := recordstore.Record{"contact_id_c": float64(12)}
	ref := Deal.Reference(rec, "contact_id_c")
	require.NotNil(t, ref)
	assert.Equal(t, 12, *ref)
}
