// ABOUTME: Tests for validation rules and per-entity validators
// ABOUTME: Covers required fields, numeric ranges, URLs, and date ordering
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompanyRequiredFields(t *testing.T) {
	v := ValidateCompany(map[string]string{
		"name_c":  "Acme Corp",
		"state_c": "IL",
	})

	assert.False(t, v.Empty())
	assert.Contains(t, v, "city_c")
	assert.NotContains(t, v, "name_c")
	assert.NotContains(t, v, "state_c")
}

func TestValidateCompanyWhitespaceIsEmpty(t *testing.T) {
	v := ValidateCompany(map[string]string{
		"name_c":  "   ",
		"city_c":  "Chicago",
		"state_c": "IL",
	})
	assert.Contains(t, v, "name_c")
}

func TestValidateCompanyNumericRanges(t *testing.T) {
	base := map[string]string{"name_c": "Acme", "city_c": "Chicago", "state_c": "IL"}

	neg := map[string]string{}
	for k, val := range base {
		neg[k] = val
	}
	neg["employee_count_c"] = "-5"
	assert.Contains(t, ValidateCompany(neg), "employee_count_c")

	ok := map[string]string{}
	for k, val := range base {
		ok[k] = val
	}
	ok["employee_count_c"] = "50"
	ok["annual_revenue_c"] = "1200000.50"
	assert.True(t, ValidateCompany(ok).Empty())
}

func TestValidateCompanyWebsite(t *testing.T) {
	base := map[string]string{"name_c": "Acme", "city_c": "Chicago", "state_c": "IL"}

	base["website_c"] = "example.com"
	assert.True(t, ValidateCompany(base).Empty(), "schemeless domains should be accepted")

	base["website_c"] = "https://acme.io/about"
	assert.True(t, ValidateCompany(base).Empty())

	base["website_c"] = "not a url!!"
	assert.Contains(t, ValidateCompany(base), "website_c")
}

func TestValidateQuoteExpiryOrdering(t *testing.T) {
	values := map[string]string{
		"Name":         "Q-1",
		"company_c":    "Acme",
		"quote_date_c": "2024-01-10",
		"expires_on_c": "2024-01-05",
	}
	v := ValidateQuote(values)
	assert.Contains(t, v, "expires_on_c")

	values["expires_on_c"] = "2024-01-15"
	assert.True(t, ValidateQuote(values).Empty())

	// Strictly after: same day fails
	values["expires_on_c"] = "2024-01-10"
	assert.Contains(t, ValidateQuote(values), "expires_on_c")
}

func TestValidateQuoteRequiredDates(t *testing.T) {
	v := ValidateQuote(map[string]string{"Name": "Q-1", "company_c": "Acme"})
	assert.Contains(t, v, "quote_date_c")
	assert.Contains(t, v, "expires_on_c")
}

func TestValidateDeal(t *testing.T) {
	v := ValidateDeal(map[string]string{
		"title_c":       "Renewal",
		"contact_id_c":  "4",
		"value_c":       "-100",
		"probability_c": "150",
	})
	assert.Contains(t, v, "value_c")
	assert.Contains(t, v, "probability_c")

	v = ValidateDeal(map[string]string{
		"title_c":       "Renewal",
		"contact_id_c":  "4",
		"value_c":       "2500",
		"probability_c": "60",
	})
	assert.True(t, v.Empty())
}

func TestValidateContact(t *testing.T) {
	v := ValidateContact(map[string]string{"first_name_c": "Jane"})
	assert.Contains(t, v, "last_name_c")

	v = ValidateContact(map[string]string{"first_name_c": "Jane", "last_name_c": "Doe"})
	assert.True(t, v.Empty())
}

func TestValidateActivity(t *testing.T) {
	v := ValidateActivity(map[string]string{"type_c": "call"})
	assert.Contains(t, v, "contact_id_c")
	assert.Contains(t, v, "description_c")
}

func TestRequiredHelperTrims(t *testing.T) {
	v := Violations{}
	Required(v, "f", "\t \n", "required")
	assert.Equal(t, "required", v["f"])
}

func TestNonNegativeNumberAcceptsEmpty(t *testing.T) {
	v := Violations{}
	NonNegativeNumber(v, "f", "", "bad")
	assert.True(t, v.Empty())

	NonNegativeNumber(v, "f", "abc", "bad")
	assert.Contains(t, v, "f")
}
