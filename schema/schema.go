// ABOUTME: Declarative per-entity field schemas for the record store
// ABOUTME: One generic coercion routine replaces scattered alias chains
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trellis-crm/trellis/recordstore"
)

// Kind describes how a field's values are coerced.
type Kind int

const (
	// KindText holds free text, enums, and comma-joined tags.
	KindText Kind = iota
	// KindNumber holds floating point values such as money.
	KindNumber
	// KindInteger holds whole numbers such as counts and percentages.
	KindInteger
	// KindReference holds an optional foreign key. Absent means
	// "unlinked" and coerces to nil, never to 0.
	KindReference
	// KindDate holds date strings as the store stores them.
	KindDate
)

// Field is one updateable column: its canonical storage name, the
// legacy UI aliases accepted on input, and the default used when no
// key carries a value. Precedence is canonical, then aliases in order.
type Field struct {
	Canonical string
	Aliases   []string
	Kind      Kind
	Default   any
}

// Entity binds a table name to its ordered updateable fields.
type Entity struct {
	Table  string
	Fields []Field
}

// Table names owned by the record store.
const (
	TableCompany  = "company_c"
	TableContact  = "contact_c"
	TableDeal     = "deal_c"
	TableQuote    = "quote_c"
	TableActivity = "activity_c"
)

// systemFields are store-managed columns requested on every read.
var systemFields = []string{"Owner", "CreatedOn", "CreatedBy", "ModifiedOn", "ModifiedBy"}

var Company = Entity{
	Table: TableCompany,
	Fields: []Field{
		{Canonical: "Name", Aliases: []string{"name"}},
		{Canonical: "Tags", Aliases: []string{"tags"}},
		{Canonical: "name_c", Aliases: []string{"name"}},
		{Canonical: "address_c", Aliases: []string{"address"}},
		{Canonical: "city_c", Aliases: []string{"city"}},
		{Canonical: "state_c", Aliases: []string{"state"}},
		{Canonical: "zip_c", Aliases: []string{"zip"}},
		{Canonical: "website_c", Aliases: []string{"website"}},
		{Canonical: "phone_c", Aliases: []string{"phone"}},
		{Canonical: "employee_count_c", Aliases: []string{"employeeCount"}, Kind: KindInteger},
		{Canonical: "annual_revenue_c", Aliases: []string{"annualRevenue"}, Kind: KindNumber},
	},
}

var Contact = Entity{
	Table: TableContact,
	Fields: []Field{
		{Canonical: "first_name_c", Aliases: []string{"firstName"}},
		{Canonical: "last_name_c", Aliases: []string{"lastName"}},
		{Canonical: "email_c", Aliases: []string{"email"}},
		{Canonical: "phone_c", Aliases: []string{"phone"}},
		{Canonical: "company_c", Aliases: []string{"company"}},
		{Canonical: "status_c", Aliases: []string{"status"}, Default: "Lead"},
		{Canonical: "tags_c", Aliases: []string{"tags"}},
		{Canonical: "created_at_c", Aliases: []string{"createdAt"}, Kind: KindDate},
		{Canonical: "last_activity_c", Aliases: []string{"lastActivity"}, Kind: KindDate},
	},
}

var Deal = Entity{
	Table: TableDeal,
	Fields: []Field{
		{Canonical: "title_c", Aliases: []string{"title"}},
		{Canonical: "contact_id_c", Aliases: []string{"contactId"}, Kind: KindReference},
		{Canonical: "value_c", Aliases: []string{"value"}, Kind: KindNumber},
		{Canonical: "stage_c", Aliases: []string{"stage"}, Default: "Lead"},
		{Canonical: "probability_c", Aliases: []string{"probability"}, Kind: KindInteger},
		{Canonical: "expected_close_date_c", Aliases: []string{"expectedCloseDate"}, Kind: KindDate},
		{Canonical: "notes_c", Aliases: []string{"notes"}},
		{Canonical: "created_at_c", Aliases: []string{"createdAt"}, Kind: KindDate},
	},
}

var Quote = Entity{
	Table: TableQuote,
	Fields: []Field{
		{Canonical: "Name", Aliases: []string{"name"}},
		{Canonical: "Tags", Aliases: []string{"tags"}},
		{Canonical: "company_c", Aliases: []string{"company"}},
		{Canonical: "contact_id_c", Aliases: []string{"contactId"}, Kind: KindReference},
		{Canonical: "deal_id_c", Aliases: []string{"dealId"}, Kind: KindReference},
		{Canonical: "quote_date_c", Aliases: []string{"quoteDate"}, Kind: KindDate},
		{Canonical: "status_c", Aliases: []string{"status"}, Default: "Draft"},
		{Canonical: "delivery_method_c", Aliases: []string{"deliveryMethod"}},
		{Canonical: "expires_on_c", Aliases: []string{"expiresOn"}, Kind: KindDate},
		{Canonical: "bill_to_name_c", Aliases: []string{"billToName"}},
		{Canonical: "bill_to_street_c", Aliases: []string{"billToStreet"}},
		{Canonical: "bill_to_city_c", Aliases: []string{"billToCity"}},
		{Canonical: "bill_to_state_c", Aliases: []string{"billToState"}},
		{Canonical: "bill_to_country_c", Aliases: []string{"billToCountry"}},
		{Canonical: "bill_to_pincode_c", Aliases: []string{"billToPincode"}},
		{Canonical: "ship_to_name_c", Aliases: []string{"shipToName"}},
		{Canonical: "ship_to_street_c", Aliases: []string{"shipToStreet"}},
		{Canonical: "ship_to_city_c", Aliases: []string{"shipToCity"}},
		{Canonical: "ship_to_state_c", Aliases: []string{"shipToState"}},
		{Canonical: "ship_to_country_c", Aliases: []string{"shipToCountry"}},
		{Canonical: "ship_to_pincode_c", Aliases: []string{"shipToPincode"}},
	},
}

var Activity = Entity{
	Table: TableActivity,
	Fields: []Field{
		{Canonical: "contact_id_c", Aliases: []string{"contactId"}, Kind: KindReference},
		{Canonical: "deal_id_c", Aliases: []string{"dealId"}, Kind: KindReference},
		{Canonical: "type_c", Aliases: []string{"type"}},
		{Canonical: "description_c", Aliases: []string{"description"}},
		{Canonical: "date_c", Aliases: []string{"date"}, Kind: KindDate},
		{Canonical: "user_id_c", Aliases: []string{"userId"}, Default: "user1"},
	},
}

// ReadFields returns the field selection for fetches: every updateable
// field plus the store's system columns.
func (e Entity) ReadFields() []string {
	fields := make([]string, 0, len(e.Fields)+len(systemFields))
	for _, f := range e.Fields {
		fields = append(fields, f.Canonical)
	}
	return append(fields, systemFields...)
}

// Coerce maps a loosely-shaped input to a canonical record: for each
// field, the canonical key wins if present and non-empty, then each
// alias, then the field default. Non-numeric values in numeric fields
// are an error here rather than a silent zero; required-ness and
// ranges are the validation layer's concern.
func (e Entity) Coerce(input map[string]any) (recordstore.Record, error) {
	out := make(recordstore.Record, len(e.Fields))
	for _, f := range e.Fields {
		value, err := f.coerce(input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Canonical, err)
		}
		out[f.Canonical] = value
	}
	return out, nil
}

func (f Field) coerce(input map[string]any) (any, error) {
	raw, ok := firstPresent(input, f.Canonical, f.Aliases)
	if !ok {
		return f.zero(), nil
	}

	switch f.Kind {
	case KindNumber:
		n, err := toFloat(raw)
		if err != nil {
			return nil, err
		}
		return n, nil
	case KindInteger:
		n, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		return n, nil
	case KindReference:
		n, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}
		return n, nil
	default:
		return toText(raw), nil
	}
}

func (f Field) zero() any {
	if f.Default != nil {
		return f.Default
	}
	switch f.Kind {
	case KindNumber:
		return 0.0
	case KindInteger:
		return 0
	case KindReference:
		return nil
	default:
		return ""
	}
}

// firstPresent walks the precedence chain and returns the first value
// that is present and non-empty.
func firstPresent(input map[string]any, canonical string, aliases []string) (any, bool) {
	keys := append([]string{canonical}, aliases...)
	for _, key := range keys {
		v, ok := input[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not an integer: %v", v)
	}
}

// Read-side helpers: typed access with the same alias fallback, so a
// record missing its canonical column still decodes to a usable value.

// Text reads a string field from a raw record.
func (e Entity) Text(rec recordstore.Record, canonical string) string {
	f, ok := e.lookup(canonical)
	if !ok {
		return ""
	}
	raw, present := firstPresent(rec, f.Canonical, f.Aliases)
	if !present {
		if s, isStr := f.zero().(string); isStr {
			return s
		}
		return ""
	}
	return toText(raw)
}

// Number reads a float field, zero when absent or malformed.
func (e Entity) Number(rec recordstore.Record, canonical string) float64 {
	f, ok := e.lookup(canonical)
	if !ok {
		return 0
	}
	raw, present := firstPresent(rec, f.Canonical, f.Aliases)
	if !present {
		return 0
	}
	n, err := toFloat(raw)
	if err != nil {
		return 0
	}
	return n
}

// Integer reads a whole number field, zero when absent or malformed.
func (e Entity) Integer(rec recordstore.Record, canonical string) int {
	f, ok := e.lookup(canonical)
	if !ok {
		return 0
	}
	raw, present := firstPresent(rec, f.Canonical, f.Aliases)
	if !present {
		return 0
	}
	n, err := toInt(raw)
	if err != nil {
		return 0
	}
	return n
}

// Reference reads an optional foreign key; nil means unlinked.
func (e Entity) Reference(rec recordstore.Record, canonical string) *int {
	f, ok := e.lookup(canonical)
	if !ok {
		return nil
	}
	raw, present := firstPresent(rec, f.Canonical, f.Aliases)
	if !present {
		return nil
	}
	n, err := toInt(raw)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

func (e Entity) lookup(canonical string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Canonical == canonical {
			return f, true
		}
	}
	return Field{}, false
}

// ID extracts the store-assigned identity from a raw record.
func ID(rec recordstore.Record) int {
	n, err := toInt(rec["Id"])
	if err != nil {
		return 0
	}
	return n
}
