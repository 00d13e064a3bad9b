// ABOUTME: Decoding of raw store records into typed entities
// ABOUTME: Applies canonical-then-alias fallback so partial rows still decode
package models

import (
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/schema"
)

func ContactFromRecord(rec recordstore.Record) Contact {
	e := schema.Contact
	return Contact{
		ID:           schema.ID(rec),
		FirstName:    e.Text(rec, "first_name_c"),
		LastName:     e.Text(rec, "last_name_c"),
		Email:        e.Text(rec, "email_c"),
		Phone:        e.Text(rec, "phone_c"),
		Company:      e.Text(rec, "company_c"),
		Status:       e.Text(rec, "status_c"),
		Tags:         e.Text(rec, "tags_c"),
		CreatedAt:    e.Text(rec, "created_at_c"),
		LastActivity: e.Text(rec, "last_activity_c"),
	}
}

func CompanyFromRecord(rec recordstore.Record) Company {
	e := schema.Company
	return Company{
		ID:            schema.ID(rec),
		Name:          e.Text(rec, "name_c"),
		Tags:          e.Text(rec, "Tags"),
		Address:       e.Text(rec, "address_c"),
		City:          e.Text(rec, "city_c"),
		State:         e.Text(rec, "state_c"),
		Zip:           e.Text(rec, "zip_c"),
		Website:       e.Text(rec, "website_c"),
		Phone:         e.Text(rec, "phone_c"),
		EmployeeCount: e.Integer(rec, "employee_count_c"),
		AnnualRevenue: e.Number(rec, "annual_revenue_c"),
	}
}

func DealFromRecord(rec recordstore.Record) Deal {
	e := schema.Deal
	return Deal{
		ID:                schema.ID(rec),
		Title:             e.Text(rec, "title_c"),
		ContactID:         e.Reference(rec, "contact_id_c"),
		Value:             e.Number(rec, "value_c"),
		Stage:             e.Text(rec, "stage_c"),
		Probability:       e.Integer(rec, "probability_c"),
		ExpectedCloseDate: e.Text(rec, "expected_close_date_c"),
		Notes:             e.Text(rec, "notes_c"),
		CreatedAt:         e.Text(rec, "created_at_c"),
	}
}

func QuoteFromRecord(rec recordstore.Record) Quote {
	e := schema.Quote
	return Quote{
		ID:             schema.ID(rec),
		Name:           e.Text(rec, "Name"),
		Tags:           e.Text(rec, "Tags"),
		Company:        e.Text(rec, "company_c"),
		ContactID:      e.Reference(rec, "contact_id_c"),
		DealID:         e.Reference(rec, "deal_id_c"),
		QuoteDate:      e.Text(rec, "quote_date_c"),
		Status:         e.Text(rec, "status_c"),
		DeliveryMethod: e.Text(rec, "delivery_method_c"),
		ExpiresOn:      e.Text(rec, "expires_on_c"),
		BillTo: Address{
			Name:    e.Text(rec, "bill_to_name_c"),
			Street:  e.Text(rec, "bill_to_street_c"),
			City:    e.Text(rec, "bill_to_city_c"),
			State:   e.Text(rec, "bill_to_state_c"),
			Country: e.Text(rec, "bill_to_country_c"),
			Pincode: e.Text(rec, "bill_to_pincode_c"),
		},
		ShipTo: Address{
			Name:    e.Text(rec, "ship_to_name_c"),
			Street:  e.Text(rec, "ship_to_street_c"),
			City:    e.Text(rec, "ship_to_city_c"),
			State:   e.Text(rec, "ship_to_state_c"),
			Country: e.Text(rec, "ship_to_country_c"),
			Pincode: e.Text(rec, "ship_to_pincode_c"),
		},
	}
}

func ActivityFromRecord(rec recordstore.Record) Activity {
	e := schema.Activity
	return Activity{
		ID:          schema.ID(rec),
		ContactID:   e.Reference(rec, "contact_id_c"),
		DealID:      e.Reference(rec, "deal_id_c"),
		Type:        e.Text(rec, "type_c"),
		Description: e.Text(rec, "description_c"),
		Date:        e.Text(rec, "date_c"),
		UserID:      e.Text(rec, "user_id_c"),
	}
}
