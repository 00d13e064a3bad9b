// ABOUTME: Per-entity form validators run before any store call
// ABOUTME: Field names use canonical storage keys for inline display
package validation

// ValidateCompany checks a company form. Extended numeric and URL
// fields are optional but must be well-formed when present.
func ValidateCompany(values map[string]string) Violations {
	v := Violations{}
	Required(v, "name_c", values["name_c"], "Company name is required")
	Required(v, "city_c", values["city_c"], "City is required")
	Required(v, "state_c", values["state_c"], "State is required")
	NonNegativeNumber(v, "employee_count_c", values["employee_count_c"], "Employee count must be a non-negative number")
	NonNegativeNumber(v, "annual_revenue_c", values["annual_revenue_c"], "Annual revenue must be a non-negative number")
	WebsiteURL(v, "website_c", values["website_c"], "Website must be a valid URL")
	return v
}

// ValidateContact checks a contact form.
func ValidateContact(values map[string]string) Violations {
	v := Violations{}
	Required(v, "first_name_c", values["first_name_c"], "First name is required")
	Required(v, "last_name_c", values["last_name_c"], "Last name is required")
	return v
}

// ValidateDeal checks a deal form.
func ValidateDeal(values map[string]string) Violations {
	v := Violations{}
	Required(v, "title_c", values["title_c"], "Title is required")
	Required(v, "contact_id_c", values["contact_id_c"], "Contact is required")
	NonNegativeNumber(v, "value_c", values["value_c"], "Value must be a non-negative number")
	IntInRange(v, "probability_c", values["probability_c"], 0, 100, "Probability must be between 0 and 100")
	return v
}

// ValidateQuote checks a quote form, including the temporal rule that
// the expiry date falls strictly after the quote date. The violation
// attaches to the expiry field.
func ValidateQuote(values map[string]string) Violations {
	v := Violations{}
	Required(v, "Name", values["Name"], "Quote name is required")
	Required(v, "company_c", values["company_c"], "Company is required")
	Required(v, "quote_date_c", values["quote_date_c"], "Quote date is required")
	Required(v, "expires_on_c", values["expires_on_c"], "Expiry date is required")
	DateStrictlyAfter(v, "expires_on_c", values["quote_date_c"], values["expires_on_c"], "Expiry date must be after quote date")
	return v
}

// ValidateActivity checks an activity log entry.
func ValidateActivity(values map[string]string) Violations {
	v := Violations{}
	Required(v, "contact_id_c", values["contact_id_c"], "Contact is required")
	Required(v, "type_c", values["type_c"], "Activity type is required")
	Required(v, "description_c", values["description_c"], "Description is required")
	return v
}
