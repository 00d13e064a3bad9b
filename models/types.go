// ABOUTME: Data models for CRM entities
// ABOUTME: Defines Contact, Company, Deal, Quote, and Activity structs
package models

// Date fields stay as the raw strings the store returned; display code
// formats them through dateutil so a malformed value renders as a
// fallback instead of a bogus epoch date.

type Contact struct {
	ID           int    `json:"Id"`
	FirstName    string `json:"first_name_c"`
	LastName     string `json:"last_name_c"`
	Email        string `json:"email_c"`
	Phone        string `json:"phone_c"`
	Company      string `json:"company_c"`
	Status       string `json:"status_c"`
	Tags         string `json:"tags_c"`
	CreatedAt    string `json:"created_at_c"`
	LastActivity string `json:"last_activity_c"`
}

// FullName joins first and last name for display.
func (c Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

type Company struct {
	ID            int     `json:"Id"`
	Name          string  `json:"name_c"`
	Tags          string  `json:"Tags"`
	Address       string  `json:"address_c"`
	City          string  `json:"city_c"`
	State         string  `json:"state_c"`
	Zip           string  `json:"zip_c"`
	Website       string  `json:"website_c"`
	Phone         string  `json:"phone_c"`
	EmployeeCount int     `json:"employee_count_c"`
	AnnualRevenue float64 `json:"annual_revenue_c"`
}

type Deal struct {
	ID                int     `json:"Id"`
	Title             string  `json:"title_c"`
	ContactID         *int    `json:"contact_id_c"`
	Value             float64 `json:"value_c"`
	Stage             string  `json:"stage_c"`
	Probability       int     `json:"probability_c"`
	ExpectedCloseDate string  `json:"expected_close_date_c"`
	Notes             string  `json:"notes_c"`
	CreatedAt         string  `json:"created_at_c"`
}

// WeightedValue is the deal value scaled by close probability.
func (d Deal) WeightedValue() float64 {
	return d.Value * float64(d.Probability) / 100
}

// Address is one billing or shipping block on a quote.
type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

type Quote struct {
	ID             int     `json:"Id"`
	Name           string  `json:"Name"`
	Tags           string  `json:"Tags"`
	Company        string  `json:"company_c"`
	ContactID      *int    `json:"contact_id_c"`
	DealID         *int    `json:"deal_id_c"`
	QuoteDate      string  `json:"quote_date_c"`
	Status         string  `json:"status_c"`
	DeliveryMethod string  `json:"delivery_method_c"`
	ExpiresOn      string  `json:"expires_on_c"`
	BillTo         Address `json:"bill_to"`
	ShipTo         Address `json:"ship_to"`
}

type Activity struct {
	ID          int    `json:"Id"`
	ContactID   *int   `json:"contact_id_c"`
	DealID      *int   `json:"deal_id_c"`
	Type        string `json:"type_c"`
	Description string `json:"description_c"`
	Date        string `json:"date_c"`
	UserID      string `json:"user_id_c"`
}

// Contact status values.
const (
	StatusLead     = "Lead"
	StatusProspect = "Prospect"
	StatusCustomer = "Customer"
	StatusChurned  = "Churned"
)

// Deal pipeline stages, in board order.
const (
	StageLead        = "Lead"
	StageQualified   = "Qualified"
	StageProposal    = "Proposal"
	StageNegotiation = "Negotiation"
	StageClosedWon   = "Closed Won"
	StageClosedLost  = "Closed Lost"
)

// Stages lists the pipeline stages in display order.
var Stages = []string{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// Quote status values.
const (
	QuoteDraft    = "Draft"
	QuoteSent     = "Sent"
	QuoteAccepted = "Accepted"
	QuoteRejected = "Rejected"
)

// Activity type values.
const (
	ActivityCall    = "call"
	ActivityEmail   = "email"
	ActivityMeeting = "meeting"
	ActivityNote    = "note"
)
