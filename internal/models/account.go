package models

// TimingContext is the structured timing signal attached to well-researched
// accounts. When present it takes precedence over the free-text signal fields
// in prompt construction.
// @Description Structured timing signal for an account
type TimingContext struct {
	Initiative   string `json:"initiative" example:"Epic go-live Q3"`            // Named initiative driving the outreach window
	Timing       string `json:"timing" example:"Training plan due in 60 days"`   // Why now
	WhyClassFits string `json:"why_class_fits" example:"Virtual at-elbow model"` // Fit rationale
}

// Account is one target health system. Read-only reference data, loaded from
// the account JSON shards.
// @Description Target account reference data
type Account struct {
	Index         int            `json:"index" example:"42"`                           // Positive index, maps 1:1 to a contact shard
	CompanyName   string         `json:"company_name" example:"Mercy General Health"`  // Health system name
	Tier          string         `json:"tier" example:"A+"`                            // Ordered qualification tier
	EmployeeCount int            `json:"employee_count,omitempty" example:"12000"`     // Approximate employee count
	EHRPlatform   string         `json:"ehr_platform" example:"Epic"`                  // EHR vendor
	EHRStage      string         `json:"ehr_stage,omitempty" example:"implementation"` // Where they are in the EHR lifecycle
	GoLiveDate    string         `json:"go_live_date,omitempty" example:"2026-03-01"`  // Planned go-live, free-form
	Qualification string         `json:"qualification,omitempty"`                      // Free-text qualification summary
	Evidence      string         `json:"evidence,omitempty"`                           // Supporting evidence notes
	News          string         `json:"news,omitempty"`                               // Recent news snippets
	TimingSignal  string         `json:"timing_signal,omitempty"`                      // Raw timing signal text
	TimingContext *TimingContext `json:"timing_context,omitempty"`                     // Structured timing triple, preferred when set
}

// AccountListItem is the projection used by selection UIs.
// @Description Account list projection
type AccountListItem struct {
	Index       int    `json:"index" example:"42"`
	CompanyName string `json:"company_name" example:"Mercy General Health"`
	Tier        string `json:"tier" example:"A+"`
	EHRPlatform string `json:"ehr_platform" example:"Epic"`
}

// Contact is one person at an account. Read-only reference data.
// @Description Contact reference data
type Contact struct {
	ID               string `json:"id" example:"c-104"`                              // Unique within the account
	FirstName        string `json:"first_name" example:"Dana"`                       // Given name
	LastName         string `json:"last_name" example:"Whitfield"`                   // Family name
	Title            string `json:"title" example:"Director of Clinical Education"`  // Job title
	Department       string `json:"department,omitempty" example:"Clinical Systems"` // Department, optional
	Persona          string `json:"persona,omitempty" example:"clinical education"`  // Messaging persona classification
	OutreachPriority int    `json:"outreach_priority" example:"2"`                   // Lower is higher priority
	Email            string `json:"email,omitempty" example:"dana@mercy.org"`        // May be empty
	Notes            string `json:"notes,omitempty"`                                 // Free-text relevance notes
}

// FullName joins the contact's name fields.
func (c Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
