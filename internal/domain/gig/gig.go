package gig

import "time"

type Type string

const (
	TypeContract Type = "CONTRACT"
	TypeGig      Type = "GIG"
	TypeProject  Type = "PROJECT"
	TypeOngoing  Type = "ONGOING"
)

type ApplicationStatus string

const (
	StatusApplied  ApplicationStatus = "APPLIED"
	StatusApproved ApplicationStatus = "APPROVED"
)

// Gig is the marketplace listing shape returned by the backend. Budget is a
// pre-formatted label derived server-side from the posted min/max.
type Gig struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company,omitempty"`
	CompanyLogo string     `json:"companyLogo,omitempty"`
	Location    string     `json:"location,omitempty"`
	Type        Type       `json:"type,omitempty"`
	Budget      string     `json:"budget,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Posted      string     `json:"posted"`
	Description string     `json:"description,omitempty"`
	Skills      []string   `json:"skills"`
	Applicants  int        `json:"applicants"`
	Category    string     `json:"category,omitempty"`
}

type Application struct {
	ID          string            `json:"id"`
	GigID       string            `json:"gigId"`
	StudentID   string            `json:"studentId"`
	StudentName string            `json:"studentName"`
	Proposal    string            `json:"proposal,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
}

func (a Application) Approved() bool {
	return a.Status == StatusApproved
}
