package model

import "time"

// SponsorshipStatus represents the resolution state of a sponsorship request
type SponsorshipStatus string

const (
	SponsorshipStatusPending  SponsorshipStatus = "pending"
	SponsorshipStatusApproved SponsorshipStatus = "approved"
	SponsorshipStatusRejected SponsorshipStatus = "rejected"
)

// IsValid returns true if the status is a known sponsorship status
func (s SponsorshipStatus) IsValid() bool {
	switch s {
	case SponsorshipStatusPending, SponsorshipStatusApproved, SponsorshipStatusRejected:
		return true
	default:
		return false
	}
}

// IsResolution returns true for the two terminal states an officer may set
func (s SponsorshipStatus) IsResolution() bool {
	return s == SponsorshipStatusApproved || s == SponsorshipStatusRejected
}

// SponsorshipRequest represents a member-submitted funding request for an
// event. A request resolves exactly once: once status leaves pending it is
// immutable.
type SponsorshipRequest struct {
	ID          string            `json:"id"`
	EventID     string            `json:"event_id"`
	ClubID      string            `json:"club_id"`
	MemberID    string            `json:"member_id"`
	CompanyName string            `json:"company_name"`
	Amount      float64           `json:"amount"`
	CoverLetter string            `json:"cover_letter"`
	Status      SponsorshipStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}

// IsResolved reports whether the request has already been approved or rejected.
func (r *SponsorshipRequest) IsResolved() bool {
	return r.Status.IsResolution()
}

// SponsorshipWithMember is a request enriched with the submitter's display data.
type SponsorshipWithMember struct {
	Request SponsorshipRequest `json:"request"`
	Member  *DisplayInfo       `json:"member,omitempty"`
}

// Constraints
const (
	MaxCompanyNameLength = 200
	MaxCoverLetterLength = 5000
)

// SubmitSponsorshipRequest represents a member's submission
type SubmitSponsorshipRequest struct {
	CompanyName string  `json:"company_name"`
	Amount      float64 `json:"amount"`
	CoverLetter string  `json:"cover_letter"`
}

// Validate returns field errors for missing or out-of-range inputs.
func (r *SubmitSponsorshipRequest) Validate() []FieldError {
	var errs []FieldError
	if r.CompanyName == "" {
		errs = append(errs, FieldError{Field: "company_name", Message: "company_name is required"})
	} else if len(r.CompanyName) > MaxCompanyNameLength {
		errs = append(errs, FieldError{Field: "company_name", Message: "company_name exceeds maximum length"})
	}
	if r.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if r.CoverLetter == "" {
		errs = append(errs, FieldError{Field: "cover_letter", Message: "cover_letter is required"})
	} else if len(r.CoverLetter) > MaxCoverLetterLength {
		errs = append(errs, FieldError{Field: "cover_letter", Message: "cover_letter exceeds maximum length"})
	}
	return errs
}

// UpdateSponsorshipStatusRequest carries an officer's resolution
type UpdateSponsorshipStatusRequest struct {
	Status SponsorshipStatus `json:"status"`
}
