package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/model"
)

// SponsorshipRepository handles sponsorship request data access
type SponsorshipRepository struct {
	db database.Database
}

// NewSponsorshipRepository creates a new sponsorship repository
func NewSponsorshipRepository(db database.Database) *SponsorshipRepository {
	return &SponsorshipRepository{db: db}
}

// Create creates a new sponsorship request in the pending state
func (r *SponsorshipRepository) Create(ctx context.Context, req *model.SponsorshipRequest) error {
	query := `
		CREATE sponsorship CONTENT {
			event: $event,
			club: $club,
			member: $member,
			company_name: $company_name,
			amount: $amount,
			cover_letter: $cover_letter,
			status: $status,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"event":        fullRecordID("event", req.EventID),
		"club":         fullRecordID("club", req.ClubID),
		"member":       fullRecordID("user", req.MemberID),
		"company_name": req.CompanyName,
		"amount":       req.Amount,
		"cover_letter": req.CoverLetter,
		"status":       string(model.SponsorshipStatusPending),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	req.ID = created.ID
	req.Status = model.SponsorshipStatusPending
	req.CreatedOn = created.CreatedOn
	return nil
}

// Get retrieves a sponsorship request by ID. Returns nil when it does not exist.
func (r *SponsorshipRepository) Get(ctx context.Context, id string) (*model.SponsorshipRequest, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseSponsorshipResult(result)
}

// GetByEvent retrieves all sponsorship requests for an event, newest first
func (r *SponsorshipRepository) GetByEvent(ctx context.Context, eventID string) ([]*model.SponsorshipRequest, error) {
	query := `SELECT * FROM sponsorship WHERE event = $event ORDER BY created_on DESC`
	vars := map[string]interface{}{"event": fullRecordID("event", eventID)}
	return r.querySponsorships(ctx, query, vars)
}

// GetByMember retrieves all sponsorship requests submitted by the user,
// newest first
func (r *SponsorshipRepository) GetByMember(ctx context.Context, userID string) ([]*model.SponsorshipRequest, error) {
	query := `SELECT * FROM sponsorship WHERE member = $member ORDER BY created_on DESC`
	vars := map[string]interface{}{"member": fullRecordID("user", userID)}
	return r.querySponsorships(ctx, query, vars)
}

// Resolve moves a pending request to the given terminal status. The WHERE
// guard pins status = pending, so a request resolves exactly once even under
// concurrent officer decisions. Returns nil when the guard rejected the write.
func (r *SponsorshipRepository) Resolve(ctx context.Context, id string, status model.SponsorshipStatus) (*model.SponsorshipRequest, error) {
	query := `
		UPDATE type::record($id)
		SET status = $status
		WHERE status = $pending
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"id":      id,
		"status":  string(status),
		"pending": string(model.SponsorshipStatusPending),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseSponsorshipResult(result)
}

func (r *SponsorshipRepository) querySponsorships(ctx context.Context, query string, vars map[string]interface{}) ([]*model.SponsorshipRequest, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.SponsorshipRequest{}, nil
	}

	requests := make([]*model.SponsorshipRequest, 0, len(records))
	for _, record := range records {
		req, err := parseSponsorshipResult(record)
		if err != nil {
			return nil, err
		}
		if req != nil {
			requests = append(requests, req)
		}
	}
	return requests, nil
}

func parseSponsorshipResult(result interface{}) (*model.SponsorshipRequest, error) {
	data, err := unwrapSingleResult(result)
	if err != nil {
		return nil, fmt.Errorf("sponsorship: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	req := &model.SponsorshipRequest{
		ID:          convertSurrealID(data["id"]),
		EventID:     convertSurrealID(data["event"]),
		ClubID:      convertSurrealID(data["club"]),
		MemberID:    convertSurrealID(data["member"]),
		CompanyName: getString(data, "company_name"),
		Amount:      getFloat(data, "amount"),
		CoverLetter: getString(data, "cover_letter"),
		Status:      model.SponsorshipStatus(getString(data, "status")),
		CreatedOn:   getTime(data, "created_on"),
	}
	return req, nil
}
