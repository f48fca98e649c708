package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/model"
)

// FeedbackRepository handles feedback data access
type FeedbackRepository struct {
	db database.Database
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db database.Database) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create creates a new feedback record
func (r *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	query := `
		CREATE feedback CONTENT {
			club: $club,
			submitted_by: $submitted_by,
			message: $message,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"club":         fullRecordID("club", feedback.ClubID),
		"submitted_by": fullRecordID("user", feedback.SubmittedBy),
		"message":      feedback.Message,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	feedback.ID = created.ID
	feedback.CreatedOn = created.CreatedOn
	feedback.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByClub retrieves all feedback for a club, newest first
func (r *FeedbackRepository) GetByClub(ctx context.Context, clubID string) ([]*model.Feedback, error) {
	query := `SELECT * FROM feedback WHERE club = $club ORDER BY created_on DESC`
	vars := map[string]interface{}{"club": fullRecordID("club", clubID)}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Feedback{}, nil
	}

	items := make([]*model.Feedback, 0, len(records))
	for _, record := range records {
		feedback, err := parseFeedbackResult(record)
		if err != nil {
			return nil, err
		}
		if feedback != nil {
			items = append(items, feedback)
		}
	}
	return items, nil
}

// GetByClubAndMember retrieves one member's feedback for a club, newest first
func (r *FeedbackRepository) GetByClubAndMember(ctx context.Context, clubID, userID string) ([]*model.Feedback, error) {
	query := `SELECT * FROM feedback WHERE club = $club AND submitted_by = $submitted_by ORDER BY created_on DESC`
	vars := map[string]interface{}{
		"club":         fullRecordID("club", clubID),
		"submitted_by": fullRecordID("user", userID),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Feedback{}, nil
	}

	items := make([]*model.Feedback, 0, len(records))
	for _, record := range records {
		feedback, err := parseFeedbackResult(record)
		if err != nil {
			return nil, err
		}
		if feedback != nil {
			items = append(items, feedback)
		}
	}
	return items, nil
}

// UpdateMessage rewrites the message of the submitter's own feedback. The
// compound WHERE pins both club and submitter, so an id belonging to another
// club or another member reads as absent rather than forbidden. Returns nil
// when no record matched.
func (r *FeedbackRepository) UpdateMessage(ctx context.Context, feedbackID, clubID, userID, message string) (*model.Feedback, error) {
	query := `
		UPDATE type::record($feedback_id)
		SET message = $message, updated_on = time::now()
		WHERE club = $club AND submitted_by = $submitted_by
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"feedback_id":  feedbackID,
		"message":      message,
		"club":         fullRecordID("club", clubID),
		"submitted_by": fullRecordID("user", userID),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseFeedbackResult(result)
}

func parseFeedbackResult(result interface{}) (*model.Feedback, error) {
	data, err := unwrapSingleResult(result)
	if err != nil {
		return nil, fmt.Errorf("feedback: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	feedback := &model.Feedback{
		ID:          convertSurrealID(data["id"]),
		ClubID:      convertSurrealID(data["club"]),
		SubmittedBy: convertSurrealID(data["submitted_by"]),
		Message:     getString(data, "message"),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
	return feedback, nil
}
