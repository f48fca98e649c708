package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/model"
)

// ClubRepository handles club data access. Club records are written by the
// external membership system; everything here is read-only.
type ClubRepository struct {
	db database.Database
}

// NewClubRepository creates a new club repository
func NewClubRepository(db database.Database) *ClubRepository {
	return &ClubRepository{db: db}
}

// Get retrieves a club by ID. Returns nil when the club does not exist.
func (r *ClubRepository) Get(ctx context.Context, id string) (*model.Club, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseClubResult(result)
}

// GetByMember retrieves all clubs whose member set contains the user.
// Member arrays store full record-form ids, so the lookup matches on that form.
func (r *ClubRepository) GetByMember(ctx context.Context, userID string) ([]*model.Club, error) {
	query := `SELECT * FROM club WHERE members CONTAINS $user_id ORDER BY name ASC`
	vars := map[string]interface{}{"user_id": fullRecordID("user", userID)}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Club{}, nil
	}

	clubs := make([]*model.Club, 0, len(records))
	for _, record := range records {
		club, err := parseClubResult(record)
		if err != nil {
			return nil, err
		}
		if club != nil {
			clubs = append(clubs, club)
		}
	}
	return clubs, nil
}

func parseClubResult(result interface{}) (*model.Club, error) {
	data, err := unwrapSingleResult(result)
	if err != nil {
		return nil, fmt.Errorf("club: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	club := &model.Club{
		ID:        convertSurrealID(data["id"]),
		Name:      getString(data, "name"),
		Members:   getIDSlice(data, "members"),
		Officers:  getIDSlice(data, "officers"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
	return club, nil
}
