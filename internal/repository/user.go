package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/clubhub/api/internal/database"
	"github.com/forgo/clubhub/api/internal/model"
)

// UserRepository handles directory lookups for user records. Credentials live
// in the external identity provider; only display data is read here.
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Get retrieves a user by ID. Returns nil when the user does not exist.
func (r *UserRepository) Get(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserResult(result)
}

// GetDisplayInfo retrieves display data for a batch of user ids, keyed by
// canonical id. Missing users are simply absent from the result.
func (r *UserRepository) GetDisplayInfo(ctx context.Context, ids []string) (map[string]model.DisplayInfo, error) {
	info := make(map[string]model.DisplayInfo, len(ids))
	if len(ids) == 0 {
		return info, nil
	}

	query := `SELECT id, name, email FROM type::record($id)`
	for _, id := range model.DedupIDs(ids) {
		vars := map[string]interface{}{"id": fullRecordID("user", id)}

		result, err := r.db.QueryOne(ctx, query, vars)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				continue
			}
			return nil, err
		}

		data, err := unwrapSingleResult(result)
		if err != nil || data == nil {
			continue
		}
		recordID := convertSurrealID(data["id"])
		if recordID == "" {
			continue
		}
		info[model.CanonicalID(recordID)] = model.DisplayInfo{
			ID:    recordID,
			Name:  getString(data, "name"),
			Email: getString(data, "email"),
		}
	}
	return info, nil
}

func parseUserResult(result interface{}) (*model.User, error) {
	data, err := unwrapSingleResult(result)
	if err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	user := &model.User{
		ID:          convertSurrealID(data["id"]),
		Name:        getString(data, "name"),
		Email:       getString(data, "email"),
		ClubsJoined: getIDSlice(data, "clubs_joined"),
		CreatedOn:   getTime(data, "created_on"),
	}
	return user, nil
}
