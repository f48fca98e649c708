package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/clubhub/api/internal/database"
)

// SeederService generates demo data for development environments. The
// identity provider owns real credentials; seeded users carry bcrypt hashes
// so a local stack can log in through the dev provider.
type SeederService struct {
	db database.Database
}

// NewSeederService creates a new seeder service
func NewSeederService(db database.Database) *SeederService {
	return &SeederService{db: db}
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	UsersCreated  int      `json:"users_created"`
	ClubsCreated  int      `json:"clubs_created"`
	EventsCreated int      `json:"events_created"`
	UserIDs       []string `json:"user_ids"`
}

type seedUser struct {
	key   string
	name  string
	email string
}

var demoUsers = []seedUser{
	{key: "demo_avery", name: "Avery Demo", email: "avery@clubhub.test"},
	{key: "demo_blake", name: "Blake Demo", email: "blake@clubhub.test"},
	{key: "demo_casey", name: "Casey Demo", email: "casey@clubhub.test"},
	{key: "demo_devon", name: "Devon Demo", email: "devon@clubhub.test"},
}

// SeedDemo creates a demo club with four members, two officers and one
// upcoming event. All records are written in a single transaction so a
// partial seed never leaks into the database. Safe to re-run: existing demo
// records are replaced.
func (s *SeederService) SeedDemo(ctx context.Context, password string) (*SeedResult, error) {
	if password == "" {
		password = "demo-password"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin seed transaction: %w", err)
	}

	result := &SeedResult{}
	memberIDs := make([]string, 0, len(demoUsers))
	for _, user := range demoUsers {
		userID := "user:" + user.key
		memberIDs = append(memberIDs, userID)

		query := fmt.Sprintf(`
			UPSERT user:%s CONTENT {
				name: $name_%s,
				email: $email_%s,
				hash: $hash,
				created_on: time::now()
			}
		`, user.key, user.key, user.key)

		vars := map[string]interface{}{
			"name_" + user.key:  user.name,
			"email_" + user.key: user.email,
			"hash":              string(hash),
		}

		if err := tx.Execute(ctx, query, vars); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("seed user %s: %w", user.key, err)
		}
		result.UsersCreated++
		result.UserIDs = append(result.UserIDs, userID)
	}

	clubQuery := `
		UPSERT club:demo_club CONTENT {
			name: $club_name,
			members: $members,
			officers: $officers,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	clubVars := map[string]interface{}{
		"club_name": "Demo Robotics Club",
		"members":   memberIDs,
		"officers":  memberIDs[:2],
	}
	if err := tx.Execute(ctx, clubQuery, clubVars); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("seed club: %w", err)
	}
	result.ClubsCreated++

	eventQuery := `
		UPSERT event:demo_event CONTENT {
			title: $title,
			description: $description,
			date: <datetime> $date,
			location: $location,
			club: $club,
			created_by: $created_by,
			attendees: $attendees,
			gallery: [],
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	eventVars := map[string]interface{}{
		"title":       "Demo Build Night",
		"description": "Weekly build session for the demo club",
		"date":        time.Now().UTC().Add(7 * 24 * time.Hour).Format(time.RFC3339),
		"location":    "Workshop B",
		"club":        "club:demo_club",
		"created_by":  memberIDs[0],
		"attendees":   memberIDs[:3],
	}
	if err := tx.Execute(ctx, eventQuery, eventVars); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("seed event: %w", err)
	}
	result.EventsCreated++

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed transaction: %w", err)
	}
	return result, nil
}

// Cleanup removes all seeded demo records
func (s *SeederService) Cleanup(ctx context.Context) error {
	queries := []string{
		`DELETE event:demo_event`,
		`DELETE club:demo_club`,
		`DELETE user WHERE email CONTAINS "@clubhub.test"`,
	}
	for _, query := range queries {
		if err := s.db.Execute(ctx, query, nil); err != nil {
			return fmt.Errorf("cleanup seed data: %w", err)
		}
	}
	return nil
}
