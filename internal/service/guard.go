package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/clubhub/api/internal/model"
)

// ClubRepository defines the interface for club storage
type ClubRepository interface {
	Get(ctx context.Context, id string) (*model.Club, error)
	GetByMember(ctx context.Context, userID string) ([]*model.Club, error)
}

// UserRepository defines the interface for user directory lookups
type UserRepository interface {
	Get(ctx context.Context, id string) (*model.User, error)
	GetDisplayInfo(ctx context.Context, ids []string) (map[string]model.DisplayInfo, error)
}

// Guard resolves clubs and checks actors against their member and officer
// sets. Every workflow operation goes through it before touching a resource.
type Guard struct {
	clubRepo ClubRepository
	logger   *slog.Logger
}

// NewGuard creates a new authorization guard
func NewGuard(clubRepo ClubRepository, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{clubRepo: clubRepo, logger: logger}
}

// ResolveClub loads a club by id. Officer entries missing from the member set
// indicate inconsistent directory data; they are logged and tolerated.
func (g *Guard) ResolveClub(ctx context.Context, clubID string) (*model.Club, error) {
	club, err := g.clubRepo.Get(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("resolve club: %w", err)
	}
	if club == nil {
		return nil, ErrClubNotFound
	}

	if orphans := club.OfficersNotInMembers(); len(orphans) > 0 {
		g.logger.Warn("club has officers outside its member set",
			"club_id", club.ID,
			"officer_ids", orphans,
		)
	}
	return club, nil
}

// RequireMember returns ErrNotClubMember unless the user is in the club's
// member set.
func (g *Guard) RequireMember(club *model.Club, userID string) error {
	if !club.IsMember(userID) {
		return ErrNotClubMember
	}
	return nil
}

// RequireOfficer returns ErrNotClubOfficer unless the user is in the club's
// officer set.
func (g *Guard) RequireOfficer(club *model.Club, userID string) error {
	if !club.IsOfficer(userID) {
		return ErrNotClubOfficer
	}
	return nil
}

// MemberClub resolves the club and requires membership in one step.
func (g *Guard) MemberClub(ctx context.Context, clubID, userID string) (*model.Club, error) {
	club, err := g.ResolveClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := g.RequireMember(club, userID); err != nil {
		return nil, err
	}
	return club, nil
}

// OfficerClub resolves the club and requires officer standing in one step.
func (g *Guard) OfficerClub(ctx context.Context, clubID, userID string) (*model.Club, error) {
	club, err := g.ResolveClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := g.RequireOfficer(club, userID); err != nil {
		return nil, err
	}
	return club, nil
}
