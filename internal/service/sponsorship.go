package service

import (
	"context"
	"fmt"

	"github.com/forgo/clubhub/api/internal/model"
)

// SponsorshipRepository defines the interface for sponsorship storage
type SponsorshipRepository interface {
	Create(ctx context.Context, req *model.SponsorshipRequest) error
	Get(ctx context.Context, id string) (*model.SponsorshipRequest, error)
	GetByEvent(ctx context.Context, eventID string) ([]*model.SponsorshipRequest, error)
	GetByMember(ctx context.Context, userID string) ([]*model.SponsorshipRequest, error)
	Resolve(ctx context.Context, id string, status model.SponsorshipStatus) (*model.SponsorshipRequest, error)
}

// SponsorshipService handles the sponsorship workflow: member submissions
// and one-shot officer resolutions.
type SponsorshipService struct {
	sponsorshipRepo SponsorshipRepository
	eventRepo       EventRepository
	userRepo        UserRepository
	guard           *Guard
	notification    *NotificationService
}

// SponsorshipServiceConfig holds configuration for the sponsorship service
type SponsorshipServiceConfig struct {
	SponsorshipRepo SponsorshipRepository
	EventRepo       EventRepository
	UserRepo        UserRepository
	Guard           *Guard
	Notification    *NotificationService
}

// NewSponsorshipService creates a new sponsorship service
func NewSponsorshipService(cfg SponsorshipServiceConfig) *SponsorshipService {
	return &SponsorshipService{
		sponsorshipRepo: cfg.SponsorshipRepo,
		eventRepo:       cfg.EventRepo,
		userRepo:        cfg.UserRepo,
		guard:           cfg.Guard,
		notification:    cfg.Notification,
	}
}

// Submit creates a pending sponsorship request for an event and notifies the
// club's officers. Submitting requires membership in the event's club.
func (s *SponsorshipService) Submit(ctx context.Context, userID, eventID string, req model.SubmitSponsorshipRequest) (*model.SponsorshipRequest, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	club, err := s.guard.MemberClub(ctx, event.ClubID, userID)
	if err != nil {
		return nil, err
	}

	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	request := &model.SponsorshipRequest{
		EventID:     eventID,
		ClubID:      event.ClubID,
		MemberID:    userID,
		CompanyName: req.CompanyName,
		Amount:      req.Amount,
		CoverLetter: req.CoverLetter,
	}

	if err := s.sponsorshipRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create sponsorship: %w", err)
	}

	s.notification.Dispatch(ctx, model.NotificationTypeSponsorshipRequest,
		fmt.Sprintf("New sponsorship request from %s for %q", req.CompanyName, event.Title),
		club.Officers,
		model.NotificationRefs{Club: club.ID, Event: eventID},
	)

	return request, nil
}

// ListByEvent retrieves an event's sponsorship requests with submitter
// display data. Only officers of the owning club may view them.
func (s *SponsorshipService) ListByEvent(ctx context.Context, userID, eventID string) ([]model.SponsorshipWithMember, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if _, err := s.guard.OfficerClub(ctx, event.ClubID, userID); err != nil {
		return nil, err
	}

	requests, err := s.sponsorshipRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sponsorships: %w", err)
	}
	return s.enrichRequests(ctx, requests)
}

// ListMine retrieves the user's own sponsorship requests
func (s *SponsorshipService) ListMine(ctx context.Context, userID string) ([]*model.SponsorshipRequest, error) {
	return s.sponsorshipRepo.GetByMember(ctx, userID)
}

// Resolve approves or rejects a pending request and notifies the submitter.
// A request resolves exactly once: repeated or concurrent resolutions are
// conflicts, whatever direction they push in.
func (s *SponsorshipService) Resolve(ctx context.Context, userID, requestID string, status model.SponsorshipStatus) (*model.SponsorshipRequest, error) {
	if !status.IsResolution() {
		return nil, ErrInvalidResolution
	}

	request, err := s.sponsorshipRepo.Get(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get sponsorship: %w", err)
	}
	if request == nil {
		return nil, ErrSponsorshipNotFound
	}

	// Authorization follows the event's current club, not the club recorded
	// at submit time. A request whose event is gone cannot be resolved.
	event, err := s.eventRepo.Get(ctx, request.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if _, err := s.guard.OfficerClub(ctx, event.ClubID, userID); err != nil {
		return nil, err
	}

	if request.IsResolved() {
		return nil, ErrSponsorshipResolved
	}

	resolved, err := s.sponsorshipRepo.Resolve(ctx, requestID, status)
	if err != nil {
		return nil, fmt.Errorf("resolve sponsorship: %w", err)
	}
	if resolved == nil {
		// Conditional write rejected: a concurrent resolution won the race.
		return nil, ErrSponsorshipResolved
	}

	s.notification.Dispatch(ctx, model.NotificationTypeSponsorshipResponse,
		fmt.Sprintf("Your sponsorship request for %s was %s", resolved.CompanyName, resolved.Status),
		[]string{resolved.MemberID},
		model.NotificationRefs{Club: resolved.ClubID, Event: resolved.EventID},
	)

	return resolved, nil
}

func (s *SponsorshipService) enrichRequests(ctx context.Context, requests []*model.SponsorshipRequest) ([]model.SponsorshipWithMember, error) {
	ids := make([]string, 0, len(requests))
	for _, request := range requests {
		ids = append(ids, request.MemberID)
	}

	info, err := s.userRepo.GetDisplayInfo(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("sponsorship display info: %w", err)
	}

	enriched := make([]model.SponsorshipWithMember, 0, len(requests))
	for _, request := range requests {
		item := model.SponsorshipWithMember{Request: *request}
		if display, ok := info[model.CanonicalID(request.MemberID)]; ok {
			d := display
			item.Member = &d
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}
