package service

import (
	"context"
	"fmt"

	"github.com/forgo/clubhub/api/internal/model"
)

// FeedbackRepository defines the interface for feedback storage
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	GetByClub(ctx context.Context, clubID string) ([]*model.Feedback, error)
	GetByClubAndMember(ctx context.Context, clubID, userID string) ([]*model.Feedback, error)
	UpdateMessage(ctx context.Context, feedbackID, clubID, userID, message string) (*model.Feedback, error)
}

// FeedbackService handles member feedback: submission, officer review and
// submitter-only edits.
type FeedbackService struct {
	feedbackRepo FeedbackRepository
	userRepo     UserRepository
	guard        *Guard
}

// FeedbackServiceConfig holds configuration for the feedback service
type FeedbackServiceConfig struct {
	FeedbackRepo FeedbackRepository
	UserRepo     UserRepository
	Guard        *Guard
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(cfg FeedbackServiceConfig) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: cfg.FeedbackRepo,
		userRepo:     cfg.UserRepo,
		guard:        cfg.Guard,
	}
}

// Submit records feedback from a club member
func (s *FeedbackService) Submit(ctx context.Context, userID, clubID string, req model.SubmitFeedbackRequest) (*model.Feedback, error) {
	if _, err := s.guard.MemberClub(ctx, clubID, userID); err != nil {
		return nil, err
	}

	message, ok := model.ValidFeedbackMessage(req.Message)
	if !ok {
		return nil, ErrInvalidFeedback
	}

	feedback := &model.Feedback{
		ClubID:      clubID,
		SubmittedBy: userID,
		Message:     message,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return feedback, nil
}

// ListByClub retrieves a club's feedback with submitter display data. Only
// officers may review feedback.
func (s *FeedbackService) ListByClub(ctx context.Context, userID, clubID string) ([]model.FeedbackWithSender, error) {
	if _, err := s.guard.OfficerClub(ctx, clubID, userID); err != nil {
		return nil, err
	}

	items, err := s.feedbackRepo.GetByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.SubmittedBy)
	}

	info, err := s.userRepo.GetDisplayInfo(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("feedback display info: %w", err)
	}

	enriched := make([]model.FeedbackWithSender, 0, len(items))
	for _, item := range items {
		entry := model.FeedbackWithSender{Feedback: *item}
		if display, ok := info[model.CanonicalID(item.SubmittedBy)]; ok {
			d := display
			entry.Sender = &d
		}
		enriched = append(enriched, entry)
	}
	return enriched, nil
}

// ListMine retrieves the member's own feedback for a club, newest first
func (s *FeedbackService) ListMine(ctx context.Context, userID, clubID string) ([]*model.Feedback, error) {
	if _, err := s.guard.MemberClub(ctx, clubID, userID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.GetByClubAndMember(ctx, clubID, userID)
}

// Update rewrites the submitter's own feedback. The lookup is compound on
// feedback id, club and submitter: an id that exists but belongs to another
// member or club reads as not found rather than forbidden.
func (s *FeedbackService) Update(ctx context.Context, userID, clubID, feedbackID string, req model.UpdateFeedbackRequest) (*model.Feedback, error) {
	if _, err := s.guard.MemberClub(ctx, clubID, userID); err != nil {
		return nil, err
	}

	message, ok := model.ValidFeedbackMessage(req.Message)
	if !ok {
		return nil, ErrInvalidFeedback
	}

	updated, err := s.feedbackRepo.UpdateMessage(ctx, feedbackID, clubID, userID, message)
	if err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	if updated == nil {
		return nil, ErrFeedbackNotFound
	}
	return updated, nil
}
