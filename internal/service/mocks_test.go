package service

import (
	"context"
	"time"

	"github.com/forgo/clubhub/api/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockClubRepo struct {
	getFunc         func(ctx context.Context, id string) (*model.Club, error)
	getByMemberFunc func(ctx context.Context, userID string) ([]*model.Club, error)
}

func (m *mockClubRepo) Get(ctx context.Context, id string) (*model.Club, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClubRepo) GetByMember(ctx context.Context, userID string) ([]*model.Club, error) {
	if m.getByMemberFunc != nil {
		return m.getByMemberFunc(ctx, userID)
	}
	return nil, nil
}

type mockUserRepo struct {
	getFunc            func(ctx context.Context, id string) (*model.User, error)
	getDisplayInfoFunc func(ctx context.Context, ids []string) (map[string]model.DisplayInfo, error)
}

func (m *mockUserRepo) Get(ctx context.Context, id string) (*model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetDisplayInfo(ctx context.Context, ids []string) (map[string]model.DisplayInfo, error) {
	if m.getDisplayInfoFunc != nil {
		return m.getDisplayInfoFunc(ctx, ids)
	}
	return map[string]model.DisplayInfo{}, nil
}

type mockEventRepo struct {
	createFunc          func(ctx context.Context, event *model.Event) error
	getFunc             func(ctx context.Context, id string) (*model.Event, error)
	updateFunc          func(ctx context.Context, eventID string, req *model.UpdateEventRequest) (*model.Event, error)
	deleteFunc          func(ctx context.Context, id string) error
	getAllFunc          func(ctx context.Context) ([]*model.Event, error)
	getByClubFunc       func(ctx context.Context, clubID string) ([]*model.Event, error)
	getByCreatorFunc    func(ctx context.Context, userID string) ([]*model.Event, error)
	getByClubsFunc      func(ctx context.Context, clubIDs []string) ([]*model.Event, error)
	getByDayFunc        func(ctx context.Context, day time.Time) ([]*model.Event, error)
	addAttendeeFunc     func(ctx context.Context, eventID, userID string) (*model.Event, error)
	addGalleryEntryFunc func(ctx context.Context, eventID string, entry model.GalleryEntry) (*model.Event, error)
	setGalleryFunc      func(ctx context.Context, eventID string, gallery []model.GalleryEntry) (*model.Event, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) Get(ctx context.Context, id string) (*model.Event, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEventRepo) Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) (*model.Event, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, eventID, req)
	}
	return nil, nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEventRepo) GetAll(ctx context.Context) ([]*model.Event, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockEventRepo) GetByClub(ctx context.Context, clubID string) ([]*model.Event, error) {
	if m.getByClubFunc != nil {
		return m.getByClubFunc(ctx, clubID)
	}
	return nil, nil
}

func (m *mockEventRepo) GetByCreator(ctx context.Context, userID string) ([]*model.Event, error) {
	if m.getByCreatorFunc != nil {
		return m.getByCreatorFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockEventRepo) GetByClubs(ctx context.Context, clubIDs []string) ([]*model.Event, error) {
	if m.getByClubsFunc != nil {
		return m.getByClubsFunc(ctx, clubIDs)
	}
	return nil, nil
}

func (m *mockEventRepo) GetByDay(ctx context.Context, day time.Time) ([]*model.Event, error) {
	if m.getByDayFunc != nil {
		return m.getByDayFunc(ctx, day)
	}
	return nil, nil
}

func (m *mockEventRepo) AddAttendee(ctx context.Context, eventID, userID string) (*model.Event, error) {
	if m.addAttendeeFunc != nil {
		return m.addAttendeeFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func (m *mockEventRepo) AddGalleryEntry(ctx context.Context, eventID string, entry model.GalleryEntry) (*model.Event, error) {
	if m.addGalleryEntryFunc != nil {
		return m.addGalleryEntryFunc(ctx, eventID, entry)
	}
	return nil, nil
}

func (m *mockEventRepo) SetGallery(ctx context.Context, eventID string, gallery []model.GalleryEntry) (*model.Event, error) {
	if m.setGalleryFunc != nil {
		return m.setGalleryFunc(ctx, eventID, gallery)
	}
	return nil, nil
}

type mockTaskRepo struct {
	createFunc         func(ctx context.Context, task *model.Task) error
	getFunc            func(ctx context.Context, id string) (*model.Task, error)
	getByClubFunc      func(ctx context.Context, clubID string) ([]*model.Task, error)
	getByAssigneeFunc  func(ctx context.Context, userID string) ([]*model.Task, error)
	updateProgressFunc func(ctx context.Context, taskID, progress string, from, to model.TaskStatus) (*model.Task, error)
	completeFunc       func(ctx context.Context, taskID string) (*model.Task, error)
}

func (m *mockTaskRepo) Create(ctx context.Context, task *model.Task) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) Get(ctx context.Context, id string) (*model.Task, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetByClub(ctx context.Context, clubID string) ([]*model.Task, error) {
	if m.getByClubFunc != nil {
		return m.getByClubFunc(ctx, clubID)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetByAssignee(ctx context.Context, userID string) ([]*model.Task, error) {
	if m.getByAssigneeFunc != nil {
		return m.getByAssigneeFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepo) UpdateProgress(ctx context.Context, taskID, progress string, from, to model.TaskStatus) (*model.Task, error) {
	if m.updateProgressFunc != nil {
		return m.updateProgressFunc(ctx, taskID, progress, from, to)
	}
	return nil, nil
}

func (m *mockTaskRepo) Complete(ctx context.Context, taskID string) (*model.Task, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, taskID)
	}
	return nil, nil
}

type mockSponsorshipRepo struct {
	createFunc      func(ctx context.Context, req *model.SponsorshipRequest) error
	getFunc         func(ctx context.Context, id string) (*model.SponsorshipRequest, error)
	getByEventFunc  func(ctx context.Context, eventID string) ([]*model.SponsorshipRequest, error)
	getByMemberFunc func(ctx context.Context, userID string) ([]*model.SponsorshipRequest, error)
	resolveFunc     func(ctx context.Context, id string, status model.SponsorshipStatus) (*model.SponsorshipRequest, error)
}

func (m *mockSponsorshipRepo) Create(ctx context.Context, req *model.SponsorshipRequest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil
}

func (m *mockSponsorshipRepo) Get(ctx context.Context, id string) (*model.SponsorshipRequest, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSponsorshipRepo) GetByEvent(ctx context.Context, eventID string) ([]*model.SponsorshipRequest, error) {
	if m.getByEventFunc != nil {
		return m.getByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockSponsorshipRepo) GetByMember(ctx context.Context, userID string) ([]*model.SponsorshipRequest, error) {
	if m.getByMemberFunc != nil {
		return m.getByMemberFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSponsorshipRepo) Resolve(ctx context.Context, id string, status model.SponsorshipStatus) (*model.SponsorshipRequest, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, id, status)
	}
	return nil, nil
}

type mockFeedbackRepo struct {
	createFunc             func(ctx context.Context, feedback *model.Feedback) error
	getByClubFunc          func(ctx context.Context, clubID string) ([]*model.Feedback, error)
	getByClubAndMemberFunc func(ctx context.Context, clubID, userID string) ([]*model.Feedback, error)
	updateMessageFunc      func(ctx context.Context, feedbackID, clubID, userID, message string) (*model.Feedback, error)
}

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, feedback)
	}
	return nil
}

func (m *mockFeedbackRepo) GetByClub(ctx context.Context, clubID string) ([]*model.Feedback, error) {
	if m.getByClubFunc != nil {
		return m.getByClubFunc(ctx, clubID)
	}
	return nil, nil
}

func (m *mockFeedbackRepo) GetByClubAndMember(ctx context.Context, clubID, userID string) ([]*model.Feedback, error) {
	if m.getByClubAndMemberFunc != nil {
		return m.getByClubAndMemberFunc(ctx, clubID, userID)
	}
	return nil, nil
}

func (m *mockFeedbackRepo) UpdateMessage(ctx context.Context, feedbackID, clubID, userID, message string) (*model.Feedback, error) {
	if m.updateMessageFunc != nil {
		return m.updateMessageFunc(ctx, feedbackID, clubID, userID, message)
	}
	return nil, nil
}

type mockNotificationRepo struct {
	createFunc      func(ctx context.Context, notification *model.Notification) error
	listForUserFunc func(ctx context.Context, userID string) ([]*model.Notification, error)
	markReadFunc    func(ctx context.Context, notificationID, userID string) (*model.Notification, error)
	markAllReadFunc func(ctx context.Context, userID string) error
	deleteFunc      func(ctx context.Context, notificationID, userID string) (*model.Notification, error)
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, notification)
	}
	return nil
}

func (m *mockNotificationRepo) ListForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	if m.listForUserFunc != nil {
		return m.listForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, notificationID, userID)
	}
	return nil, nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	if m.markAllReadFunc != nil {
		return m.markAllReadFunc(ctx, userID)
	}
	return nil
}

func (m *mockNotificationRepo) Delete(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, notificationID, userID)
	}
	return nil, nil
}

// ============================================================================
// Test Fixtures
// ============================================================================

func testClub() *model.Club {
	return &model.Club{
		ID:       "club:robotics",
		Name:     "Robotics Club",
		Members:  []string{"user:officer", "user:member", "user:other"},
		Officers: []string{"user:officer"},
	}
}

func fixedClubRepo(club *model.Club) *mockClubRepo {
	return &mockClubRepo{
		getFunc: func(ctx context.Context, id string) (*model.Club, error) {
			if club != nil && model.SameID(club.ID, id) {
				return club, nil
			}
			return nil, nil
		},
	}
}

// recordingNotifier wraps a NotificationService over an in-memory repo and
// records everything dispatched through it.
func recordingNotifier() (*NotificationService, *[]*model.Notification) {
	var sent []*model.Notification
	repo := &mockNotificationRepo{
		createFunc: func(ctx context.Context, notification *model.Notification) error {
			sent = append(sent, notification)
			return nil
		},
	}
	return NewNotificationService(repo, nil), &sent
}
