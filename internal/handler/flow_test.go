package handler

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/clubhub/api/internal/middleware"
	"github.com/forgo/clubhub/api/internal/model"
	"github.com/forgo/clubhub/api/internal/service"
	"github.com/forgo/clubhub/api/pkg/jwt"
)

// memoryNotificationStore keeps dispatched notifications in memory so the
// flow below can observe fan-out through the real notification feed routes.
type memoryNotificationStore struct {
	mu            sync.Mutex
	notifications []*model.Notification
}

func (s *memoryNotificationStore) Create(ctx context.Context, notification *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *notification
	copied.ID = "notification:" + time.Now().Format("150405.000000000")
	s.notifications = append(s.notifications, &copied)
	return nil
}

func (s *memoryNotificationStore) ListForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *memoryNotificationStore) MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.ID == notificationID && n.UserID == userID {
			n.Read = true
			return n, nil
		}
	}
	return nil, nil
}

func (s *memoryNotificationStore) Delete(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications {
		if n.ID == notificationID && n.UserID == userID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return n, nil
		}
	}
	return nil, nil
}

func (s *memoryNotificationStore) MarkAllRead(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

type flowValidator struct {
	jwt *jwt.Service
}

func (v *flowValidator) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return v.jwt.Validate(token)
}

// TestEventRSVPNotificationFlow drives the authenticated HTTP surface end to
// end: an officer edits an event, attendees receive notifications, and an
// attendee reads their feed through the real routes behind JWT auth.
func TestEventRSVPNotificationFlow(t *testing.T) {
	t.Parallel()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	jwtService := jwt.NewTestService(privateKey, "clubhub-test", time.Hour)

	club := handlerTestClub()
	event := handlerTestEvent()

	store := &memoryNotificationStore{}
	notificationService := service.NewNotificationService(store, nil)

	clubRepo := &stubClubRepo{
		getFunc: func(ctx context.Context, id string) (*model.Club, error) {
			return club, nil
		},
	}
	eventRepo := &stubEventRepo{
		getFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return event, nil
		},
		updateFunc: func(ctx context.Context, eventID string, req *model.UpdateEventRequest) (*model.Event, error) {
			updated := *event
			if req.Location != nil {
				updated.Location = *req.Location
			}
			return &updated, nil
		},
	}
	eventService := service.NewEventService(service.EventServiceConfig{
		EventRepo:    eventRepo,
		ClubRepo:     clubRepo,
		UserRepo:     &stubUserRepo{},
		Guard:        service.NewGuard(clubRepo, nil),
		Notification: notificationService,
	})

	eventHandler := NewEventHandler(eventService)
	notificationHandler := NewNotificationHandler(notificationService)

	authMiddleware := middleware.Auth(&flowValidator{jwt: jwtService})
	mux := http.NewServeMux()
	mux.Handle("PATCH /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Update)))
	mux.Handle("GET /v1/notifications", authMiddleware(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("POST /v1/notifications/read-all", authMiddleware(http.HandlerFunc(notificationHandler.MarkAllRead)))
	mux.Handle("DELETE /v1/notifications/{notificationId}", authMiddleware(http.HandlerFunc(notificationHandler.Delete)))
	server := httptest.NewServer(mux)
	defer server.Close()

	signToken := func(userID string) string {
		token, err := jwtService.Sign(jwt.Claims{UserID: userID, Email: userID + "@clubhub.test"})
		require.NoError(t, err)
		return token
	}

	do := func(method, path, token, body string) *http.Response {
		var req *http.Request
		if body != "" {
			req, err = http.NewRequest(method, server.URL+path, bytes.NewBufferString(body))
		} else {
			req, err = http.NewRequest(method, server.URL+path, nil)
		}
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	// Request without a token is rejected before reaching the handler.
	resp := do(http.MethodGet, "/v1/notifications", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	// The officer moves the event; the attendee gets notified.
	resp = do(http.MethodPatch, "/v1/events/event:buildnight", signToken("user:officer"), `{"location":"Main Hall"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated DataResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	_ = resp.Body.Close()

	// The attendee's feed carries exactly the edit notification.
	resp = do(http.MethodGet, "/v1/notifications", signToken("user:member"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed struct {
		Data []*model.Notification `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	_ = resp.Body.Close()
	require.Len(t, feed.Data, 1)
	assert.Equal(t, model.NotificationTypeEventEdited, feed.Data[0].Type)
	assert.Equal(t, "event:buildnight", feed.Data[0].RelatedEvent)
	assert.False(t, feed.Data[0].Read)

	// The officer is not an attendee, so their feed stays empty.
	resp = do(http.MethodGet, "/v1/notifications", signToken("user:officer"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var officerFeed struct {
		Data []*model.Notification `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&officerFeed))
	_ = resp.Body.Close()
	assert.Empty(t, officerFeed.Data)

	// Mark-all-read clears the attendee's feed flags.
	resp = do(http.MethodPost, "/v1/notifications/read-all", signToken("user:member"), "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = do(http.MethodGet, "/v1/notifications", signToken("user:member"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	_ = resp.Body.Close()
	require.Len(t, feed.Data, 1)
	assert.True(t, feed.Data[0].Read)

	// Another user cannot delete the attendee's notification.
	notificationID := feed.Data[0].ID
	resp = do(http.MethodDelete, "/v1/notifications/"+notificationID, signToken("user:officer"), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// The owner deletes it and the feed empties.
	resp = do(http.MethodDelete, "/v1/notifications/"+notificationID, signToken("user:member"), "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = do(http.MethodGet, "/v1/notifications", signToken("user:member"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var emptied struct {
		Data []*model.Notification `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&emptied))
	_ = resp.Body.Close()
	assert.Empty(t, emptied.Data)
}
