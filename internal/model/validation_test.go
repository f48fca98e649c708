package model

import (
	"strings"
	"testing"
	"time"
)

// ============================================================================
// CreateEventRequest Tests
// ============================================================================

func TestCreateEventRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		ClubID:   "club:123",
		Title:    "Spring Hackathon",
		Date:     time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC),
		Location: "Main Hall",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_MissingClubID(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		Title:    "Spring Hackathon",
		Date:     time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC),
		Location: "Main Hall",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "club_id" {
		t.Errorf("expected club_id error, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_MissingTitle(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		ClubID:   "club:123",
		Date:     time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC),
		Location: "Main Hall",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "title" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected title error, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_TitleTooLong(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		ClubID:   "club:123",
		Title:    strings.Repeat("x", MaxEventTitleLength+1),
		Date:     time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC),
		Location: "Main Hall",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "title" && strings.Contains(e.Message, "maximum") {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected title length error, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_MissingDate(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		ClubID:   "club:123",
		Title:    "Spring Hackathon",
		Location: "Main Hall",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "date" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected date error, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_MissingLocation(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		ClubID: "club:123",
		Title:  "Spring Hackathon",
		Date:   time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC),
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "location" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected location error, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{}

	errors := req.Validate()
	if len(errors) != 4 {
		t.Errorf("expected 4 errors for empty request, got %d: %v", len(errors), errors)
	}
}

// ============================================================================
// UpdateEventRequest Tests
// ============================================================================

func TestUpdateEventRequest_IsEmpty_NoFields(t *testing.T) {
	t.Parallel()

	req := &UpdateEventRequest{}
	if !req.IsEmpty() {
		t.Error("expected empty patch to report IsEmpty")
	}
}

func TestUpdateEventRequest_IsEmpty_WithField(t *testing.T) {
	t.Parallel()

	title := "New Title"
	req := &UpdateEventRequest{Title: &title}
	if req.IsEmpty() {
		t.Error("expected patch with title to not report IsEmpty")
	}
}

// ============================================================================
// AssignTaskRequest Tests
// ============================================================================

func TestAssignTaskRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &AssignTaskRequest{
		MemberID:    "user:456",
		Description: "Order catering for the spring event",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestAssignTaskRequest_Validate_MissingMemberID(t *testing.T) {
	t.Parallel()

	req := &AssignTaskRequest{Description: "Order catering"}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "member_id" {
		t.Errorf("expected member_id error, got %v", errors)
	}
}

func TestAssignTaskRequest_Validate_MissingDescription(t *testing.T) {
	t.Parallel()

	req := &AssignTaskRequest{MemberID: "user:456"}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "description" {
		t.Errorf("expected description error, got %v", errors)
	}
}

func TestAssignTaskRequest_Validate_DescriptionTooLong(t *testing.T) {
	t.Parallel()

	req := &AssignTaskRequest{
		MemberID:    "user:456",
		Description: strings.Repeat("x", MaxTaskDescriptionLength+1),
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "description" {
		t.Errorf("expected description length error, got %v", errors)
	}
}

// ============================================================================
// TaskStatus Tests
// ============================================================================

func TestTaskStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if TaskStatus("archived").IsValid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestTaskStatus_CanTransition_ForwardEdges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to TaskStatus
		want     bool
	}{
		{TaskStatusPending, TaskStatusInProgress, true},
		{TaskStatusPending, TaskStatusCompleted, true},
		{TaskStatusInProgress, TaskStatusCompleted, true},
		{TaskStatusInProgress, TaskStatusPending, false},
		{TaskStatusCompleted, TaskStatusInProgress, false},
		{TaskStatusCompleted, TaskStatusPending, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTaskStatus_CanTransition_SelfTransition(t *testing.T) {
	t.Parallel()

	if !TaskStatusInProgress.CanTransition(TaskStatusInProgress) {
		t.Error("expected in-progress self-transition to be allowed")
	}
	if !TaskStatusPending.CanTransition(TaskStatusPending) {
		t.Error("expected pending self-transition to be allowed")
	}
	if TaskStatusCompleted.CanTransition(TaskStatusCompleted) {
		t.Error("expected completed self-transition to be rejected")
	}
}

// ============================================================================
// SubmitSponsorshipRequest Tests
// ============================================================================

func TestSubmitSponsorshipRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &SubmitSponsorshipRequest{
		CompanyName: "Acme Corp",
		Amount:      2500,
		CoverLetter: "We would like to sponsor your spring hackathon.",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestSubmitSponsorshipRequest_Validate_ZeroAmount(t *testing.T) {
	t.Parallel()

	req := &SubmitSponsorshipRequest{
		CompanyName: "Acme Corp",
		Amount:      0,
		CoverLetter: "Letter",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "amount" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected amount error, got %v", errors)
	}
}

func TestSubmitSponsorshipRequest_Validate_NegativeAmount(t *testing.T) {
	t.Parallel()

	req := &SubmitSponsorshipRequest{
		CompanyName: "Acme Corp",
		Amount:      -50,
		CoverLetter: "Letter",
	}

	errors := req.Validate()
	hasError := false
	for _, e := range errors {
		if e.Field == "amount" {
			hasError = true
		}
	}
	if !hasError {
		t.Errorf("expected amount error, got %v", errors)
	}
}

func TestSubmitSponsorshipRequest_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	req := &SubmitSponsorshipRequest{}

	errors := req.Validate()
	if len(errors) != 3 {
		t.Errorf("expected 3 errors for empty request, got %d: %v", len(errors), errors)
	}
}

// ============================================================================
// SponsorshipStatus Tests
// ============================================================================

func TestSponsorshipStatus_IsResolution(t *testing.T) {
	t.Parallel()

	if !SponsorshipStatusApproved.IsResolution() {
		t.Error("expected approved to be a resolution")
	}
	if !SponsorshipStatusRejected.IsResolution() {
		t.Error("expected rejected to be a resolution")
	}
	if SponsorshipStatusPending.IsResolution() {
		t.Error("expected pending to not be a resolution")
	}
}

func TestSponsorshipRequest_IsResolved(t *testing.T) {
	t.Parallel()

	pending := &SponsorshipRequest{Status: SponsorshipStatusPending}
	if pending.IsResolved() {
		t.Error("expected pending request to not be resolved")
	}

	approved := &SponsorshipRequest{Status: SponsorshipStatusApproved}
	if !approved.IsResolved() {
		t.Error("expected approved request to be resolved")
	}
}

// ============================================================================
// Feedback Message Tests
// ============================================================================

func TestValidFeedbackMessage_Valid(t *testing.T) {
	t.Parallel()

	msg, ok := ValidFeedbackMessage("The meeting room was too small.")
	if !ok {
		t.Error("expected message to be valid")
	}
	if msg != "The meeting room was too small." {
		t.Errorf("unexpected trimmed message: %q", msg)
	}
}

func TestValidFeedbackMessage_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	msg, ok := ValidFeedbackMessage("  hello  ")
	if !ok {
		t.Error("expected trimmed message to be valid")
	}
	if msg != "hello" {
		t.Errorf("expected trimmed form, got %q", msg)
	}
}

func TestValidFeedbackMessage_WhitespaceOnly(t *testing.T) {
	t.Parallel()

	if _, ok := ValidFeedbackMessage("   \n\t  "); ok {
		t.Error("expected whitespace-only message to be invalid")
	}
}

func TestValidFeedbackMessage_TooLong(t *testing.T) {
	t.Parallel()

	if _, ok := ValidFeedbackMessage(strings.Repeat("x", MaxFeedbackMessageLength+1)); ok {
		t.Error("expected over-length message to be invalid")
	}
}
