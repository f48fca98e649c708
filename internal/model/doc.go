// Package model defines domain entities and data structures for the ClubHub API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Club: member-run organization with a privileged officer subset
//   - Event: scheduled club activity with attendees and a photo gallery
//   - Task: work item assigned by an officer to a club member
//   - SponsorshipRequest: member-submitted funding request routed to officers
//   - Feedback: member-submitted free-text feedback for a club
//   - Notification: in-system notification record fanned out by workflows
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Club struct {
//	    ID   string `json:"id"`
//	    Name string `json:"name"`
//	}
//
// # Error Model
//
// API errors follow RFC 9457 Problem Details; see errors.go for the
// ProblemDetails type and its constructors.
package model
