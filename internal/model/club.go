package model

import "time"

// Club represents a member-run organization. Club records are owned by the
// external membership system; the workflows read them for authorization and
// never write them.
type Club struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	Officers  []string  `json:"officers"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// IsMember reports whether userID belongs to the club's member set.
func (c *Club) IsMember(userID string) bool {
	return ContainsID(c.Members, userID)
}

// IsOfficer reports whether userID belongs to the club's officer set.
func (c *Club) IsOfficer(userID string) bool {
	return ContainsID(c.Officers, userID)
}

// OfficersNotInMembers returns officer ids that are missing from the member
// set. Officers are members by convention; a non-empty result signals
// inconsistent directory data and should be logged, not silently accepted.
func (c *Club) OfficersNotInMembers() []string {
	var orphans []string
	for _, officer := range c.Officers {
		if !ContainsID(c.Members, officer) {
			orphans = append(orphans, officer)
		}
	}
	return orphans
}

// User represents directory data for an authenticated user. Credentials live
// in the external identity provider; this record only carries what the
// workflows need for enrichment joins and joined-club lookups.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ClubsJoined []string  `json:"clubs_joined,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// DisplayInfo is the enrichment payload joined onto attendee, feedback and
// sponsorship listings.
type DisplayInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
