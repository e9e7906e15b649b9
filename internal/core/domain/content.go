package domain

import "time"

// ContentType identifies the media kind of a content item.
type ContentType string

const (
	ContentText  ContentType = "TEXT"
	ContentImage ContentType = "IMAGE"
	ContentVideo ContentType = "VIDEO"
	ContentAudio ContentType = "AUDIO"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentText, ContentImage, ContentVideo, ContentAudio:
		return true
	}
	return false
}

// ContentStatus represents the editorial state of a content item.
type ContentStatus string

const (
	ContentDraft     ContentStatus = "Draft"
	ContentApproved  ContentStatus = "Approved"
	ContentPublished ContentStatus = "Published"
)

// contentTransitions defines the allowed editorial moves.
var contentTransitions = map[ContentStatus][]ContentStatus{
	ContentDraft:    {ContentApproved},
	ContentApproved: {ContentPublished, ContentDraft},
}

// CanTransitionTo reports whether a move from s to next is valid.
func (s ContentStatus) CanTransitionTo(next ContentStatus) bool {
	for _, allowed := range contentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ContentItem is a marketing asset owned by exactly one business. Data holds
// inline text, a data URI, or a signed media URL depending on Type.
type ContentItem struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	BusinessID string        `json:"business_id" bson:"business_id"`
	Title      string        `json:"title" bson:"title"`
	Type       ContentType   `json:"type" bson:"type"`
	Status     ContentStatus `json:"status" bson:"status"`
	Data       string        `json:"data" bson:"data"`
	CreatedBy  string        `json:"created_by" bson:"created_by"`
	Shared     bool          `json:"shared" bson:"shared"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
}

// VisibleTo reports whether viewer may observe this item: admins see the whole
// business collection, agents see what they created or what is shared.
func (c *ContentItem) VisibleTo(viewer *Identity) bool {
	if viewer == nil || viewer.BusinessID != c.BusinessID {
		return false
	}
	switch viewer.Role {
	case RolePlatformAdmin, RoleBusinessAdmin:
		return true
	case RoleAgent:
		return c.Shared || c.CreatedBy == viewer.ID
	}
	return false
}
