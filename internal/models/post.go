package models

import "time"

// Post content types.
const (
	PostTypeText  = "text"
	PostTypeCode  = "code"
	PostTypeMedia = "media"
)

// Post represents a feed entry with its nested comments. Counters are stored
// denormalized; CommentsCount must equal len(Comments) after every mutation.
type Post struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	SharesCount   int       `json:"shares_count"`
	User          Author    `json:"user"`
	MediaURL      string    `json:"media_url,omitempty"`
	// IsLiked is viewer-relative: whether the local session user liked this post.
	IsLiked  bool      `json:"is_liked"`
	Comments []Comment `json:"comments"`
}

// Comment is a reply nested under a post, in insertion (chronological) order.
type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	User       Author    `json:"user"`
	LikesCount int       `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

// ValidPostType reports whether t is one of the supported post types.
func ValidPostType(t string) bool {
	switch t {
	case PostTypeText, PostTypeCode, PostTypeMedia:
		return true
	}
	return false
}
