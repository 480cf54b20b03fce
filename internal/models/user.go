// Package models contains data structures for the application's domain models.
package models

// User represents an account in the local user directory. The email is the
// directory lookup key and is matched case-insensitively.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Title     string   `json:"title,omitempty"`
	Company   string   `json:"company,omitempty"`
	Location  string   `json:"location,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	GitHub    string   `json:"github,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
	Twitter   string   `json:"twitter,omitempty"`
	Website   string   `json:"website,omitempty"`
}

// Author is the denormalized snapshot of a user embedded in posts, comments
// and conversations at creation time. It is a copy, not a live reference:
// later profile edits do not rewrite historical content.
type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Title     string `json:"title,omitempty"`
}

// Snapshot copies the author-facing fields of a user.
func (u *User) Snapshot() Author {
	return Author{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Title:     u.Title,
	}
}

// ProfileUpdate carries the optional fields merged into a user by
// UpdateProfile. Nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string   `json:"name,omitempty"`
	Username  *string   `json:"username,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Title     *string   `json:"title,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Skills    *[]string `json:"skills,omitempty"`
	GitHub    *string   `json:"github,omitempty"`
	LinkedIn  *string   `json:"linkedin,omitempty"`
	Twitter   *string   `json:"twitter,omitempty"`
	Website   *string   `json:"website,omitempty"`
}

// Apply merges the non-nil fields of the update into the user.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Skills != nil {
		u.Skills = *p.Skills
	}
	if p.GitHub != nil {
		u.GitHub = *p.GitHub
	}
	if p.LinkedIn != nil {
		u.LinkedIn = *p.LinkedIn
	}
	if p.Twitter != nil {
		u.Twitter = *p.Twitter
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
}
