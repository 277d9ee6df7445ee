// Package models contains data structures for the application's domain models.
package models

// UserStatus represents the moderation status of a user account.
type UserStatus string

const (
	// UserStatusUnverified indicates an account that has not confirmed its email.
	UserStatusUnverified UserStatus = "unverified"
	// UserStatusActive indicates a normal account.
	UserStatusActive UserStatus = "active"
	// UserStatusBlocked indicates an account blocked by an administrator.
	UserStatusBlocked UserStatus = "blocked"
)

// User represents one record of the users collection.
// Field names mirror the legacy users.json layout.
type User struct {
	ID        int        `json:"id"`
	Fullname  string     `json:"fullname"`
	Email     string     `json:"email"`
	Birthdate string     `json:"birthdate,omitempty"`
	Role      string     `json:"role,omitempty"`
	Status    UserStatus `json:"status,omitempty"`
	Photo     string     `json:"photo,omitempty"`
}

// UserUpdate carries a partial user update. Only non-nil fields overwrite
// the stored record (merge semantics).
type UserUpdate struct {
	Fullname  *string     `json:"fullname,omitempty"`
	Email     *string     `json:"email,omitempty"`
	Birthdate *string     `json:"birthdate,omitempty"`
	Role      *string     `json:"role,omitempty"`
	Status    *UserStatus `json:"status,omitempty"`
	Photo     *string     `json:"photo,omitempty"`
}

// Apply merges the supplied fields into the user record.
func (u *UserUpdate) Apply(user *User) {
	if u.Fullname != nil {
		user.Fullname = *u.Fullname
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Birthdate != nil {
		user.Birthdate = *u.Birthdate
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
	if u.Status != nil {
		user.Status = *u.Status
	}
	if u.Photo != nil {
		user.Photo = *u.Photo
	}
}
