package models

import "time"

// Consultant is a directory entry advertising expertise and contact info.
type Consultant struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	ContactEmail    string    `json:"contactEmail"`
	ExperienceTitle string    `json:"experienceTitle"`
	Description     string    `json:"description"`
	ImageRef        string    `json:"imageRef,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// HasImage reports whether an image reference was stored.
func (c Consultant) HasImage() bool {
	return c.ImageRef != ""
}
