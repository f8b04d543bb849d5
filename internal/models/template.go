package models

import "time"

// Template is a showcased project with its owner's contact details and a link to its source code.
type Template struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	OwnerUsername string    `json:"ownerUsername"` // Free text, not a reference to an Account
	ContactEmail  string    `json:"contactEmail"`
	SourceLink    string    `json:"sourceLink"`
	ImageRef      string    `json:"imageRef,omitempty"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HasImage reports whether an image reference was stored.
func (t Template) HasImage() bool {
	return t.ImageRef != ""
}
