package banners

import "time"

// Banner is a marketing slide on the public landing page. StartsAt/EndsAt
// bound an optional visibility window; either side may be open.
type Banner struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle,omitempty"`
	ImageURL   string     `json:"image_url"`
	ButtonText string     `json:"button_text,omitempty"`
	LinkURL    string     `json:"link_url,omitempty"`
	Order      int        `json:"order"`
	IsActive   bool       `json:"is_active"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsVisible reports whether the banner should be shown at the given instant:
// it must be active and now must fall within the window, where a nil bound
// leaves that side open.
func IsVisible(b Banner, now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartsAt != nil && b.StartsAt.After(now) {
		return false
	}
	if b.EndsAt != nil && b.EndsAt.Before(now) {
		return false
	}
	return true
}
