// Package entity contains the core business objects of the assistant,
// each representing a unique, identifiable concept within the domain.
package entity

// UserData is the signed-in shopper. It is created when signup completes and
// only cleared again by logout.
type UserData struct {
	Phone         string `json:"phone" validate:"required,len=10,numeric"` // 10 digit mobile number used to sign in.
	FirstName     string `json:"firstName" validate:"required,personname"` // Shown in the greeting.
	LastName      string `json:"lastName" validate:"omitempty,personname"` // Optional family name.
	Avatar        string `json:"avatar,omitempty"`                         // Selected character id, if any.
	Location      string `json:"location,omitempty"`                       // Saved delivery address.
	LocationLabel string `json:"locationLabel,omitempty"`                  // Short label of the saved address.
}

// DisplayName returns the full name of the user.
func (u UserData) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// Theme holds the appearance preferences of the app.
type Theme struct {
	IsDark     bool   `json:"isDark"`
	BrandColor string `json:"brandColor"`
}
