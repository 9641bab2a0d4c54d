package entities

// SocialMedia is a presence on one platform. A character holds at most
// one account per platform.
type SocialMedia struct {
	Platform  string `json:"platform"`
	Followers int    `json:"followers"`
	Verified  bool   `json:"verified"`
}
