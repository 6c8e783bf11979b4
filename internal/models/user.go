package models

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
	Phone        string `json:"phone"`
	ProfilePic   string `json:"profile_pic"` // path relative to the storage root, "" when unset
}

// AccountSettings is the mutable profile view exposed on the dashboard.
type AccountSettings struct {
	Username   string `json:"username"`
	Phone      string `json:"phone"`
	ProfilePic string `json:"profile_pic"`
}
