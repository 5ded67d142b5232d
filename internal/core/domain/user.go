package domain

// User models the identity returned by the backend session probe. At most one
// authenticated identity exists at a time; it is populated on login (or the
// best-effort startup probe) and cleared on logout.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
