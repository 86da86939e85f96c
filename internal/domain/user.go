package domain

// User is created on first registration and never updated or deleted.
// ID is the store-native id in display-safe (hex string) form.
type User struct {
	ID         string `json:"_id,omitempty"`
	Email      string `json:"email"`
	Sub        string `json:"sub"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
	Verified   bool   `json:"verified_email"`
}

// Admin is a read-only login record. PasswordHash is a bcrypt hash and
// is never serialized into responses.
type Admin struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
