package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// UserIDKey is the gin context key the auth middleware stores the
// authenticated user's ID under.
const UserIDKey = contextKey("userID")

// String returns the key as a plain string for gin's Set/Get API.
func (k contextKey) String() string {
	return string(k)
}
