package domain

// User represents an application account. Password is stored and compared
// as-is; introducing hashing would break existing stored credentials.
type User struct {
	ID       string
	Name     string
	Email    string // stored lowercased, unique case-insensitively
	Password string
	Role     string
}
