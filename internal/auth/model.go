package auth

// Roles an account can hold. Registration always starts at RoleStaff;
// RoleAdmin is granted directly in the database.
const (
	RoleStaff = "STAFF"
	RoleAdmin = "ADMIN"
)

// User is the domain entity. Password holds the bcrypt hash and never
// leaves the server.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
