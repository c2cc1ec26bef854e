package user

// User is a registered member. Users are never mutated or deleted after
// creation, and names are unique among users (case-sensitive).
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
