package post

// Post is a short text post. Likes holds the ids of users who liked the post,
// at most once per user; insertion order carries no meaning.
type Post struct {
	ID      string   `json:"id"`
	UserID  string   `json:"userId"`
	Content string   `json:"content"`
	Likes   []string `json:"likes"`
}

// View is the listing projection of a post: the owner id is replaced by the
// owner's display name and the raw liker list by its count. Single-post reads
// return the raw Post instead.
type View struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	UserName string `json:"userName"`
	Likes    int    `json:"likes"`
}

// LikedBy reports whether userID already liked the post.
func (p Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
