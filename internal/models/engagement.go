package models

// KeywordReadThreshold is the per-user read count at which a keyword is
// promoted into that user's interests. Promotion fires exactly once, at the
// crossing increment.
const KeywordReadThreshold = 3

// Membership kinds, matching the per-user engagement tables.
const (
	MembershipInterests     = "interests"
	MembershipDislikes      = "dislikes"
	MembershipSubscriptions = "subscriptions"
)

// ValidMemberships defines the engagement sets a topic may belong to
var ValidMemberships = map[string]bool{
	MembershipInterests:     true,
	MembershipDislikes:      true,
	MembershipSubscriptions: true,
}

// MembershipRequest is the payload for the interests/dislikes/subscriptions
// add and remove endpoints.
type MembershipRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// ReadArticleRequest is the payload for POST /api/user/read-article. Field
// names are part of the API contract.
type ReadArticleRequest struct {
	UserID    string   `json:"userId" validate:"required"`
	ArticleID string   `json:"articleId" validate:"required"`
	Keywords  []string `json:"keywords" validate:"required"`
}

// Keyword represents an entry in the admin-managed keyword pool
type Keyword struct {
	Name      string `json:"name" db:"name"`
	CreatedBy string `json:"created_by" db:"created_by"`
}

// CreateKeywordRequest is the payload for POST /api/admin/keywords
type CreateKeywordRequest struct {
	Name string `json:"name" validate:"required"`
}

// AttachKeywordsRequest is the payload for POST /api/admin/articles/:id/keywords
type AttachKeywordsRequest struct {
	Keywords []string `json:"keywords" validate:"required,min=1"`
}

// FeedResponse is the personalized feed shape: all articles outside the
// user's disliked categories, plus the subset from subscribed categories.
type FeedResponse struct {
	Articles   []*ArticleResponse `json:"articles"`
	Subscribed []*ArticleResponse `json:"subscribed"`
}
