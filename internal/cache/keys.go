package cache

// Cache key scheme. Kept in one place so keys cannot drift between the read
// path that populates them and the write path that invalidates them.
// Article and comment keys take the canonical zero-padded article identifier.
const (
	KeyAllArticles = "all_articles"
	KeyAllVisuals  = "all_visuals"
	KeyAllComments = "all_comments"
)

// ArticleKey returns the per-article cache key
func ArticleKey(paddedID string) string {
	return "article_" + paddedID
}

// VisualsKey returns the per-article media cache key
func VisualsKey(articleID string) string {
	return "visuals_" + articleID
}

// CommentsKey returns the per-article comments cache key
func CommentsKey(paddedID string) string {
	return "comments_" + paddedID
}
