package models

// MediaItem represents a media row attached to an article. Media is read-only
// through this API; its lifecycle follows the owning article.
type MediaItem struct {
	ID          int    `json:"id" db:"id"`
	ArticleID   string `json:"article_id" db:"article_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	FileType    string `json:"file_type" db:"file_type"`
	CSSClass    string `json:"css_class" db:"css_class"`
	Filepath    string `json:"filepath" db:"filepath"`
}

// MediaResponse is the external projection of a media item. Field names are
// part of the API contract and must not change.
type MediaResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FileType    string `json:"file_type"`
	CSSClass    string `json:"css_class"`
	Filepath    string `json:"filepath"`
}

// ToResponse maps a media row onto its external shape.
func (m *MediaItem) ToResponse() *MediaResponse {
	return &MediaResponse{
		Name:        m.Name,
		Description: m.Description,
		FileType:    m.FileType,
		CSSClass:    m.CSSClass,
		Filepath:    m.Filepath,
	}
}

// MediaResponses maps a slice of media rows onto their external shapes.
func MediaResponses(items []*MediaItem) []*MediaResponse {
	out := make([]*MediaResponse, 0, len(items))
	for _, m := range items {
		out = append(out, m.ToResponse())
	}
	return out
}
