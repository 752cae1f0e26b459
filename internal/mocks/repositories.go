package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cityherald/content-api/internal/models"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles map[string]*models.Article
	NextID   int
	Err      error
	GetCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
		NextID:   1,
	}
}

func (m *MockArticleRepository) GetAll(ctx context.Context) ([]*models.Article, error) {
	m.GetCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, a := range m.Articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	m.GetCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Articles[id], nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	id := fmt.Sprintf("%03d", m.NextID)
	for m.Articles[id] != nil {
		m.NextID++
		id = fmt.Sprintf("%03d", m.NextID)
	}
	m.NextID++
	copied := *article
	copied.ID = id
	m.Articles[id] = &copied
	return id, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, id string, req *models.UpdateArticleRequest) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return false, nil
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.Ads != nil {
		a.Ads = *req.Ads
	}
	return true, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

func (m *MockArticleRepository) AdjustLikes(ctx context.Context, id string, delta int) (int, bool, error) {
	if m.Err != nil {
		return 0, false, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return 0, false, nil
	}
	a.Likes += delta
	if a.Likes < 0 {
		a.Likes = 0
	}
	return a.Likes, true, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), m.Err
}

// MockMediaRepository is a mock implementation of MediaRepository
type MockMediaRepository struct {
	Items []*models.MediaItem
	Err   error
}

func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{}
}

func (m *MockMediaRepository) GetAll(ctx context.Context) ([]*models.MediaItem, error) {
	return m.Items, m.Err
}

func (m *MockMediaRepository) GetByArticleID(ctx context.Context, articleID string) ([]*models.MediaItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.MediaItem
	for _, item := range m.Items {
		if item.ArticleID == articleID {
			out = append(out, item)
		}
	}
	return out, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
	Err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, u := range m.Users {
		if strings.EqualFold(u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, u := range m.Users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), m.Err
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return false, nil
	}
	if req.Country != nil {
		u.Country = *req.Country
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	return true, nil
}

func (m *MockUserRepository) UpdateBiography(ctx context.Context, id string, biography string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return false, nil
	}
	u.Biography = biography
	return true, nil
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return false, nil
	}
	u.Role = role
	return true, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[string]*models.Comment
	Err      error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentRepository) GetAll(ctx context.Context) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Comment
	for _, c := range m.Comments {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockCommentRepository) GetByArticleID(ctx context.Context, articleID string) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Comment
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	copied := *comment
	m.Comments[comment.ID] = &copied
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, articleID, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	c, ok := m.Comments[id]
	if !ok || c.ArticleID != articleID {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

// MockEngagementRepository is a mock implementation of EngagementRepository
type MockEngagementRepository struct {
	Memberships map[string]map[string]bool // kind/userID -> topics
	Reads       map[string]int             // userID/keyword -> count
	Err         error
}

func NewMockEngagementRepository() *MockEngagementRepository {
	return &MockEngagementRepository{
		Memberships: make(map[string]map[string]bool),
		Reads:       make(map[string]int),
	}
}

func membershipKey(kind, userID string) string {
	return kind + "/" + userID
}

func (m *MockEngagementRepository) AddMembership(ctx context.Context, kind, userID, topic string) error {
	if m.Err != nil {
		return m.Err
	}
	key := membershipKey(kind, userID)
	if m.Memberships[key] == nil {
		m.Memberships[key] = make(map[string]bool)
	}
	m.Memberships[key][topic] = true
	return nil
}

func (m *MockEngagementRepository) RemoveMembership(ctx context.Context, kind, userID, topic string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Memberships[membershipKey(kind, userID)], topic)
	return nil
}

func (m *MockEngagementRepository) ListMembership(ctx context.Context, kind, userID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var topics []string
	for topic := range m.Memberships[membershipKey(kind, userID)] {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics, nil
}

func (m *MockEngagementRepository) IncrementKeywordRead(ctx context.Context, userID, keyword string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	key := userID + "/" + keyword
	m.Reads[key]++
	return m.Reads[key], nil
}

// MockKeywordRepository is a mock implementation of KeywordRepository
type MockKeywordRepository struct {
	Pool     map[string]*models.Keyword
	Attached map[string]map[string]bool // articleID -> keywords
	Err      error
}

func NewMockKeywordRepository() *MockKeywordRepository {
	return &MockKeywordRepository{
		Pool:     make(map[string]*models.Keyword),
		Attached: make(map[string]map[string]bool),
	}
}

func (m *MockKeywordRepository) List(ctx context.Context) ([]*models.Keyword, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Keyword
	for _, k := range m.Pool {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MockKeywordRepository) Create(ctx context.Context, keyword *models.Keyword) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Pool[keyword.Name]; !ok {
		m.Pool[keyword.Name] = keyword
	}
	return nil
}

func (m *MockKeywordRepository) Delete(ctx context.Context, name string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Pool[name]; !ok {
		return false, nil
	}
	delete(m.Pool, name)
	return true, nil
}

func (m *MockKeywordRepository) AttachToArticle(ctx context.Context, articleID string, keywords []string) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Attached[articleID] == nil {
		m.Attached[articleID] = make(map[string]bool)
	}
	for _, k := range keywords {
		m.Attached[articleID][k] = true
	}
	return nil
}
