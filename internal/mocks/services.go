package mocks

import (
	"context"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
)

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	Articles  map[string]*models.Article
	LikeCount int
	Owner     string
	Err       error
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{Articles: make(map[string]*models.Article)}
}

func (m *MockArticleService) GetAll(ctx context.Context) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, a := range m.Articles {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockArticleService) GetByID(ctx context.Context, rawID string) (*models.ArticleResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	id, ok := models.NormalizeArticleID(rawID)
	if !ok {
		return nil, errs.Validation("id", "article id must be numeric")
	}
	a, found := m.Articles[id]
	if !found {
		return nil, errs.NotFound("article")
	}
	return a.ToResponse(), nil
}

func (m *MockArticleService) Create(ctx context.Context, req *models.CreateArticleRequest) (*models.ArticleResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.ArticleResponse{ID: "001", Title: req.Title}, nil
}

func (m *MockArticleService) Update(ctx context.Context, rawID string, req *models.UpdateArticleRequest) error {
	return m.Err
}

func (m *MockArticleService) Delete(ctx context.Context, rawID string) error {
	return m.Err
}

func (m *MockArticleService) Like(ctx context.Context, rawID string, action string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.LikeCount, nil
}

func (m *MockArticleService) Feed(ctx context.Context, userID string) (*models.FeedResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.FeedResponse{Articles: []*models.ArticleResponse{}, Subscribed: []*models.ArticleResponse{}}, nil
}

func (m *MockArticleService) IsAuthor(ctx context.Context, actor *models.User, rawID string) (bool, error) {
	return actor.Username == m.Owner, nil
}

// MockMediaService is a mock implementation of service.MediaService
type MockMediaService struct {
	Media map[string][]*models.MediaResponse
	Err   error
}

func NewMockMediaService() *MockMediaService {
	return &MockMediaService{Media: make(map[string][]*models.MediaResponse)}
}

func (m *MockMediaService) GetByArticleID(ctx context.Context, rawID string) ([]*models.MediaResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	id, _ := models.NormalizeArticleID(rawID)
	items, ok := m.Media[id]
	if !ok {
		return nil, errs.NotFound("media")
	}
	return items, nil
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	Profiles      map[string]*models.UserProfile
	RegisterErr   error
	LoginErr      error
	AssignedRoles map[string]string
	Err           error
}

func NewMockUserService() *MockUserService {
	return &MockUserService{
		Profiles:      make(map[string]*models.UserProfile),
		AssignedRoles: make(map[string]string),
	}
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}
	return &models.UserProfile{ID: "u1", Username: req.Username, Email: req.Email, Role: models.RoleUser}, nil
}

func (m *MockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, error) {
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	return &models.UserProfile{ID: "u1", Email: req.Email}, nil
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Profiles[userID]
	if !ok {
		return nil, errs.NotFound("user")
	}
	return p, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	return m.GetProfile(ctx, userID)
}

func (m *MockUserService) UpdateBiography(ctx context.Context, userID string, biography string) error {
	return m.Err
}

func (m *MockUserService) AssignRole(ctx context.Context, req *models.AssignRoleRequest) error {
	if m.Err != nil {
		return m.Err
	}
	if !models.AssignableRoles[req.Role] {
		return errs.Validation("role", "role must be one of: user, editor, moderator, admin")
	}
	m.AssignedRoles[req.UserID] = req.Role
	return nil
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	Comments map[string][]*models.Comment
	Err      error
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{Comments: make(map[string][]*models.Comment)}
}

func (m *MockCommentService) List(ctx context.Context, rawArticleID string) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	id, _ := models.NormalizeArticleID(rawArticleID)
	comments := m.Comments[id]
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

func (m *MockCommentService) Create(ctx context.Context, rawArticleID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	id, _ := models.NormalizeArticleID(rawArticleID)
	comment := &models.Comment{ID: "c1", ArticleID: id, Author: req.Author, Content: req.Content}
	m.Comments[id] = append(m.Comments[id], comment)
	return comment, nil
}

func (m *MockCommentService) Delete(ctx context.Context, rawArticleID string, commentID string) error {
	return m.Err
}

// MockEngagementService is a mock implementation of service.EngagementService
type MockEngagementService struct {
	Added   []string
	Removed []string
	Tracked []*models.ReadArticleRequest
	Pool    []*models.Keyword
	Err     error
}

func NewMockEngagementService() *MockEngagementService {
	return &MockEngagementService{}
}

func (m *MockEngagementService) AddMembership(ctx context.Context, userID, kind, topic string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Added = append(m.Added, kind+"/"+userID+"/"+topic)
	return nil
}

func (m *MockEngagementService) RemoveMembership(ctx context.Context, userID, kind, topic string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Removed = append(m.Removed, kind+"/"+userID+"/"+topic)
	return nil
}

func (m *MockEngagementService) TrackRead(ctx context.Context, req *models.ReadArticleRequest) error {
	if m.Err != nil {
		return m.Err
	}
	m.Tracked = append(m.Tracked, req)
	return nil
}

func (m *MockEngagementService) Keywords(ctx context.Context) ([]*models.Keyword, error) {
	return m.Pool, m.Err
}

func (m *MockEngagementService) CreateKeyword(ctx context.Context, createdBy, name string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Pool = append(m.Pool, &models.Keyword{Name: name, CreatedBy: createdBy})
	return nil
}

func (m *MockEngagementService) DeleteKeyword(ctx context.Context, name string) error {
	return m.Err
}

func (m *MockEngagementService) AttachKeywords(ctx context.Context, rawArticleID string, keywords []string) error {
	return m.Err
}
