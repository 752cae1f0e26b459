package service

import (
	"context"
	"fmt"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/repository"
	"github.com/cityherald/content-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// DuplicateUserError reports a registration conflict on username, email or
// both. Uniqueness is case-insensitive.
type DuplicateUserError struct {
	UsernameExists bool
	EmailExists    bool
}

func (e *DuplicateUserError) Error() string {
	switch {
	case e.UsernameExists && e.EmailExists:
		return "username and email already exist"
	case e.UsernameExists:
		return "username already exists"
	default:
		return "email already exists"
	}
}

// userService implements UserService
type userService struct {
	repo      repository.UserRepository
	validator *validation.Validator
	log       zerolog.Logger
}

func newUserService(repo repository.UserRepository, v *validation.Validator, log zerolog.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: v,
		log:       log.With().Str("service", "user").Logger(),
	}
}

// Register creates a new user. The very first user in an empty table is
// promoted to admin; everyone after that starts as a plain user. The
// check-then-insert race on uniqueness is closed by the schema's functional
// unique indexes; the pre-checks exist to produce the per-field flags the
// registration contract requires.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := s.validator.Password(req.Password); err != nil {
		return nil, err
	}

	usernameExists, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("username check failed: %w", err)
	}
	emailExists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("email check failed: %w", err)
	}
	if usernameExists || emailExists {
		return nil, &DuplicateUserError{UsernameExists: usernameExists, EmailExists: emailExists}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user count failed: %w", err)
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Country:      req.Country,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("user insert failed: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", role).Msg("User registered")
	return user.ToProfile(), nil
}

// Login verifies the password against the stored hash and returns the user
// with the credential stripped. Unknown email and wrong password answer the
// same way.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return nil, errs.Forbidden("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.Forbidden("invalid credentials")
	}

	return user.ToProfile(), nil
}

// GetProfile returns a user's profile
func (s *userService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return nil, errs.NotFound("user")
	}
	return user.ToProfile(), nil
}

// UpdateProfile writes the profile fields present in the request and returns
// the updated profile
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	found, err := s.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}
	if !found {
		return nil, errs.NotFound("user")
	}
	return s.GetProfile(ctx, userID)
}

// UpdateBiography writes a user's biography
func (s *userService) UpdateBiography(ctx context.Context, userID string, biography string) error {
	if biography == "" {
		return errs.Validation("biography", "biography is required")
	}
	found, err := s.repo.UpdateBiography(ctx, userID, biography)
	if err != nil {
		return fmt.Errorf("biography update failed: %w", err)
	}
	if !found {
		return errs.NotFound("user")
	}
	return nil
}

// AssignRole sets a user's role. Only the enumerated non-guest roles are
// accepted; anything else is rejected at this boundary, never stored.
func (s *userService) AssignRole(ctx context.Context, req *models.AssignRoleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if !models.AssignableRoles[req.Role] {
		return errs.Validation("role", "role must be one of: user, editor, moderator, admin")
	}

	found, err := s.repo.UpdateRole(ctx, req.UserID, req.Role)
	if err != nil {
		return fmt.Errorf("role update failed: %w", err)
	}
	if !found {
		return errs.NotFound("user")
	}

	s.log.Info().Str("user_id", req.UserID).Str("role", req.Role).Msg("Role assigned")
	return nil
}
