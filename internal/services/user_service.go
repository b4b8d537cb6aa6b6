package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ijadele/task-management/internal/auth"
	"github.com/Ijadele/task-management/internal/constants"
	apperrors "github.com/Ijadele/task-management/internal/errors"
	model "github.com/Ijadele/task-management/internal/models"
	repository "github.com/Ijadele/task-management/internal/repositories"
)

type UserService struct {
	repo   *repository.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(repo *repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a user with a bcrypt-hashed password. The role defaults
// to "user"; registering the same email twice is a conflict.
func (s *UserService) Register(ctx context.Context, email, password string, role constants.Role) (*model.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = constants.RoleUser
	}

	user := &model.User{
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// List returns every user with their tasks. Admin only.
func (s *UserService) List(ctx context.Context, caller auth.Identity) ([]model.User, error) {
	if caller.Role != constants.RoleAdmin {
		return nil, apperrors.ErrAdminsOnly
	}
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
