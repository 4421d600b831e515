package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/entity"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/internal/pkg/mailer"
	"abcresearch-be/internal/repository/specification"
	"abcresearch-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotVerified        = errors.New("email not verified")
	ErrOAuthOnlyAccount   = errors.New("account uses google sign-in")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyEmail(ctx context.Context, token string) error
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, logger logger.ILogger) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		IsVerified:   false,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// Verification carries a short-lived signed token instead of a DB row.
	token, err := signToken(user.Id, "verify", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	if err := s.emailService.SendVerification(user.Email, token); err != nil {
		// Registration itself succeeded; the user can request a resend.
		s.logger.Warn("auth", "failed to send verification email", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
	}

	return &dto.RegisterResponse{Id: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == nil {
		return nil, ErrOAuthOnlyAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, ErrNotVerified
	}

	return issueSession(user)
}

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	userId, err := parseToken(token, "verify")
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if user.IsVerified {
		return nil
	}

	user.IsVerified = true
	now := time.Now()
	user.UpdatedAt = &now
	return uow.UserRepository().Update(ctx, user)
}

// issueSession builds the login response shared by password and OAuth
// flows.
func issueSession(user *entity.User) (*dto.LoginResponse, error) {
	expiresAt := time.Now().Add(72 * time.Hour)
	token, err := signSessionToken(user.Id, expiresAt)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: dto.UserInfo{
			Id:       user.Id,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}

func signSessionToken(userId uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func signToken(userId uuid.UUID, purpose string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"purpose": purpose,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func parseToken(tokenStr, purpose string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}
	if p, _ := claims["purpose"].(string); p != purpose {
		return uuid.Nil, errors.New("invalid token purpose")
	}

	rawId, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		return uuid.Nil, errors.New("invalid token subject")
	}
	return userId, nil
}
