package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amalfamous/QuickCRM/internal/config"
	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/model"
	"github.com/amalfamous/QuickCRM/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo       repository.UserRepository
	clientRepo repository.ClientRepository
	cfg        *config.Config
}

func NewAuthService(repo repository.UserRepository, clientRepo repository.ClientRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, clientRepo: clientRepo, cfg: cfg}
}

// Register creates an account. Username and email are unique; when the role
// is client, the matching Client row is created (or reused if sales already
// entered one with the same email) inside the same transaction.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: rôle %q inconnu", ErrValidation, req.Role)
	}

	// Pre-flight check gives a precise message; the unique indexes still
	// resolve any race.
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: nom d'utilisateur %q", ErrDuplicateIdentity, req.Username)
	}
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email %q", ErrDuplicateIdentity, req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	// Client lookup happens before the transaction opens: with a single
	// pooled connection, a read on the base *gorm.DB inside runTx would wait
	// forever for the connection the transaction holds.
	var existingClient *model.Client
	if user.Role == model.RoleClient {
		c, err := s.clientRepo.FindByEmail(ctx, req.Email)
		if err == nil {
			existingClient = c
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if user.Role == model.RoleClient {
			client := existingClient
			if client == nil {
				client = &model.Client{Name: req.Username, Email: req.Email}
				if err := s.clientRepo.Create(ctx, tx, client); err != nil {
					return err
				}
			}
			user.ClientID = &client.ID
		}
		return s.repo.Create(ctx, tx, user)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: nom d'utilisateur ou email", ErrDuplicateIdentity)
		}
		return nil, txErr
	}

	return userToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.tokenPair(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: refresh token invalide ou expiré", ErrInvalidCredentials)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	uid, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, uint(uid))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.tokenPair(user)
}

func (s *authService) tokenPair(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         *userToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"email":    user.Email,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	if user.ClientID != nil {
		claims["client_id"] = *user.ClientID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		ClientID: u.ClientID,
	}
}
