package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"returnex/internal/domain/entity"
	"returnex/internal/domain/repository"
	"returnex/pkg/errors"
	"returnex/pkg/logger"
)

type AuthUseCase struct {
	adminRepo repository.AdminUserRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthUseCase(adminRepo repository.AdminUserRepository, jwtSecret string, jwtExpirySeconds int64) *AuthUseCase {
	return &AuthUseCase{
		adminRepo: adminRepo,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: time.Duration(jwtExpirySeconds) * time.Second,
	}
}

type AdminIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, *entity.AdminUser, error) {
	user, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return "", nil, errors.Unauthorized("Invalid email or password", nil)
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, errors.Unauthorized("Invalid email or password", nil)
	}

	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(uc.jwtExpiry).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return "", nil, errors.Internal("Failed to sign token", err)
	}

	return token, user, nil
}

func (uc *AuthUseCase) VerifyToken(tokenString string) (*AdminIdentity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Unauthorized("Invalid token claims", nil)
	}

	identity := &AdminIdentity{}
	if id, ok := claims["id"].(string); ok {
		identity.ID = id
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}

// EnsureDefaultAdmin seeds the configured admin account on first start.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, email, password, name string) error {
	_, err := uc.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash admin password", err)
	}

	if err := uc.adminRepo.Create(ctx, &entity.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}); err != nil {
		return err
	}

	logger.Info("Default admin created: %s", email)
	return nil
}
