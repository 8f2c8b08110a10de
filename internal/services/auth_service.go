package services

import (
	"context"
	"log"
	"strings"
	"time"

	"restopos/internal/common"
	"restopos/internal/models"
	"restopos/internal/repositories"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Google publishes its ID-token signing keys as a JWKS.
const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

const tokenTTL = 24 * time.Hour

// AuthService handles staff registration, password login, and Google
// sign-in.
type AuthService interface {
	Register(ctx context.Context, restaurantID int64, isManager bool, name, username, password string) (*models.Staff, error)
	Login(ctx context.Context, username, password string) (string, *models.Staff, error)
	// GoogleLogin verifies a Google-issued ID token against Google's JWKS and
	// exchanges it for a session token for the staff member with the token's
	// email.
	GoogleLogin(ctx context.Context, idToken string) (string, *models.Staff, error)
}

type authService struct {
	staffRepo      repositories.StaffRepository
	jwtSecret      []byte
	googleClientID string
	googleJWKS     *keyfunc.JWKS
}

func NewAuthService(staffRepo repositories.StaffRepository, jwtSecret, googleClientID string) AuthService {
	svc := &authService{
		staffRepo:      staffRepo,
		jwtSecret:      []byte(jwtSecret),
		googleClientID: googleClientID,
	}

	if googleClientID != "" {
		jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
			RefreshInterval: time.Hour,
		})
		if err != nil {
			log.Printf("WARN: Google JWKS unavailable, Google sign-in disabled: %v", err)
		} else {
			svc.googleJWKS = jwks
		}
	}

	return svc
}

func (s *authService) Register(ctx context.Context, restaurantID int64, isManager bool, name, username, password string) (*models.Staff, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(username) == "" {
		return nil, common.Validationf("name and username are required")
	}
	if len(password) < 8 {
		return nil, common.Validationf("password must be at least 8 characters")
	}

	if _, err := s.staffRepo.GetByUsername(ctx, username); err == nil {
		return nil, common.Conflictf("username %q already exists", username)
	} else if !repositories.IsNotFound(err) {
		return nil, common.Persistence("check username", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.Persistence("hash password", err)
	}

	staff := &models.Staff{
		RestaurantID:   restaurantID,
		IsManager:      isManager,
		Name:           name,
		Username:       username,
		HashedPassword: string(hashed),
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		if isUniqueViolation(err) {
			return nil, common.Conflictf("username %q already exists", username)
		}
		return nil, common.Persistence("create staff", err)
	}
	return staff, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *models.Staff, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		if repositories.IsNotFound(err) {
			return "", nil, common.Validationf("invalid username or password")
		}
		return "", nil, common.Persistence("get staff by username", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.HashedPassword), []byte(password)); err != nil {
		return "", nil, common.Validationf("invalid username or password")
	}

	token, err := s.issueToken(staff)
	if err != nil {
		return "", nil, common.Persistence("sign session token", err)
	}
	return token, staff, nil
}

func (s *authService) GoogleLogin(ctx context.Context, idToken string) (string, *models.Staff, error) {
	if s.googleJWKS == nil {
		return "", nil, common.Validationf("google sign-in is not configured")
	}

	parsed, err := jwt.Parse(idToken, s.googleJWKS.Keyfunc,
		jwt.WithAudience(s.googleClientID),
		jwt.WithIssuer("https://accounts.google.com"),
	)
	if err != nil || !parsed.Valid {
		return "", nil, common.Validationf("invalid google id token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", nil, common.Validationf("invalid google id token claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", nil, common.Validationf("google id token has no email")
	}

	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return "", nil, common.NotFound("staff member")
		}
		return "", nil, common.Persistence("get staff by email", err)
	}

	token, err := s.issueToken(staff)
	if err != nil {
		return "", nil, common.Persistence("sign session token", err)
	}
	return token, staff, nil
}

func (s *authService) issueToken(staff *models.Staff) (string, error) {
	now := time.Now()
	claims := &common.SessionClaims{
		StaffID:      staff.StaffID,
		RestaurantID: staff.RestaurantID,
		IsManager:    staff.IsManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   staff.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
