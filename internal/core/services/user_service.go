package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/utils"
)

type userService struct {
	userRepo  portsrepo.UserRepository
	uploadDir string
}

// NewUserService creates the user service. uploadDir is where profile QR
// images are written.
func NewUserService(userRepo portsrepo.UserRepository, uploadDir string) *userService {
	return &userService{userRepo: userRepo, uploadDir: uploadDir}
}

// Register creates a local-password user. The email is stored lowercased so
// logins are case-insensitive.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, email)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the multipart profile form. BankDetails arrives as a
// JSON string; the QR image, when present, replaces the previous upload.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, qrcode *multipart.FileHeader) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Phone = req.Phone
	user.UPIID = req.UPIID

	if req.BankDetails != "" {
		var details domain.BankDetails
		if err := json.Unmarshal([]byte(req.BankDetails), &details); err != nil {
			return nil, fmt.Errorf("%w: invalid bank details payload", apperrors.ErrValidation)
		}
		user.BankDetails = details
	}

	if qrcode != nil {
		path, err := s.saveQRCode(userID, qrcode)
		if err != nil {
			return nil, err
		}
		user.QRCodePath = path
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// saveQRCode writes the uploaded image under the upload dir with a name
// derived from the user id, so a re-upload overwrites the previous file.
func (s *userService) saveQRCode(userID string, fileHeader *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".png"
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.uploadDir, "qrcode_"+userID+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create qr code file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write qr code file: %w", err)
	}
	return path, nil
}

// ResetPassword verifies the old password before storing the new hash.
func (s *userService) ResetPassword(ctx context.Context, userID string, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	if user.AuthProvider != domain.ProviderLocal {
		return fmt.Errorf("%w: password login is not enabled for this account", apperrors.ErrValidation)
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: old password is incorrect", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, *user); err != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return nil
}

// CreateOAuthUser provisions a user on first Google login. If the email is
// already registered the existing user is linked and returned.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		if existing.ProviderUserID == "" {
			existing.AuthProvider = domain.AuthProvider(provider)
			existing.ProviderUserID = providerUserID
			existing.UpdatedAt = time.Now()
			if err := s.userRepo.Update(ctx, *existing); err != nil {
				return nil, fmt.Errorf("failed to link oauth identity: %w", err)
			}
		}
		return existing, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	now := time.Now()
	user := domain.User{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(name),
		Email:          email,
		AuthProvider:   domain.AuthProvider(provider),
		ProviderUserID: providerUserID,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save oauth user: %w", err)
	}
	return &user, nil
}
