package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var ErrUnauthorized = errors.New("unauthorized")

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, code string) (*UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateUserDTO) (*UserResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &service{repo: repo, oauthConfig: oauthConfig}
}

// LoginWithGoogle exchanges the authorization code, resolves the Google
// profile and upserts the member by email. First login creates the member
// with the default role.
func (s *service) LoginWithGoogle(ctx context.Context, code string) (*UserResponse, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Failed to exchange Google authorization code")
		return nil, ErrUnauthorized
	}

	info, err := fetchUserInfo(ctx, s.oauthConfig.Client(ctx, token))
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}

	u, err := s.repo.FindByEmail(info.Email)
	if errors.Is(err, ErrUserNotFound) {
		u = &User{
			Name:   info.Name,
			Email:  info.Email,
			Role:   UserRoleMember,
			Status: UserStatusActive,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user on first login")
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("User created on first login")
	} else if err != nil {
		return nil, err
	}

	if u.Status != UserStatusActive {
		log.WithField("user_id", u.ID).Warn("Inactive user attempted login")
		return nil, ErrUnauthorized
	}

	if token.RefreshToken != "" {
		if err := s.repo.SaveRefreshToken(u.ID, token.RefreshToken); err != nil {
			log.WithError(err).Warn("Failed to store Google refresh token")
		}
	}

	return toResponse(u), nil
}

func fetchUserInfo(ctx context.Context, client *http.Client) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *service) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toResponse(&users[i]))
	}
	return responses, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateUserDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Role != nil {
		if !dto.Role.IsValid() {
			return nil, fmt.Errorf("invalid role %q", *dto.Role)
		}
		u.Role = *dto.Role
	}
	if dto.Status != nil {
		u.Status = *dto.Status
	}
	if dto.DepartmentID != nil {
		u.DepartmentID = dto.DepartmentID
	}

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User updated successfully")
	return toResponse(u), nil
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	u.Status = UserStatusInactive
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to deactivate user")
		return err
	}

	log.WithField("user_id", u.ID).Info("User deactivated")
	return nil
}
