package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/store"
	"github.com/ymatsuda/go-api-sample/internal/utils"
	"github.com/ymatsuda/go-api-sample/models"
)

// userService implements [UserService] on top of a [store.UserRepository].
type userService struct {
	repo   store.UserRepository
	app    config.App
	logger *logger.Logger
}

// NewUserService constructs the user account service.
func NewUserService(repo store.UserRepository, app config.App, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		repo:   repo,
		app:    app,
		logger: logger,
	}
}

// CreateUser registers a new account.
//
// The name and email are checked for duplicates before the insert so the
// caller gets a precise error; the unique constraints in the database
// remain the final arbiter under concurrent registration.
func (s *userService) CreateUser(ctx context.Context, in models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.checkNameIsFree(ctx, in.Name); err != nil {
		return models.User{}, err
	}
	if err := s.checkEmailIsFree(ctx, in.Email); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := s.repo.CreateUser(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			// lost the race after the pre-checks passed
			return models.User{}, ErrAlreadyRegistered
		}

		log.Err(err).Str("func", "*userService.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")

	return created, nil
}

// GetUser returns the user with the given id.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}

		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// GetAllUsers returns every registered user.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial update to the account.
//
// Rules:
//   - at least one field must be set, otherwise [ErrNoChangesProvided];
//   - a new password requires the current one ([ErrCurrentPasswordRequired])
//     and the current one must verify against the stored hash
//     ([ErrWrongPassword]);
//   - name and email changes go through the same duplicate checks as
//     registration.
func (s *userService) UpdateUser(ctx context.Context, userID int64, in models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	current, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	changes := make(map[string]any)

	if in.Name != nil && *in.Name != current.Name {
		if err = s.checkNameIsFree(ctx, *in.Name); err != nil {
			return models.User{}, err
		}
		changes["name"] = *in.Name
	}

	if in.Email != nil && *in.Email != current.Email {
		if err = s.checkEmailIsFree(ctx, *in.Email); err != nil {
			return models.User{}, err
		}
		changes["email"] = *in.Email
	}

	if in.NewPassword != nil {
		if in.CurrentPassword == nil {
			return models.User{}, ErrCurrentPasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(*in.CurrentPassword)) != nil {
			return models.User{}, ErrWrongPassword
		}

		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			log.Err(hashErr).Str("func", "*userService.UpdateUser").Msg("error hashing new password")
			return models.User{}, fmt.Errorf("error hashing password: %w", hashErr)
		}
		changes["password"] = string(hash)
	}

	if len(changes) == 0 {
		return models.User{}, ErrNoChangesProvided
	}

	updated, err := s.repo.UpdateUser(ctx, userID, changes)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrAlreadyRegistered
		}

		log.Err(err).Str("func", "*userService.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the account with the given id.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("user deleted")

	return nil
}

// Authenticate verifies login credentials.
//
// Unknown names and wrong passwords both yield [ErrWrongPassword] so the
// response does not reveal which part of the credential failed.
func (s *userService) Authenticate(ctx context.Context, login models.LoginRequest) (models.User, error) {
	user, err := s.repo.GetUserByName(ctx, login.Name)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}

		return models.User{}, fmt.Errorf("error authenticating user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(login.Password)) != nil {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// CreateToken issues a signed JWT for the authenticated user.
func (s *userService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.app.TokenIssuer, user.UserID, s.app.TokenDuration, s.app.TokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.CreateToken").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

func (s *userService) checkNameIsFree(ctx context.Context, name string) error {
	_, err := s.repo.GetUserByName(ctx, name)
	if err == nil {
		return ErrNameAlreadyTaken
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("error checking name: %w", err)
	}

	return nil
}

func (s *userService) checkEmailIsFree(ctx context.Context, email string) error {
	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailAlreadyTaken
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("error checking email: %w", err)
	}

	return nil
}
