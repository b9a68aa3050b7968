package services

import (
	"context"
	"time"

	"taskhub/dto"
	"taskhub/model"
	"taskhub/result"
	"taskhub/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SignUp registers a new user with a bcrypt-hashed password.
func SignUp(ctx context.Context, s store.Store, req dto.SignupRequest) result.Result {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return result.Internal(err)
	}

	user := model.User{
		UserID:    uuid.New().String(),
		Username:  req.Username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if err := s.CreateUser(ctx, &user); err != nil {
		if err == store.ErrDuplicate {
			return result.Errorf(result.StatusBadRequest, "username %s already exists", req.Username)
		}
		return result.Internal(err)
	}
	return result.Ok(user)
}

// SignIn verifies credentials and issues an access token. Credential
// failures are UNAUTHORIZED; unlike scoped lookups, existence of the
// username is not hidden behind NOT_FOUND semantics here because the
// response is identical for bad username and bad password.
func SignIn(ctx context.Context, s store.Store, req dto.SigninRequest) result.Result {
	user, err := s.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return result.Internal(err)
	}
	if user == nil {
		return result.Errorf(result.StatusUnauthorized, "please check your login credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return result.Errorf(result.StatusUnauthorized, "please check your login credentials")
	}

	accessToken, err := CreateAccessToken(user.UserID, user.Username)
	if err != nil {
		return result.Internal(err)
	}
	return result.Ok(model.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
	})
}

// GetUsers lists users as id/username pairs, optionally filtered by a
// case-insensitive username search. Password hashes never leave the service.
func GetUsers(ctx context.Context, s store.Store, filter dto.SearchUsersFilter) result.Result {
	users, err := s.ListUsers(ctx, filter.Search)
	if err != nil {
		return result.Internal(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.UserResponse{UserID: u.UserID, Username: u.Username})
	}
	return result.Ok(responses)
}
