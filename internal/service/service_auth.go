// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepository store.UserRepository

	validator validators.Validator

	tokenSignKey string

	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("username", credentials.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(credentials.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		Email:        credentials.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Debug().Str("username", credentials.Username).Msg("empty credentials provided")
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", credentials.Username).Msg("unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Int64("id", user.UserID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", user.UserID).Msg("error comparing password hash")
		return models.User{}, err
	}

	return user, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
