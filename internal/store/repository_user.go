// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/models"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("username", user.Username).Msg("username already exists")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, query, args)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, query, args)
}

func (r *userRepository) findUser(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error selecting user")
		return models.User{}, r.db.wrapError(err, ErrScanningRow)
	}

	return user, nil
}
