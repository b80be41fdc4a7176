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

type sweetRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSweetRepository(db *DB, logger *logger.Logger) SweetRepository {
	logger.Debug().Msg("creating sweet repository")
	return &sweetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sweetRepository) CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC().Truncate(time.Microsecond)
	sweet.CreatedAt, sweet.UpdatedAt = now, now

	query, args, err := buildInsertSweetQuery(r.db.builder, sweet)
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&sweet.ID); err != nil {
		log.Err(err).Str("func", "*sweetRepository.CreateSweet").Msg("error inserting sweet")
		return models.Sweet{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	return sweet, nil
}

func (r *sweetRepository) ListSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSweetsQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sweetRepository.ListSweets").Msg("error selecting sweets")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	sweets := make([]models.Sweet, 0)
	for rows.Next() {
		sweet, err := scanSweet(rows)
		if err != nil {
			log.Err(err).Str("func", "*sweetRepository.ListSweets").Msg("error scanning sweet")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		sweets = append(sweets, sweet)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sweetRepository.ListSweets").Msg("error iterating sweets")
		return nil, r.db.wrapError(err, ErrScanningRows)
	}

	return sweets, nil
}

func (r *sweetRepository) GetSweet(ctx context.Context, id int64) (models.Sweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSweetByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sweet, err := scanSweet(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sweet{}, ErrSweetNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sweetRepository.GetSweet").Int64("id", id).Msg("error selecting sweet")
		return models.Sweet{}, r.db.wrapError(err, ErrScanningRow)
	}

	return sweet, nil
}

func (r *sweetRepository) UpdateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	log := logger.FromContext(ctx)

	sweet.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := buildUpdateSweetQuery(r.db.builder, sweet)
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		if !errors.Is(err, ErrSweetNotFound) {
			log.Err(err).Str("func", "*sweetRepository.UpdateSweet").Int64("id", sweet.ID).Msg("error updating sweet")
		}
		return models.Sweet{}, err
	}

	return r.GetSweet(ctx, sweet.ID)
}

func (r *sweetRepository) DeleteSweet(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSweetQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		if !errors.Is(err, ErrSweetNotFound) {
			log.Err(err).Str("func", "*sweetRepository.DeleteSweet").Int64("id", id).Msg("error deleting sweet")
		}
		return err
	}

	return nil
}

// execAffectingOne runs a statement keyed by sweet ID and reports
// ErrSweetNotFound when no row was touched.
func (r *sweetRepository) execAffectingOne(ctx context.Context, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.wrapError(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSweetNotFound
	}

	return nil
}
