// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
)

type sweetService struct {
	sweetRepository store.SweetRepository

	validator validators.Validator

	logger *logger.Logger
}

func NewSweetService(sweetRepository store.SweetRepository, validator validators.Validator, logger *logger.Logger) SweetService {
	return &sweetService{
		sweetRepository: sweetRepository,
		validator:       validator,
		logger:          logger,
	}
}

func (s *sweetService) CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	if err := s.validator.Validate(ctx, sweet); err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sweet.ID = 0
	created, err := s.sweetRepository.CreateSweet(ctx, sweet)
	if err != nil {
		return models.Sweet{}, fmt.Errorf("error creating sweet: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

func (s *sweetService) ListSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sweets, err := s.sweetRepository.ListSweets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sweets: %w", err)
	}

	return sweets, nil
}

func (s *sweetService) GetSweet(ctx context.Context, id int64) (models.Sweet, error) {
	if id <= 0 {
		return models.Sweet{}, ErrInvalidSweetID
	}

	sweet, err := s.sweetRepository.GetSweet(ctx, id)
	if err != nil {
		return models.Sweet{}, fmt.Errorf("error getting sweet: %w", err)
	}

	return sweet, nil
}

func (s *sweetService) UpdateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	if sweet.ID <= 0 {
		return models.Sweet{}, ErrInvalidSweetID
	}
	if err := s.validator.Validate(ctx, sweet); err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.sweetRepository.UpdateSweet(ctx, sweet)
	if err != nil {
		return models.Sweet{}, fmt.Errorf("error updating sweet: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", updated.ID).Msg("sweet updated")
	return updated, nil
}

func (s *sweetService) DeleteSweet(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidSweetID
	}

	if err := s.sweetRepository.DeleteSweet(ctx, id); err != nil {
		return fmt.Errorf("error deleting sweet: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("sweet deleted")
	return nil
}
