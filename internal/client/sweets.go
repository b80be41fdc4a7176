// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/spf13/cobra"
)

func (a *App) sweetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweets",
		Short: "Browse and manage the catalogue",
	}

	cmd.AddCommand(
		a.sweetsListCmd(),
		a.sweetsGetCmd(),
		a.sweetsCreateCmd(),
		a.sweetsUpdateCmd(),
		a.sweetsDeleteCmd(),
	)

	return cmd
}

func (a *App) sweetsListCmd() *cobra.Command {
	var (
		filter             models.SweetFilter
		minPrice, maxPrice float64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sweets, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// only flags given on the command line filter by price
			if cmd.Flags().Changed("min-price") {
				filter.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				filter.MaxPrice = &maxPrice
			}

			sweets, err := a.shop.ListSweets(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if sweets == nil {
				sweets = []models.Sweet{}
			}
			return a.print(sweets)
		},
	}
	cmd.Flags().StringVar(&filter.Name, "name", "", "case-insensitive name substring")
	cmd.Flags().StringVar(&filter.Category, "category", "", "exact category")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price, inclusive")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price, inclusive")

	return cmd
}

func (a *App) sweetsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one sweet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sweet, err := a.shop.GetSweet(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(sweet)
		},
	}
}

func (a *App) sweetsCreateCmd() *cobra.Command {
	var sweet models.Sweet

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a sweet (requires --token)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.shop.CreateSweet(cmd.Context(), sweet)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	sweetFlags(cmd, &sweet)

	return cmd
}

func (a *App) sweetsUpdateCmd() *cobra.Command {
	var sweet models.Sweet

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a sweet (requires --token)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sweet.ID = id

			updated, err := a.shop.UpdateSweet(cmd.Context(), sweet)
			if err != nil {
				return err
			}
			return a.print(updated)
		},
	}
	sweetFlags(cmd, &sweet)

	return cmd
}

func (a *App) sweetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a sweet (requires --token)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.shop.DeleteSweet(cmd.Context(), id)
		},
	}
}

func sweetFlags(cmd *cobra.Command, sweet *models.Sweet) {
	cmd.Flags().StringVar(&sweet.Name, "name", "", "display name")
	cmd.Flags().StringVar(&sweet.Category, "category", "", "category")
	cmd.Flags().Float64Var(&sweet.Price, "price", 0, "unit price")
	cmd.Flags().Int64Var(&sweet.Quantity, "quantity", 0, "units in stock")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sweet id %q: %w", raw, err)
	}
	return id, nil
}
