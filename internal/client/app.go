// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/apiurl"
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/spf13/cobra"
)

// ErrUnhealthy is returned by the health command when the server reports a
// database failure.
var ErrUnhealthy = errors.New("server is unhealthy")

type App struct {
	shop     adapter.ShopAdapter
	resolver apiurl.Resolver

	out io.Writer

	logger *logger.Logger
}

// NewApp returns a client writing command output to out.
func NewApp(shop adapter.ShopAdapter, resolver apiurl.Resolver, out io.Writer, logger *logger.Logger) *App {
	return &App{
		shop:     shop,
		resolver: resolver,
		out:      out,
		logger:   logger,
	}
}

// NewResolver resolves the API base URL from the client configuration.
func NewResolver(cfg config.ClientAPI) apiurl.Resolver {
	return apiurl.New(apiurl.Sources{
		PublicAPIURL: cfg.PublicAPIURL,
		APIURL:       cfg.APIURL,
		Production:   cfg.Production,
		Vars:         cfg.Vars,
	})
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.RootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// RootCmd builds the command tree.
func (a *App) RootCmd() *cobra.Command {
	var token string

	root := &cobra.Command{
		Use:           "sweet-shop",
		Short:         "Command-line client for the Sweet Shop API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if token != "" {
				a.shop.SetToken(token)
			}
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().StringVar(&token, "token", "", "bearer token for authenticated commands")

	root.AddCommand(
		a.urlCmd(),
		a.healthCmd(),
		a.versionCmd(),
		a.registerCmd(),
		a.loginCmd(),
		a.meCmd(),
		a.sweetsCmd(),
	)

	return root
}

func (a *App) urlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <path>",
		Short: "Print the resolved URL for an API path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, a.resolver.URL(args[0]))
			return err
		},
	}
}

func (a *App) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the server and its database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.shop.Health(cmd.Context())
			if status.Status != "" {
				if printErr := a.print(status); printErr != nil {
					return printErr
				}
			}
			if err != nil {
				a.logger.Debug().Err(err).Msg("health check failed")
				if status.Status == models.HealthStatusError {
					return ErrUnhealthy
				}
				return err
			}
			return nil
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.shop.Version(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(info)
		},
	}
}

func (a *App) registerCmd() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.shop.Register(cmd.Context(), credentials)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, resp.Token)
			return err
		},
	}
	credentialFlags(cmd, &credentials)
	cmd.Flags().StringVar(&credentials.Email, "email", "", "contact email")

	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.shop.Login(cmd.Context(), credentials)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, resp.Token)
			return err
		},
	}
	credentialFlags(cmd, &credentials)

	return cmd
}

func (a *App) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Print the account of the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.shop.Me(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(user)
		},
	}
}

func credentialFlags(cmd *cobra.Command, credentials *models.Credentials) {
	cmd.Flags().StringVarP(&credentials.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&credentials.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
}

// print writes v as indented JSON.
func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
