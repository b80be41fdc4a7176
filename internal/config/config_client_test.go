package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientConfig_BuildVarsWinOverEnv(t *testing.T) {
	cfg, err := loadClientConfig(
		ClientAPI{PublicAPIURL: "https://build.example"},
		[]string{
			"VITE_PUBLIC_API_URL=https://env.example",
			"VITE_API_URL=https://generic.example",
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "https://build.example", cfg.API.PublicAPIURL)
	assert.Equal(t, "https://generic.example", cfg.API.APIURL)
}

func TestLoadClientConfig_KeepsUntypedVars(t *testing.T) {
	cfg, err := loadClientConfig(ClientAPI{}, []string{
		"REACT_APP_PUBLIC_API_URL=https://legacy.example",
		"PROD=true",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://legacy.example", cfg.API.Vars["REACT_APP_PUBLIC_API_URL"])
	assert.True(t, cfg.API.Production)
}

func TestLoadClientConfig_DefaultOrigin(t *testing.T) {
	cfg, err := loadClientConfig(ClientAPI{}, nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultClientOrigin, cfg.Adapter.Origin)
}

func TestLoadClientConfig_OriginFromEnv(t *testing.T) {
	cfg, err := loadClientConfig(ClientAPI{}, []string{"SWEETSHOP_ORIGIN=https://shop.example"})

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example", cfg.Adapter.Origin)
}

func TestLoadClientConfig_InvalidOrigin(t *testing.T) {
	cfg, err := loadClientConfig(ClientAPI{}, []string{"SWEETSHOP_ORIGIN=localhost"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	assert.NotNil(t, cfg)
}

func TestLoadClientConfig_InvalidProdFlag(t *testing.T) {
	_, err := loadClientConfig(ClientAPI{}, []string{"PROD=yes please"})

	require.Error(t, err)
}
