package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-cfgdir/internal/config"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgdir"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

func TestSchema_Keys(t *testing.T) {
	assert.Equal(t, []string{
		"server.addr",
		"server.docs",
		"server.timeout",
		"server.idletime",
		"log.level",
	}, cfgschema.Keys(config.Schema()))
}

func TestSchema_AcceptsDefaults(t *testing.T) {
	r, err := cfgdir.New(config.Schema())
	require.NoError(t, err)

	err = r.Validate(map[string]any{
		"configDirectory": config.DefaultConfigDirectory,
		"server": map[string]any{
			"addr":     ":40117",
			"timeout":  "15s",
			"idletime": "1m0s",
		},
		"log": map[string]any{"level": "debug"},
	})
	require.NoError(t, err)

	err = r.Validate(map[string]any{
		"configDirectory": config.DefaultConfigDirectory,
		"server":          map[string]any{"timeout": 15},
	})
	require.ErrorIs(t, err, cfgdir.ErrValidation)
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, config.DefaultConfigDirectory, cfg.ConfigDirectory)
	assert.Equal(t, ":40117", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}
