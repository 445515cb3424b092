package cfgdir_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgdir"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

type loadConfig struct {
	ConfigDirectory string        `json:"configDirectory"`
	Name            string        `json:"name"`
	Port            int           `json:"port"`
	Timeout         time.Duration `json:"timeout"`
	Tags            []string      `json:"tags"`
}

func loadShape() *cfgschema.Schema {
	return cfgschema.Object(
		cfgschema.Key("name", cfgschema.Optional(cfgschema.String())),
		cfgschema.Key("port", cfgschema.Optional(cfgschema.Any())),
		cfgschema.Key("timeout", cfgschema.Optional(cfgschema.String())),
		cfgschema.Key("tags", cfgschema.Optional(cfgschema.Array(cfgschema.String()))),
	)
}

func TestLoad(t *testing.T) {
	r, err := cfgdir.New(loadShape(),
		cfgdir.WithFileSystem(newDirFS("/cfg", "name: from-file\ntimeout: 15s\ntags: [a, b]\n")),
	)
	require.NoError(t, err)

	defaults := loadConfig{Name: "default", Port: 8080, Timeout: time.Second}
	cfg, err := cfgdir.Load(r, cfgdir.Args{"configDirectory": "/cfg"}, defaults)
	require.NoError(t, err)

	assert.Equal(t, &loadConfig{
		ConfigDirectory: "/cfg",
		Name:            "from-file",
		Port:            8080,
		Timeout:         15 * time.Second,
		Tags:            []string{"a", "b"},
	}, cfg)
	assert.Equal(t, "default", defaults.Name, "defaults are not mutated")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("resolve error is returned unchanged", func(t *testing.T) {
		r, err := cfgdir.New(loadShape(), cfgdir.WithFileSystem(newDirFS("/cfg", "bogus: 1\n")))
		require.NoError(t, err)

		cfg, err := cfgdir.Load(r, cfgdir.Args{"configDirectory": "/cfg"}, loadConfig{})
		require.ErrorIs(t, err, cfgdir.ErrUnknownKeys)
		assert.Nil(t, cfg)
	})

	t.Run("decode error", func(t *testing.T) {
		r, err := cfgdir.New(loadShape(), cfgdir.WithFileSystem(newDirFS("/cfg", "port: not-a-number\n")))
		require.NoError(t, err)

		cfg, err := cfgdir.Load(r, cfgdir.Args{"configDirectory": "/cfg"}, loadConfig{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal config")
		assert.Nil(t, cfg)
	})
}

func TestMustLoad(t *testing.T) {
	r, err := cfgdir.New(loadShape(), cfgdir.WithFileSystem(newDirFS("/cfg", "port: 1\n")))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		cfg := cfgdir.MustLoad(r, cfgdir.Args{"configDirectory": "/cfg"}, loadConfig{})
		assert.Equal(t, 1, cfg.Port)
	})

	assert.PanicsWithValue(t,
		"cfgdir: failed to load config: Configuration validation failed: Unknown keys found (other). Check logs for details.",
		func() {
			cfgdir.MustLoad(r, cfgdir.Args{"configDirectory": "/cfg", "other": true}, loadConfig{})
		})
}
