package cfgdir_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgdir"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

var _ cfgdir.Logger = hclog.NewNullLogger()

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r, err := cfgdir.New(
		cfgschema.Object(cfgschema.Key("known", cfgschema.Optional(cfgschema.String()))),
		cfgdir.WithLogger(cfgdir.NewZapLogger(zap.New(core))),
		cfgdir.WithFileSystem(newDirFS("/cfg", "extra: 1\n")),
	)
	require.NoError(t, err)

	_, err = r.Resolve(cfgdir.Args{"configDirectory": "/cfg"})
	require.ErrorIs(t, err, cfgdir.ErrUnknownKeys)

	errorsOnly := logs.FilterLevelExact(zapcore.ErrorLevel)
	assert.Equal(t, 1, errorsOnly.FilterMessage("Configuration validation failed").Len())
	assert.Equal(t, 1, errorsOnly.FilterMessage(
		"Unknown configuration keys found: extra. Allowed keys are: configDirectory, known").Len())

	loaded := logs.FilterMessage("Loaded config from file").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, "/cfg/config.yaml", loaded[0].ContextMap()["path"])
}

func TestHclogLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "cfgdir",
		Level:  hclog.Debug,
		Output: buf,
	})

	fsys := newDirFS("/cfg", "- a\n- b\n")
	r, err := cfgdir.New(nil, cfgdir.WithLogger(logger), cfgdir.WithFileSystem(fsys))
	require.NoError(t, err)

	cfg, err := r.Resolve(cfgdir.Args{"configDirectory": "/cfg"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"configDirectory": "/cfg"}, cfg)
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "cfgdir: Ignoring invalid configuration format, expected a mapping")
}

func TestSetLogger(t *testing.T) {
	first, firstBuf := newTestLogger()
	second, secondBuf := newTestLogger()

	r, err := cfgdir.New(nil,
		cfgdir.WithLogger(first),
		cfgdir.WithFileSystem(newDirFS("/cfg", "")),
	)
	require.NoError(t, err)

	r.SetLogger(second)
	_, err = r.Resolve(cfgdir.Args{"configDirectory": "/cfg"})
	require.NoError(t, err)
	assert.Empty(t, firstBuf.String())
	assert.Contains(t, secondBuf.String(), "Resolved config directory")

	secondBuf.Reset()
	r.SetLogger(nil)
	_, err = r.Resolve(cfgdir.Args{"configDirectory": "/cfg"})
	require.NoError(t, err)
	assert.Empty(t, secondBuf.String())
}
