package cfgdir_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgdir"
	"github.com/lwmacct/251207-go-pkg-cfgdir/pkg/cfgschema"
)

func TestCheckDirectory(t *testing.T) {
	const dir = "/invalid/config/dir"

	tests := []struct {
		name     string
		required bool
		features []cfgdir.Feature
		exists   bool
		readable bool
		wantErr  error
		errMsg   string
	}{
		{
			name:     "missing and required",
			required: true,
			exists:   false,
			wantErr:  cfgdir.ErrMissingDirectory,
			errMsg:   "Config directory does not exist and is required: " + dir,
		},
		{
			name:     "missing and optional",
			required: false,
			exists:   false,
		},
		{
			name:     "exists but unreadable",
			exists:   true,
			readable: false,
			wantErr:  cfgdir.ErrUnreadableDirectory,
			errMsg:   "Config directory exists but is not readable: " + dir,
		},
		{
			name:     "exists and readable",
			exists:   true,
			readable: true,
		},
		{
			name:     "feature disabled skips checks",
			required: true,
			features: []cfgdir.Feature{},
			exists:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := &mockFS{}
			fsys.On("Exists", dir).Return(tt.exists).Maybe()
			fsys.On("IsDirectoryReadable", dir).Return(tt.readable).Maybe()
			fsys.On("ReadFile", filepath.Join(dir, "config.yaml"), "utf-8").Return("", &notFoundErr{}).Maybe()

			opts := []cfgdir.Option{cfgdir.WithFileSystem(fsys), cfgdir.WithRequired(tt.required)}
			if tt.features != nil {
				opts = append(opts, cfgdir.WithFeatures(tt.features...))
			}
			r, err := cfgdir.New(cfgschema.Object(), opts...)
			require.NoError(t, err)

			got, err := r.Resolve(cfgdir.Args{"configDirectory": dir})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, tt.errMsg)

				var dirErr *cfgdir.DirectoryError
				require.ErrorAs(t, err, &dirErr)
				assert.Equal(t, dir, dirErr.Path)
				fsys.AssertNotCalled(t, "ReadFile", filepath.Join(dir, "config.yaml"), "utf-8")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"configDirectory": dir}, got)
			if tt.features != nil {
				fsys.AssertNotCalled(t, "Exists", dir)
			}
		})
	}
}

func TestOSFileSystem(t *testing.T) {
	fsys := cfgdir.OSFileSystem()
	dir := t.TempDir()
	writeConfig(t, dir, "a: 1\n")

	assert.True(t, fsys.Exists(dir))
	assert.True(t, fsys.IsDirectoryReadable(dir))
	assert.False(t, fsys.IsDirectoryReadable(filepath.Join(dir, "config.yaml")), "files are not directories")
	assert.False(t, fsys.Exists(filepath.Join(dir, "missing")))

	content, err := fsys.ReadFile(filepath.Join(dir, "config.yaml"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", content)

	_, err = fsys.ReadFile(filepath.Join(dir, "config.yaml"), "no-such-encoding")
	require.Error(t, err)
}

type notFoundErr struct{}

func (*notFoundErr) Error() string { return "file not found" }
