package settings_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/settings"
	"go.trai.ch/ship/internal/core/domain"
)

func TestLoader_Defaults(t *testing.T) {
	s, err := settings.NewLoader(afero.NewMemMapFs()).Load("/suite")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestLoader_FileAndEnvironment(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/suite/.ship/config.yaml", []byte(
		"remote: upstream\nmerge_to_main: false\nmax_loops: 5\nbump_level: minor\n",
	), domain.FilePerm))
	t.Setenv("SHIP_MAX_LOOPS", "7")
	t.Setenv("SHIP_LOG_FORMAT", "json")

	s, err := settings.NewLoader(fs).Load("/suite")
	require.NoError(t, err)
	assert.Equal(t, "upstream", s.Remote)
	assert.Equal(t, "main", s.MainBranch)
	assert.False(t, s.MergeToMain)
	assert.Equal(t, 7, s.MaxLoops)
	assert.Equal(t, 10, s.LoopLimit)
	assert.Equal(t, "minor", s.BumpLevel)
	assert.Equal(t, "json", s.LogFormat)
}

func TestLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "remote: [\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown bump level", content: "bump_level: huge\n", wantErr: domain.ErrInvalidBumpLevel},
		{name: "zero loops", content: "max_loops: 0\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown log format", content: "log_format: xml\n", wantErr: domain.ErrConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/suite/.ship/config.yaml", []byte(tt.content), domain.FilePerm))

			_, err := settings.NewLoader(fs).Load("/suite")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
