package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/core/domain"
)

func TestNextVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current string
		level   domain.BumpLevel
		want    string
	}{
		{"1.2.3", domain.BumpPatch, "1.2.4"},
		{"1.2.3", domain.BumpMinor, "1.3.0"},
		{"1.2.3", domain.BumpMajor, "2.0.0"},
		{"0.1.0", "", "0.1.1"},
		{"v2.0.9", domain.BumpPatch, "2.0.10"},
	}

	for _, tt := range tests {
		t.Run(tt.current+"/"+string(tt.level), func(t *testing.T) {
			t.Parallel()
			got, err := domain.NextVersion(tt.current, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextVersion_Invalid(t *testing.T) {
	t.Parallel()

	_, err := domain.NextVersion("not-a-version", domain.BumpPatch)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidVersion.Error())

	_, err = domain.NextVersion("1.0.0", "huge")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidBumpLevel.Error())
}

func TestParseBumpLevel(t *testing.T) {
	t.Parallel()

	level, err := domain.ParseBumpLevel("")
	require.NoError(t, err)
	assert.Equal(t, domain.BumpPatch, level)

	level, err = domain.ParseBumpLevel("minor")
	require.NoError(t, err)
	assert.Equal(t, domain.BumpMinor, level)

	_, err = domain.ParseBumpLevel("micro")
	require.Error(t, err)
}

func TestReleaseNaming(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "version-1.4.0", domain.ReleaseBranch("1.4.0"))
	assert.Equal(t, "Publishing version 1.4.0", domain.CommitMessage("1.4.0"))
	assert.Equal(t, "Release core/v1.4.0", domain.TagMessage("core/v1.4.0"))
}
