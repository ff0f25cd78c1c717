// Package settings reads operator settings from <suite>/.ship/config.yaml and
// SHIP_* environment variables.
package settings

import (
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SHIP"

// Loader implements ports.SettingsLoader with viper.
type Loader struct {
	fs afero.Fs
}

var _ ports.SettingsLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load returns the settings of the suite rooted at root. A missing file is
// not an error; defaults and environment still apply.
func (l *Loader) Load(root string) (domain.Settings, error) {
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigName(domain.SettingsFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(root, domain.ShipDirName))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := domain.DefaultSettings()
	v.SetDefault("remote", defaults.Remote)
	v.SetDefault("main_branch", defaults.MainBranch)
	v.SetDefault("merge_to_main", defaults.MergeToMain)
	v.SetDefault("max_loops", defaults.MaxLoops)
	v.SetDefault("loop_limit", defaults.LoopLimit)
	v.SetDefault("bump_level", defaults.BumpLevel)
	v.SetDefault("log_format", defaults.LogFormat)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "root", root)
		}
	}

	var s domain.Settings
	if err := v.Unmarshal(&s); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "root", root)
	}
	return s, validate(s)
}

func validate(s domain.Settings) error {
	if _, err := domain.ParseBumpLevel(s.BumpLevel); err != nil {
		return err
	}
	if s.MaxLoops < 1 {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "max_loops must be at least 1"), "max_loops", s.MaxLoops)
	}
	if s.LoopLimit < 1 {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "loop_limit must be at least 1"), "loop_limit", s.LoopLimit)
	}
	if s.LogFormat != "pretty" && s.LogFormat != "json" {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "log_format must be pretty or json"), "log_format", s.LogFormat)
	}
	return nil
}
