package config

import (
	"fmt"
	"os"

	"github.com/odpf/salt/config"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	filename      = "jobforge"
	fileExtension = "yaml"
	envPrefix     = "JOBFORGE"
)

// FS is the file system the loader reads from. Swapped in tests.
var FS = afero.NewReadOnlyFs(afero.NewOsFs())

// LoadProjectConfig loads the project config from filePath when given, or
// from jobforge.yaml in the current directory with JOBFORGE_* environment
// overrides otherwise.
func LoadProjectConfig(filePath string) (*ProjectConfig, error) {
	if filePath == "" {
		return loadProjectConfigFs(FS)
	}
	return loadProjectConfigFs(FS, filePath)
}

func loadProjectConfigFs(fs afero.Fs, filePaths ...string) (*ProjectConfig, error) {
	var filePath string
	if len(filePaths) > 0 {
		filePath = filePaths[0]
	}

	cfg := &ProjectConfig{}

	v := viper.New()
	v.SetFs(fs)

	opts := []config.LoaderOption{
		config.WithViper(v),
		config.WithName(filename),
		config.WithType(fileExtension),
	}

	if filePath != "" {
		if err := validateFilepath(fs, filePath); err != nil {
			return nil, err
		}
		opts = append(opts, config.WithFile(filePath))
	} else {
		currPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current work directory path: %w", err)
		}
		opts = append(opts,
			config.WithEnvPrefix(envPrefix),
			config.WithEnvKeyReplacer(".", "_"),
			config.WithPath(currPath),
		)
	}

	l := config.NewLoader(opts...)
	if err := l.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateFilepath(fs afero.Fs, fpath string) error {
	f, err := fs.Stat(fpath)
	if err != nil {
		return err
	}
	if !f.Mode().IsRegular() {
		return fmt.Errorf("%s not a file", fpath)
	}
	return nil
}
