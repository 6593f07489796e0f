package local

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
	yaml3 "gopkg.in/yaml.v3"
)

func discoverSpecDirPaths(specFS afero.Fs, rootDirPath, referenceFileName string) ([]string, error) {
	selectSpecDir := func(path string, info os.FileInfo) string {
		if !info.IsDir() && filepath.Base(path) == referenceFileName {
			return filepath.Dir(path)
		}
		return ""
	}
	return discoverPathsUsingSelector(specFS, rootDirPath, selectSpecDir)
}

func discoverPathsUsingSelector(specFS afero.Fs, rootDirPath string, selectPath func(path string, info os.FileInfo) string) ([]string, error) {
	var dirPaths []string
	err := afero.Walk(specFS, rootDirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if p := selectPath(path, info); p != "" {
			dirPaths = append(dirPaths, p)
		}
		return nil
	})
	return dirPaths, err
}

func readSpec[S ValidSpec](specFS afero.Fs, filePath string) (S, error) {
	f, err := specFS.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening spec under [%s]: %w", filePath, err)
	}
	defer f.Close()

	var spec S
	decoder := yaml.NewDecoder(f)
	decoder.SetStrict(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("error decoding spec under [%s]: %w", filePath, err)
	}
	return spec, nil
}

func writeSpec[S ValidSpec](specFS afero.Fs, filePath string, spec S) error {
	if err := specFS.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return fmt.Errorf("error creating spec directory under [%s]: %w", filePath, err)
	}
	f, err := specFS.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating spec under [%s]: %w", filePath, err)
	}
	defer f.Close()

	encoder := yaml3.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(spec)
}

func getFirstSpecByFilter[S ValidSpec](specs []S, filter func(S) bool) S {
	for _, s := range specs {
		if filter(s) {
			return s
		}
	}
	return nil
}
