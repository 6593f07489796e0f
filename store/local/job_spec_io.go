package local

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/validator.v2"

	"github.com/jobforge/jobforge/job"
	"github.com/jobforge/jobforge/store/local/model"
)

const jobSpecFileName = "job.yaml"

type jobSpecReadWriter struct {
	referenceSpecFileName string

	specFS afero.Fs
}

// NewJobSpecReadWriter returns a reader and writer for job declarations
// stored as job.yaml files, one directory per job.
func NewJobSpecReadWriter(specFS afero.Fs) (SpecReadWriter[*model.JobSpec], error) {
	if specFS == nil {
		return nil, errors.New("spec fs is nil")
	}
	return &jobSpecReadWriter{
		referenceSpecFileName: jobSpecFileName,
		specFS:                specFS,
	}, nil
}

func (j jobSpecReadWriter) ReadAll(rootDirPath string) ([]*model.JobSpec, error) {
	if rootDirPath == "" {
		return nil, errors.New("root dir path is empty")
	}
	dirPaths, err := discoverSpecDirPaths(j.specFS, rootDirPath, j.referenceSpecFileName)
	if err != nil {
		return nil, errors.Wrapf(err, "error discovering spec paths under [%s]", rootDirPath)
	}

	specs := make([]*model.JobSpec, 0, len(dirPaths))
	for _, dirPath := range dirPaths {
		filePath := filepath.Join(dirPath, j.referenceSpecFileName)
		spec, err := readSpec[*model.JobSpec](j.specFS, filePath)
		if err != nil {
			return nil, err
		}
		if err := validator.Validate(spec); err != nil {
			return nil, errors.Wrapf(err, "spec under [%s] is invalid", filePath)
		}
		spec.Path = dirPath
		specs = append(specs, spec)
	}
	return specs, nil
}

func (j jobSpecReadWriter) ReadByName(rootDirPath, name string) (*model.JobSpec, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	allSpecs, err := j.ReadAll(rootDirPath)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading all specs under [%s]", rootDirPath)
	}

	spec := getFirstSpecByFilter(allSpecs, func(s *model.JobSpec) bool {
		if s.ID == name {
			return true
		}
		sanitized, err := job.SanitizeID(s.ID)
		return err == nil && sanitized == name
	})
	if spec == nil {
		return nil, errors.Errorf("spec with name [%s] is not found", name)
	}
	return spec, nil
}

func (j jobSpecReadWriter) Write(dirPath string, spec *model.JobSpec) error {
	if dirPath == "" {
		return errors.New("dir path is empty")
	}
	if spec == nil {
		return errors.New("spec is nil")
	}
	if err := validator.Validate(spec); err != nil {
		return errors.Wrapf(err, "spec [%s] is invalid", spec.ID)
	}
	filePath := filepath.Join(dirPath, j.referenceSpecFileName)
	return writeSpec(j.specFS, filePath, spec)
}
