package local_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	local "github.com/jobforge/jobforge/store/local"
	"github.com/jobforge/jobforge/store/local/model"
)

type JobSpecReadWriterTestSuite struct {
	suite.Suite
}

func TestJobSpecReadWriter(t *testing.T) {
	s := new(JobSpecReadWriterTestSuite)
	suite.Run(t, s)
}

func (j *JobSpecReadWriterTestSuite) TestNew() {
	j.Run("should return nil and error if spec fs is nil", func() {
		readWriter, err := local.NewJobSpecReadWriter(nil)

		j.Assert().Nil(readWriter)
		j.Assert().Error(err)
	})

	j.Run("should return read writer and nil if spec fs is valid", func() {
		readWriter, err := local.NewJobSpecReadWriter(afero.NewMemMapFs())

		j.Assert().NotNil(readWriter)
		j.Assert().NoError(err)
	})
}

func (j *JobSpecReadWriterTestSuite) TestReadAll() {
	j.Run("should return nil and error if root dir path is empty", func() {
		specFS := afero.NewMemMapFs()
		readWriter := j.newReadWriter(specFS)

		var rootDirPath string

		specs, err := readWriter.ReadAll(rootDirPath)

		j.Assert().Nil(specs)
		j.Assert().Error(err)
	})

	j.Run("should return nil and error when discovering file paths fails", func() {
		specFS := afero.NewMemMapFs()
		readWriter := j.newReadWriter(specFS)

		rootDirPath := "invalid"

		specs, err := readWriter.ReadAll(rootDirPath)

		j.Assert().Nil(specs)
		j.Assert().Error(err)
	})

	j.Run("should return nil and error when a spec file is not valid yaml", func() {
		specFS := afero.NewMemMapFs()
		err := j.writeTo(specFS, "root/example1/job.yaml", "not a mapping")
		j.Require().NoError(err)

		readWriter := j.newReadWriter(specFS)

		specs, err := readWriter.ReadAll("root")

		j.Assert().Nil(specs)
		j.Assert().ErrorContains(err, "error decoding spec under")
	})

	j.Run("should return nil and error when a spec file carries an unknown key", func() {
		specFS := afero.NewMemMapFs()
		err := j.writeTo(specFS, "root/example1/job.yaml", `id: example1
unknownField: x`)
		j.Require().NoError(err)

		readWriter := j.newReadWriter(specFS)

		specs, err := readWriter.ReadAll("root")

		j.Assert().Nil(specs)
		j.Assert().ErrorContains(err, "field unknownField not found")
	})

	j.Run("should return nil and error when a spec file has no id", func() {
		specFS := afero.NewMemMapFs()
		err := j.writeTo(specFS, "root/example1/job.yaml", "jobType: maven")
		j.Require().NoError(err)

		readWriter := j.newReadWriter(specFS)

		specs, err := readWriter.ReadAll("root")

		j.Assert().Nil(specs)
		j.Assert().ErrorContains(err, "is invalid")
	})

	j.Run("should return specs and nil when every spec reads cleanly", func() {
		specFS := j.createValidSpecFS(
			"root/base",
			"root/team/app-service",
		)

		readWriter := j.newReadWriter(specFS)

		specs, err := readWriter.ReadAll("root")

		j.Assert().NoError(err)
		j.Assert().Len(specs, 2)
	})

	j.Run("should set the spec path to its directory and ignore asset files", func() {
		specFS := j.createValidSpecFS("root/team/app-service")
		err := j.writeTo(specFS, "root/team/app-service/NOTES.md", "scratch")
		j.Require().NoError(err)

		readWriter := j.newReadWriter(specFS)

		specs, err := readWriter.ReadAll("root")

		j.Assert().NoError(err)
		j.Assert().Len(specs, 1)
		j.Assert().Equal(filepath.Join("root", "team", "app-service"), specs[0].Path)
	})
}

func (j *JobSpecReadWriterTestSuite) TestReadByName() {
	j.Run("should return nil and error if name is empty", func() {
		specFS := j.createValidSpecFS("root/example1")
		readWriter := j.newReadWriter(specFS)

		spec, err := readWriter.ReadByName("root", "")

		j.Assert().Nil(spec)
		j.Assert().Error(err)
	})

	j.Run("should return nil and error if reading specs fails", func() {
		specFS := afero.NewMemMapFs()
		readWriter := j.newReadWriter(specFS)

		spec, err := readWriter.ReadByName("missing", "example1")

		j.Assert().Nil(spec)
		j.Assert().Error(err)
	})

	j.Run("should return nil and error if no spec carries the name", func() {
		specFS := j.createValidSpecFS("root/example1")
		readWriter := j.newReadWriter(specFS)

		spec, err := readWriter.ReadByName("root", "example2")

		j.Assert().Nil(spec)
		j.Assert().ErrorContains(err, "spec with name [example2] is not found")
	})

	j.Run("should return the spec matching the declared id", func() {
		specFS := j.createValidSpecFS("root/example1", "root/example2")
		readWriter := j.newReadWriter(specFS)

		spec, err := readWriter.ReadByName("root", "example2")

		j.Assert().NoError(err)
		j.Assert().Equal("example2", spec.ID)
	})

	j.Run("should return the spec matching the sanitized id", func() {
		specFS := afero.NewMemMapFs()
		err := j.writeTo(specFS, "root/shared/job.yaml", "id: Shared Utils")
		j.Require().NoError(err)

		readWriter := j.newReadWriter(specFS)

		spec, err := readWriter.ReadByName("root", "Shared-Utils")

		j.Assert().NoError(err)
		j.Assert().Equal("Shared Utils", spec.ID)
	})
}

func (j *JobSpecReadWriterTestSuite) TestWrite() {
	j.Run("should return error if dir path is empty", func() {
		specFS := afero.NewMemMapFs()
		readWriter := j.newReadWriter(specFS)

		err := readWriter.Write("", &model.JobSpec{ID: "example1"})

		j.Assert().Error(err)
	})

	j.Run("should return error if spec is nil", func() {
		specFS := afero.NewMemMapFs()
		readWriter := j.newReadWriter(specFS)

		err := readWriter.Write("root/example1", nil)

		j.Assert().Error(err)
	})

	j.Run("should return error if spec has no id", func() {
		specFS := afero.NewMemMapFs()
		readWriter := j.newReadWriter(specFS)

		err := readWriter.Write("root/example1", &model.JobSpec{})

		j.Assert().ErrorContains(err, "is invalid")
	})

	j.Run("should write the spec so it reads back identically", func() {
		specFS := afero.NewMemMapFs()
		readWriter := j.newReadWriter(specFS)

		jobType := "maven"
		mavenOpts := ""
		spec := &model.JobSpec{
			Version:    model.JobSpecVersion,
			ID:         "app-service",
			Parent:     "base",
			JobType:    &jobType,
			MavenOpts:  &mavenOpts,
			Parameters: []model.JobSpecParameter{{Name: "ENV", Value: "staging"}},
		}

		err := readWriter.Write("root/app-service", spec)
		j.Require().NoError(err)

		exists, err := afero.Exists(specFS, "root/app-service/job.yaml")
		j.Require().NoError(err)
		j.Assert().True(exists)

		read, err := readWriter.ReadByName("root", "app-service")
		j.Assert().NoError(err)
		j.Assert().Equal("app-service", read.ID)
		j.Assert().Equal("base", read.Parent)
		j.Assert().Equal(&jobType, read.JobType)
		j.Assert().NotNil(read.MavenOpts)
		j.Assert().Equal("", *read.MavenOpts)
		j.Assert().Equal(spec.Parameters, read.Parameters)
	})
}

func (j *JobSpecReadWriterTestSuite) newReadWriter(specFS afero.Fs) local.SpecReadWriter[*model.JobSpec] {
	readWriter, err := local.NewJobSpecReadWriter(specFS)
	j.Require().NoError(err)
	return readWriter
}

func (j *JobSpecReadWriterTestSuite) createValidSpecFS(specDirPaths ...string) afero.Fs {
	templateJobSpec := `version: 1
id: %s
jobType: maven
mavenGoals: -B -e clean install`

	specFS := afero.NewMemMapFs()
	for _, dirPath := range specDirPaths {
		jobName := filepath.Base(dirPath)
		dataRaw := fmt.Sprintf(templateJobSpec, jobName)
		filePath := filepath.Join(dirPath, "job.yaml")
		j.writeTo(specFS, filePath, dataRaw)
	}
	return specFS
}

func (*JobSpecReadWriterTestSuite) writeTo(fs afero.Fs, filePath, content string) error {
	f, err := fs.Create(filePath)
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(content)); err != nil {
		return err
	}
	return f.Close()
}
