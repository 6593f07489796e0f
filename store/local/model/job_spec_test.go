package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobforge/jobforge/job"
	"github.com/jobforge/jobforge/store/local/model"
)

func TestJobSpecToSpec(t *testing.T) {
	t.Run("should sanitize the declared id and keep the original", func(t *testing.T) {
		jobSpec := &model.JobSpec{ID: "My Job"}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)

		assert.Equal(t, "My-Job", spec.ID)
		assert.Equal(t, "My Job", spec.OriginalID)
	})

	t.Run("should fail on a reserved id", func(t *testing.T) {
		jobSpec := &model.JobSpec{ID: "com1"}

		spec, err := jobSpec.ToSpec()

		assert.Nil(t, spec)
		assert.ErrorContains(t, err, "reserved device name")
	})

	t.Run("should fail on a reserved parent reference", func(t *testing.T) {
		jobSpec := &model.JobSpec{ID: "child", Parent: "nul"}

		spec, err := jobSpec.ToSpec()

		assert.Nil(t, spec)
		assert.ErrorContains(t, err, "invalid parent reference")
	})

	t.Run("should sanitize the parent reference the same way as ids", func(t *testing.T) {
		jobSpec := &model.JobSpec{ID: "child", Parent: "My Base"}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)

		assert.Equal(t, "My-Base", spec.Parent)
	})

	t.Run("should convert enum strings into their domain types", func(t *testing.T) {
		jobType := "maven"
		scmType := "git"
		postSteps := "unstable"
		jobSpec := &model.JobSpec{
			ID:                   "example",
			JobType:              &jobType,
			SCMType:              &scmType,
			RunPostStepsIfResult: &postSteps,
		}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)

		assert.Equal(t, job.JobTypeMaven, *spec.JobType)
		assert.Equal(t, job.SCMTypeGit, *spec.SCMType)
		assert.Equal(t, job.PostStepsOnUnstable, *spec.RunPostStepsIfResult)
	})

	t.Run("should keep absent fields nil and declared zero values set", func(t *testing.T) {
		mavenOpts := ""
		jobSpec := &model.JobSpec{ID: "example", MavenOpts: &mavenOpts}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)

		assert.Nil(t, spec.Description)
		assert.NotNil(t, spec.MavenOpts)
		assert.Equal(t, "", *spec.MavenOpts)
	})

	t.Run("should copy values instead of aliasing the yaml model", func(t *testing.T) {
		description := "original"
		jobSpec := &model.JobSpec{ID: "example", Description: &description}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)
		*jobSpec.Description = "changed"

		assert.Equal(t, "original", *spec.Description)
	})

	t.Run("should keep absent lists nil and declared empty lists empty", func(t *testing.T) {
		jobSpec := &model.JobSpec{ID: "example", Repositories: []string{}}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)

		assert.Nil(t, spec.Triggers)
		assert.NotNil(t, spec.Repositories)
		assert.Empty(t, spec.Repositories)
	})

	t.Run("should convert records and tasks", func(t *testing.T) {
		jobSpec := &model.JobSpec{
			ID:   "example",
			Mail: &model.JobSpecMail{Recipients: "team@example.com", SendToIndividuals: true},
			Deploy: &model.JobSpecDeploy{
				Enabled:      true,
				RepositoryID: "releases",
			},
			Triggers: []model.JobSpecTrigger{{Type: "timer", Expression: "@midnight"}},
			Tasks:    []model.JobSpecTask{{Kind: "shell", Command: "make all"}},
		}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)

		assert.Equal(t, "team@example.com", spec.Mail.Recipients)
		assert.True(t, spec.Mail.SendToIndividuals)
		assert.True(t, spec.Deploy.Enabled)
		assert.Equal(t, "releases", spec.Deploy.RepositoryID)
		assert.Equal(t, job.TriggerTimer, spec.Triggers[0].Type)
		assert.Equal(t, "@midnight", spec.Triggers[0].Expression)
		assert.Equal(t, job.StepKindShell, spec.Tasks[0].Kind)
		assert.Equal(t, "make all", spec.Tasks[0].Command)
	})
}

func TestFromSpec(t *testing.T) {
	t.Run("should return nil for a nil spec", func(t *testing.T) {
		assert.Nil(t, model.FromSpec(nil))
	})

	t.Run("should prefer the original id over the sanitized one", func(t *testing.T) {
		spec, err := job.New("My Job")
		assert.NoError(t, err)

		jobSpec := model.FromSpec(spec)

		assert.Equal(t, "My Job", jobSpec.ID)
	})

	t.Run("should fall back to the sanitized id when no original is kept", func(t *testing.T) {
		spec := &job.Spec{ID: "plain"}

		jobSpec := model.FromSpec(spec)

		assert.Equal(t, "plain", jobSpec.ID)
	})

	t.Run("should round trip a fully declared spec", func(t *testing.T) {
		jobType := "maven"
		scmType := "svn"
		postSteps := "all"
		useUpdate := true
		daysToKeep := 30
		mavenOpts := "-Xmx512m"
		jobSpec := &model.JobSpec{
			Version:              model.JobSpecVersion,
			ID:                   "app-service",
			Parent:               "base",
			Override:             true,
			JobType:              &jobType,
			SCMType:              &scmType,
			RunPostStepsIfResult: &postSteps,
			UseUpdate:            &useUpdate,
			DaysToKeep:           &daysToKeep,
			MavenOpts:            &mavenOpts,
			Mail:                 &model.JobSpecMail{Recipients: "team@example.com"},
			Invoke:               &model.JobSpecInvoke{Jobs: "downstream", Threshold: "SUCCESS"},
			Artifactory:          &model.JobSpecArtifactory{Enabled: true, ServerURL: "https://artifactory.example.com"},
			Triggers:             []model.JobSpecTrigger{{Type: "scm-polling", Expression: "H/15 * * * *"}},
			Parameters:           []model.JobSpecParameter{{Name: "ENV", Value: "staging"}},
			Repositories:         []string{"https://svn.example.com/app/trunk"},
			PostbuildTasks:       []model.JobSpecTask{{Kind: "shell", Command: "notify"}},
		}

		spec, err := jobSpec.ToSpec()
		assert.NoError(t, err)
		roundTripped := model.FromSpec(spec)

		assert.Equal(t, jobSpec, roundTripped)
	})
}
