package job_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobforge/jobforge/internal/errors"
	"github.com/jobforge/jobforge/job"
)

func TestJobType(t *testing.T) {
	t.Run("should accept the two known types", func(t *testing.T) {
		assert.True(t, job.JobTypeFree.IsValid())
		assert.True(t, job.JobTypeMaven.IsValid())
	})
	t.Run("should reject anything else", func(t *testing.T) {
		assert.False(t, job.JobType("ant").IsValid())
		assert.False(t, job.JobType("").IsValid())
	})
}

func TestSCMType(t *testing.T) {
	t.Run("should map each type onto its implementation class", func(t *testing.T) {
		cases := map[job.SCMType]string{
			job.SCMTypeNone: "hudson.scm.NullSCM",
			job.SCMTypeCVS:  "hudson.scm.CVSSCM",
			job.SCMTypeSVN:  "hudson.scm.SubversionSCM",
			job.SCMTypeGit:  "hudson.plugins.git.GitSCM",
		}
		for scmType, wantClass := range cases {
			class, err := scmType.Class()
			assert.NoError(t, err)
			assert.Equal(t, wantClass, class)
		}
	})
	t.Run("should fail on unknown types", func(t *testing.T) {
		_, err := job.SCMType("perforce").Class()
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		assert.False(t, job.SCMType("perforce").IsValid())
	})
}

func TestPostStepsResult(t *testing.T) {
	t.Run("should expose the threshold triple per result", func(t *testing.T) {
		assert.Equal(t, "SUCCESS", job.PostStepsOnSuccess.ThresholdName())
		assert.Equal(t, 0, job.PostStepsOnSuccess.Ordinal())
		assert.Equal(t, "BLUE", job.PostStepsOnSuccess.Color())

		assert.Equal(t, "UNSTABLE", job.PostStepsOnUnstable.ThresholdName())
		assert.Equal(t, 1, job.PostStepsOnUnstable.Ordinal())
		assert.Equal(t, "YELLOW", job.PostStepsOnUnstable.Color())

		assert.Equal(t, "FAILURE", job.PostStepsAlways.ThresholdName())
		assert.Equal(t, 2, job.PostStepsAlways.Ordinal())
		assert.Equal(t, "RED", job.PostStepsAlways.Color())
	})
	t.Run("should reject unknown results", func(t *testing.T) {
		assert.False(t, job.PostStepsResult("never").IsValid())
	})
}

func TestTriggerType(t *testing.T) {
	t.Run("should map trigger types onto trigger classes", func(t *testing.T) {
		assert.Equal(t, "hudson.triggers.TimerTrigger", job.TriggerTimer.Class())
		assert.Equal(t, "hudson.triggers.SCMTrigger", job.TriggerSCMPolling.Class())
	})
	t.Run("should reject unknown trigger types", func(t *testing.T) {
		assert.False(t, job.TriggerType("webhook").IsValid())
	})
}

func TestRecordActivation(t *testing.T) {
	t.Run("mail is active once recipients are set", func(t *testing.T) {
		assert.False(t, (&job.MailSpec{}).Active())
		assert.False(t, (*job.MailSpec)(nil).Active())
		assert.True(t, (&job.MailSpec{Recipients: "ci@example.com"}).Active())
	})
	t.Run("invoke is active once jobs are set", func(t *testing.T) {
		assert.False(t, (&job.InvokeSpec{}).Active())
		assert.True(t, (&job.InvokeSpec{Jobs: "downstream"}).Active())
	})
	t.Run("deploy and artifactory are active when enabled", func(t *testing.T) {
		assert.False(t, (&job.DeploySpec{}).Active())
		assert.True(t, (&job.DeploySpec{Enabled: true}).Active())
		assert.False(t, (&job.ArtifactorySpec{}).Active())
		assert.True(t, (&job.ArtifactorySpec{Enabled: true}).Active())
	})
}
