package job_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobforge/jobforge/internal/errors"
	"github.com/jobforge/jobforge/job"
)

func TestResolver(t *testing.T) {
	newResolver := func() *job.Resolver {
		return job.NewResolver(job.NewBaseSpec(), testHome)
	}

	t.Run("should materialize a root against the base spec", func(t *testing.T) {
		spec := mustNew("service-build")

		resolved, err := newResolver().Resolve([]*job.Spec{spec})
		assert.NoError(t, err)
		assert.Len(t, resolved, 1)
		assert.Equal(t, "master", *resolved[0].Node)
		assert.Equal(t, job.JobTypeMaven, *resolved[0].JobType)
		assert.Equal(t, "hudson.scm.SubversionSCM", *resolved[0].SCMClass)
		assert.Equal(t, "pom.xml", *resolved[0].Pom)
	})
	t.Run("should resolve a chain and filter abstract specs from the result", func(t *testing.T) {
		parent := mustNew("app-base")
		parent.Abstract = true
		parent.Node = strPtr("linux-agent")
		parent.Description = strPtr("shared build settings")

		child := mustNew("app-service")
		child.Parent = "app-base"
		child.Description = strPtr("builds the service")

		resolved, err := newResolver().Resolve([]*job.Spec{parent, child})
		assert.NoError(t, err)
		assert.Len(t, resolved, 1)
		assert.Equal(t, "app-service", resolved[0].ID)
		assert.Equal(t, "linux-agent", *resolved[0].Node)
		assert.Equal(t, "builds the service", *resolved[0].Description)
	})
	t.Run("should resolve parents strictly before their children", func(t *testing.T) {
		root := mustNew("a")
		b := mustNew("b")
		b.Parent = "a"
		c := mustNew("c")
		c.Parent = "a"
		d := mustNew("d")
		d.Parent = "b"

		resolved, err := newResolver().Resolve([]*job.Spec{root, b, c, d})
		assert.NoError(t, err)

		order := make([]string, len(resolved))
		for i, spec := range resolved {
			order[i] = spec.ID
		}
		assert.Equal(t, []string{"a", "b", "c", "d"}, order)
	})
	t.Run("should propagate values down several levels", func(t *testing.T) {
		grandparent := mustNew("base")
		grandparent.Abstract = true
		grandparent.Description = strPtr("team build conventions")
		grandparent.SCMType = scmTypePtr(job.SCMTypeGit)
		grandparent.JDKName = strPtr("jdk-17")
		grandparent.Parameters = []job.Parameter{{Name: "BRANCH", Value: "trunk"}}

		parent := mustNew("middle")
		parent.Abstract = true
		parent.Parent = "base"
		parent.JobType = jobTypePtr(job.JobTypeMaven)
		parent.Pom = strPtr("modules/pom.xml")
		parent.Parameters = []job.Parameter{{Name: "TARGET", Value: "install"}}

		leaf := mustNew("service")
		leaf.Parent = "middle"

		resolved, err := newResolver().Resolve([]*job.Spec{grandparent, parent, leaf})
		assert.NoError(t, err)
		assert.Len(t, resolved, 1)
		assert.Equal(t, "team build conventions", *resolved[0].Description)
		assert.Equal(t, job.SCMTypeGit, *resolved[0].SCMType)
		assert.Equal(t, "modules/pom.xml", *resolved[0].Pom)
		assert.Equal(t, "jdk-17", *resolved[0].JDKName)
		assert.Equal(t, []job.Parameter{
			{Name: "BRANCH", Value: "trunk"},
			{Name: "TARGET", Value: "install"},
		}, resolved[0].Parameters)
	})
	t.Run("should rewrite maven goals during resolution", func(t *testing.T) {
		spec := mustNew("service-build")
		spec.LocalRepo = strPtr("service-repo")
		spec.MavenGoals = strPtr("clean {target}")

		resolved, err := newResolver().Resolve([]*job.Spec{spec})
		assert.NoError(t, err)
		assert.Equal(t, `clean ${target} -Dmaven.repo.local="/home/ci/.m2/repository/service-repo"`, *resolved[0].MavenGoals)
		assert.Equal(t, "/home/ci/.m2/repository/service-repo", resolved[0].LocalRepoPath)
	})
	t.Run("should fail on duplicate ids", func(t *testing.T) {
		_, err := newResolver().Resolve([]*job.Spec{mustNew("build"), mustNew("build")})
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrAlreadyExists))
	})
	t.Run("should fail when a parent is unknown", func(t *testing.T) {
		orphan := mustNew("orphan")
		orphan.Parent = "ghost"

		_, err := newResolver().Resolve([]*job.Spec{orphan})
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrNotFound))
		assert.Contains(t, err.Error(), "orphan")
		assert.Contains(t, err.Error(), "ghost")
	})
	t.Run("should fail on an inheritance cycle", func(t *testing.T) {
		a := mustNew("a")
		a.Parent = "b"
		b := mustNew("b")
		b.Parent = "a"

		_, err := newResolver().Resolve([]*job.Spec{a, b})
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "circular inheritance")
	})
	t.Run("should fail when a spec names itself as parent", func(t *testing.T) {
		selfish := mustNew("selfish")
		selfish.Parent = "selfish"

		_, err := newResolver().Resolve([]*job.Spec{selfish})
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
	t.Run("should abort on the first invalid spec", func(t *testing.T) {
		broken := mustNew("broken")
		broken.JobType = jobTypePtr(job.JobTypeFree)

		_, err := newResolver().Resolve([]*job.Spec{broken})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.Contains(t, err.Error(), "at least one task")
	})
	t.Run("should honor base spec options", func(t *testing.T) {
		base := job.NewBaseSpec(
			job.WithSCMType(job.SCMTypeGit),
			job.WithNode("podman-large"),
			job.WithJenkinsURL("https://jenkins.example.com"),
		)
		resolver := job.NewResolver(base, testHome)

		resolved, err := resolver.Resolve([]*job.Spec{mustNew("service-build")})
		assert.NoError(t, err)
		assert.Equal(t, "hudson.plugins.git.GitSCM", *resolved[0].SCMClass)
		assert.Equal(t, "podman-large", *resolved[0].Node)
		assert.Equal(t, "https://jenkins.example.com", *resolved[0].JenkinsURL)
	})
	t.Run("Tree", func(t *testing.T) {
		t.Run("should expose the inheritance forest", func(t *testing.T) {
			parent := mustNew("app-base")
			child := mustNew("app-service")
			child.Parent = "app-base"
			lone := mustNew("standalone")

			forest, err := newResolver().Tree([]*job.Spec{parent, child, lone})
			assert.NoError(t, err)

			roots := forest.GetRootNodes()
			assert.Len(t, roots, 2)
			assert.Equal(t, "app-base", roots[0].GetName())
			assert.Equal(t, "standalone", roots[1].GetName())
			assert.Len(t, roots[0].Dependents, 1)
		})
		t.Run("should reject cycles", func(t *testing.T) {
			a := mustNew("a")
			a.Parent = "b"
			b := mustNew("b")
			b.Parent = "a"

			_, err := newResolver().Tree([]*job.Spec{a, b})
			assert.Error(t, err)
		})
	})
}
