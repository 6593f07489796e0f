package job

import (
	"github.com/jobforge/jobforge/internal/errors"
)

// getValue returns reference when it is set, otherwise a copy of other.
func getValue[V any](reference, other *V) *V {
	if reference != nil {
		return reference
	}
	return clonePtr(other)
}

// getValueOr additionally falls back to a default when both sides are
// unset, which happens for maven fields under a free style parent.
func getValueOr[V any](reference, other *V, fallback V) *V {
	if merged := getValue(reference, other); merged != nil {
		return merged
	}
	value := fallback
	return &value
}

func clonePtr[V any](v *V) *V {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

func cloneSlice[V any](s []V) []V {
	if s == nil {
		return nil
	}
	out := make([]V, len(s))
	copy(out, s)
	return out
}

// mergeWholesale keeps the child's list whenever it was declared, even
// empty; an undeclared list inherits the parent's. An overriding child
// keeps its list unconditionally.
func mergeWholesale[V any](child, parent []V, override bool) []V {
	if override || child != nil {
		return child
	}
	return cloneSlice(parent)
}

// mergeParameters joins parent and child parameters. Parent entries whose
// name the child redeclares are dropped, the remainder keeps parent order
// and the child's entries follow. An overriding child replaces the list.
func mergeParameters(child, parent []Parameter, override bool) []Parameter {
	if override {
		return child
	}
	if child == nil {
		return cloneSlice(parent)
	}
	declared := make(map[string]struct{}, len(child))
	for _, p := range child {
		declared[p.Name] = struct{}{}
	}
	merged := make([]Parameter, 0, len(parent)+len(child))
	for _, p := range parent {
		if _, ok := declared[p.Name]; !ok {
			merged = append(merged, p)
		}
	}
	return append(merged, child...)
}

// MergeFrom merges a resolved parent spec into this spec
// - non nil values on this spec win
// - nil values inherit the parent's value
// - parameters join by name, other lists replace wholesale
// - maven fields only materialize on maven jobs, tasks only on free ones
func (j *Spec) MergeFrom(parent *Spec) error {
	j.JobType = getValue(j.JobType, parent.JobType)
	j.JenkinsURL = getValue(j.JenkinsURL, parent.JenkinsURL)
	j.GenerationSource = getValue(j.GenerationSource, parent.GenerationSource)
	j.Description = getValue(j.Description, parent.Description)
	j.DescriptionTable = getValue(j.DescriptionTable, parent.DescriptionTable)

	j.SCMType = getValue(j.SCMType, parent.SCMType)
	if j.SCMType != nil {
		class, err := j.SCMType.Class()
		if err != nil {
			return errors.Wrap(EntityJob, "merge job "+j.ID, err)
		}
		j.SCMClass = &class
	}
	j.UseUpdate = getValue(j.UseUpdate, parent.UseUpdate)
	j.DoRevert = getValue(j.DoRevert, parent.DoRevert)

	j.Node = getValue(j.Node, parent.Node)
	j.JDKName = getValue(j.JDKName, parent.JDKName)
	j.AuthToken = getValue(j.AuthToken, parent.AuthToken)
	j.RunPostStepsIfResult = getValue(j.RunPostStepsIfResult, parent.RunPostStepsIfResult)

	j.SCM = getValue(j.SCM, parent.SCM)
	j.Properties = getValue(j.Properties, parent.Properties)
	j.Publishers = getValue(j.Publishers, parent.Publishers)
	j.BuildWrappers = getValue(j.BuildWrappers, parent.BuildWrappers)
	j.Prebuilders = getValue(j.Prebuilders, parent.Prebuilders)
	j.Postbuilders = getValue(j.Postbuilders, parent.Postbuilders)
	j.Process = getValue(j.Process, parent.Process)

	j.DaysToKeep = getValue(j.DaysToKeep, parent.DaysToKeep)
	j.NumToKeep = getValue(j.NumToKeep, parent.NumToKeep)
	j.BlockBuildWhenDownstreamBuilding = getValue(j.BlockBuildWhenDownstreamBuilding, parent.BlockBuildWhenDownstreamBuilding)
	j.BlockBuildWhenUpstreamBuilding = getValue(j.BlockBuildWhenUpstreamBuilding, parent.BlockBuildWhenUpstreamBuilding)

	j.Mail = getValue(j.Mail, parent.Mail)
	j.Invoke = getValue(j.Invoke, parent.Invoke)

	j.Triggers = mergeWholesale(j.Triggers, parent.Triggers, j.Override)
	j.Repositories = mergeWholesale(j.Repositories, parent.Repositories, j.Override)
	j.PrebuildTasks = mergeWholesale(j.PrebuildTasks, parent.PrebuildTasks, j.Override)
	j.PostbuildTasks = mergeWholesale(j.PostbuildTasks, parent.PostbuildTasks, j.Override)
	j.Parameters = mergeParameters(j.Parameters, parent.Parameters, j.Override)

	if j.JobType != nil && *j.JobType == JobTypeMaven {
		j.Pom = getValueOr(j.Pom, parent.Pom, DefaultPom)
		j.MavenGoals = getValueOr(j.MavenGoals, parent.MavenGoals, DefaultMavenGoals)
		j.MavenName = getValueOr(j.MavenName, parent.MavenName, DefaultMavenName)
		j.MavenOpts = getValueOr(j.MavenOpts, parent.MavenOpts, "")
		j.BuildOnSNAPSHOT = getValueOr(j.BuildOnSNAPSHOT, parent.BuildOnSNAPSHOT, false)
		j.PrivateRepository = getValueOr(j.PrivateRepository, parent.PrivateRepository, false)
		j.ArchivingDisabled = getValueOr(j.ArchivingDisabled, parent.ArchivingDisabled, false)
		j.Reporters = getValueOr(j.Reporters, parent.Reporters, "")
		j.LocalRepoBase = getValueOr(j.LocalRepoBase, parent.LocalRepoBase, "")
		j.LocalRepo = getValueOr(j.LocalRepo, parent.LocalRepo, "")
		j.Deploy = getValueOr(j.Deploy, parent.Deploy, DeploySpec{})
		j.Artifactory = getValueOr(j.Artifactory, parent.Artifactory, ArtifactorySpec{})
	}

	if j.JobType != nil && *j.JobType == JobTypeFree {
		j.Tasks = mergeWholesale(j.Tasks, parent.Tasks, j.Override)
	}
	return nil
}
