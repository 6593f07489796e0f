package job

import (
	"fmt"
	"strings"

	"github.com/jobforge/jobforge/internal/errors"
)

// The battery runs every check and reports all failures at once; order
// only matters for readability of the combined message.
var (
	universalValidators = []func(*Spec) error{
		validateIdentity,
		validateEnums,
		validateResolved,
		validateTriggers,
		validateParameters,
		validateAuxiliarySteps,
		validateRepositories,
	}
	freeStyleValidators = []func(*Spec) error{
		validateFreeTasks,
		validateFreeHasNoMavenFields,
	}
	mavenValidators = []func(*Spec) error{
		validateMavenHasNoTasks,
		validateMavenEssentials,
		validateMavenResolved,
		validateMavenArchiving,
		validateMavenRepository,
	}
)

// Validate checks a resolved spec. All failures are accumulated and
// returned as one error naming the job. Abstract specs are templates,
// never rendered, and pass unconditionally.
func (j *Spec) Validate() error {
	if j.Abstract {
		return nil
	}
	me := errors.NewMultiError(fmt.Sprintf("validation errors on job %s", j.ID))
	for _, validate := range universalValidators {
		me.Append(validate(j))
	}
	switch {
	case j.JobType == nil || !j.JobType.IsValid():
		// already reported by validateEnums
	case *j.JobType == JobTypeFree:
		for _, validate := range freeStyleValidators {
			me.Append(validate(j))
		}
	case *j.JobType == JobTypeMaven:
		for _, validate := range mavenValidators {
			me.Append(validate(j))
		}
	default:
		me.Append(errors.InternalError(EntityJob, "job type "+j.JobType.String()+" passed enum check but has no battery", nil))
	}
	return me.ToErr()
}

func validateIdentity(j *Spec) error {
	if j.ID == "" {
		return errors.InvalidArgument(EntityJob, "job id is empty")
	}
	sanitized, err := SanitizeID(j.ID)
	if err != nil {
		return err
	}
	if sanitized != j.ID {
		return errors.InvalidArgument(EntityJob, fmt.Sprintf("job id %q is not in sanitized form, want %q", j.ID, sanitized))
	}
	return nil
}

func validateEnums(j *Spec) error {
	me := errors.NewMultiError(fmt.Sprintf("invalid enum values on job %s", j.ID))
	if j.JobType == nil || !j.JobType.IsValid() {
		me.Append(errors.InvalidArgument(EntityJob, "job type is missing or unknown"))
	}
	switch {
	case j.SCMType == nil || !j.SCMType.IsValid():
		me.Append(errors.InvalidArgument(EntityJob, "scm type is missing or unknown"))
	case j.SCMClass == nil:
		me.Append(errors.InvalidArgument(EntityJob, "scm class is unresolved"))
	default:
		if class, err := j.SCMType.Class(); err == nil && *j.SCMClass != class {
			me.Append(errors.InvalidArgument(EntityJob, fmt.Sprintf("scm class %q does not match scm type %q", *j.SCMClass, *j.SCMType)))
		}
	}
	if j.RunPostStepsIfResult == nil || !j.RunPostStepsIfResult.IsValid() {
		me.Append(errors.InvalidArgument(EntityJob, "runPostStepsIfResult is missing or unknown"))
	}
	return me.ToErr()
}

// validateResolved makes sure every field the renderer reads on any job
// type survived the merge. A nil here means a spec skipped resolution.
func validateResolved(j *Spec) error {
	var missing []string
	record := func(name string, set bool) {
		if !set {
			missing = append(missing, name)
		}
	}
	record("jenkinsUrl", j.JenkinsURL != nil)
	record("generationSource", j.GenerationSource != nil)
	record("description", j.Description != nil)
	record("descriptionTable", j.DescriptionTable != nil)
	record("useUpdate", j.UseUpdate != nil)
	record("doRevert", j.DoRevert != nil)
	record("node", j.Node != nil)
	record("jdkName", j.JDKName != nil)
	record("authToken", j.AuthToken != nil)
	record("scm", j.SCM != nil)
	record("properties", j.Properties != nil)
	record("publishers", j.Publishers != nil)
	record("buildWrappers", j.BuildWrappers != nil)
	record("prebuilders", j.Prebuilders != nil)
	record("postbuilders", j.Postbuilders != nil)
	record("process", j.Process != nil)
	record("daysToKeep", j.DaysToKeep != nil)
	record("numToKeep", j.NumToKeep != nil)
	record("blockBuildWhenDownstreamBuilding", j.BlockBuildWhenDownstreamBuilding != nil)
	record("blockBuildWhenUpstreamBuilding", j.BlockBuildWhenUpstreamBuilding != nil)
	record("mail", j.Mail != nil)
	record("invoke", j.Invoke != nil)
	if len(missing) > 0 {
		return errors.InvalidArgument(EntityJob, "unresolved fields: "+strings.Join(missing, ", "))
	}
	return nil
}

func validateTriggers(j *Spec) error {
	for i, trigger := range j.Triggers {
		if !trigger.Type.IsValid() {
			return errors.InvalidArgument(EntityJob, fmt.Sprintf("trigger %d has unknown type %q", i, trigger.Type))
		}
		if strings.TrimSpace(trigger.Expression) == "" {
			return errors.InvalidArgument(EntityJob, fmt.Sprintf("trigger %d has no expression", i))
		}
	}
	return nil
}

func validateParameters(j *Spec) error {
	seen := make(map[string]struct{}, len(j.Parameters))
	for i, param := range j.Parameters {
		if strings.TrimSpace(param.Name) == "" {
			return errors.InvalidArgument(EntityJob, fmt.Sprintf("parameter %d has no name", i))
		}
		if _, ok := seen[param.Name]; ok {
			return errors.InvalidArgument(EntityJob, "duplicate parameter "+param.Name)
		}
		seen[param.Name] = struct{}{}
	}
	return nil
}

func validateAuxiliarySteps(j *Spec) error {
	me := errors.NewMultiError(fmt.Sprintf("invalid auxiliary steps on job %s", j.ID))
	for i, step := range j.PrebuildTasks {
		if err := step.Validate(); err != nil {
			me.Append(errors.Wrap(EntityJob, fmt.Sprintf("prebuild task %d", i), err))
		}
	}
	for i, step := range j.PostbuildTasks {
		if err := step.Validate(); err != nil {
			me.Append(errors.Wrap(EntityJob, fmt.Sprintf("postbuild task %d", i), err))
		}
	}
	return me.ToErr()
}

func validateRepositories(j *Spec) error {
	return j.VerifyRepositories()
}

// VerifyRepositories rejects empty entries, repeated entries and entries
// shadowed by another entry higher up the same path. The first offending
// pair fails the whole list.
func (j *Spec) VerifyRepositories() error {
	for i, repo := range j.Repositories {
		if strings.TrimSpace(string(repo)) == "" {
			return errors.InvalidArgument(EntityJob, fmt.Sprintf("repository entry %d is empty", i))
		}
	}
	for i, a := range j.Repositories {
		for k, b := range j.Repositories {
			if i == k {
				continue
			}
			if a == b && k > i {
				return errors.InvalidArgument(EntityJob, fmt.Sprintf("repository %s declared more than once", a))
			}
			lowerA := strings.ToLower(string(a))
			lowerB := strings.ToLower(string(b))
			if strings.Contains(lowerB, lowerA+"/") {
				return errors.InvalidArgument(EntityJob, fmt.Sprintf("repository %s already covers %s", a, b))
			}
		}
	}
	return nil
}

func validateFreeTasks(j *Spec) error {
	if len(j.Tasks) == 0 {
		return errors.InvalidArgument(EntityJob, "a free style job needs at least one task")
	}
	me := errors.NewMultiError(fmt.Sprintf("invalid tasks on job %s", j.ID))
	for i, step := range j.Tasks {
		if err := step.Validate(); err != nil {
			me.Append(errors.Wrap(EntityJob, fmt.Sprintf("task %d", i), err))
		}
	}
	return me.ToErr()
}

func validateFreeHasNoMavenFields(j *Spec) error {
	var declared []string
	record := func(name string, set bool) {
		if set {
			declared = append(declared, name)
		}
	}
	record("pom", j.Pom != nil)
	record("mavenGoals", j.MavenGoals != nil)
	record("mavenName", j.MavenName != nil)
	record("mavenOpts", j.MavenOpts != nil)
	record("buildOnSNAPSHOT", j.BuildOnSNAPSHOT != nil)
	record("privateRepository", j.PrivateRepository != nil)
	record("archivingDisabled", j.ArchivingDisabled != nil)
	record("reporters", j.Reporters != nil)
	record("localRepoBase", j.LocalRepoBase != nil)
	record("localRepo", j.LocalRepo != nil)
	record("deploy", j.Deploy != nil)
	record("artifactory", j.Artifactory != nil)
	if len(declared) > 0 {
		return errors.InvalidArgument(EntityJob,
			"maven settings are not allowed on a free style job: "+strings.Join(declared, ", "))
	}
	return nil
}

func validateMavenHasNoTasks(j *Spec) error {
	if len(j.Tasks) > 0 {
		return errors.InvalidArgument(EntityJob, "tasks are not allowed on a maven job, use prebuild or postbuild tasks")
	}
	return nil
}

func validateMavenEssentials(j *Spec) error {
	if j.Pom == nil || strings.TrimSpace(*j.Pom) == "" {
		return errors.InvalidArgument(EntityJob, "maven job needs a pom")
	}
	if j.MavenGoals == nil || strings.TrimSpace(*j.MavenGoals) == "" {
		return errors.InvalidArgument(EntityJob, "maven job needs goals")
	}
	if j.MavenName == nil || strings.TrimSpace(*j.MavenName) == "" {
		return errors.InvalidArgument(EntityJob, "maven job needs a maven installation name")
	}
	return nil
}

func validateMavenResolved(j *Spec) error {
	var missing []string
	record := func(name string, set bool) {
		if !set {
			missing = append(missing, name)
		}
	}
	record("mavenOpts", j.MavenOpts != nil)
	record("buildOnSNAPSHOT", j.BuildOnSNAPSHOT != nil)
	record("privateRepository", j.PrivateRepository != nil)
	record("archivingDisabled", j.ArchivingDisabled != nil)
	record("reporters", j.Reporters != nil)
	record("localRepoBase", j.LocalRepoBase != nil)
	record("localRepo", j.LocalRepo != nil)
	record("deploy", j.Deploy != nil)
	record("artifactory", j.Artifactory != nil)
	if len(missing) > 0 {
		return errors.InvalidArgument(EntityJob, "unresolved maven fields: "+strings.Join(missing, ", "))
	}
	return nil
}

func validateMavenArchiving(j *Spec) error {
	if j.ArchivingDisabled == nil || !*j.ArchivingDisabled {
		return nil
	}
	if j.Deploy.Active() {
		return errors.InvalidArgument(EntityJob, "deploy needs archiving, archivingDisabled must stay false")
	}
	if j.Artifactory.Active() {
		return errors.InvalidArgument(EntityJob, "artifactory needs archiving, archivingDisabled must stay false")
	}
	return nil
}

func validateMavenRepository(j *Spec) error {
	if !boolVal(j.PrivateRepository) {
		return nil
	}
	if strVal(j.LocalRepoBase) != "" || strVal(j.LocalRepo) != "" || j.LocalRepoPath != "" {
		return errors.InvalidArgument(EntityJob, "privateRepository cannot be combined with a local repository")
	}
	return nil
}
