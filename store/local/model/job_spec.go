package model

import (
	"github.com/jobforge/jobforge/internal/errors"
	"github.com/jobforge/jobforge/job"
)

const JobSpecVersion = 1

// JobSpec is the yaml representation of a job declaration. Inheritable
// fields are pointers so a key that is absent from the file stays nil and
// keeps inheriting, while a key set to the zero value wins over the parent.
type JobSpec struct {
	Version  int    `yaml:"version,omitempty" validate:"min=0,max=1"`
	ID       string `yaml:"id" validate:"min=1,max=255"`
	Abstract bool   `yaml:"abstract,omitempty"`
	Parent   string `yaml:"parent,omitempty" validate:"max=255"`
	Override bool   `yaml:"override,omitempty"`

	JobType          *string `yaml:"jobType,omitempty"`
	JenkinsURL       *string `yaml:"jenkinsUrl,omitempty"`
	GenerationSource *string `yaml:"generationSource,omitempty"`
	Description      *string `yaml:"description,omitempty"`
	DescriptionTable *string `yaml:"descriptionTable,omitempty"`

	SCMType   *string `yaml:"scmType,omitempty"`
	UseUpdate *bool   `yaml:"useUpdate,omitempty"`
	DoRevert  *bool   `yaml:"doRevert,omitempty"`

	Node                 *string `yaml:"node,omitempty"`
	JDKName              *string `yaml:"jdkName,omitempty"`
	AuthToken            *string `yaml:"authToken,omitempty"`
	RunPostStepsIfResult *string `yaml:"runPostStepsIfResult,omitempty"`

	SCM           *string `yaml:"scm,omitempty"`
	Properties    *string `yaml:"properties,omitempty"`
	Publishers    *string `yaml:"publishers,omitempty"`
	BuildWrappers *string `yaml:"buildWrappers,omitempty"`
	Prebuilders   *string `yaml:"prebuilders,omitempty"`
	Postbuilders  *string `yaml:"postbuilders,omitempty"`
	Process       *string `yaml:"process,omitempty"`

	DaysToKeep                       *int  `yaml:"daysToKeep,omitempty"`
	NumToKeep                        *int  `yaml:"numToKeep,omitempty"`
	BlockBuildWhenDownstreamBuilding *bool `yaml:"blockBuildWhenDownstreamBuilding,omitempty"`
	BlockBuildWhenUpstreamBuilding   *bool `yaml:"blockBuildWhenUpstreamBuilding,omitempty"`

	Pom               *string `yaml:"pom,omitempty"`
	MavenGoals        *string `yaml:"mavenGoals,omitempty"`
	MavenName         *string `yaml:"mavenName,omitempty"`
	MavenOpts         *string `yaml:"mavenOpts,omitempty"`
	BuildOnSNAPSHOT   *bool   `yaml:"buildOnSNAPSHOT,omitempty"`
	PrivateRepository *bool   `yaml:"privateRepository,omitempty"`
	ArchivingDisabled *bool   `yaml:"archivingDisabled,omitempty"`
	Reporters         *string `yaml:"reporters,omitempty"`
	LocalRepoBase     *string `yaml:"localRepoBase,omitempty"`
	LocalRepo         *string `yaml:"localRepo,omitempty"`

	Mail        *JobSpecMail        `yaml:"mail,omitempty"`
	Invoke      *JobSpecInvoke      `yaml:"invoke,omitempty"`
	Deploy      *JobSpecDeploy      `yaml:"deploy,omitempty"`
	Artifactory *JobSpecArtifactory `yaml:"artifactory,omitempty"`

	Triggers       []JobSpecTrigger   `yaml:"triggers,omitempty"`
	Parameters     []JobSpecParameter `yaml:"parameters,omitempty"`
	Repositories   []string           `yaml:"repositories,omitempty"`
	Tasks          []JobSpecTask      `yaml:"tasks,omitempty"`
	PrebuildTasks  []JobSpecTask      `yaml:"prebuildTasks,omitempty"`
	PostbuildTasks []JobSpecTask      `yaml:"postbuildTasks,omitempty"`

	Path string `yaml:"-"`
}

type JobSpecMail struct {
	Recipients               string `yaml:"recipients,omitempty"`
	NotifyEveryUnstableBuild bool   `yaml:"notifyEveryUnstableBuild,omitempty"`
	SendToIndividuals        bool   `yaml:"sendToIndividuals,omitempty"`
}

type JobSpecInvoke struct {
	Jobs                      string `yaml:"jobs,omitempty"`
	Threshold                 string `yaml:"threshold,omitempty"`
	IncludeUpstreamParameters bool   `yaml:"includeUpstreamParameters,omitempty"`
}

type JobSpecDeploy struct {
	Enabled        bool   `yaml:"enabled,omitempty"`
	RepositoryID   string `yaml:"repositoryId,omitempty"`
	RepositoryURL  string `yaml:"repositoryUrl,omitempty"`
	UniqueVersion  bool   `yaml:"uniqueVersion,omitempty"`
	EvenIfUnstable bool   `yaml:"evenIfUnstable,omitempty"`
}

type JobSpecArtifactory struct {
	Enabled               bool   `yaml:"enabled,omitempty"`
	ServerURL             string `yaml:"serverUrl,omitempty"`
	RepositoryKey         string `yaml:"repositoryKey,omitempty"`
	SnapshotRepositoryKey string `yaml:"snapshotRepositoryKey,omitempty"`
	DeployArtifacts       bool   `yaml:"deployArtifacts,omitempty"`
	EvenIfUnstable        bool   `yaml:"evenIfUnstable,omitempty"`
}

type JobSpecTrigger struct {
	Type        string `yaml:"type"`
	Expression  string `yaml:"expression,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type JobSpecParameter struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type,omitempty"`
	Value       string `yaml:"value,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type JobSpecTask struct {
	Kind       string `yaml:"kind"`
	Command    string `yaml:"command,omitempty"`
	Targets    string `yaml:"targets,omitempty"`
	Properties string `yaml:"properties,omitempty"`
	BuildFile  string `yaml:"buildFile,omitempty"`
	AntName    string `yaml:"antName,omitempty"`
	MavenName  string `yaml:"mavenName,omitempty"`
	Pom        string `yaml:"pom,omitempty"`
	JVMOptions string `yaml:"jvmOptions,omitempty"`
}

// ToSpec converts the yaml representation into a job entity. The declared
// id and the parent reference are sanitized so they keep matching each
// other after the rewrite.
func (j *JobSpec) ToSpec() (*job.Spec, error) {
	spec, err := job.New(j.ID)
	if err != nil {
		return nil, err
	}
	parent, err := job.SanitizeID(j.Parent)
	if err != nil {
		return nil, errors.Wrap(job.EntityJob, "job "+spec.ID+": invalid parent reference", err)
	}
	spec.Abstract = j.Abstract
	spec.Parent = parent
	spec.Override = j.Override

	spec.JobType = enumPtr[job.JobType](j.JobType)
	spec.JenkinsURL = clone(j.JenkinsURL)
	spec.GenerationSource = clone(j.GenerationSource)
	spec.Description = clone(j.Description)
	spec.DescriptionTable = clone(j.DescriptionTable)

	spec.SCMType = enumPtr[job.SCMType](j.SCMType)
	spec.UseUpdate = clone(j.UseUpdate)
	spec.DoRevert = clone(j.DoRevert)

	spec.Node = clone(j.Node)
	spec.JDKName = clone(j.JDKName)
	spec.AuthToken = clone(j.AuthToken)
	spec.RunPostStepsIfResult = enumPtr[job.PostStepsResult](j.RunPostStepsIfResult)

	spec.SCM = clone(j.SCM)
	spec.Properties = clone(j.Properties)
	spec.Publishers = clone(j.Publishers)
	spec.BuildWrappers = clone(j.BuildWrappers)
	spec.Prebuilders = clone(j.Prebuilders)
	spec.Postbuilders = clone(j.Postbuilders)
	spec.Process = clone(j.Process)

	spec.DaysToKeep = clone(j.DaysToKeep)
	spec.NumToKeep = clone(j.NumToKeep)
	spec.BlockBuildWhenDownstreamBuilding = clone(j.BlockBuildWhenDownstreamBuilding)
	spec.BlockBuildWhenUpstreamBuilding = clone(j.BlockBuildWhenUpstreamBuilding)

	spec.Pom = clone(j.Pom)
	spec.MavenGoals = clone(j.MavenGoals)
	spec.MavenName = clone(j.MavenName)
	spec.MavenOpts = clone(j.MavenOpts)
	spec.BuildOnSNAPSHOT = clone(j.BuildOnSNAPSHOT)
	spec.PrivateRepository = clone(j.PrivateRepository)
	spec.ArchivingDisabled = clone(j.ArchivingDisabled)
	spec.Reporters = clone(j.Reporters)
	spec.LocalRepoBase = clone(j.LocalRepoBase)
	spec.LocalRepo = clone(j.LocalRepo)

	spec.Mail = j.toMailSpec()
	spec.Invoke = j.toInvokeSpec()
	spec.Deploy = j.toDeploySpec()
	spec.Artifactory = j.toArtifactorySpec()

	spec.Triggers = j.toTriggers()
	spec.Parameters = j.toParameters()
	spec.Repositories = toRepositories(j.Repositories)
	spec.Tasks = toSteps(j.Tasks)
	spec.PrebuildTasks = toSteps(j.PrebuildTasks)
	spec.PostbuildTasks = toSteps(j.PostbuildTasks)

	return spec, nil
}

func (j *JobSpec) toMailSpec() *job.MailSpec {
	if j.Mail == nil {
		return nil
	}
	return &job.MailSpec{
		Recipients:               j.Mail.Recipients,
		NotifyEveryUnstableBuild: j.Mail.NotifyEveryUnstableBuild,
		SendToIndividuals:        j.Mail.SendToIndividuals,
	}
}

func (j *JobSpec) toInvokeSpec() *job.InvokeSpec {
	if j.Invoke == nil {
		return nil
	}
	return &job.InvokeSpec{
		Jobs:                      j.Invoke.Jobs,
		Threshold:                 j.Invoke.Threshold,
		IncludeUpstreamParameters: j.Invoke.IncludeUpstreamParameters,
	}
}

func (j *JobSpec) toDeploySpec() *job.DeploySpec {
	if j.Deploy == nil {
		return nil
	}
	return &job.DeploySpec{
		Enabled:        j.Deploy.Enabled,
		RepositoryID:   j.Deploy.RepositoryID,
		RepositoryURL:  j.Deploy.RepositoryURL,
		UniqueVersion:  j.Deploy.UniqueVersion,
		EvenIfUnstable: j.Deploy.EvenIfUnstable,
	}
}

func (j *JobSpec) toArtifactorySpec() *job.ArtifactorySpec {
	if j.Artifactory == nil {
		return nil
	}
	return &job.ArtifactorySpec{
		Enabled:               j.Artifactory.Enabled,
		ServerURL:             j.Artifactory.ServerURL,
		RepositoryKey:         j.Artifactory.RepositoryKey,
		SnapshotRepositoryKey: j.Artifactory.SnapshotRepositoryKey,
		DeployArtifacts:       j.Artifactory.DeployArtifacts,
		EvenIfUnstable:        j.Artifactory.EvenIfUnstable,
	}
}

func (j *JobSpec) toTriggers() []job.Trigger {
	if j.Triggers == nil {
		return nil
	}
	triggers := make([]job.Trigger, len(j.Triggers))
	for i, t := range j.Triggers {
		triggers[i] = job.Trigger{
			Type:        job.TriggerType(t.Type),
			Expression:  t.Expression,
			Description: t.Description,
		}
	}
	return triggers
}

func (j *JobSpec) toParameters() []job.Parameter {
	if j.Parameters == nil {
		return nil
	}
	parameters := make([]job.Parameter, len(j.Parameters))
	for i, p := range j.Parameters {
		parameters[i] = job.Parameter{
			Name:        p.Name,
			Type:        p.Type,
			Value:       p.Value,
			Description: p.Description,
		}
	}
	return parameters
}

func toRepositories(repositories []string) []job.Repository {
	if repositories == nil {
		return nil
	}
	out := make([]job.Repository, len(repositories))
	for i, r := range repositories {
		out[i] = job.Repository(r)
	}
	return out
}

func toSteps(tasks []JobSpecTask) []job.Step {
	if tasks == nil {
		return nil
	}
	steps := make([]job.Step, len(tasks))
	for i, t := range tasks {
		steps[i] = job.Step{
			Kind:       job.StepKind(t.Kind),
			Command:    t.Command,
			Targets:    t.Targets,
			Properties: t.Properties,
			BuildFile:  t.BuildFile,
			AntName:    t.AntName,
			MavenName:  t.MavenName,
			Pom:        t.Pom,
			JVMOptions: t.JVMOptions,
		}
	}
	return steps
}

// FromSpec converts a job entity back into its yaml representation. The
// declared id is preferred over the sanitized one so a round trip keeps the
// file as the user wrote it.
func FromSpec(spec *job.Spec) *JobSpec {
	if spec == nil {
		return nil
	}
	id := spec.OriginalID
	if id == "" {
		id = spec.ID
	}
	j := &JobSpec{
		Version:  JobSpecVersion,
		ID:       id,
		Abstract: spec.Abstract,
		Parent:   spec.Parent,
		Override: spec.Override,

		JobType:          stringPtr(spec.JobType),
		JenkinsURL:       clone(spec.JenkinsURL),
		GenerationSource: clone(spec.GenerationSource),
		Description:      clone(spec.Description),
		DescriptionTable: clone(spec.DescriptionTable),

		SCMType:   stringPtr(spec.SCMType),
		UseUpdate: clone(spec.UseUpdate),
		DoRevert:  clone(spec.DoRevert),

		Node:                 clone(spec.Node),
		JDKName:              clone(spec.JDKName),
		AuthToken:            clone(spec.AuthToken),
		RunPostStepsIfResult: stringPtr(spec.RunPostStepsIfResult),

		SCM:           clone(spec.SCM),
		Properties:    clone(spec.Properties),
		Publishers:    clone(spec.Publishers),
		BuildWrappers: clone(spec.BuildWrappers),
		Prebuilders:   clone(spec.Prebuilders),
		Postbuilders:  clone(spec.Postbuilders),
		Process:       clone(spec.Process),

		DaysToKeep:                       clone(spec.DaysToKeep),
		NumToKeep:                        clone(spec.NumToKeep),
		BlockBuildWhenDownstreamBuilding: clone(spec.BlockBuildWhenDownstreamBuilding),
		BlockBuildWhenUpstreamBuilding:   clone(spec.BlockBuildWhenUpstreamBuilding),

		Pom:               clone(spec.Pom),
		MavenGoals:        clone(spec.MavenGoals),
		MavenName:         clone(spec.MavenName),
		MavenOpts:         clone(spec.MavenOpts),
		BuildOnSNAPSHOT:   clone(spec.BuildOnSNAPSHOT),
		PrivateRepository: clone(spec.PrivateRepository),
		ArchivingDisabled: clone(spec.ArchivingDisabled),
		Reporters:         clone(spec.Reporters),
		LocalRepoBase:     clone(spec.LocalRepoBase),
		LocalRepo:         clone(spec.LocalRepo),
	}

	if spec.Mail != nil {
		j.Mail = &JobSpecMail{
			Recipients:               spec.Mail.Recipients,
			NotifyEveryUnstableBuild: spec.Mail.NotifyEveryUnstableBuild,
			SendToIndividuals:        spec.Mail.SendToIndividuals,
		}
	}
	if spec.Invoke != nil {
		j.Invoke = &JobSpecInvoke{
			Jobs:                      spec.Invoke.Jobs,
			Threshold:                 spec.Invoke.Threshold,
			IncludeUpstreamParameters: spec.Invoke.IncludeUpstreamParameters,
		}
	}
	if spec.Deploy != nil {
		j.Deploy = &JobSpecDeploy{
			Enabled:        spec.Deploy.Enabled,
			RepositoryID:   spec.Deploy.RepositoryID,
			RepositoryURL:  spec.Deploy.RepositoryURL,
			UniqueVersion:  spec.Deploy.UniqueVersion,
			EvenIfUnstable: spec.Deploy.EvenIfUnstable,
		}
	}
	if spec.Artifactory != nil {
		j.Artifactory = &JobSpecArtifactory{
			Enabled:               spec.Artifactory.Enabled,
			ServerURL:             spec.Artifactory.ServerURL,
			RepositoryKey:         spec.Artifactory.RepositoryKey,
			SnapshotRepositoryKey: spec.Artifactory.SnapshotRepositoryKey,
			DeployArtifacts:       spec.Artifactory.DeployArtifacts,
			EvenIfUnstable:        spec.Artifactory.EvenIfUnstable,
		}
	}

	if spec.Triggers != nil {
		j.Triggers = make([]JobSpecTrigger, len(spec.Triggers))
		for i, t := range spec.Triggers {
			j.Triggers[i] = JobSpecTrigger{
				Type:        t.Type.String(),
				Expression:  t.Expression,
				Description: t.Description,
			}
		}
	}
	if spec.Parameters != nil {
		j.Parameters = make([]JobSpecParameter, len(spec.Parameters))
		for i, p := range spec.Parameters {
			j.Parameters[i] = JobSpecParameter{
				Name:        p.Name,
				Type:        p.Type,
				Value:       p.Value,
				Description: p.Description,
			}
		}
	}
	if spec.Repositories != nil {
		j.Repositories = make([]string, len(spec.Repositories))
		for i, r := range spec.Repositories {
			j.Repositories[i] = string(r)
		}
	}
	j.Tasks = fromSteps(spec.Tasks)
	j.PrebuildTasks = fromSteps(spec.PrebuildTasks)
	j.PostbuildTasks = fromSteps(spec.PostbuildTasks)

	return j
}

func fromSteps(steps []job.Step) []JobSpecTask {
	if steps == nil {
		return nil
	}
	tasks := make([]JobSpecTask, len(steps))
	for i, s := range steps {
		tasks[i] = JobSpecTask{
			Kind:       string(s.Kind),
			Command:    s.Command,
			Targets:    s.Targets,
			Properties: s.Properties,
			BuildFile:  s.BuildFile,
			AntName:    s.AntName,
			MavenName:  s.MavenName,
			Pom:        s.Pom,
			JVMOptions: s.JVMOptions,
		}
	}
	return tasks
}

func clone[V any](v *V) *V {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func enumPtr[E ~string](s *string) *E {
	if s == nil {
		return nil
	}
	e := E(*s)
	return &e
}

func stringPtr[E ~string](e *E) *string {
	if e == nil {
		return nil
	}
	s := string(*e)
	return &s
}
