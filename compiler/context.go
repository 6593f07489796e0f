package compiler

import (
	"github.com/jobforge/jobforge/config"
	"github.com/jobforge/jobforge/job"
)

// TemplateContext is the flattened, fully resolved view of a job handed to
// the configuration templates. Values are plain strings, bools and ints so
// the templates never dereference pointers.
type TemplateContext struct {
	Version string

	Description      string
	GenerationSource string

	SCMType   string
	SCMClass  string
	SCM       string
	UseUpdate bool
	DoRevert  bool

	Node      string
	JDKName   string
	AuthToken string

	Properties    string
	Publishers    string
	BuildWrappers string
	Prebuilders   string
	Postbuilders  string
	Process       string
	Reporters     string

	DaysToKeep                       int
	NumToKeep                        int
	BlockBuildWhenDownstreamBuilding bool
	BlockBuildWhenUpstreamBuilding   bool

	Pom               string
	MavenGoals        string
	MavenName         string
	MavenOpts         string
	BuildOnSNAPSHOT   bool
	PrivateRepository bool
	ArchivingDisabled bool

	PostStepsName    string
	PostStepsOrdinal int
	PostStepsColor   string

	Mail        *job.MailSpec
	Invoke      *job.InvokeSpec
	Deploy      *job.DeploySpec
	Artifactory *job.ArtifactorySpec

	Repositories   []string
	Triggers       []TriggerContext
	Parameters     []job.Parameter
	Tasks          []job.Step
	PrebuildTasks  []job.Step
	PostbuildTasks []job.Step
}

// TriggerContext is one trigger with its type already mapped to the
// scheduler implementation class.
type TriggerContext struct {
	Class      string
	Expression string
}

func buildTemplateContext(spec *job.Spec) TemplateContext {
	description := strVal(spec.Description)
	if table := strVal(spec.DescriptionTable); table != "" {
		if description != "" {
			description += "\n"
		}
		description += table
	}

	repositories := make([]string, len(spec.Repositories))
	for i, r := range spec.Repositories {
		repositories[i] = string(r)
	}

	triggers := make([]TriggerContext, len(spec.Triggers))
	for i, t := range spec.Triggers {
		triggers[i] = TriggerContext{
			Class:      t.Type.Class(),
			Expression: t.Expression,
		}
	}

	scmType := job.DefaultSCMType
	if spec.SCMType != nil {
		scmType = *spec.SCMType
	}
	postSteps := job.DefaultPostSteps
	if spec.RunPostStepsIfResult != nil {
		postSteps = *spec.RunPostStepsIfResult
	}

	return TemplateContext{
		Version: config.BuildVersion,

		Description:      description,
		GenerationSource: strVal(spec.GenerationSource),

		SCMType:   scmType.String(),
		SCMClass:  strVal(spec.SCMClass),
		SCM:       strVal(spec.SCM),
		UseUpdate: boolVal(spec.UseUpdate),
		DoRevert:  boolVal(spec.DoRevert),

		Node:      strVal(spec.Node),
		JDKName:   strVal(spec.JDKName),
		AuthToken: strVal(spec.AuthToken),

		Properties:    strVal(spec.Properties),
		Publishers:    strVal(spec.Publishers),
		BuildWrappers: strVal(spec.BuildWrappers),
		Prebuilders:   strVal(spec.Prebuilders),
		Postbuilders:  strVal(spec.Postbuilders),
		Process:       strVal(spec.Process),
		Reporters:     strVal(spec.Reporters),

		DaysToKeep:                       intVal(spec.DaysToKeep),
		NumToKeep:                        intVal(spec.NumToKeep),
		BlockBuildWhenDownstreamBuilding: boolVal(spec.BlockBuildWhenDownstreamBuilding),
		BlockBuildWhenUpstreamBuilding:   boolVal(spec.BlockBuildWhenUpstreamBuilding),

		Pom:               strVal(spec.Pom),
		MavenGoals:        strVal(spec.MavenGoals),
		MavenName:         strVal(spec.MavenName),
		MavenOpts:         strVal(spec.MavenOpts),
		BuildOnSNAPSHOT:   boolVal(spec.BuildOnSNAPSHOT),
		PrivateRepository: boolVal(spec.PrivateRepository),
		ArchivingDisabled: boolVal(spec.ArchivingDisabled),

		PostStepsName:    postSteps.ThresholdName(),
		PostStepsOrdinal: postSteps.Ordinal(),
		PostStepsColor:   postSteps.Color(),

		Mail:        spec.Mail,
		Invoke:      spec.Invoke,
		Deploy:      spec.Deploy,
		Artifactory: spec.Artifactory,

		Repositories:   repositories,
		Triggers:       triggers,
		Parameters:     spec.Parameters,
		Tasks:          spec.Tasks,
		PrebuildTasks:  spec.PrebuildTasks,
		PostbuildTasks: spec.PostbuildTasks,
	}
}

func strVal(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func boolVal(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func intVal(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
