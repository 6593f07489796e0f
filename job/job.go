package job

const EntityJob = "job"

// Spec is a single job configuration. Inheritable fields are pointers so
// that a value left out of the declaration (nil) can be told apart from a
// value set to the type's zero. After resolution every inheritable pointer
// is non nil.
type Spec struct {
	ID         string
	OriginalID string
	Abstract   bool
	Parent     string
	Override   bool

	JobType          *JobType
	JenkinsURL       *string
	GenerationSource *string
	Description      *string
	DescriptionTable *string

	SCMType   *SCMType
	SCMClass  *string
	UseUpdate *bool
	DoRevert  *bool

	Node                 *string
	JDKName              *string
	AuthToken            *string
	RunPostStepsIfResult *PostStepsResult

	SCM           *string
	Properties    *string
	Publishers    *string
	BuildWrappers *string
	Prebuilders   *string
	Postbuilders  *string
	Process       *string

	DaysToKeep                       *int
	NumToKeep                        *int
	BlockBuildWhenDownstreamBuilding *bool
	BlockBuildWhenUpstreamBuilding   *bool

	Pom               *string
	MavenGoals        *string
	MavenName         *string
	MavenOpts         *string
	BuildOnSNAPSHOT   *bool
	PrivateRepository *bool
	ArchivingDisabled *bool
	Reporters         *string
	LocalRepoBase     *string
	LocalRepo         *string

	// LocalRepoPath is computed by the maven goals rewrite, never declared.
	LocalRepoPath string

	Mail        *MailSpec
	Invoke      *InvokeSpec
	Deploy      *DeploySpec
	Artifactory *ArtifactorySpec

	Triggers       []Trigger
	Parameters     []Parameter
	Repositories   []Repository
	Tasks          []Step
	PrebuildTasks  []Step
	PostbuildTasks []Step
}

// New creates a spec from a declared identifier. The identifier is
// sanitized and the declared form is kept aside.
func New(id string) (*Spec, error) {
	sanitized, err := SanitizeID(id)
	if err != nil {
		return nil, err
	}
	return &Spec{
		ID:         sanitized,
		OriginalID: id,
	}, nil
}

type MailSpec struct {
	Recipients               string
	NotifyEveryUnstableBuild bool
	SendToIndividuals        bool
}

func (m *MailSpec) Active() bool {
	return m != nil && m.Recipients != ""
}

type InvokeSpec struct {
	Jobs                      string
	Threshold                 string
	IncludeUpstreamParameters bool
}

func (i *InvokeSpec) Active() bool {
	return i != nil && i.Jobs != ""
}

type DeploySpec struct {
	Enabled        bool
	RepositoryID   string
	RepositoryURL  string
	UniqueVersion  bool
	EvenIfUnstable bool
}

func (d *DeploySpec) Active() bool {
	return d != nil && d.Enabled
}

type ArtifactorySpec struct {
	Enabled               bool
	ServerURL             string
	RepositoryKey         string
	SnapshotRepositoryKey string
	DeployArtifacts       bool
	EvenIfUnstable        bool
}

func (a *ArtifactorySpec) Active() bool {
	return a != nil && a.Enabled
}

type Trigger struct {
	Type        TriggerType
	Expression  string
	Description string
}

type Parameter struct {
	Name        string
	Type        string
	Value       string
	Description string
}

type Repository string
