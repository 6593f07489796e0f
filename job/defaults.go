package job

const (
	DefaultJobType    = JobTypeMaven
	DefaultSCMType    = SCMTypeSVN
	DefaultNode       = "master"
	DefaultJDKName    = "(Default)"
	DefaultPostSteps  = PostStepsAlways
	DefaultPom        = "pom.xml"
	DefaultMavenGoals = "-B -e clean install"
	DefaultMavenName  = "(Default)"
	DefaultDaysToKeep = -1
	DefaultNumToKeep  = -1
)

// BaseOption adjusts the base spec the resolver extends every root
// against.
type BaseOption func(*Spec)

func WithJobType(t JobType) BaseOption {
	return func(s *Spec) { s.JobType = &t }
}

func WithSCMType(t SCMType) BaseOption {
	return func(s *Spec) { s.SCMType = &t }
}

func WithNode(node string) BaseOption {
	return func(s *Spec) { s.Node = &node }
}

func WithJDKName(name string) BaseOption {
	return func(s *Spec) { s.JDKName = &name }
}

func WithRetention(daysToKeep, numToKeep int) BaseOption {
	return func(s *Spec) {
		s.DaysToKeep = &daysToKeep
		s.NumToKeep = &numToKeep
	}
}

func WithJenkinsURL(url string) BaseOption {
	return func(s *Spec) { s.JenkinsURL = &url }
}

func WithGenerationSource(source string) BaseOption {
	return func(s *Spec) { s.GenerationSource = &source }
}

// NewBaseSpec returns the spec every inheritance chain ultimately extends.
// All engine defaults live here so a root job materializes the same way a
// child does, by merging against its parent.
func NewBaseSpec(opts ...BaseOption) *Spec {
	jobType := DefaultJobType
	jenkinsURL := ""
	generationSource := ""
	description := ""
	descriptionTable := ""
	scmType := DefaultSCMType
	scmClass := scmClasses[DefaultSCMType]
	useUpdate := false
	doRevert := false
	node := DefaultNode
	jdkName := DefaultJDKName
	authToken := ""
	postSteps := DefaultPostSteps
	scm := ""
	properties := ""
	publishers := ""
	buildWrappers := ""
	prebuilders := ""
	postbuilders := ""
	process := ""
	daysToKeep := DefaultDaysToKeep
	numToKeep := DefaultNumToKeep
	blockDownstream := false
	blockUpstream := false
	pom := DefaultPom
	mavenGoals := DefaultMavenGoals
	mavenName := DefaultMavenName
	mavenOpts := ""
	buildOnSNAPSHOT := false
	privateRepository := false
	archivingDisabled := false
	reporters := ""
	localRepoBase := ""
	localRepo := ""

	base := &Spec{
		JobType:          &jobType,
		JenkinsURL:       &jenkinsURL,
		GenerationSource: &generationSource,
		Description:      &description,
		DescriptionTable: &descriptionTable,

		SCMType:   &scmType,
		SCMClass:  &scmClass,
		UseUpdate: &useUpdate,
		DoRevert:  &doRevert,

		Node:                 &node,
		JDKName:              &jdkName,
		AuthToken:            &authToken,
		RunPostStepsIfResult: &postSteps,

		SCM:           &scm,
		Properties:    &properties,
		Publishers:    &publishers,
		BuildWrappers: &buildWrappers,
		Prebuilders:   &prebuilders,
		Postbuilders:  &postbuilders,
		Process:       &process,

		DaysToKeep:                       &daysToKeep,
		NumToKeep:                        &numToKeep,
		BlockBuildWhenDownstreamBuilding: &blockDownstream,
		BlockBuildWhenUpstreamBuilding:   &blockUpstream,

		Pom:               &pom,
		MavenGoals:        &mavenGoals,
		MavenName:         &mavenName,
		MavenOpts:         &mavenOpts,
		BuildOnSNAPSHOT:   &buildOnSNAPSHOT,
		PrivateRepository: &privateRepository,
		ArchivingDisabled: &archivingDisabled,
		Reporters:         &reporters,
		LocalRepoBase:     &localRepoBase,
		LocalRepo:         &localRepo,

		Mail:        &MailSpec{},
		Invoke:      &InvokeSpec{},
		Deploy:      &DeploySpec{},
		Artifactory: &ArtifactorySpec{},
	}
	for _, opt := range opts {
		opt(base)
	}
	if class, err := base.SCMType.Class(); err == nil {
		base.SCMClass = &class
	}
	return base
}
