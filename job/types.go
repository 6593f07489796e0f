package job

import (
	"github.com/jobforge/jobforge/internal/errors"
)

type JobType string

const (
	JobTypeFree  JobType = "free"
	JobTypeMaven JobType = "maven"
)

func (t JobType) String() string {
	return string(t)
}

func (t JobType) IsValid() bool {
	return t == JobTypeFree || t == JobTypeMaven
}

type SCMType string

const (
	SCMTypeNone SCMType = "none"
	SCMTypeCVS  SCMType = "cvs"
	SCMTypeSVN  SCMType = "svn"
	SCMTypeGit  SCMType = "git"
)

var scmClasses = map[SCMType]string{
	SCMTypeNone: "hudson.scm.NullSCM",
	SCMTypeCVS:  "hudson.scm.CVSSCM",
	SCMTypeSVN:  "hudson.scm.SubversionSCM",
	SCMTypeGit:  "hudson.plugins.git.GitSCM",
}

func (s SCMType) String() string {
	return string(s)
}

func (s SCMType) IsValid() bool {
	_, ok := scmClasses[s]
	return ok
}

// Class returns the Jenkins SCM implementation class backing this type.
func (s SCMType) Class() (string, error) {
	class, ok := scmClasses[s]
	if !ok {
		return "", errors.InvalidArgument(EntityJob, "unknown scm type "+string(s))
	}
	return class, nil
}

// PostStepsResult names the worst build result that still runs post steps.
type PostStepsResult string

const (
	PostStepsOnSuccess  PostStepsResult = "success"
	PostStepsOnUnstable PostStepsResult = "unstable"
	PostStepsAlways     PostStepsResult = "all"
)

type threshold struct {
	name    string
	ordinal int
	color   string
}

var postStepsThresholds = map[PostStepsResult]threshold{
	PostStepsOnSuccess:  {name: "SUCCESS", ordinal: 0, color: "BLUE"},
	PostStepsOnUnstable: {name: "UNSTABLE", ordinal: 1, color: "YELLOW"},
	PostStepsAlways:     {name: "FAILURE", ordinal: 2, color: "RED"},
}

func (r PostStepsResult) String() string {
	return string(r)
}

func (r PostStepsResult) IsValid() bool {
	_, ok := postStepsThresholds[r]
	return ok
}

func (r PostStepsResult) ThresholdName() string {
	return postStepsThresholds[r].name
}

func (r PostStepsResult) Ordinal() int {
	return postStepsThresholds[r].ordinal
}

func (r PostStepsResult) Color() string {
	return postStepsThresholds[r].color
}

type TriggerType string

const (
	TriggerTimer      TriggerType = "timer"
	TriggerSCMPolling TriggerType = "scm-polling"
)

var triggerClasses = map[TriggerType]string{
	TriggerTimer:      "hudson.triggers.TimerTrigger",
	TriggerSCMPolling: "hudson.triggers.SCMTrigger",
}

func (t TriggerType) String() string {
	return string(t)
}

func (t TriggerType) IsValid() bool {
	_, ok := triggerClasses[t]
	return ok
}

func (t TriggerType) Class() string {
	return triggerClasses[t]
}
