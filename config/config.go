package config

import "strconv"

// Version implement fmt.Stringer
type Version int

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
	LogLevelFatal   = "fatal"
)

type LogConfig struct {
	Level  string `mapstructure:"level" default:"info"` // log level - debug, info, warning, error, fatal
	Format string `mapstructure:"format"`               // format strategy - plain, json
}

// ProjectConfig is the configuration of one generation project, read from
// jobforge.yaml next to the spec tree.
type ProjectConfig struct {
	Version Version   `mapstructure:"version"`
	Log     LogConfig `mapstructure:"log"`

	Project  Project  `mapstructure:"project"`
	Specs    Specs    `mapstructure:"specs"`
	Output   Output   `mapstructure:"output"`
	Defaults Defaults `mapstructure:"defaults"`
}

type Project struct {
	Name             string `mapstructure:"name"`
	JenkinsURL       string `mapstructure:"jenkins_url"`       // server the generated jobs are meant for
	GenerationSource string `mapstructure:"generation_source"` // recorded in generated files, e.g. the SCM url of the specs
	Home             string `mapstructure:"home"`              // home directory on the build agents
}

type Specs struct {
	Path string `mapstructure:"path"` // directory to find job declarations
}

type Output struct {
	Path string `mapstructure:"path"` // directory to write generated configurations
}

// Defaults override the built in values seeded into every root job.
type Defaults struct {
	JobType    string `mapstructure:"job_type"`
	SCMType    string `mapstructure:"scm_type"`
	Node       string `mapstructure:"node"`
	JDKName    string `mapstructure:"jdk_name"`
	DaysToKeep int    `mapstructure:"days_to_keep"`
	NumToKeep  int    `mapstructure:"num_to_keep"`
}
