package job

import (
	"fmt"
	"strings"

	"github.com/jobforge/jobforge/internal/errors"
)

type StepKind string

const (
	StepKindShell StepKind = "shell"
	StepKindBatch StepKind = "batch"
	StepKindAnt   StepKind = "ant"
	StepKindMaven StepKind = "maven"
)

var hudsonTaskClasses = map[StepKind]string{
	StepKindShell: "Shell",
	StepKindBatch: "BatchFile",
	StepKindAnt:   "Ant",
	StepKindMaven: "Maven",
}

func (k StepKind) String() string {
	return string(k)
}

func (k StepKind) IsValid() bool {
	_, ok := hudsonTaskClasses[k]
	return ok
}

// Step is one build task of a job. Which fields carry meaning depends on
// the kind; Markup only emits the ones that do.
type Step struct {
	Kind       StepKind
	Command    string
	Targets    string
	Properties string
	BuildFile  string
	AntName    string
	MavenName  string
	Pom        string
	JVMOptions string
}

// HudsonClass returns the builder implementation class for this step kind.
func (s Step) HudsonClass() string {
	class, ok := hudsonTaskClasses[s.Kind]
	if !ok {
		return ""
	}
	return "hudson.tasks." + class
}

type stepProperty struct {
	name  string
	value string
}

func (s Step) stepProperties() []stepProperty {
	switch s.Kind {
	case StepKindShell, StepKindBatch:
		return []stepProperty{
			{name: "command", value: s.Command},
		}
	case StepKindAnt:
		return []stepProperty{
			{name: "targets", value: s.Targets},
			{name: "antName", value: nameOrDefault(s.AntName)},
			{name: "buildFile", value: s.BuildFile},
			{name: "properties", value: s.Properties},
		}
	case StepKindMaven:
		return []stepProperty{
			{name: "targets", value: s.Targets},
			{name: "mavenName", value: nameOrDefault(s.MavenName)},
			{name: "pom", value: s.Pom},
			{name: "properties", value: s.Properties},
			{name: "jvmOptions", value: s.JVMOptions},
		}
	}
	return nil
}

func nameOrDefault(name string) string {
	if name == "" {
		return "(Default)"
	}
	return name
}

// Markup renders the inner elements of the step node, one tag per
// property that still has content after trimming, indented to sit inside
// the builders block.
func (s Step) Markup() string {
	lines := make([]string, 0, 5)
	for _, p := range s.stepProperties() {
		value := strings.TrimSpace(p.value)
		if value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("        <%s>%s</%s>", p.name, value, p.name))
	}
	return strings.Join(lines, "\n")
}

func (s Step) Validate() error {
	if !s.Kind.IsValid() {
		return errors.InvalidArgument(EntityJob, "unknown step kind "+string(s.Kind))
	}
	switch s.Kind {
	case StepKindShell, StepKindBatch:
		if strings.TrimSpace(s.Command) == "" {
			return errors.InvalidArgument(EntityJob, string(s.Kind)+" step needs a command")
		}
	case StepKindAnt:
		if strings.TrimSpace(s.Targets) == "" && strings.TrimSpace(s.BuildFile) == "" {
			return errors.InvalidArgument(EntityJob, "ant step needs targets or a build file")
		}
	case StepKindMaven:
		if strings.TrimSpace(s.Targets) == "" {
			return errors.InvalidArgument(EntityJob, "maven step needs targets")
		}
	}
	return nil
}
