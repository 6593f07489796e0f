package cmd

import (
	"github.com/spf13/afero"

	"github.com/jobforge/jobforge/config"
	"github.com/jobforge/jobforge/job"
	"github.com/jobforge/jobforge/store/local"
)

func loadProjectConfig(configFilePath string) (*config.ProjectConfig, error) {
	conf, err := config.LoadProjectConfig(configFilePath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// projectBaseSpec turns the configured project defaults into the base spec
// every root job extends.
func projectBaseSpec(conf *config.ProjectConfig) *job.Spec {
	opts := make([]job.BaseOption, 0)
	if conf.Project.JenkinsURL != "" {
		opts = append(opts, job.WithJenkinsURL(conf.Project.JenkinsURL))
	}
	if conf.Project.GenerationSource != "" {
		opts = append(opts, job.WithGenerationSource(conf.Project.GenerationSource))
	}
	if conf.Defaults.JobType != "" {
		opts = append(opts, job.WithJobType(job.JobType(conf.Defaults.JobType)))
	}
	if conf.Defaults.SCMType != "" {
		opts = append(opts, job.WithSCMType(job.SCMType(conf.Defaults.SCMType)))
	}
	if conf.Defaults.Node != "" {
		opts = append(opts, job.WithNode(conf.Defaults.Node))
	}
	if conf.Defaults.JDKName != "" {
		opts = append(opts, job.WithJDKName(conf.Defaults.JDKName))
	}
	daysToKeep, numToKeep := job.DefaultDaysToKeep, job.DefaultNumToKeep
	if conf.Defaults.DaysToKeep != 0 {
		daysToKeep = conf.Defaults.DaysToKeep
	}
	if conf.Defaults.NumToKeep != 0 {
		numToKeep = conf.Defaults.NumToKeep
	}
	if daysToKeep != job.DefaultDaysToKeep || numToKeep != job.DefaultNumToKeep {
		opts = append(opts, job.WithRetention(daysToKeep, numToKeep))
	}
	return job.NewBaseSpec(opts...)
}

func projectResolver(conf *config.ProjectConfig) *job.Resolver {
	return job.NewResolver(projectBaseSpec(conf), conf.Project.Home)
}

// readJobSpecs loads every declaration under the configured specs path and
// adapts it to an engine spec.
func readJobSpecs(conf *config.ProjectConfig) ([]*job.Spec, error) {
	specReadWriter, err := local.NewJobSpecReadWriter(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	jobSpecs, err := specReadWriter.ReadAll(conf.Specs.Path)
	if err != nil {
		return nil, err
	}
	specs := make([]*job.Spec, len(jobSpecs))
	for i, jobSpec := range jobSpecs {
		if specs[i], err = jobSpec.ToSpec(); err != nil {
			return nil, err
		}
	}
	return specs, nil
}
