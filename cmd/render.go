package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	cli "github.com/spf13/cobra"

	"github.com/jobforge/jobforge/compiler"
	"github.com/jobforge/jobforge/internal/errors"
	"github.com/jobforge/jobforge/job"
)

func renderCommand() *cli.Command {
	var configFilePath string

	cmd := &cli.Command{
		Use:     "render [job]",
		Short:   "Write the scheduler configuration of one job to stdout",
		Args:    cli.MaximumNArgs(1),
		Example: "jobforge render app-service",
	}
	cmd.Flags().StringVarP(&configFilePath, "config", "c", configFilePath, "File path for project configuration")

	cmd.RunE = func(c *cli.Command, args []string) error {
		conf, err := loadProjectConfig(configFilePath)
		if err != nil {
			return err
		}
		l := initClientLogger(conf.Log)

		specs, err := readJobSpecs(conf)
		if err != nil {
			return err
		}
		resolved, err := projectResolver(conf).Resolve(specs)
		if err != nil {
			return err
		}

		var jobName string
		if len(args) == 0 {
			if jobName, err = selectJobSurvey(resolved); err != nil {
				return err
			}
		} else {
			jobName = args[0]
		}

		spec := findSpecByName(resolved, jobName)
		if spec == nil {
			return errors.NotFound(job.EntityJob, fmt.Sprintf("job %s is not found", jobName))
		}

		jobCompiler, err := compiler.NewCompiler()
		if err != nil {
			return err
		}
		file, err := jobCompiler.Compile(spec)
		if err != nil {
			return err
		}

		l.Info(string(file.Content))
		return nil
	}
	return cmd
}

func findSpecByName(specs []*job.Spec, name string) *job.Spec {
	for _, spec := range specs {
		if spec.ID == name || spec.OriginalID == name {
			return spec
		}
	}
	return nil
}

// selectJobSurvey runs a survey to select a job and returns its name
func selectJobSurvey(specs []*job.Spec) (string, error) {
	allJobNames := make([]string, 0, len(specs))
	for _, spec := range specs {
		allJobNames = append(allJobNames, spec.ID)
	}
	selectedJob := ""
	if err := survey.AskOne(&survey.Select{
		Message: "Select a job",
		Options: allJobNames,
	}, &selectedJob); err != nil {
		return "", err
	}
	return selectedJob, nil
}
