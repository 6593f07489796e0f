package cmd

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	cli "github.com/spf13/cobra"

	"github.com/jobforge/jobforge/internal/utils"
	"github.com/jobforge/jobforge/job"
	"github.com/jobforge/jobforge/store/local"
	"github.com/jobforge/jobforge/store/local/model"
)

var (
	validateNoSlash = utils.ValidatorFactory.NewFromRegex(`^[^/]+$`, "`/` is disallowed")
	validateJobID   = utils.ValidatorFactory.NewFromRegex(`^[a-zA-Z0-9][a-zA-Z0-9 _\-.]*$`,
		`invalid id (can only contain characters A-Z (in either case), 0-9, " ", "-", "_" or "." and must start with an alphanumeric character)`)
	validateJobName = survey.ComposeValidators(validateNoSlash, validateJobID, survey.MinLength(3),
		survey.MaxLength(255))
)

func initCommand() *cli.Command {
	var configFilePath string

	cmd := &cli.Command{
		Use:     "init",
		Short:   "Declare a new job in the project interactively",
		Example: "jobforge init",
	}
	cmd.Flags().StringVarP(&configFilePath, "config", "c", configFilePath, "File path for project configuration")

	cmd.RunE = func(c *cli.Command, args []string) error {
		conf, err := loadProjectConfig(configFilePath)
		if err != nil {
			return err
		}
		l := initClientLogger(conf.Log)

		specReadWriter, err := local.NewJobSpecReadWriter(afero.NewOsFs())
		if err != nil {
			return err
		}

		var existing []*model.JobSpec
		specsDirOccupied, err := utils.IsPathOccupied(conf.Specs.Path)
		if err != nil {
			return err
		}
		if specsDirOccupied {
			if existing, err = specReadWriter.ReadAll(conf.Specs.Path); err != nil {
				return err
			}
		}

		jobSpec, err := askCreateQuestions(existing)
		if err != nil {
			return err
		}

		sanitizedID, err := job.SanitizeID(jobSpec.ID)
		if err != nil {
			return err
		}
		dirPath := filepath.Join(conf.Specs.Path, sanitizedID)
		occupied, err := utils.IsPathOccupied(dirPath)
		if err != nil {
			return err
		}
		if occupied {
			return fmt.Errorf("directory %s already exists", dirPath)
		}

		if err := specReadWriter.Write(dirPath, jobSpec); err != nil {
			return err
		}
		l.Info(coloredSuccess("Job %s created at %s", jobSpec.ID, dirPath))
		return nil
	}
	return cmd
}

func askCreateQuestions(existing []*model.JobSpec) (*model.JobSpec, error) {
	existingIDs := make([]string, 0, len(existing))
	for _, spec := range existing {
		existingIDs = append(existingIDs, spec.ID)
	}

	qs := []*survey.Question{
		{
			Name: "id",
			Prompt: &survey.Input{
				Message: "What is the job id?",
				Help:    "It is used as the job name and as the directory of the declaration",
			},
			Validate: survey.ComposeValidators(validateJobName, isJobIDUnique(existing)),
		},
		{
			Name: "jobType",
			Prompt: &survey.Select{
				Message: "What type of job is this?",
				Options: []string{job.JobTypeMaven.String(), job.JobTypeFree.String()},
				Default: job.JobTypeMaven.String(),
			},
			Validate: survey.Required,
		},
		{
			Name: "abstract",
			Prompt: &survey.Confirm{
				Message: "Is this an abstract job, only inherited from?",
				Default: false,
			},
		},
	}
	if len(existingIDs) > 0 {
		qs = append(qs, &survey.Question{
			Name: "parent",
			Prompt: &survey.Select{
				Message: "Which job does it extend?",
				Options: append([]string{"none"}, existingIDs...),
				Default: "none",
			},
		})
	}

	inputsRaw := make(map[string]interface{})
	if err := survey.Ask(qs, &inputsRaw); err != nil {
		return nil, err
	}
	inputs, err := utils.ConvertToStringMap(inputsRaw)
	if err != nil {
		return nil, err
	}

	abstract, _ := strconv.ParseBool(inputs["abstract"])
	jobType := inputs["jobType"]
	jobSpec := &model.JobSpec{
		Version:  model.JobSpecVersion,
		ID:       inputs["id"],
		Abstract: abstract,
		JobType:  &jobType,
	}
	if parent := inputs["parent"]; parent != "" && parent != "none" {
		jobSpec.Parent = parent
	}
	return jobSpec, nil
}

// isJobIDUnique returns a validator that checks if a job already exists
// with the same or an equivalent sanitized id
func isJobIDUnique(existing []*model.JobSpec) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("invalid type of job id %v", reflect.TypeOf(val).Name())
		}
		sanitized, err := job.SanitizeID(str)
		if err != nil {
			return err
		}
		for _, spec := range existing {
			if spec.ID == str {
				return fmt.Errorf("job with the provided id already exists")
			}
			if existingID, err := job.SanitizeID(spec.ID); err == nil && existingID == sanitized {
				return fmt.Errorf("job with the provided id already exists")
			}
		}
		return nil
	}
}
