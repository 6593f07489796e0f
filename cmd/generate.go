package cmd

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kushsharma/parallel"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	cli "github.com/spf13/cobra"

	"github.com/jobforge/jobforge/compiler"
	"github.com/jobforge/jobforge/job"
)

const (
	concurrentTicketPerSec = 5
	concurrentLimit        = 20
)

func generateCommand() *cli.Command {
	var configFilePath string
	var outputPath string

	cmd := &cli.Command{
		Use:     "generate",
		Short:   "Generate scheduler configuration files for all jobs",
		Long:    "Resolve every job declaration in the project and write one config.xml per concrete job",
		Example: "jobforge generate",
	}
	cmd.Flags().StringVarP(&configFilePath, "config", "c", configFilePath, "File path for project configuration")
	cmd.Flags().StringVarP(&outputPath, "output", "o", outputPath, "Directory to write generated configurations, overrides the project setting")

	cmd.RunE = func(c *cli.Command, args []string) error {
		conf, err := loadProjectConfig(configFilePath)
		if err != nil {
			return err
		}
		l := initClientLogger(conf.Log)
		if outputPath == "" {
			outputPath = conf.Output.Path
		}

		start := time.Now()
		specs, err := readJobSpecs(conf)
		if err != nil {
			return err
		}
		l.Info(fmt.Sprintf("Resolving %d job specifications from %s", len(specs), conf.Specs.Path))

		resolved, err := projectResolver(conf).Resolve(specs)
		if err != nil {
			return err
		}

		jobCompiler, err := compiler.NewCompiler()
		if err != nil {
			return err
		}

		spinner := NewProgressBar()
		spinner.Start("compiling jobs...")
		outputFS := afero.NewOsFs()
		runner := parallel.NewRunner(parallel.WithLimit(concurrentLimit), parallel.WithTicket(concurrentTicketPerSec))
		for _, spec := range resolved {
			runner.Add(func(s *job.Spec) func() (interface{}, error) {
				return func() (interface{}, error) {
					file, err := jobCompiler.Compile(s)
					if err != nil {
						return nil, err
					}
					if err := compiler.WriteFile(outputFS, outputPath, file); err != nil {
						return nil, err
					}
					return file.Name, nil
				}
			}(spec))
		}
		states := runner.Run()
		spinner.Stop()

		var errorSet error
		table := tablewriter.NewWriter(l.Writer())
		table.SetBorder(false)
		table.SetHeader([]string{"Job", "Status"})
		for i, state := range states {
			if state.Err != nil {
				errorSet = multierror.Append(errorSet, state.Err)
				table.Append([]string{resolved[i].ID, coloredError("failed")})
				continue
			}
			table.Append([]string{resolved[i].ID, coloredSuccess("compiled")})
		}
		table.Render()
		l.Info("")

		if errorSet != nil {
			return errorSet
		}
		l.Info(coloredSuccess("Compiled %d jobs to %s, took %s", len(resolved), outputPath, time.Since(start).Round(time.Second)))
		return nil
	}
	return cmd
}
