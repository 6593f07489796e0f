package cmd

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	cli "github.com/spf13/cobra"

	"github.com/jobforge/jobforge/job"
)

func validateCommand() *cli.Command {
	var configFilePath string
	var verbose bool

	cmd := &cli.Command{
		Use:     "validate",
		Short:   "Run basic checks on all jobs",
		Long:    "Check if job declarations resolve into valid configurations",
		Example: "jobforge validate",
	}
	cmd.Flags().StringVarP(&configFilePath, "config", "c", configFilePath, "File path for project configuration")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print details related to operation")

	cmd.RunE = func(c *cli.Command, args []string) error {
		conf, err := loadProjectConfig(configFilePath)
		if err != nil {
			return err
		}
		l := initClientLogger(conf.Log)

		l.Info(fmt.Sprintf("Validating job specifications for project: %s", conf.Project.Name))
		start := time.Now()

		specs, err := readJobSpecs(conf)
		if err != nil {
			return err
		}

		base := projectBaseSpec(conf)
		inheritanceTree, err := job.NewResolver(base, conf.Project.Home).Tree(specs)
		if err != nil {
			return err
		}
		index := make(map[string]*job.Spec, len(specs))
		for _, spec := range specs {
			index[spec.ID] = spec
		}

		spinner := NewProgressBar()
		if !verbose {
			spinner.StartProgress(len(specs), "validating jobs")
		}

		var errorSet error
		checked := 0
		rows := make([][]string, 0, len(specs))
		for _, root := range inheritanceTree.GetRootNodes() {
			for _, node := range root.GetAllNodes() {
				spec := index[node.GetName()]
				parent := base
				if spec.Parent != "" {
					parent = index[spec.Parent]
				}
				err := resolveSpec(spec, parent, conf.Project.Home)
				checked++
				spinner.SetProgress(checked)
				if err != nil {
					errorSet = multierror.Append(errorSet, err)
					rows = append(rows, []string{spec.ID, coloredError("FAILED")})
					if verbose {
						l.Error(fmt.Sprintf("%d/%d. failed to validate: %s, %s", checked, len(specs), spec.ID, err))
					}
					continue
				}
				status := coloredSuccess("OK")
				if spec.Abstract {
					status = coloredNotice("OK (abstract)")
				}
				rows = append(rows, []string{spec.ID, status})
				if verbose {
					l.Info(fmt.Sprintf("%d/%d. %s successfully checked", checked, len(specs), spec.ID))
				}
			}
		}
		spinner.Stop()

		table := tablewriter.NewWriter(l.Writer())
		table.SetBorder(false)
		table.SetHeader([]string{"Job", "Status"})
		table.AppendBulk(rows)
		table.Render()
		l.Info("")

		if errorSet != nil {
			l.Error(coloredError("Validation finished with failures"))
			return errorSet
		}
		l.Info(coloredSuccess("Jobs validated successfully, took %s", time.Since(start).Round(time.Second)))
		return nil
	}
	return cmd
}

// resolveSpec runs one spec through the same pipeline the resolver uses,
// parents are visited ahead of their children so the parent passed in is
// already merged.
func resolveSpec(spec, parent *job.Spec, home string) error {
	if err := spec.MergeFrom(parent); err != nil {
		return err
	}
	if err := spec.RewriteMavenGoals(home); err != nil {
		return err
	}
	return spec.Validate()
}
