package cmd

import (
	cli "github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/jobforge/jobforge/internal/lib/tree"
	"github.com/jobforge/jobforge/job"
)

func listCommand() *cli.Command {
	var configFilePath string

	cmd := &cli.Command{
		Use:     "list",
		Short:   "Show the inheritance tree of all jobs in the project",
		Example: "jobforge list",
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
		inheritanceTree, err := projectResolver(conf).Tree(specs)
		if err != nil {
			return err
		}

		index := make(map[string]*job.Spec, len(specs))
		for _, spec := range specs {
			index[spec.ID] = spec
		}

		printedTree := treeprint.NewWithRoot(conf.Project.Name)
		for _, root := range inheritanceTree.GetRootNodes() {
			addInheritanceBranch(printedTree, root, index)
		}
		l.Info(printedTree.String())
		return nil
	}
	return cmd
}

func addInheritanceBranch(parent treeprint.Tree, node *tree.TreeNode, index map[string]*job.Spec) {
	label := node.GetName()
	if spec, ok := index[node.GetName()]; ok && spec.Abstract {
		label += " (abstract)"
	}
	branch := parent.AddBranch(label)
	for _, child := range node.Dependents {
		addInheritanceBranch(branch, child, index)
	}
}
