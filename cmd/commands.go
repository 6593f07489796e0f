package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/odpf/salt/cmdx"
	cli "github.com/spf13/cobra"
)

var (
	disableColoredOut = false

	// colored print
	coloredNotice  = fmt.Sprintf
	coloredError   = fmt.Sprintf
	coloredSuccess = fmt.Sprintf
)

// New constructs the 'root' command. It houses all other sub commands
// default output of logging should go to stdout
// interactive output like progress bars should go to stderr
// unless the stdout/err is a tty, colors/progressbar should be disabled
func New() *cli.Command {
	cmd := &cli.Command{
		Use: "jobforge <command> [flags]",
		Long: heredoc.Doc(`
			Jobforge generates Jenkins job configurations from declarative job
			specs. Jobs declare a parent to inherit shared settings from, so a
			project's conventions live in one place.`),
		SilenceUsage: true,
		Example: heredoc.Doc(`
				$ jobforge init
				$ jobforge validate
				$ jobforge generate
			`),
		Annotations: map[string]string{
			"group:core": "true",
			"help:learn": heredoc.Doc(`
				Use 'jobforge <command> --help' for more information about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/jobforge/jobforge/issues
			`),
		},
		PersistentPreRun: func(cmd *cli.Command, args []string) {
			// initialise color if not requested to be disabled
			if !disableColoredOut {
				coloredNotice = color.New(color.Bold, color.FgCyan).SprintfFunc()
				coloredError = color.New(color.Bold, color.FgHiRed).SprintfFunc()
				coloredSuccess = color.New(color.Bold, color.FgHiGreen).SprintfFunc()
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&disableColoredOut, "no-color", disableColoredOut, "Disable colored output")

	cmdx.SetHelp(cmd)

	cmd.AddCommand(
		generateCommand(),
		initCommand(),
		listCommand(),
		renderCommand(),
		validateCommand(),
		versionCommand(),
	)
	return cmd
}
