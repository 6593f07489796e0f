package cmd

import (
	"fmt"

	"github.com/odpf/salt/version"
	cli "github.com/spf13/cobra"

	"github.com/jobforge/jobforge/config"
)

const githubRepo = "jobforge/jobforge"

func versionCommand() *cli.Command {
	cmd := &cli.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "jobforge version",
	}

	cmd.RunE = func(c *cli.Command, args []string) error {
		l := initDefaultLogger()

		l.Info(fmt.Sprintf("Client: %s-%s", coloredNotice(config.BuildVersion), coloredNotice(config.BuildCommit)))
		if config.BuildDate != "" {
			l.Info(fmt.Sprintf("Built: %s", config.BuildDate))
		}

		// check for a new release on github
		if updateNotice := version.UpdateNotice(config.BuildVersion, githubRepo); updateNotice != "" {
			l.Info(updateNotice)
		}
		return nil
	}
	return cmd
}
