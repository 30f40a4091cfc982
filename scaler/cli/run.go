package cli

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twitter/taskscaler/common/client"
)

type runCmd struct{}

func (c *runCmd) RegisterFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one scaling invocation and exit",
	}
}

func (c *runCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	out, err := cl.Scaler.Run(context.Background())
	if err != nil {
		return err
	}
	log.WithFields(
		log.Fields{
			"invocation": out.ID,
			"decision":   out.Decision,
			"shutdown":   out.ShutdownIssued,
		}).Info("invocation done")
	fmt.Fprintf(cmd.OutOrStdout(), "%s decision=%s shutdown=%t\n", out.ID, out.Decision, out.ShutdownIssued)
	return nil
}
