package cli

/**
implements the command line entry for the status command
*/

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luci/go-render/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twitter/taskscaler/common/client"
)

type statusCmd struct {
	printAsJson bool
}

func (c *statusCmd) RegisterFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "status",
		Short: "Print instance groups and scaling predicates without changing anything",
	}
	r.Flags().BoolVar(&c.printAsJson, "json", false, "Print out status as JSON")
	return r
}

func (c *statusCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	log.Info("Checking status for cluster ", cl.Config.JobFlowId)

	status, err := cl.Scaler.Status(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if c.printAsJson {
		asJson, err := json.Marshal(status)
		if err != nil {
			return fmt.Errorf("Error converting status to JSON: %v", err.Error())
		}
		fmt.Fprintf(out, "%s\n", asJson)
		return nil
	}

	fmt.Fprintf(out, "Cluster: %s\n", status.ClusterID)
	for _, g := range status.Groups {
		fmt.Fprintf(out, "  %s\n", g)
	}
	fmt.Fprintf(out, "Scaling in progress: %t\n", status.ScalingInProgress)
	fmt.Fprintf(out, "Should scale up: %t %s\n", status.ShouldScaleUp, status.ScaleUpError)
	fmt.Fprintf(out, "Should scale down: %t %s\n", status.ShouldScaleDown, status.ScaleDownError)
	fmt.Fprintf(out, "In office hours: %t\n", status.InOfficeHours)
	fmt.Fprintf(out, "After shutdown time: %t\n", status.AfterShutdownTime)
	fmt.Fprintf(out, "Termination protected: %t\n", status.TerminationProtected)
	log.Debugf("status: %s", render.Render(status))
	return nil
}
