// Package cli implements the taskscaler command line: run one invocation, serve on an
// interval, or print the current status of a cluster.
package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	commoncli "github.com/twitter/taskscaler/common/client"
	"github.com/twitter/taskscaler/common/endpoints"
	"github.com/twitter/taskscaler/config/scalerconfig"
)

// ScalerCLIClient includes fields required for CLI client handling
type ScalerCLIClient struct {
	commoncli.SimpleClient

	jobFlowId string
	threshold float64
	region    string
	setup     Setup
}

func (c *ScalerCLIClient) Exec() error {
	return c.RootCmd.Execute()
}

// NewSimpleCLIClient creates the root command. setup builds the scaler once config is known;
// nil uses the AWS implementation.
func NewSimpleCLIClient(setup Setup) (commoncli.CLIClient, error) {
	c := newScalerCLIClient(setup)
	return c, nil
}

func newScalerCLIClient(setup Setup) *ScalerCLIClient {
	if setup == nil {
		setup = AWSSetup
	}
	c := &ScalerCLIClient{setup: setup}

	c.RootCmd = &cobra.Command{
		Use:               "taskscaler",
		Short:             "taskscaler resizes the spot TASK groups of an EMR cluster",
		PersistentPreRunE: c.Init,
		Run:               func(*cobra.Command, []string) {},
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	flags := c.RootCmd.PersistentFlags()
	flags.StringVar(&c.LogLevel, "log_level", "info", "Log everything at this level and above (error|info|debug)")
	flags.StringVar(&c.ConfigFlag, "config", "", "Invocation record: literal JSON/YAML, a file path, or an http(s) URL")
	flags.StringVar(&c.jobFlowId, "job_flow_id", "", "Cluster to scale, overrides JobFlowId")
	flags.Float64Var(&c.threshold, "threshold", 0, "Memory used ratio to scale down at, overrides Threshold")
	flags.StringVar(&c.region, "region", "", "AWS region, overrides Region")

	c.addCmd(&runCmd{})
	c.addCmd(&serveCmd{})
	c.addCmd(&statusCmd{})

	return c
}

// Can only be called from cobra command run or hook
func (c *ScalerCLIClient) Init(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Error(err)
		return err
	}
	log.SetLevel(level)

	cfg, err := scalerconfig.Load(c.ConfigFlag, scalerconfig.MakePesterClient())
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("job_flow_id") {
		cfg.JobFlowId = c.jobFlowId
	}
	if flags.Changed("threshold") {
		t := c.threshold
		cfg.Threshold = &t
	}
	if flags.Changed("region") {
		cfg.Region = c.region
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg

	c.Stat = endpoints.MakeStatsReceiver("taskscaler")
	c.Scaler, err = c.setup(cfg, c.Stat)
	return err
}

func (c *ScalerCLIClient) addCmd(cmd commoncli.Cmd) {
	cobraCmd := cmd.RegisterFlags()
	cobraCmd.RunE = func(innerCmd *cobra.Command, args []string) error {
		return cmd.Run(&c.SimpleClient, innerCmd, args)
	}
	c.RootCmd.AddCommand(cobraCmd)
}
