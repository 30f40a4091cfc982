package client

import (
	"github.com/spf13/cobra"

	"github.com/twitter/taskscaler/common/stats"
	"github.com/twitter/taskscaler/config/scalerconfig"
	"github.com/twitter/taskscaler/scaler"
)

// Client interface that includes CLI handling
type CLIClient interface {
	Exec() error
}

// SimpleClient includes base fields required for implementing client
type SimpleClient struct {
	RootCmd    *cobra.Command
	LogLevel   string
	ConfigFlag string
	Config     *scalerconfig.Config
	Stat       stats.StatsReceiver
	Scaler     *scaler.Scaler
}

// Command interface used to run client commands
type Cmd interface {
	RegisterFlags() *cobra.Command
	Run(cl *SimpleClient, cmd *cobra.Command, args []string) error
}
