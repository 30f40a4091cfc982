package cli

import (
	"github.com/twitter/taskscaler/cloud/amazon"
	"github.com/twitter/taskscaler/cloud/cluster"
	"github.com/twitter/taskscaler/common/stats"
	"github.com/twitter/taskscaler/config/scalerconfig"
	"github.com/twitter/taskscaler/scaler"
	"github.com/twitter/taskscaler/scaler/policy"
)

// Setup builds a Scaler for a validated config.
type Setup func(cfg *scalerconfig.Config, stat stats.StatsReceiver) (*scaler.Scaler, error)

// AWSSetup wires the scaler to EMR, CloudWatch and CloudFormation.
func AWSSetup(cfg *scalerconfig.Config, stat stats.StatsReceiver) (*scaler.Scaler, error) {
	sess, err := amazon.NewSession(cfg.Region)
	if err != nil {
		return nil, cluster.NewCollaboratorError("session", err)
	}
	clients := amazon.NewClients(sess)
	signals := amazon.NewCloudWatchSignals(cfg.JobFlowId, clients.CloudWatch, clients.EMR)
	groups := amazon.NewEMRGroups(cfg.JobFlowId, clients.EMR)
	stacks := amazon.NewStackDeleter(clients.CloudFormation)
	return NewScaler(cfg, groups, signals, stacks, stat)
}

// NewScaler assembles controller, policy and scaler from the config.
func NewScaler(
	cfg *scalerconfig.Config,
	groups cluster.GroupAPI,
	signals cluster.Signals,
	stacks scaler.StackDeleter,
	stat stats.StatsReceiver,
) (*scaler.Scaler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	controller := cluster.NewController(cfg.JobFlowId, groups, signals, cfg.MinInstances, cfg.MaxInstances, stat)
	pol := policy.NewPolicy(signals, policy.Config{
		OfficeHoursStart: cfg.OfficeHoursStart,
		OfficeHoursEnd:   cfg.OfficeHoursEnd,
		ShutdownHour:     cfg.ShutdownTime,
		Location:         loc,
	}, nil, stat)
	return scaler.NewScaler(cfg.JobFlowId, controller, pol, stacks, scaler.Config{
		Threshold:         cfg.ScaleThreshold(),
		ParentStack:       cfg.ParentStackId,
		StackDeletionRole: cfg.StackDeletionRole,
	}, stat), nil
}
