// Package cluster models the instance groups of a managed compute cluster and
// resizes its spot priced TASK groups.
package cluster

//go:generate mockgen -source=cluster.go -package=cluster -destination=cluster_mock.go

import (
	"context"
	"time"
)

// GroupAPI lists and resizes the instance groups of a cluster.
type GroupAPI interface {
	ListInstanceGroups(ctx context.Context, clusterID string) ([]InstanceGroup, error)

	// Set the requested instance count of one group.
	ModifyInstanceGroup(ctx context.Context, groupID string, count int64) error
}

// Signals provides scalar aggregates of cluster telemetry and the cluster's protection flag.
// Windows trail the current time and end on a whole minute.
type Signals interface {
	// Average of the metric over the window, or a *NoDataError.
	AverageOverWindow(ctx context.Context, metric string, window time.Duration) (float64, error)

	// Maximum of the metric over the window, or a *NoDataError.
	MaxOverWindow(ctx context.Context, metric string, window time.Duration) (float64, error)

	IsTerminationProtected(ctx context.Context) (bool, error)
}
