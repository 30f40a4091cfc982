package cluster

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/common/stats"
)

// Controller owns one cluster and resizes at most one of its TASK groups per call to Resize.
// It keeps no state between calls: every operation lists the groups again, so a resize
// issued by an earlier invocation is observed through the API rather than remembered.
type Controller struct {
	clusterID    string
	groups       GroupAPI
	signals      Signals
	minInstances int64
	maxInstances int64
	stat         stats.StatsReceiver
}

// NewController creates a Controller that keeps resized groups within [minInstances, maxInstances].
func NewController(
	clusterID string,
	groups GroupAPI,
	signals Signals,
	minInstances, maxInstances int64,
	stat stats.StatsReceiver,
) *Controller {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &Controller{
		clusterID:    clusterID,
		groups:       groups,
		signals:      signals,
		minInstances: minInstances,
		maxInstances: maxInstances,
		stat:         stat,
	}
}

func (c *Controller) ClusterID() string {
	return c.clusterID
}

// ScalableGroups returns the spot priced TASK groups of the cluster in API order.
func (c *Controller) ScalableGroups(ctx context.Context) ([]InstanceGroup, error) {
	all, err := c.groups.ListInstanceGroups(ctx, c.clusterID)
	if err != nil {
		return nil, errors.Wrapf(err, "listing instance groups of %s", c.clusterID)
	}
	var scalable []InstanceGroup
	for _, g := range all {
		if g.Scalable() {
			scalable = append(scalable, g)
		}
	}
	c.stat.Gauge(stats.ClusterScalableGroupsGauge).Update(int64(len(scalable)))
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("scalable groups of %s: %s", c.clusterID, spew.Sdump(scalable))
	}
	return scalable, nil
}

// ScalingInProgress is true while any scalable group's running count differs from its requested count.
func (c *Controller) ScalingInProgress(ctx context.Context) (bool, error) {
	groups, err := c.ScalableGroups(ctx)
	if err != nil {
		return false, err
	}
	for _, g := range groups {
		if !g.Converged() {
			log.WithFields(
				log.Fields{
					"group":     g.Name,
					"groupID":   g.ID,
					"requested": g.RequestedCount,
					"running":   g.RunningCount,
				}).Info("instance group has not converged")
			return true, nil
		}
	}
	return false, nil
}

// IsTerminationProtected reports the cluster's termination protection flag.
func (c *Controller) IsTerminationProtected(ctx context.Context) (bool, error) {
	return c.signals.IsTerminationProtected(ctx)
}

// Resize moves one scalable group a step in the given direction.
// Groups are tried from the highest bid price down. A group is skipped when its target equals
// its current count or falls outside [min, max]; the first remaining group is resized and the
// search stops. Returns false, without error, if no group qualifies.
func (c *Controller) Resize(ctx context.Context, dir Direction) (bool, error) {
	groups, err := c.ScalableGroups(ctx)
	if err != nil {
		return false, err
	}

	ranked, unranked := rankByBid(groups)
	for _, g := range unranked {
		log.WithFields(log.Fields{"group": g.Name, "groupID": g.ID, "bidPrice": g.BidPrice}).
			Warn("skipping instance group with unparseable bid price")
	}

	for _, g := range ranked {
		current := g.RequestedCount
		target := TargetCount(current, dir)
		fields := log.Fields{
			"group":        g.Name,
			"groupID":      g.ID,
			"instanceType": g.InstanceType,
			"bidPrice":     g.BidPrice,
			"direction":    dir,
			"current":      current,
			"target":       target,
		}

		if target == current {
			log.WithFields(fields).Info("target equals current number of task instances, trying next group")
			continue
		}
		if target < c.minInstances || target > c.maxInstances {
			c.stat.Counter(stats.ClusterOutOfBoundsCounter).Inc(1)
			log.WithFields(fields).Infof("[%s -- %s] New number of task instances is %d, out of bounds of (%d-%d)",
				g.Name, g.InstanceType, target, c.minInstances, c.maxInstances)
			continue
		}

		if err := c.groups.ModifyInstanceGroup(ctx, g.ID, target); err != nil {
			return false, errors.Wrapf(err, "resizing instance group %s from %d to %d", g.ID, current, target)
		}
		c.stat.Counter(stats.ClusterResizeCounter).Inc(1)
		log.WithFields(fields).Infof("[%s -- %s] New number of task instances is %d.", g.Name, g.InstanceType, target)
		return true, nil
	}

	c.stat.Counter(stats.ClusterNoEligibleGroupCounter).Inc(1)
	log.WithFields(log.Fields{"cluster": c.clusterID, "direction": dir, "candidates": len(ranked)}).
		Info("no instance group qualified for resize")
	return false, nil
}
