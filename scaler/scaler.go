// Package scaler runs the scaling decision for one cluster: skip while a resize is in progress,
// grow when containers are waiting, shrink when memory is underused outside office hours,
// and delete the parent stack after the daily shutdown hour.
package scaler

//go:generate mockgen -source=scaler.go -package=scaler -destination=scaler_mock.go

import (
	"context"
	"fmt"

	"github.com/luci/go-render/render"
	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/cloud/cluster"
	"github.com/twitter/taskscaler/common/stats"
)

// Controller is the view of the cluster the scaler acts on.
type Controller interface {
	ScalableGroups(ctx context.Context) ([]cluster.InstanceGroup, error)
	ScalingInProgress(ctx context.Context) (bool, error)
	Resize(ctx context.Context, dir cluster.Direction) (bool, error)
	IsTerminationProtected(ctx context.Context) (bool, error)
}

// Policy holds the scaling predicates.
type Policy interface {
	ShouldScaleUp(ctx context.Context) (bool, error)
	ShouldScaleDown(ctx context.Context, threshold float64) (bool, error)
	IsAfterShutdownTime() bool
	InOfficeHours() bool
}

type StackDeleter interface {
	DeleteStack(ctx context.Context, stack, role string) error
}

type Config struct {
	// Memory used ratio at or below which the cluster shrinks.
	Threshold float64

	// Stack deleted after shutdown time. Empty disables shutdown.
	ParentStack string

	// Role assumed by the stack service for the deletion, optional.
	StackDeletionRole string
}

// Decision is what MaybeScale chose to do.
type Decision int

const (
	DecisionNoOp Decision = iota
	DecisionScaleUp
	DecisionScaleDown
	DecisionSkipped
)

func (d Decision) String() string {
	switch d {
	case DecisionNoOp:
		return "noop"
	case DecisionScaleUp:
		return "scaleUp"
	case DecisionScaleDown:
		return "scaleDown"
	case DecisionSkipped:
		return "skippedInProgress"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// Outcome summarizes one invocation.
type Outcome struct {
	ID             string
	Decision       Decision
	ShutdownIssued bool
}

type Scaler struct {
	clusterID  string
	controller Controller
	policy     Policy
	stacks     StackDeleter
	cfg        Config
	stat       stats.StatsReceiver
}

func NewScaler(clusterID string, controller Controller, policy Policy, stacks StackDeleter, cfg Config, stat stats.StatsReceiver) *Scaler {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &Scaler{
		clusterID:  clusterID,
		controller: controller,
		policy:     policy,
		stacks:     stacks,
		cfg:        cfg,
		stat:       stat,
	}
}

// MaybeScale resizes at most one group. While a previous resize is still converging nothing
// is evaluated. Scale up is checked first and wins; scale down is only checked when no
// containers are waiting.
func (s *Scaler) MaybeScale(ctx context.Context, threshold float64) (Decision, error) {
	return s.maybeScale(ctx, threshold, log.WithField("cluster", s.clusterID))
}

func (s *Scaler) maybeScale(ctx context.Context, threshold float64, logger *log.Entry) (Decision, error) {
	inProgress, err := s.controller.ScalingInProgress(ctx)
	if err != nil {
		return DecisionNoOp, err
	}
	if inProgress {
		logger.Info("Scaling is already running, doing nothing.")
		return DecisionSkipped, nil
	}

	up, err := s.policy.ShouldScaleUp(ctx)
	if err != nil {
		return DecisionNoOp, errors.Wrap(err, "evaluating scale up")
	}
	if up {
		if _, err := s.controller.Resize(ctx, cluster.Up); err != nil {
			return DecisionScaleUp, err
		}
		return DecisionScaleUp, nil
	}

	down, err := s.policy.ShouldScaleDown(ctx, threshold)
	if err != nil {
		return DecisionNoOp, errors.Wrap(err, "evaluating scale down")
	}
	if down {
		if _, err := s.controller.Resize(ctx, cluster.Down); err != nil {
			return DecisionScaleDown, err
		}
		return DecisionScaleDown, nil
	}

	logger.Info("Nothing to do, going back to sleep.")
	return DecisionNoOp, nil
}

// MaybeShutdown deletes the parent stack once the shutdown hour has passed, unless the
// cluster is termination protected. Returns whether a deletion was requested.
func (s *Scaler) MaybeShutdown(ctx context.Context) (bool, error) {
	return s.maybeShutdown(ctx, log.WithField("cluster", s.clusterID))
}

func (s *Scaler) maybeShutdown(ctx context.Context, logger *log.Entry) (bool, error) {
	if s.cfg.ParentStack == "" {
		logger.Debug("no parent stack configured, not shutting down")
		return false, nil
	}
	if !s.policy.IsAfterShutdownTime() {
		return false, nil
	}
	protected, err := s.controller.IsTerminationProtected(ctx)
	if err != nil {
		return false, err
	}
	if protected {
		logger.WithField("stack", s.cfg.ParentStack).Info("Cluster is termination protected, won't shut down.")
		return false, nil
	}

	logger.WithField("stack", s.cfg.ParentStack).Info("Shutdown time reached, deleting parent stack.")
	if err := s.stacks.DeleteStack(ctx, s.cfg.ParentStack, s.cfg.StackDeletionRole); err != nil {
		return false, errors.Wrapf(err, "deleting stack %s", s.cfg.ParentStack)
	}
	s.stat.Counter(stats.ScalerShutdownCounter).Inc(1)
	return true, nil
}

// Run is one invocation: MaybeScale with the configured threshold, then MaybeShutdown.
// Shutdown is evaluated even if scaling failed. The scaling error is returned first;
// a shutdown error is returned only if scaling succeeded.
func (s *Scaler) Run(ctx context.Context) (Outcome, error) {
	defer s.stat.Latency(stats.ScalerInvocationLatency_ms).Time().Stop()
	s.stat.Counter(stats.ScalerInvocationCounter).Inc(1)

	out := Outcome{ID: generateInvocationId()}
	logger := log.WithFields(
		log.Fields{
			"invocation": out.ID,
			"cluster":    s.clusterID,
		})
	logger.Info("Starting invocation")

	var scaleErr error
	out.Decision, scaleErr = s.maybeScale(ctx, s.cfg.Threshold, logger)
	if scaleErr != nil {
		logger.WithError(scaleErr).Error("scaling failed")
	} else {
		s.countDecision(out.Decision)
	}

	var shutdownErr error
	out.ShutdownIssued, shutdownErr = s.maybeShutdown(ctx, logger)
	if shutdownErr != nil {
		logger.WithError(shutdownErr).Error("shutdown failed")
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		logger.Debugf("invocation outcome: %s", render.Render(out))
	}

	err := scaleErr
	if err == nil {
		err = shutdownErr
	}
	if err != nil {
		s.stat.Counter(stats.ScalerFailureCounter).Inc(1)
	}
	return out, err
}

func (s *Scaler) countDecision(d Decision) {
	switch d {
	case DecisionScaleUp:
		s.stat.Counter(stats.ScalerScaleUpCounter).Inc(1)
	case DecisionScaleDown:
		s.stat.Counter(stats.ScalerScaleDownCounter).Inc(1)
	case DecisionSkipped:
		s.stat.Counter(stats.ScalerSkippedInProgressCounter).Inc(1)
	default:
		s.stat.Counter(stats.ScalerNoopCounter).Inc(1)
	}
}

// generates an invocation id using a random uuid
func generateInvocationId() string {
	// uuid.NewV4() only fails if the system's random source does; keep trying.
	for {
		if id, err := uuid.NewV4(); err == nil {
			return id.String()
		}
	}
}
