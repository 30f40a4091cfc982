package cluster

import (
	"fmt"
	"time"

	scooterrors "github.com/twitter/taskscaler/common/errors"
)

// NoDataError is returned by Signals when a metric has no datapoint in the requested window.
// Callers must not substitute a default: no data is not the same as zero utilization.
type NoDataError struct {
	Metric    string
	Statistic string
	Window    time.Duration
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no %s datapoint for metric %s over the last %v", e.Statistic, e.Metric, e.Window)
}

// CollaboratorError wraps a failed call to the cluster, telemetry or stack API.
// These are never retried here; the next invocation tries again.
type CollaboratorError struct {
	Op  string
	Err error
}

func NewCollaboratorError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Op: op, Err: err}
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Cause() error {
	return e.Err
}

// IsNoData reports whether err or anything it wraps is a *NoDataError.
func IsNoData(err error) bool {
	return scooterrors.Find(err, func(e error) bool {
		_, ok := e.(*NoDataError)
		return ok
	}) != nil
}

// IsCollaboratorError reports whether err or anything it wraps is a *CollaboratorError.
func IsCollaboratorError(err error) bool {
	return scooterrors.Find(err, func(e error) bool {
		_, ok := e.(*CollaboratorError)
		return ok
	}) != nil
}
