package cli

import (
	"github.com/twitter/taskscaler/cloud/cluster"
	scooterrors "github.com/twitter/taskscaler/common/errors"
	"github.com/twitter/taskscaler/config/scalerconfig"
)

// Classify attaches the process exit code matching the kind of failure. Nil stays nil.
func Classify(err error) *scooterrors.ExitCodeError {
	if err == nil {
		return nil
	}
	if e, ok := err.(*scooterrors.ExitCodeError); ok {
		return e
	}
	isConfig := scooterrors.Find(err, func(e error) bool {
		_, ok := e.(*scalerconfig.ConfigurationError)
		return ok
	}) != nil
	switch {
	case isConfig:
		return scooterrors.NewError(err, scooterrors.ConfigurationFailureExitCode)
	case cluster.IsNoData(err):
		return scooterrors.NewError(err, scooterrors.NoDataExitCode)
	case cluster.IsCollaboratorError(err):
		return scooterrors.NewError(err, scooterrors.CollaboratorFailureExitCode)
	}
	return scooterrors.NewError(err, scooterrors.GenericFailureExitCode)
}
