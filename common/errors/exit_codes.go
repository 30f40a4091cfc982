package errors

type ExitCode int

const (
	GenericFailureExitCode ExitCode = 1

	// Invalid or missing invocation configuration, nothing was called.
	ConfigurationFailureExitCode ExitCode = 70

	// A metric needed for the decision had no datapoint.
	NoDataExitCode ExitCode = 80

	// The cluster, telemetry or stack API failed.
	CollaboratorFailureExitCode ExitCode = 90
)
