package stats

/*
This file defines all the metrics being collected.   As new metrics are added please follow this pattern.
*/

const (
	/************************* Cluster controller metrics **************************/
	/*
		number of spot priced TASK groups seen by the last listing
	*/
	ClusterScalableGroupsGauge = "scalableGroupsGauge"

	/*
		number of modify requests issued against an instance group
	*/
	ClusterResizeCounter = "resizeCounter"

	/*
		number of candidate groups skipped because their target fell outside (min-max)
	*/
	ClusterOutOfBoundsCounter = "outOfBoundsCounter"

	/*
		number of resize attempts where no group qualified
	*/
	ClusterNoEligibleGroupCounter = "noEligibleGroupCounter"

	/************************* Policy metrics **************************/
	/*
		allocated/total memory ratio over the last hour, as of the last evaluation
	*/
	PolicyMemoryUsedRatioGauge = "memoryUsedRatioGauge"

	/*
		max pending containers over the last 5 minutes, as of the last evaluation
	*/
	PolicyPendingContainersGauge = "pendingContainersGauge"

	/*
		number of times a scale down was suppressed by office hours
	*/
	PolicyOfficeHoursSuppressedCounter = "officeHoursSuppressedCounter"

	/************************* Scaler metrics **************************/
	/*
		number of invocations started
	*/
	ScalerInvocationCounter = "invocationCounter"

	/*
		amount of time an invocation takes, including all api calls
	*/
	ScalerInvocationLatency_ms = "invocationLatency_ms"

	/*
		number of invocations that returned an error
	*/
	ScalerFailureCounter = "failureCounter"

	/*
		decisions, one counter per outcome
	*/
	ScalerScaleUpCounter           = "scaleUpCounter"
	ScalerScaleDownCounter         = "scaleDownCounter"
	ScalerNoopCounter              = "noopCounter"
	ScalerSkippedInProgressCounter = "skippedInProgressCounter"

	/*
		number of stack deletions issued
	*/
	ScalerShutdownCounter = "shutdownCounter"

	/*
		unix time the serve loop started
	*/
	ScalerServerStartedGauge = "serverStartedGauge"
)
