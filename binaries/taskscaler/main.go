package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/common/log/hooks"
	"github.com/twitter/taskscaler/scaler/cli"
)

// Resizes the spot TASK groups of one EMR cluster.
//	Supported commands: (see "-h" for all options)
//		run
//		serve [--interval 5m] [--http_addr localhost:9091]
//		status [--json]
//	Global flags:
//		--config [<literal JSON/YAML, file path or http(s) URL> invocation record]
//		--job_flow_id, --threshold, --region [override the invocation record]
// 		--log_level [<error|info|debug> level and above should be logged]
//	Exit codes: 70 invalid configuration, 80 missing metric data, 90 AWS call failed.

func main() {
	log.AddHook(hooks.NewContextHook())

	cl, err := cli.NewSimpleCLIClient(nil)
	if err != nil {
		log.Fatal("Failed to create taskscaler CLI client: ", err)
	}

	if err := cli.Classify(cl.Exec()); err != nil {
		log.WithField("exitCode", err.GetExitCode()).Error("Error running taskscaler: ", err)
		os.Exit(int(err.GetExitCode()))
	}
}
