package amazon

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/aws/aws-sdk-go/service/emr"
	"github.com/aws/aws-sdk-go/service/emr/emriface"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/cloud/cluster"
)

const (
	metricNamespace = "AWS/ElasticMapReduce"
	jobFlowIDDim    = "JobFlowId"

	statisticAverage = cloudwatch.StatisticAverage
	statisticMaximum = cloudwatch.StatisticMaximum
)

// CloudWatchSignals reads cluster telemetry from CloudWatch and the protection flag from EMR.
type CloudWatchSignals struct {
	clusterID string
	cw        cloudwatchiface.CloudWatchAPI
	emr       emriface.EMRAPI
	now       func() time.Time
}

func NewCloudWatchSignals(clusterID string, cw cloudwatchiface.CloudWatchAPI, emrAPI emriface.EMRAPI) *CloudWatchSignals {
	return &CloudWatchSignals{clusterID: clusterID, cw: cw, emr: emrAPI, now: time.Now}
}

func (s *CloudWatchSignals) AverageOverWindow(ctx context.Context, metric string, window time.Duration) (float64, error) {
	return s.statistic(ctx, metric, statisticAverage, window)
}

func (s *CloudWatchSignals) MaxOverWindow(ctx context.Context, metric string, window time.Duration) (float64, error) {
	return s.statistic(ctx, metric, statisticMaximum, window)
}

// statistic queries one period covering the trailing window, which ends on the current whole minute.
func (s *CloudWatchSignals) statistic(ctx context.Context, metric, stat string, window time.Duration) (float64, error) {
	end := s.now().UTC().Truncate(time.Minute)
	start := end.Add(-window)
	input := &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(metricNamespace),
		MetricName: aws.String(metric),
		Dimensions: []*cloudwatch.Dimension{
			{
				Name:  aws.String(jobFlowIDDim),
				Value: aws.String(s.clusterID),
			},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int64(int64(window / time.Second)),
		Statistics: []*string{aws.String(stat)},
		Unit:       aws.String(cloudwatch.StandardUnitCount),
	}

	out, err := s.cw.GetMetricStatisticsWithContext(ctx, input)
	if err != nil {
		return 0, cluster.NewCollaboratorError("cloudwatch.GetMetricStatistics", err)
	}

	latest := latestDatapoint(out.Datapoints)
	var value *float64
	if latest != nil {
		if stat == statisticMaximum {
			value = latest.Maximum
		} else {
			value = latest.Average
		}
	}
	if value == nil {
		return 0, &cluster.NoDataError{Metric: metric, Statistic: stat, Window: window}
	}

	log.WithFields(
		log.Fields{
			"metric":    metric,
			"statistic": stat,
			"window":    window,
			"value":     *value,
		}).Debug("read cluster metric")
	return *value, nil
}

func latestDatapoint(dps []*cloudwatch.Datapoint) *cloudwatch.Datapoint {
	var latest *cloudwatch.Datapoint
	for _, dp := range dps {
		if dp == nil {
			continue
		}
		if latest == nil || aws.TimeValue(dp.Timestamp).After(aws.TimeValue(latest.Timestamp)) {
			latest = dp
		}
	}
	return latest
}

// IsTerminationProtected reads the cluster's termination protection flag.
func (s *CloudWatchSignals) IsTerminationProtected(ctx context.Context) (bool, error) {
	out, err := s.emr.DescribeClusterWithContext(ctx, &emr.DescribeClusterInput{ClusterId: aws.String(s.clusterID)})
	if err != nil {
		return false, cluster.NewCollaboratorError("emr.DescribeCluster", err)
	}
	var protected bool
	if out.Cluster != nil {
		protected = aws.BoolValue(out.Cluster.TerminationProtected)
	}
	log.WithFields(log.Fields{"cluster": s.clusterID, "terminationProtected": protected}).
		Info("read termination protection")
	return protected, nil
}
