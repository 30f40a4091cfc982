package amazon

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/aws/aws-sdk-go/service/emr"
	"github.com/aws/aws-sdk-go/service/emr/emriface"
	"github.com/stretchr/testify/assert"

	"github.com/twitter/taskscaler/cloud/cluster"
)

const clusterID = "j-ABCDEF"

type fakeEMR struct {
	emriface.EMRAPI
	pages     [][]*emr.InstanceGroup
	listErr   error
	modified  []*emr.ModifyInstanceGroupsInput
	modifyErr error
	protected *bool
	descErr   error
}

func (f *fakeEMR) ListInstanceGroupsPagesWithContext(ctx aws.Context, in *emr.ListInstanceGroupsInput,
	fn func(*emr.ListInstanceGroupsOutput, bool) bool, opts ...request.Option) error {
	if f.listErr != nil {
		return f.listErr
	}
	if aws.StringValue(in.ClusterId) != clusterID {
		return fmt.Errorf("unexpected cluster %s", aws.StringValue(in.ClusterId))
	}
	for i, p := range f.pages {
		if !fn(&emr.ListInstanceGroupsOutput{InstanceGroups: p}, i == len(f.pages)-1) {
			break
		}
	}
	return nil
}

func (f *fakeEMR) ModifyInstanceGroupsWithContext(ctx aws.Context, in *emr.ModifyInstanceGroupsInput,
	opts ...request.Option) (*emr.ModifyInstanceGroupsOutput, error) {
	f.modified = append(f.modified, in)
	return &emr.ModifyInstanceGroupsOutput{}, f.modifyErr
}

func (f *fakeEMR) DescribeClusterWithContext(ctx aws.Context, in *emr.DescribeClusterInput,
	opts ...request.Option) (*emr.DescribeClusterOutput, error) {
	if f.descErr != nil {
		return nil, f.descErr
	}
	return &emr.DescribeClusterOutput{Cluster: &emr.Cluster{Id: in.ClusterId, TerminationProtected: f.protected}}, nil
}

type fakeCloudWatch struct {
	cloudwatchiface.CloudWatchAPI
	datapoints []*cloudwatch.Datapoint
	err        error
	inputs     []*cloudwatch.GetMetricStatisticsInput
}

func (f *fakeCloudWatch) GetMetricStatisticsWithContext(ctx aws.Context, in *cloudwatch.GetMetricStatisticsInput,
	opts ...request.Option) (*cloudwatch.GetMetricStatisticsOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &cloudwatch.GetMetricStatisticsOutput{Datapoints: f.datapoints}, nil
}

type fakeCloudFormation struct {
	cloudformationiface.CloudFormationAPI
	deleted []*cloudformation.DeleteStackInput
	err     error
}

func (f *fakeCloudFormation) DeleteStackWithContext(ctx aws.Context, in *cloudformation.DeleteStackInput,
	opts ...request.Option) (*cloudformation.DeleteStackOutput, error) {
	f.deleted = append(f.deleted, in)
	return &cloudformation.DeleteStackOutput{}, f.err
}

func emrGroup(id, typ, bid string, requested, running int64) *emr.InstanceGroup {
	ig := &emr.InstanceGroup{
		Id:                     aws.String(id),
		Name:                   aws.String("name-" + id),
		InstanceType:           aws.String("r4.2xlarge"),
		InstanceGroupType:      aws.String(typ),
		RequestedInstanceCount: aws.Int64(requested),
		RunningInstanceCount:   aws.Int64(running),
	}
	if bid != "" {
		ig.BidPrice = aws.String(bid)
	}
	return ig
}

func TestListInstanceGroupsFollowsPages(t *testing.T) {
	f := &fakeEMR{pages: [][]*emr.InstanceGroup{
		{emrGroup("ig-master", emr.InstanceGroupTypeMaster, "", 1, 1)},
		{emrGroup("ig-task", emr.InstanceGroupTypeTask, "0.35", 4, 3)},
	}}
	groups, err := NewEMRGroups(clusterID, f).ListInstanceGroups(context.Background(), clusterID)
	assert.NoError(t, err)
	assert.Equal(t, []cluster.InstanceGroup{
		{
			ID:             "ig-master",
			Name:           "name-ig-master",
			InstanceType:   "r4.2xlarge",
			Type:           cluster.GroupTypeMaster,
			RequestedCount: 1,
			RunningCount:   1,
		},
		{
			ID:             "ig-task",
			Name:           "name-ig-task",
			InstanceType:   "r4.2xlarge",
			Type:           cluster.GroupTypeTask,
			BidPrice:       "0.35",
			RequestedCount: 4,
			RunningCount:   3,
		},
	}, groups)
	assert.True(t, groups[1].Scalable())
	assert.False(t, groups[1].Converged())
}

func TestListInstanceGroupsError(t *testing.T) {
	f := &fakeEMR{listErr: fmt.Errorf("AccessDenied")}
	_, err := NewEMRGroups(clusterID, f).ListInstanceGroups(context.Background(), clusterID)
	assert.True(t, cluster.IsCollaboratorError(err))
}

func TestModifyInstanceGroup(t *testing.T) {
	f := &fakeEMR{}
	err := NewEMRGroups(clusterID, f).ModifyInstanceGroup(context.Background(), "ig-task", 6)
	assert.NoError(t, err)
	if assert.Len(t, f.modified, 1) {
		in := f.modified[0]
		assert.Equal(t, clusterID, aws.StringValue(in.ClusterId))
		if assert.Len(t, in.InstanceGroups, 1) {
			assert.Equal(t, "ig-task", aws.StringValue(in.InstanceGroups[0].InstanceGroupId))
			assert.Equal(t, int64(6), aws.Int64Value(in.InstanceGroups[0].InstanceCount))
		}
	}
}

func TestModifyInstanceGroupError(t *testing.T) {
	f := &fakeEMR{modifyErr: fmt.Errorf("ThrottlingException")}
	err := NewEMRGroups(clusterID, f).ModifyInstanceGroup(context.Background(), "ig-task", 6)
	assert.True(t, cluster.IsCollaboratorError(err))
}

func fixedSignals(cw *fakeCloudWatch, e *fakeEMR, now time.Time) *CloudWatchSignals {
	s := NewCloudWatchSignals(clusterID, cw, e)
	s.now = func() time.Time { return now }
	return s
}

func TestAverageOverWindowQuery(t *testing.T) {
	now := time.Date(2019, 3, 4, 10, 17, 42, 500, time.UTC)
	cw := &fakeCloudWatch{datapoints: []*cloudwatch.Datapoint{{Average: aws.Float64(4096), Timestamp: aws.Time(now)}}}
	v, err := fixedSignals(cw, &fakeEMR{}, now).AverageOverWindow(context.Background(), "MemoryAllocatedMB", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 4096.0, v)

	if assert.Len(t, cw.inputs, 1) {
		in := cw.inputs[0]
		end := time.Date(2019, 3, 4, 10, 17, 0, 0, time.UTC)
		assert.Equal(t, metricNamespace, aws.StringValue(in.Namespace))
		assert.Equal(t, "MemoryAllocatedMB", aws.StringValue(in.MetricName))
		assert.Equal(t, end, aws.TimeValue(in.EndTime))
		assert.Equal(t, end.Add(-time.Hour), aws.TimeValue(in.StartTime))
		assert.Equal(t, int64(3600), aws.Int64Value(in.Period))
		assert.Equal(t, []*string{aws.String(cloudwatch.StatisticAverage)}, in.Statistics)
		assert.Equal(t, cloudwatch.StandardUnitCount, aws.StringValue(in.Unit))
		if assert.Len(t, in.Dimensions, 1) {
			assert.Equal(t, jobFlowIDDim, aws.StringValue(in.Dimensions[0].Name))
			assert.Equal(t, clusterID, aws.StringValue(in.Dimensions[0].Value))
		}
	}
}

func TestMaxOverWindowUsesLatestDatapoint(t *testing.T) {
	now := time.Date(2019, 3, 4, 10, 17, 0, 0, time.UTC)
	cw := &fakeCloudWatch{datapoints: []*cloudwatch.Datapoint{
		{Maximum: aws.Float64(1), Timestamp: aws.Time(now.Add(-10 * time.Minute))},
		{Maximum: aws.Float64(7), Timestamp: aws.Time(now.Add(-5 * time.Minute))},
		{Maximum: aws.Float64(3), Timestamp: aws.Time(now.Add(-8 * time.Minute))},
	}}
	v, err := fixedSignals(cw, &fakeEMR{}, now).MaxOverWindow(context.Background(), "ContainerPending", 5*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, int64(300), aws.Int64Value(cw.inputs[0].Period))
}

func TestNoDatapoints(t *testing.T) {
	cw := &fakeCloudWatch{}
	_, err := fixedSignals(cw, &fakeEMR{}, time.Now()).AverageOverWindow(context.Background(), "MemoryTotalMB", time.Hour)
	assert.True(t, cluster.IsNoData(err))
	nd, ok := err.(*cluster.NoDataError)
	if assert.True(t, ok) {
		assert.Equal(t, "MemoryTotalMB", nd.Metric)
		assert.Equal(t, time.Hour, nd.Window)
	}
}

func TestDatapointMissingStatistic(t *testing.T) {
	now := time.Now()
	cw := &fakeCloudWatch{datapoints: []*cloudwatch.Datapoint{{Average: aws.Float64(2), Timestamp: aws.Time(now)}}}
	_, err := fixedSignals(cw, &fakeEMR{}, now).MaxOverWindow(context.Background(), "ContainerPending", 5*time.Minute)
	assert.True(t, cluster.IsNoData(err))
}

func TestMetricError(t *testing.T) {
	cw := &fakeCloudWatch{err: fmt.Errorf("InvalidParameterValue")}
	_, err := fixedSignals(cw, &fakeEMR{}, time.Now()).AverageOverWindow(context.Background(), "MemoryTotalMB", time.Hour)
	assert.True(t, cluster.IsCollaboratorError(err))
	assert.False(t, cluster.IsNoData(err))
}

func TestIsTerminationProtected(t *testing.T) {
	for _, protected := range []bool{true, false} {
		e := &fakeEMR{protected: aws.Bool(protected)}
		got, err := fixedSignals(&fakeCloudWatch{}, e, time.Now()).IsTerminationProtected(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, protected, got)
	}

	e := &fakeEMR{descErr: fmt.Errorf("ClusterNotFound")}
	_, err := fixedSignals(&fakeCloudWatch{}, e, time.Now()).IsTerminationProtected(context.Background())
	assert.True(t, cluster.IsCollaboratorError(err))
}

func TestDeleteStack(t *testing.T) {
	f := &fakeCloudFormation{}
	d := NewStackDeleter(f)

	assert.NoError(t, d.DeleteStack(context.Background(), "parent-stack", "arn:aws:iam::123:role/deleter"))
	assert.NoError(t, d.DeleteStack(context.Background(), "parent-stack", ""))
	if assert.Len(t, f.deleted, 2) {
		assert.Equal(t, "parent-stack", aws.StringValue(f.deleted[0].StackName))
		assert.Equal(t, "arn:aws:iam::123:role/deleter", aws.StringValue(f.deleted[0].RoleARN))
		assert.Nil(t, f.deleted[1].RoleARN)
	}

	f.err = fmt.Errorf("ValidationError")
	assert.True(t, cluster.IsCollaboratorError(d.DeleteStack(context.Background(), "parent-stack", "")))
}
