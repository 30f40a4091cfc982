package cluster

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/twitter/taskscaler/common/stats"
)

const testClusterID = "j-TESTCLUSTER"

func taskGroup(id string, bid string, requested, running int64) InstanceGroup {
	return InstanceGroup{
		ID:             id,
		Name:           "name-" + id,
		InstanceType:   "m4.xlarge",
		Type:           GroupTypeTask,
		BidPrice:       bid,
		RequestedCount: requested,
		RunningCount:   running,
	}
}

type controllerHelper struct {
	mockCtrl *gomock.Controller
	groups   *MockGroupAPI
	signals  *MockSignals
	registry stats.StatsRegistry
}

func makeControllerHelper(t *testing.T) *controllerHelper {
	mockCtrl := gomock.NewController(t)
	return &controllerHelper{
		mockCtrl: mockCtrl,
		groups:   NewMockGroupAPI(mockCtrl),
		signals:  NewMockSignals(mockCtrl),
		registry: stats.NewFinagleStatsRegistry(),
	}
}

func (h *controllerHelper) controller(min, max int64) *Controller {
	stat := stats.NewCustomStatsReceiver(func() stats.StatsRegistry { return h.registry })
	return NewController(testClusterID, h.groups, h.signals, min, max, stat)
}

func (h *controllerHelper) listReturns(groups ...InstanceGroup) {
	h.groups.EXPECT().ListInstanceGroups(gomock.Any(), testClusterID).Return(groups, nil)
}

func TestScalableGroupsFiltersTaskGroupsWithBid(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	task := taskGroup("ig-task", "1.2", 2, 2)
	otherTask := taskGroup("ig-task2", "1.2", 1, 1)
	h.listReturns(
		InstanceGroup{ID: "ig-master", Type: GroupTypeMaster, RequestedCount: 1, RunningCount: 1},
		InstanceGroup{ID: "ig-core", Type: GroupTypeCore, RequestedCount: 2, RunningCount: 2},
		taskGroup("ig-ondemand-task", "", 3, 3),
		task,
		otherTask,
	)

	groups, err := h.controller(0, 20).ScalableGroups(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstanceGroup{task, otherTask}, groups)
}

func TestScalableGroupsNone(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(
		InstanceGroup{ID: "ig-master", Type: GroupTypeMaster},
		InstanceGroup{ID: "ig-core", Type: GroupTypeCore},
	)
	groups, err := h.controller(0, 20).ScalableGroups(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestScalingInProgress(t *testing.T) {
	tests := []struct {
		name      string
		requested int64
		running   int64
		want      bool
	}{
		{"upscaling", 2, 1, true},
		{"downscaling", 1, 2, true},
		{"converged", 1, 1, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := makeControllerHelper(t)
			defer h.mockCtrl.Finish()

			h.listReturns(taskGroup("ig-1", "1.2", 3, 3), taskGroup("ig-2", "1.2", test.requested, test.running))
			inProgress, err := h.controller(0, 20).ScalingInProgress(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, test.want, inProgress)
		})
	}
}

func TestScalingInProgressIgnoresNonScalableGroups(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(
		InstanceGroup{ID: "ig-core", Type: GroupTypeCore, RequestedCount: 4, RunningCount: 2},
		taskGroup("ig-1", "1.2", 3, 3),
	)
	inProgress, err := h.controller(0, 20).ScalingInProgress(context.Background())
	assert.NoError(t, err)
	assert.False(t, inProgress)
}

func TestResizeWithinBounds(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-1", "1.2", 5, 5))
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-1", int64(6)).Return(nil)

	resized, err := h.controller(5, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
	assert.True(t, resized)
	stats.VerifyStats("resize", h.registry, t, map[string]stats.Rule{
		stats.ClusterResizeCounter:       {Checker: stats.Int64EqTest, Value: 1},
		stats.ClusterScalableGroupsGauge: {Checker: stats.Int64EqTest, Value: 1},
	})
}

func TestNoResizeAboveUpperBound(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-1", "1.2", 10, 10))

	resized, err := h.controller(5, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
	assert.False(t, resized)
	stats.VerifyStats("above", h.registry, t, map[string]stats.Rule{
		stats.ClusterOutOfBoundsCounter:     {Checker: stats.Int64EqTest, Value: 1},
		stats.ClusterNoEligibleGroupCounter: {Checker: stats.Int64EqTest, Value: 1},
		stats.ClusterResizeCounter:          {Checker: stats.DoesNotExistTest},
	})
}

func TestNoResizeBelowLowerBound(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-1", "1.2", 5, 5))

	resized, err := h.controller(5, 10).Resize(context.Background(), Down)
	assert.NoError(t, err)
	assert.False(t, resized)
}

func TestResizeEmptyGroupUp(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-1", "1.2", 0, 0))
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-1", int64(1)).Return(nil)

	resized, err := h.controller(0, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
	assert.True(t, resized)
}

func TestResizePicksHighestBid(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-cheap", "1.2", 5, 5), taskGroup("ig-expensive", "1.5", 5, 5))
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-expensive", int64(6)).Return(nil).Times(1)

	resized, err := h.controller(5, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
	assert.True(t, resized)
}

func TestResizeFallsBackToLowerBidWhenOutOfBounds(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-cheap", "1.2", 5, 5), taskGroup("ig-expensive", "1.5", 10, 10))
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-cheap", int64(6)).Return(nil)

	resized, err := h.controller(5, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
	assert.True(t, resized)
}

func TestResizeSkipsGroupWhoseTargetEqualsCurrent(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	// An empty group can't shrink, so the next group is used.
	h.listReturns(taskGroup("ig-empty", "2.0", 0, 0), taskGroup("ig-1", "1.0", 6, 6))
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-1", int64(4)).Return(nil)

	resized, err := h.controller(0, 10).Resize(context.Background(), Down)
	assert.NoError(t, err)
	assert.True(t, resized)
}

func TestResizeOnDemandPriceRanksFirst(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(
		taskGroup("ig-numeric", "9.99", 5, 5),
		taskGroup("ig-bad", "cheap", 5, 5),
		taskGroup("ig-ondemand", OnDemandPrice, 5, 5),
	)
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-ondemand", int64(6)).Return(nil)

	resized, err := h.controller(0, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
	assert.True(t, resized)
}

func TestResizeEqualBidsKeepApiOrder(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-first", "1.2", 5, 5), taskGroup("ig-second", "1.2", 5, 5))
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-first", int64(6)).Return(nil)

	_, err := h.controller(0, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
}

func TestResizeNoGroups(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns()
	resized, err := h.controller(0, 10).Resize(context.Background(), Up)
	assert.NoError(t, err)
	assert.False(t, resized)
}

func TestResizePropagatesModifyError(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.listReturns(taskGroup("ig-1", "1.2", 5, 5), taskGroup("ig-2", "1.0", 5, 5))
	h.groups.EXPECT().ModifyInstanceGroup(gomock.Any(), "ig-1", int64(6)).
		Return(NewCollaboratorError("emr.ModifyInstanceGroups", fmt.Errorf("throttled")))

	resized, err := h.controller(0, 10).Resize(context.Background(), Up)
	assert.False(t, resized)
	assert.Error(t, err)
	assert.True(t, IsCollaboratorError(err))
}

func TestListErrorPropagates(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.groups.EXPECT().ListInstanceGroups(gomock.Any(), testClusterID).
		Return(nil, NewCollaboratorError("emr.ListInstanceGroups", fmt.Errorf("access denied")))

	_, err := h.controller(0, 10).ScalingInProgress(context.Background())
	assert.True(t, IsCollaboratorError(err))
	assert.False(t, IsNoData(err))
}

func TestIsTerminationProtectedDelegates(t *testing.T) {
	h := makeControllerHelper(t)
	defer h.mockCtrl.Finish()

	h.signals.EXPECT().IsTerminationProtected(gomock.Any()).Return(true, nil)
	protected, err := h.controller(0, 10).IsTerminationProtected(context.Background())
	assert.NoError(t, err)
	assert.True(t, protected)
}
