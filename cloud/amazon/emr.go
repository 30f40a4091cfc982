package amazon

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/emr"
	"github.com/aws/aws-sdk-go/service/emr/emriface"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/cloud/cluster"
)

// EMRGroups lists and resizes instance groups through the EMR API.
type EMRGroups struct {
	clusterID string
	api       emriface.EMRAPI
}

func NewEMRGroups(clusterID string, api emriface.EMRAPI) *EMRGroups {
	return &EMRGroups{clusterID: clusterID, api: api}
}

// ListInstanceGroups returns every instance group of the cluster, following pagination.
func (e *EMRGroups) ListInstanceGroups(ctx context.Context, clusterID string) ([]cluster.InstanceGroup, error) {
	var groups []cluster.InstanceGroup
	input := &emr.ListInstanceGroupsInput{ClusterId: aws.String(clusterID)}
	err := e.api.ListInstanceGroupsPagesWithContext(ctx, input,
		func(page *emr.ListInstanceGroupsOutput, lastPage bool) bool {
			for _, ig := range page.InstanceGroups {
				groups = append(groups, fromEMR(ig))
			}
			return true
		})
	if err != nil {
		return nil, cluster.NewCollaboratorError("emr.ListInstanceGroups", err)
	}
	return groups, nil
}

// ModifyInstanceGroup sets the requested instance count of one group of the cluster.
func (e *EMRGroups) ModifyInstanceGroup(ctx context.Context, groupID string, count int64) error {
	input := &emr.ModifyInstanceGroupsInput{
		ClusterId: aws.String(e.clusterID),
		InstanceGroups: []*emr.InstanceGroupModifyConfig{
			{
				InstanceGroupId: aws.String(groupID),
				InstanceCount:   aws.Int64(count),
			},
		},
	}
	log.WithFields(
		log.Fields{
			"cluster": e.clusterID,
			"groupID": groupID,
			"count":   count,
		}).Debug("modifying instance group")
	if _, err := e.api.ModifyInstanceGroupsWithContext(ctx, input); err != nil {
		return cluster.NewCollaboratorError("emr.ModifyInstanceGroups", err)
	}
	return nil
}

func fromEMR(ig *emr.InstanceGroup) cluster.InstanceGroup {
	return cluster.InstanceGroup{
		ID:             aws.StringValue(ig.Id),
		Name:           aws.StringValue(ig.Name),
		InstanceType:   aws.StringValue(ig.InstanceType),
		Type:           cluster.GroupType(aws.StringValue(ig.InstanceGroupType)),
		BidPrice:       aws.StringValue(ig.BidPrice),
		RequestedCount: aws.Int64Value(ig.RequestedInstanceCount),
		RunningCount:   aws.Int64Value(ig.RunningInstanceCount),
	}
}
