package amazon

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/cloud/cluster"
)

// StackDeleter deletes CloudFormation stacks.
type StackDeleter struct {
	api cloudformationiface.CloudFormationAPI
}

func NewStackDeleter(api cloudformationiface.CloudFormationAPI) *StackDeleter {
	return &StackDeleter{api: api}
}

// DeleteStack requests deletion of the stack. An empty role deletes with the caller's credentials.
// Deletion is asynchronous; this doesn't wait for the stack to go away.
func (d *StackDeleter) DeleteStack(ctx context.Context, stack, role string) error {
	input := &cloudformation.DeleteStackInput{StackName: aws.String(stack)}
	if role != "" {
		input.RoleARN = aws.String(role)
	}
	if _, err := d.api.DeleteStackWithContext(ctx, input); err != nil {
		return cluster.NewCollaboratorError("cloudformation.DeleteStack", err)
	}
	log.WithFields(log.Fields{"stack": stack, "role": role}).Info("requested stack deletion")
	return nil
}
