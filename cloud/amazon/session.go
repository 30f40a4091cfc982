// Package amazon implements the cluster interfaces on top of EMR, CloudWatch and CloudFormation.
package amazon

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/emr"
	"github.com/pkg/errors"
)

// NewSession creates an AWS session. An empty region leaves it to the SDK's default chain.
func NewSession(region string) (*session.Session, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating aws session")
	}
	return sess, nil
}

// Clients groups the service clients one cluster needs.
type Clients struct {
	EMR            *emr.EMR
	CloudWatch     *cloudwatch.CloudWatch
	CloudFormation *cloudformation.CloudFormation
}

func NewClients(sess *session.Session) *Clients {
	return &Clients{
		EMR:            emr.New(sess),
		CloudWatch:     cloudwatch.New(sess),
		CloudFormation: cloudformation.New(sess),
	}
}
