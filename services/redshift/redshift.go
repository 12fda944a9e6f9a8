// Package redshift provides the client and types for making API
// requests to Amazon Redshift over the AWS JSON protocol.
package redshift

import (
	"context"

	awsjson "github.com/awsjson/awsjson.go"
	"github.com/awsjson/awsjson.go/pkg/connection"
)

const (
	ServiceName = "Redshift"
	EndpointsID = "redshift"
)

// Service describes how Redshift is reached.
var Service = connection.ServiceInfo{
	Name:           ServiceName,
	EndpointPrefix: EndpointsID,
	TargetPrefix:   "RedshiftServiceVersion20121201",
	JSONVersion:    "1.1",
	APIVersion:     "2012-12-01",
	Protocol:       connection.ProtocolJSON,
	Errors:         []string{ErrCodeUnauthorizedOperation},
}

// Redshift is the client for Amazon Redshift. It is safe to use concurrently.
type Redshift struct {
	client *awsjson.Client
}

func New(conf *connection.Config) (*Redshift, error) {
	client, err := awsjson.New(conf.WithService(Service))
	if err != nil {
		return nil, err
	}
	return &Redshift{client: client}, nil
}

func FromClient(client *awsjson.Client) *Redshift {
	return &Redshift{client: client}
}

var (
	opCreateCluster = &connection.Operation{Name: "CreateCluster", Errors: []string{
		ErrCodeClusterAlreadyExistsFault,
		ErrCodeClusterQuotaExceededFault,
		ErrCodeInsufficientClusterCapacityFault,
		ErrCodeInvalidTagFault,
		ErrCodeTagLimitExceededFault,
		ErrCodeLimitExceededFault,
	}}
	opDescribeClusters = &connection.Operation{Name: "DescribeClusters", Errors: []string{
		ErrCodeClusterNotFoundFault,
		ErrCodeInvalidTagFault,
	}}
	opModifyCluster = &connection.Operation{Name: "ModifyCluster", Errors: []string{
		ErrCodeClusterNotFoundFault,
		ErrCodeClusterAlreadyExistsFault,
		ErrCodeInvalidClusterStateFault,
		ErrCodeInsufficientClusterCapacityFault,
		ErrCodeUnsupportedOperationFault,
		ErrCodeLimitExceededFault,
	}}
	opDeleteCluster = &connection.Operation{Name: "DeleteCluster", Errors: []string{
		ErrCodeClusterNotFoundFault,
		ErrCodeInvalidClusterStateFault,
	}}
	opPauseCluster = &connection.Operation{Name: "PauseCluster", Errors: []string{
		ErrCodeClusterNotFoundFault,
		ErrCodeInvalidClusterStateFault,
	}}
	opResumeCluster = &connection.Operation{Name: "ResumeCluster", Errors: []string{
		ErrCodeClusterNotFoundFault,
		ErrCodeInvalidClusterStateFault,
		ErrCodeInsufficientClusterCapacityFault,
	}}
	opRebootCluster = &connection.Operation{Name: "RebootCluster", Errors: []string{
		ErrCodeClusterNotFoundFault,
		ErrCodeInvalidClusterStateFault,
	}}
	opDescribeClusterSnapshots = &connection.Operation{Name: "DescribeClusterSnapshots", Errors: []string{
		ErrCodeClusterNotFoundFault,
		ErrCodeClusterSnapshotNotFoundFault,
		ErrCodeInvalidTagFault,
	}}
	opCreateTags = &connection.Operation{Name: "CreateTags", Errors: []string{
		ErrCodeTagLimitExceededFault,
		ErrCodeResourceNotFoundFault,
		ErrCodeInvalidTagFault,
		ErrCodeInvalidClusterStateFault,
	}}
	opDeleteTags = &connection.Operation{Name: "DeleteTags", Errors: []string{
		ErrCodeResourceNotFoundFault,
		ErrCodeInvalidTagFault,
	}}
)

func (c *Redshift) CreateCluster(ctx context.Context, input *CreateClusterInput) (*CreateClusterOutput, error) {
	return awsjson.Invoke[CreateClusterOutput](ctx, c.client, opCreateCluster, input)
}

func (c *Redshift) DescribeClusters(ctx context.Context, input *DescribeClustersInput) (*DescribeClustersOutput, error) {
	return awsjson.Invoke[DescribeClustersOutput](ctx, c.client, opDescribeClusters, input)
}

func (c *Redshift) ModifyCluster(ctx context.Context, input *ModifyClusterInput) (*ModifyClusterOutput, error) {
	return awsjson.Invoke[ModifyClusterOutput](ctx, c.client, opModifyCluster, input)
}

func (c *Redshift) DeleteCluster(ctx context.Context, input *DeleteClusterInput) (*DeleteClusterOutput, error) {
	return awsjson.Invoke[DeleteClusterOutput](ctx, c.client, opDeleteCluster, input)
}

func (c *Redshift) PauseCluster(ctx context.Context, input *PauseClusterInput) (*PauseClusterOutput, error) {
	return awsjson.Invoke[PauseClusterOutput](ctx, c.client, opPauseCluster, input)
}

func (c *Redshift) ResumeCluster(ctx context.Context, input *ResumeClusterInput) (*ResumeClusterOutput, error) {
	return awsjson.Invoke[ResumeClusterOutput](ctx, c.client, opResumeCluster, input)
}

func (c *Redshift) RebootCluster(ctx context.Context, input *RebootClusterInput) (*RebootClusterOutput, error) {
	return awsjson.Invoke[RebootClusterOutput](ctx, c.client, opRebootCluster, input)
}

func (c *Redshift) DescribeClusterSnapshots(ctx context.Context, input *DescribeClusterSnapshotsInput) (*DescribeClusterSnapshotsOutput, error) {
	return awsjson.Invoke[DescribeClusterSnapshotsOutput](ctx, c.client, opDescribeClusterSnapshots, input)
}

func (c *Redshift) CreateTags(ctx context.Context, input *CreateTagsInput) error {
	return awsjson.InvokeVoid(ctx, c.client, opCreateTags, input)
}

func (c *Redshift) DeleteTags(ctx context.Context, input *DeleteTagsInput) error {
	return awsjson.InvokeVoid(ctx, c.client, opDeleteTags, input)
}
