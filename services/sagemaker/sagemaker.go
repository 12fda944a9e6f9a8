// Package sagemaker provides the client and types for making API
// requests to Amazon SageMaker Service over the AWS JSON protocol.
package sagemaker

import (
	"context"

	awsjson "github.com/awsjson/awsjson.go"
	"github.com/awsjson/awsjson.go/pkg/connection"
)

const (
	ServiceName = "SageMaker"
	EndpointsID = "api.sagemaker"
)

// Service describes how SageMaker is reached.
var Service = connection.ServiceInfo{
	Name:           ServiceName,
	EndpointPrefix: EndpointsID,
	SigningName:    "sagemaker",
	TargetPrefix:   "SageMaker",
	JSONVersion:    "1.1",
	APIVersion:     "2017-07-24",
	Protocol:       connection.ProtocolJSON,
}

// SageMaker is the client for Amazon SageMaker Service.
// It is safe to use concurrently.
type SageMaker struct {
	client *awsjson.Client
}

// New creates a SageMaker client from conf. The service info of conf is
// replaced; the endpoint is derived from the region unless conf.URL is set.
func New(conf *connection.Config) (*SageMaker, error) {
	client, err := awsjson.New(conf.WithService(Service))
	if err != nil {
		return nil, err
	}
	return &SageMaker{client: client}, nil
}

// FromClient wraps an existing client, which must talk to SageMaker.
func FromClient(client *awsjson.Client) *SageMaker {
	return &SageMaker{client: client}
}

var (
	opAddTags                  = &connection.Operation{Name: "AddTags"}
	opListTags                 = &connection.Operation{Name: "ListTags"}
	opDeleteTags               = &connection.Operation{Name: "DeleteTags"}
	opListAlgorithms           = &connection.Operation{Name: "ListAlgorithms"}
	opDescribeAlgorithm        = &connection.Operation{Name: "DescribeAlgorithm"}
	opDeleteAlgorithm          = &connection.Operation{Name: "DeleteAlgorithm"}
	opCreateNotebookInstance   = &connection.Operation{Name: "CreateNotebookInstance", Errors: []string{ErrCodeResourceLimitExceeded}}
	opDescribeNotebookInstance = &connection.Operation{Name: "DescribeNotebookInstance"}
	opUpdateNotebookInstance   = &connection.Operation{Name: "UpdateNotebookInstance", Errors: []string{ErrCodeResourceLimitExceeded}}
	opListNotebookInstances    = &connection.Operation{Name: "ListNotebookInstances"}
	opStartNotebookInstance    = &connection.Operation{Name: "StartNotebookInstance", Errors: []string{ErrCodeResourceLimitExceeded}}
	opStopNotebookInstance     = &connection.Operation{Name: "StopNotebookInstance"}
	opDeleteNotebookInstance   = &connection.Operation{Name: "DeleteNotebookInstance"}
)

func (c *SageMaker) AddTags(ctx context.Context, input *AddTagsInput) (*AddTagsOutput, error) {
	return awsjson.Invoke[AddTagsOutput](ctx, c.client, opAddTags, input)
}

func (c *SageMaker) ListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error) {
	return awsjson.Invoke[ListTagsOutput](ctx, c.client, opListTags, input)
}

func (c *SageMaker) DeleteTags(ctx context.Context, input *DeleteTagsInput) (*DeleteTagsOutput, error) {
	return awsjson.Invoke[DeleteTagsOutput](ctx, c.client, opDeleteTags, input)
}

func (c *SageMaker) ListAlgorithms(ctx context.Context, input *ListAlgorithmsInput) (*ListAlgorithmsOutput, error) {
	return awsjson.Invoke[ListAlgorithmsOutput](ctx, c.client, opListAlgorithms, input)
}

func (c *SageMaker) DescribeAlgorithm(ctx context.Context, input *DescribeAlgorithmInput) (*DescribeAlgorithmOutput, error) {
	return awsjson.Invoke[DescribeAlgorithmOutput](ctx, c.client, opDescribeAlgorithm, input)
}

func (c *SageMaker) DeleteAlgorithm(ctx context.Context, input *DeleteAlgorithmInput) error {
	return awsjson.InvokeVoid(ctx, c.client, opDeleteAlgorithm, input)
}

func (c *SageMaker) CreateNotebookInstance(ctx context.Context, input *CreateNotebookInstanceInput) (*CreateNotebookInstanceOutput, error) {
	return awsjson.Invoke[CreateNotebookInstanceOutput](ctx, c.client, opCreateNotebookInstance, input)
}

func (c *SageMaker) DescribeNotebookInstance(ctx context.Context, input *DescribeNotebookInstanceInput) (*DescribeNotebookInstanceOutput, error) {
	return awsjson.Invoke[DescribeNotebookInstanceOutput](ctx, c.client, opDescribeNotebookInstance, input)
}

func (c *SageMaker) UpdateNotebookInstance(ctx context.Context, input *UpdateNotebookInstanceInput) (*UpdateNotebookInstanceOutput, error) {
	return awsjson.Invoke[UpdateNotebookInstanceOutput](ctx, c.client, opUpdateNotebookInstance, input)
}

func (c *SageMaker) ListNotebookInstances(ctx context.Context, input *ListNotebookInstancesInput) (*ListNotebookInstancesOutput, error) {
	return awsjson.Invoke[ListNotebookInstancesOutput](ctx, c.client, opListNotebookInstances, input)
}

func (c *SageMaker) StartNotebookInstance(ctx context.Context, input *StartNotebookInstanceInput) error {
	return awsjson.InvokeVoid(ctx, c.client, opStartNotebookInstance, input)
}

func (c *SageMaker) StopNotebookInstance(ctx context.Context, input *StopNotebookInstanceInput) error {
	return awsjson.InvokeVoid(ctx, c.client, opStopNotebookInstance, input)
}

func (c *SageMaker) DeleteNotebookInstance(ctx context.Context, input *DeleteNotebookInstanceInput) error {
	return awsjson.InvokeVoid(ctx, c.client, opDeleteNotebookInstance, input)
}
