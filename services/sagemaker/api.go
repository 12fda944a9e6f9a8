package sagemaker

import "context"

// SageMakerAPI provides an interface to enable mocking the
// sagemaker.SageMaker service client's API operation.
//
// Every operation is a single request/response exchange. Failures are
// *connection.ServiceError for errors signaled by SageMaker, with the codes in
// this package's ErrCode constants, and *connection.RequestError for local
// failures such as a broken connection or an undecodable response.
//
// Long-running resources, e.g. a notebook instance moving from Pending to
// InService, are observed by calling the Describe operation again.
type SageMakerAPI interface {
	// AddTags adds or overwrites one or more tags for the specified SageMaker resource.
	// Each tag consists of a key and an optional value. Tag keys must be unique per resource.
	AddTags(ctx context.Context, input *AddTagsInput) (*AddTagsOutput, error)

	// ListTags returns the tags for the specified SageMaker resource.
	ListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error)

	// DeleteTags deletes the specified tags from a SageMaker resource.
	DeleteTags(ctx context.Context, input *DeleteTagsInput) (*DeleteTagsOutput, error)

	// ListAlgorithms lists the machine learning algorithms that have been created.
	ListAlgorithms(ctx context.Context, input *ListAlgorithmsInput) (*ListAlgorithmsOutput, error)

	// DescribeAlgorithm returns a description of the specified algorithm that is in your account.
	DescribeAlgorithm(ctx context.Context, input *DescribeAlgorithmInput) (*DescribeAlgorithmOutput, error)

	// DeleteAlgorithm removes the specified algorithm from your account.
	DeleteAlgorithm(ctx context.Context, input *DeleteAlgorithmInput) error

	// CreateNotebookInstance creates an ML compute instance running the Jupyter Notebook App.
	//
	// Returned error codes:
	//   - ErrCodeResourceLimitExceeded
	CreateNotebookInstance(ctx context.Context, input *CreateNotebookInstanceInput) (*CreateNotebookInstanceOutput, error)

	// DescribeNotebookInstance returns information about a notebook instance.
	DescribeNotebookInstance(ctx context.Context, input *DescribeNotebookInstanceInput) (*DescribeNotebookInstanceOutput, error)

	// UpdateNotebookInstance updates a notebook instance. Instance type, ML storage
	// volume size and the IAM role can be changed while the instance is stopped.
	//
	// Returned error codes:
	//   - ErrCodeResourceLimitExceeded
	UpdateNotebookInstance(ctx context.Context, input *UpdateNotebookInstanceInput) (*UpdateNotebookInstanceOutput, error)

	// ListNotebookInstances returns a list of the notebook instances in the requester's
	// account in an AWS Region.
	ListNotebookInstances(ctx context.Context, input *ListNotebookInstancesInput) (*ListNotebookInstancesOutput, error)

	// StartNotebookInstance launches an ML compute instance with the latest version
	// of the libraries and attaches your ML storage volume.
	//
	// Returned error codes:
	//   - ErrCodeResourceLimitExceeded
	StartNotebookInstance(ctx context.Context, input *StartNotebookInstanceInput) error

	// StopNotebookInstance terminates the ML compute instance. The ML storage volume is kept.
	StopNotebookInstance(ctx context.Context, input *StopNotebookInstanceInput) error

	// DeleteNotebookInstance deletes a notebook instance. It must be stopped first.
	DeleteNotebookInstance(ctx context.Context, input *DeleteNotebookInstanceInput) error
}

var _ SageMakerAPI = (*SageMaker)(nil)
