package sagemaker

const (

	// ErrCodeResourceInUse for service response error code
	// "ResourceInUse".
	//
	// Resource being accessed is in use.
	ErrCodeResourceInUse = "ResourceInUse"

	// ErrCodeResourceLimitExceeded for service response error code
	// "ResourceLimitExceeded".
	//
	// You have exceeded an SageMaker resource limit. For example, you might have
	// too many training jobs created.
	ErrCodeResourceLimitExceeded = "ResourceLimitExceeded"

	// ErrCodeResourceNotFound for service response error code
	// "ResourceNotFound".
	//
	// Resource being access is not found.
	ErrCodeResourceNotFound = "ResourceNotFound"
)
