package redshift

const (

	// ErrCodeClusterAlreadyExistsFault for service response error code
	// "ClusterAlreadyExists".
	//
	// The account already has a cluster with the given identifier.
	ErrCodeClusterAlreadyExistsFault = "ClusterAlreadyExists"

	// ErrCodeClusterNotFoundFault for service response error code
	// "ClusterNotFound".
	//
	// The ClusterIdentifier parameter does not refer to an existing cluster.
	ErrCodeClusterNotFoundFault = "ClusterNotFound"

	// ErrCodeClusterQuotaExceededFault for service response error code
	// "ClusterQuotaExceeded".
	//
	// The request would exceed the allowed number of cluster instances for this
	// account.
	ErrCodeClusterQuotaExceededFault = "ClusterQuotaExceeded"

	// ErrCodeClusterSnapshotNotFoundFault for service response error code
	// "ClusterSnapshotNotFound".
	//
	// The snapshot identifier does not refer to an existing cluster snapshot.
	ErrCodeClusterSnapshotNotFoundFault = "ClusterSnapshotNotFound"

	// ErrCodeInsufficientClusterCapacityFault for service response error code
	// "InsufficientClusterCapacity".
	//
	// The number of nodes specified exceeds the allotted capacity of the cluster.
	ErrCodeInsufficientClusterCapacityFault = "InsufficientClusterCapacity"

	// ErrCodeInvalidClusterStateFault for service response error code
	// "InvalidClusterState".
	//
	// The specified cluster is not in the available state.
	ErrCodeInvalidClusterStateFault = "InvalidClusterState"

	// ErrCodeInvalidTagFault for service response error code
	// "InvalidTagFault".
	//
	// The tag is invalid.
	ErrCodeInvalidTagFault = "InvalidTagFault"

	// ErrCodeLimitExceededFault for service response error code
	// "LimitExceededFault".
	//
	// The encryption key has exceeded its grant limit in Amazon Web Services KMS.
	ErrCodeLimitExceededFault = "LimitExceededFault"

	// ErrCodeResourceNotFoundFault for service response error code
	// "ResourceNotFoundFault".
	//
	// The resource could not be found.
	ErrCodeResourceNotFoundFault = "ResourceNotFoundFault"

	// ErrCodeTagLimitExceededFault for service response error code
	// "TagLimitExceededFault".
	//
	// You have exceeded the number of tags allowed.
	ErrCodeTagLimitExceededFault = "TagLimitExceededFault"

	// ErrCodeUnauthorizedOperation for service response error code
	// "UnauthorizedOperation".
	//
	// Your account is not authorized to perform the requested operation.
	ErrCodeUnauthorizedOperation = "UnauthorizedOperation"

	// ErrCodeUnsupportedOperationFault for service response error code
	// "UnsupportedOperation".
	//
	// The requested operation isn't supported.
	ErrCodeUnsupportedOperationFault = "UnsupportedOperation"
)
