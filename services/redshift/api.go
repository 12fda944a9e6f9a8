package redshift

import "context"

// RedshiftAPI provides an interface to enable mocking the
// redshift.Redshift service client's API operation.
type RedshiftAPI interface {
	// CreateCluster creates a new cluster with the specified parameters.
	CreateCluster(ctx context.Context, input *CreateClusterInput) (*CreateClusterOutput, error)

	// DescribeClusters returns properties of provisioned clusters. Results are
	// paged with MaxRecords and Marker.
	DescribeClusters(ctx context.Context, input *DescribeClustersInput) (*DescribeClustersOutput, error)

	// ModifyCluster modifies the settings for a cluster.
	ModifyCluster(ctx context.Context, input *ModifyClusterInput) (*ModifyClusterOutput, error)

	// DeleteCluster deletes a previously provisioned cluster. A final snapshot is
	// taken unless SkipFinalClusterSnapshot is true.
	DeleteCluster(ctx context.Context, input *DeleteClusterInput) (*DeleteClusterOutput, error)

	PauseCluster(ctx context.Context, input *PauseClusterInput) (*PauseClusterOutput, error)
	ResumeCluster(ctx context.Context, input *ResumeClusterInput) (*ResumeClusterOutput, error)

	// RebootCluster reboots a cluster. The cluster status is set to rebooting
	// while it is in progress.
	RebootCluster(ctx context.Context, input *RebootClusterInput) (*RebootClusterOutput, error)

	// DescribeClusterSnapshots returns one or more snapshot objects, optionally
	// restricted to a creation time window.
	DescribeClusterSnapshots(ctx context.Context, input *DescribeClusterSnapshotsInput) (*DescribeClusterSnapshotsOutput, error)

	// CreateTags adds tags to a cluster. A resource can have up to 50 tags.
	CreateTags(ctx context.Context, input *CreateTagsInput) error

	// DeleteTags deletes tags from a resource.
	DeleteTags(ctx context.Context, input *DeleteTagsInput) error
}

var _ RedshiftAPI = (*Redshift)(nil)
