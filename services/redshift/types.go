package redshift

import (
	"time"

	"github.com/awsjson/awsjson.go/jsonwire"
)

const (
	SnapshotTypeAutomated = "automated"
	SnapshotTypeManual    = "manual"
)

const (
	ClusterStatusAvailable = "available"
	ClusterStatusCreating  = "creating"
	ClusterStatusDeleting  = "deleting"
	ClusterStatusModifying = "modifying"
	ClusterStatusPaused    = "paused"
	ClusterStatusRebooting = "rebooting"
	ClusterStatusResizing  = "resizing"
)

// Tag is a tag consisting of a name/value pair for a resource.
type Tag struct {
	Key   *string
	Value *string
}

var tagSchema = jsonwire.NewSchema("Tag",
	jsonwire.Field("Key", func(r *Tag) **string { return &r.Key }, jsonwire.String()),
	jsonwire.Field("Value", func(r *Tag) **string { return &r.Value }, jsonwire.String()),
)

var (
	tagList    = jsonwire.List(jsonwire.Record(tagSchema))
	stringList = jsonwire.List(jsonwire.String())
)

// Endpoint describes a connection endpoint.
type Endpoint struct {
	Address *string
	Port    *int64
}

var endpointSchema = jsonwire.NewSchema("Endpoint",
	jsonwire.Field("Address", func(r *Endpoint) **string { return &r.Address }, jsonwire.String()),
	jsonwire.Field("Port", func(r *Endpoint) **int64 { return &r.Port }, jsonwire.Int64()),
)

// Cluster describes a cluster.
type Cluster struct {
	ClusterIdentifier                *string
	NodeType                         *string
	ClusterStatus                    *string
	ClusterAvailabilityStatus        *string
	ModifyStatus                     *string
	MasterUsername                   *string
	DBName                           *string
	Endpoint                         *Endpoint
	ClusterCreateTime                *time.Time
	AutomatedSnapshotRetentionPeriod *int64
	ManualSnapshotRetentionPeriod    *int64
	ClusterSubnetGroupName           *string
	VpcId                            *string
	AvailabilityZone                 *string
	PreferredMaintenanceWindow       *string
	ClusterVersion                   *string
	AllowVersionUpgrade              *bool
	NumberOfNodes                    *int64
	PubliclyAccessible               *bool
	Encrypted                        *bool
	Tags                             []*Tag
	KmsKeyId                         *string
	EnhancedVpcRouting               *bool
	PendingActions                   []*string
	MaintenanceTrackName             *string
	NextMaintenanceWindowStartTime   *time.Time
}

var clusterSchema = jsonwire.NewSchema("Cluster",
	jsonwire.Field("ClusterIdentifier", func(r *Cluster) **string { return &r.ClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("NodeType", func(r *Cluster) **string { return &r.NodeType }, jsonwire.String()),
	jsonwire.Field("ClusterStatus", func(r *Cluster) **string { return &r.ClusterStatus }, jsonwire.String()),
	jsonwire.Field("ClusterAvailabilityStatus", func(r *Cluster) **string { return &r.ClusterAvailabilityStatus }, jsonwire.String()),
	jsonwire.Field("ModifyStatus", func(r *Cluster) **string { return &r.ModifyStatus }, jsonwire.String()),
	jsonwire.Field("MasterUsername", func(r *Cluster) **string { return &r.MasterUsername }, jsonwire.String()),
	jsonwire.Field("DBName", func(r *Cluster) **string { return &r.DBName }, jsonwire.String()),
	jsonwire.Field("Endpoint", func(r *Cluster) **Endpoint { return &r.Endpoint }, jsonwire.Record(endpointSchema)),
	jsonwire.Field("ClusterCreateTime", func(r *Cluster) **time.Time { return &r.ClusterCreateTime }, jsonwire.Time()),
	jsonwire.Field("AutomatedSnapshotRetentionPeriod", func(r *Cluster) **int64 { return &r.AutomatedSnapshotRetentionPeriod }, jsonwire.Int64()),
	jsonwire.Field("ManualSnapshotRetentionPeriod", func(r *Cluster) **int64 { return &r.ManualSnapshotRetentionPeriod }, jsonwire.Int64()),
	jsonwire.Field("ClusterSubnetGroupName", func(r *Cluster) **string { return &r.ClusterSubnetGroupName }, jsonwire.String()),
	jsonwire.Field("VpcId", func(r *Cluster) **string { return &r.VpcId }, jsonwire.String()),
	jsonwire.Field("AvailabilityZone", func(r *Cluster) **string { return &r.AvailabilityZone }, jsonwire.String()),
	jsonwire.Field("PreferredMaintenanceWindow", func(r *Cluster) **string { return &r.PreferredMaintenanceWindow }, jsonwire.String()),
	jsonwire.Field("ClusterVersion", func(r *Cluster) **string { return &r.ClusterVersion }, jsonwire.String()),
	jsonwire.Field("AllowVersionUpgrade", func(r *Cluster) **bool { return &r.AllowVersionUpgrade }, jsonwire.Bool()),
	jsonwire.Field("NumberOfNodes", func(r *Cluster) **int64 { return &r.NumberOfNodes }, jsonwire.Int64()),
	jsonwire.Field("PubliclyAccessible", func(r *Cluster) **bool { return &r.PubliclyAccessible }, jsonwire.Bool()),
	jsonwire.Field("Encrypted", func(r *Cluster) **bool { return &r.Encrypted }, jsonwire.Bool()),
	jsonwire.Field("Tags", func(r *Cluster) *[]*Tag { return &r.Tags }, tagList),
	jsonwire.Field("KmsKeyId", func(r *Cluster) **string { return &r.KmsKeyId }, jsonwire.String()),
	jsonwire.Field("EnhancedVpcRouting", func(r *Cluster) **bool { return &r.EnhancedVpcRouting }, jsonwire.Bool()),
	jsonwire.Field("PendingActions", func(r *Cluster) *[]*string { return &r.PendingActions }, stringList),
	jsonwire.Field("MaintenanceTrackName", func(r *Cluster) **string { return &r.MaintenanceTrackName }, jsonwire.String()),
	jsonwire.Field("NextMaintenanceWindowStartTime", func(r *Cluster) **time.Time { return &r.NextMaintenanceWindowStartTime }, jsonwire.Time()),
)

type CreateClusterInput struct {
	DBName                           *string
	ClusterIdentifier                *string
	ClusterType                      *string
	NodeType                         *string
	MasterUsername                   *string
	MasterUserPassword               *string
	ClusterSecurityGroups            []*string
	VpcSecurityGroupIds              []*string
	ClusterSubnetGroupName           *string
	AvailabilityZone                 *string
	PreferredMaintenanceWindow       *string
	ClusterParameterGroupName        *string
	AutomatedSnapshotRetentionPeriod *int64
	ManualSnapshotRetentionPeriod    *int64
	Port                             *int64
	ClusterVersion                   *string
	AllowVersionUpgrade              *bool
	NumberOfNodes                    *int64
	PubliclyAccessible               *bool
	Encrypted                        *bool
	Tags                             []*Tag
	KmsKeyId                         *string
	EnhancedVpcRouting               *bool
	IamRoles                         []*string
	MaintenanceTrackName             *string
}

var _ = jsonwire.NewSchema("CreateClusterInput",
	jsonwire.Field("DBName", func(r *CreateClusterInput) **string { return &r.DBName }, jsonwire.String()),
	jsonwire.Field("ClusterIdentifier", func(r *CreateClusterInput) **string { return &r.ClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("ClusterType", func(r *CreateClusterInput) **string { return &r.ClusterType }, jsonwire.String()),
	jsonwire.Field("NodeType", func(r *CreateClusterInput) **string { return &r.NodeType }, jsonwire.String()),
	jsonwire.Field("MasterUsername", func(r *CreateClusterInput) **string { return &r.MasterUsername }, jsonwire.String()),
	jsonwire.Field("MasterUserPassword", func(r *CreateClusterInput) **string { return &r.MasterUserPassword }, jsonwire.String()),
	jsonwire.Field("ClusterSecurityGroups", func(r *CreateClusterInput) *[]*string { return &r.ClusterSecurityGroups }, stringList),
	jsonwire.Field("VpcSecurityGroupIds", func(r *CreateClusterInput) *[]*string { return &r.VpcSecurityGroupIds }, stringList),
	jsonwire.Field("ClusterSubnetGroupName", func(r *CreateClusterInput) **string { return &r.ClusterSubnetGroupName }, jsonwire.String()),
	jsonwire.Field("AvailabilityZone", func(r *CreateClusterInput) **string { return &r.AvailabilityZone }, jsonwire.String()),
	jsonwire.Field("PreferredMaintenanceWindow", func(r *CreateClusterInput) **string { return &r.PreferredMaintenanceWindow }, jsonwire.String()),
	jsonwire.Field("ClusterParameterGroupName", func(r *CreateClusterInput) **string { return &r.ClusterParameterGroupName }, jsonwire.String()),
	jsonwire.Field("AutomatedSnapshotRetentionPeriod", func(r *CreateClusterInput) **int64 { return &r.AutomatedSnapshotRetentionPeriod }, jsonwire.Int64()),
	jsonwire.Field("ManualSnapshotRetentionPeriod", func(r *CreateClusterInput) **int64 { return &r.ManualSnapshotRetentionPeriod }, jsonwire.Int64()),
	jsonwire.Field("Port", func(r *CreateClusterInput) **int64 { return &r.Port }, jsonwire.Int64()),
	jsonwire.Field("ClusterVersion", func(r *CreateClusterInput) **string { return &r.ClusterVersion }, jsonwire.String()),
	jsonwire.Field("AllowVersionUpgrade", func(r *CreateClusterInput) **bool { return &r.AllowVersionUpgrade }, jsonwire.Bool()),
	jsonwire.Field("NumberOfNodes", func(r *CreateClusterInput) **int64 { return &r.NumberOfNodes }, jsonwire.Int64()),
	jsonwire.Field("PubliclyAccessible", func(r *CreateClusterInput) **bool { return &r.PubliclyAccessible }, jsonwire.Bool()),
	jsonwire.Field("Encrypted", func(r *CreateClusterInput) **bool { return &r.Encrypted }, jsonwire.Bool()),
	jsonwire.Field("Tags", func(r *CreateClusterInput) *[]*Tag { return &r.Tags }, tagList),
	jsonwire.Field("KmsKeyId", func(r *CreateClusterInput) **string { return &r.KmsKeyId }, jsonwire.String()),
	jsonwire.Field("EnhancedVpcRouting", func(r *CreateClusterInput) **bool { return &r.EnhancedVpcRouting }, jsonwire.Bool()),
	jsonwire.Field("IamRoles", func(r *CreateClusterInput) *[]*string { return &r.IamRoles }, stringList),
	jsonwire.Field("MaintenanceTrackName", func(r *CreateClusterInput) **string { return &r.MaintenanceTrackName }, jsonwire.String()),
)

// ClusterOutput carries the cluster returned by the operations that act on one cluster.
type ClusterOutput struct {
	Cluster *Cluster
}

var _ = jsonwire.NewSchema("ClusterOutput",
	jsonwire.Field("Cluster", func(r *ClusterOutput) **Cluster { return &r.Cluster }, jsonwire.Record(clusterSchema)),
)

type (
	CreateClusterOutput = ClusterOutput
	ModifyClusterOutput = ClusterOutput
	DeleteClusterOutput = ClusterOutput
	PauseClusterOutput  = ClusterOutput
	ResumeClusterOutput = ClusterOutput
	RebootClusterOutput = ClusterOutput
)

type DescribeClustersInput struct {
	ClusterIdentifier *string
	MaxRecords        *int64
	Marker            *string
	TagKeys           []*string
	TagValues         []*string
}

var _ = jsonwire.NewSchema("DescribeClustersInput",
	jsonwire.Field("ClusterIdentifier", func(r *DescribeClustersInput) **string { return &r.ClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("MaxRecords", func(r *DescribeClustersInput) **int64 { return &r.MaxRecords }, jsonwire.Int64()),
	jsonwire.Field("Marker", func(r *DescribeClustersInput) **string { return &r.Marker }, jsonwire.String()),
	jsonwire.Field("TagKeys", func(r *DescribeClustersInput) *[]*string { return &r.TagKeys }, stringList),
	jsonwire.Field("TagValues", func(r *DescribeClustersInput) *[]*string { return &r.TagValues }, stringList),
)

type DescribeClustersOutput struct {
	Marker   *string
	Clusters []*Cluster
}

var _ = jsonwire.NewSchema("DescribeClustersOutput",
	jsonwire.Field("Marker", func(r *DescribeClustersOutput) **string { return &r.Marker }, jsonwire.String()),
	jsonwire.Field("Clusters", func(r *DescribeClustersOutput) *[]*Cluster { return &r.Clusters }, jsonwire.List(jsonwire.Record(clusterSchema))),
)

type ModifyClusterInput struct {
	ClusterIdentifier                *string
	ClusterType                      *string
	NodeType                         *string
	NumberOfNodes                    *int64
	ClusterSecurityGroups            []*string
	VpcSecurityGroupIds              []*string
	MasterUserPassword               *string
	ClusterParameterGroupName        *string
	AutomatedSnapshotRetentionPeriod *int64
	ManualSnapshotRetentionPeriod    *int64
	PreferredMaintenanceWindow       *string
	ClusterVersion                   *string
	AllowVersionUpgrade              *bool
	NewClusterIdentifier             *string
	PubliclyAccessible               *bool
	ElasticIp                        *string
	EnhancedVpcRouting               *bool
	MaintenanceTrackName             *string
	Encrypted                        *bool
	KmsKeyId                         *string
}

var _ = jsonwire.NewSchema("ModifyClusterInput",
	jsonwire.Field("ClusterIdentifier", func(r *ModifyClusterInput) **string { return &r.ClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("ClusterType", func(r *ModifyClusterInput) **string { return &r.ClusterType }, jsonwire.String()),
	jsonwire.Field("NodeType", func(r *ModifyClusterInput) **string { return &r.NodeType }, jsonwire.String()),
	jsonwire.Field("NumberOfNodes", func(r *ModifyClusterInput) **int64 { return &r.NumberOfNodes }, jsonwire.Int64()),
	jsonwire.Field("ClusterSecurityGroups", func(r *ModifyClusterInput) *[]*string { return &r.ClusterSecurityGroups }, stringList),
	jsonwire.Field("VpcSecurityGroupIds", func(r *ModifyClusterInput) *[]*string { return &r.VpcSecurityGroupIds }, stringList),
	jsonwire.Field("MasterUserPassword", func(r *ModifyClusterInput) **string { return &r.MasterUserPassword }, jsonwire.String()),
	jsonwire.Field("ClusterParameterGroupName", func(r *ModifyClusterInput) **string { return &r.ClusterParameterGroupName }, jsonwire.String()),
	jsonwire.Field("AutomatedSnapshotRetentionPeriod", func(r *ModifyClusterInput) **int64 { return &r.AutomatedSnapshotRetentionPeriod }, jsonwire.Int64()),
	jsonwire.Field("ManualSnapshotRetentionPeriod", func(r *ModifyClusterInput) **int64 { return &r.ManualSnapshotRetentionPeriod }, jsonwire.Int64()),
	jsonwire.Field("PreferredMaintenanceWindow", func(r *ModifyClusterInput) **string { return &r.PreferredMaintenanceWindow }, jsonwire.String()),
	jsonwire.Field("ClusterVersion", func(r *ModifyClusterInput) **string { return &r.ClusterVersion }, jsonwire.String()),
	jsonwire.Field("AllowVersionUpgrade", func(r *ModifyClusterInput) **bool { return &r.AllowVersionUpgrade }, jsonwire.Bool()),
	jsonwire.Field("NewClusterIdentifier", func(r *ModifyClusterInput) **string { return &r.NewClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("PubliclyAccessible", func(r *ModifyClusterInput) **bool { return &r.PubliclyAccessible }, jsonwire.Bool()),
	jsonwire.Field("ElasticIp", func(r *ModifyClusterInput) **string { return &r.ElasticIp }, jsonwire.String()),
	jsonwire.Field("EnhancedVpcRouting", func(r *ModifyClusterInput) **bool { return &r.EnhancedVpcRouting }, jsonwire.Bool()),
	jsonwire.Field("MaintenanceTrackName", func(r *ModifyClusterInput) **string { return &r.MaintenanceTrackName }, jsonwire.String()),
	jsonwire.Field("Encrypted", func(r *ModifyClusterInput) **bool { return &r.Encrypted }, jsonwire.Bool()),
	jsonwire.Field("KmsKeyId", func(r *ModifyClusterInput) **string { return &r.KmsKeyId }, jsonwire.String()),
)

type DeleteClusterInput struct {
	ClusterIdentifier                   *string
	SkipFinalClusterSnapshot            *bool
	FinalClusterSnapshotIdentifier      *string
	FinalClusterSnapshotRetentionPeriod *int64
}

var _ = jsonwire.NewSchema("DeleteClusterInput",
	jsonwire.Field("ClusterIdentifier", func(r *DeleteClusterInput) **string { return &r.ClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("SkipFinalClusterSnapshot", func(r *DeleteClusterInput) **bool { return &r.SkipFinalClusterSnapshot }, jsonwire.Bool()),
	jsonwire.Field("FinalClusterSnapshotIdentifier", func(r *DeleteClusterInput) **string { return &r.FinalClusterSnapshotIdentifier }, jsonwire.String()),
	jsonwire.Field("FinalClusterSnapshotRetentionPeriod", func(r *DeleteClusterInput) **int64 {
		return &r.FinalClusterSnapshotRetentionPeriod
	}, jsonwire.Int64()),
)

// ClusterIdentifierInput names the cluster for the pause, resume and reboot operations.
type ClusterIdentifierInput struct {
	ClusterIdentifier *string
}

var _ = jsonwire.NewSchema("ClusterIdentifierInput",
	jsonwire.Field("ClusterIdentifier", func(r *ClusterIdentifierInput) **string { return &r.ClusterIdentifier }, jsonwire.String()),
)

type (
	PauseClusterInput  = ClusterIdentifierInput
	ResumeClusterInput = ClusterIdentifierInput
	RebootClusterInput = ClusterIdentifierInput
)

// Snapshot describes a snapshot.
type Snapshot struct {
	SnapshotIdentifier                     *string
	ClusterIdentifier                      *string
	SnapshotCreateTime                     *time.Time
	Status                                 *string
	Port                                   *int64
	AvailabilityZone                       *string
	ClusterCreateTime                      *time.Time
	MasterUsername                         *string
	ClusterVersion                         *string
	SnapshotType                           *string
	NodeType                               *string
	NumberOfNodes                          *int64
	DBName                                 *string
	VpcId                                  *string
	Encrypted                              *bool
	KmsKeyId                               *string
	OwnerAccount                           *string
	TotalBackupSizeInMegaBytes             *float64
	ActualIncrementalBackupSizeInMegaBytes *float64
	BackupProgressInMegaBytes              *float64
	CurrentBackupRateInMegaBytesPerSecond  *float64
	EstimatedSecondsToCompletion           *int64
	ElapsedTimeInSeconds                   *int64
	SourceRegion                           *string
	Tags                                   []*Tag
	RestorableNodeTypes                    []*string
	ManualSnapshotRetentionPeriod          *int64
	ManualSnapshotRemainingDays            *int64
	SnapshotRetentionStartTime             *time.Time
}

var snapshotSchema = jsonwire.NewSchema("Snapshot",
	jsonwire.Field("SnapshotIdentifier", func(r *Snapshot) **string { return &r.SnapshotIdentifier }, jsonwire.String()),
	jsonwire.Field("ClusterIdentifier", func(r *Snapshot) **string { return &r.ClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("SnapshotCreateTime", func(r *Snapshot) **time.Time { return &r.SnapshotCreateTime }, jsonwire.Time()),
	jsonwire.Field("Status", func(r *Snapshot) **string { return &r.Status }, jsonwire.String()),
	jsonwire.Field("Port", func(r *Snapshot) **int64 { return &r.Port }, jsonwire.Int64()),
	jsonwire.Field("AvailabilityZone", func(r *Snapshot) **string { return &r.AvailabilityZone }, jsonwire.String()),
	jsonwire.Field("ClusterCreateTime", func(r *Snapshot) **time.Time { return &r.ClusterCreateTime }, jsonwire.Time()),
	jsonwire.Field("MasterUsername", func(r *Snapshot) **string { return &r.MasterUsername }, jsonwire.String()),
	jsonwire.Field("ClusterVersion", func(r *Snapshot) **string { return &r.ClusterVersion }, jsonwire.String()),
	jsonwire.Field("SnapshotType", func(r *Snapshot) **string { return &r.SnapshotType }, jsonwire.String()),
	jsonwire.Field("NodeType", func(r *Snapshot) **string { return &r.NodeType }, jsonwire.String()),
	jsonwire.Field("NumberOfNodes", func(r *Snapshot) **int64 { return &r.NumberOfNodes }, jsonwire.Int64()),
	jsonwire.Field("DBName", func(r *Snapshot) **string { return &r.DBName }, jsonwire.String()),
	jsonwire.Field("VpcId", func(r *Snapshot) **string { return &r.VpcId }, jsonwire.String()),
	jsonwire.Field("Encrypted", func(r *Snapshot) **bool { return &r.Encrypted }, jsonwire.Bool()),
	jsonwire.Field("KmsKeyId", func(r *Snapshot) **string { return &r.KmsKeyId }, jsonwire.String()),
	jsonwire.Field("OwnerAccount", func(r *Snapshot) **string { return &r.OwnerAccount }, jsonwire.String()),
	jsonwire.Field("TotalBackupSizeInMegaBytes", func(r *Snapshot) **float64 { return &r.TotalBackupSizeInMegaBytes }, jsonwire.Float64()),
	jsonwire.Field("ActualIncrementalBackupSizeInMegaBytes", func(r *Snapshot) **float64 {
		return &r.ActualIncrementalBackupSizeInMegaBytes
	}, jsonwire.Float64()),
	jsonwire.Field("BackupProgressInMegaBytes", func(r *Snapshot) **float64 { return &r.BackupProgressInMegaBytes }, jsonwire.Float64()),
	jsonwire.Field("CurrentBackupRateInMegaBytesPerSecond", func(r *Snapshot) **float64 {
		return &r.CurrentBackupRateInMegaBytesPerSecond
	}, jsonwire.Float64()),
	jsonwire.Field("EstimatedSecondsToCompletion", func(r *Snapshot) **int64 { return &r.EstimatedSecondsToCompletion }, jsonwire.Int64()),
	jsonwire.Field("ElapsedTimeInSeconds", func(r *Snapshot) **int64 { return &r.ElapsedTimeInSeconds }, jsonwire.Int64()),
	jsonwire.Field("SourceRegion", func(r *Snapshot) **string { return &r.SourceRegion }, jsonwire.String()),
	jsonwire.Field("Tags", func(r *Snapshot) *[]*Tag { return &r.Tags }, tagList),
	jsonwire.Field("RestorableNodeTypes", func(r *Snapshot) *[]*string { return &r.RestorableNodeTypes }, stringList),
	jsonwire.Field("ManualSnapshotRetentionPeriod", func(r *Snapshot) **int64 { return &r.ManualSnapshotRetentionPeriod }, jsonwire.Int64()),
	jsonwire.Field("ManualSnapshotRemainingDays", func(r *Snapshot) **int64 { return &r.ManualSnapshotRemainingDays }, jsonwire.Int64()),
	jsonwire.Field("SnapshotRetentionStartTime", func(r *Snapshot) **time.Time { return &r.SnapshotRetentionStartTime }, jsonwire.Time()),
)

type DescribeClusterSnapshotsInput struct {
	ClusterIdentifier  *string
	SnapshotIdentifier *string
	SnapshotType       *string
	StartTime          *time.Time
	EndTime            *time.Time
	MaxRecords         *int64
	Marker             *string
	OwnerAccount       *string
	TagKeys            []*string
	TagValues          []*string
	ClusterExists      *bool
}

var _ = jsonwire.NewSchema("DescribeClusterSnapshotsInput",
	jsonwire.Field("ClusterIdentifier", func(r *DescribeClusterSnapshotsInput) **string { return &r.ClusterIdentifier }, jsonwire.String()),
	jsonwire.Field("SnapshotIdentifier", func(r *DescribeClusterSnapshotsInput) **string { return &r.SnapshotIdentifier }, jsonwire.String()),
	jsonwire.Field("SnapshotType", func(r *DescribeClusterSnapshotsInput) **string { return &r.SnapshotType }, jsonwire.String()),
	jsonwire.Field("StartTime", func(r *DescribeClusterSnapshotsInput) **time.Time { return &r.StartTime }, jsonwire.Time()),
	jsonwire.Field("EndTime", func(r *DescribeClusterSnapshotsInput) **time.Time { return &r.EndTime }, jsonwire.Time()),
	jsonwire.Field("MaxRecords", func(r *DescribeClusterSnapshotsInput) **int64 { return &r.MaxRecords }, jsonwire.Int64()),
	jsonwire.Field("Marker", func(r *DescribeClusterSnapshotsInput) **string { return &r.Marker }, jsonwire.String()),
	jsonwire.Field("OwnerAccount", func(r *DescribeClusterSnapshotsInput) **string { return &r.OwnerAccount }, jsonwire.String()),
	jsonwire.Field("TagKeys", func(r *DescribeClusterSnapshotsInput) *[]*string { return &r.TagKeys }, stringList),
	jsonwire.Field("TagValues", func(r *DescribeClusterSnapshotsInput) *[]*string { return &r.TagValues }, stringList),
	jsonwire.Field("ClusterExists", func(r *DescribeClusterSnapshotsInput) **bool { return &r.ClusterExists }, jsonwire.Bool()),
)

type DescribeClusterSnapshotsOutput struct {
	Marker    *string
	Snapshots []*Snapshot
}

var _ = jsonwire.NewSchema("DescribeClusterSnapshotsOutput",
	jsonwire.Field("Marker", func(r *DescribeClusterSnapshotsOutput) **string { return &r.Marker }, jsonwire.String()),
	jsonwire.Field("Snapshots", func(r *DescribeClusterSnapshotsOutput) *[]*Snapshot { return &r.Snapshots }, jsonwire.List(jsonwire.Record(snapshotSchema))),
)

type CreateTagsInput struct {
	ResourceName *string
	Tags         []*Tag
}

var _ = jsonwire.NewSchema("CreateTagsInput",
	jsonwire.Field("ResourceName", func(r *CreateTagsInput) **string { return &r.ResourceName }, jsonwire.String()),
	jsonwire.Field("Tags", func(r *CreateTagsInput) *[]*Tag { return &r.Tags }, tagList),
)

type DeleteTagsInput struct {
	ResourceName *string
	TagKeys      []*string
}

var _ = jsonwire.NewSchema("DeleteTagsInput",
	jsonwire.Field("ResourceName", func(r *DeleteTagsInput) **string { return &r.ResourceName }, jsonwire.String()),
	jsonwire.Field("TagKeys", func(r *DeleteTagsInput) *[]*string { return &r.TagKeys }, stringList),
)
