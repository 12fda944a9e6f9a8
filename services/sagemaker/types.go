package sagemaker

import (
	"time"

	"github.com/awsjson/awsjson.go/jsonwire"
)

const (
	// NotebookInstanceStatusPending is a NotebookInstanceStatus enum value
	NotebookInstanceStatusPending = "Pending"
	// NotebookInstanceStatusInService is a NotebookInstanceStatus enum value
	NotebookInstanceStatusInService = "InService"
	// NotebookInstanceStatusStopping is a NotebookInstanceStatus enum value
	NotebookInstanceStatusStopping = "Stopping"
	// NotebookInstanceStatusStopped is a NotebookInstanceStatus enum value
	NotebookInstanceStatusStopped = "Stopped"
	// NotebookInstanceStatusFailed is a NotebookInstanceStatus enum value
	NotebookInstanceStatusFailed = "Failed"
	// NotebookInstanceStatusDeleting is a NotebookInstanceStatus enum value
	NotebookInstanceStatusDeleting = "Deleting"
	// NotebookInstanceStatusUpdating is a NotebookInstanceStatus enum value
	NotebookInstanceStatusUpdating = "Updating"
)

const (
	AlgorithmStatusPending    = "Pending"
	AlgorithmStatusInProgress = "InProgress"
	AlgorithmStatusCompleted  = "Completed"
	AlgorithmStatusFailed     = "Failed"
	AlgorithmStatusDeleting   = "Deleting"
)

const (
	SortOrderAscending  = "Ascending"
	SortOrderDescending = "Descending"
)

const (
	DirectInternetAccessEnabled  = "Enabled"
	DirectInternetAccessDisabled = "Disabled"
)

const (
	RootAccessEnabled  = "Enabled"
	RootAccessDisabled = "Disabled"
)

// Tag is a key-value pair attached to a SageMaker resource.
type Tag struct {
	Key   *string
	Value *string
}

var tagSchema = jsonwire.NewSchema("Tag",
	jsonwire.Field("Key", func(r *Tag) **string { return &r.Key }, jsonwire.String()),
	jsonwire.Field("Value", func(r *Tag) **string { return &r.Value }, jsonwire.String()),
)

var tagList = jsonwire.List(jsonwire.Record(tagSchema))

type AddTagsInput struct {
	ResourceArn *string
	Tags        []*Tag
}

var _ = jsonwire.NewSchema("AddTagsInput",
	jsonwire.Field("ResourceArn", func(r *AddTagsInput) **string { return &r.ResourceArn }, jsonwire.String()),
	jsonwire.Field("Tags", func(r *AddTagsInput) *[]*Tag { return &r.Tags }, tagList),
)

type AddTagsOutput struct {
	Tags []*Tag
}

var _ = jsonwire.NewSchema("AddTagsOutput",
	jsonwire.Field("Tags", func(r *AddTagsOutput) *[]*Tag { return &r.Tags }, tagList),
)

type ListTagsInput struct {
	ResourceArn *string
	NextToken   *string
	MaxResults  *int64
}

var _ = jsonwire.NewSchema("ListTagsInput",
	jsonwire.Field("ResourceArn", func(r *ListTagsInput) **string { return &r.ResourceArn }, jsonwire.String()),
	jsonwire.Field("NextToken", func(r *ListTagsInput) **string { return &r.NextToken }, jsonwire.String()),
	jsonwire.Field("MaxResults", func(r *ListTagsInput) **int64 { return &r.MaxResults }, jsonwire.Int64()),
)

type ListTagsOutput struct {
	Tags      []*Tag
	NextToken *string
}

var _ = jsonwire.NewSchema("ListTagsOutput",
	jsonwire.Field("Tags", func(r *ListTagsOutput) *[]*Tag { return &r.Tags }, tagList),
	jsonwire.Field("NextToken", func(r *ListTagsOutput) **string { return &r.NextToken }, jsonwire.String()),
)

type DeleteTagsInput struct {
	ResourceArn *string
	TagKeys     []*string
}

var _ = jsonwire.NewSchema("DeleteTagsInput",
	jsonwire.Field("ResourceArn", func(r *DeleteTagsInput) **string { return &r.ResourceArn }, jsonwire.String()),
	jsonwire.Field("TagKeys", func(r *DeleteTagsInput) *[]*string { return &r.TagKeys }, jsonwire.List(jsonwire.String())),
)

type DeleteTagsOutput struct{}

var _ = jsonwire.NewSchema[DeleteTagsOutput]("DeleteTagsOutput")

// AlgorithmSummary provides summary information about an algorithm.
type AlgorithmSummary struct {
	AlgorithmName        *string
	AlgorithmArn         *string
	AlgorithmDescription *string
	CreationTime         *time.Time
	AlgorithmStatus      *string
}

var algorithmSummarySchema = jsonwire.NewSchema("AlgorithmSummary",
	jsonwire.Field("AlgorithmName", func(r *AlgorithmSummary) **string { return &r.AlgorithmName }, jsonwire.String()),
	jsonwire.Field("AlgorithmArn", func(r *AlgorithmSummary) **string { return &r.AlgorithmArn }, jsonwire.String()),
	jsonwire.Field("AlgorithmDescription", func(r *AlgorithmSummary) **string { return &r.AlgorithmDescription }, jsonwire.String()),
	jsonwire.Field("CreationTime", func(r *AlgorithmSummary) **time.Time { return &r.CreationTime }, jsonwire.Time()),
	jsonwire.Field("AlgorithmStatus", func(r *AlgorithmSummary) **string { return &r.AlgorithmStatus }, jsonwire.String()),
)

type ListAlgorithmsInput struct {
	CreationTimeAfter  *time.Time
	CreationTimeBefore *time.Time
	MaxResults         *int64
	NameContains       *string
	NextToken          *string
	SortBy             *string
	SortOrder          *string
}

var _ = jsonwire.NewSchema("ListAlgorithmsInput",
	jsonwire.Field("CreationTimeAfter", func(r *ListAlgorithmsInput) **time.Time { return &r.CreationTimeAfter }, jsonwire.Time()),
	jsonwire.Field("CreationTimeBefore", func(r *ListAlgorithmsInput) **time.Time { return &r.CreationTimeBefore }, jsonwire.Time()),
	jsonwire.Field("MaxResults", func(r *ListAlgorithmsInput) **int64 { return &r.MaxResults }, jsonwire.Int64()),
	jsonwire.Field("NameContains", func(r *ListAlgorithmsInput) **string { return &r.NameContains }, jsonwire.String()),
	jsonwire.Field("NextToken", func(r *ListAlgorithmsInput) **string { return &r.NextToken }, jsonwire.String()),
	jsonwire.Field("SortBy", func(r *ListAlgorithmsInput) **string { return &r.SortBy }, jsonwire.String()),
	jsonwire.Field("SortOrder", func(r *ListAlgorithmsInput) **string { return &r.SortOrder }, jsonwire.String()),
)

type ListAlgorithmsOutput struct {
	AlgorithmSummaryList []*AlgorithmSummary
	NextToken            *string
}

var _ = jsonwire.NewSchema("ListAlgorithmsOutput",
	jsonwire.Field("AlgorithmSummaryList", func(r *ListAlgorithmsOutput) *[]*AlgorithmSummary { return &r.AlgorithmSummaryList },
		jsonwire.List(jsonwire.Record(algorithmSummarySchema))),
	jsonwire.Field("NextToken", func(r *ListAlgorithmsOutput) **string { return &r.NextToken }, jsonwire.String()),
)

// MetricDefinition names a metric and the regex that extracts it from training logs.
type MetricDefinition struct {
	Name  *string
	Regex *string
}

var metricDefinitionSchema = jsonwire.NewSchema("MetricDefinition",
	jsonwire.Field("Name", func(r *MetricDefinition) **string { return &r.Name }, jsonwire.String()),
	jsonwire.Field("Regex", func(r *MetricDefinition) **string { return &r.Regex }, jsonwire.String()),
)

// TrainingSpecification describes the training image of an algorithm.
type TrainingSpecification struct {
	TrainingImage                  *string
	TrainingImageDigest            *string
	SupportedTrainingInstanceTypes []*string
	SupportsDistributedTraining    *bool
	MetricDefinitions              []*MetricDefinition
}

var trainingSpecificationSchema = jsonwire.NewSchema("TrainingSpecification",
	jsonwire.Field("TrainingImage", func(r *TrainingSpecification) **string { return &r.TrainingImage }, jsonwire.String()),
	jsonwire.Field("TrainingImageDigest", func(r *TrainingSpecification) **string { return &r.TrainingImageDigest }, jsonwire.String()),
	jsonwire.Field("SupportedTrainingInstanceTypes", func(r *TrainingSpecification) *[]*string { return &r.SupportedTrainingInstanceTypes },
		jsonwire.List(jsonwire.String())),
	jsonwire.Field("SupportsDistributedTraining", func(r *TrainingSpecification) **bool { return &r.SupportsDistributedTraining }, jsonwire.Bool()),
	jsonwire.Field("MetricDefinitions", func(r *TrainingSpecification) *[]*MetricDefinition { return &r.MetricDefinitions },
		jsonwire.List(jsonwire.Record(metricDefinitionSchema))),
)

type DescribeAlgorithmInput struct {
	AlgorithmName *string
}

var _ = jsonwire.NewSchema("DescribeAlgorithmInput",
	jsonwire.Field("AlgorithmName", func(r *DescribeAlgorithmInput) **string { return &r.AlgorithmName }, jsonwire.String()),
)

type DescribeAlgorithmOutput struct {
	AlgorithmName         *string
	AlgorithmArn          *string
	AlgorithmDescription  *string
	CreationTime          *time.Time
	TrainingSpecification *TrainingSpecification
	AlgorithmStatus       *string
	ProductId             *string
	CertifyForMarketplace *bool
}

var _ = jsonwire.NewSchema("DescribeAlgorithmOutput",
	jsonwire.Field("AlgorithmName", func(r *DescribeAlgorithmOutput) **string { return &r.AlgorithmName }, jsonwire.String()),
	jsonwire.Field("AlgorithmArn", func(r *DescribeAlgorithmOutput) **string { return &r.AlgorithmArn }, jsonwire.String()),
	jsonwire.Field("AlgorithmDescription", func(r *DescribeAlgorithmOutput) **string { return &r.AlgorithmDescription }, jsonwire.String()),
	jsonwire.Field("CreationTime", func(r *DescribeAlgorithmOutput) **time.Time { return &r.CreationTime }, jsonwire.Time()),
	jsonwire.Field("TrainingSpecification", func(r *DescribeAlgorithmOutput) **TrainingSpecification { return &r.TrainingSpecification },
		jsonwire.Record(trainingSpecificationSchema)),
	jsonwire.Field("AlgorithmStatus", func(r *DescribeAlgorithmOutput) **string { return &r.AlgorithmStatus }, jsonwire.String()),
	jsonwire.Field("ProductId", func(r *DescribeAlgorithmOutput) **string { return &r.ProductId }, jsonwire.String()),
	jsonwire.Field("CertifyForMarketplace", func(r *DescribeAlgorithmOutput) **bool { return &r.CertifyForMarketplace }, jsonwire.Bool()),
)

type DeleteAlgorithmInput struct {
	AlgorithmName *string
}

var _ = jsonwire.NewSchema("DeleteAlgorithmInput",
	jsonwire.Field("AlgorithmName", func(r *DeleteAlgorithmInput) **string { return &r.AlgorithmName }, jsonwire.String()),
)

type CreateNotebookInstanceInput struct {
	NotebookInstanceName       *string
	InstanceType               *string
	SubnetId                   *string
	SecurityGroupIds           []*string
	RoleArn                    *string
	KmsKeyId                   *string
	Tags                       []*Tag
	LifecycleConfigName        *string
	DirectInternetAccess       *string
	VolumeSizeInGB             *int64
	AcceleratorTypes           []*string
	DefaultCodeRepository      *string
	AdditionalCodeRepositories []*string
	RootAccess                 *string
}

var _ = jsonwire.NewSchema("CreateNotebookInstanceInput",
	jsonwire.Field("NotebookInstanceName", func(r *CreateNotebookInstanceInput) **string { return &r.NotebookInstanceName }, jsonwire.String()),
	jsonwire.Field("InstanceType", func(r *CreateNotebookInstanceInput) **string { return &r.InstanceType }, jsonwire.String()),
	jsonwire.Field("SubnetId", func(r *CreateNotebookInstanceInput) **string { return &r.SubnetId }, jsonwire.String()),
	jsonwire.Field("SecurityGroupIds", func(r *CreateNotebookInstanceInput) *[]*string { return &r.SecurityGroupIds }, jsonwire.List(jsonwire.String())),
	jsonwire.Field("RoleArn", func(r *CreateNotebookInstanceInput) **string { return &r.RoleArn }, jsonwire.String()),
	jsonwire.Field("KmsKeyId", func(r *CreateNotebookInstanceInput) **string { return &r.KmsKeyId }, jsonwire.String()),
	jsonwire.Field("Tags", func(r *CreateNotebookInstanceInput) *[]*Tag { return &r.Tags }, tagList),
	jsonwire.Field("LifecycleConfigName", func(r *CreateNotebookInstanceInput) **string { return &r.LifecycleConfigName }, jsonwire.String()),
	jsonwire.Field("DirectInternetAccess", func(r *CreateNotebookInstanceInput) **string { return &r.DirectInternetAccess }, jsonwire.String()),
	jsonwire.Field("VolumeSizeInGB", func(r *CreateNotebookInstanceInput) **int64 { return &r.VolumeSizeInGB }, jsonwire.Int64()),
	jsonwire.Field("AcceleratorTypes", func(r *CreateNotebookInstanceInput) *[]*string { return &r.AcceleratorTypes }, jsonwire.List(jsonwire.String())),
	jsonwire.Field("DefaultCodeRepository", func(r *CreateNotebookInstanceInput) **string { return &r.DefaultCodeRepository }, jsonwire.String()),
	jsonwire.Field("AdditionalCodeRepositories", func(r *CreateNotebookInstanceInput) *[]*string { return &r.AdditionalCodeRepositories },
		jsonwire.List(jsonwire.String())),
	jsonwire.Field("RootAccess", func(r *CreateNotebookInstanceInput) **string { return &r.RootAccess }, jsonwire.String()),
)

type CreateNotebookInstanceOutput struct {
	NotebookInstanceArn *string
}

var _ = jsonwire.NewSchema("CreateNotebookInstanceOutput",
	jsonwire.Field("NotebookInstanceArn", func(r *CreateNotebookInstanceOutput) **string { return &r.NotebookInstanceArn }, jsonwire.String()),
)

type DescribeNotebookInstanceInput struct {
	NotebookInstanceName *string
}

var _ = jsonwire.NewSchema("DescribeNotebookInstanceInput",
	jsonwire.Field("NotebookInstanceName", func(r *DescribeNotebookInstanceInput) **string { return &r.NotebookInstanceName }, jsonwire.String()),
)

type DescribeNotebookInstanceOutput struct {
	NotebookInstanceArn                 *string
	NotebookInstanceName                *string
	NotebookInstanceStatus              *string
	FailureReason                       *string
	Url                                 *string
	InstanceType                        *string
	SubnetId                            *string
	SecurityGroups                      []*string
	RoleArn                             *string
	KmsKeyId                            *string
	NetworkInterfaceId                  *string
	LastModifiedTime                    *time.Time
	CreationTime                        *time.Time
	NotebookInstanceLifecycleConfigName *string
	DirectInternetAccess                *string
	VolumeSizeInGB                      *int64
	AcceleratorTypes                    []*string
	DefaultCodeRepository               *string
	AdditionalCodeRepositories          []*string
	RootAccess                          *string
}

var _ = jsonwire.NewSchema("DescribeNotebookInstanceOutput",
	jsonwire.Field("NotebookInstanceArn", func(r *DescribeNotebookInstanceOutput) **string { return &r.NotebookInstanceArn }, jsonwire.String()),
	jsonwire.Field("NotebookInstanceName", func(r *DescribeNotebookInstanceOutput) **string { return &r.NotebookInstanceName }, jsonwire.String()),
	jsonwire.Field("NotebookInstanceStatus", func(r *DescribeNotebookInstanceOutput) **string { return &r.NotebookInstanceStatus }, jsonwire.String()),
	jsonwire.Field("FailureReason", func(r *DescribeNotebookInstanceOutput) **string { return &r.FailureReason }, jsonwire.String()),
	jsonwire.Field("Url", func(r *DescribeNotebookInstanceOutput) **string { return &r.Url }, jsonwire.String()),
	jsonwire.Field("InstanceType", func(r *DescribeNotebookInstanceOutput) **string { return &r.InstanceType }, jsonwire.String()),
	jsonwire.Field("SubnetId", func(r *DescribeNotebookInstanceOutput) **string { return &r.SubnetId }, jsonwire.String()),
	jsonwire.Field("SecurityGroups", func(r *DescribeNotebookInstanceOutput) *[]*string { return &r.SecurityGroups }, jsonwire.List(jsonwire.String())),
	jsonwire.Field("RoleArn", func(r *DescribeNotebookInstanceOutput) **string { return &r.RoleArn }, jsonwire.String()),
	jsonwire.Field("KmsKeyId", func(r *DescribeNotebookInstanceOutput) **string { return &r.KmsKeyId }, jsonwire.String()),
	jsonwire.Field("NetworkInterfaceId", func(r *DescribeNotebookInstanceOutput) **string { return &r.NetworkInterfaceId }, jsonwire.String()),
	jsonwire.Field("LastModifiedTime", func(r *DescribeNotebookInstanceOutput) **time.Time { return &r.LastModifiedTime }, jsonwire.Time()),
	jsonwire.Field("CreationTime", func(r *DescribeNotebookInstanceOutput) **time.Time { return &r.CreationTime }, jsonwire.Time()),
	jsonwire.Field("NotebookInstanceLifecycleConfigName", func(r *DescribeNotebookInstanceOutput) **string {
		return &r.NotebookInstanceLifecycleConfigName
	}, jsonwire.String()),
	jsonwire.Field("DirectInternetAccess", func(r *DescribeNotebookInstanceOutput) **string { return &r.DirectInternetAccess }, jsonwire.String()),
	jsonwire.Field("VolumeSizeInGB", func(r *DescribeNotebookInstanceOutput) **int64 { return &r.VolumeSizeInGB }, jsonwire.Int64()),
	jsonwire.Field("AcceleratorTypes", func(r *DescribeNotebookInstanceOutput) *[]*string { return &r.AcceleratorTypes }, jsonwire.List(jsonwire.String())),
	jsonwire.Field("DefaultCodeRepository", func(r *DescribeNotebookInstanceOutput) **string { return &r.DefaultCodeRepository }, jsonwire.String()),
	jsonwire.Field("AdditionalCodeRepositories", func(r *DescribeNotebookInstanceOutput) *[]*string { return &r.AdditionalCodeRepositories },
		jsonwire.List(jsonwire.String())),
	jsonwire.Field("RootAccess", func(r *DescribeNotebookInstanceOutput) **string { return &r.RootAccess }, jsonwire.String()),
)

type UpdateNotebookInstanceInput struct {
	NotebookInstanceName                   *string
	InstanceType                           *string
	RoleArn                                *string
	LifecycleConfigName                    *string
	DisassociateLifecycleConfig            *bool
	VolumeSizeInGB                         *int64
	DefaultCodeRepository                  *string
	AdditionalCodeRepositories             []*string
	AcceleratorTypes                       []*string
	DisassociateAcceleratorTypes           *bool
	DisassociateDefaultCodeRepository      *bool
	DisassociateAdditionalCodeRepositories *bool
	RootAccess                             *string
}

var _ = jsonwire.NewSchema("UpdateNotebookInstanceInput",
	jsonwire.Field("NotebookInstanceName", func(r *UpdateNotebookInstanceInput) **string { return &r.NotebookInstanceName }, jsonwire.String()),
	jsonwire.Field("InstanceType", func(r *UpdateNotebookInstanceInput) **string { return &r.InstanceType }, jsonwire.String()),
	jsonwire.Field("RoleArn", func(r *UpdateNotebookInstanceInput) **string { return &r.RoleArn }, jsonwire.String()),
	jsonwire.Field("LifecycleConfigName", func(r *UpdateNotebookInstanceInput) **string { return &r.LifecycleConfigName }, jsonwire.String()),
	jsonwire.Field("DisassociateLifecycleConfig", func(r *UpdateNotebookInstanceInput) **bool { return &r.DisassociateLifecycleConfig }, jsonwire.Bool()),
	jsonwire.Field("VolumeSizeInGB", func(r *UpdateNotebookInstanceInput) **int64 { return &r.VolumeSizeInGB }, jsonwire.Int64()),
	jsonwire.Field("DefaultCodeRepository", func(r *UpdateNotebookInstanceInput) **string { return &r.DefaultCodeRepository }, jsonwire.String()),
	jsonwire.Field("AdditionalCodeRepositories", func(r *UpdateNotebookInstanceInput) *[]*string { return &r.AdditionalCodeRepositories },
		jsonwire.List(jsonwire.String())),
	jsonwire.Field("AcceleratorTypes", func(r *UpdateNotebookInstanceInput) *[]*string { return &r.AcceleratorTypes }, jsonwire.List(jsonwire.String())),
	jsonwire.Field("DisassociateAcceleratorTypes", func(r *UpdateNotebookInstanceInput) **bool { return &r.DisassociateAcceleratorTypes }, jsonwire.Bool()),
	jsonwire.Field("DisassociateDefaultCodeRepository", func(r *UpdateNotebookInstanceInput) **bool {
		return &r.DisassociateDefaultCodeRepository
	}, jsonwire.Bool()),
	jsonwire.Field("DisassociateAdditionalCodeRepositories", func(r *UpdateNotebookInstanceInput) **bool {
		return &r.DisassociateAdditionalCodeRepositories
	}, jsonwire.Bool()),
	jsonwire.Field("RootAccess", func(r *UpdateNotebookInstanceInput) **string { return &r.RootAccess }, jsonwire.String()),
)

type UpdateNotebookInstanceOutput struct{}

var _ = jsonwire.NewSchema[UpdateNotebookInstanceOutput]("UpdateNotebookInstanceOutput")

// NotebookInstanceSummary provides summary information for a notebook instance.
type NotebookInstanceSummary struct {
	NotebookInstanceName                *string
	NotebookInstanceArn                 *string
	NotebookInstanceStatus              *string
	Url                                 *string
	InstanceType                        *string
	CreationTime                        *time.Time
	LastModifiedTime                    *time.Time
	NotebookInstanceLifecycleConfigName *string
	DefaultCodeRepository               *string
	AdditionalCodeRepositories          []*string
}

var notebookInstanceSummarySchema = jsonwire.NewSchema("NotebookInstanceSummary",
	jsonwire.Field("NotebookInstanceName", func(r *NotebookInstanceSummary) **string { return &r.NotebookInstanceName }, jsonwire.String()),
	jsonwire.Field("NotebookInstanceArn", func(r *NotebookInstanceSummary) **string { return &r.NotebookInstanceArn }, jsonwire.String()),
	jsonwire.Field("NotebookInstanceStatus", func(r *NotebookInstanceSummary) **string { return &r.NotebookInstanceStatus }, jsonwire.String()),
	jsonwire.Field("Url", func(r *NotebookInstanceSummary) **string { return &r.Url }, jsonwire.String()),
	jsonwire.Field("InstanceType", func(r *NotebookInstanceSummary) **string { return &r.InstanceType }, jsonwire.String()),
	jsonwire.Field("CreationTime", func(r *NotebookInstanceSummary) **time.Time { return &r.CreationTime }, jsonwire.Time()),
	jsonwire.Field("LastModifiedTime", func(r *NotebookInstanceSummary) **time.Time { return &r.LastModifiedTime }, jsonwire.Time()),
	jsonwire.Field("NotebookInstanceLifecycleConfigName", func(r *NotebookInstanceSummary) **string {
		return &r.NotebookInstanceLifecycleConfigName
	}, jsonwire.String()),
	jsonwire.Field("DefaultCodeRepository", func(r *NotebookInstanceSummary) **string { return &r.DefaultCodeRepository }, jsonwire.String()),
	jsonwire.Field("AdditionalCodeRepositories", func(r *NotebookInstanceSummary) *[]*string { return &r.AdditionalCodeRepositories },
		jsonwire.List(jsonwire.String())),
)

type ListNotebookInstancesInput struct {
	NextToken              *string
	MaxResults             *int64
	SortBy                 *string
	SortOrder              *string
	NameContains           *string
	CreationTimeBefore     *time.Time
	CreationTimeAfter      *time.Time
	LastModifiedTimeBefore *time.Time
	LastModifiedTimeAfter  *time.Time
	StatusEquals           *string
}

var _ = jsonwire.NewSchema("ListNotebookInstancesInput",
	jsonwire.Field("NextToken", func(r *ListNotebookInstancesInput) **string { return &r.NextToken }, jsonwire.String()),
	jsonwire.Field("MaxResults", func(r *ListNotebookInstancesInput) **int64 { return &r.MaxResults }, jsonwire.Int64()),
	jsonwire.Field("SortBy", func(r *ListNotebookInstancesInput) **string { return &r.SortBy }, jsonwire.String()),
	jsonwire.Field("SortOrder", func(r *ListNotebookInstancesInput) **string { return &r.SortOrder }, jsonwire.String()),
	jsonwire.Field("NameContains", func(r *ListNotebookInstancesInput) **string { return &r.NameContains }, jsonwire.String()),
	jsonwire.Field("CreationTimeBefore", func(r *ListNotebookInstancesInput) **time.Time { return &r.CreationTimeBefore }, jsonwire.Time()),
	jsonwire.Field("CreationTimeAfter", func(r *ListNotebookInstancesInput) **time.Time { return &r.CreationTimeAfter }, jsonwire.Time()),
	jsonwire.Field("LastModifiedTimeBefore", func(r *ListNotebookInstancesInput) **time.Time { return &r.LastModifiedTimeBefore }, jsonwire.Time()),
	jsonwire.Field("LastModifiedTimeAfter", func(r *ListNotebookInstancesInput) **time.Time { return &r.LastModifiedTimeAfter }, jsonwire.Time()),
	jsonwire.Field("StatusEquals", func(r *ListNotebookInstancesInput) **string { return &r.StatusEquals }, jsonwire.String()),
)

type ListNotebookInstancesOutput struct {
	NextToken         *string
	NotebookInstances []*NotebookInstanceSummary
}

var _ = jsonwire.NewSchema("ListNotebookInstancesOutput",
	jsonwire.Field("NextToken", func(r *ListNotebookInstancesOutput) **string { return &r.NextToken }, jsonwire.String()),
	jsonwire.Field("NotebookInstances", func(r *ListNotebookInstancesOutput) *[]*NotebookInstanceSummary { return &r.NotebookInstances },
		jsonwire.List(jsonwire.Record(notebookInstanceSummarySchema))),
)

// NotebookInstanceInput names the notebook instance for the start, stop and delete operations.
type NotebookInstanceInput struct {
	NotebookInstanceName *string
}

var _ = jsonwire.NewSchema("NotebookInstanceInput",
	jsonwire.Field("NotebookInstanceName", func(r *NotebookInstanceInput) **string { return &r.NotebookInstanceName }, jsonwire.String()),
)

type (
	StartNotebookInstanceInput  = NotebookInstanceInput
	StopNotebookInstanceInput   = NotebookInstanceInput
	DeleteNotebookInstanceInput = NotebookInstanceInput
)
