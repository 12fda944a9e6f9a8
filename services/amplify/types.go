package amplify

import (
	"time"

	"github.com/awsjson/awsjson.go/jsonwire"
)

const (
	// PlatformWeb is a Platform enum value
	PlatformWeb = "WEB"
	// PlatformWebCompute is a Platform enum value
	PlatformWebCompute = "WEB_COMPUTE"
)

const (
	StageProduction   = "PRODUCTION"
	StageBeta         = "BETA"
	StageDevelopment  = "DEVELOPMENT"
	StageExperimental = "EXPERIMENTAL"
	StagePullRequest  = "PULL_REQUEST"
)

var stringMap = jsonwire.Map(jsonwire.String())

// ProductionBranch describes the information about a production branch for an Amplify app.
type ProductionBranch struct {
	LastDeployTime *time.Time
	Status         *string
	ThumbnailUrl   *string
	BranchName     *string
}

var productionBranchSchema = jsonwire.NewSchema("ProductionBranch",
	jsonwire.Field("lastDeployTime", func(r *ProductionBranch) **time.Time { return &r.LastDeployTime }, jsonwire.Time()),
	jsonwire.Field("status", func(r *ProductionBranch) **string { return &r.Status }, jsonwire.String()),
	jsonwire.Field("thumbnailUrl", func(r *ProductionBranch) **string { return &r.ThumbnailUrl }, jsonwire.String()),
	jsonwire.Field("branchName", func(r *ProductionBranch) **string { return &r.BranchName }, jsonwire.String()),
)

// App represents the different branches of a repository for building, deploying, and hosting.
type App struct {
	AppId                 *string
	AppArn                *string
	Name                  *string
	Tags                  map[string]*string
	Description           *string
	Repository            *string
	Platform              *string
	CreateTime            *time.Time
	UpdateTime            *time.Time
	IamServiceRoleArn     *string
	EnvironmentVariables  map[string]*string
	DefaultDomain         *string
	EnableBranchAutoBuild *bool
	EnableBasicAuth       *bool
	BasicAuthCredentials  *string
	ProductionBranch      *ProductionBranch
	BuildSpec             *string
}

var appSchema = jsonwire.NewSchema("App",
	jsonwire.Field("appId", func(r *App) **string { return &r.AppId }, jsonwire.String()),
	jsonwire.Field("appArn", func(r *App) **string { return &r.AppArn }, jsonwire.String()),
	jsonwire.Field("name", func(r *App) **string { return &r.Name }, jsonwire.String()),
	jsonwire.Field("tags", func(r *App) *map[string]*string { return &r.Tags }, stringMap),
	jsonwire.Field("description", func(r *App) **string { return &r.Description }, jsonwire.String()),
	jsonwire.Field("repository", func(r *App) **string { return &r.Repository }, jsonwire.String()),
	jsonwire.Field("platform", func(r *App) **string { return &r.Platform }, jsonwire.String()),
	jsonwire.Field("createTime", func(r *App) **time.Time { return &r.CreateTime }, jsonwire.Time()),
	jsonwire.Field("updateTime", func(r *App) **time.Time { return &r.UpdateTime }, jsonwire.Time()),
	jsonwire.Field("iamServiceRoleArn", func(r *App) **string { return &r.IamServiceRoleArn }, jsonwire.String()),
	jsonwire.Field("environmentVariables", func(r *App) *map[string]*string { return &r.EnvironmentVariables }, stringMap),
	jsonwire.Field("defaultDomain", func(r *App) **string { return &r.DefaultDomain }, jsonwire.String()),
	jsonwire.Field("enableBranchAutoBuild", func(r *App) **bool { return &r.EnableBranchAutoBuild }, jsonwire.Bool()),
	jsonwire.Field("enableBasicAuth", func(r *App) **bool { return &r.EnableBasicAuth }, jsonwire.Bool()),
	jsonwire.Field("basicAuthCredentials", func(r *App) **string { return &r.BasicAuthCredentials }, jsonwire.String()),
	jsonwire.Field("productionBranch", func(r *App) **ProductionBranch { return &r.ProductionBranch }, jsonwire.Record(productionBranchSchema)),
	jsonwire.Field("buildSpec", func(r *App) **string { return &r.BuildSpec }, jsonwire.String()),
)

// Branch is a branch of an Amplify app.
type Branch struct {
	BranchArn                  *string
	BranchName                 *string
	Description                *string
	Tags                       map[string]*string
	Stage                      *string
	DisplayName                *string
	EnableNotification         *bool
	CreateTime                 *time.Time
	UpdateTime                 *time.Time
	EnvironmentVariables       map[string]*string
	EnableAutoBuild            *bool
	CustomDomains              []*string
	Framework                  *string
	ActiveJobId                *string
	TotalNumberOfJobs          *string
	EnableBasicAuth            *bool
	ThumbnailUrl               *string
	BasicAuthCredentials       *string
	BuildSpec                  *string
	Ttl                        *string
	AssociatedResources        []*string
	EnablePullRequestPreview   *bool
	PullRequestEnvironmentName *string
	DestinationBranch          *string
	SourceBranch               *string
	BackendEnvironmentArn      *string
}

var branchSchema = jsonwire.NewSchema("Branch",
	jsonwire.Field("branchArn", func(r *Branch) **string { return &r.BranchArn }, jsonwire.String()),
	jsonwire.Field("branchName", func(r *Branch) **string { return &r.BranchName }, jsonwire.String()),
	jsonwire.Field("description", func(r *Branch) **string { return &r.Description }, jsonwire.String()),
	jsonwire.Field("tags", func(r *Branch) *map[string]*string { return &r.Tags }, stringMap),
	jsonwire.Field("stage", func(r *Branch) **string { return &r.Stage }, jsonwire.String()),
	jsonwire.Field("displayName", func(r *Branch) **string { return &r.DisplayName }, jsonwire.String()),
	jsonwire.Field("enableNotification", func(r *Branch) **bool { return &r.EnableNotification }, jsonwire.Bool()),
	jsonwire.Field("createTime", func(r *Branch) **time.Time { return &r.CreateTime }, jsonwire.Time()),
	jsonwire.Field("updateTime", func(r *Branch) **time.Time { return &r.UpdateTime }, jsonwire.Time()),
	jsonwire.Field("environmentVariables", func(r *Branch) *map[string]*string { return &r.EnvironmentVariables }, stringMap),
	jsonwire.Field("enableAutoBuild", func(r *Branch) **bool { return &r.EnableAutoBuild }, jsonwire.Bool()),
	jsonwire.Field("customDomains", func(r *Branch) *[]*string { return &r.CustomDomains }, jsonwire.List(jsonwire.String())),
	jsonwire.Field("framework", func(r *Branch) **string { return &r.Framework }, jsonwire.String()),
	jsonwire.Field("activeJobId", func(r *Branch) **string { return &r.ActiveJobId }, jsonwire.String()),
	jsonwire.Field("totalNumberOfJobs", func(r *Branch) **string { return &r.TotalNumberOfJobs }, jsonwire.String()),
	jsonwire.Field("enableBasicAuth", func(r *Branch) **bool { return &r.EnableBasicAuth }, jsonwire.Bool()),
	jsonwire.Field("thumbnailUrl", func(r *Branch) **string { return &r.ThumbnailUrl }, jsonwire.String()),
	jsonwire.Field("basicAuthCredentials", func(r *Branch) **string { return &r.BasicAuthCredentials }, jsonwire.String()),
	jsonwire.Field("buildSpec", func(r *Branch) **string { return &r.BuildSpec }, jsonwire.String()),
	jsonwire.Field("ttl", func(r *Branch) **string { return &r.Ttl }, jsonwire.String()),
	jsonwire.Field("associatedResources", func(r *Branch) *[]*string { return &r.AssociatedResources }, jsonwire.List(jsonwire.String())),
	jsonwire.Field("enablePullRequestPreview", func(r *Branch) **bool { return &r.EnablePullRequestPreview }, jsonwire.Bool()),
	jsonwire.Field("pullRequestEnvironmentName", func(r *Branch) **string { return &r.PullRequestEnvironmentName }, jsonwire.String()),
	jsonwire.Field("destinationBranch", func(r *Branch) **string { return &r.DestinationBranch }, jsonwire.String()),
	jsonwire.Field("sourceBranch", func(r *Branch) **string { return &r.SourceBranch }, jsonwire.String()),
	jsonwire.Field("backendEnvironmentArn", func(r *Branch) **string { return &r.BackendEnvironmentArn }, jsonwire.String()),
)

type CreateAppInput struct {
	Name                  *string
	Description           *string
	Repository            *string
	Platform              *string
	IamServiceRoleArn     *string
	OauthToken            *string
	AccessToken           *string
	EnvironmentVariables  map[string]*string
	EnableBranchAutoBuild *bool
	EnableBasicAuth       *bool
	BasicAuthCredentials  *string
	Tags                  map[string]*string
	BuildSpec             *string
}

var _ = jsonwire.NewSchema("CreateAppInput",
	jsonwire.Field("name", func(r *CreateAppInput) **string { return &r.Name }, jsonwire.String()),
	jsonwire.Field("description", func(r *CreateAppInput) **string { return &r.Description }, jsonwire.String()),
	jsonwire.Field("repository", func(r *CreateAppInput) **string { return &r.Repository }, jsonwire.String()),
	jsonwire.Field("platform", func(r *CreateAppInput) **string { return &r.Platform }, jsonwire.String()),
	jsonwire.Field("iamServiceRoleArn", func(r *CreateAppInput) **string { return &r.IamServiceRoleArn }, jsonwire.String()),
	jsonwire.Field("oauthToken", func(r *CreateAppInput) **string { return &r.OauthToken }, jsonwire.String()),
	jsonwire.Field("accessToken", func(r *CreateAppInput) **string { return &r.AccessToken }, jsonwire.String()),
	jsonwire.Field("environmentVariables", func(r *CreateAppInput) *map[string]*string { return &r.EnvironmentVariables }, stringMap),
	jsonwire.Field("enableBranchAutoBuild", func(r *CreateAppInput) **bool { return &r.EnableBranchAutoBuild }, jsonwire.Bool()),
	jsonwire.Field("enableBasicAuth", func(r *CreateAppInput) **bool { return &r.EnableBasicAuth }, jsonwire.Bool()),
	jsonwire.Field("basicAuthCredentials", func(r *CreateAppInput) **string { return &r.BasicAuthCredentials }, jsonwire.String()),
	jsonwire.Field("tags", func(r *CreateAppInput) *map[string]*string { return &r.Tags }, stringMap),
	jsonwire.Field("buildSpec", func(r *CreateAppInput) **string { return &r.BuildSpec }, jsonwire.String()),
)

// AppOutput carries the app returned by the create, get and delete operations.
type AppOutput struct {
	App *App
}

var _ = jsonwire.NewSchema("AppOutput",
	jsonwire.Field("app", func(r *AppOutput) **App { return &r.App }, jsonwire.Record(appSchema)),
)

type (
	CreateAppOutput = AppOutput
	GetAppOutput    = AppOutput
	DeleteAppOutput = AppOutput
)

// AppInput names the app for the get and delete operations.
type AppInput struct {
	AppId *string
}

var _ = jsonwire.NewSchema("AppInput",
	jsonwire.Field("appId", func(r *AppInput) **string { return &r.AppId }, jsonwire.String()).In(jsonwire.LocationURI),
)

type (
	GetAppInput    = AppInput
	DeleteAppInput = AppInput
)

type ListAppsInput struct {
	NextToken  *string
	MaxResults *int64
}

var _ = jsonwire.NewSchema("ListAppsInput",
	jsonwire.Field("nextToken", func(r *ListAppsInput) **string { return &r.NextToken }, jsonwire.String()).In(jsonwire.LocationQuery),
	jsonwire.Field("maxResults", func(r *ListAppsInput) **int64 { return &r.MaxResults }, jsonwire.Int64()).In(jsonwire.LocationQuery),
)

type ListAppsOutput struct {
	Apps      []*App
	NextToken *string
}

var _ = jsonwire.NewSchema("ListAppsOutput",
	jsonwire.Field("apps", func(r *ListAppsOutput) *[]*App { return &r.Apps }, jsonwire.List(jsonwire.Record(appSchema))),
	jsonwire.Field("nextToken", func(r *ListAppsOutput) **string { return &r.NextToken }, jsonwire.String()),
)

type CreateBranchInput struct {
	AppId                    *string
	BranchName               *string
	Description              *string
	Stage                    *string
	Framework                *string
	EnableNotification       *bool
	EnableAutoBuild          *bool
	EnvironmentVariables     map[string]*string
	BasicAuthCredentials     *string
	EnableBasicAuth          *bool
	Tags                     map[string]*string
	BuildSpec                *string
	Ttl                      *string
	DisplayName              *string
	EnablePullRequestPreview *bool
}

var _ = jsonwire.NewSchema("CreateBranchInput",
	jsonwire.Field("appId", func(r *CreateBranchInput) **string { return &r.AppId }, jsonwire.String()).In(jsonwire.LocationURI),
	jsonwire.Field("branchName", func(r *CreateBranchInput) **string { return &r.BranchName }, jsonwire.String()),
	jsonwire.Field("description", func(r *CreateBranchInput) **string { return &r.Description }, jsonwire.String()),
	jsonwire.Field("stage", func(r *CreateBranchInput) **string { return &r.Stage }, jsonwire.String()),
	jsonwire.Field("framework", func(r *CreateBranchInput) **string { return &r.Framework }, jsonwire.String()),
	jsonwire.Field("enableNotification", func(r *CreateBranchInput) **bool { return &r.EnableNotification }, jsonwire.Bool()),
	jsonwire.Field("enableAutoBuild", func(r *CreateBranchInput) **bool { return &r.EnableAutoBuild }, jsonwire.Bool()),
	jsonwire.Field("environmentVariables", func(r *CreateBranchInput) *map[string]*string { return &r.EnvironmentVariables }, stringMap),
	jsonwire.Field("basicAuthCredentials", func(r *CreateBranchInput) **string { return &r.BasicAuthCredentials }, jsonwire.String()),
	jsonwire.Field("enableBasicAuth", func(r *CreateBranchInput) **bool { return &r.EnableBasicAuth }, jsonwire.Bool()),
	jsonwire.Field("tags", func(r *CreateBranchInput) *map[string]*string { return &r.Tags }, stringMap),
	jsonwire.Field("buildSpec", func(r *CreateBranchInput) **string { return &r.BuildSpec }, jsonwire.String()),
	jsonwire.Field("ttl", func(r *CreateBranchInput) **string { return &r.Ttl }, jsonwire.String()),
	jsonwire.Field("displayName", func(r *CreateBranchInput) **string { return &r.DisplayName }, jsonwire.String()),
	jsonwire.Field("enablePullRequestPreview", func(r *CreateBranchInput) **bool { return &r.EnablePullRequestPreview }, jsonwire.Bool()),
)

// BranchOutput carries the branch returned by the create, get and delete operations.
type BranchOutput struct {
	Branch *Branch
}

var _ = jsonwire.NewSchema("BranchOutput",
	jsonwire.Field("branch", func(r *BranchOutput) **Branch { return &r.Branch }, jsonwire.Record(branchSchema)),
)

type (
	CreateBranchOutput = BranchOutput
	GetBranchOutput    = BranchOutput
	DeleteBranchOutput = BranchOutput
)

// BranchInput names the branch for the get and delete operations.
type BranchInput struct {
	AppId      *string
	BranchName *string
}

var _ = jsonwire.NewSchema("BranchInput",
	jsonwire.Field("appId", func(r *BranchInput) **string { return &r.AppId }, jsonwire.String()).In(jsonwire.LocationURI),
	jsonwire.Field("branchName", func(r *BranchInput) **string { return &r.BranchName }, jsonwire.String()).In(jsonwire.LocationURI),
)

type (
	GetBranchInput    = BranchInput
	DeleteBranchInput = BranchInput
)

type ListBranchesInput struct {
	AppId      *string
	NextToken  *string
	MaxResults *int64
}

var _ = jsonwire.NewSchema("ListBranchesInput",
	jsonwire.Field("appId", func(r *ListBranchesInput) **string { return &r.AppId }, jsonwire.String()).In(jsonwire.LocationURI),
	jsonwire.Field("nextToken", func(r *ListBranchesInput) **string { return &r.NextToken }, jsonwire.String()).In(jsonwire.LocationQuery),
	jsonwire.Field("maxResults", func(r *ListBranchesInput) **int64 { return &r.MaxResults }, jsonwire.Int64()).In(jsonwire.LocationQuery),
)

type ListBranchesOutput struct {
	Branches  []*Branch
	NextToken *string
}

var _ = jsonwire.NewSchema("ListBranchesOutput",
	jsonwire.Field("branches", func(r *ListBranchesOutput) *[]*Branch { return &r.Branches }, jsonwire.List(jsonwire.Record(branchSchema))),
	jsonwire.Field("nextToken", func(r *ListBranchesOutput) **string { return &r.NextToken }, jsonwire.String()),
)
