// Package amplify provides the client and types for making API
// requests to AWS Amplify over the REST-JSON protocol.
//
// Request members such as the app ID and branch name travel in the request
// URI, paging members in the query string; the rest form the JSON body.
package amplify

import (
	"context"
	"net/http"

	awsjson "github.com/awsjson/awsjson.go"
	"github.com/awsjson/awsjson.go/pkg/connection"
)

const (
	ServiceName = "Amplify"
	EndpointsID = "amplify"
)

// Service describes how Amplify is reached.
var Service = connection.ServiceInfo{
	Name:           ServiceName,
	EndpointPrefix: EndpointsID,
	SigningName:    "amplify",
	APIVersion:     "2017-07-25",
	Protocol:       connection.ProtocolRESTJSON,
	Errors: []string{
		ErrCodeBadRequestException,
		ErrCodeUnauthorizedException,
		ErrCodeInternalFailureException,
	},
}

// Amplify is the client for AWS Amplify.
// It is safe to use concurrently.
type Amplify struct {
	client *awsjson.Client
}

// New creates an Amplify client from conf.
func New(conf *connection.Config) (*Amplify, error) {
	client, err := awsjson.New(conf.WithService(Service))
	if err != nil {
		return nil, err
	}
	return &Amplify{client: client}, nil
}

// FromClient wraps an existing client, which must talk to Amplify.
func FromClient(client *awsjson.Client) *Amplify {
	return &Amplify{client: client}
}

var (
	opCreateApp = &connection.Operation{
		Name:       "CreateApp",
		HTTPMethod: http.MethodPost,
		RequestURI: "/apps",
		Errors:     []string{ErrCodeLimitExceededException, ErrCodeDependentServiceFailureException},
	}
	opGetApp = &connection.Operation{
		Name:       "GetApp",
		HTTPMethod: http.MethodGet,
		RequestURI: "/apps/{appId}",
		Errors:     []string{ErrCodeNotFoundException},
	}
	opListApps = &connection.Operation{
		Name:       "ListApps",
		HTTPMethod: http.MethodGet,
		RequestURI: "/apps",
	}
	opDeleteApp = &connection.Operation{
		Name:       "DeleteApp",
		HTTPMethod: http.MethodDelete,
		RequestURI: "/apps/{appId}",
		Errors:     []string{ErrCodeNotFoundException, ErrCodeDependentServiceFailureException},
	}
	opCreateBranch = &connection.Operation{
		Name:       "CreateBranch",
		HTTPMethod: http.MethodPost,
		RequestURI: "/apps/{appId}/branches",
		Errors:     []string{ErrCodeNotFoundException, ErrCodeLimitExceededException, ErrCodeDependentServiceFailureException},
	}
	opGetBranch = &connection.Operation{
		Name:       "GetBranch",
		HTTPMethod: http.MethodGet,
		RequestURI: "/apps/{appId}/branches/{branchName}",
		Errors:     []string{ErrCodeNotFoundException},
	}
	opListBranches = &connection.Operation{
		Name:       "ListBranches",
		HTTPMethod: http.MethodGet,
		RequestURI: "/apps/{appId}/branches",
	}
	opDeleteBranch = &connection.Operation{
		Name:       "DeleteBranch",
		HTTPMethod: http.MethodDelete,
		RequestURI: "/apps/{appId}/branches/{branchName}",
		Errors:     []string{ErrCodeNotFoundException, ErrCodeDependentServiceFailureException},
	}
)

func (c *Amplify) CreateApp(ctx context.Context, input *CreateAppInput) (*CreateAppOutput, error) {
	return awsjson.Invoke[CreateAppOutput](ctx, c.client, opCreateApp, input)
}

func (c *Amplify) GetApp(ctx context.Context, input *GetAppInput) (*GetAppOutput, error) {
	return awsjson.Invoke[GetAppOutput](ctx, c.client, opGetApp, input)
}

func (c *Amplify) ListApps(ctx context.Context, input *ListAppsInput) (*ListAppsOutput, error) {
	return awsjson.Invoke[ListAppsOutput](ctx, c.client, opListApps, input)
}

func (c *Amplify) DeleteApp(ctx context.Context, input *DeleteAppInput) (*DeleteAppOutput, error) {
	return awsjson.Invoke[DeleteAppOutput](ctx, c.client, opDeleteApp, input)
}

func (c *Amplify) CreateBranch(ctx context.Context, input *CreateBranchInput) (*CreateBranchOutput, error) {
	return awsjson.Invoke[CreateBranchOutput](ctx, c.client, opCreateBranch, input)
}

func (c *Amplify) GetBranch(ctx context.Context, input *GetBranchInput) (*GetBranchOutput, error) {
	return awsjson.Invoke[GetBranchOutput](ctx, c.client, opGetBranch, input)
}

func (c *Amplify) ListBranches(ctx context.Context, input *ListBranchesInput) (*ListBranchesOutput, error) {
	return awsjson.Invoke[ListBranchesOutput](ctx, c.client, opListBranches, input)
}

func (c *Amplify) DeleteBranch(ctx context.Context, input *DeleteBranchInput) (*DeleteBranchOutput, error) {
	return awsjson.Invoke[DeleteBranchOutput](ctx, c.client, opDeleteBranch, input)
}
