package amplify

import "context"

// AmplifyAPI provides an interface to enable mocking the
// amplify.Amplify service client's API operation.
//
// Every operation may return ErrCodeBadRequestException,
// ErrCodeUnauthorizedException and ErrCodeInternalFailureException.
type AmplifyAPI interface {
	// CreateApp creates a new Amplify app.
	//
	// Returned error codes:
	//   - ErrCodeLimitExceededException
	//   - ErrCodeDependentServiceFailureException
	CreateApp(ctx context.Context, input *CreateAppInput) (*CreateAppOutput, error)

	// GetApp returns an existing Amplify app specified by an app ID.
	//
	// Returned error codes:
	//   - ErrCodeNotFoundException
	GetApp(ctx context.Context, input *GetAppInput) (*GetAppOutput, error)

	// ListApps returns a list of the existing Amplify apps.
	ListApps(ctx context.Context, input *ListAppsInput) (*ListAppsOutput, error)

	// DeleteApp deletes an existing Amplify app specified by an app ID.
	//
	// Returned error codes:
	//   - ErrCodeNotFoundException
	//   - ErrCodeDependentServiceFailureException
	DeleteApp(ctx context.Context, input *DeleteAppInput) (*DeleteAppOutput, error)

	// CreateBranch creates a new branch for an Amplify app.
	//
	// Returned error codes:
	//   - ErrCodeNotFoundException
	//   - ErrCodeLimitExceededException
	//   - ErrCodeDependentServiceFailureException
	CreateBranch(ctx context.Context, input *CreateBranchInput) (*CreateBranchOutput, error)

	// GetBranch returns a branch for an Amplify app.
	//
	// Returned error codes:
	//   - ErrCodeNotFoundException
	GetBranch(ctx context.Context, input *GetBranchInput) (*GetBranchOutput, error)

	// ListBranches lists the branches of an Amplify app.
	ListBranches(ctx context.Context, input *ListBranchesInput) (*ListBranchesOutput, error)

	// DeleteBranch deletes a branch for an Amplify app.
	//
	// Returned error codes:
	//   - ErrCodeNotFoundException
	//   - ErrCodeDependentServiceFailureException
	DeleteBranch(ctx context.Context, input *DeleteBranchInput) (*DeleteBranchOutput, error)
}

var _ AmplifyAPI = (*Amplify)(nil)
