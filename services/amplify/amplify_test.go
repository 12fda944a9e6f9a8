package amplify

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	awsjson "github.com/awsjson/awsjson.go"
	"github.com/awsjson/awsjson.go/internal/fakeaws"
	"github.com/awsjson/awsjson.go/jsonwire"
	"github.com/awsjson/awsjson.go/pkg/connection"
	"github.com/awsjson/awsjson.go/pkg/logger"
)

type AmplifyTestSuite struct {
	suite.Suite
	server *fakeaws.Server
	client *Amplify
}

func TestAmplifyTestSuite(t *testing.T) {
	suite.Run(t, new(AmplifyTestSuite))
}

func (s *AmplifyTestSuite) SetupTest() {
	s.server = fakeaws.NewServer()
	s.server.Start()

	conf := connection.NewConfig(s.server.URL())
	conf.Logger = logger.Nop()

	var err error
	s.client, err = New(conf)
	s.Require().NoError(err)
}

func (s *AmplifyTestSuite) TearDownTest() {
	s.server.Stop()
}

func (s *AmplifyTestSuite) TestCreateApp() {
	s.server.AddStubResponse(fakeaws.StubResponse{
		Matcher: fakeaws.MatchRoute(http.MethodPost, "/apps"),
		Result: `{"app":{
			"appId":"d1","name":"site","platform":"WEB","createTime":1600000000,
			"productionBranch":{"branchName":"main","status":"SUCCEED"},
			"environmentVariables":{"STAGE":"prod"}
		}}`,
	})

	out, err := s.client.CreateApp(context.Background(), &CreateAppInput{
		Name:                 aws.String("site"),
		Platform:             aws.String(PlatformWeb),
		EnvironmentVariables: map[string]*string{"STAGE": aws.String("prod"), "UNSET": nil},
		Tags:                 map[string]*string{"b": aws.String("2"), "a": aws.String("1")},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.App)
	s.Assert().Equal("d1", aws.StringValue(out.App.AppId))
	s.Assert().Equal("main", aws.StringValue(out.App.ProductionBranch.BranchName))
	s.Assert().Equal("prod", aws.StringValue(out.App.EnvironmentVariables["STAGE"]))
	s.Assert().Equal(time.Unix(1600000000, 0).UTC(), aws.TimeValue(out.App.CreateTime))

	req, ok := s.server.LastRequest()
	s.Require().True(ok)
	s.Assert().Empty(req.Target)
	s.Assert().Equal("application/json", req.Header.Get("Content-Type"))
	s.Assert().Equal(`{"name":"site","platform":"WEB","environmentVariables":{"STAGE":"prod"},"tags":{"a":"1","b":"2"}}`, string(req.Body))
}

func (s *AmplifyTestSuite) TestGetBranch() {
	s.server.AddStubResponse(fakeaws.StubResponse{
		Matcher: fakeaws.MatchRoute(http.MethodGet, "/apps/d1/branches/feature/x"),
		Result:  `{"branch":{"branchName":"feature/x","stage":"BETA","customDomains":[]}}`,
	})

	out, err := s.client.GetBranch(context.Background(), &GetBranchInput{
		AppId:      aws.String("d1"),
		BranchName: aws.String("feature/x"),
	})
	s.Require().NoError(err)
	s.Assert().Equal(StageBeta, aws.StringValue(out.Branch.Stage))
	s.Assert().NotNil(out.Branch.CustomDomains)
	s.Assert().Empty(out.Branch.CustomDomains)

	req, _ := s.server.LastRequest()
	s.Assert().Empty(req.Body)
}

func (s *AmplifyTestSuite) TestListBranchesQuery() {
	s.server.AddStubResponse(fakeaws.StubResponse{
		Matcher: fakeaws.MatchRoute(http.MethodGet, "/apps/d1/branches"),
		Result:  `{"branches":[{"branchName":"main"},{"branchName":"dev"}],"nextToken":"n2"}`,
	})

	out, err := s.client.ListBranches(context.Background(), &ListBranchesInput{
		AppId:      aws.String("d1"),
		NextToken:  aws.String("n1"),
		MaxResults: aws.Int64(2),
	})
	s.Require().NoError(err)
	s.Require().Len(out.Branches, 2)
	s.Assert().Equal("dev", aws.StringValue(out.Branches[1].BranchName))
	s.Assert().Equal("n2", aws.StringValue(out.NextToken))

	req, _ := s.server.LastRequest()
	s.Assert().Equal("n1", req.Query.Get("nextToken"))
	s.Assert().Equal("2", req.Query.Get("maxResults"))
}

func (s *AmplifyTestSuite) TestDeleteAppNotFound() {
	s.server.AddStubResponse(fakeaws.StubResponse{
		Matcher: fakeaws.MatchRoute(http.MethodDelete, "/apps/missing"),
		Error: &fakeaws.StubError{
			Code:       ErrCodeNotFoundException,
			Message:    "App missing not found.",
			StatusCode: http.StatusNotFound,
			InHeader:   true,
		},
	})

	_, err := s.client.DeleteApp(context.Background(), &DeleteAppInput{AppId: aws.String("missing")})
	s.Require().Error(err)
	s.Assert().True(awsjson.IsErrorCode(err, ErrCodeNotFoundException))

	svcErr, ok := awsjson.AsServiceError(err)
	s.Require().True(ok)
	s.Assert().Equal(http.StatusNotFound, svcErr.StatusCode())
	s.Assert().True(svcErr.Declared())
}

func (s *AmplifyTestSuite) TestServiceWideError() {
	s.server.AddStubResponse(fakeaws.StubResponse{
		Matcher: fakeaws.MatchRoute(http.MethodGet, "/apps"),
		Error:   &fakeaws.StubError{Code: ErrCodeUnauthorizedException, Message: "denied", StatusCode: http.StatusUnauthorized},
	})

	_, err := s.client.ListApps(context.Background(), nil)
	svcErr, ok := awsjson.AsServiceError(err)
	s.Require().True(ok)
	s.Assert().Equal(ErrCodeUnauthorizedException, svcErr.Code())
	s.Assert().True(svcErr.Declared())
}

func (s *AmplifyTestSuite) TestMissingAppId() {
	_, err := s.client.GetApp(context.Background(), &GetAppInput{})
	s.Require().Error(err)
	s.Assert().True(awsjson.IsRequestError(err))
	s.Assert().Empty(s.server.Requests())
}

func TestAppRoundTrip(t *testing.T) {
	wire := jsonwire.New()
	created := time.Date(2022, 6, 1, 12, 0, 0, 250_000_000, time.UTC)
	in := &AppOutput{App: &App{
		AppId:                 aws.String("d1"),
		AppArn:                aws.String("arn:aws:amplify:us-east-1:123456789012:apps/d1"),
		Name:                  aws.String("site"),
		Tags:                  map[string]*string{"team": aws.String("web")},
		Description:           aws.String("my site"),
		Repository:            aws.String("https://github.com/example/site"),
		Platform:              aws.String(PlatformWebCompute),
		CreateTime:            aws.Time(created),
		UpdateTime:            aws.Time(created.Add(time.Hour)),
		IamServiceRoleArn:     aws.String("arn:role"),
		EnvironmentVariables:  map[string]*string{"A": aws.String("1")},
		DefaultDomain:         aws.String("d1.amplifyapp.com"),
		EnableBranchAutoBuild: aws.Bool(true),
		EnableBasicAuth:       aws.Bool(false),
		BasicAuthCredentials:  aws.String("dXNlcjpwYXNz"),
		ProductionBranch: &ProductionBranch{
			LastDeployTime: aws.Time(created),
			Status:         aws.String("SUCCEED"),
			ThumbnailUrl:   aws.String("https://example.com/thumb.png"),
			BranchName:     aws.String("main"),
		},
		BuildSpec: aws.String("version: 1"),
	}}

	data, err := wire.Marshal(in)
	require.NoError(t, err)

	var out AppOutput
	require.NoError(t, wire.Unmarshal(data, &out))
	if diff := cmp.Diff(in, &out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundMembersStayOutOfBody(t *testing.T) {
	wire := jsonwire.New()
	in := &CreateBranchInput{AppId: aws.String("d1"), BranchName: aws.String("dev")}

	data, err := wire.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"branchName":"dev"}`, string(data))

	bindings, err := wire.Bindings(in)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "uri", bindings[0].Location)
	assert.Equal(t, "appId", bindings[0].Name)
	assert.Equal(t, "d1", bindings[0].Value)
}
