package redshift

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	awsjson "github.com/awsjson/awsjson.go"
	"github.com/awsjson/awsjson.go/internal/fakeaws"
	"github.com/awsjson/awsjson.go/jsonwire"
	"github.com/awsjson/awsjson.go/pkg/connection"
	"github.com/awsjson/awsjson.go/pkg/logger"
)

const clusterJSON = `{
	"Cluster": {
		"ClusterIdentifier": "warehouse",
		"NodeType": "dc2.large",
		"ClusterStatus": "available",
		"MasterUsername": "admin",
		"DBName": "dev",
		"Endpoint": {"Address": "warehouse.abc.us-east-1.redshift.amazonaws.com", "Port": 5439},
		"ClusterCreateTime": 1577836800.25,
		"NumberOfNodes": 2,
		"Encrypted": false,
		"Tags": [{"Key": "env", "Value": "prod"}],
		"PendingActions": []
	}
}`

type RedshiftTestSuite struct {
	suite.Suite
	server *fakeaws.Server
	client *Redshift
}

func TestRedshiftTestSuite(t *testing.T) {
	suite.Run(t, new(RedshiftTestSuite))
}

func (s *RedshiftTestSuite) SetupTest() {
	s.server = fakeaws.NewServer()
	s.server.Start()

	conf := connection.NewConfig(s.server.URL())
	conf.Logger = logger.Nop()

	var err error
	s.client, err = New(conf)
	s.Require().NoError(err)
}

func (s *RedshiftTestSuite) TearDownTest() {
	s.server.Stop()
}

func (s *RedshiftTestSuite) TestCreateCluster() {
	s.server.AddStubResponse(fakeaws.SimpleStubResponse("CreateCluster", clusterJSON))

	out, err := s.client.CreateCluster(context.Background(), &CreateClusterInput{
		ClusterIdentifier:  aws.String("warehouse"),
		NodeType:           aws.String("dc2.large"),
		MasterUsername:     aws.String("admin"),
		MasterUserPassword: aws.String("Secret123"),
		NumberOfNodes:      aws.Int64(2),
		IamRoles:           []*string{aws.String("arn:role")},
		Tags:               []*Tag{{Key: aws.String("env"), Value: aws.String("prod")}},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Cluster)

	c := out.Cluster
	s.Assert().Equal("warehouse", aws.StringValue(c.ClusterIdentifier))
	s.Assert().Equal(ClusterStatusAvailable, aws.StringValue(c.ClusterStatus))
	s.Require().NotNil(c.Endpoint)
	s.Assert().Equal(int64(5439), aws.Int64Value(c.Endpoint.Port))
	s.Assert().Equal(int64(1577836800250), c.ClusterCreateTime.UnixMilli())
	s.Assert().False(aws.BoolValue(c.Encrypted))
	s.Assert().NotNil(c.Encrypted)
	s.Assert().NotNil(c.PendingActions)
	s.Assert().Empty(c.PendingActions)
	s.Assert().Nil(c.KmsKeyId)

	req, ok := s.server.LastRequest()
	s.Require().True(ok)
	s.Assert().Equal("RedshiftServiceVersion20121201.CreateCluster", req.Target)
	s.Assert().Equal(http.MethodPost, req.Method)
	s.Assert().Equal("/", req.Path)
	s.Assert().JSONEq(`{
		"ClusterIdentifier":"warehouse",
		"NodeType":"dc2.large",
		"MasterUsername":"admin",
		"MasterUserPassword":"Secret123",
		"NumberOfNodes":2,
		"Tags":[{"Key":"env","Value":"prod"}],
		"IamRoles":["arn:role"]
	}`, string(req.Body))
}

func (s *RedshiftTestSuite) TestDescribeClustersPaging() {
	s.server.AddStubResponse(fakeaws.StubResponse{
		Matcher: fakeaws.RequestMatcher{
			Operation: "DescribeClusters",
			Matcher:   func(body map[string]any) bool { return body["Marker"] == nil },
		},
		Result: `{"Clusters":[{"ClusterIdentifier":"a"}],"Marker":"m1"}`,
	})
	s.server.AddStubResponse(fakeaws.StubResponse{
		Matcher: fakeaws.RequestMatcher{
			Operation: "DescribeClusters",
			Matcher:   func(body map[string]any) bool { return body["Marker"] == "m1" },
		},
		Result: `{"Clusters":[{"ClusterIdentifier":"b"}]}`,
	})

	var ids []string
	in := &DescribeClustersInput{MaxRecords: aws.Int64(20)}
	for {
		out, err := s.client.DescribeClusters(context.Background(), in)
		s.Require().NoError(err)
		for _, c := range out.Clusters {
			ids = append(ids, aws.StringValue(c.ClusterIdentifier))
		}
		if out.Marker == nil {
			break
		}
		in.Marker = out.Marker
	}
	s.Assert().Equal([]string{"a", "b"}, ids)
	s.Assert().Len(s.server.Requests(), 2)
}

func (s *RedshiftTestSuite) TestClusterLifecycle() {
	for _, op := range []string{"ModifyCluster", "PauseCluster", "ResumeCluster", "RebootCluster", "DeleteCluster"} {
		s.server.AddStubResponse(fakeaws.SimpleStubResponse(op, clusterJSON))
	}
	ctx := context.Background()
	id := &ClusterIdentifierInput{ClusterIdentifier: aws.String("warehouse")}

	_, err := s.client.ModifyCluster(ctx, &ModifyClusterInput{ClusterIdentifier: aws.String("warehouse"), NumberOfNodes: aws.Int64(4)})
	s.Require().NoError(err)
	_, err = s.client.PauseCluster(ctx, id)
	s.Require().NoError(err)
	_, err = s.client.ResumeCluster(ctx, id)
	s.Require().NoError(err)
	_, err = s.client.RebootCluster(ctx, id)
	s.Require().NoError(err)
	out, err := s.client.DeleteCluster(ctx, &DeleteClusterInput{
		ClusterIdentifier:        aws.String("warehouse"),
		SkipFinalClusterSnapshot: aws.Bool(true),
	})
	s.Require().NoError(err)
	s.Assert().Equal("warehouse", aws.StringValue(out.Cluster.ClusterIdentifier))

	reqs := s.server.Requests()
	s.Require().Len(reqs, 5)
	s.Assert().JSONEq(`{"ClusterIdentifier":"warehouse","NumberOfNodes":4}`, string(reqs[0].Body))
	s.Assert().JSONEq(`{"ClusterIdentifier":"warehouse"}`, string(reqs[1].Body))
	s.Assert().JSONEq(`{"ClusterIdentifier":"warehouse","SkipFinalClusterSnapshot":true}`, string(reqs[4].Body))
}

func (s *RedshiftTestSuite) TestDescribeClusterSnapshots() {
	s.server.AddStubResponse(fakeaws.SimpleStubResponse("DescribeClusterSnapshots", `{
		"Snapshots": [{
			"SnapshotIdentifier": "snap-1",
			"ClusterIdentifier": "warehouse",
			"SnapshotType": "manual",
			"SnapshotCreateTime": 1577840400,
			"TotalBackupSizeInMegaBytes": 1024.5,
			"ActualIncrementalBackupSizeInMegaBytes": 0.25,
			"RestorableNodeTypes": ["dc2.large", null]
		}]
	}`))

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	out, err := s.client.DescribeClusterSnapshots(context.Background(), &DescribeClusterSnapshotsInput{
		ClusterIdentifier: aws.String("warehouse"),
		SnapshotType:      aws.String(SnapshotTypeManual),
		StartTime:         aws.Time(start),
		EndTime:           aws.Time(start.Add(36 * time.Hour)),
	})
	s.Require().NoError(err)
	s.Require().Len(out.Snapshots, 1)

	snap := out.Snapshots[0]
	s.Assert().Equal(1024.5, aws.Float64Value(snap.TotalBackupSizeInMegaBytes))
	s.Assert().Equal(0.25, aws.Float64Value(snap.ActualIncrementalBackupSizeInMegaBytes))
	s.Assert().True(snap.SnapshotCreateTime.Equal(start.Add(time.Hour)))
	s.Require().Len(snap.RestorableNodeTypes, 2)
	s.Assert().Nil(snap.RestorableNodeTypes[1])

	req, _ := s.server.LastRequest()
	s.Assert().JSONEq(`{
		"ClusterIdentifier":"warehouse",
		"SnapshotType":"manual",
		"StartTime":1577836800,
		"EndTime":1577966400
	}`, string(req.Body))
}

func (s *RedshiftTestSuite) TestTags() {
	s.server.AddStubResponse(fakeaws.SimpleStubResponse("CreateTags", nil))
	s.server.AddStubResponse(fakeaws.SimpleStubResponse("DeleteTags", nil))
	ctx := context.Background()

	s.Require().NoError(s.client.CreateTags(ctx, &CreateTagsInput{
		ResourceName: aws.String("arn:cluster"),
		Tags:         []*Tag{{Key: aws.String("team"), Value: aws.String("data")}},
	}))
	s.Require().NoError(s.client.DeleteTags(ctx, &DeleteTagsInput{
		ResourceName: aws.String("arn:cluster"),
		TagKeys:      []*string{aws.String("team")},
	}))

	req, _ := s.server.LastRequest()
	s.Assert().Equal("DeleteTags", req.Operation)
	s.Assert().JSONEq(`{"ResourceName":"arn:cluster","TagKeys":["team"]}`, string(req.Body))
}

func (s *RedshiftTestSuite) TestClusterNotFound() {
	s.server.AddStubResponse(fakeaws.ErrorStubResponse("DescribeClusters",
		ErrCodeClusterNotFoundFault, "Cluster missing not found.", http.StatusNotFound))

	out, err := s.client.DescribeClusters(context.Background(), &DescribeClustersInput{ClusterIdentifier: aws.String("missing")})
	s.Require().Error(err)
	s.Assert().Nil(out)
	s.Assert().True(awsjson.IsErrorCode(err, ErrCodeClusterNotFoundFault))

	svcErr, ok := awsjson.AsServiceError(err)
	s.Require().True(ok)
	s.Assert().True(svcErr.Declared())
	s.Assert().Equal(http.StatusNotFound, svcErr.StatusCode())
	s.Assert().Equal("DescribeClusters", svcErr.Operation)
}

func (s *RedshiftTestSuite) TestServiceWideErrorIsDeclared() {
	s.server.AddStubResponse(fakeaws.ErrorStubResponse("PauseCluster",
		ErrCodeUnauthorizedOperation, "not authorized", http.StatusBadRequest))

	_, err := s.client.PauseCluster(context.Background(), &PauseClusterInput{ClusterIdentifier: aws.String("warehouse")})
	svcErr, ok := awsjson.AsServiceError(err)
	s.Require().True(ok)
	s.Assert().True(svcErr.Declared())
}

func (s *RedshiftTestSuite) TestThrottled() {
	s.server.SetGlobalFailures([]fakeaws.FailureConfig{{Type: fakeaws.FailureThrottle, Probability: 1}})

	_, err := s.client.RebootCluster(context.Background(), &RebootClusterInput{ClusterIdentifier: aws.String("warehouse")})
	svcErr, ok := awsjson.AsServiceError(err)
	s.Require().True(ok)
	s.Assert().False(svcErr.Declared())
	s.Assert().False(awsjson.IsRequestError(err))
}

func TestTimestampsEncodeAsEpochSeconds(t *testing.T) {
	when := time.UnixMilli(1577836800123).UTC()
	data, err := jsonwire.New().Marshal(&DescribeClusterSnapshotsInput{StartTime: &when})
	require.NoError(t, err)
	assert.JSONEq(t, `{"StartTime":1577836800.123}`, string(data))
}

func TestClusterDecodeSkipsUnknownMembers(t *testing.T) {
	var out ClusterOutput
	err := jsonwire.New().Unmarshal([]byte(`{
		"Cluster": {"ClusterIdentifier": "x", "ClusterNodes": [{"NodeRole": "LEADER"}], "Endpoint": null}
	}`), &out)
	require.NoError(t, err)
	require.NotNil(t, out.Cluster)
	assert.Equal(t, "x", aws.StringValue(out.Cluster.ClusterIdentifier))
	assert.Nil(t, out.Cluster.Endpoint)
}
