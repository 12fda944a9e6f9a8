package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/awsjson/awsjson.go/jsonwire"
	"github.com/awsjson/awsjson.go/pkg/connection"
	"github.com/awsjson/awsjson.go/pkg/constants"
	"github.com/awsjson/awsjson.go/pkg/logger"
	"github.com/awsjson/awsjson.go/pkg/metrics"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

func respond(status int, header http.Header, body string) *http.Response {
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		// Must be set to non-nil value or it panics
		Header: header,
	}
}

type echoInput struct {
	AppID      *string
	Name       *string
	MaxResults *int64
	Token      *string
}

var _ = jsonwire.NewSchema("EchoInput",
	jsonwire.Field("appId", func(r *echoInput) **string { return &r.AppID }, jsonwire.String()).In(jsonwire.LocationURI),
	jsonwire.Field("name", func(r *echoInput) **string { return &r.Name }, jsonwire.String()),
	jsonwire.Field("maxResults", func(r *echoInput) **int64 { return &r.MaxResults }, jsonwire.Int64()).In(jsonwire.LocationQuery),
	jsonwire.Field("X-Token", func(r *echoInput) **string { return &r.Token }, jsonwire.String()).In(jsonwire.LocationHeader),
)

type echoOutput struct {
	Name *string
}

var _ = jsonwire.NewSchema("EchoOutput",
	jsonwire.Field("name", func(r *echoOutput) **string { return &r.Name }, jsonwire.String()),
)

var (
	rpcService = connection.ServiceInfo{
		Name:           "Echo",
		EndpointPrefix: "echo",
		TargetPrefix:   "Echo_20200101",
		JSONVersion:    "1.1",
		Protocol:       connection.ProtocolJSON,
		Errors:         []string{"InternalFailure"},
	}
	restService = connection.ServiceInfo{
		Name:           "EchoRest",
		EndpointPrefix: "echo",
		Protocol:       connection.ProtocolRESTJSON,
	}
)

type HTTPTestSuite struct {
	suite.Suite
	name string
}

func TestHttpTestSuite(t *testing.T) {
	ts := new(HTTPTestSuite)
	ts.name = "HTTP Test Suite"

	suite.Run(t, ts)
}

func (s *HTTPTestSuite) newConnection(service connection.ServiceInfo, fn RoundTripFunc) *Connection {
	u, err := url.Parse("http://test.aws")
	s.Require().NoError(err)

	conf := connection.NewConfig(u).WithService(service)
	conf.Logger = logger.Nop()
	conf.HTTPClient = NewTestClient(fn)

	con, err := New(conf)
	s.Require().NoError(err)
	return con
}

func (s *HTTPTestSuite) TestInvoke_JSONProtocol() {
	con := s.newConnection(rpcService, func(req *http.Request) (*http.Response, error) {
		s.Assert().Equal(http.MethodPost, req.Method)
		s.Assert().Equal("http://test.aws/", req.URL.String())
		s.Assert().Equal("application/x-amz-json-1.1", req.Header.Get(constants.HeaderContentType))
		s.Assert().Equal("Echo_20200101.Echo", req.Header.Get(constants.HeaderTarget))
		s.Assert().Equal(constants.DefaultUserAgent, req.Header.Get(constants.HeaderUserAgent))
		s.Assert().NotEmpty(req.Header.Get(constants.HeaderInvocationID))

		body, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		s.Assert().JSONEq(`{"name":"foo"}`, string(body))

		return respond(http.StatusOK, nil, `{"name":"bar","extra":[1,2]}`), nil
	})

	var out echoOutput
	err := con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{Name: aws.String("foo")}, &out)
	s.Require().NoError(err)
	s.Assert().Equal("bar", aws.StringValue(out.Name))
}

func (s *HTTPTestSuite) TestInvoke_RESTBindings() {
	con := s.newConnection(restService, func(req *http.Request) (*http.Response, error) {
		s.Assert().Equal(http.MethodGet, req.Method)
		s.Assert().Equal("/apps/a%2Fb/echo", req.URL.EscapedPath())
		s.Assert().Equal("10", req.URL.Query().Get("maxResults"))
		s.Assert().Equal("secret", req.Header.Get("X-Token"))
		s.Assert().Empty(req.Header.Get(constants.HeaderTarget))
		s.Assert().Equal(http.NoBody, req.Body)

		return respond(http.StatusOK, nil, `{"name":"bar"}`), nil
	})

	op := &connection.Operation{Name: "GetEcho", HTTPMethod: http.MethodGet, RequestURI: "/apps/{appId}/echo"}
	in := &echoInput{
		AppID:      aws.String("a/b"),
		Name:       aws.String("ignored"),
		MaxResults: aws.Int64(10),
		Token:      aws.String("secret"),
	}
	var out echoOutput
	s.Require().NoError(con.Invoke(context.Background(), op, in, &out))
	s.Assert().Equal("bar", aws.StringValue(out.Name))
}

func (s *HTTPTestSuite) TestInvoke_RESTBodyExcludesBoundMembers() {
	con := s.newConnection(restService, func(req *http.Request) (*http.Response, error) {
		s.Assert().Equal(http.MethodPost, req.Method)
		s.Assert().Equal("/apps/app1/items", req.URL.Path)
		s.Assert().Equal("application/json", req.Header.Get(constants.HeaderContentType))

		body, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		s.Assert().JSONEq(`{"name":"foo"}`, string(body))

		return respond(http.StatusOK, nil, ""), nil
	})

	op := &connection.Operation{Name: "PutEcho", RequestURI: "/apps/{appId}/items"}
	in := &echoInput{AppID: aws.String("app1"), Name: aws.String("foo")}
	s.Require().NoError(con.Invoke(context.Background(), op, in, nil))
}

func (s *HTTPTestSuite) TestInvoke_MissingURILabel() {
	called := false
	con := s.newConnection(restService, func(req *http.Request) (*http.Response, error) {
		called = true
		return respond(http.StatusOK, nil, ""), nil
	})

	op := &connection.Operation{Name: "GetEcho", HTTPMethod: http.MethodGet, RequestURI: "/apps/{appId}"}
	err := con.Invoke(context.Background(), op, &echoInput{}, nil)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, constants.ErrMissingURILabel)

	var reqErr *connection.RequestError
	s.Require().ErrorAs(err, &reqErr)
	s.Assert().Equal(constants.ErrCodeSerialization, reqErr.Code())
	s.Assert().False(called)
}

func (s *HTTPTestSuite) TestInvoke_ServiceErrorFromBody() {
	con := s.newConnection(rpcService, func(req *http.Request) (*http.Response, error) {
		header := make(http.Header)
		header.Set(constants.HeaderRequestID, "req-1")
		return respond(http.StatusBadRequest, header, `{"__type":"com.amazonaws.echo#ResourceNotFound","message":"no such echo"}`), nil
	})

	op := &connection.Operation{Name: "Echo", Errors: []string{"ResourceNotFound"}}
	err := con.Invoke(context.Background(), op, &echoInput{}, &echoOutput{})

	var svcErr *connection.ServiceError
	s.Require().ErrorAs(err, &svcErr)
	s.Assert().Equal("ResourceNotFound", svcErr.Code())
	s.Assert().Equal("no such echo", svcErr.Message())
	s.Assert().Equal(http.StatusBadRequest, svcErr.StatusCode())
	s.Assert().Equal("req-1", svcErr.RequestID())
	s.Assert().Equal("Echo", svcErr.Operation)
	s.Assert().True(svcErr.Declared())
}

func (s *HTTPTestSuite) TestInvoke_ServiceErrorFromHeader() {
	con := s.newConnection(restService, func(req *http.Request) (*http.Response, error) {
		header := make(http.Header)
		header.Set(constants.HeaderErrorType, "NotFoundException:http://internal.amazon.com/coral/com.amazon.echo/")
		header.Set(constants.HeaderAlternateReqID, "req-2")
		return respond(http.StatusNotFound, header, `{"Message":"gone"}`), nil
	})

	err := con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, nil)

	var svcErr *connection.ServiceError
	s.Require().ErrorAs(err, &svcErr)
	s.Assert().Equal("NotFoundException", svcErr.Code())
	s.Assert().Equal("gone", svcErr.Message())
	s.Assert().Equal("req-2", svcErr.RequestID())
	s.Assert().False(svcErr.Declared())
}

func (s *HTTPTestSuite) TestInvoke_ServiceErrorWithoutBody() {
	con := s.newConnection(rpcService, func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusServiceUnavailable, nil, ""), nil
	})

	err := con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, nil)

	var svcErr *connection.ServiceError
	s.Require().ErrorAs(err, &svcErr)
	s.Assert().Equal("ServiceUnavailable", svcErr.Code())
	s.Assert().Empty(svcErr.Message())
}

func (s *HTTPTestSuite) TestInvoke_MalformedResponse() {
	con := s.newConnection(rpcService, func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, nil, `{"name":`), nil
	})

	err := con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, &echoOutput{})

	var reqErr *connection.RequestError
	s.Require().ErrorAs(err, &reqErr)
	s.Assert().Equal(constants.ErrCodeSerialization, reqErr.Code())
}

func (s *HTTPTestSuite) TestInvoke_TransportFailure() {
	boom := errors.New("connection reset")
	con := s.newConnection(rpcService, func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	err := con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, nil)

	var reqErr *connection.RequestError
	s.Require().ErrorAs(err, &reqErr)
	s.Assert().Equal(constants.ErrCodeRequestError, reqErr.Code())
	s.Assert().ErrorIs(err, boom)
}

func (s *HTTPTestSuite) TestInvoke_Canceled() {
	con := s.newConnection(rpcService, func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := con.Invoke(ctx, &connection.Operation{Name: "Echo"}, &echoInput{}, nil)

	var reqErr *connection.RequestError
	s.Require().ErrorAs(err, &reqErr)
	s.Assert().Equal(constants.ErrCodeRequestCanceled, reqErr.Code())
	s.Assert().ErrorIs(err, context.Canceled)
}

func (s *HTTPTestSuite) TestInvoke_HandlersAndSigner() {
	u, err := url.Parse("http://test.aws")
	s.Require().NoError(err)

	var signed bool
	conf := connection.NewConfig(u).WithService(rpcService)
	conf.Logger = logger.Nop()
	conf.Credentials = credentials.NewStaticCredentials("AKID", "SECRET", "TOKEN")
	conf.Handlers = []connection.RequestHandler{
		func(req *http.Request) error {
			req.Header.Set("X-Trace", "t1")
			return nil
		},
	}
	conf.Signer = connection.SignerFunc(func(req *http.Request, body []byte, creds credentials.Value, service connection.ServiceInfo, region string) error {
		signed = true
		s.Assert().Equal("AKID", creds.AccessKeyID)
		s.Assert().Equal("Echo", service.Name)
		s.Assert().Equal(constants.DefaultRegion, region)
		s.Assert().Equal("t1", req.Header.Get("X-Trace"))
		s.Assert().JSONEq(`{}`, string(body))
		req.Header.Set(constants.HeaderSecurityToken, creds.SessionToken)
		return nil
	})
	conf.HTTPClient = NewTestClient(func(req *http.Request) (*http.Response, error) {
		s.Assert().Equal("TOKEN", req.Header.Get(constants.HeaderSecurityToken))
		return respond(http.StatusOK, nil, `{}`), nil
	})

	con, err := New(conf)
	s.Require().NoError(err)
	s.Require().NoError(con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, &echoOutput{}))
	s.Assert().True(signed)
}

func (s *HTTPTestSuite) TestInvoke_HandlerFailure() {
	u, err := url.Parse("http://test.aws")
	s.Require().NoError(err)

	conf := connection.NewConfig(u).WithService(rpcService)
	conf.Logger = logger.Nop()
	conf.Handlers = []connection.RequestHandler{
		func(*http.Request) error { return errors.New("denied") },
	}
	conf.HTTPClient = NewTestClient(func(req *http.Request) (*http.Response, error) {
		s.Fail("request must not be sent")
		return nil, nil
	})

	con, err := New(conf)
	s.Require().NoError(err)
	err = con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, nil)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "denied")
}

func (s *HTTPTestSuite) TestNew_Validation() {
	u, err := url.Parse("http://test.aws")
	s.Require().NoError(err)

	_, err = New(connection.NewConfig(u))
	s.Assert().ErrorIs(err, constants.ErrNoService)

	conf := connection.NewConfig(u).WithService(rpcService)
	conf.Marshaler = nil
	_, err = New(conf)
	s.Assert().ErrorIs(err, constants.ErrNoMarshaler)

	bad := rpcService
	bad.Protocol = "query"
	_, err = New(connection.NewConfig(u).WithService(bad))
	s.Assert().ErrorIs(err, constants.ErrUnknownProtocol)

	con, err := New(connection.NewConfig(nil).WithService(rpcService))
	s.Require().NoError(err)
	s.Assert().Equal("https://echo.us-east-1.amazonaws.com", con.BaseURL.String())
}

func (s *HTTPTestSuite) TestInvoke_NilOperation() {
	con := s.newConnection(rpcService, nil)
	s.Assert().ErrorIs(con.Invoke(context.Background(), nil, &echoInput{}, nil), constants.ErrNoOperation)
}

func (s *HTTPTestSuite) TestInvoke_TruncatedResponse() {
	for _, body := range []string{`{"name":"abc","size":12`, `{"name":"abc","items":[{"n":3`, `{"name":"abc"} {"name":"def"}`} {
		con := s.newConnection(rpcService, func(req *http.Request) (*http.Response, error) {
			return respond(http.StatusOK, nil, body), nil
		})

		out := &echoOutput{}
		err := con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, out)

		var reqErr *connection.RequestError
		s.Require().ErrorAs(err, &reqErr, body)
		s.Assert().Equal(constants.ErrCodeSerialization, reqErr.Code(), body)
		s.Assert().Nil(out.Name, body)
	}
}

func (s *HTTPTestSuite) TestInvoke_Metrics() {
	u, err := url.Parse("http://test.aws")
	s.Require().NoError(err)

	reg := prometheus.NewPedanticRegistry()
	calls := 0
	conf := connection.NewConfig(u).WithService(rpcService)
	conf.Logger = logger.Nop()
	conf.Metrics = metrics.New(reg)
	conf.HTTPClient = NewTestClient(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			return respond(http.StatusOK, nil, `{"name":"ok"}`), nil
		}
		return respond(http.StatusInternalServerError, nil, `{"__type":"InternalFailure","message":"boom"}`), nil
	})

	con, err := New(conf)
	s.Require().NoError(err)
	op := &connection.Operation{Name: "Echo"}

	s.Require().NoError(con.Invoke(context.Background(), op, &echoInput{}, &echoOutput{}))

	err = con.Invoke(context.Background(), op, &echoInput{}, &echoOutput{})
	var svcErr *connection.ServiceError
	s.Require().ErrorAs(err, &svcErr)
	s.Assert().True(svcErr.Declared())

	expected := `
# HELP awsjson_client_requests_total Total number of operations sent to a service.
# TYPE awsjson_client_requests_total counter
awsjson_client_requests_total{operation="Echo",service="Echo"} 2
# HELP awsjson_client_request_failures_total Total number of failed operations by error code.
# TYPE awsjson_client_request_failures_total counter
awsjson_client_request_failures_total{code="InternalFailure",operation="Echo",service="Echo"} 1
`
	s.Require().NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"awsjson_client_requests_total", "awsjson_client_request_failures_total"))

	series, err := testutil.GatherAndCount(reg,
		"awsjson_request_marshal_duration_seconds", "awsjson_client_execute_duration_seconds")
	s.Require().NoError(err)
	s.Assert().Equal(2, series)
}

func (s *HTTPTestSuite) TestSetTimeoutCopiesClient() {
	shared := NewTestClient(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, nil, `{"name":"x"}`), nil
	})
	shared.Timeout = time.Minute

	con := s.newConnection(rpcService, nil).SetHTTPClient(shared).SetTimeout(time.Second)
	s.Assert().Equal(time.Minute, shared.Timeout)
	s.Assert().Equal(time.Second, con.httpClient.Timeout)

	out := &echoOutput{}
	s.Require().NoError(con.Invoke(context.Background(), &connection.Operation{Name: "Echo"}, &echoInput{}, out))
	s.Assert().Equal("x", aws.StringValue(out.Name))
}

func TestExpandURI(t *testing.T) {
	cases := []struct {
		template string
		labels   map[string]string
		want     string
		err      error
	}{
		{"/apps", nil, "/apps", nil},
		{"/apps/{appId}", map[string]string{"appId": "a b"}, "/apps/a%20b", nil},
		{"/objects/{key+}", map[string]string{"key": "x/y z"}, "/objects/x/y%20z", nil},
		{"/apps/{appId}/branches/{branchName}", map[string]string{"appId": "a"}, "", constants.ErrMissingURILabel},
	}
	for _, c := range cases {
		got, err := expandURI(c.template, c.labels)
		if c.err != nil {
			if !errors.Is(err, c.err) {
				t.Errorf("expandURI(%q) error = %v, want %v", c.template, err, c.err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("expandURI(%q) = %q, %v, want %q", c.template, got, err, c.want)
		}
	}
}

func TestSanitizeErrorCode(t *testing.T) {
	cases := map[string]string{
		"ResourceNotFound":                         "ResourceNotFound",
		"com.amazonaws.sagemaker#ResourceInUse":    "ResourceInUse",
		"NotFoundException:http://internal/":       "NotFoundException",
		"aws.protocoltests#FooError:http://x.y/z/": "FooError",
		"": "",
	}
	for in, want := range cases {
		if got := sanitizeErrorCode(in); got != want {
			t.Errorf("sanitizeErrorCode(%q) = %q, want %q", in, got, want)
		}
	}
}
