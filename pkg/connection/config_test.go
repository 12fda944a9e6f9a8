package connection

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsjson/awsjson.go/pkg/constants"
)

var testService = ServiceInfo{Name: "Redshift", EndpointPrefix: "redshift", Protocol: ProtocolJSON}

func TestEndpointFor(t *testing.T) {
	u, err := EndpointFor(testService, "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "https://redshift.eu-west-1.amazonaws.com", u.String())

	u, err = EndpointFor(testService, "")
	require.NoError(t, err)
	assert.Equal(t, "redshift.us-east-1.amazonaws.com", u.Host)

	_, err = EndpointFor(ServiceInfo{Name: "NoPrefix"}, "us-east-1")
	assert.ErrorIs(t, err, constants.ErrNoService)
}

func TestConfigEndpoint(t *testing.T) {
	conf := NewConfig(nil).WithService(testService)
	conf.Region = "ap-south-1"
	u, err := conf.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "redshift.ap-south-1.amazonaws.com", u.Host)

	local, _ := url.Parse("http://127.0.0.1:4566")
	conf = NewConfig(local).WithService(testService)
	u, err = conf.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:4566", u.String())
}

func TestNewConfigDefaults(t *testing.T) {
	conf := NewConfig(nil)
	assert.Equal(t, constants.DefaultRegion, conf.Region)
	assert.Equal(t, constants.DefaultHTTPTimeout, conf.Timeout)
	assert.NotNil(t, conf.Marshaler)
	assert.NotNil(t, conf.Unmarshaler)
	assert.NotNil(t, conf.Logger)
}

func TestWithServiceCopies(t *testing.T) {
	base := NewConfig(nil)
	base.Handlers = append(base.Handlers, nil)

	conf := base.WithService(testService)
	conf.Handlers[0] = nil
	conf.Handlers = append(conf.Handlers, nil)

	assert.Empty(t, base.Service.Name)
	assert.Len(t, base.Handlers, 1)
	assert.Equal(t, "Redshift", conf.Service.Name)
}

func TestOperationDefaults(t *testing.T) {
	op := &Operation{Name: "DescribeClusters", Errors: []string{"ClusterNotFound"}}
	svc := ServiceInfo{Errors: []string{"UnauthorizedOperation"}}

	assert.Equal(t, "POST", op.Method())
	assert.Equal(t, "/", op.URI())
	assert.True(t, op.Declares(&svc, "ClusterNotFound"))
	assert.True(t, op.Declares(&svc, "UnauthorizedOperation"))
	assert.False(t, op.Declares(&svc, "ThrottlingException"))
}
