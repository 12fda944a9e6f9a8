package connection

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/awsjson/awsjson.go/internal/codec"
	"github.com/awsjson/awsjson.go/jsonwire"
	"github.com/awsjson/awsjson.go/pkg/constants"
	"github.com/awsjson/awsjson.go/pkg/logger"
	"github.com/awsjson/awsjson.go/pkg/metrics"
)

// Signer signs an outgoing request. Signing itself is not implemented by this
// module; callers plug in their own.
type Signer interface {
	Sign(req *http.Request, body []byte, creds credentials.Value, service ServiceInfo, region string) error
}

// SignerFunc adapts a function to Signer.
type SignerFunc func(req *http.Request, body []byte, creds credentials.Value, service ServiceInfo, region string) error

func (f SignerFunc) Sign(req *http.Request, body []byte, creds credentials.Value, service ServiceInfo, region string) error {
	return f(req, body, creds, service, region)
}

// RequestHandler inspects or mutates a request right before it is sent.
type RequestHandler func(req *http.Request) error

// Config holds everything a connection needs.
type Config struct {
	// URL is the service endpoint. When empty, it is derived from Region and Service.
	URL     url.URL
	Region  string
	Service ServiceInfo

	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	Logger      logger.Logger
	Metrics     *metrics.Metrics

	HTTPClient *http.Client
	Timeout    time.Duration

	// Credentials are resolved once when the connection is created and
	// handed to Signer on every request.
	Credentials *credentials.Credentials
	Signer      Signer
	Handlers    []RequestHandler
	UserAgent   string
}

// NewConfig creates a new Config for the endpoint specified by the URL.
// A nil URL leaves the endpoint to be derived from the region and service.
// It is not absolutely necessary to create a Config using this function,
// but it sets up the codec, logger and timeout the connection expects.
func NewConfig(u *url.URL) *Config {
	wire := jsonwire.New()
	c := &Config{
		Region:      constants.DefaultRegion,
		Marshaler:   wire,
		Unmarshaler: wire,
		Logger:      logger.New(slog.NewTextHandler(os.Stdout, nil)),
		Timeout:     constants.DefaultHTTPTimeout,
		UserAgent:   constants.DefaultUserAgent,
	}
	if u != nil {
		c.URL = *u
	}
	return c
}

// WithService returns a copy of c serving s.
func (c *Config) WithService(s ServiceInfo) *Config {
	cp := *c
	cp.Service = s
	cp.Handlers = append([]RequestHandler(nil), c.Handlers...)
	return &cp
}

// Endpoint returns the configured URL or the standard regional endpoint of the service.
func (c *Config) Endpoint() (*url.URL, error) {
	if c.URL.Host != "" {
		u := c.URL
		return &u, nil
	}
	return EndpointFor(c.Service, c.Region)
}

// EndpointFor derives https://<prefix>.<region>.amazonaws.com for a service.
func EndpointFor(s ServiceInfo, region string) (*url.URL, error) {
	if s.EndpointPrefix == "" {
		return nil, constants.ErrNoService
	}
	if region == "" {
		region = constants.DefaultRegion
	}
	return url.Parse(fmt.Sprintf("%s://%s.%s.amazonaws.com", constants.HTTPSecureScheme, s.EndpointPrefix, region))
}
