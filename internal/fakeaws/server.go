// Package fakeaws provides a fake AWS JSON endpoint for testing purposes.
// It speaks both the JSON RPC protocol (operation named by X-Amz-Target)
// and REST-JSON (operation named by method and path) and records every
// request it receives.
//
// Responses are configured as stubs that match an operation, along with
// failure configurations that specify how a response fails
// (delays, malformed bodies, truncated bodies, throttling).
package fakeaws

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// cryptoRandFloat64 generates a cryptographically secure random float64 in [0.0, 1.0)
func cryptoRandFloat64() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(1<<53))
	return float64(n.Int64()) / float64(1<<53)
}

// cryptoRandInt64 generates a cryptographically secure random int64 in [0, max)
func cryptoRandInt64(rMax int64) int64 {
	if rMax <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(rMax))
	return n.Int64()
}

// FailureType represents the type of failure to inject during request processing
type FailureType string

const (
	// FailureNone indicates no failure injection
	FailureNone FailureType = "none"
	// FailureRequestDelay delays before processing the request
	FailureRequestDelay FailureType = "request_delay"
	// FailureInvalidResponse sends a body that is not JSON with a 200 status
	FailureInvalidResponse FailureType = "invalid_response"
	// FailurePartialMessage sends only half of the response body
	FailurePartialMessage FailureType = "partial_message"
	// FailureThrottle answers with a 400 ThrottlingException
	FailureThrottle FailureType = "throttle"
	// FailureInternalError answers with a 500 and no body
	FailureInternalError FailureType = "internal_error"
)

// RequestMatcher defines criteria for matching incoming requests.
type RequestMatcher struct {
	// Operation is the operation named in X-Amz-Target, e.g. "ListTags".
	// Leave empty to match REST-JSON requests by Method and Path.
	Operation string
	// Method and Path match REST-JSON requests. Path is compared unescaped.
	Method string
	Path   string
	// Matcher is an optional function to match based on the decoded request body.
	Matcher func(body map[string]any) bool
}

// StubError is a service error returned by a stub.
type StubError struct {
	Code       string
	Message    string
	StatusCode int
	// InHeader sends the code in X-Amzn-Errortype instead of the body's __type.
	InHeader bool
}

// StubResponse defines a pre-configured response for matching requests.
type StubResponse struct {
	// Matcher determines which requests this stub should handle
	Matcher RequestMatcher
	// Result is encoded as the response document (mutually exclusive with Error).
	// json.RawMessage and []byte are sent as is.
	Result any
	// Error is the error to return (mutually exclusive with Result)
	Error *StubError
	// Failures defines failure injection configurations for this response
	Failures []FailureConfig
}

// FailureConfig defines how and when to inject a specific failure type
type FailureConfig struct {
	// Type specifies the type of failure to inject
	Type FailureType
	// Probability of triggering this failure (0.0 to 1.0)
	Probability float64
	// MinDelay is the minimum delay for FailureRequestDelay
	MinDelay time.Duration
	// MaxDelay is the maximum delay for FailureRequestDelay
	MaxDelay time.Duration
}

// Request is a request received by the server.
type Request struct {
	Operation string
	Target    string
	Method    string
	Path      string
	Query     url.Values
	Header    http.Header
	Body      []byte
}

// Server is a fake AWS endpoint with support for stub responses and failure injection.
type Server struct {
	mu             sync.RWMutex
	stubResponses  []StubResponse
	globalFailures []FailureConfig
	requests       []Request
	server         *httptest.Server
	requestCounter int
}

// NewServer creates a new fake AWS server. Call Start before use.
func NewServer() *Server {
	s := &Server{}
	s.server = httptest.NewUnstartedServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// AddStubResponse adds a stub response configuration to the server.
// Stub responses are matched in the order they were added.
func (s *Server) AddStubResponse(stub StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubResponses = append(s.stubResponses, stub)
}

// SetGlobalFailures sets failure configurations that apply to all requests.
func (s *Server) SetGlobalFailures(failures []FailureConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.globalFailures = failures
}

// Start starts listening on a random local port.
func (s *Server) Start() {
	s.server.Start()
}

// Stop shuts the server down and waits for outstanding requests.
func (s *Server) Stop() {
	s.server.Close()
}

// URL returns the base URL of the running server.
func (s *Server) URL() *url.URL {
	u, err := url.Parse(s.server.URL)
	if err != nil {
		panic(fmt.Sprintf("fakeaws: invalid server url %q: %v", s.server.URL, err))
	}
	return u
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.sendError(w, &StubError{Code: "SerializationException", Message: err.Error(), StatusCode: http.StatusBadRequest})
		return
	}

	req := Request{
		Target: r.Header.Get("X-Amz-Target"),
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	}
	if i := strings.LastIndexByte(req.Target, '.'); i >= 0 {
		req.Operation = req.Target[i+1:]
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.requestCounter++
	requestID := fmt.Sprintf("fake-%08d", s.requestCounter)
	globalFailures := s.globalFailures
	stubs := s.stubResponses
	s.mu.Unlock()

	w.Header().Set("X-Amzn-Requestid", requestID)

	for _, failure := range globalFailures {
		if shouldTriggerFailure(failure.Probability) && applyFailure(w, failure, nil) {
			return
		}
	}

	var decoded map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &decoded); err != nil {
			s.sendError(w, &StubError{Code: "SerializationException", Message: "request body is not a JSON object", StatusCode: http.StatusBadRequest})
			return
		}
	}

	var matched *StubResponse
	for i := range stubs {
		if stubs[i].Matcher.matches(&req, decoded) {
			matched = &stubs[i]
			break
		}
	}
	if matched == nil {
		name := req.Operation
		if name == "" {
			name = req.Method + " " + req.Path
		}
		s.sendError(w, &StubError{
			Code:       "UnknownOperationException",
			Message:    fmt.Sprintf("no stub for %s", name),
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	payload, err := encodeResult(matched.Result)
	if err != nil {
		s.sendError(w, &StubError{Code: "InternalFailure", Message: err.Error(), StatusCode: http.StatusInternalServerError})
		return
	}

	for _, failure := range matched.Failures {
		if shouldTriggerFailure(failure.Probability) && applyFailure(w, failure, payload) {
			return
		}
	}

	if matched.Error != nil {
		s.sendError(w, matched.Error)
		return
	}
	s.sendResponse(w, payload)
}

func (m *RequestMatcher) matches(req *Request, body map[string]any) bool {
	if m.Operation != "" {
		if m.Operation != req.Operation {
			return false
		}
	} else {
		if m.Method != "" && m.Method != req.Method {
			return false
		}
		if m.Path != "" && m.Path != req.Path {
			return false
		}
	}
	return m.Matcher == nil || m.Matcher(body)
}

// applyFailure injects failure and reports whether the response was written.
func applyFailure(w http.ResponseWriter, failure FailureConfig, payload []byte) bool {
	switch failure.Type {
	case FailureRequestDelay:
		time.Sleep(randomDuration(failure.MinDelay, failure.MaxDelay))
		return false
	case FailureInvalidResponse:
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
		return true
	case FailurePartialMessage:
		if len(payload) < 2 {
			payload = []byte(`{"truncated":true}`)
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload[:len(payload)/2])
		return true
	case FailureThrottle:
		writeError(w, &StubError{Code: "ThrottlingException", Message: "Rate exceeded", StatusCode: http.StatusBadRequest})
		return true
	case FailureInternalError:
		w.WriteHeader(http.StatusInternalServerError)
		return true
	default:
		return false
	}
}

func (s *Server) sendResponse(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) sendError(w http.ResponseWriter, e *StubError) {
	writeError(w, e)
}

func writeError(w http.ResponseWriter, e *StubError) {
	status := e.StatusCode
	if status == 0 {
		status = http.StatusBadRequest
	}
	doc := map[string]string{"message": e.Message}
	if e.InHeader {
		w.Header().Set("X-Amzn-Errortype", e.Code)
	} else {
		doc["__type"] = e.Code
	}
	payload, _ := json.Marshal(doc)

	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func encodeResult(result any) ([]byte, error) {
	switch v := result.(type) {
	case nil:
		return []byte("{}"), nil
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return json.Marshal(v)
	}
}

func shouldTriggerFailure(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return cryptoRandFloat64() < probability
}

func randomDuration(dMin, dMax time.Duration) time.Duration {
	if dMax <= dMin {
		return dMin
	}
	return dMin + time.Duration(cryptoRandInt64(int64(dMax-dMin)))
}

// MatchOperation matches JSON RPC requests for the named operation.
func MatchOperation(operation string) RequestMatcher {
	return RequestMatcher{Operation: operation}
}

// MatchRoute matches REST-JSON requests by method and unescaped path.
func MatchRoute(method, path string) RequestMatcher {
	return RequestMatcher{Method: method, Path: path}
}

// SimpleStubResponse creates a stub answering operation with response.
func SimpleStubResponse(operation string, response any) StubResponse {
	return StubResponse{
		Matcher: MatchOperation(operation),
		Result:  response,
	}
}

// ErrorStubResponse creates a stub answering operation with a service error.
func ErrorStubResponse(operation, code, message string, status int) StubResponse {
	return StubResponse{
		Matcher: MatchOperation(operation),
		Error:   &StubError{Code: code, Message: message, StatusCode: status},
	}
}
