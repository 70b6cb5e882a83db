package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/stayhub/stayctl/internal/common"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
	Endpoint  string        // Base API URL, e.g. http://localhost:5000/api
	Timeout   time.Duration // Per request timeout, zero uses DefaultTimeout
	UserAgent string
	ClientID  string // Sent as X-Client when set
}

// Gateway turns request descriptors into HTTP exchanges and normalizes
// every outcome into either a decoded response or an *Error.
type Gateway struct {
	client   *resty.Client
	validate *validator.Validate
}

func New(cfg Config) *Gateway {

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(logrus.StandardLogger())

	if len(cfg.UserAgent) > 0 {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	if len(cfg.ClientID) > 0 {
		client.SetHeader(common.HeaderClient, cfg.ClientID)
	}

	return NewWithClient(client)
}

// NewWithClient wraps a preconfigured resty client.
func NewWithClient(client *resty.Client) *Gateway {
	return &Gateway{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (g *Gateway) Endpoint() string {
	return g.client.BaseURL
}

type errorEnvelope struct {
	Error string `json:"error"`
	Msg   string `json:"msg"` // flask-jwt-extended style rejections
}

// Send dispatches the descriptor. The bearer token is attached only when the
// descriptor requires auth and the token is non-empty. On success the body is
// decoded into out, which may be nil to discard it.
func (g *Gateway) Send(ctx context.Context, desc RequestDescriptor, token string, out any) error {

	restBuilder := g.client.R().SetContext(ctx)

	common.ConfigureJSONRequest(restBuilder, desc.Body)

	if desc.RequiresAuth && len(token) > 0 {
		restBuilder.SetAuthToken(token)
	}

	if len(desc.Query) > 0 {
		restBuilder.SetQueryParamsFromValues(desc.Query)
	}

	fields := logrus.Fields{
		"method":       desc.Method,
		"path":         desc.Path,
		"requiresAuth": desc.RequiresAuth,
		"hasToken":     len(token) > 0,
	}

	started := time.Now()
	resp, err := common.MakeRequestFromBuilder(restBuilder, desc.Method, desc.Path)
	fields["duration"] = time.Since(started)

	if err != nil {
		logrus.WithFields(fields).WithError(err).Debugln("API request failed without a response")
		return classifyTransportError(ctx, err)
	}

	status := resp.StatusCode()
	fields["status"] = status
	logrus.WithFields(fields).Debugln("API request completed")

	body := resp.Body()

	// Error payloads are structured too, so parse before looking at the status.
	if !json.Valid(body) {
		return newParseError(status, fmt.Errorf("response body is not valid JSON"))
	}

	if !resp.IsSuccess() {
		var envelope errorEnvelope
		// A body that is valid JSON but not an object carries no message.
		_ = json.Unmarshal(body, &envelope)

		message := envelope.Error
		if len(message) == 0 {
			message = envelope.Msg
		}

		return newStatusError(status, message)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newParseError(status, err)
	}

	if err := g.validateResponse(out); err != nil {
		return newParseError(status, err)
	}

	return nil
}

func (g *Gateway) validateResponse(out any) error {

	if err := g.validate.Struct(out); err != nil {
		var invalid *validator.InvalidValidationError
		// Non struct targets (maps, slices) have no schema to check.
		if !errors.As(err, &invalid) {
			return err
		}
	}

	if v, ok := out.(interface{ Validate() error }); ok {
		return v.Validate()
	}

	return nil
}

func classifyTransportError(ctx context.Context, err error) *Error {

	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return newNetworkError("request cancelled", err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return newNetworkError("request timed out", err)
	}

	return newNetworkError(fmt.Sprintf("network error: %v", err), err)
}
