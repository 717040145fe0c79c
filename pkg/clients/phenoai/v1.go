package phenoai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	httpHelper "github.com/phenoai/go-sdk/pkg/api/http"
	enum "github.com/phenoai/go-sdk/pkg/enums"
	"github.com/phenoai/go-sdk/pkg/httpclient"
	"github.com/phenoai/go-sdk/pkg/metric"
	"github.com/rs/zerolog/log"
)

const (
	V1Prefix = "PHENOAI_CLIENT_V1_"

	phenoaiServiceName = "phenoai"
	serverPath         = "/"
)

// ClientV1 talks to a single PhenoAI server. It owns one request execution
// handle, created at construction and reused across sequential calls; the
// handle is never released mid-life, so any number of calls on the same
// instance behave identically. A ClientV1 is not safe for concurrent use.
type ClientV1 struct {
	conf    *ClientConfig
	adaptor Adaptor
	conn    *httpclient.HTTPClient
}

// NewClientV1 creates a new instance of the PhenoAI client (v1)
func NewClientV1(config *ClientConfig) *ClientV1 {
	validateConfig(config)

	conn := httpclient.NewConnFromConfig(&httpclient.Config{
		Host:        config.Host,
		Port:        config.Port,
		TimeoutInMs: config.TimeoutInMs,
	}, V1Prefix)

	return &ClientV1{
		conf:    config,
		adaptor: Adaptor{},
		conn:    conn,
	}
}

func validateConfig(config *ClientConfig) {
	if config == nil {
		log.Panic().Msg("Configuration is nil. Please provide a valid config.")
	}
}

// SetServer replaces the server address used by subsequent calls. No
// validation or connection check is performed; an unreachable address
// surfaces as a TransferError on the next call.
func (c *ClientV1) SetServer(host string, port int) {
	c.conf.Host = host
	c.conf.Port = port
}

// Host returns the configured server host.
func (c *ClientV1) Host() string { return c.conf.Host }

// Port returns the configured server port.
func (c *ClientV1) Port() int { return c.conf.Port }

// PredictValues submits a feature vector for prediction. The mapping flag
// asks the server to include a field-name-to-result mapping in its response.
func (c *ClientV1) PredictValues(values []float64, mapping bool) (Result, error) {
	return c.predict(enum.ModeValues, c.adaptor.EncodeValues(values), mapping)
}

// PredictFile submits the raw contents of the file at path for prediction.
// The file is sent verbatim; an unreadable file fails with FileReadError
// before any network activity.
func (c *ClientV1) PredictFile(path string, mapping bool) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		readErr := &FileReadError{Path: path, Err: err}
		c.countPredictionError(enum.ModeFile, readErr)
		return nil, readErr
	}
	return c.predict(enum.ModeFile, string(content), mapping)
}

// CheckConnection probes the server root and reports whether a PhenoAI
// instance is answering there.
func (c *ClientV1) CheckConnection() error {
	ctx, cancel := c.requestContext()
	defer cancel()

	req, err := httpclient.NewHttpRequestBuilder().
		WithHost(c.conf.Host).
		WithPort(c.conf.Port).
		WithPath(serverPath).
		WithMethod(http.MethodGet).
		WithContext(ctx).
		Build()
	if err != nil {
		return &TransferError{Err: err}
	}
	resp, err := c.conn.Do(req)
	if err != nil {
		return &TransferError{Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransferError{Err: err}
	}
	if !strings.HasPrefix(string(body), healthOKPrefix) {
		return fmt.Errorf("no PhenoAI server answering at %s:%d", c.conf.Host, c.conf.Port)
	}
	return nil
}

func (c *ClientV1) predict(mode enum.Mode, data string, mapping bool) (Result, error) {
	body, err := c.query(mode, data, mapping)
	if err != nil {
		c.countPredictionError(mode, err)
		return nil, err
	}
	result, err := c.adaptor.DecodeResult(body)
	if err != nil {
		c.countPredictionError(mode, err)
		return nil, err
	}
	return result, nil
}

// query performs exactly one blocking transfer of the four-field form
// payload and returns the raw response body. Every transport-level failure,
// including a body cut off mid-transfer, is a TransferError; nothing is
// swallowed.
func (c *ClientV1) query(mode enum.Mode, data string, mapping bool) ([]byte, error) {
	ctx, cancel := c.requestContext()
	defer cancel()

	req, err := httpclient.NewHttpRequestBuilder().
		WithHost(c.conf.Host).
		WithPort(c.conf.Port).
		WithPath(serverPath).
		WithMethod(http.MethodPost).
		WithForm(c.adaptor.BuildForm(mode, data, mapping)).
		WithContext(ctx).
		Build()
	if err != nil {
		return nil, &TransferError{Err: err}
	}

	resp, err := c.conn.Do(req)
	if err != nil {
		log.Error().Err(err).Str("mode", mode.String()).Msg("Transfer to PhenoAI server failed")
		return nil, &TransferError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("mode", mode.String()).Msg("Reading PhenoAI server response failed")
		return nil, &TransferError{Err: err}
	}
	if !httpHelper.IsStandard2xx(resp.StatusCode) {
		// The reference servers report errors in the body, not the status
		// line, so the body is interpreted either way.
		log.Debug().Int("status_code", resp.StatusCode).Msg("Non-2xx status from PhenoAI server")
	}
	return body, nil
}

func (c *ClientV1) requestContext() (context.Context, context.CancelFunc) {
	if c.conf.TimeoutInMs > 0 {
		return context.WithTimeout(context.Background(), time.Duration(c.conf.TimeoutInMs)*time.Millisecond)
	}
	return context.Background(), func() {}
}

func (c *ClientV1) countPredictionError(mode enum.Mode, err error) {
	tags := metric.BuildPredictionErrorTags(phenoaiServiceName, mode.String(), errorTypeTag(err))
	metric.Incr(metric.PredictionErrorCount, tags)
}
