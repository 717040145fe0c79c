package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHttpRequestBuilder(t *testing.T) {
	builder := NewHttpRequestBuilder()
	assert.NotNil(t, builder)
	assert.NotNil(t, builder.headers)
}

func TestWithHost(t *testing.T) {
	builder := NewHttpRequestBuilder().WithHost("example.com")
	assert.Equal(t, "example.com", builder.host)
}

func TestWithPort(t *testing.T) {
	builder := NewHttpRequestBuilder().WithPort(8080)
	assert.Equal(t, 8080, builder.port)
}

func TestWithPath(t *testing.T) {
	builder := NewHttpRequestBuilder().WithPath("/predict")
	assert.Equal(t, "/predict", builder.path)
}

func TestWithMethod(t *testing.T) {
	builder := NewHttpRequestBuilder().WithMethod(http.MethodPost)
	assert.Equal(t, http.MethodPost, builder.method)
}

func TestWithHeader(t *testing.T) {
	builder := NewHttpRequestBuilder().WithHeader("X-Caller-Id", "svc")
	assert.Equal(t, "svc", builder.headers["X-Caller-Id"])
}

func TestBuild_FormBody(t *testing.T) {
	form := url.Values{}
	form.Set("mode", "values")
	form.Set("data", "[1,2]&mapping=1")

	req, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPort(8080).
		WithPath("/").
		WithMethod(http.MethodPost).
		WithForm(form).
		WithContext(context.Background()).
		Build()
	assert.NoError(t, err)
	assert.Equal(t, "example.com:8080", req.Host)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

	raw, err := io.ReadAll(req.Body)
	assert.NoError(t, err)

	// A data payload containing '&' and '=' must survive the round trip.
	parsed, err := url.ParseQuery(string(raw))
	assert.NoError(t, err)
	assert.Equal(t, "[1,2]&mapping=1", parsed.Get("data"))
	assert.Equal(t, "values", parsed.Get("mode"))
}

func TestBuild_JsonBody(t *testing.T) {
	body := map[string]interface{}{"key": "value"}

	req, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPort(8080).
		WithPath("/api").
		WithMethod(http.MethodPost).
		WithJsonBody(body).
		WithContext(context.Background()).
		Build()
	assert.NoError(t, err)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var decoded map[string]interface{}
	assert.NoError(t, json.NewDecoder(req.Body).Decode(&decoded))
	assert.Equal(t, body, decoded)
}

func TestBuild_NoBody(t *testing.T) {
	req, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPort(8080).
		WithPath("/").
		WithMethod(http.MethodGet).
		WithContext(context.Background()).
		Build()
	assert.NoError(t, err)
	assert.Nil(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestBuild_MissingHost(t *testing.T) {
	_, err := NewHttpRequestBuilder().
		WithPort(8080).
		WithPath("/").
		WithMethod(http.MethodPost).
		WithContext(context.Background()).
		Build()
	assert.Error(t, err)
}

func TestBuild_InvalidPort(t *testing.T) {
	_, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPath("/").
		WithMethod(http.MethodPost).
		WithContext(context.Background()).
		Build()
	assert.Error(t, err)
}

func TestBuild_MissingPath(t *testing.T) {
	_, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPort(8080).
		WithMethod(http.MethodPost).
		WithContext(context.Background()).
		Build()
	assert.Error(t, err)
}

func TestBuild_MissingMethod(t *testing.T) {
	_, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPort(8080).
		WithPath("/").
		WithContext(context.Background()).
		Build()
	assert.Error(t, err)
}

func TestBuild_MissingContext(t *testing.T) {
	_, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPort(8080).
		WithPath("/").
		WithMethod(http.MethodPost).
		Build()
	assert.Error(t, err)
}

func TestBuild_FormAndJsonBodyExclusive(t *testing.T) {
	_, err := NewHttpRequestBuilder().
		WithHost("example.com").
		WithPort(8080).
		WithPath("/").
		WithMethod(http.MethodPost).
		WithForm(url.Values{}).
		WithJsonBody(map[string]string{}).
		WithContext(context.Background()).
		Build()
	assert.Error(t, err)
}
