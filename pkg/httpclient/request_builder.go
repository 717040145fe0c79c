package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	httpHelper "github.com/phenoai/go-sdk/pkg/api/http"
)

type RequestBuilder struct {
	host    string
	port    int
	path    string
	method  string
	headers map[string]string
	form    url.Values
	body    any
	ctx     context.Context
}

func NewHttpRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		headers: make(map[string]string),
	}
}

// WithHost sets the host for the request
func (h *RequestBuilder) WithHost(host string) *RequestBuilder {
	h.host = host
	return h
}

// WithPort sets the port for the request
func (h *RequestBuilder) WithPort(port int) *RequestBuilder {
	h.port = port
	return h
}

// WithPath sets the path for the request
func (h *RequestBuilder) WithPath(path string) *RequestBuilder {
	h.path = path
	return h
}

// WithMethod sets the method for the request
func (h *RequestBuilder) WithMethod(method string) *RequestBuilder {
	h.method = method
	return h
}

// WithHeader adds the header for the request
func (h *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	h.headers[key] = value
	return h
}

// WithForm sets a form-encoded body for the request. The values are
// percent-encoded on build, so payloads may safely contain '&', '=' or
// control characters.
func (h *RequestBuilder) WithForm(form url.Values) *RequestBuilder {
	h.form = form
	return h
}

// WithJsonBody sets a JSON body for the request
func (h *RequestBuilder) WithJsonBody(body any) *RequestBuilder {
	h.body = body
	return h
}

// WithContext sets the context for the request
func (h *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	h.ctx = ctx
	return h
}

// Build validates the builder and builds the http request. The content type
// follows the body that was set: application/x-www-form-urlencoded for a
// form, application/json otherwise.
func (h *RequestBuilder) Build() (*http.Request, error) {
	if len(h.host) == 0 {
		return nil, errors.New("host is required")
	}
	if h.port <= 0 {
		return nil, errors.New("invalid port")
	}
	if len(h.path) == 0 {
		return nil, errors.New("path is required")
	}
	if len(h.method) == 0 {
		return nil, errors.New("method is required")
	}
	if h.ctx == nil {
		return nil, errors.New("context is required, pass context.Background() if not required")
	}
	if h.form != nil && h.body != nil {
		return nil, errors.New("form and json body are mutually exclusive")
	}

	requestURL := httpHelper.BuildHttpUrl(h.host, h.port, h.path)

	var req *http.Request
	var err error
	switch {
	case h.form != nil:
		req, err = http.NewRequestWithContext(h.ctx, h.method, requestURL, strings.NewReader(h.form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set(httpHelper.HeaderContentType, httpHelper.HeaderValueFormUrlEncoded)
	case h.body != nil:
		requestBody, marshalErr := json.Marshal(h.body)
		if marshalErr != nil {
			return nil, marshalErr
		}
		req, err = http.NewRequestWithContext(h.ctx, h.method, requestURL, bytes.NewBuffer(requestBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set(httpHelper.HeaderContentType, httpHelper.HeaderValueApplicationJson)
	default:
		req, err = http.NewRequestWithContext(h.ctx, h.method, requestURL, nil)
		if err != nil {
			return nil, err
		}
	}
	for key, value := range h.headers {
		req.Header.Set(key, value)
	}
	return req, nil
}
