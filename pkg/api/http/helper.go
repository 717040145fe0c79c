package http

import (
	"fmt"
	"net/http"
)

// Config key suffixes appended to a client's env prefix. Prefixes carry the
// trailing underscore (e.g. PHENOAI_CLIENT_V1_).
const (
	Timeout                   = "TIMEOUT_IN_MS"
	Host                      = "HOST"
	Port                      = "PORT"
	DialTimeout               = "DIAL_TIMEOUT_IN_MS"
	KeepAliveTimeout          = "KEEP_ALIVE_TIMEOUT_IN_MS"
	MaxIdleConnections        = "MAX_IDLE_CONNS"
	MaxIdleConnectionsPerHost = "MAX_IDLE_CONNS_PER_HOST"
	IdleConnectionTimeout     = "IDLE_CONN_TIMEOUT_IN_MS"
)

const (
	HeaderContentType          = "Content-Type"
	HeaderValueApplicationJson = "application/json"
	HeaderValueFormUrlEncoded  = "application/x-www-form-urlencoded"
)

// BuildHttpUrl builds a http url from the given host, port and path
func BuildHttpUrl(host string, port int, path string) string {
	return fmt.Sprintf("http://%s:%d%s", host, port, path)
}

func IsStandard2xx(code int) bool {
	return code >= 200 && code < 300 && http.StatusText(code) != ""
}

func IsStandard4xx(code int) bool {
	return code >= 400 && code < 500 && http.StatusText(code) != ""
}

func IsStandard5xx(code int) bool {
	return code >= 500 && code < 600 && http.StatusText(code) != ""
}
