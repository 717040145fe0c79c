package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	httpHelper "github.com/phenoai/go-sdk/pkg/api/http"
	"github.com/phenoai/go-sdk/pkg/metric"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	defaultDialTimeout         = 30000 // in milliseconds
	defaultKeepAliveTimeout    = 30000 // in milliseconds
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90000 // in milliseconds
	defaultScheme              = "http"
	defaultPort                = 80
)

type Config struct {
	Scheme string
	Host   string
	Port   int
	// TimeoutInMs of 0 means no request timeout.
	TimeoutInMs int
	Transport   *TransportConfig
}

type TransportConfig struct {
	DialTimeoutInMs      int
	MaxIdleConns         int
	MaxIdleConnsPerHost  int
	IdleConnTimeoutInMs  int
	KeepAliveTimeoutInMs int
}

// HTTPClient is a long-lived request execution handle. The underlying
// http.Client manages its own connections, so one HTTPClient is safely
// reusable across sequential requests for the whole client lifetime.
type HTTPClient struct {
	CoreClient *http.Client
	Endpoint   string
	envPrefix  string
}

// NewConn builds a handle from viper configuration under the given env prefix.
func NewConn(envPrefix string) *HTTPClient {
	config := getConfig(envPrefix)
	return &HTTPClient{
		CoreClient: getHTTPClient(config),
		Endpoint:   getEndPoint(config),
		envPrefix:  envPrefix,
	}
}

// NewConnFromConfig builds a handle from an explicit config. When no
// transport config is given, the tuning keys under envPrefix are consulted
// before falling back to defaults.
func NewConnFromConfig(config *Config, envPrefix string) *HTTPClient {
	if config.Scheme == "" {
		config.Scheme = defaultScheme
	}
	if config.Port == 0 {
		config.Port = defaultPort
	}
	if config.Transport == nil {
		config.Transport = getHttpTransportConfig(envPrefix)
	}
	return &HTTPClient{
		CoreClient: getHTTPClient(config),
		Endpoint:   getEndPoint(config),
		envPrefix:  envPrefix,
	}
}

func getConfig(envPrefix string) *Config {
	config := &Config{
		Scheme: defaultScheme,
		Port:   defaultPort,
	}
	if !viper.IsSet(envPrefix + httpHelper.Host) {
		log.Panic().Msg(envPrefix + httpHelper.Host + " not set")
	}
	config.Host = viper.GetString(envPrefix + httpHelper.Host)
	if viper.IsSet(envPrefix + httpHelper.Port) {
		config.Port = viper.GetInt(envPrefix + httpHelper.Port)
	}
	if viper.IsSet(envPrefix + httpHelper.Timeout) {
		config.TimeoutInMs = viper.GetInt(envPrefix + httpHelper.Timeout)
	}
	config.Transport = getHttpTransportConfig(envPrefix)
	return config
}

func getHttpTransportConfig(envPrefix string) *TransportConfig {
	transport := defaultTransportConfig()
	if viper.IsSet(envPrefix + httpHelper.DialTimeout) {
		transport.DialTimeoutInMs = viper.GetInt(envPrefix + httpHelper.DialTimeout)
	}
	if viper.IsSet(envPrefix + httpHelper.KeepAliveTimeout) {
		transport.KeepAliveTimeoutInMs = viper.GetInt(envPrefix + httpHelper.KeepAliveTimeout)
	}
	if viper.IsSet(envPrefix + httpHelper.MaxIdleConnections) {
		transport.MaxIdleConns = viper.GetInt(envPrefix + httpHelper.MaxIdleConnections)
	}
	if viper.IsSet(envPrefix + httpHelper.MaxIdleConnectionsPerHost) {
		transport.MaxIdleConnsPerHost = viper.GetInt(envPrefix + httpHelper.MaxIdleConnectionsPerHost)
	}
	if viper.IsSet(envPrefix + httpHelper.IdleConnectionTimeout) {
		transport.IdleConnTimeoutInMs = viper.GetInt(envPrefix + httpHelper.IdleConnectionTimeout)
	}
	return transport
}

func defaultTransportConfig() *TransportConfig {
	return &TransportConfig{
		DialTimeoutInMs:      defaultDialTimeout,
		KeepAliveTimeoutInMs: defaultKeepAliveTimeout,
		MaxIdleConns:         defaultMaxIdleConns,
		MaxIdleConnsPerHost:  defaultMaxIdleConnsPerHost,
		IdleConnTimeoutInMs:  defaultIdleConnTimeout,
	}
}

func getEndPoint(config *Config) string {
	return fmt.Sprintf("%s://%s:%d", config.Scheme, config.Host, config.Port)
}

func getHTTPClient(config *Config) *http.Client {
	log.Debug().Msgf("Creating http client with config: %+v", config)
	return &http.Client{
		Transport: otelhttp.NewTransport(getHttpTransportFromConfig(config.Transport)),
		Timeout:   time.Duration(config.TimeoutInMs) * time.Millisecond,
	}
}

func getHttpTransportFromConfig(transport *TransportConfig) *http.Transport {
	transporter := http.DefaultTransport.(*http.Transport).Clone()
	transporter.DialContext = (&net.Dialer{
		Timeout:   time.Duration(transport.DialTimeoutInMs) * time.Millisecond,
		KeepAlive: time.Duration(transport.KeepAliveTimeoutInMs) * time.Millisecond,
	}).DialContext
	transporter.MaxIdleConns = transport.MaxIdleConns
	transporter.MaxIdleConnsPerHost = transport.MaxIdleConnsPerHost
	transporter.IdleConnTimeout = time.Duration(transport.IdleConnTimeoutInMs) * time.Millisecond
	return transporter
}

// Do is a wrapper around http.Client.Do capable of generating metrics for the external http service
func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	resp, err := h.CoreClient.Do(req)
	if resp == nil {
		if os.IsTimeout(err) {
			log.Error().Err(err).Msg("Request timed out")
			h.emitMetrics(req, startTime, http.StatusGatewayTimeout)
			return nil, err
		}
		//keeping this 0 as status code as we are not able to get the status code from error
		h.emitMetrics(req, startTime, 0)
		return nil, err
	}
	h.emitMetrics(req, startTime, resp.StatusCode)
	return resp, err
}

func (h *HTTPClient) emitMetrics(req *http.Request, startTime time.Time, statusCode int) {
	latency := time.Since(startTime)
	latencyTags := metric.BuildExternalHTTPServiceLatencyTags(h.envPrefix, req.URL.Path, req.Method, statusCode)
	countTags := metric.BuildExternalHTTPServiceCountTags(h.envPrefix, req.URL.Path, req.Method, statusCode)
	metric.Timing(metric.ExternalApiRequestLatency, latency, latencyTags)
	metric.Incr(metric.ExternalApiRequestCount, countTags)
}
