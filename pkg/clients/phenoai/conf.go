package phenoai

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	Host      = "HOST"
	Port      = "PORT"
	TimeoutMS = "TIMEOUT_IN_MS"

	DefaultHost = ""
	DefaultPort = 8080
	// 0 means no request timeout.
	DefaultTimeoutMS = 0
)

type ClientConfig struct {
	Host        string
	Port        int
	TimeoutInMs int
}

func getClientConfigs(prefix string) (*ClientConfig, error) {
	host := DefaultHost
	port := DefaultPort
	timeout := DefaultTimeoutMS

	if viper.IsSet(prefix + Host) {
		host = viper.GetString(prefix + Host)
	}
	if viper.IsSet(prefix + Port) {
		port = viper.GetInt(prefix + Port)
	}
	if viper.IsSet(prefix + TimeoutMS) {
		timeout = viper.GetInt(prefix + TimeoutMS)
	}
	conf := &ClientConfig{
		Host:        host,
		Port:        port,
		TimeoutInMs: timeout,
	}
	if valid, err := validConfigs(conf); !valid {
		return nil, err
	}
	return conf, nil
}

func validConfigs(configs *ClientConfig) (bool, error) {
	if configs.Host == "" {
		return false, fmt.Errorf("phenoai server host is invalid, configured value: %v", configs.Host)
	}
	if configs.Port <= 0 {
		return false, fmt.Errorf("phenoai server port is invalid, configured value: %v", configs.Port)
	}
	if configs.TimeoutInMs < 0 {
		return false, fmt.Errorf("phenoai request timeout is invalid, configured value: %v",
			configs.TimeoutInMs)
	}
	return true, nil
}
