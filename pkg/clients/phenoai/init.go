package phenoai

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	Version1 = 1
)

var (
	registry = make(map[int]Client)
	mut      sync.Mutex
)

// InitClient initialises the client for the given version using viper
// configuration under the version's env prefix.
func InitClient(version int) Client {
	mut.Lock()
	defer mut.Unlock()
	if registry[version] != nil {
		log.Panic().Msgf("Client for version %d already initialised", version)
	}
	switch version {
	case Version1:
		conf, err := getClientConfigs(V1Prefix)
		if err != nil {
			log.Panic().Err(err).Msg("Invalid PhenoAI client configs")
		}
		registry[version] = NewClientV1(conf)
	}
	return registry[version]
}

// InitClientFromConfig initialises the client for the given version with an
// explicit config.
func InitClientFromConfig(version int, conf *ClientConfig) Client {
	mut.Lock()
	defer mut.Unlock()
	if registry[version] != nil {
		log.Panic().Msgf("Client for version %d already initialised", version)
	}
	switch version {
	case Version1:
		registry[version] = NewClientV1(conf)
	}
	return registry[version]
}

// GetInstance returns the client for the given version
func GetInstance(version int) Client {
	if registry[version] == nil {
		log.Panic().Msgf("Client for version %d not initialised", version)
	}
	return registry[version]
}
