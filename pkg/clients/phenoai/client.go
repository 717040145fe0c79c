package phenoai

// Client exposes the prediction APIs of a remote PhenoAI server.
type Client interface {
	PredictValues(values []float64, mapping bool) (Result, error)
	PredictFile(path string, mapping bool) (Result, error)
	CheckConnection() error
}
