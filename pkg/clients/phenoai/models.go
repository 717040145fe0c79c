package phenoai

// Wire fields of the prediction request and response.
const (
	fieldResultsAsString = "get_results_as_string"
	fieldMode            = "mode"
	fieldData            = "data"
	fieldMapping         = "mapping"

	fieldStatus  = "status"
	fieldType    = "type"
	fieldMessage = "message"

	statusError = "error"

	// Body prefix a healthy server answers with on GET.
	healthOKPrefix = "phenoai-ok"
)

// Result is the structured prediction document the server produced, handed
// to the caller verbatim. Its fields beyond "status" depend on the analyses
// configured at the server.
type Result map[string]interface{}

// Status returns the response status field, or "" when the document has none.
func (r Result) Status() string {
	s, _ := r[fieldStatus].(string)
	return s
}
