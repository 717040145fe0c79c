package phenoai

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	enum "github.com/phenoai/go-sdk/pkg/enums"
)

// Adaptor converts between caller-side values and the wire format of the
// PhenoAI server.
type Adaptor struct{}

// EncodeValues renders the feature vector as the textual list literal the
// server-side parser consumes, e.g. [0.5,1,2.25]. Each value is formatted
// with the shortest representation that round-trips to float64. An empty
// vector encodes as [].
func (a Adaptor) EncodeValues(values []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// BuildForm builds the form payload of a prediction query. Percent-encoding
// of the data field is left to the request builder.
func (a Adaptor) BuildForm(mode enum.Mode, data string, mapping bool) url.Values {
	form := url.Values{}
	form.Set(fieldResultsAsString, "1")
	form.Set(fieldMode, mode.String())
	form.Set(fieldData, data)
	if mapping {
		form.Set(fieldMapping, "1")
	} else {
		form.Set(fieldMapping, "0")
	}
	return form
}

// DecodeResult interprets a raw response body. A body that does not parse as
// a JSON document is a MalformedResponseError; a document with status "error"
// is a RemoteError carrying the server's type and message; any other document
// is returned whole as the prediction result.
func (a Adaptor) DecodeResult(body []byte) (Result, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	result := Result(doc)
	if result.Status() == statusError {
		errType, _ := doc[fieldType].(string)
		message, _ := doc[fieldMessage].(string)
		return nil, &RemoteError{Type: errType, Message: message}
	}
	return result, nil
}
