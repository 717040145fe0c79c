package phenoai

import (
	"errors"
	"fmt"
)

// FileReadError reports that the input file for PredictFile could not be
// read. It is returned before any network activity takes place.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("phenoai: cannot read input file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// TransferError reports that the network transfer failed before a complete
// response body was obtained.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("phenoai: transfer failed: %v", e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// MalformedResponseError reports a response body that is not a well-formed
// JSON document.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("phenoai: malformed server response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// RemoteError is a logical or processing error the server reported in a
// well-formed response. Type is the server's category tag and is treated as
// an opaque string.
type RemoteError struct {
	Type    string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Type)
}

func errorTypeTag(err error) string {
	var (
		fileErr      *FileReadError
		transferErr  *TransferError
		malformedErr *MalformedResponseError
		remoteErr    *RemoteError
	)
	switch {
	case errors.As(err, &fileErr):
		return "file_read_error"
	case errors.As(err, &transferErr):
		return "transfer_error"
	case errors.As(err, &malformedErr):
		return "malformed_response_error"
	case errors.As(err, &remoteErr):
		return "remote_error"
	default:
		return "unknown"
	}
}
