// internal/writers/json.go
package writers

import (
	"io"

	"seqmatch/internal/jsonutil"
)

func init() { Register(FormatJSON, WriteJSON) }

// WriteJSON writes the v1 wire form of r as indented JSON.
func WriteJSON(w io.Writer, r Result) error {
	return jsonutil.EncodePretty(w, ToAPI(r))
}
