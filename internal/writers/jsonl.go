package writers

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"seqmatch/internal/jsonlutil"
	"seqmatch/pkg/api"
)

func init() { Register(FormatJSONL, WriteJSONL) }

// WriteJSONL streams one api.SequenceV1 object per sequence.
func WriteJSONL(w io.Writer, r Result) error {
	in, done := jsonlutil.Start(w, 256, func(enc *jsoniter.Encoder, v api.SequenceV1) error {
		return enc.Encode(v)
	}, IsBrokenPipe)
	for s := 0; s < r.Counts.Sequences(); s++ {
		in <- api.SequenceV1{Sequence: s + 1, Counts: r.Counts.Column(s)}
	}
	close(in)
	return <-done
}
