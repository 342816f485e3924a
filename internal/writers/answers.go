// internal/writers/answers.go
package writers

import (
	"bufio"
	"io"
	"strconv"
)

func init() { Register(FormatAnswers, WriteAnswers) }

// WriteAnswers writes the counts in answers-file form: a "<patterns>
// <sequences>" header, then one comma-separated row per pattern. The output
// can be fed back as the answers argument of a later run.
func WriteAnswers(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = strconv.AppendInt(buf, int64(r.Counts.Patterns()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(r.Counts.Sequences()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, row := range r.Counts {
		buf = buf[:0]
		for i, v := range row {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
