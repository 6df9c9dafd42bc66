package alfred

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Output is the top-level JSON document a Script Filter prints.
type Output struct {
	Items []Item  `json:"items"`
	Rerun float64 `json:"rerun,omitempty"`
}

// NewOutput wraps items for printing. A nil slice serializes as an empty
// items array, which Alfred requires over a JSON null.
func NewOutput(items []Item) Output {
	if items == nil {
		items = []Item{}
	}
	return Output{Items: items}
}

// WithRerun asks Alfred to re-run the Script Filter after the given
// number of seconds.
func (o Output) WithRerun(seconds float64) Output {
	o.Rerun = seconds
	return o
}

// JSON returns the serialized document.
func (o Output) JSON() (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode output")
	}
	return string(data), nil
}

// Print writes the document to stdout for Alfred to consume.
func (o Output) Print() error {
	return o.Fprint(os.Stdout)
}

// Fprint writes the document to w.
func (o Output) Fprint(w io.Writer) error {
	data, err := o.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, data)
	return err
}
