package report

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// NewLogger returns a debug logger writing to w when verbose is set, and a
// null logger otherwise.
func NewLogger(name string, verbose bool, w io.Writer) hclog.Logger {
	if !verbose {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.Debug,
		Output: w,
	})
}
