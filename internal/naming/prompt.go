package naming

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks through an interactive huh form. It needs a terminal.
type FormPrompter struct{}

// Ask implements Prompter.
func (FormPrompter) Ask(ctx context.Context, message, def string) (string, error) {
	var answer string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(message).
				Description(fmt.Sprintf("Leave empty to use %q", def)).
				Placeholder(def).
				Value(&answer),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}
	return answer, nil
}

// LinePrompter asks on a plain line-oriented stream, for pipes and scripts.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter reads answers from r and writes questions to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

// Ask implements Prompter. A closed input stream is an error.
func (p *LinePrompter) Ask(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.w, "? %s (%s) ", message, def)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
