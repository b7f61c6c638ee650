package diags

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/reusee/fancyip/tokens"
)

// Located is implemented by errors that point at a source location.
type Located interface {
	error
	Where() tokens.Location
	Message() string
}

type Options struct {
	Color bool
}

// Render writes err as a diagnostic: a message line and, when the source is known, the offending line with a caret.
func Render(w io.Writer, err error, opts Options) error {
	label := color.New(color.FgRed, color.Bold)
	caret := color.New(color.FgGreen, color.Bold)
	if opts.Color {
		label.EnableColor()
		caret.EnableColor()
	} else {
		label.DisableColor()
		caret.DisableColor()
	}

	var located Located
	if !errors.As(err, &located) || located.Where() == nil {
		_, err := fmt.Fprintf(w, "%s: %s\n", label.Sprint("error"), err.Error())
		return err
	}

	loc := located.Where()
	if _, err := fmt.Fprintf(w, "%s: %s: %s\n", loc, label.Sprint("error"), located.Message()); err != nil {
		return err
	}

	pos, ok := loc.(tokens.Pos)
	if !ok {
		return nil
	}
	line, ok := pos.LineText()
	if !ok {
		return nil
	}
	_, err = fmt.Fprintf(w, "%s\n%s%s\n", line, padding(line, pos.Column), caret.Sprint("^"))
	return err
}

func Format(err error, opts Options) string {
	var sb strings.Builder
	_ = Render(&sb, err, opts)
	return sb.String()
}

// padding returns the whitespace that places a caret under the given byte column of line.
func padding(line string, column int) string {
	prefix := line[:min(max(column-1, 0), len(line))]
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
