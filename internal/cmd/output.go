package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// useColor decides whether output to w is coloured.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		f, ok := w.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid --color %q: must be %s, %s or %s", mode, colorAuto, colorAlways, colorNever)
	}
}

// printer writes results in grep style: "file:line:text" in directory mode,
// "line:text" for a single file.
type printer struct {
	out      io.Writer
	fileName *color.Color
	line     *color.Color
	sep      *color.Color
}

func newPrinter(out io.Writer, colored bool) *printer {
	p := &printer{
		out:      out,
		fileName: color.New(color.FgMagenta),
		line:     color.New(color.FgGreen),
		sep:      color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.fileName, p.line, p.sep} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) result(r client.Result) error {
	var sb strings.Builder
	if r.FileName != "" {
		sb.WriteString(p.fileName.Sprint(r.FileName))
		sb.WriteString(p.sep.Sprint(":"))
	}
	if r.LineNumber >= 0 {
		sb.WriteString(p.line.Sprint(r.LineNumber))
		sb.WriteString(p.sep.Sprint(":"))
	}
	sb.WriteString(strings.TrimRight(r.Text, "\r\n"))
	sb.WriteString("\n")
	_, err := io.WriteString(p.out, sb.String())
	return err
}

func (p *printer) count(fileName string, n int) error {
	var err error
	if fileName == "" {
		_, err = fmt.Fprintf(p.out, "%d\n", n)
	} else {
		_, err = fmt.Fprintf(p.out, "%s%s%d\n", p.fileName.Sprint(fileName), p.sep.Sprint(":"), n)
	}
	return err
}
