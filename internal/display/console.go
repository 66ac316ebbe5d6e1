package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Console writes progress to Out and warnings/errors to Err.
type Console struct {
	Out io.Writer
	Err io.Writer
}

func NewConsole() *Console {
	return &Console{Out: color.Output, Err: color.Error}
}

// NewConsoleWriters builds a Console over arbitrary writers, mostly for tests.
func NewConsoleWriters(out, err io.Writer) *Console {
	return &Console{Out: out, Err: err}
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.Out, a...)
}

func (c *Console) Info(format string, a ...interface{}) {
	infoColor.Fprintf(c.Out, format+"\n", a...)
}

func (c *Console) Success(format string, a ...interface{}) {
	successColor.Fprintf(c.Out, "✓ "+format+"\n", a...)
}

func (c *Console) Warn(format string, a ...interface{}) {
	warnColor.Fprintf(c.Err, "⚠ "+format+"\n", a...)
}

func (c *Console) Error(format string, a ...interface{}) {
	errorColor.Fprintf(c.Err, "❌ "+format+"\n", a...)
}

// Progress returns a bar over total steps drawn on Out.
func (c *Console) Progress(total int, description string) *progressbar.ProgressBar {
	theme := progressbar.Theme{
		Saucer:        "=",
		SaucerHead:    ">",
		SaucerPadding: " ",
		BarStart:      "[",
		BarEnd:        "]",
	}
	if !color.NoColor {
		description = "[cyan]" + description + "[reset]"
		theme.Saucer = "[green]=[reset]"
		theme.SaucerHead = "[green]>[reset]"
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.Out),
		progressbar.OptionEnableColorCodes(!color.NoColor),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(theme))
}
