package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#646464"))

func commandParse(input string) (string, []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func setTitle(w io.Writer, t string) {
	fmt.Fprintf(w, "\033]0;%s\007", t)
}

func printInfo(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, infoStyle.Render("# "+fmt.Sprintf(format, a...)))
}

func timeTrack(w io.Writer, start time.Time) {
	elapsed := time.Since(start)
	printInfo(w, "...%s", round(elapsed, 2))
}

var divs = []time.Duration{
	time.Duration(1), time.Duration(10), time.Duration(100), time.Duration(1000),
}

func round(d time.Duration, digits int) time.Duration {
	if digits < 0 || digits >= len(divs) {
		panic("wrong length provided")
	}
	switch {
	case d > time.Second:
		d = d.Round(time.Second / divs[digits])
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / divs[digits])
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / divs[digits])
	}
	return d
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		dirname, _ := os.UserHomeDir()
		p = filepath.Join(dirname, p[2:])
	}
	return p
}
