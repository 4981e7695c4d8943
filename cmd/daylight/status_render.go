package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func colorizeText(text string, kind statusKind, colorize bool) string {
	if !colorize {
		return text
	}
	color := statusKindColor(kind)
	if color == "" {
		return text
	}
	return color + text + ansiReset
}

// colorDelta paints growing values green and shrinking ones red.
func colorDelta(value string, colorize bool) string {
	switch {
	case strings.HasPrefix(value, "+0s"):
		return value
	case strings.HasPrefix(value, "+"):
		return colorizeText(value, statusOK, colorize)
	case strings.HasPrefix(value, "-"):
		return colorizeText(value, statusError, colorize)
	default:
		return value
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	return []string{colorizeText(line, statusInfo, colorize), colorizeText(rule, statusInfo, colorize)}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
