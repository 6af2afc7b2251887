package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// setupLogger applies the level and a text formatter, colored only when out
// is a terminal
func setupLogger(l *logrus.Logger, level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l.SetLevel(lvl)
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:     isTerminal(out),
		DisableColors:   !isTerminal(out),
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000",
	})
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
