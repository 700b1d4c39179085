package services

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tally/internal/config"
	apperrors "tally/internal/errors"
	"tally/internal/models"
)

type reportWriter struct {
	cfg    config.OutputConfig
	stdout io.Writer
}

// NewReportWriter creates a new ReportWriterInterface instance
func NewReportWriter(cfg config.OutputConfig) ReportWriterInterface {
	return &reportWriter{cfg: cfg, stdout: os.Stdout}
}

// Write serializes the summary as an indented JSON array and delivers it to
// the configured destination. File destinations are written through a temp
// file and renamed into place, so consumers either see the previous artifact
// or the complete new one, never a partial write.
func (w *reportWriter) Write(summary models.Summary) error {
	payload, err := renderJSON(summary, w.cfg.IndentWidth)
	if err != nil {
		return apperrors.NewRunError(apperrors.OutputWriteFailed, apperrors.WithCause(err))
	}

	if w.cfg.WritesToStdout() {
		if _, err := w.stdout.Write(payload); err != nil {
			return apperrors.NewRunError(apperrors.OutputWriteFailed,
				apperrors.WithDetails("destination: stdout"),
				apperrors.WithCause(err))
		}
		return nil
	}
	return w.writeFileAtomic(payload)
}

func (w *reportWriter) writeFileAtomic(payload []byte) error {
	dir := filepath.Dir(w.cfg.Path)
	base := filepath.Base(w.cfg.Path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return apperrors.NewRunError(apperrors.OutputWriteFailed,
			apperrors.WithDetails("destination: "+w.cfg.Path),
			apperrors.WithCause(err))
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return apperrors.NewRunError(apperrors.OutputWriteFailed,
			apperrors.WithDetails("destination: "+w.cfg.Path),
			apperrors.WithCause(err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return apperrors.NewRunError(apperrors.OutputWriteFailed,
			apperrors.WithDetails("destination: "+w.cfg.Path),
			apperrors.WithCause(err))
	}

	if err := os.Rename(tmp.Name(), w.cfg.Path); err != nil {
		os.Remove(tmp.Name())
		return apperrors.NewRunError(apperrors.OutputWriteFailed,
			apperrors.WithDetails("destination: "+w.cfg.Path),
			apperrors.WithCause(err))
	}
	return nil
}

// renderJSON marshals the summary with the given indent width and a trailing
// newline.
func renderJSON(summary models.Summary, indentWidth int) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", strings.Repeat(" ", indentWidth))
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
