package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	apperrors "tally/internal/errors"
	"tally/internal/logging"
	"tally/internal/models"
)

type datasetLoader struct {
	logger *logging.Logger
}

// NewDatasetLoader creates a new DatasetLoaderInterface instance
func NewDatasetLoader(logger *logging.Logger) DatasetLoaderInterface {
	return &datasetLoader{logger: logger}
}

// Load reads the CSV file at path into a Dataset. The file handle is released
// on every path out of this function.
func (l *datasetLoader) Load(path string) (*models.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewRunError(apperrors.InputFileNotFound,
				apperrors.WithDetails("path: "+path),
				apperrors.WithCause(err))
		}
		return nil, apperrors.NewRunError(apperrors.InputUnreadable,
			apperrors.WithDetails("path: "+path),
			apperrors.WithCause(err))
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.NewRunError(apperrors.InputEmpty,
			apperrors.WithDetails("path: "+path))
	}
	if err != nil {
		return nil, apperrors.NewRunError(apperrors.InputUnreadable,
			apperrors.WithDetails("path: "+path),
			apperrors.WithCause(err))
	}
	stripBOM(header)

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewRunError(apperrors.InputUnreadable,
				apperrors.WithDetails(fmt.Sprintf("path: %s", path)),
				apperrors.WithCause(err))
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, apperrors.NewRunError(apperrors.InputEmpty,
			apperrors.WithDetails("path: "+path))
	}

	l.logger.Debug("dataset loaded", "path", path, "columns", len(header), "rows", len(rows))

	return &models.Dataset{
		Path:    path,
		Columns: header,
		Rows:    rows,
	}, nil
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
// Spreadsheet exporters routinely prepend one.
func stripBOM(header []string) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
}
