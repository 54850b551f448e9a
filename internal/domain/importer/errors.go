package importer

import "errors"

var (
	ErrEmptyInput          = errors.New("import file is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type: only .csv and .xlsx are accepted")
)
