package report

import "errors"

var ErrInvalidReportPeriod = errors.New("invalid report period")
