package payroll

import "errors"

var (
	ErrComponentNotFound = errors.New("salary component not found")
	ErrPackageNotFound   = errors.New("compensation package not found")
)
