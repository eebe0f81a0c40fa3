package httperr

import "errors"

// BusinessError carries a stable machine code and, optionally, the
// category error it belongs to so callers can still match with errors.Is.
type BusinessError struct {
	Code string
	Kind error
}

func (e BusinessError) Error() string {
	if e.Kind != nil {
		return e.Kind.Error() + ": " + e.Code
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Kind
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Business builds a BusinessError of the given kind.
func Business(kind error, code string) error {
	return BusinessError{Code: code, Kind: kind}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" when there is none.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
