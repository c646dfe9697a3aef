package helpers

import (
	"strings"

	"github.com/ztrue/tracerr"
)

// Error carries one or more stack-traced errors. The zero value (NilError)
// means success, so functions return Error by value and callers test IsNil.
type Error struct {
	errs []tracerr.Error
}

var NilError = Error{nil}

func (e *Error) IsNil() bool {
	return IsNil(e)
}

func (e Error) HasError() bool {
	return !IsNil(e)
}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

func (e Error) Error() string {
	result := []string{}
	for _, err := range e.errs {
		result = append(result, err.Error())
	}
	return strings.Join(result, "; ")
}

// String includes the stack of every wrapped error.
func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += Indent(tracerr.Sprint(err), "  ") + "\n"
	}
	return result
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	}
	return e.errs[0]
}

func (e Error) Unwrap() error {
	first := e.First()
	if first == nil {
		return nil
	}
	return first.Unwrap()
}

func Wrap(err error) Error {
	if err == nil {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	}
	if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func (e Error) NumErrors() int {
	num := 0
	for _, err := range e.errs {
		if err != nil {
			num++
		}
	}
	return num
}

func Indent(s string, indent string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if len(lines[i]) > 0 {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
