package exceptions

import (
	"fmt"
	"nutricare-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	DevMessage    string            `json:"dev_message,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Locations     []Location        `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	loc := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
