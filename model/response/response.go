package response

import "fmt"

// Type discriminates the Response variant
type Type int

const (
	TypeText Type = iota
	TypeError
	TypeSignal
)

// ErrorKind classifies handler failures.
type ErrorKind string

const (
	KindAccessDenied         ErrorKind = "AccessDenied"
	KindNotFound             ErrorKind = "NotFound"
	KindNotADirectory        ErrorKind = "NotADirectory"
	KindNotAFile             ErrorKind = "NotAFile"
	KindPermissionDenied     ErrorKind = "PermissionDenied"
	KindInvalidArgument      ErrorKind = "InvalidArgument"
	KindUnknownCommand       ErrorKind = "UnknownCommand"
	KindNetworkError         ErrorKind = "NetworkError"
	KindEncodingError        ErrorKind = "EncodingError"
	KindUnsupportedOperation ErrorKind = "UnsupportedOperation"
	KindTimeout              ErrorKind = "Timeout"
	KindBusy                 ErrorKind = "Busy"
	KindInternal             ErrorKind = "Internal"
)

// Response is the outcome of a handler: plain text, error text or a signal.
// It is encoded to the wire format only by the executor.
type Response struct {
	Type      Type
	Text      string
	ErrorKind ErrorKind
	Signal    *Signal
}

// Text returns plain text response
func Text(text string) *Response {
	return &Response{Type: TypeText, Text: text}
}

// Textf returns formatted plain text response
func Textf(format string, args ...interface{}) *Response {
	return Text(fmt.Sprintf(format, args...))
}

// Error returns error text response
func Error(kind ErrorKind, text string) *Response {
	return &Response{Type: TypeError, ErrorKind: kind, Text: text}
}

// Errorf returns formatted error text response
func Errorf(kind ErrorKind, format string, args ...interface{}) *Response {
	return Error(kind, fmt.Sprintf(format, args...))
}

// Emit returns signal response
func Emit(kind SignalKind, payload string) *Response {
	return &Response{Type: TypeSignal, Signal: &Signal{Kind: kind, Payload: payload}}
}

func (r *Response) IsError() bool {
	return r != nil && r.Type == TypeError
}

func (r *Response) IsSignal() bool {
	return r != nil && r.Type == TypeSignal && r.Signal != nil
}

// Outcome returns short outcome label used by logs and events
func (r *Response) Outcome() string {
	switch {
	case r == nil:
		return "empty"
	case r.IsSignal():
		return "signal:" + r.Signal.Kind.String()
	case r.IsError():
		return "error:" + string(r.ErrorKind)
	}
	return "text"
}
