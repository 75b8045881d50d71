package command

import "fmt"

// ErrorKind classifies why a line was rejected. Kinds are listed in the
// order the checks run.
type ErrorKind int

const (
	// Malformed means the grammar rejected the line. Every byte lexes and
	// every field is optional, so this only guards against grammar changes.
	Malformed ErrorKind = iota
	UnknownVerb
	MissingParams
	UnexpectedParams
	ParamCount
	ParamType
)

var kindNames = map[ErrorKind]string{
	Malformed:        "malformed command",
	UnknownVerb:      "unknown verb",
	MissingParams:    "missing parameters",
	UnexpectedParams: "unexpected parameters",
	ParamCount:       "wrong parameter count",
	ParamType:        "invalid parameter",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports a rejected input line. Rejected lines never change
// robot state.
type ParseError struct {
	Line   string
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid command %q: %s: %s", e.Line, e.Kind, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
