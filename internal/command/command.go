// Package command turns raw console lines into validated robot commands.
package command

import (
	"fmt"

	"toyrobot/internal/robot"
)

// Verb names a console command.
type Verb string

const (
	Place  Verb = "PLACE"
	Move   Verb = "MOVE"
	Left   Verb = "LEFT"
	Right  Verb = "RIGHT"
	Report Verb = "REPORT"
	Help   Verb = "HELP"
	Exit   Verb = "EXIT"
)

// ParamKind is the type a positional parameter converts to.
type ParamKind int

const (
	IntParam ParamKind = iota
	HeadingParam
)

func (k ParamKind) String() string {
	switch k {
	case IntParam:
		return "int"
	case HeadingParam:
		return "heading"
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}

// signature of a verb, in the order verbs are listed by HELP
type signature struct {
	verb   Verb
	params []ParamKind
}

var signatures = []signature{
	{Place, []ParamKind{IntParam, IntParam, HeadingParam}},
	{Move, nil},
	{Left, nil},
	{Right, nil},
	{Report, nil},
	{Help, nil},
	{Exit, nil},
}

func lookup(name string) (signature, bool) {
	for _, s := range signatures {
		if string(s.verb) == name {
			return s, true
		}
	}
	return signature{}, false
}

// Verbs lists the recognised verbs.
func Verbs() []Verb {
	out := make([]Verb, len(signatures))
	for i, s := range signatures {
		out[i] = s.verb
	}
	return out
}

// Params returns the parameter kinds v requires, or nil for an unknown verb
// or one that takes no parameters.
func Params(v Verb) []ParamKind {
	s, ok := lookup(string(v))
	if !ok {
		return nil
	}
	return append([]ParamKind(nil), s.params...)
}

// PlaceArgs are the typed parameters of PLACE.
type PlaceArgs struct {
	X, Y    int
	Heading robot.Heading
}

// Command is a validated console command. Args is only meaningful when
// Verb is Place.
type Command struct {
	Verb Verb
	Args PlaceArgs
}

func (c Command) String() string {
	if c.Verb == Place {
		return fmt.Sprintf("%s %d,%d,%s", c.Verb, c.Args.X, c.Args.Y, c.Args.Heading)
	}
	return string(c.Verb)
}
