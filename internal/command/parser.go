package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"

	"toyrobot/internal/robot"
)

// Every byte of input lexes into one of these, so tokenizing never fails
// and the verb and parameter checks below see the line as typed.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Space", Pattern: ` `},
	{Name: "Comma", Pattern: `,`},
	{Name: "Text", Pattern: `[^ ,]+`},
})

// rawLine splits a line on its first space. Everything before it is the
// verb, everything after it (further spaces included) is the parameter block.
type rawLine struct {
	Verb      string `parser:"@( Text | Comma )*"`
	Separated bool   `parser:"@Space?"`
	Block     string `parser:"@( Text | Comma | Space )*"`
}

var lineParser = participle.MustBuild[rawLine](
	participle.Lexer(lineLexer),
)

// Parser validates console lines.
type Parser struct {
	log commonlog.Logger
}

// NewParser returns a parser logging to log, or to the "toyrobot.command"
// logger when log is nil.
func NewParser(log commonlog.Logger) *Parser {
	if log == nil {
		log = commonlog.GetLogger("toyrobot.command")
	}
	return &Parser{log: log}
}

// Parse validates line with a default parser.
func Parse(line string) (Command, error) {
	return NewParser(nil).Parse(line)
}

// Parse converts line into a Command. The verb must be followed by exactly
// one space before the parameters, and parameters are separated by commas
// with no surrounding spaces. Any failure is returned as a *ParseError.
func (p *Parser) Parse(line string) (Command, error) {
	cmd, err := p.parse(line)
	if err != nil {
		p.log.Errorf("%v", err)
		return Command{}, err
	}
	p.log.Debugf("parsed %q as %s", line, cmd)
	return cmd, nil
}

func (p *Parser) parse(line string) (Command, error) {
	raw, err := lineParser.ParseString("", line)
	// unreachable with the current lexer
	if err != nil {
		return Command{}, &ParseError{Line: line, Kind: Malformed, Reason: err.Error(), Err: err}
	}

	sig, ok := lookup(raw.Verb)
	if !ok {
		return Command{}, &ParseError{Line: line, Kind: UnknownVerb,
			Reason: fmt.Sprintf("'%s' is not a valid command verb", raw.Verb)}
	}
	p.log.Debugf("found command verb '%s' which allows params %v", sig.verb, sig.params)

	want := len(sig.params)
	if !raw.Separated {
		if want > 0 {
			return Command{}, &ParseError{Line: line, Kind: MissingParams,
				Reason: fmt.Sprintf("the verb '%s' can only be called with %d parameters %v", sig.verb, want, sig.params)}
		}
		return Command{Verb: sig.verb}, nil
	}
	if want == 0 {
		return Command{}, &ParseError{Line: line, Kind: UnexpectedParams,
			Reason: fmt.Sprintf("the verb '%s' does not support parameters", sig.verb)}
	}

	fields := strings.Split(raw.Block, ",")
	p.log.Debugf("found command params %q", fields)
	if len(fields) != want {
		return Command{}, &ParseError{Line: line, Kind: ParamCount,
			Reason: fmt.Sprintf("wrong amount of comma separated params for verb '%s' (found: %d, allowed: %d)", sig.verb, len(fields), want)}
	}

	values := make([]any, want)
	for i, kind := range sig.params {
		v, err := convert(kind, fields[i])
		if err != nil {
			return Command{}, &ParseError{Line: line, Kind: ParamType,
				Reason: fmt.Sprintf("parameter %d: %v", i+1, err), Err: err}
		}
		values[i] = v
	}
	return build(sig.verb, values), nil
}

func convert(kind ParamKind, s string) (any, error) {
	switch kind {
	case IntParam:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return n, nil
	case HeadingParam:
		return robot.ParseHeading(s)
	}
	return nil, fmt.Errorf("unsupported parameter kind %v", kind)
}

func build(v Verb, values []any) Command {
	cmd := Command{Verb: v}
	if v == Place {
		cmd.Args = PlaceArgs{
			X:       values[0].(int),
			Y:       values[1].(int),
			Heading: values[2].(robot.Heading),
		}
	}
	return cmd
}
