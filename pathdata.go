package strokes

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Command is a single command of SVG path data, as written. Op is one of the
// path data command letters and Args holds its arguments. Arc flags are stored
// as 0 or 1.
type Command struct {
	Op   byte
	Args []float64
}

func (cmd Command) String() string {
	var sb strings.Builder
	sb.WriteByte(cmd.Op)
	for i, arg := range cmd.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%g", arg)
	}
	return sb.String()
}

// IsRelative reports whether the command's coordinates are relative to the
// current point.
func (cmd Command) IsRelative() bool {
	return cmd.Op >= 'a' && cmd.Op <= 'z'
}

// arity returns the number of arguments of the path data command op, or -1 if
// op isn't a command.
func arity(op byte) int {
	switch op {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	default:
		return -1
	}
}

// SyntaxError describes malformed path data or viewbox strings.
type SyntaxError struct {
	// Byte offset into the input.
	Offset int
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", err.Offset, err.Msg)
}

// scanner reads numbers separated by optional whitespace and commas.
type scanner struct {
	b   []byte
	pos int
}

func (s *scanner) skipCommaWhitespace() {
	for s.pos < len(s.b) {
		switch s.b[s.pos] {
		case ' ', ',', '\n', '\r', '\t', '\f':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) done() bool {
	s.skipCommaWhitespace()
	return s.pos >= len(s.b)
}

func (s *scanner) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: s.pos, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) number() (float64, error) {
	s.skipCommaWhitespace()
	if s.pos >= len(s.b) {
		return 0, s.errorf("unexpected end of input, expected number")
	}
	f, n := strconv.ParseFloat(s.b[s.pos:])
	if n == 0 {
		return 0, s.errorf("expected number, found %q", s.b[s.pos])
	}
	s.pos += n
	return f, nil
}

// flag reads an arc flag. Flags are a single digit and need no separator
// from the following number.
func (s *scanner) flag() (float64, error) {
	s.skipCommaWhitespace()
	if s.pos >= len(s.b) {
		return 0, s.errorf("unexpected end of input, expected flag")
	}
	switch s.b[s.pos] {
	case '0':
		s.pos++
		return 0, nil
	case '1':
		s.pos++
		return 1, nil
	default:
		return 0, s.errorf("expected flag, found %q", s.b[s.pos])
	}
}

// ParsePathData tokenizes the value of an SVG path's d attribute.
//
// Implicitly repeated commands are returned as separate commands, and the
// coordinate pairs following a move are returned as line commands, so that
// every Command has exactly the arguments its Op requires.
func ParsePathData(d string) ([]Command, error) {
	s := scanner{b: []byte(d)}
	var cmds []Command
	var op byte
	for !s.done() {
		c := s.b[s.pos]
		if arity(c) >= 0 {
			op = c
			s.pos++
		} else if op == 0 {
			return nil, s.errorf("expected command, found %q", c)
		} else if op == 'Z' || op == 'z' {
			return nil, s.errorf("unexpected %q after close path", c)
		}

		args := make([]float64, arity(op))
		for i := range args {
			var err error
			if (op == 'A' || op == 'a') && (i == 3 || i == 4) {
				args[i], err = s.flag()
			} else {
				args[i], err = s.number()
			}
			if err != nil {
				return nil, err
			}
		}
		cmds = append(cmds, Command{Op: op, Args: args})

		switch op {
		case 'M':
			op = 'L'
		case 'm':
			op = 'l'
		}
	}
	return cmds, nil
}
