package graph

import (
	"errors"
	"fmt"
	"strings"

	"backpack/internal/flux"
	"backpack/internal/jsonutil"
)

// ErrArgCount is returned when a record's args do not match its kind's arity.
var ErrArgCount = errors.New("argument count mismatch")

// ErrBadArg is returned when a record arg has the wrong type.
var ErrBadArg = errors.New("bad argument")

// Record is the positional wire form of an action:
//
//	{"type": "SET_NUM_GRAPHS", "payload": {"args": [3]}}
type Record struct {
	Type    string  `json:"type"`
	Payload Payload `json:"payload"`
}

// Payload holds the positional arguments of a Record.
type Payload struct {
	Args []interface{} `json:"args"`
}

// Decode converts r into a typed action. Records with an unrecognized type
// decode to Unknown and are not validated further.
func Decode(r Record) (flux.Action, error) {
	t, err := ParseType(r.Type)
	if err != nil {
		return Unknown{Type: r.Type}, nil
	}
	if got, want := len(r.Payload.Args), t.arity(); got != want {
		return nil, fmt.Errorf("%s: got %d args, want %d: %w", t, got, want, ErrArgCount)
	}
	switch t {
	case TypeSetNumGraphs:
		n, err := intArg(t, r.Payload.Args, 0)
		if err != nil {
			return nil, err
		}
		return SetNumGraphs{N: n}, nil
	case TypeSetMyNum:
		n, err := intArg(t, r.Payload.Args, 0)
		if err != nil {
			return nil, err
		}
		return SetMyNum{N: n}, nil
	}
	return Unknown{Type: r.Type}, nil
}

func intArg(t Type, args []interface{}, i int) (int, error) {
	n, ok := jsonutil.ToInt(args[i])
	if !ok {
		return 0, fmt.Errorf("%s: arg %d is %q, want integer in int range: %w", t, i, jsonutil.ToString(args[i]), ErrBadArg)
	}
	return n, nil
}

// ParseCommand reads a Record from a prompt line. The line is either a JSON
// record or the shorthand "TYPE arg...".
func ParseCommand(line string) (Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, errors.New("empty command")
	}
	if strings.HasPrefix(line, "{") {
		var r Record
		if err := jsonutil.UnmarshalWithContext([]byte(line), &r, "parse action record"); err != nil {
			return Record{}, err
		}
		return r, nil
	}
	fields := strings.Fields(line)
	r := Record{Type: strings.ToUpper(fields[0])}
	for _, f := range fields[1:] {
		r.Payload.Args = append(r.Payload.Args, f)
	}
	return r, nil
}
