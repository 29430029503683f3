package graph

import "fmt"

// Type is the closed set of action kinds the graph store understands.
type Type int

const (
	TypeUnknown Type = iota
	TypeSetNumGraphs
	TypeSetMyNum
)

func (t Type) String() string {
	switch t {
	case TypeSetNumGraphs:
		return "SET_NUM_GRAPHS"
	case TypeSetMyNum:
		return "SET_MY_NUM"
	default:
		return "UNKNOWN"
	}
}

// ParseType converts a wire type tag to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "SET_NUM_GRAPHS":
		return TypeSetNumGraphs, nil
	case "SET_MY_NUM":
		return TypeSetMyNum, nil
	}
	return TypeUnknown, fmt.Errorf("unknown action type: %s", s)
}

// arity is the number of positional args each kind carries on the wire.
func (t Type) arity() int {
	switch t {
	case TypeSetNumGraphs, TypeSetMyNum:
		return 1
	}
	return 0
}

// SetNumGraphs asks the store to show N graphs.
type SetNumGraphs struct {
	N int
}

// ActionType implements flux.Action.
func (SetNumGraphs) ActionType() string { return TypeSetNumGraphs.String() }

// SetMyNum sets the auxiliary counter.
type SetMyNum struct {
	N int
}

// ActionType implements flux.Action.
func (SetMyNum) ActionType() string { return TypeSetMyNum.String() }

// Unknown carries a type tag no store recognizes. Stores ignore it.
type Unknown struct {
	Type string
}

// ActionType implements flux.Action.
func (u Unknown) ActionType() string { return u.Type }
