package models

// GroupOperation is a membership mutation requested against a study group.
type GroupOperation string

const (
	OperationJoin  GroupOperation = "Join"
	OperationLeave GroupOperation = "Leave"
)

// Valid reports whether op is a defined operation.
func (op GroupOperation) Valid() bool {
	return op == OperationJoin || op == OperationLeave
}
