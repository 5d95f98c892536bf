package types

// DataType is the declared result type of an expression node.
type DataType string

const (
	DataInteger DataType = "INTEGER"
	DataNumeric DataType = "NUMERIC"
	DataString  DataType = "STRING"
	DataBoolean DataType = "BOOLEAN"
	DataDate    DataType = "DATE"
)

// widens reports whether a value of type got may be promoted to want
// without an explicit cast. Integers widen to numeric; everything else
// must match exactly.
func widens(got, want DataType) bool {
	if got == want {
		return true
	}
	return got == DataInteger && want == DataNumeric
}
