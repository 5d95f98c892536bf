package exprql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/exprql/internal/types"
)

// Schema validates column references against a DBML project and derives
// each column's declared type from its DBML column type.
type Schema struct {
	// table -> column -> declared type
	columns map[string]map[string]types.DataType
}

// NewSchema builds a schema index from a DBML project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{columns: make(map[string]map[string]types.DataType)}
	for _, table := range project.Tables {
		cols := make(map[string]types.DataType, len(table.Columns))
		for _, col := range table.Columns {
			cols[col.Name] = columnType(col.Type)
		}
		s.columns[table.Name] = cols
	}
	return s, nil
}

// TryCol creates a validated, typed column reference, returning an error
// if the table or column is not part of the schema.
func (s *Schema) TryCol(table, column string) (*Expr, error) {
	cols, ok := s.columns[table]
	if !ok {
		return nil, fmt.Errorf("table '%s' not found in schema", table)
	}
	typ, ok := cols[column]
	if !ok {
		return nil, fmt.Errorf("column '%s' not found in table '%s'", column, table)
	}
	return types.NewColumn(table, column, typ), nil
}

// Col creates a validated, typed column reference. It panics if the
// table or column does not exist in the schema.
func (s *Schema) Col(table, column string) *Expr {
	e, err := s.TryCol(table, column)
	if err != nil {
		panic(err)
	}
	return e
}

// columnType maps a DBML column type to a declared expression type.
// Unknown types fall back to STRING so they are rejected by numeric
// constructors instead of silently widened.
func columnType(dbmlType string) types.DataType {
	switch strings.ToLower(dbmlType) {
	case "int", "integer", "smallint", "bigint", "serial", "bigserial", "tinyint":
		return types.DataInteger
	case "numeric", "decimal", "real", "float", "double", "double precision", "money":
		return types.DataNumeric
	case "bool", "boolean":
		return types.DataBoolean
	case "date", "time", "timestamp", "timestamptz", "datetime":
		return types.DataDate
	default:
		return types.DataString
	}
}
