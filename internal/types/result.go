package types

import "github.com/shopspring/decimal"

// Param is one bind parameter produced during rendering: a placeholder
// name paired with its typed value, in emission order. The binding layer
// associates placeholders with prepared-statement slots in that order.
type Param struct {
	Name  string
	Value decimal.Decimal
}

// RenderResult contains the rendered SQL fragment and its bind parameters.
type RenderResult struct {
	SQL    string
	Params []Param
}
