package dialect

import "github.com/zoobzio/exprql/internal/types"

// order fixes the iteration order returned by All.
var order = []Dialect{
	Postgres, CockroachDB, YugabyteDB,
	MySQL, MariaDB,
	SQLite, DuckDB,
	SQLServer, Oracle,
	H2, HSQLDB, Derby,
	CUBRID, Ignite,
}

// profiles is the precomputed dialect registry. Built once here, queried
// by the renderer; never mutated after initialization.
var profiles = map[Dialect]Profile{
	Postgres: {
		Dialect:      Postgres,
		Family:       FamilyPostgres,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderDollar,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Hyperbolics:        true,
			InverseHyperbolics: true,
			Cot:                true,
			LogAnyBase:         true,
			Log10:              true,
			Power:              true,
			Pi:                 true,
			Sign:               true,
			AngleConversion:    true,
		},
	},
	CockroachDB: {
		Dialect:      CockroachDB,
		Family:       FamilyPostgres,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderDollar,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Hyperbolics:        true,
			InverseHyperbolics: true,
			Cot:                true,
			LogAnyBase:         true,
			Log10:              true,
			Power:              true,
			Pi:                 true,
			Sign:               true,
			AngleConversion:    true,
		},
	},
	// YugabyteDB tracks an older PostgreSQL core that predates the
	// hyperbolic function family.
	YugabyteDB: {
		Dialect:      YugabyteDB,
		Family:       FamilyPostgres,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderDollar,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			LogAnyBase:      true,
			Log10:           true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
	MySQL: {
		Dialect:      MySQL,
		Family:       FamilyMySQL,
		Quote:        QuoteBacktick,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			LogAnyBase:      true,
			Log10:           true,
			Log2:            true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
	MariaDB: {
		Dialect:      MariaDB,
		Family:       FamilyMySQL,
		Quote:        QuoteBacktick,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			LogAnyBase:      true,
			Log10:           true,
			Log2:            true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
	// SQLite's math functions are an optional build-time extension, so
	// everything beyond the universal primitives goes through emulation.
	SQLite: {
		Dialect:      SQLite,
		Family:       FamilySQLite,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Sign: true,
		},
	},
	DuckDB: {
		Dialect:      DuckDB,
		Family:       FamilyDuckDB,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			LogAnyBase:      false,
			Log10:           true,
			Log2:            true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
	// SQL Server spells natural log LOG and ceiling CEILING; its LOG
	// with an explicit base takes arguments in the opposite order, so
	// arbitrary-base logarithms go through the LN-ratio emulation.
	SQLServer: {
		Dialect:      SQLServer,
		Family:       FamilySQLServer,
		Quote:        QuoteBracket,
		Placeholder:  PlaceholderAt,
		Literals:     BindLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			Log10:           true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
		Keywords: map[types.Kind]string{
			types.KindLn:   "log",
			types.KindCeil: "ceiling",
		},
	},
	Oracle: {
		Dialect:      Oracle,
		Family:       FamilyOracle,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderNamed,
		Literals:     BindLiterals,
		ArgSeparator: ", ",
		ModFunction:  true,
		Capabilities: Capabilities{
			Hyperbolics: true,
			LogAnyBase:  true,
			Power:       true,
			Sign:        true,
		},
	},
	H2: {
		Dialect:      H2,
		Family:       FamilyEmbedded,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Hyperbolics:     true,
			Cot:             true,
			Log10:           true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
	HSQLDB: {
		Dialect:      HSQLDB,
		Family:       FamilyEmbedded,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			Log10:           true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
	// Derby carries the smallest built-in function set of the embedded
	// family: no SIGN, no % operator, and POWER only through the
	// EXP/LN identity.
	Derby: {
		Dialect:      Derby,
		Family:       FamilyEmbedded,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		ModFunction:  true,
		Capabilities: Capabilities{
			Log10: true,
			Pi:    true,
		},
	},
	CUBRID: {
		Dialect:      CUBRID,
		Family:       FamilyCUBRID,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			Log10:           true,
			Log2:            true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
	Ignite: {
		Dialect:      Ignite,
		Family:       FamilyIgnite,
		Quote:        QuoteDouble,
		Placeholder:  PlaceholderQuestion,
		Literals:     InlineLiterals,
		ArgSeparator: ", ",
		Capabilities: Capabilities{
			Cot:             true,
			Log10:           true,
			Power:           true,
			Pi:              true,
			Sign:            true,
			AngleConversion: true,
		},
	},
}
