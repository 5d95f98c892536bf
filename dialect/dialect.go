// Package dialect enumerates the supported database families and their
// capability profiles. The registry is populated once at package
// initialization and is read-only for the remainder of the process
// lifetime, so lookups need no synchronization.
package dialect

import "github.com/zoobzio/exprql/internal/types"

// Dialect identifies one target database engine.
type Dialect string

const (
	Postgres    Dialect = "postgres"
	CockroachDB Dialect = "cockroachdb"
	YugabyteDB  Dialect = "yugabytedb"
	MySQL       Dialect = "mysql"
	MariaDB     Dialect = "mariadb"
	SQLite      Dialect = "sqlite"
	SQLServer   Dialect = "sqlserver"
	Oracle      Dialect = "oracle"
	H2          Dialect = "h2"
	HSQLDB      Dialect = "hsqldb"
	Derby       Dialect = "derby"
	CUBRID      Dialect = "cubrid"
	Ignite      Dialect = "ignite"
	DuckDB      Dialect = "duckdb"
)

// Family groups dialects that share syntax and emulation behavior.
// The enumeration is fixed; it is not user-extensible at runtime.
type Family string

const (
	FamilyPostgres  Family = "postgres"
	FamilyMySQL     Family = "mysql"
	FamilySQLite    Family = "sqlite"
	FamilySQLServer Family = "sqlserver"
	FamilyOracle    Family = "oracle"
	FamilyEmbedded  Family = "embedded" // H2, HSQLDB, Derby
	FamilyCUBRID    Family = "cubrid"
	FamilyIgnite    Family = "ignite"
	FamilyDuckDB    Family = "duckdb"
)

// QuoteStyle selects the identifier quoting syntax.
type QuoteStyle int

const (
	QuoteDouble   QuoteStyle = iota // "name"
	QuoteBacktick                   // `name`
	QuoteBracket                    // [name]
)

// PlaceholderStyle selects the bind-parameter placeholder syntax.
type PlaceholderStyle int

const (
	PlaceholderDollar   PlaceholderStyle = iota // $1, $2
	PlaceholderQuestion                         // ?
	PlaceholderNamed                            // :p1
	PlaceholderAt                               // @p1
)

// LiteralPolicy decides what happens to caller-supplied literal values.
// Constants introduced by emulation rules are always inlined regardless
// of policy, so the shape of emulated SQL is stable per dialect.
type LiteralPolicy int

const (
	InlineLiterals LiteralPolicy = iota
	BindLiterals
)

// Capabilities flags the constructs a dialect renders natively. A false
// flag routes the construct through an emulation rule.
type Capabilities struct {
	Hyperbolics        bool // SINH, COSH, TANH
	InverseHyperbolics bool // ASINH, ACOSH, ATANH
	Cot                bool
	Coth               bool
	LogAnyBase         bool // LOG(base, x)
	Log10              bool
	Log2               bool
	Power              bool
	Pi                 bool
	Sign               bool
	AngleConversion    bool // DEGREES, RADIANS
}

// Profile is one dialect's complete rendering profile: family membership,
// capability flags, and syntax properties.
type Profile struct {
	Dialect      Dialect
	Family       Family
	Quote        QuoteStyle
	Placeholder  PlaceholderStyle
	Literals     LiteralPolicy
	ArgSeparator string
	// ModFunction renders the remainder operator as MOD(a, b) on
	// dialects without the % operator.
	ModFunction  bool
	Capabilities Capabilities
	// Keywords overrides the canonical keyword for individual kinds,
	// e.g. CEIL renders as "ceiling" on SQL Server.
	Keywords map[types.Kind]string
}

// Supports reports whether the profile renders kind k natively. Native
// support always wins over emulation.
func (p Profile) Supports(k types.Kind) bool {
	c := p.Capabilities
	switch k {
	case types.KindSinh, types.KindCosh, types.KindTanh:
		return c.Hyperbolics
	case types.KindAsinh, types.KindAcosh, types.KindAtanh:
		return c.InverseHyperbolics
	case types.KindCot:
		return c.Cot
	case types.KindCoth:
		return c.Coth
	case types.KindLog:
		return c.LogAnyBase
	case types.KindLog10:
		return c.Log10
	case types.KindLog2:
		return c.Log2
	case types.KindPower:
		return c.Power
	case types.KindPi:
		return c.Pi
	case types.KindSign:
		return c.Sign
	case types.KindDegrees, types.KindRadians:
		return c.AngleConversion
	default:
		// Arithmetic, LN, EXP, SQRT, ABS, FLOOR, CEIL, ROUND and plain
		// trigonometry are treated as universal primitives.
		return true
	}
}

// Keyword returns the SQL keyword the profile uses for a function kind.
func (p Profile) Keyword(k types.Kind) string {
	if kw, ok := p.Keywords[k]; ok {
		return kw
	}
	return types.Keyword(k)
}

// Lookup returns the profile registered for a dialect identifier.
func Lookup(d Dialect) (Profile, bool) {
	p, ok := profiles[d]
	return p, ok
}

// FamilyOf returns the family a dialect belongs to.
func FamilyOf(d Dialect) (Family, bool) {
	p, ok := profiles[d]
	return p.Family, ok
}

// All returns the registered dialect identifiers in stable order.
func All() []Dialect {
	out := make([]Dialect, len(order))
	copy(out, order)
	return out
}
