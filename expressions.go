package exprql

// Typed builders for the scalar function catalog. Each wraps its
// operands in an immutable node; dialect-specific rendering decisions
// are deferred entirely to Render.

// Sin builds the sine of x.
func Sin(x *Expr) *Expr { return call(KindSin, x) }

// Cos builds the cosine of x.
func Cos(x *Expr) *Expr { return call(KindCos, x) }

// Tan builds the tangent of x.
func Tan(x *Expr) *Expr { return call(KindTan, x) }

// Cot builds the cotangent of x.
func Cot(x *Expr) *Expr { return call(KindCot, x) }

// Asin builds the arc sine of x.
func Asin(x *Expr) *Expr { return call(KindAsin, x) }

// Acos builds the arc cosine of x.
func Acos(x *Expr) *Expr { return call(KindAcos, x) }

// Atan builds the arc tangent of x.
func Atan(x *Expr) *Expr { return call(KindAtan, x) }

// Sinh builds the hyperbolic sine of x.
func Sinh(x *Expr) *Expr { return call(KindSinh, x) }

// Cosh builds the hyperbolic cosine of x.
func Cosh(x *Expr) *Expr { return call(KindCosh, x) }

// Tanh builds the hyperbolic tangent of x.
func Tanh(x *Expr) *Expr { return call(KindTanh, x) }

// Coth builds the hyperbolic cotangent of x.
func Coth(x *Expr) *Expr { return call(KindCoth, x) }

// Asinh builds the inverse hyperbolic sine of x.
func Asinh(x *Expr) *Expr { return call(KindAsinh, x) }

// Acosh builds the inverse hyperbolic cosine of x, defined for x >= 1.
func Acosh(x *Expr) *Expr { return call(KindAcosh, x) }

// Atanh builds the inverse hyperbolic tangent of x, defined for x in (-1, 1).
func Atanh(x *Expr) *Expr { return call(KindAtanh, x) }

// Ln builds the natural logarithm of x.
func Ln(x *Expr) *Expr { return call(KindLn, x) }

// Exp builds e raised to x.
func Exp(x *Expr) *Expr { return call(KindExp, x) }

// Log builds the logarithm of x in the given base.
func Log(base, x *Expr) *Expr { return call(KindLog, base, x) }

// Log10 builds the base-10 logarithm of x.
func Log10(x *Expr) *Expr { return call(KindLog10, x) }

// Log2 builds the base-2 logarithm of x.
func Log2(x *Expr) *Expr { return call(KindLog2, x) }

// Power builds x raised to y.
func Power(x, y *Expr) *Expr { return call(KindPower, x, y) }

// Sqrt builds the square root of x.
func Sqrt(x *Expr) *Expr { return call(KindSqrt, x) }

// Abs builds the absolute value of x.
func Abs(x *Expr) *Expr { return call(KindAbs, x) }

// Floor builds the largest integer not greater than x.
func Floor(x *Expr) *Expr { return call(KindFloor, x) }

// Ceil builds the smallest integer not less than x.
func Ceil(x *Expr) *Expr { return call(KindCeil, x) }

// Round builds x rounded to the nearest integer.
func Round(x *Expr) *Expr { return call(KindRound, x) }

// Sign builds the sign of x as -1, 0 or 1.
func Sign(x *Expr) *Expr { return call(KindSign, x) }

// Pi builds the constant pi.
func Pi() *Expr { return call(KindPi) }

// Degrees converts x from radians to degrees.
func Degrees(x *Expr) *Expr { return call(KindDegrees, x) }

// Radians converts x from degrees to radians.
func Radians(x *Expr) *Expr { return call(KindRadians, x) }
