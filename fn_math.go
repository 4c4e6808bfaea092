package okra

// Math functions: math::*.

// MathAbs builds math::abs(n).
func MathAbs(n any) Function { return fnTyped("math::abs", Num(n)) }

// MathCeil builds math::ceil(n).
func MathCeil(n any) Function { return fnTyped("math::ceil", Num(n)) }

// MathFloor builds math::floor(n).
func MathFloor(n any) Function { return fnTyped("math::floor", Num(n)) }

// MathRound builds math::round(n).
func MathRound(n any) Function { return fnTyped("math::round", Num(n)) }

// MathSqrt builds math::sqrt(n).
func MathSqrt(n any) Function { return fnTyped("math::sqrt", Num(n)) }

// MathPow builds math::pow(base, exp).
func MathPow(base, exp any) Function { return fnTyped("math::pow", Num(base), Num(exp)) }

// MathFixed builds math::fixed(n, places).
func MathFixed(n, places any) Function { return fnTyped("math::fixed", Num(n), Num(places)) }

// MathMax builds math::max(array).
func MathMax(v any) Function { return fnTyped("math::max", Array(v)) }

// MathMin builds math::min(array).
func MathMin(v any) Function { return fnTyped("math::min", Array(v)) }

// MathMean builds math::mean(array).
func MathMean(v any) Function { return fnTyped("math::mean", Array(v)) }

// MathMedian builds math::median(array).
func MathMedian(v any) Function { return fnTyped("math::median", Array(v)) }

// MathProduct builds math::product(array).
func MathProduct(v any) Function { return fnTyped("math::product", Array(v)) }

// MathSum builds math::sum(array).
func MathSum(v any) Function { return fnTyped("math::sum", Array(v)) }

// MathStddev builds math::stddev(array).
func MathStddev(v any) Function { return fnTyped("math::stddev", Array(v)) }

// MathVariance builds math::variance(array).
func MathVariance(v any) Function { return fnTyped("math::variance", Array(v)) }
