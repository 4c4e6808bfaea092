package okra

// String functions: string::*.

// StringConcat builds string::concat(...).
func StringConcat(args ...any) Function { return Fn("string::concat", args...) }

// StringJoin builds string::join(sep, ...).
func StringJoin(sep any, args ...any) Function {
	return Fn("string::join", append([]any{sep}, args...)...)
}

// StringEndsWith builds string::endsWith(s, suffix).
func StringEndsWith(s, suffix any) Function {
	return fnTyped("string::endsWith", Strand(s), Strand(suffix))
}

// StringStartsWith builds string::startsWith(s, prefix).
func StringStartsWith(s, prefix any) Function {
	return fnTyped("string::startsWith", Strand(s), Strand(prefix))
}

// StringLen builds string::len(s).
func StringLen(s any) Function { return fnTyped("string::len", Strand(s)) }

// StringLowercase builds string::lowercase(s).
func StringLowercase(s any) Function { return fnTyped("string::lowercase", Strand(s)) }

// StringUppercase builds string::uppercase(s).
func StringUppercase(s any) Function { return fnTyped("string::uppercase", Strand(s)) }

// StringRepeat builds string::repeat(s, n).
func StringRepeat(s, n any) Function { return fnTyped("string::repeat", Strand(s), Num(n)) }

// StringReplace builds string::replace(s, search, replacement).
func StringReplace(s, search, replacement any) Function {
	return fnTyped("string::replace", Strand(s), Strand(search), Strand(replacement))
}

// StringReverse builds string::reverse(s).
func StringReverse(s any) Function { return fnTyped("string::reverse", Strand(s)) }

// StringSlice builds string::slice(s, start, length).
func StringSlice(s, start, length any) Function {
	return fnTyped("string::slice", Strand(s), Num(start), Num(length))
}

// StringSlug builds string::slug(s).
func StringSlug(s any) Function { return fnTyped("string::slug", Strand(s)) }

// StringSplit builds string::split(s, sep).
func StringSplit(s, sep any) Function {
	return fnTyped("string::split", Strand(s), Strand(sep))
}

// StringTrim builds string::trim(s).
func StringTrim(s any) Function { return fnTyped("string::trim", Strand(s)) }

// StringWords builds string::words(s).
func StringWords(s any) Function { return fnTyped("string::words", Strand(s)) }
