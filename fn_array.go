package okra

// Array functions: array::*.

// ArrayAdd builds array::add(arr, value).
func ArrayAdd(arr, value any) Function { return fnTyped("array::add", Array(arr), Value(value)) }

// ArrayAll builds array::all(arr).
func ArrayAll(arr any) Function { return fnTyped("array::all", Array(arr)) }

// ArrayAny builds array::any(arr).
func ArrayAny(arr any) Function { return fnTyped("array::any", Array(arr)) }

// ArrayAppend builds array::append(arr, value).
func ArrayAppend(arr, value any) Function {
	return fnTyped("array::append", Array(arr), Value(value))
}

// ArrayCombine builds array::combine(a, b).
func ArrayCombine(a, b any) Function { return fnTyped("array::combine", Array(a), Array(b)) }

// ArrayComplement builds array::complement(a, b).
func ArrayComplement(a, b any) Function {
	return fnTyped("array::complement", Array(a), Array(b))
}

// ArrayConcat builds array::concat(a, b).
func ArrayConcat(a, b any) Function { return fnTyped("array::concat", Array(a), Array(b)) }

// ArrayDifference builds array::difference(a, b).
func ArrayDifference(a, b any) Function {
	return fnTyped("array::difference", Array(a), Array(b))
}

// ArrayDistinct builds array::distinct(arr).
func ArrayDistinct(arr any) Function { return fnTyped("array::distinct", Array(arr)) }

// ArrayFlatten builds array::flatten(arr).
func ArrayFlatten(arr any) Function { return fnTyped("array::flatten", Array(arr)) }

// ArrayGroup builds array::group(arr).
func ArrayGroup(arr any) Function { return fnTyped("array::group", Array(arr)) }

// ArrayInsert builds array::insert(arr, value, index).
func ArrayInsert(arr, value, index any) Function {
	return fnTyped("array::insert", Array(arr), Value(value), Num(index))
}

// ArrayIntersect builds array::intersect(a, b).
func ArrayIntersect(a, b any) Function {
	return fnTyped("array::intersect", Array(a), Array(b))
}

// ArrayLen builds array::len(arr).
func ArrayLen(arr any) Function { return fnTyped("array::len", Array(arr)) }

// ArrayPop builds array::pop(arr).
func ArrayPop(arr any) Function { return fnTyped("array::pop", Array(arr)) }

// ArrayPrepend builds array::prepend(arr, value).
func ArrayPrepend(arr, value any) Function {
	return fnTyped("array::prepend", Array(arr), Value(value))
}

// ArrayPush builds array::push(arr, value).
func ArrayPush(arr, value any) Function {
	return fnTyped("array::push", Array(arr), Value(value))
}

// ArrayRemove builds array::remove(arr, index).
func ArrayRemove(arr, index any) Function {
	return fnTyped("array::remove", Array(arr), Num(index))
}

// ArrayReverse builds array::reverse(arr).
func ArrayReverse(arr any) Function { return fnTyped("array::reverse", Array(arr)) }

// ArraySort builds array::sort(arr).
func ArraySort(arr any) Function { return fnTyped("array::sort", Array(arr)) }

// ArraySortAsc builds array::sort::asc(arr).
func ArraySortAsc(arr any) Function { return fnTyped("array::sort::asc", Array(arr)) }

// ArraySortDesc builds array::sort::desc(arr).
func ArraySortDesc(arr any) Function { return fnTyped("array::sort::desc", Array(arr)) }

// ArrayUnion builds array::union(a, b).
func ArrayUnion(a, b any) Function { return fnTyped("array::union", Array(a), Array(b)) }
