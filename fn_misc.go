package okra

// Parse functions: parse::*.

// ParseEmailHost builds parse::email::host(s).
func ParseEmailHost(s any) Function { return fnTyped("parse::email::host", Strand(s)) }

// ParseEmailUser builds parse::email::user(s).
func ParseEmailUser(s any) Function { return fnTyped("parse::email::user", Strand(s)) }

// ParseURLDomain builds parse::url::domain(s).
func ParseURLDomain(s any) Function { return fnTyped("parse::url::domain", Strand(s)) }

// ParseURLFragment builds parse::url::fragment(s).
func ParseURLFragment(s any) Function { return fnTyped("parse::url::fragment", Strand(s)) }

// ParseURLHost builds parse::url::host(s).
func ParseURLHost(s any) Function { return fnTyped("parse::url::host", Strand(s)) }

// ParseURLPath builds parse::url::path(s).
func ParseURLPath(s any) Function { return fnTyped("parse::url::path", Strand(s)) }

// ParseURLPort builds parse::url::port(s).
func ParseURLPort(s any) Function { return fnTyped("parse::url::port", Strand(s)) }

// ParseURLQuery builds parse::url::query(s).
func ParseURLQuery(s any) Function { return fnTyped("parse::url::query", Strand(s)) }

// Search functions: search::*.

// SearchScore builds search::score(ref).
func SearchScore(ref any) Function { return fnTyped("search::score", Num(ref)) }

// SearchHighlight builds search::highlight(open, close, ref).
func SearchHighlight(open, close, ref any) Function {
	return fnTyped("search::highlight", Strand(open), Strand(close), Num(ref))
}

// SearchOffsets builds search::offsets(ref).
func SearchOffsets(ref any) Function { return fnTyped("search::offsets", Num(ref)) }

// Type functions: type::*.

// TypeBool builds type::bool(v).
func TypeBool(v any) Function { return Fn("type::bool", v) }

// TypeDatetime builds type::datetime(v).
func TypeDatetime(v any) Function { return Fn("type::datetime", v) }

// TypeDecimal builds type::decimal(v).
func TypeDecimal(v any) Function { return Fn("type::decimal", v) }

// TypeDuration builds type::duration(v).
func TypeDuration(v any) Function { return Fn("type::duration", v) }

// TypeFloat builds type::float(v).
func TypeFloat(v any) Function { return Fn("type::float", v) }

// TypeInt builds type::int(v).
func TypeInt(v any) Function { return Fn("type::int", v) }

// TypeNumber builds type::number(v).
func TypeNumber(v any) Function { return Fn("type::number", v) }

// TypePoint builds type::point(lng, lat).
func TypePoint(lng, lat any) Function { return fnTyped("type::point", Num(lng), Num(lat)) }

// TypeString builds type::string(v).
func TypeString(v any) Function { return Fn("type::string", v) }

// TypeTable builds type::table(v).
func TypeTable(v any) Function { return Fn("type::table", v) }

// TypeThing builds type::thing(table, id).
func TypeThing(table, id any) Function { return Fn("type::thing", table, id) }

// Rand functions: rand::*.

// Rand builds rand().
func Rand() Function { return Fn("rand") }

// RandBool builds rand::bool().
func RandBool() Function { return Fn("rand::bool") }

// RandEnum builds rand::enum(...).
func RandEnum(args ...any) Function { return Fn("rand::enum", args...) }

// RandFloat builds rand::float() or rand::float(min, max).
func RandFloat(bounds ...any) Function { return Fn("rand::float", bounds...) }

// RandInt builds rand::int() or rand::int(min, max).
func RandInt(bounds ...any) Function { return Fn("rand::int", bounds...) }

// RandGUID builds rand::guid().
func RandGUID() Function { return Fn("rand::guid") }

// RandString builds rand::string() or rand::string(len).
func RandString(length ...any) Function { return Fn("rand::string", length...) }

// RandTime builds rand::time() or rand::time(from, to).
func RandTime(bounds ...any) Function { return Fn("rand::time", bounds...) }

// RandULID builds rand::ulid().
func RandULID() Function { return Fn("rand::ulid") }

// RandUUID builds rand::uuid().
func RandUUID() Function { return Fn("rand::uuid") }

// RandUUIDv4 builds rand::uuid::v4().
func RandUUIDv4() Function { return Fn("rand::uuid::v4") }

// RandUUIDv7 builds rand::uuid::v7().
func RandUUIDv7() Function { return Fn("rand::uuid::v7") }

// Session functions: session::*.

// SessionDB builds session::db().
func SessionDB() Function { return Fn("session::db") }

// SessionID builds session::id().
func SessionID() Function { return Fn("session::id") }

// SessionIP builds session::ip().
func SessionIP() Function { return Fn("session::ip") }

// SessionNS builds session::ns().
func SessionNS() Function { return Fn("session::ns") }

// SessionOrigin builds session::origin().
func SessionOrigin() Function { return Fn("session::origin") }

// SessionSC builds session::sc().
func SessionSC() Function { return Fn("session::sc") }

// Meta functions: meta::*.

// MetaID builds meta::id(thing).
func MetaID(thing any) Function { return fnTyped("meta::id", Thing(thing)) }

// MetaTable builds meta::tb(thing).
func MetaTable(thing any) Function { return fnTyped("meta::tb", Thing(thing)) }

// HTTP functions: http::*.

// HTTPHead builds http::head(url[, headers]).
func HTTPHead(url any, headers ...any) Function {
	return Fn("http::head", append([]any{url}, headers...)...)
}

// HTTPGet builds http::get(url[, headers]).
func HTTPGet(url any, headers ...any) Function {
	return Fn("http::get", append([]any{url}, headers...)...)
}

// HTTPPut builds http::put(url, body[, headers]).
func HTTPPut(url, body any, headers ...any) Function {
	return Fn("http::put", append([]any{url, body}, headers...)...)
}

// HTTPPost builds http::post(url, body[, headers]).
func HTTPPost(url, body any, headers ...any) Function {
	return Fn("http::post", append([]any{url, body}, headers...)...)
}

// HTTPPatch builds http::patch(url, body[, headers]).
func HTTPPatch(url, body any, headers ...any) Function {
	return Fn("http::patch", append([]any{url, body}, headers...)...)
}

// HTTPDelete builds http::delete(url[, headers]).
func HTTPDelete(url any, headers ...any) Function {
	return Fn("http::delete", append([]any{url}, headers...)...)
}

// Sleep builds sleep(duration).
func Sleep(d any) Function { return fnTyped("sleep", Dur(d)) }
