package okra

// Geo functions: geo::*.

// GeoArea builds geo::area(g).
func GeoArea(g any) Function { return fnTyped("geo::area", Geometry(g)) }

// GeoBearing builds geo::bearing(a, b).
func GeoBearing(a, b any) Function { return fnTyped("geo::bearing", Geometry(a), Geometry(b)) }

// GeoCentroid builds geo::centroid(g).
func GeoCentroid(g any) Function { return fnTyped("geo::centroid", Geometry(g)) }

// GeoDistance builds geo::distance(a, b).
func GeoDistance(a, b any) Function {
	return fnTyped("geo::distance", Geometry(a), Geometry(b))
}

// GeoHashDecode builds geo::hash::decode(s).
func GeoHashDecode(s any) Function { return fnTyped("geo::hash::decode", Strand(s)) }

// GeoHashEncode builds geo::hash::encode(g).
func GeoHashEncode(g any) Function { return fnTyped("geo::hash::encode", Geometry(g)) }

// Crypto functions: crypto::*.

// CryptoMD5 builds crypto::md5(s).
func CryptoMD5(s any) Function { return fnTyped("crypto::md5", Strand(s)) }

// CryptoSHA1 builds crypto::sha1(s).
func CryptoSHA1(s any) Function { return fnTyped("crypto::sha1", Strand(s)) }

// CryptoSHA256 builds crypto::sha256(s).
func CryptoSHA256(s any) Function { return fnTyped("crypto::sha256", Strand(s)) }

// CryptoSHA512 builds crypto::sha512(s).
func CryptoSHA512(s any) Function { return fnTyped("crypto::sha512", Strand(s)) }

// CryptoArgon2Compare builds crypto::argon2::compare(hash, value).
func CryptoArgon2Compare(hash, value any) Function {
	return fnTyped("crypto::argon2::compare", Strand(hash), Strand(value))
}

// CryptoArgon2Generate builds crypto::argon2::generate(value).
func CryptoArgon2Generate(value any) Function {
	return fnTyped("crypto::argon2::generate", Strand(value))
}

// CryptoBcryptCompare builds crypto::bcrypt::compare(hash, value).
func CryptoBcryptCompare(hash, value any) Function {
	return fnTyped("crypto::bcrypt::compare", Strand(hash), Strand(value))
}

// CryptoBcryptGenerate builds crypto::bcrypt::generate(value).
func CryptoBcryptGenerate(value any) Function {
	return fnTyped("crypto::bcrypt::generate", Strand(value))
}

// CryptoPbkdf2Compare builds crypto::pbkdf2::compare(hash, value).
func CryptoPbkdf2Compare(hash, value any) Function {
	return fnTyped("crypto::pbkdf2::compare", Strand(hash), Strand(value))
}

// CryptoPbkdf2Generate builds crypto::pbkdf2::generate(value).
func CryptoPbkdf2Generate(value any) Function {
	return fnTyped("crypto::pbkdf2::generate", Strand(value))
}

// CryptoScryptCompare builds crypto::scrypt::compare(hash, value).
func CryptoScryptCompare(hash, value any) Function {
	return fnTyped("crypto::scrypt::compare", Strand(hash), Strand(value))
}

// CryptoScryptGenerate builds crypto::scrypt::generate(value).
func CryptoScryptGenerate(value any) Function {
	return fnTyped("crypto::scrypt::generate", Strand(value))
}
