package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter is a transport-independent predicate over stored documents.
// It is constructed with [MatchAll] or [ContainsAny] and translated to the
// store's native query shape only at the gateway boundary, so predicate
// construction stays independently testable.
type Filter struct {
	query bson.M
}

// MatchAll returns the predicate matching every document in a collection.
func MatchAll() Filter {
	return Filter{query: bson.M{}}
}

// ContainsAny returns a predicate matching documents where at least one of
// the named text fields contains q as a case-insensitive substring.
//
// q is quoted before being compiled into the pattern: a query like "a.b"
// matches the literal text "a.b", not "a<any>b".
func ContainsAny(q string, fields ...string) Filter {
	if q == "" || len(fields) == 0 {
		return MatchAll()
	}

	pattern := primitive.Regex{
		Pattern: regexp.QuoteMeta(q),
		Options: "i",
	}

	clauses := make(bson.A, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, bson.M{field: pattern})
	}

	return Filter{query: bson.M{"$or": clauses}}
}

// Query returns the predicate in the store's native query shape.
// The zero-value Filter translates to "match all".
func (f Filter) Query() bson.M {
	if f.query == nil {
		return bson.M{}
	}
	return f.query
}
