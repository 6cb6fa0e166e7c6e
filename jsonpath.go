// Package jsonpath compiles and evaluates JSONPath expressions
// (https://goessner.net/articles/JsonPath/-style syntax) against an
// abstract JSON document (see the jsonvalue subpackage). A query is
// compiled once with Compile or MustCompile into a CompiledPath, which
// can then be evaluated any number of times, concurrently, against any
// number of documents with Match or MatchFirst.
package jsonpath

import "github.com/cortronic/jsonpath/jsonvalue"

// CompileAndMatch compiles query and evaluates it against doc in one
// step, for callers that don't need to reuse the compiled path. It is
// a convenience beyond the spec's surface, not part of the original
// source's surface.
func CompileAndMatch(query string, doc jsonvalue.Value) ([]jsonvalue.Value, error) {
	path, err := Compile(query)
	if err != nil {
		return nil, err
	}
	return Match(path, doc), nil
}
