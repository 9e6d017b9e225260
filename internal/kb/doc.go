// Package kb loads and serves the construct knowledge base.
//
// The knowledge base is a single hand-authored YAML document describing
// psychological constructs (self-control, self-regulation, executive
// function, ...), the component taxonomy used to compare them, and a set
// of theoretical comparison models. It is parsed once per session into a
// strongly-typed, immutable KnowledgeBase; every accessor is a pure query
// over that snapshot.
package kb
