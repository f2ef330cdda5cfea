// Package ast defines the parse tree produced by the parser.
//
// The tree preserves the exact syntactic shape of the document: object
// members keep their source order (duplicate keys included), integer and
// floating-point literals stay distinct, and an empty object or array is a
// different shape from a non-empty one rather than a zero-length container.
package ast

// Value is one node of the parse tree. The concrete types are String,
// Integer, Float, Object, Array, True, False and Null.
type Value interface {
	valueNode()
}

// String is a string literal. Text is the raw text between the quotes;
// backslash escapes are not decoded.
type String struct {
	Text string
}

// Integer is a numeric literal without a fractional part.
type Integer struct {
	Value int32
}

// Float is a numeric literal with a fractional part.
type Float struct {
	Value float64
}

// True is the literal true.
type True struct{}

// False is the literal false.
type False struct{}

// Null is the literal null.
type Null struct{}

// Pair is one key/value member of an object.
type Pair struct {
	Key   string
	Value Value
}

// Members is a non-empty ordered chain of object pairs. Pairs appear in
// source order and always number at least one; duplicates are retained as
// repeated pairs.
type Members struct {
	Pairs []Pair
}

// Object is a JSON object. Members is nil for the empty object and points
// to a non-empty chain otherwise.
type Object struct {
	Members *Members
}

// Elements is a non-empty ordered chain of array values.
type Elements struct {
	Values []Value
}

// Array is a JSON array. Elements is nil for the empty array and points to
// a non-empty chain otherwise.
type Array struct {
	Elements *Elements
}

func (String) valueNode()  {}
func (Integer) valueNode() {}
func (Float) valueNode()   {}
func (True) valueNode()    {}
func (False) valueNode()   {}
func (Null) valueNode()    {}
func (Object) valueNode()  {}
func (Array) valueNode()   {}

// NewObject builds an object from pairs in the given order. With no pairs
// the result is the empty object.
func NewObject(pairs ...Pair) Object {
	if len(pairs) == 0 {
		return Object{}
	}
	return Object{Members: &Members{Pairs: pairs}}
}

// NewArray builds an array from values in the given order. With no values
// the result is the empty array.
func NewArray(values ...Value) Array {
	if len(values) == 0 {
		return Array{}
	}
	return Array{Elements: &Elements{Values: values}}
}

// Empty reports whether the object has no members.
func (o Object) Empty() bool {
	return o.Members == nil
}

// Len returns the number of pairs in the object.
func (o Object) Len() int {
	if o.Members == nil {
		return 0
	}
	return len(o.Members.Pairs)
}

// Pairs returns the object's pairs in source order, or nil for the empty
// object. The returned slice is the tree's own storage; callers must not
// reorder it.
func (o Object) Pairs() []Pair {
	if o.Members == nil {
		return nil
	}
	return o.Members.Pairs
}

// Keys returns the object's keys in source order, duplicates included.
func (o Object) Keys() []string {
	if o.Members == nil {
		return nil
	}
	keys := make([]string, len(o.Members.Pairs))
	for i, p := range o.Members.Pairs {
		keys[i] = p.Key
	}
	return keys
}

// Empty reports whether the array has no elements.
func (a Array) Empty() bool {
	return a.Elements == nil
}

// Len returns the number of elements in the array.
func (a Array) Len() int {
	if a.Elements == nil {
		return 0
	}
	return len(a.Elements.Values)
}

// Values returns the array's elements in source order, or nil for the
// empty array.
func (a Array) Values() []Value {
	if a.Elements == nil {
		return nil
	}
	return a.Elements.Values
}
