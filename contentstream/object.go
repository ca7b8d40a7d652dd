package contentstream

// Object is an operand value appearing in a content stream. The concrete
// types below cover everything the content stream grammar allows before an
// operator: numbers, strings, names, arrays, dictionaries, booleans and null.
type Object interface {
	isObject()
}

// Int is an integer operand.
type Int int64

// Real is a real-number operand.
type Real float64

// String holds the decoded bytes of a literal or hexadecimal string operand.
// The bytes are raw text-encoding bytes; interpreting them (UTF-16BE,
// Latin-1) is the text decoder's job.
type String []byte

// Name is a name operand (written /Name in the stream).
type Name string

// Array is an ordered sequence of operands, e.g. the argument of TJ.
type Array []Object

// Dict is a dictionary operand. Rare in content streams but legal.
type Dict map[string]Object

// Bool is a boolean operand.
type Bool bool

// Null is the null operand.
type Null struct{}

func (Int) isObject()    {}
func (Real) isObject()   {}
func (String) isObject() {}
func (Name) isObject()   {}
func (Array) isObject()  {}
func (Dict) isObject()   {}
func (Bool) isObject()   {}
func (Null) isObject()   {}

// AsFloat returns the numeric value of an Int or Real operand.
func AsFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Int:
		return float64(v), true
	case Real:
		return float64(v), true
	default:
		return 0, false
	}
}
