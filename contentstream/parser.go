package contentstream

import (
	"bytes"
	"fmt"
	"strconv"
)

// Operation is a single content stream operation: an operator and the
// operands that preceded it.
type Operation struct {
	Operator string   // e.g. "Tj", "Tm", "m", "l"
	Operands []Object // operands in stream order
}

// Parser parses decoded content stream bytes into a sequence of operations.
type Parser struct {
	data  []byte
	pos   int
	ops   []Operation
	stack []Object // operands waiting for their operator
}

// NewParser creates a parser for the given decoded content stream data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse is a convenience wrapper around NewParser(data).Parse().
func Parse(data []byte) ([]Operation, error) {
	return NewParser(data).Parse()
}

// Parse parses the content stream and returns all operations in order.
// A malformed operand aborts the parse with an error; callers decide whether
// that is fatal for the page.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			break
		}
		if err := p.parseNext(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

// parseNext parses one token: an operand is pushed onto the stack, an
// operator consumes the stack and appends an Operation.
func (p *Parser) parseNext() error {
	start := p.pos
	c := p.data[p.pos]

	// Comments run to end of line.
	if c == '%' {
		for p.pos < len(p.data) && p.data[p.pos] != '\r' && p.data[p.pos] != '\n' {
			p.pos++
		}
		return nil
	}

	if isLetter(c) || c == '\'' || c == '"' {
		// true/false/null look like operators; disambiguate by token.
		if c == 't' || c == 'f' || c == 'n' {
			if obj, ok := p.parseKeyword(); ok {
				p.stack = append(p.stack, obj)
				return nil
			}
		}
		return p.parseOperator()
	}

	operand, err := p.parseOperand()
	if err != nil {
		return fmt.Errorf("at position %d: %w", start, err)
	}
	p.stack = append(p.stack, operand)
	return nil
}

// parseKeyword tries to read true, false or null. It reports false without
// consuming input when the token is something else (an operator such as "f").
func (p *Parser) parseKeyword() (Object, bool) {
	end := p.pos
	for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
		end++
	}
	switch string(p.data[p.pos:end]) {
	case "true":
		p.pos = end
		return Bool(true), true
	case "false":
		p.pos = end
		return Bool(false), true
	case "null":
		p.pos = end
		return Null{}, true
	}
	return nil, false
}

// parseOperator reads an operator name and emits an Operation from the
// pending operand stack.
func (p *Parser) parseOperator() error {
	start := p.pos
	var op bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if !isLetter(c) && c != '\'' && c != '"' && c != '*' {
			break
		}
		op.WriteByte(c)
		p.pos++
	}

	operator := op.String()
	if operator == "" {
		return fmt.Errorf("empty operator at position %d", start)
	}

	operation := Operation{Operator: operator}
	if len(p.stack) > 0 {
		operation.Operands = make([]Object, len(p.stack))
		copy(operation.Operands, p.stack)
	}
	p.ops = append(p.ops, operation)
	p.stack = p.stack[:0]
	return nil
}

// parseOperand parses a number, string, hex string, name, array or dict.
func (p *Parser) parseOperand() (Object, error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	c := p.data[p.pos]
	switch {
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '<' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '<':
		return p.parseDict()
	case c == '<':
		return p.parseHexString()
	case c == '/':
		return p.parseName()
	case c == '[':
		return p.parseArray()
	case c == 't' || c == 'f' || c == 'n':
		if obj, ok := p.parseKeyword(); ok {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("unexpected character %q", c)
}

// parseNumber parses an integer or real operand.
func (p *Parser) parseNumber() (Object, error) {
	start := p.pos
	hasDecimal := false

	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			p.pos++
		} else {
			break
		}
	}

	numStr := string(p.data[start:p.pos])
	if hasDecimal {
		val, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number %q: %w", numStr, err)
		}
		return Real(val), nil
	}
	val, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", numStr, err)
	}
	return Int(val), nil
}

// parseString parses a literal string (...) with escape handling.
func (p *Parser) parseString() (Object, error) {
	p.pos++ // skip '('

	var result bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.data):
			p.pos++
			next := p.data[p.pos]
			switch next {
			case 'n':
				result.WriteByte('\n')
				p.pos++
			case 'r':
				result.WriteByte('\r')
				p.pos++
			case 't':
				result.WriteByte('\t')
				p.pos++
			case 'b':
				result.WriteByte('\b')
				p.pos++
			case 'f':
				result.WriteByte('\f')
				p.pos++
			case '(', ')', '\\':
				result.WriteByte(next)
				p.pos++
			case '\r':
				// Line continuation.
				p.pos++
				if p.pos < len(p.data) && p.data[p.pos] == '\n' {
					p.pos++
				}
			case '\n':
				p.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				// Octal escape, 1-3 digits, value mod 256.
				val := int(next - '0')
				p.pos++
				for i := 0; i < 2 && p.pos < len(p.data); i++ {
					d := p.data[p.pos]
					if d < '0' || d > '7' {
						break
					}
					val = val*8 + int(d-'0')
					p.pos++
				}
				result.WriteByte(byte(val & 0xFF))
			default:
				// Unknown escape: the backslash is ignored.
				result.WriteByte(next)
				p.pos++
			}
		case c == '(':
			depth++
			result.WriteByte(c)
			p.pos++
		case c == ')':
			depth--
			if depth > 0 {
				result.WriteByte(c)
			}
			p.pos++
		default:
			result.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unclosed string")
	}
	return String(result.Bytes()), nil
}

// parseHexString parses a hexadecimal string <...>. An odd number of digits
// gets a trailing zero nibble.
func (p *Parser) parseHexString() (Object, error) {
	p.pos++ // skip '<'

	var digits []byte
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '>' {
			p.pos++
			var result bytes.Buffer
			for i := 0; i < len(digits); i += 2 {
				hi := hexValue(digits[i])
				lo := byte(0)
				if i+1 < len(digits) {
					lo = hexValue(digits[i+1])
				}
				result.WriteByte(hi<<4 | lo)
			}
			return String(result.Bytes()), nil
		}
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		digits = append(digits, c)
		p.pos++
	}
	return nil, fmt.Errorf("unclosed hex string")
}

// parseName parses a /Name with # escape handling.
func (p *Parser) parseName() (Object, error) {
	p.pos++ // skip '/'

	var result bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) &&
			isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			result.WriteByte(hexValue(p.data[p.pos+1])<<4 | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		result.WriteByte(c)
		p.pos++
	}
	return Name(result.String()), nil
}

// parseArray parses an array [...] of operands.
func (p *Parser) parseArray() (Object, error) {
	p.pos++ // skip '['

	var arr Array
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		obj, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// parseDict parses a dictionary <<...>>.
func (p *Parser) parseDict() (Object, error) {
	p.pos += 2 // skip '<<'

	dict := make(Dict)
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}
		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			return dict, nil
		}
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}
		key, err := p.parseName()
		if err != nil {
			return nil, err
		}
		value, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		dict[string(key.(Name))] = value
	}
}

// skipWhitespace advances past PDF whitespace characters.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDelimiter reports whether c is a PDF delimiter character.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
