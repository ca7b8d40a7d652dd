package contentstream

import (
	"testing"
)

func TestParseSimpleOperator(t *testing.T) {
	ops, err := Parse([]byte("q"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Operator != "q" {
		t.Errorf("expected operator 'q', got %q", ops[0].Operator)
	}
	if len(ops[0].Operands) != 0 {
		t.Errorf("expected 0 operands, got %d", len(ops[0].Operands))
	}
}

func TestParseIntegerOperand(t *testing.T) {
	ops, err := Parse([]byte("100 Tz"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "Tz" {
		t.Fatalf("unexpected operations: %+v", ops)
	}
	val, ok := ops[0].Operands[0].(Int)
	if !ok {
		t.Fatalf("expected Int operand, got %T", ops[0].Operands[0])
	}
	if val != 100 {
		t.Errorf("expected value 100, got %d", val)
	}
}

func TestParseRealOperand(t *testing.T) {
	ops, err := Parse([]byte("-12.5 0 Td"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "Td" {
		t.Fatalf("unexpected operations: %+v", ops)
	}
	if len(ops[0].Operands) != 2 {
		t.Fatalf("expected 2 operands, got %d", len(ops[0].Operands))
	}
	val, ok := ops[0].Operands[0].(Real)
	if !ok {
		t.Fatalf("expected Real operand, got %T", ops[0].Operands[0])
	}
	if val != -12.5 {
		t.Errorf("expected value -12.5, got %v", val)
	}
}

func TestParseTextMatrix(t *testing.T) {
	ops, err := Parse([]byte("BT 1 0 0 1 72.5 698 Tm (Hello) Tj ET"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 4 {
		t.Fatalf("expected 4 operations, got %d", len(ops))
	}
	if ops[1].Operator != "Tm" || len(ops[1].Operands) != 6 {
		t.Fatalf("unexpected Tm operation: %+v", ops[1])
	}
	e, _ := AsFloat(ops[1].Operands[4])
	if e != 72.5 {
		t.Errorf("expected e=72.5, got %v", e)
	}
	str, ok := ops[2].Operands[0].(String)
	if !ok {
		t.Fatalf("expected String operand, got %T", ops[2].Operands[0])
	}
	if string(str) != "Hello" {
		t.Errorf("expected 'Hello', got %q", str)
	}
}

func TestParseStringEscapes(t *testing.T) {
	ops, err := Parse([]byte(`(a\(b\)c\\d\101) Tj`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	str := ops[0].Operands[0].(String)
	if string(str) != `a(b)c\dA` {
		t.Errorf("unexpected string: %q", str)
	}
}

func TestParseNestedParens(t *testing.T) {
	ops, err := Parse([]byte("(outer (inner) tail) Tj"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	str := ops[0].Operands[0].(String)
	if string(str) != "outer (inner) tail" {
		t.Errorf("unexpected string: %q", str)
	}
}

func TestParseHexString(t *testing.T) {
	ops, err := Parse([]byte("<FEFF0042> Tj"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	str := ops[0].Operands[0].(String)
	want := []byte{0xFE, 0xFF, 0x00, 0x42}
	if len(str) != len(want) {
		t.Fatalf("expected %d bytes, got %d", len(want), len(str))
	}
	for i := range want {
		if str[i] != want[i] {
			t.Errorf("byte %d: expected %#x, got %#x", i, want[i], str[i])
		}
	}
}

func TestParseHexStringOddDigits(t *testing.T) {
	ops, err := Parse([]byte("<414> Tj"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	str := ops[0].Operands[0].(String)
	if len(str) != 2 || str[0] != 0x41 || str[1] != 0x40 {
		t.Errorf("expected [0x41 0x40], got %v", []byte(str))
	}
}

func TestParseArrayWithAdjustments(t *testing.T) {
	ops, err := Parse([]byte("[(AB) -250 (CD) 12.5 (EF)] TJ"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "TJ" {
		t.Fatalf("unexpected operations: %+v", ops)
	}
	arr, ok := ops[0].Operands[0].(Array)
	if !ok {
		t.Fatalf("expected Array operand, got %T", ops[0].Operands[0])
	}
	if len(arr) != 5 {
		t.Fatalf("expected 5 array elements, got %d", len(arr))
	}
	if adj, _ := AsFloat(arr[1]); adj != -250 {
		t.Errorf("expected adjustment -250, got %v", adj)
	}
	if string(arr[2].(String)) != "CD" {
		t.Errorf("unexpected element: %q", arr[2])
	}
}

func TestParseName(t *testing.T) {
	ops, err := Parse([]byte("/F1 12 Tf"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	name, ok := ops[0].Operands[0].(Name)
	if !ok {
		t.Fatalf("expected Name operand, got %T", ops[0].Operands[0])
	}
	if name != "F1" {
		t.Errorf("expected name F1, got %q", name)
	}
}

func TestParsePathOperators(t *testing.T) {
	ops, err := Parse([]byte("100 50 m 100 750 l S"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(ops))
	}
	if ops[0].Operator != "m" || ops[1].Operator != "l" || ops[2].Operator != "S" {
		t.Errorf("unexpected operators: %s %s %s", ops[0].Operator, ops[1].Operator, ops[2].Operator)
	}
	x, _ := AsFloat(ops[1].Operands[0])
	y, _ := AsFloat(ops[1].Operands[1])
	if x != 100 || y != 750 {
		t.Errorf("expected l 100 750, got %v %v", x, y)
	}
}

func TestParseQuoteOperators(t *testing.T) {
	ops, err := Parse([]byte("(next) ' 2 1 (line) \""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	if ops[0].Operator != "'" {
		t.Errorf("expected quote operator, got %q", ops[0].Operator)
	}
	if ops[1].Operator != "\"" || len(ops[1].Operands) != 3 {
		t.Errorf("unexpected double-quote operation: %+v", ops[1])
	}
}

func TestParseKeywordOperands(t *testing.T) {
	ops, err := Parse([]byte("true false null gs"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || len(ops[0].Operands) != 3 {
		t.Fatalf("unexpected operations: %+v", ops)
	}
	if b, ok := ops[0].Operands[0].(Bool); !ok || !bool(b) {
		t.Errorf("expected Bool(true), got %v", ops[0].Operands[0])
	}
	if _, ok := ops[0].Operands[2].(Null); !ok {
		t.Errorf("expected Null, got %T", ops[0].Operands[2])
	}
}

func TestParseComment(t *testing.T) {
	ops, err := Parse([]byte("% a comment\nq"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "q" {
		t.Errorf("unexpected operations: %+v", ops)
	}
}

func TestParseMalformedOperand(t *testing.T) {
	if _, err := Parse([]byte("(unclosed Tj")); err == nil {
		t.Error("expected error for unclosed string")
	}
	if _, err := Parse([]byte("[1 2 Tj")); err == nil {
		t.Error("expected error for unclosed array")
	}
}

func TestOperandStackResetBetweenOperations(t *testing.T) {
	ops, err := Parse([]byte("1 2 Td (x) Tj"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	if len(ops[0].Operands) != 2 {
		t.Errorf("Td: expected 2 operands, got %d", len(ops[0].Operands))
	}
	if len(ops[1].Operands) != 1 {
		t.Errorf("Tj: expected 1 operand, got %d", len(ops[1].Operands))
	}
}
