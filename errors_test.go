package schemer

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindIs(t *testing.T) {
	err := Errorf(SyntaxError, nil, "duplicate function parameter: %s", "x")
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("expected %v to be a syntax error", err)
	}
	if errors.Is(err, ErrNotAPair) {
		t.Errorf("did not expect %v to be a not-a-pair error", err)
	}
}

func TestWrappedErrorKind(t *testing.T) {
	inner := Errorf(InvalidNumericConstant, nil, "#x1g")
	err := fmt.Errorf("reading unit 3: %w", inner)
	if !errors.Is(err, ErrInvalidNumericConstant) {
		t.Errorf("expected wrapped error to match its kind")
	}
	if KindOf(err) != InvalidNumericConstant {
		t.Errorf("expected kind %v, have %v", InvalidNumericConstant, KindOf(err))
	}
	if KindOf(errors.New("plain")) != NoError {
		t.Errorf("expected plain error to have no kind")
	}
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(UnsupportedForm, nil, "lambda with sequence body")
	if err.Error() != "unsupported form: lambda with sequence body" {
		t.Errorf("unexpected error message %q", err.Error())
	}
	if ErrNotAPair.Error() != "not a pair" {
		t.Errorf("unexpected sentinel message %q", ErrNotAPair.Error())
	}
}

func TestSpanExtend(t *testing.T) {
	s := Span{4, 7}.Extend(Span{2, 5})
	if s.From() != 2 || s.To() != 7 || s.Len() != 5 {
		t.Errorf("unexpected span %v", s)
	}
	if !(Span{}).IsNull() {
		t.Errorf("zero span should be null")
	}
}
