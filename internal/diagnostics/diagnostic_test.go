package diagnostics

import (
	"testing"

	"github.com/neok-m4700/f18/internal/source"
)

func testLocation(line, startCol, endCol int) *source.Location {
	name := "expr.f18x"
	return source.NewLocation(&name,
		&source.Position{Line: line, Column: startCol},
		&source.Position{Line: line, Column: endCol})
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Error, "error"},
		{Warning, "warning"},
		{Info, "info"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity.String() = %v, want %v", got, tt.want)
		}
	}
}

func TestNewDiagnostics(t *testing.T) {
	if d := NewError("bad"); d.Severity != Error || d.Message != "bad" {
		t.Errorf("NewError = %+v", d)
	}
	if d := NewWarning("careful"); d.Severity != Warning {
		t.Errorf("NewWarning severity = %v", d.Severity)
	}
	if d := NewInfo("fyi"); d.Severity != Info || len(d.Labels) != 0 || len(d.Notes) != 0 {
		t.Errorf("NewInfo = %+v", d)
	}
}

func TestDiagnostic_PrimaryLabelFirst(t *testing.T) {
	loc1 := testLocation(1, 1, 4)
	loc2 := testLocation(1, 6, 9)

	diag := NewError("operand kinds differ").
		WithLabel("expr.f18x", loc2, "kind 8", Secondary).
		WithPrimaryLabel("expr.f18x", loc1, "kind 4")

	if len(diag.Labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(diag.Labels))
	}
	if diag.Labels[0].Style != Primary || diag.Labels[0].Location != loc1 {
		t.Errorf("primary label is not first: %+v", diag.Labels[0])
	}
	if diag.Location() != loc1 {
		t.Error("Location() should return the primary label's location")
	}

	// a second primary is ignored
	diag.WithPrimaryLabel("expr.f18x", loc2, "again")
	if len(diag.Labels) != 2 {
		t.Errorf("second primary label was added")
	}
}

func TestDiagnostic_SecondaryWithoutPrimary_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when adding secondary label without primary")
		}
	}()
	NewError("test").WithSecondaryLabel("expr.f18x", testLocation(1, 1, 2), "context")
}

func TestDiagnostic_BuilderPattern(t *testing.T) {
	loc := testLocation(2, 3, 8)
	diag := NewWarning("integer addition overflowed").
		WithCode(WarnAdditionOverflow).
		WithPrimaryLabel("expr.f18x", loc, "here").
		WithNote("note 1").
		WithNote("note 2").
		WithHelp("use a wider kind")

	if diag.Code != WarnAdditionOverflow {
		t.Errorf("Code = %q", diag.Code)
	}
	if diag.FilePath != "expr.f18x" {
		t.Errorf("FilePath = %q", diag.FilePath)
	}
	if len(diag.Notes) != 2 || diag.Help != "use a wider kind" {
		t.Errorf("notes/help not recorded: %+v", diag)
	}

	want := "warning[W0102]: integer addition overflowed (expr.f18x:2:3)"
	if got := diag.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFoldingMessageCodes(t *testing.T) {
	tests := []struct {
		text string
		code string
	}{
		{NegationOverflowed, WarnNegationOverflow},
		{AdditionOverflowed, WarnAdditionOverflow},
		{MultiplicationOverflowed, WarnMultiplicationOverflow},
		{"something else", WarnFoldingMessage},
	}

	for _, tt := range tests {
		d := FoldingMessage("expr.f18x", testLocation(1, 1, 2), tt.text)
		if d.Code != tt.code || d.Severity != Warning || d.Message != tt.text {
			t.Errorf("FoldingMessage(%q) = %s", tt.text, d)
		}
	}
}

func TestReadErrorHelp(t *testing.T) {
	d := ReadError("expr.f18x", testLocation(1, 2, 5), ErrUnknownOperator, `unknown operator "mod"`)
	if d.Severity != Error || d.Help == "" {
		t.Errorf("ReadError = %+v", d)
	}
	d = ReadError("expr.f18x", testLocation(1, 2, 5), ErrUnexpectedToken, "unexpected )")
	if d.Help != "" {
		t.Errorf("unexpected help %q", d.Help)
	}
}
