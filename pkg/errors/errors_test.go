package errors

import (
	"fmt"
	"testing"
	"time"
)

func TestAnimaErrorString(t *testing.T) {
	err := &AnimaError{
		Op:   "animated.ParsePreset",
		Kind: KindParsing,
		Err:  fmt.Errorf("unknown curve %q", "bouncy"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	want := "animated.ParsePreset [parsing]: unknown curve \"bouncy\""
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAnimaErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := &AnimaError{Op: "op", Kind: KindUnknown, Err: inner}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindParsing, "parsing"},
		{KindLifecycle, "lifecycle"},
		{KindTicker, "ticker"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "animation.StepTickers",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in animation.StepTickers: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

type recordingHandler struct {
	errors []*AnimaError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *AnimaError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportUsesGlobalHandler(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	Report(&AnimaError{Op: "op", Kind: KindTicker, Err: fmt.Errorf("boom")})
	if len(h.errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(h.errors))
	}
	if h.errors[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero timestamp")
	}

	Report(nil) // nil reports are dropped
	if len(h.errors) != 1 {
		t.Error("nil report should be ignored")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("got %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "test.op" || p.Value != "kaboom" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}
