package errs

import (
	"errors"
	"testing"
)

func TestValidationError_MessageIncludesField(t *testing.T) {
	err := Validationf("capacity", "capacity (%v) must be positive", -1.0)
	want := "validation: capacity: capacity (-1) must be positive"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestValidationError_OmitsFieldWhenBlank(t *testing.T) {
	err := Validation("", "something went wrong")
	want := "validation: something went wrong"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestSolveErrorKind_String(t *testing.T) {
	cases := map[SolveErrorKind]string{
		Infeasible:    "INFEASIBLE",
		Unbounded:     "UNBOUNDED",
		Timeout:       "TIMEOUT",
		SolverFailure: "SOLVER_FAILURE",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("kind %d: got %q, want %q", kind, got, want)
		}
	}
}

func TestSolveError_ErrorsAsMatchesByType(t *testing.T) {
	err := error(Solve(Infeasible, "no feasible dispatch"))
	var target *SolveError
	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to match *SolveError")
	}
	if target.Kind != Infeasible {
		t.Fatalf("expected Kind Infeasible, got %v", target.Kind)
	}
}

func TestInternalError_Message(t *testing.T) {
	err := Internalf("unexpected column %d", 5)
	want := "internal error: unexpected column 5"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
