package semantics

import (
	"testing"

	"github.com/liskarovh/ifj25c/lexer"
	"github.com/liskarovh/ifj25c/parser"
)

func checkSource(t *testing.T, source string) error {
	t.Helper()
	ts, err := lexer.Tokenize([]byte(source))
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	ts.First()
	prog, err := parser.Parse(ts)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return Check(prog)
}

func TestWellFormedProgramHasNoError(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nvar x = 1+2\nIfj.write(x)\n}\n}\n"
	if err := checkSource(t, source); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
}

func TestRedeclarationInSameBlockIsExitCode4(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nvar x\nvar x\n}\n}\n"
	err := checkSource(t, source)
	se, ok := err.(*SemanticError)
	if !ok {
		t.Fatalf("Check() = %v, want a *SemanticError", err)
	}
	if se.Code != 4 {
		t.Fatalf("Code = %d, want 4", se.Code)
	}
}

func TestUndefinedIdentifierIsExitCode3(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nIfj.write(y)\n}\n}\n"
	err := checkSource(t, source)
	se, ok := err.(*SemanticError)
	if !ok {
		t.Fatalf("Check() = %v, want a *SemanticError", err)
	}
	if se.Code != 3 {
		t.Fatalf("Code = %d, want 3", se.Code)
	}
}

func TestShadowingAcrossBlocksIsAllowed(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nvar x = 1\nif (x < 2) {\nvar x = 2\nIfj.write(x)\n}\n}\n}\n"
	if err := checkSource(t, source); err != nil {
		t.Fatalf("Check() = %v, want nil (nested var shadows outer)", err)
	}
}

func TestWrongArgumentCountIsExitCode5(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic f(a) {\nreturn a\n}\nstatic main() {\nvar x = f(1, 2)\n}\n}\n"
	err := checkSource(t, source)
	se, ok := err.(*SemanticError)
	if !ok {
		t.Fatalf("Check() = %v, want a *SemanticError", err)
	}
	if se.Code != 5 {
		t.Fatalf("Code = %d, want 5", se.Code)
	}
}

func TestCallToUndefinedFunctionIsExitCode3(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nmissing()\n}\n}\n"
	err := checkSource(t, source)
	se, ok := err.(*SemanticError)
	if !ok {
		t.Fatalf("Check() = %v, want a *SemanticError", err)
	}
	if se.Code != 3 {
		t.Fatalf("Code = %d, want 3", se.Code)
	}
}

func TestForwardReferenceToLaterFunctionIsAllowed(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nhelper()\n}\nstatic helper() {\nreturn\n}\n}\n"
	if err := checkSource(t, source); err != nil {
		t.Fatalf("Check() = %v, want nil (forward reference within a class)", err)
	}
}

func TestBreakInsideWhileIsAllowed(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nwhile (1<2) {\nbreak\n}\n}\n}\n"
	if err := checkSource(t, source); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
}

func TestBreakOutsideLoopIsExitCode10(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nbreak\n}\n}\n"
	err := checkSource(t, source)
	se, ok := err.(*SemanticError)
	if !ok {
		t.Fatalf("Check() = %v, want a *SemanticError", err)
	}
	if se.Code != 10 {
		t.Fatalf("Code = %d, want 10", se.Code)
	}
}

func TestContinueOutsideLoopIsExitCode10(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nif (1<2) {\ncontinue\n}\n}\n}\n"
	err := checkSource(t, source)
	se, ok := err.(*SemanticError)
	if !ok {
		t.Fatalf("Check() = %v, want a *SemanticError", err)
	}
	if se.Code != 10 {
		t.Fatalf("Code = %d, want 10", se.Code)
	}
}
