package parser

import (
	"testing"

	"github.com/liskarovh/ifj25c/ast"
	"github.com/liskarovh/ifj25c/lexer"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	ts, err := lexer.Tokenize([]byte(source))
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", source, err)
	}
	ts.First()
	prog, err := Parse(ts)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", source, err)
	}
	return prog
}

func parseProgramErr(t *testing.T, source string) error {
	t.Helper()
	ts, err := lexer.Tokenize([]byte(source))
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", source, err)
	}
	ts.First()
	_, err = Parse(ts)
	return err
}

func TestMissingImportIsSyntaxError(t *testing.T) {
	source := "class C {\nstatic main() {\nvar x = 1+2\nIfj.write(x)\n}\n}\n"
	if err := parseProgramErr(t, source); err == nil {
		t.Fatalf("expected a syntax error for a program with no import clause")
	}
}

func TestWrongImportAliasIsSyntaxError(t *testing.T) {
	source := "import \"ifj25\" for Wrong\nclass C {\n}\n"
	ts, err := lexer.Tokenize([]byte(source))
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	ts.First()
	if _, err := Parse(ts); err == nil {
		t.Fatalf("expected a syntax error for a non-'Ifj' import alias")
	}
}

func TestEndToEndMainFunction(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass Main {\nstatic main() {\nIfj.write(\"hi\")\n}\n}\n"
	prog := parseProgram(t, source)
	if prog.Import == nil || prog.Import.Path != "ifj25" || prog.Import.Alias != "Ifj" {
		t.Fatalf("Import = %+v, want {ifj25 Ifj}", prog.Import)
	}
	if len(prog.Classes) != 1 || prog.Classes[0].Name != "Main" {
		t.Fatalf("Classes = %+v, want one class named Main", prog.Classes)
	}
	body := prog.Classes[0].Body
	if len(body.Statements) != 1 {
		t.Fatalf("class body statements = %d, want 1", len(body.Statements))
	}
	fn, ok := body.Statements[0].(*ast.FunctionStmt)
	if !ok || fn.Name != "main" || len(fn.Params) != 0 {
		t.Fatalf("statement = %+v, want a zero-arg function named main", body.Statements[0])
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("main body statements = %d, want 1", len(fn.Body.Statements))
	}
	call, ok := fn.Body.Statements[0].(*ast.IfjCallStmt)
	if !ok || call.Name != "write" {
		t.Fatalf("statement = %+v, want an Ifj.write call", fn.Body.Statements[0])
	}
}

func TestVarDeclWithInitializerDesugarsToTwoStatements(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nvar x = 1+2\n}\n}\n"
	prog := parseProgram(t, source)
	body := prog.Classes[0].Body.Statements[0].(*ast.FunctionStmt).Body
	if len(body.Statements) != 2 {
		t.Fatalf("statements = %d, want 2 (decl + assign)", len(body.Statements))
	}
	if _, ok := body.Statements[0].(*ast.VarDeclStmt); !ok {
		t.Fatalf("first statement = %T, want *ast.VarDeclStmt", body.Statements[0])
	}
	assign, ok := body.Statements[1].(*ast.AssignStmt)
	if !ok || assign.Name != "x" {
		t.Fatalf("second statement = %+v, want assignment to x", body.Statements[1])
	}
}

func TestRedeclarationInSameBlockParsesFine(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nvar x\nvar x\n}\n}\n"
	prog := parseProgram(t, source)
	body := prog.Classes[0].Body.Statements[0].(*ast.FunctionStmt).Body
	if len(body.Statements) != 2 {
		t.Fatalf("statements = %d, want 2 (redeclaration is a semantic error, not syntax)", len(body.Statements))
	}
}

func TestIfElseAndUserCall(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic f(a) {\nreturn a\n}\nstatic main() {\nvar y = f(1)\nif (y < 2) {\nIfj.write(y)\n} else {\nIfj.write(y)\n}\nwhile (y < 2) {\nbreak\n}\n}\n}\n"
	prog := parseProgram(t, source)
	mainFn := prog.Classes[0].Body.Statements[1].(*ast.FunctionStmt)
	if mainFn.Name != "main" {
		t.Fatalf("second member = %s, want main", mainFn.Name)
	}
	assign := mainFn.Body.Statements[1].(*ast.AssignStmt)
	call, ok := assign.Expression.(*ast.UserCall)
	if !ok || call.Name != "f" || len(call.Args) != 1 {
		t.Fatalf("initializer = %+v, want a call to f with one argument", assign.Expression)
	}

	ifStmt, ok := mainFn.Body.Statements[2].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement = %T, want *ast.IfStmt", mainFn.Body.Statements[2])
	}
	if ifStmt.Else == nil {
		t.Fatalf("else branch missing")
	}

	whileStmt, ok := mainFn.Body.Statements[3].(*ast.WhileStmt)
	if !ok || len(whileStmt.Body.Statements) != 1 {
		t.Fatalf("statement = %+v, want a while with one break", mainFn.Body.Statements[3])
	}
	if _, ok := whileStmt.Body.Statements[0].(*ast.BreakStmt); !ok {
		t.Fatalf("while body = %T, want *ast.BreakStmt", whileStmt.Body.Statements[0])
	}
}

func TestGetterAndSetter(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic count {\nreturn 1\n}\nstatic count = (v) {\nIfj.write(v)\n}\n}\n"
	prog := parseProgram(t, source)
	getter, ok := prog.Classes[0].Body.Statements[0].(*ast.GetterStmt)
	if !ok || getter.Name != "count" {
		t.Fatalf("first member = %+v, want a getter named count", prog.Classes[0].Body.Statements[0])
	}
	setter, ok := prog.Classes[0].Body.Statements[1].(*ast.SetterStmt)
	if !ok || setter.Name != "count" || setter.Param != "v" {
		t.Fatalf("second member = %+v, want a setter named count with param v", prog.Classes[0].Body.Statements[1])
	}
}

func TestBareReturnAtEndOfLine(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic f() {\nreturn\n}\n}\n"
	prog := parseProgram(t, source)
	fn := prog.Classes[0].Body.Statements[0].(*ast.FunctionStmt)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	if !ok || ret.Expression != nil {
		t.Fatalf("statement = %+v, want a bare return", fn.Body.Statements[0])
	}
}

func TestUnterminatedBodyIsSyntaxError(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic f() {\nreturn 1\n"
	if err := parseProgramErr(t, source); err == nil {
		t.Fatalf("expected a syntax error for an unterminated body")
	}
}

func TestConditionParenthesesDoNotSwallowStatementBody(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\nstatic main() {\nif ( (1+2)*3 ) {\n}\n}\n}\n"
	prog := parseProgram(t, source)
	fn := prog.Classes[0].Body.Statements[0].(*ast.FunctionStmt)
	ifStmt, ok := fn.Body.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement = %T, want *ast.IfStmt", fn.Body.Statements[0])
	}
	if len(ifStmt.Then.Statements) != 0 {
		t.Fatalf("then-body statements = %d, want 0", len(ifStmt.Then.Statements))
	}
	if _, ok := ifStmt.Cond.(*ast.Binary); !ok {
		t.Fatalf("condition = %T, want *ast.Binary", ifStmt.Cond)
	}
}

func TestStrayTokenAtTopLevelIsSyntaxError(t *testing.T) {
	source := "import \"ifj25\" for Ifj\nclass C {\n}\n)\n"
	if err := parseProgramErr(t, source); err == nil {
		t.Fatalf("expected a syntax error for a stray token after the last class")
	}
}
