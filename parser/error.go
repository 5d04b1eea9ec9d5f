package parser

import "fmt"

// SyntaxError reports a grammar violation at a source position.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line:%d, column:%d - %s", e.Line, e.Column, e.Message)
}
