package parser

import (
	"testing"
)

func mustTokenize(t *testing.T, input string) *LexResult {
	t.Helper()
	result, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return result
}

func lexError(t *testing.T, input string) *LexError {
	t.Helper()
	_, err := Tokenize(input)
	if err == nil {
		t.Fatalf("expected lex error for %q", input)
	}
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	return lexErr
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "let fn if else for while in true false foo _bar x1"
	expected := []TokenType{
		LET, FN, IF, ELSE, FOR, WHILE, IN, TRUE, FALSE,
		IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF,
	}

	result := mustTokenize(t, input)
	if len(result.Tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(result.Tokens))
	}
	for i, exp := range expected {
		if result.Tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, result.Tokens[i].Type)
		}
	}
}

func TestOperatorsAndPunctuation(t *testing.T) {
	input := "+ - * / & | && || = ( ) , : { } ; ->"
	expected := []TokenType{
		PLUS, MINUS, STAR, SLASH, AMPERSAND, PIPE, AND, OR, EQUAL,
		LEFT_PAREN, RIGHT_PAREN, COMMA, COLON, LEFT_BRACE, RIGHT_BRACE,
		SEMICOLON, ARROW,
	}
	expectedLexemes := []string{
		"+", "-", "*", "/", "&", "|", "&&", "||", "=",
		"(", ")", ",", ":", "{", "}", ";", "->",
	}

	result := mustTokenize(t, input)
	for i, exp := range expected {
		if result.Tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, result.Tokens[i].Type)
		}
		if result.Tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("token %d: expected lexeme %q, got %q", i, expectedLexemes[i], result.Tokens[i].Lexeme)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 3.14 1. .5 1e5 2.5e-3 1E+2"
	expectedLexemes := []string{"42", "3.14", "1.", ".5", "1e5", "2.5e-3", "1E+2"}

	result := mustTokenize(t, input)
	for i, lexeme := range expectedLexemes {
		if result.Tokens[i].Type != NUMBER {
			t.Errorf("token %d: expected number, got %s", i, result.Tokens[i].Type)
		}
		if result.Tokens[i].Lexeme != lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, lexeme, result.Tokens[i].Lexeme)
		}
	}
}

func TestStandaloneDotIsNotANumber(t *testing.T) {
	err := lexError(t, "1 + .")
	if err.Msg != "Standalone '.' is not a valid number" {
		t.Errorf("unexpected message: %q", err.Msg)
	}
	if err.Incomplete {
		t.Error("standalone dot must not be incomplete")
	}
	if err.Offset != 4 {
		t.Errorf("expected offset 4, got %d", err.Offset)
	}
}

func TestInvalidExponent(t *testing.T) {
	for _, input := range []string{"1e", "1e+", "3.2E-"} {
		err := lexError(t, input)
		if err.Msg != "Invalid exponent in number literal" {
			t.Errorf("%q: unexpected message %q", input, err.Msg)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	result := mustTokenize(t, `"a\nb\t\"q\"\\\r"`)
	tok := result.Tokens[0]
	if tok.Type != STRING {
		t.Fatalf("expected string, got %s", tok.Type)
	}
	if tok.Lexeme != "a\nb\t\"q\"\\\r" {
		t.Errorf("unexpected decoded value: %q", tok.Lexeme)
	}
}

func TestInvalidEscape(t *testing.T) {
	err := lexError(t, `"\q"`)
	if err.Msg != `Invalid escape sequence '\q'` {
		t.Errorf("unexpected message: %q", err.Msg)
	}
	if err.Offset != 1 {
		t.Errorf("expected offset 1, got %d", err.Offset)
	}
}

func TestUnterminatedStringAtEOFIsIncomplete(t *testing.T) {
	err := lexError(t, `"abc`)
	if err.Msg != "Unterminated string literal" {
		t.Errorf("unexpected message: %q", err.Msg)
	}
	if !err.Incomplete {
		t.Error("running off the end of a string must be incomplete")
	}
}

func TestStringWithLiteralNewlineIsFatal(t *testing.T) {
	err := lexError(t, "\"abc\ndef\"")
	if err.Msg != "Unterminated string literal" {
		t.Errorf("unexpected message: %q", err.Msg)
	}
	if err.Incomplete {
		t.Error("a newline inside a string is fatal, not incomplete")
	}
}

func TestRawStrings(t *testing.T) {
	result := mustTokenize(t, `r"\n"`)
	if result.Tokens[0].Lexeme != `\n` {
		t.Errorf("raw string must not decode escapes, got %q", result.Tokens[0].Lexeme)
	}

	result = mustTokenize(t, `r#"a "quote" inside"#`)
	if result.Tokens[0].Lexeme != `a "quote" inside` {
		t.Errorf("unexpected raw string value: %q", result.Tokens[0].Lexeme)
	}

	result = mustTokenize(t, `r##"ends with "# still open"##`)
	if result.Tokens[0].Lexeme != `ends with "# still open` {
		t.Errorf("unexpected raw string value: %q", result.Tokens[0].Lexeme)
	}
}

func TestRawStringSpansLines(t *testing.T) {
	result := mustTokenize(t, "r\"one\ntwo\" x")
	if result.Tokens[0].Lexeme != "one\ntwo" {
		t.Errorf("unexpected raw string value: %q", result.Tokens[0].Lexeme)
	}
	// the line index must still cover the embedded newline
	loc := result.LineIndex.LocationFor(result.Tokens[1].Span.Start)
	if loc.Line != 2 || loc.Column != 6 {
		t.Errorf("expected 2:6, got %d:%d", loc.Line, loc.Column)
	}
}

func TestUnterminatedRawStringIsIncomplete(t *testing.T) {
	err := lexError(t, `r#"abc`)
	if err.Msg != "Unterminated raw string literal" {
		t.Errorf("unexpected message: %q", err.Msg)
	}
	if !err.Incomplete {
		t.Error("running off the end of a raw string must be incomplete")
	}
}

func TestRPrefixWithoutQuoteIsIdentifier(t *testing.T) {
	result := mustTokenize(t, "r rx")
	if result.Tokens[0].Type != IDENTIFIER || result.Tokens[0].Lexeme != "r" {
		t.Errorf("expected identifier 'r', got %s %q", result.Tokens[0].Type, result.Tokens[0].Lexeme)
	}
	if result.Tokens[1].Type != IDENTIFIER || result.Tokens[1].Lexeme != "rx" {
		t.Errorf("expected identifier 'rx', got %s %q", result.Tokens[1].Type, result.Tokens[1].Lexeme)
	}
	// 'r#' not followed by a quote is an identifier then an error on '#'
	if _, err := Tokenize("r#x"); err == nil {
		t.Error("expected an error for 'r#x'")
	}
}

func TestLineComments(t *testing.T) {
	result := mustTokenize(t, "1 // ignored\n2")
	if len(result.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(result.Tokens))
	}
	if result.Tokens[0].Lexeme != "1" || result.Tokens[1].Lexeme != "2" {
		t.Errorf("unexpected tokens: %q %q", result.Tokens[0].Lexeme, result.Tokens[1].Lexeme)
	}
}

func TestNestedBlockComments(t *testing.T) {
	result := mustTokenize(t, "1 /* a /* nested */ b */ 2")
	if len(result.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(result.Tokens))
	}
	if result.Tokens[1].Lexeme != "2" {
		t.Errorf("expected '2' after comment, got %q", result.Tokens[1].Lexeme)
	}
}

func TestUnterminatedBlockCommentIsIncomplete(t *testing.T) {
	err := lexError(t, "1 /* still open")
	if err.Msg != "Unterminated block comment" {
		t.Errorf("unexpected message: %q", err.Msg)
	}
	if !err.Incomplete {
		t.Error("running off the end of a block comment must be incomplete")
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	err := lexError(t, "1 + @")
	if err.Msg != "Unexpected character '@'" {
		t.Errorf("unexpected message: %q", err.Msg)
	}
	if err.Location.Line != 1 || err.Location.Column != 5 {
		t.Errorf("expected 1:5, got %d:%d", err.Location.Line, err.Location.Column)
	}
}

func TestEOFTokenIsZeroWidthAtEnd(t *testing.T) {
	result := mustTokenize(t, "abc")
	last := result.Tokens[len(result.Tokens)-1]
	if last.Type != EOF {
		t.Fatalf("expected trailing eof token, got %s", last.Type)
	}
	if last.Span.Start != 3 || last.Span.End != 3 {
		t.Errorf("expected zero-width span at 3, got %v", last.Span)
	}
}

func TestTokenSpans(t *testing.T) {
	result := mustTokenize(t, "let x = 10")
	expected := []struct{ start, end int }{
		{0, 3}, {4, 5}, {6, 7}, {8, 10},
	}
	for i, exp := range expected {
		span := result.Tokens[i].Span
		if span.Start != exp.start || span.End != exp.end {
			t.Errorf("token %d: expected span [%d,%d), got [%d,%d)", i, exp.start, exp.end, span.Start, span.End)
		}
	}
}

func TestErrorLocationOnLaterLine(t *testing.T) {
	err := lexError(t, "let a = 1\nlet b = \"oops\nlet c = 2")
	if err.Location.Line != 2 || err.Location.Column != 9 {
		t.Errorf("expected 2:9, got %d:%d", err.Location.Line, err.Location.Column)
	}
}
