package parser

var KEYWORDS = map[string]TokenType{
	"let":   LET,
	"fn":    FN,
	"if":    IF,
	"else":  ELSE,
	"for":   FOR,
	"while": WHILE,
	"in":    IN,
	"true":  TRUE,
	"false": FALSE,
}
