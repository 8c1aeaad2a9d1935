package enumwire

// tokenKind enumerates wire token kinds.
type tokenKind int

const (
	_tokenBeginObject tokenKind = iota
	_tokenEndObject
	_tokenBeginArray
	_tokenEndArray
	_tokenKey
	_tokenString
	_tokenNumber
	_tokenBool
	_tokenNull
)

// Exported alias so callers can branch on token kinds without relying on
// unstable APIs. The alias and constants mirror the internal tokenKind.
type TokenKind = tokenKind

const (
	TokenBeginObject TokenKind = _tokenBeginObject
	TokenEndObject   TokenKind = _tokenEndObject
	TokenBeginArray  TokenKind = _tokenBeginArray
	TokenEndArray    TokenKind = _tokenEndArray
	TokenKey         TokenKind = _tokenKey
	TokenString      TokenKind = _tokenString
	TokenNumber      TokenKind = _tokenNumber
	TokenBool        TokenKind = _tokenBool
	TokenNull        TokenKind = _tokenNull
)

// Token describes one decoded wire token. Offset records the byte position
// when known (-1 otherwise). Numbers are kept as text; interpretation is up
// to the consumer.
type Token struct {
	Kind   tokenKind
	String string // Stored for key/string tokens.
	Number string // Stored as text.
	Bool   bool
	Offset int64
}

// StringToken wraps a decoded string as a scalar token.
func StringToken(s string) Token { return Token{Kind: _tokenString, String: s, Offset: -1} }

// NumberToken wraps number text as a scalar token.
func NumberToken(text string) Token { return Token{Kind: _tokenNumber, Number: text, Offset: -1} }

// NullToken returns the null scalar token.
func NullToken() Token { return Token{Kind: _tokenNull, Offset: -1} }
