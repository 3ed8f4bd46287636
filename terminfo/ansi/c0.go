package ansi

// C0 control bytes that show up in compiled terminal descriptions.
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	VT  uint8 // VT is the vertical tab character (Caret: ^K, Char: \v).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	SO  uint8 // SO is the shift out character (Caret: ^N).
	SI  uint8 // SI is the shift in character (Caret: ^O).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	DEL uint8 // DEL is the delete character (Caret: ^?).
}

// C0 (7-bit) control characters from ANSI, plus DEL.
//
// see https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	SO:  0x0E,
	SI:  0x0F,
	ESC: 0x1b,
	DEL: 0x7F,
}
