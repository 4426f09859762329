package wire

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestTokenizerBasic(t *testing.T) {
	c := qt.New(t)
	var tok Tokenizer
	tok.SetBuffer([]byte("2;abc-def;;9"), ";-")

	first, err := tok.Nth(1)
	c.Assert(err, qt.IsNil)
	c.Assert(string(first), qt.Equals, "2")

	second, err := tok.Nth(2)
	c.Assert(err, qt.IsNil)
	c.Assert(string(second), qt.Equals, "abc")

	third, err := tok.Nth(3)
	c.Assert(err, qt.IsNil)
	c.Assert(string(third), qt.Equals, "def")

	fourth, err := tok.Nth(4)
	c.Assert(err, qt.IsNil)
	c.Assert(string(fourth), qt.Equals, "9")

	fifth, err := tok.Nth(5)
	c.Assert(err, qt.IsNil)
	c.Assert(fifth, qt.IsNil)
}

func TestTokenizerLeadingAndTrailingDelimiters(t *testing.T) {
	c := qt.New(t)
	var tok Tokenizer
	tok.SetBuffer([]byte(";;x;;"), ";")
	toks := tok.Tokens()
	c.Assert(len(toks), qt.Equals, 1)
	c.Assert(string(toks[0]), qt.Equals, "x")
}

func TestTokenizerErrors(t *testing.T) {
	c := qt.New(t)
	var tok Tokenizer
	_, err := tok.Nth(1)
	c.Assert(err, qt.Equals, ErrNoBuffer)

	tok.SetBuffer([]byte("a;b"), ";")
	_, err = tok.Nth(0)
	c.Assert(err, qt.Equals, ErrInvalidIndex)
}

func TestTokenizerReset(t *testing.T) {
	c := qt.New(t)
	var tok Tokenizer
	tok.SetBuffer([]byte("a;b"), ";")
	tok.Reset()
	_, err := tok.Nth(1)
	c.Assert(err, qt.Equals, ErrNoBuffer)
}
