//go:build !gojson

package gojson

import (
	"io"

	enumwire "github.com/reoring/enumwire"
	jsonsrc "github.com/reoring/enumwire/source/json"
)

// Driver returns a stub driver when the gojson tag is not enabled.
// It delegates to the encoding/json-based source directly to avoid recursion.
func Driver() enumwire.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) enumwire.Source {
	return enumwire.SourceFromEngine(jsonsrc.NewReader(r))
}
func (stub) NewBytes(b []byte) enumwire.Source {
	return enumwire.SourceFromEngine(jsonsrc.NewBytes(b))
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
