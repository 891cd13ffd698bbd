package rpcskema

import (
	"io"

	eng "github.com/reoring/rpcskema/internal/engine"
	"github.com/reoring/rpcskema/source"
)

// Source is a stream of JSON tokens. Obtain one with JSONBytes or JSONReader.
type Source interface {
	tokens() eng.TokenSource
}

type tokenSource struct{ inner eng.TokenSource }

func (s tokenSource) tokens() eng.TokenSource { return s.inner }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return tokenSource{inner: source.NewBytes(b)} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return tokenSource{inner: source.NewReader(r)} }

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}
