package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"

	"github.com/next-trace/scg-result/contract"
)

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Uint[S ~string, T constraints.Unsigned](s S, v T) Field {
	return zap.Uint64(string(s), uint64(v))
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Failure encodes e as a nested object with code, message and, when set,
// optional keys.
func Failure[S ~string](s S, e contract.Error) Field {
	return zap.Object(string(s), failure{e})
}

// Outcome encodes a result through its String form, e.g. "Ok(42)".
func Outcome[S ~string](s S, r fmt.Stringer) Field {
	return zap.Stringer(string(s), r)
}

type failure struct {
	e contract.Error
}

func (f failure) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("code", uint32(f.e.Code()))
	enc.AddString("message", f.e.Message())

	if opt, ok := f.e.OptionalMessage(); ok {
		enc.AddString("optional", opt)
	}

	return nil
}
