package result_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/result"
)

type (
	sameKind string
	emptyErr struct{}
)

func TestInstantiationRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func()
		invalid bool
	}{
		{"same body and error", func() { result.MakeOkWith[string, string]("x") }, true},
		{"same named types", func() { result.MakeErr[sameKind, sameKind]() }, true},
		{"interface error", func() { result.MakeErrWith[int, error](errors.New("x")) }, true},
		{"pointer error", func() { result.MakeOk[int, *apiError.Error]() }, true},
		{"func error", func() { result.MakeOk[int, func()]() }, true},
		{"chan error", func() { result.MakeOk[int, chan int]() }, true},
		{"zero-size error", func() { result.MakeOk[int, emptyErr]() }, true},
		{"void error", func() { result.MakeOk[int, result.Void]() }, true},
		{"void body", func() { result.MakeOk[result.Void, apiError.Error]() }, false},
		{"interface body", func() { result.MakeOkWith[any, apiError.Error](1) }, false},
		{"pointer body", func() { result.MakeOkWith[*int, apiError.Error](nil) }, false},
		{"string-shaped error", func() { result.MakeErr[string, sameKind]() }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := recovered(tc.build)
			if !tc.invalid {
				assert.Nil(t, v)
				return
			}

			err, ok := v.(error)
			require.True(t, ok, "expected a panic carrying an error, got %v", v)
			assert.ErrorIs(t, err, result.ErrInvalidInstantiation)

			// The cached verdict must keep rejecting the pair.
			err, ok = recovered(tc.build).(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, result.ErrInvalidInstantiation)
		})
	}
}

func TestInstantiationCheckIsConcurrencySafe(t *testing.T) {
	t.Parallel()

	type payload struct{ n int }

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			r := result.Ok(payload{n: n})
			if r.Unwrap().n != n {
				t.Errorf("payload mismatch for %d", n)
			}
		}(i)
	}
	wg.Wait()
}
