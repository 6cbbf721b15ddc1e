package result

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrInvalidInstantiation is the panic value (wrapped) raised when a Result is
// constructed with a type pair that breaks the instantiation rules.
var ErrInvalidInstantiation = errors.New("result: invalid instantiation")

type typePair struct {
	body    reflect.Type
	failure reflect.Type
}

// validated caches the check outcome per instantiation: typePair -> error (nil when valid).
var validated sync.Map

func validate[T, E any]() {
	key := typePair{body: reflect.TypeFor[T](), failure: reflect.TypeFor[E]()}

	if v, ok := validated.Load(key); ok {
		if v != nil {
			panic(v)
		}
		return
	}

	err := checkTypes(key.body, key.failure)
	if err != nil {
		validated.Store(key, err)
		panic(err)
	}

	validated.Store(key, nil)
}

func checkTypes(body, failure reflect.Type) error {
	if body == failure {
		return fmt.Errorf("%w: body and error are both %s", ErrInvalidInstantiation, body)
	}

	switch failure.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Errorf("%w: error type %s is a %s, not a concrete value",
			ErrInvalidInstantiation, failure, failure.Kind())
	}

	if failure.Size() == 0 {
		return fmt.Errorf("%w: error type %s carries no value", ErrInvalidInstantiation, failure)
	}

	return nil
}
