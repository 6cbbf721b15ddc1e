// Package main demonstrates usage of the scg-result packages.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/internal/logging"
	"github.com/next-trace/scg-result/result"
)

type newErrorCode uint32

const newOne newErrorCode = 10002

var (
	errExample                    = apiError.New(10001, "An Error Message!")
	errExampleWithOptionalMessage = apiError.New(newOne, "An Error Message!", apiError.WithOptionalMessage("Opt!"))
)

// stringViewError is a string-shaped error type; it must differ from the string payload.
type stringViewError string

func main() {
	jsonOut := pflag.Bool("json", false, "Use the JSON production encoder")
	quiet := pflag.Bool("quiet", false, "Only log warnings and errors")
	pflag.Parse()

	level := zapcore.DebugLevel
	if *quiet {
		level = zapcore.WarnLevel
	}

	logger, err := logging.NewWithConfig(logging.Config{Production: *jsonOut, Level: level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Void success: a placeholder payload is still present.
	okVoid := result.MakeOk[result.Void, apiError.Error]()
	_, hasValue := okVoid.Ok()
	logger.Info("result_ok_void", logging.Outcome("result", okVoid), logging.Any("has_value", hasValue))

	// Void failure, annotated further up the call chain.
	errVoid := result.MakeErrWith[result.Void](errExample)
	logger.Warn("result_error_void",
		logging.Failure("error", errVoid.UnwrapErr()),
		logging.Failure("annotated", errVoid.UnwrapErr().AddOptionalMessage("Optional Message!")),
	)

	okString := result.Ok("123456")
	logger.Info("result_ok_string1",
		logging.String("value", okString.Unwrap()),
		logging.String("shared", fmt.Sprintf("%p", okString.SharedOk())),
	)

	repeat := func(n int, c rune) string { return strings.Repeat(string(c), n) }
	inPlace := result.MakeOkFrom2[string, apiError.Error](repeat, 6, 'a')
	if v, ok := inPlace.Ok(); ok {
		logger.Info("result_ok_string2", logging.String("value", v))
	}

	logger.Info("result_ok_string3", logging.Outcome("result", result.MakeOk[string, apiError.Error]()))

	logger.Warn("result_error_string1",
		logging.Failure("error", result.Err[string](errExampleWithOptionalMessage).UnwrapErr()))
	logger.Warn("result_error_string2",
		logging.Failure("error", result.MakeErr[string, apiError.Error]().UnwrapErr()))

	okInt := result.Ok(12138)
	copied := okInt
	logger.Info("result_ok_int1",
		logging.Int("value", okInt.Unwrap()),
		logging.Any("aliased", okInt.SharedOk() == copied.SharedOk()),
	)
	logger.Info("result_ok_int2", logging.Int("value", result.MakeOk[int, apiError.Error]().Unwrap()))

	okMap := result.Ok(map[string]int{"k1": 1, "k2": 2})
	mp := *okMap.SharedOk()
	keys := make([]string, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		logger.Info("result_ok_unordered_map1", logging.String("key", k), logging.Int("value", mp[k]))
	}

	textErr := result.MakeErrWith[string, stringViewError]("string_view error message!")
	logger.Warn("result_string_view_error_string1", logging.String("error", textErr.UnwrapErr()))

	var unset result.Of[int]
	logger.Debug("zero value", logging.Any("undefined", unset.IsUndefined()))
}
