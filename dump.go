package tidylog

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

// maxDumpDepth bounds recursion so deeply nested values cannot overflow
// the stack.
const maxDumpDepth = 10

// Dump logs the contents of v at debug level: exported struct fields, map
// and slice elements, and plain values. Pointer cycles are detected and
// reported instead of recursed into.
func (l *Logger) Dump(v interface{}) {
	logger := l.active()
	if logger == nil {
		return
	}

	if v == nil {
		logger.Debug().Msg("Dump: <nil>")
		return
	}

	visited := make(map[uintptr]bool)
	dumpValue(logger, v, emptyString, visited, 0)
}

func dumpValue(logger *zerolog.Logger, v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		logger.Debug().Msgf("%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		logger.Debug().Msgf("%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, recording pointer targets so cycles
	// terminate.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			logger.Debug().Msgf("%s: <nil>", prefix)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				logger.Debug().Msgf("%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			logger.Debug().Msgf("Struct: %s", typ.Name())
		} else {
			logger.Debug().Msgf("%s: %s {", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			dumpValue(logger, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			logger.Debug().Msgf("%s: }", prefix)
		}

	case reflect.Map:
		logger.Debug().Msgf("%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			dumpValue(logger, iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1)
		}

		logger.Debug().Msgf("%s: }", prefix)

	case reflect.Slice, reflect.Array:
		logger.Debug().Msgf("%s: %s (len: %d) {", prefix, typ.String(), val.Len())

		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			dumpValue(logger, val.Index(i).Interface(), elemPrefix, visited, depth+1)
		}
		if val.Len() > maxElements {
			logger.Debug().Msgf("%s: ... (%d more elements)", prefix, val.Len()-maxElements)
		}

		logger.Debug().Msgf("%s: }", prefix)

	default:
		logger.Debug().Msgf("%s: %v", prefix, val.Interface())
	}
}
