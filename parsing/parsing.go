package parsing

import (
	"errors"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sosodev/duration"

	"github.com/io7m-com/jproperties"
)

// ParseFunc parses the text value associated with a key, returning an error
// if the value cannot be parsed for any reason.
type ParseFunc[T any] func(key, value string) (T, error)

// lift converts an error-returning call into a Result. The accessor errors
// of the root package never escape this layer as plain errors.
func lift[T any](f func() (T, error)) Result[T] {
	value, err := f()
	if err != nil {
		return failure[T](err, nil, []Error{Error(err.Error())})
	}
	return success(value, nil, nil)
}

func couldNotParseAs(key, text, format string, cause error) Error {
	sb := new(strings.Builder)
	sb.WriteString("Key '")
	sb.WriteString(key)
	sb.WriteString("' with value '")
	sb.WriteString(text)
	sb.WriteString("' could not be parsed as ")
	sb.WriteString(format)
	sb.WriteString(": ")
	sb.WriteString(cause.Error())
	return Error(sb.String())
}

func fromText[T any](key, text, format string, parse func(string) (T, error)) Result[T] {
	value, err := parse(text)
	if err != nil {
		return failure[T](err, nil, []Error{couldNotParseAs(key, text, format, err)})
	}
	return success(value, nil, nil)
}

// Any looks up key and applies the given parser to its text value. Any error
// from the parser becomes a Failure whose message names the target format;
// format should be worded like "a URI" or "an ISO duration". An absent key
// is a Failure wrapping a NonexistentError.
func Any[T any](p jproperties.Properties, key, format string, parser ParseFunc[T]) Result[T] {
	return FlatMap(String(p, key), func(text string) Result[T] {
		return fromText(key, text, format, func(s string) (T, error) {
			return parser(key, s)
		})
	})
}

// AnyOptional behaves as Any except that an absent key yields a successful
// absent Option instead of a Failure.
func AnyOptional[T any](p jproperties.Properties, key, format string, parser ParseFunc[T]) Result[Option[T]] {
	return FlatMap(StringOptional(p, key), func(option Option[string]) Result[Option[T]] {
		text, present := option.Get()
		if !present {
			return SuccessOf(None[T]())
		}
		parsed := fromText(key, text, format, func(s string) (T, error) {
			return parser(key, s)
		})
		return FlatMap(parsed, func(value T) Result[Option[T]] {
			return SuccessOf(Some(value))
		})
	})
}

// AnyWithDefault behaves as Any except that an absent key yields the given
// default value. A present but unparseable value still fails.
func AnyWithDefault[T any](p jproperties.Properties, key, format string, defaultValue T, parser ParseFunc[T]) Result[T] {
	return FlatMap(AnyOptional(p, key, format, parser), func(option Option[T]) Result[T] {
		return SuccessOf(option.OrElse(defaultValue))
	})
}

// String parses a string value.
func String(p jproperties.Properties, key string) Result[string] {
	return lift(func() (string, error) {
		return jproperties.GetString(p, key)
	})
}

// StringOptional parses a string value, yielding an absent Option if the
// key does not exist.
func StringOptional(p jproperties.Properties, key string) Result[Option[string]] {
	return lift(func() (Option[string], error) {
		text, found, err := jproperties.GetStringOptional(p, key)
		if err != nil {
			return None[string](), err
		}
		if !found {
			return None[string](), nil
		}
		return Some(text), nil
	})
}

// StringWithDefault parses a string value, returning the default value if
// the key does not exist.
func StringWithDefault(p jproperties.Properties, key, defaultValue string) Result[string] {
	return lift(func() (string, error) {
		return jproperties.GetStringWithDefault(p, key, defaultValue)
	})
}

// Boolean parses a boolean value.
func Boolean(p jproperties.Properties, key string) Result[bool] {
	return lift(func() (bool, error) {
		return jproperties.GetBoolean(p, key)
	})
}

// BooleanWithDefault parses a boolean value, returning the default value if
// the key does not exist.
func BooleanWithDefault(p jproperties.Properties, key string, defaultValue bool) Result[bool] {
	return AnyWithDefault(p, key, "a Boolean", defaultValue, parseBooleanText)
}

// BigInteger parses an arbitrary-precision integer.
func BigInteger(p jproperties.Properties, key string) Result[*big.Int] {
	return Any(p, key, "a BigInteger", parseBigIntegerText)
}

// BigIntegerWithDefault parses an arbitrary-precision integer, returning the
// default value if the key does not exist.
func BigIntegerWithDefault(p jproperties.Properties, key string, defaultValue *big.Int) Result[*big.Int] {
	return AnyWithDefault(p, key, "a BigInteger", defaultValue, parseBigIntegerText)
}

// BigDecimal parses an arbitrary-precision decimal.
func BigDecimal(p jproperties.Properties, key string) Result[decimal.Decimal] {
	return Any(p, key, "a BigDecimal", parseBigDecimalText)
}

// BigDecimalWithDefault parses an arbitrary-precision decimal, returning the
// default value if the key does not exist.
func BigDecimalWithDefault(p jproperties.Properties, key string, defaultValue decimal.Decimal) Result[decimal.Decimal] {
	return AnyWithDefault(p, key, "a BigDecimal", defaultValue, parseBigDecimalText)
}

// URI parses a URI reference.
func URI(p jproperties.Properties, key string) Result[*url.URL] {
	return Any(p, key, "a URI", parseURIText)
}

// URIWithDefault parses a URI reference, returning the default value if the
// key does not exist.
func URIWithDefault(p jproperties.Properties, key string, defaultValue *url.URL) Result[*url.URL] {
	return AnyWithDefault(p, key, "a URI", defaultValue, parseURIText)
}

// UUID parses a canonical hyphenated UUID.
func UUID(p jproperties.Properties, key string) Result[uuid.UUID] {
	return Any(p, key, "a UUID", parseUUIDText)
}

// UUIDWithDefault parses a canonical hyphenated UUID, returning the default
// value if the key does not exist.
func UUIDWithDefault(p jproperties.Properties, key string, defaultValue uuid.UUID) Result[uuid.UUID] {
	return AnyWithDefault(p, key, "a UUID", defaultValue, parseUUIDText)
}

// Duration parses an ISO-8601 duration such as "PT15M".
func Duration(p jproperties.Properties, key string) Result[time.Duration] {
	return Any(p, key, "an ISO duration", parseDurationText)
}

// DurationWithDefault parses an ISO-8601 duration, returning the default
// value if the key does not exist.
func DurationWithDefault(p jproperties.Properties, key string, defaultValue time.Duration) Result[time.Duration] {
	return AnyWithDefault(p, key, "an ISO duration", defaultValue, parseDurationText)
}

// OffsetDateTime parses an RFC 3339 date-time with offset, such as
// "2000-01-01T00:00:00+00:20".
func OffsetDateTime(p jproperties.Properties, key string) Result[time.Time] {
	return Any(p, key, "an ISO offset date time", parseOffsetDateTimeText)
}

// OffsetDateTimeWithDefault parses an RFC 3339 date-time with offset,
// returning the default value if the key does not exist.
func OffsetDateTimeWithDefault(p jproperties.Properties, key string, defaultValue time.Time) Result[time.Time] {
	return AnyWithDefault(p, key, "an ISO offset date time", defaultValue, parseOffsetDateTimeText)
}

func parseBooleanText(_, value string) (bool, error) {
	if strings.EqualFold(value, "true") {
		return true, nil
	}
	if strings.EqualFold(value, "false") {
		return false, nil
	}
	return false, errors.New(`must be "true" or "false" (case insensitive)`)
}

func parseBigIntegerText(_, value string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, errors.New("invalid base 10 integer literal")
	}
	return i, nil
}

func parseBigDecimalText(_, value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

func parseURIText(_, value string) (*url.URL, error) {
	return url.Parse(value)
}

func parseUUIDText(_, value string) (uuid.UUID, error) {
	if len(value) != 36 {
		return uuid.UUID{}, errors.New("UUID must use the canonical hyphenated form")
	}
	return uuid.Parse(value)
}

func parseDurationText(_, value string) (time.Duration, error) {
	d, err := duration.Parse(value)
	if err != nil {
		return 0, err
	}
	return d.ToTimeDuration(), nil
}

func parseOffsetDateTimeText(_, value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
