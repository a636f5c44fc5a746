package jproperties

import (
	"math"
	"math/big"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sosodev/duration"
)

// converter coerces the raw text stored under a key into a typed value.
// Implementations return an IncorrectTypeError on failure.
type converter[T any] func(key, text string) (T, error)

func get[T any](p Properties, key string, conv converter[T]) (T, error) {
	var zero T
	text, found := p.Lookup(key)
	if !found {
		return zero, notFound(key)
	}
	return conv(key, text)
}

func getWithDefault[T any](p Properties, key string, def T, conv converter[T]) (T, error) {
	text, found := p.Lookup(key)
	if !found {
		return def, nil
	}
	return conv(key, text)
}

func getOptional[T any](p Properties, key string, conv converter[T]) (T, bool, error) {
	var zero T
	text, found := p.Lookup(key)
	if !found {
		return zero, false, nil
	}
	val, err := conv(key, text)
	if err != nil {
		return zero, false, err
	}
	return val, true, nil
}

// GetString returns the value associated with key, verbatim.
func GetString(p Properties, key string) (string, error) {
	return get(p, key, convString)
}

// GetStringWithDefault returns the value associated with key, or def if the
// key is absent.
func GetStringWithDefault(p Properties, key, def string) (string, error) {
	return getWithDefault(p, key, def, convString)
}

// GetStringOptional returns the value associated with key if it exists.
func GetStringOptional(p Properties, key string) (string, bool, error) {
	return getOptional(p, key, convString)
}

// GetBoolean returns the value associated with key, parsed as a boolean.
// A boolean value is syntactically the strings "true" or "false", case
// insensitive.
func GetBoolean(p Properties, key string) (bool, error) {
	return get(p, key, convBoolean)
}

// GetBooleanWithDefault behaves as GetBoolean, returning def if the key is
// absent. A present but malformed value still fails.
func GetBooleanWithDefault(p Properties, key string, def bool) (bool, error) {
	return getWithDefault(p, key, def, convBoolean)
}

// GetBooleanOptional returns the value associated with key parsed as a
// boolean if the key exists.
func GetBooleanOptional(p Properties, key string) (bool, bool, error) {
	return getOptional(p, key, convBoolean)
}

// GetBigInteger returns the value associated with key, parsed as an
// arbitrary-precision integer.
func GetBigInteger(p Properties, key string) (*big.Int, error) {
	return get(p, key, convBigInteger)
}

// GetBigIntegerWithDefault behaves as GetBigInteger, returning def if the
// key is absent.
func GetBigIntegerWithDefault(p Properties, key string, def *big.Int) (*big.Int, error) {
	return getWithDefault(p, key, def, convBigInteger)
}

// GetBigIntegerOptional returns the value associated with key parsed as an
// arbitrary-precision integer if the key exists.
func GetBigIntegerOptional(p Properties, key string) (*big.Int, bool, error) {
	return getOptional(p, key, convBigInteger)
}

// GetBigDecimal returns the value associated with key, parsed as an
// arbitrary-precision decimal.
func GetBigDecimal(p Properties, key string) (decimal.Decimal, error) {
	return get(p, key, convBigDecimal)
}

// GetBigDecimalWithDefault behaves as GetBigDecimal, returning def if the
// key is absent.
func GetBigDecimalWithDefault(p Properties, key string, def decimal.Decimal) (decimal.Decimal, error) {
	return getWithDefault(p, key, def, convBigDecimal)
}

// GetBigDecimalOptional returns the value associated with key parsed as an
// arbitrary-precision decimal if the key exists.
func GetBigDecimalOptional(p Properties, key string) (decimal.Decimal, bool, error) {
	return getOptional(p, key, convBigDecimal)
}

// GetInt returns the value associated with key, parsed as an integer and
// range-checked against the machine int width.
func GetInt(p Properties, key string) (int, error) {
	return get(p, key, convInt)
}

// GetIntWithDefault behaves as GetInt, returning def if the key is absent.
func GetIntWithDefault(p Properties, key string, def int) (int, error) {
	return getWithDefault(p, key, def, convInt)
}

// GetIntOptional returns the value associated with key parsed as an int if
// the key exists.
func GetIntOptional(p Properties, key string) (int, bool, error) {
	return getOptional(p, key, convInt)
}

// GetInt32 returns the value associated with key, parsed as an integer and
// range-checked against the 32-bit width.
func GetInt32(p Properties, key string) (int32, error) {
	return get(p, key, convInt32)
}

// GetInt32WithDefault behaves as GetInt32, returning def if the key is
// absent.
func GetInt32WithDefault(p Properties, key string, def int32) (int32, error) {
	return getWithDefault(p, key, def, convInt32)
}

// GetInt32Optional returns the value associated with key parsed as an int32
// if the key exists.
func GetInt32Optional(p Properties, key string) (int32, bool, error) {
	return getOptional(p, key, convInt32)
}

// GetInt64 returns the value associated with key, parsed as an integer and
// range-checked against the 64-bit width.
func GetInt64(p Properties, key string) (int64, error) {
	return get(p, key, convInt64)
}

// GetInt64WithDefault behaves as GetInt64, returning def if the key is
// absent.
func GetInt64WithDefault(p Properties, key string, def int64) (int64, error) {
	return getWithDefault(p, key, def, convInt64)
}

// GetInt64Optional returns the value associated with key parsed as an int64
// if the key exists.
func GetInt64Optional(p Properties, key string) (int64, bool, error) {
	return getOptional(p, key, convInt64)
}

// GetFloat64 returns the value associated with key, parsed as a decimal and
// narrowed to a 64-bit float.
func GetFloat64(p Properties, key string) (float64, error) {
	return get(p, key, convFloat64)
}

// GetFloat64WithDefault behaves as GetFloat64, returning def if the key is
// absent.
func GetFloat64WithDefault(p Properties, key string, def float64) (float64, error) {
	return getWithDefault(p, key, def, convFloat64)
}

// GetFloat64Optional returns the value associated with key parsed as a
// float64 if the key exists.
func GetFloat64Optional(p Properties, key string) (float64, bool, error) {
	return getOptional(p, key, convFloat64)
}

// GetURI returns the value associated with key, parsed as a URI reference.
func GetURI(p Properties, key string) (*url.URL, error) {
	return get(p, key, convURI)
}

// GetURIWithDefault behaves as GetURI, returning def if the key is absent.
func GetURIWithDefault(p Properties, key string, def *url.URL) (*url.URL, error) {
	return getWithDefault(p, key, def, convURI)
}

// GetURIOptional returns the value associated with key parsed as a URI if
// the key exists.
func GetURIOptional(p Properties, key string) (*url.URL, bool, error) {
	return getOptional(p, key, convURI)
}

// GetUUID returns the value associated with key, parsed as a canonical
// hyphenated UUID.
func GetUUID(p Properties, key string) (uuid.UUID, error) {
	return get(p, key, convUUID)
}

// GetUUIDWithDefault behaves as GetUUID, returning def if the key is absent.
func GetUUIDWithDefault(p Properties, key string, def uuid.UUID) (uuid.UUID, error) {
	return getWithDefault(p, key, def, convUUID)
}

// GetUUIDOptional returns the value associated with key parsed as a UUID if
// the key exists.
func GetUUIDOptional(p Properties, key string) (uuid.UUID, bool, error) {
	return getOptional(p, key, convUUID)
}

// GetIPAddress returns the value associated with key, resolved as a literal
// IP address or hostname. Hostname resolution is a blocking DNS lookup and
// can fail for transient network reasons, not just bad input.
func GetIPAddress(p Properties, key string) (net.IP, error) {
	return get(p, key, convIPAddress)
}

// GetIPAddressWithDefault behaves as GetIPAddress, returning def if the key
// is absent.
func GetIPAddressWithDefault(p Properties, key string, def net.IP) (net.IP, error) {
	return getWithDefault(p, key, def, convIPAddress)
}

// GetIPAddressOptional returns the value associated with key resolved as an
// IP address if the key exists.
func GetIPAddressOptional(p Properties, key string) (net.IP, bool, error) {
	return getOptional(p, key, convIPAddress)
}

// GetDuration returns the value associated with key, parsed as an ISO-8601
// duration such as "PT15M".
func GetDuration(p Properties, key string) (time.Duration, error) {
	return get(p, key, convDuration)
}

// GetDurationWithDefault behaves as GetDuration, returning def if the key is
// absent.
func GetDurationWithDefault(p Properties, key string, def time.Duration) (time.Duration, error) {
	return getWithDefault(p, key, def, convDuration)
}

// GetDurationOptional returns the value associated with key parsed as an
// ISO-8601 duration if the key exists.
func GetDurationOptional(p Properties, key string) (time.Duration, bool, error) {
	return getOptional(p, key, convDuration)
}

func convString(key, text string) (string, error) {
	return text, nil
}

func convBoolean(key, text string) (bool, error) {
	if strings.EqualFold(text, "true") {
		return true, nil
	}
	if strings.EqualFold(text, "false") {
		return false, nil
	}
	return false, incorrectType(nil, key, text, "Boolean")
}

func convBigInteger(key, text string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, incorrectType(nil, key, text, "Integer")
	}
	return i, nil
}

func convBigDecimal(key, text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, incorrectType(err, key, text, "Real")
	}
	return d, nil
}

func convInt(key, text string) (int, error) {
	i, err := convBigInteger(key, text)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, incorrectType(nil, key, text, "int")
	}
	v := i.Int64()
	if v < math.MinInt || v > math.MaxInt {
		return 0, incorrectType(nil, key, text, "int")
	}
	return int(v), nil
}

func convInt32(key, text string) (int32, error) {
	i, err := convBigInteger(key, text)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, incorrectType(nil, key, text, "int32")
	}
	v := i.Int64()
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, incorrectType(nil, key, text, "int32")
	}
	return int32(v), nil
}

func convInt64(key, text string) (int64, error) {
	i, err := convBigInteger(key, text)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, incorrectType(nil, key, text, "int64")
	}
	return i.Int64(), nil
}

func convFloat64(key, text string) (float64, error) {
	d, err := convBigDecimal(key, text)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func convURI(key, text string) (*url.URL, error) {
	u, err := url.Parse(text)
	if err != nil {
		return nil, incorrectType(err, key, text, "URI")
	}
	return u, nil
}

func convUUID(key, text string) (uuid.UUID, error) {
	// uuid.Parse accepts several non-canonical encodings; only the
	// hyphenated 8-4-4-4-12 form is valid here.
	if len(text) != 36 {
		return uuid.UUID{}, incorrectType(nil, key, text, "UUID")
	}
	u, err := uuid.Parse(text)
	if err != nil {
		return uuid.UUID{}, incorrectType(err, key, text, "UUID")
	}
	return u, nil
}

func convIPAddress(key, text string) (net.IP, error) {
	addr, err := net.ResolveIPAddr("ip", text)
	if err != nil {
		return nil, incorrectType(err, key, text, "InetAddress")
	}
	return addr.IP, nil
}

func convDuration(key, text string) (time.Duration, error) {
	d, err := duration.Parse(text)
	if err != nil {
		return 0, incorrectType(err, key, text, "Duration")
	}
	return d.ToTimeDuration(), nil
}
