package postgres

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// ErrPlaceholderMismatch is returned when the number of '?' placeholders and
// arguments differ.
var ErrPlaceholderMismatch = errors.New("placeholder count does not match arguments")

const timestampLayout = "2006-01-02 15:04:05.999999-07:00"

// Inline renders s with every argument substituted as a SQL literal.
// s must use '?' placeholders (see Builder).
//
// The result is meant for logs, previews and tests. Statements sent to the
// database keep their placeholders.
func Inline(s squirrel.Sqlizer) (string, error) {
	sql, args, err := s.ToSql()
	if err != nil {
		return "", err
	}
	return InlineArgs(sql, args)
}

// InlineArgs substitutes args into the '?' placeholders of sql. Question marks
// inside quoted literals are left alone and "??" renders a single '?'.
func InlineArgs(sql string, args []any) (string, error) {
	var (
		buf     strings.Builder
		next    int
		inQuote bool
	)
	buf.Grow(len(sql) + 16*len(args))

	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			buf.WriteByte(c)
		case c == '?' && !inQuote:
			if i+1 < len(sql) && sql[i+1] == '?' {
				buf.WriteByte('?')
				i++
				continue
			}
			if next >= len(args) {
				return "", fmt.Errorf("%w: more than %d placeholders", ErrPlaceholderMismatch, len(args))
			}
			lit, err := Literal(args[next])
			if err != nil {
				return "", fmt.Errorf("argument %d: %w", next+1, err)
			}
			buf.WriteString(lit)
			next++
		default:
			buf.WriteByte(c)
		}
	}

	if next != len(args) {
		return "", fmt.Errorf("%w: %d placeholders, %d arguments", ErrPlaceholderMismatch, next, len(args))
	}
	return buf.String(), nil
}

// Literal renders one argument as a SQL literal.
func Literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(x), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case decimal.Decimal:
		return x.String(), nil
	case string:
		return quote(x), nil
	case []byte:
		return quote(string(x)), nil
	case time.Time:
		return quote(x.Format(timestampLayout)), nil
	case driver.Valuer:
		val, err := x.Value()
		if err != nil {
			return "", err
		}
		if _, again := val.(driver.Valuer); again {
			return "", fmt.Errorf("valuer %T returned another valuer", v)
		}
		return Literal(val)
	case fmt.Stringer:
		return quote(x.String()), nil
	}
	return "", fmt.Errorf("cannot inline argument of type %T", v)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
