package request

import (
	"errors"
	"strings"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

const (
	// Letters, digits, '_' and '-', not starting or ending with a separator.
	codeRegexPattern = `^(?![-_])[A-Za-z0-9_-]+(?<![-_])$`
	// Letters, digits, '.', '_' and '-', not starting or ending with a dot.
	usernameRegexPattern = `^(?!\.)[A-Za-z0-9._-]+(?<!\.)$`
)

var (
	codeRegex     = regexp2.MustCompile(codeRegexPattern, regexp2.None)
	usernameRegex = regexp2.MustCompile(usernameRegexPattern, regexp2.None)
)

var (
	errInvalidCode     = errors.New("must contain only letters, digits, '_' or '-' and not start or end with a separator")
	errInvalidUsername = errors.New("must contain only letters, digits, '.', '_' or '-' and not start or end with a dot")
	errBlank           = errors.New("cannot be blank")
	errNegative        = errors.New("must not be negative")
	errNotPositiveInt  = errors.New("must be a positive whole number")
	errNotDecimal      = errors.New("must be a number")
	errTooLarge        = errors.New("must be no greater than " + domain.MaxAmount.String())
)

func matchRegexp2(re *regexp2.Regexp, ruleErr error) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}

		ok, err := re.MatchString(s)
		if err != nil {
			return err
		}
		if !ok {
			return ruleErr
		}

		return nil
	}
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errBlank
	}

	return nil
}

func asDecimal(value interface{}) (decimal.Decimal, bool, error) {
	switch v := value.(type) {
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false, nil
		}
		return *v, true, nil
	case decimal.Decimal:
		return v, true, nil
	default:
		return decimal.Decimal{}, false, errNotDecimal
	}
}

func nonNegative(value interface{}) error {
	d, ok, err := asDecimal(value)
	if err != nil || !ok {
		return err
	}
	if d.IsNegative() {
		return errNegative
	}

	return nil
}

func withinMaxAmount(value interface{}) error {
	d, ok, err := asDecimal(value)
	if err != nil || !ok {
		return err
	}
	if d.GreaterThan(domain.MaxAmount) {
		return errTooLarge
	}

	return nil
}

func positiveInteger(value interface{}) error {
	d, ok, err := asDecimal(value)
	if err != nil || !ok {
		return err
	}
	if !d.IsInteger() || d.LessThan(decimal.NewFromInt(1)) || d.GreaterThan(decimal.NewFromInt(1_000_000)) {
		return errNotPositiveInt
	}

	return nil
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	return *d
}
