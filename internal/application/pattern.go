package application

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dmstrings/internal/domain"
	"dmstrings/internal/domain/entities"
)

func (c *Catalog) compile(expr string) (*regexp.Regexp, error) {
	if re, ok := c.patterns.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	c.patterns.Store(expr, re)
	return re, nil
}

// Pattern compiles the validation pattern stored under key, exactly as
// written.
func (c *Catalog) Pattern(locale, key string) (*regexp.Regexp, error) {
	if entities.KindOf(key) != entities.KindPattern {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotPattern, key)
	}
	src, err := c.Lookup(locale, key)
	if err != nil {
		return nil, err
	}
	re, err := c.compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", key, err)
	}
	return re, nil
}

// Validate reports whether the whole of value matches the pattern under key.
// Patterns are anchored on both ends, as for an HTML pattern attribute.
func (c *Catalog) Validate(locale, key, value string) (bool, error) {
	if entities.KindOf(key) != entities.KindPattern {
		return false, fmt.Errorf("%w: %q", domain.ErrNotPattern, key)
	}
	src, err := c.Lookup(locale, key)
	if err != nil {
		return false, err
	}
	re, err := c.compile("^(?:" + src + ")$")
	if err != nil {
		return false, fmt.Errorf("compile %s: %w", key, err)
	}
	return re.MatchString(value), nil
}

// FormatDate renders t with the date mask stored under key.
func (c *Catalog) FormatDate(locale, key string, t time.Time) (string, error) {
	if entities.KindOf(key) != entities.KindFormat {
		return "", fmt.Errorf("%w: %q", domain.ErrNotFormat, key)
	}
	mask, err := c.Lookup(locale, key)
	if err != nil {
		return "", err
	}
	return FormatMask(mask, t), nil
}

// FormatMask renders t with a dateformat-style mask: yyyy/yy year, mm/m month,
// dd/d day, HH/H and hh/h hours, MM/M minutes, ss/s seconds, TT/tt meridiem.
// Text in single or double quotes is copied verbatim, as is any other character.
func FormatMask(mask string, t time.Time) string {
	var b strings.Builder
	for i := 0; i < len(mask); {
		ch := mask[i]
		if ch == '\'' || ch == '"' {
			end := strings.IndexByte(mask[i+1:], ch)
			if end < 0 {
				b.WriteString(mask[i+1:])
				break
			}
			b.WriteString(mask[i+1 : i+1+end])
			i += end + 2
			continue
		}
		j := i
		for j < len(mask) && mask[j] == ch {
			j++
		}
		// Longest token first: "yyy" is "yy" then a literal "y".
		n := min(j-i, 4)
		for ; n > 0; n-- {
			if s, ok := maskToken(mask[i:i+n], t); ok {
				b.WriteString(s)
				break
			}
		}
		if n == 0 {
			b.WriteByte(ch)
			n = 1
		}
		i += n
	}
	return b.String()
}

func maskToken(run string, t time.Time) (string, bool) {
	pad := func(n int) string { return fmt.Sprintf("%02d", n) }
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}
	switch run {
	case "d":
		return strconv.Itoa(t.Day()), true
	case "dd":
		return pad(t.Day()), true
	case "ddd":
		return t.Format("Mon"), true
	case "dddd":
		return t.Weekday().String(), true
	case "m":
		return strconv.Itoa(int(t.Month())), true
	case "mm":
		return pad(int(t.Month())), true
	case "mmm":
		return t.Format("Jan"), true
	case "mmmm":
		return t.Month().String(), true
	case "yy":
		return pad(t.Year() % 100), true
	case "yyyy":
		return fmt.Sprintf("%04d", t.Year()), true
	case "h":
		return strconv.Itoa(hour12), true
	case "hh":
		return pad(hour12), true
	case "H":
		return strconv.Itoa(t.Hour()), true
	case "HH":
		return pad(t.Hour()), true
	case "M":
		return strconv.Itoa(t.Minute()), true
	case "MM":
		return pad(t.Minute()), true
	case "s":
		return strconv.Itoa(t.Second()), true
	case "ss":
		return pad(t.Second()), true
	case "t":
		return t.Format("pm")[:1], true
	case "tt":
		return t.Format("pm"), true
	case "T":
		return t.Format("PM")[:1], true
	case "TT":
		return t.Format("PM"), true
	case "Z":
		return t.Format("MST"), true
	}
	return "", false
}
