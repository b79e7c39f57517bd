package application

import (
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// formatMessage substitutes positional placeholders in template.
//
// {n} (and {n,type,...}, whose format part is ignored) is replaced with
// args[n] rendered by p. Quoting follows the MessageFormat convention: a
// doubled single quote yields one quote and text between single quotes is
// copied as is. Placeholders without a matching argument are left in the
// output untouched.
func formatMessage(p *message.Printer, template string, args []any) string {
	var b strings.Builder
	b.Grow(len(template))

	inQuote := false
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '\'':
			if i+1 < len(template) && template[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			inQuote = !inQuote
		case inQuote:
			b.WriteByte(c)
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			inner := template[i+1 : i+1+end]
			if value, ok := argument(p, inner, args); ok {
				b.WriteString(value)
			} else {
				b.WriteString(template[i : i+end+2])
			}
			i += end + 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func argument(p *message.Printer, inner string, args []any) (string, bool) {
	index := inner
	if comma := strings.IndexByte(inner, ','); comma >= 0 {
		index = inner[:comma]
	}
	n, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil || n < 0 || n >= len(args) {
		return "", false
	}
	return p.Sprint(args[n]), true
}
