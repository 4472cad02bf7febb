package convert

import (
	"strings"
)

// splitRowValues splits one row's literal list on commas, honoring
// single-quoted string literals. Quoted fields may contain commas, a
// doubled '' inside quotes is a literal quote, and whitespace after a
// delimiter is skipped before the value starts.
//
// Hand-rolled because encoding/csv hard-codes `"` as the quote character
// and SQL dumps quote with `'`.
func splitRowValues(s string) []string {
	fields := make([]string, 0, 8)
	i, n := 0, len(s)
	for {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		var b strings.Builder
		if i < n && s[i] == '\'' {
			i++
			for i < n {
				if s[i] == '\'' {
					if i+1 < n && s[i+1] == '\'' {
						b.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				b.WriteByte(s[i])
				i++
			}
		}
		for i < n && s[i] != ',' {
			b.WriteByte(s[i])
			i++
		}
		fields = append(fields, b.String())
		if i >= n {
			break
		}
		i++
	}
	return fields
}
