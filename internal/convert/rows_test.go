package convert

import (
	"reflect"
	"testing"
)

func TestSplitRowValues(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "1, 2, 3", []string{"1", "2", "3"}},
		{"no spaces", "1,2,3", []string{"1", "2", "3"}},
		{"quoted string", "1, 'Main St', 12.5", []string{"1", "Main St", "12.5"}},
		{"comma inside quotes", "1, 'Main St, Apt 2', 12.5", []string{"1", "Main St, Apt 2", "12.5"}},
		{"escaped quote", "1, 'O''Brien Rd'", []string{"1", "O'Brien Rd"}},
		{"empty field", "1,,3", []string{"1", "", "3"}},
		{"trailing comma", "1,", []string{"1", ""}},
		{"quoted null token", "2, 'null', 3.0", []string{"2", "null", "3.0"}},
		{"single field", "42", []string{"42"}},
	}

	for _, c := range cases {
		if got := splitRowValues(c.input); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: splitRowValues(%q) = %v, want %v", c.name, c.input, got, c.want)
		}
	}
}
