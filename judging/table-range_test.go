package judging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTableNumbers(t *testing.T) {
	tests := []struct {
		spec     string
		expected []string
	}{
		{"1, 3-5", []string{"1", "3", "4", "5"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"A12, 7", []string{"A12", "7"}},
		{"2-2", []string{"2"}},
		{"5-3", []string{}},
		{"a-b, 4", []string{"4"}},
		{"1-x", []string{}},
		{"1, 1, 1-2", []string{"1", "2"}},
		{" 9 - 10 ", []string{"9", "10"}},
		{"1-100000", []string{}},
		{"9223372036854775806-9223372036854775807", []string{"9223372036854775806", "9223372036854775807"}},
		{"+2-3", []string{"2", "3"}},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, ParseTableNumbers(test.spec), "spec %q", test.spec)
	}
}
