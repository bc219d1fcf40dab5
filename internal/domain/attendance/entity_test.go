package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"present", StatusPresent, true},
		{"Present", StatusPresent, true},
		{"PRESENT", StatusPresent, true},
		{" present ", StatusPresent, true},
		{"absent", StatusAbsent, true},
		{"on_leave", StatusOnLeave, true},
		{"On Leave", StatusOnLeave, true},
		{"leave", StatusOnLeave, true},
		{"unmarked", "", false},
		{"holiday", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseStatus(c.input)
		assert.Equal(t, c.ok, ok, "input=%q", c.input)
		assert.Equal(t, c.want, got, "input=%q", c.input)
	}
}
