package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/helo/pkg/sanitizer"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Matemática", "Matemática"},
		{"script removed", "Ana<script>alert(1)</script>", "Ana"},
		{"event handler removed", `<b onclick="steal()">oi</b>`, "<b>oi</b>"},
		{"javascript link removed", `<a href="javascript:alert(1)">x</a>`, "x"},
		{"ampersand escaped", "a & b", "a &amp; b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.HTML(tt.input))
		})
	}
}

func TestUserInput(t *testing.T) {
	t.Parallel()

	got := sanitizer.UserInput("Jo\x00ão\x07<script>x()</script>")
	assert.Equal(t, "João", got)
}

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ABC", sanitizer.Apply("  ABC ", sanitizer.Trim))

	clean := sanitizer.Compose(sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "X", clean(" x "))
	assert.Equal(t, "input", sanitizer.Apply("input"))
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\tc", sanitizer.RemoveControlChars("a\nb\tc\x1b"))
}
