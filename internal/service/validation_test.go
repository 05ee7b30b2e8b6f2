package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name   string
		in     []string
		prefix string
		want   []string
	}{
		{"adds prefix", []string{"golang", "#go"}, "#", []string{"#golang", "#go"}},
		{"dedupes case-insensitively", []string{"#Go", "go", "GO"}, "#", []string{"#Go"}},
		{"drops blanks", []string{" ", "#", ""}, "#", []string{}},
		{"strips inner whitespace", []string{"open source"}, "#", []string{"#opensource"}},
		{"mentions", []string{"@jane", "jane", "bob"}, "@", []string{"@jane", "@bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTags(tt.in, tt.prefix))
		})
	}
}

func TestExtractVariables(t *testing.T) {
	vars := extractVariables("Hi {{name}}, join {{ event }} on {{date}}. Bye {{name}}. {{ 1bad }}")
	assert.Equal(t, []string{"name", "event", "date"}, vars)

	assert.Empty(t, extractVariables("no placeholders here"))
}

func TestRequired(t *testing.T) {
	assert.NoError(t, required("name", "ok", 10))

	err := required("name", "   ", 10)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "name is required", err.Error())

	err = required("name", "ééééééééééé", 10)
	require.Error(t, err)
	assert.Equal(t, "name is too long", err.Error())
}

func TestValidEmail(t *testing.T) {
	assert.NoError(t, validEmail("email", ""))
	assert.NoError(t, validEmail("email", "jane@example.com"))
	assert.Error(t, validEmail("email", "Jane <jane@example.com>"))
	assert.Error(t, validEmail("email", "not-an-email"))
}

func TestValidTimezone(t *testing.T) {
	assert.NoError(t, validTimezone("Europe/Berlin"))
	assert.Error(t, validTimezone("Mars/Olympus"))
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, oneOf("tone", "casual", []string{"casual", "formal"}))
	err := oneOf("tone", "shouty", []string{"casual", "formal"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of casual, formal")
}
