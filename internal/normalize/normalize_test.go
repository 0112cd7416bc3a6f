package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b", Description("a\n\n  b"))
	assert.Equal(t, "one two three", Description("one\ttwo \r\n three"))
}

func TestDescription_StripsBoilerplate(t *testing.T) {
	assert.Equal(t, "Desc here", Description("Desc Show more here"))
	assert.Equal(t, "Desc here", Description("Desc Show less here"))
	assert.Equal(t, "Desc", Description("Desc Show more Show less"))
	assert.Equal(t, "", Description("Show more"))
}

func TestDescription_Trims(t *testing.T) {
	assert.Equal(t, "body", Description("  \n body \t "))
	assert.Equal(t, "", Description("   \n\t  "))
}

func TestDescription_Idempotent(t *testing.T) {
	inputs := []string{
		"a\n\n  b",
		"Desc Show more here Show less",
		"  plain text  ",
		"",
		"Show\nmore stranded tokens",
	}
	for _, in := range inputs {
		once := Description(in)
		assert.Equal(t, once, Description(once), "input %q", in)
	}
}

func TestDescription_ComposesUnicode(t *testing.T) {
	//decomposed e + combining acute becomes a single rune
	assert.Equal(t, "Café", Description("Café"))
}
