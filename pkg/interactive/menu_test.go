package interactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuChoices(t *testing.T) {
	t.Parallel()

	called := false
	choices, optionMap := menuChoices([]MenuOption{
		{Name: "Run", Description: "Run probes", Action: func() error { called = true; return nil }},
	})

	require.Equal(t, []string{"Run - Run probes", exitChoice}, choices)
	require.NoError(t, optionMap["Run - Run probes"].Action())
	assert.True(t, called)
}

func TestMultiSelectLabels(t *testing.T) {
	t.Parallel()

	labels, byLabel := multiSelectLabels([]Choice{
		{Value: "processor", Label: "Processor"},
		{Value: "raw"},
	})

	assert.Equal(t, []string{"Processor (processor)", "raw"}, labels)
	assert.Equal(t, "processor", byLabel["Processor (processor)"])
}

func TestSelectedValues_KeepsChoiceOrder(t *testing.T) {
	t.Parallel()

	labels, byLabel := multiSelectLabels([]Choice{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B"},
		{Value: "c", Label: "C"},
	})

	values := selectedValues([]string{"C (c)", "A (a)"}, labels, byLabel)

	assert.Equal(t, []string{"a", "c"}, values)
	assert.Empty(t, selectedValues(nil, labels, byLabel))
}
