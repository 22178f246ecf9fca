package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseStripsFences(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"```json\n{\"brandName\":\"Acme\"}\n```",
		"```\n{\"brandName\":\"Acme\"}\n```",
		"  {\"brandName\":\"Acme\"}  ",
	} {
		got, err := ParseResponse(text)
		require.NoError(t, err, text)
		assert.Equal(t, "Acme", got.BrandName)
	}
}

func TestParseResponseAcceptsNumbersAndNulls(t *testing.T) {
	t.Parallel()

	got, err := ParseResponse(`{"baseFontSize": 15, "borderRadius": 0, "spacing": 4.5, "secondaryColor": null}`)
	require.NoError(t, err)
	assert.Equal(t, "15", got.BaseFontSize)
	assert.Equal(t, "0", got.BorderRadius)
	assert.Equal(t, "4.5", got.Spacing)
	assert.Equal(t, "", got.SecondaryColor)
}

func TestParseResponseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseResponse("Sorry, I can't help with that.")
	require.Error(t, err)

	_, err = ParseResponse(`{"spacing": true}`)
	require.Error(t, err)
}
