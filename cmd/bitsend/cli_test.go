package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	inputs, err := parseInputs([]string{
		"f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16:0",
		"f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16:3",
	})
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, uint32(0), inputs[0].VOut)
	assert.Equal(t, uint32(3), inputs[1].VOut)

	tests := []string{
		"noseparator",
		"txid:notanumber",
		"txid:-1",
	}
	for _, tt := range tests {
		_, err := parseInputs([]string{tt})
		assert.NotNil(t, err)
	}
}

func TestParseOutputs(t *testing.T) {
	outputs, err := parseOutputs([]string{
		"bc1qnjg0jd8228aq7egyzacy8cys3knf9xvrerkf9g:50000",
		"bc1qnjg0jd8228aq7egyzacy8cys3knf9xvrerkf9g:0.0005",
		"bc1qnjg0jd8228aq7egyzacy8cys3knf9xvrerkf9g:1.5",
	})
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	// integer amounts are sats, decimal amounts are BTC
	assert.Equal(t, uint64(50000), outputs[0].Amount)
	assert.Equal(t, uint64(50000), outputs[1].Amount)
	assert.Equal(t, uint64(150000000), outputs[2].Amount)

	tests := []string{
		"noseparator",
		"addr:notanumber",
		"addr:-0.5",
	}
	for _, tt := range tests {
		_, err := parseOutputs([]string{tt})
		assert.NotNil(t, err)
	}
}
