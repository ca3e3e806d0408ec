package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		var f FlexString
		require.NoError(t, json.Unmarshal([]byte(`"1700000000"`), &f))
		assert.Equal(t, FlexString("1700000000"), f)
	})

	t.Run("integer value", func(t *testing.T) {
		var f FlexString
		require.NoError(t, json.Unmarshal([]byte(`42`), &f))
		assert.Equal(t, FlexString("42"), f)
	})

	t.Run("large integer keeps every digit", func(t *testing.T) {
		var f FlexString
		require.NoError(t, json.Unmarshal([]byte(`2500000000000000000`), &f))
		assert.Equal(t, FlexString("2500000000000000000"), f)
	})

	t.Run("null is empty", func(t *testing.T) {
		f := FlexString("previous")
		require.NoError(t, json.Unmarshal([]byte(`null`), &f))
		assert.Empty(t, f)
	})

	t.Run("inside a struct", func(t *testing.T) {
		var out struct {
			Confirmations FlexString `json:"confirmations"`
			TimeStamp     FlexString `json:"timeStamp"`
			Missing       FlexString `json:"missing"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"confirmations":12,"timeStamp":"1700000000"}`), &out))
		assert.Equal(t, "12", out.Confirmations.String())
		assert.Equal(t, "1700000000", out.TimeStamp.String())
		assert.Empty(t, out.Missing)
	})

	t.Run("rejects objects and booleans", func(t *testing.T) {
		var f FlexString
		assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &f))
		assert.Error(t, json.Unmarshal([]byte(`true`), &f))
	})
}

func TestFlexString_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(FlexString("12"))
	require.NoError(t, err)
	assert.JSONEq(t, `"12"`, string(out))
}

func TestFlexString_Int(t *testing.T) {
	assert.Equal(t, int64(12), FlexString("12").Int())
	assert.Zero(t, FlexString("").Int())
	assert.Zero(t, FlexString("1.5").Int())
}
