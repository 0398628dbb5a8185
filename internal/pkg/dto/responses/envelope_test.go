package responses

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeUnmarshal(t *testing.T) {
	t.Run("lowercase field names", func(t *testing.T) {
		var envelope Envelope
		err := json.Unmarshal([]byte(`{"success":true,"message":"ok","data":[1,2]}`), &envelope)
		require.NoError(t, err)

		assert.True(t, envelope.Success)
		assert.Equal(t, "ok", envelope.Message)

		var data []int
		require.NoError(t, envelope.DecodeData(&data))
		assert.Equal(t, []int{1, 2}, data)
	})

	t.Run("capitalized field names", func(t *testing.T) {
		var envelope Envelope
		err := json.Unmarshal([]byte(`{"Success":false,"Message":"bad request","Data":null}`), &envelope)
		require.NoError(t, err)

		assert.False(t, envelope.Success)
		assert.Equal(t, "bad request", envelope.Message)
	})

	t.Run("lowercase wins when both casings are present", func(t *testing.T) {
		var envelope Envelope
		err := json.Unmarshal([]byte(`{"success":true,"Success":false,"message":"lower","Message":"upper"}`), &envelope)
		require.NoError(t, err)

		assert.True(t, envelope.Success)
		assert.Equal(t, "lower", envelope.Message)
	})

	t.Run("absent data leaves the target untouched", func(t *testing.T) {
		var envelope Envelope
		err := json.Unmarshal([]byte(`{"success":true,"message":"ok"}`), &envelope)
		require.NoError(t, err)

		data := []int{9}
		require.NoError(t, envelope.DecodeData(&data))
		assert.Equal(t, []int{9}, data)
	})
}

func TestEnvelopeNoRecords(t *testing.T) {
	cases := []struct {
		name     string
		envelope Envelope
		want     bool
	}{
		{"classic sentinel", Envelope{Success: false, Message: "No Records Found"}, true},
		{"singular variant", Envelope{Success: false, Message: "no record exists"}, true},
		{"successful response is never the sentinel", Envelope{Success: true, Message: "no records found"}, false},
		{"real failure", Envelope{Success: false, Message: "invalid token"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.envelope.NoRecords())
		})
	}
}
