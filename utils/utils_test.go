package utils

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumbers(t *testing.T) {
	numbers, err := ParseNumbers("[7,15,23,42]")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 15, 23, 42}, numbers)

	// count and range are not checked here
	numbers, err = ParseNumbers(" [99, 0] ")
	require.NoError(t, err)
	assert.Equal(t, []int{99, 0}, numbers)

	for _, raw := range []string{"", "null", "7,15", `["a"]`, "[1.5]", "{}"} {
		_, err := ParseNumbers(raw)
		assert.Error(t, err, raw)
	}
}

func TestInRangeDistinct(t *testing.T) {
	assert.True(t, InRangeDistinct([]int{1, 2, 49, 50}, 4, 1, 50))
	assert.False(t, InRangeDistinct([]int{1, 2, 3}, 4, 1, 50))
	assert.False(t, InRangeDistinct([]int{1, 2, 3, 51}, 4, 1, 50))
	assert.False(t, InRangeDistinct([]int{0, 2, 3, 4}, 4, 1, 50))
	assert.False(t, InRangeDistinct([]int{5, 5, 3, 4}, 4, 1, 50))
}

func TestIsValidValueOfConstant(t *testing.T) {
	assert.True(t, IsValidValueOfConstant("b", []string{"a", "b"}))
	assert.False(t, IsValidValueOfConstant("c", []string{"a", "b"}))
}

func TestCustomDateJSON(t *testing.T) {
	var payload struct {
		Date CustomDate `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-06-01"}`), &payload))
	assert.Equal(t, "2025-06-01", payload.Date.String())

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-06-02T00:00:00Z"}`), &payload))
	assert.Equal(t, "2025-06-02", payload.Date.String())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"01/06/2025"}`), &payload))

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-06-02"}`, string(out))

	out, err = json.Marshal(struct {
		Date CustomDate `json:"date"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":null}`, string(out))
}

func TestCustomDateScanValue(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.Scan(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-01", d.String())

	require.NoError(t, d.Scan([]byte("2025-07-04")))
	assert.Equal(t, "2025-07-04", d.String())

	require.NoError(t, d.Scan("2025-07-05T00:00:00Z"))
	assert.Equal(t, "2025-07-05", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, d.Scan(42))
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("20:00"))
	assert.True(t, IsValidClock("07:30"))
	assert.False(t, IsValidClock("7:30"))
	assert.False(t, IsValidClock("25:00"))
	assert.False(t, IsValidClock("20:00:00"))
}

func TestGenerateQRCode(t *testing.T) {
	content := TicketQRContent(12, "0900000000", []int{7, 15, 23, 42})
	assert.Equal(t, "ticket:12|0900000000|7-15-23-42", content)

	png, err := GenerateQRCode(content, 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
