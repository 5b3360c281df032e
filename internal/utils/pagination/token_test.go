package pagination_test

import (
	"testing"
	"time"

	"github.com/pharmakeep/pharmacy_pos_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 6, 12, 9, 30, 15, 123456789, time.UTC)
	id := "7f9c2ba4-e88f-4b43-9f1a-1f0e9a6a2c55"

	token := pagination.EncodeToken(createdAt, id)
	gotTime, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)

	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "!!not-base64!!"},
		{name: "missing separator", token: "MjAyNS0wNi0xMlQwOTozMDoxNVo"},
		{name: "bad timestamp", token: pagination.EncodeMultiFieldToken("not-a-time", "id")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestMultiFieldTokenRoundTrip(t *testing.T) {
	fields := []string{"2025-06-12T09:30:15Z", "SALE-000042", "COMPLETED"}

	token := pagination.EncodeMultiFieldToken(fields...)
	got, err := pagination.DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, fields, got)
}
