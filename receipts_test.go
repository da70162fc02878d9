package pushover

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetReceipt(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/receipts/rzr7k1.json", r.URL.Path)
		assert.Equal(t, "app-token", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{
			"status": 1,
			"request": "abc",
			"acknowledged": 1,
			"acknowledged_at": 1393653600,
			"acknowledged_by": "user-key",
			"acknowledged_by_device": "phone",
			"last_delivered_at": 1393653590,
			"expired": 0,
			"expires_at": 1393657200,
			"called_back": 0,
			"called_back_at": 0
		}`))
	})

	receipt, err := client.GetReceipt(context.Background(), "app-token", "rzr7k1")
	require.NoError(t, err)

	assert.True(t, receipt.Acknowledged)
	assert.Equal(t, time.Unix(1393653600, 0), receipt.AcknowledgedAt)
	assert.Equal(t, "user-key", receipt.AcknowledgedBy)
	assert.Equal(t, "phone", receipt.AcknowledgedByDevice)
	assert.False(t, receipt.Expired)
	assert.Equal(t, time.Unix(1393657200, 0), receipt.ExpiresAt)
	assert.False(t, receipt.CalledBack)
	assert.True(t, receipt.CalledBackAt.IsZero(), "zero timestamp must map to the zero time")
}

func TestClient_GetReceipt_EmptyID(t *testing.T) {
	t.Parallel()

	client := NewClient(time.Second)
	_, err := client.GetReceipt(context.Background(), "app-token", "")
	require.Error(t, err)
}

func TestClient_CancelReceipt(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		responseCode int
		responseBody string
		wantErr      bool
	}{
		"cancelled": {
			responseCode: http.StatusOK,
			responseBody: `{"status":1,"request":"abc"}`,
		},
		"unknown receipt": {
			responseCode: http.StatusBadRequest,
			responseBody: `{"status":0,"request":"abc","errors":["receipt not found"]}`,
			wantErr:      true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/receipts/rzr7k1/cancel.json", r.URL.Path)

				var got map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "app-token", got["token"])

				w.WriteHeader(tt.responseCode)
				_, _ = w.Write([]byte(tt.responseBody))
			})

			err := client.CancelReceipt(context.Background(), "app-token", "rzr7k1")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
