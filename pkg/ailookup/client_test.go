package ailookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelResponse(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestNewWithoutAPIKey(t *testing.T) {
	assert.Nil(t, New(""), "empty key means the feature is disabled")
	assert.NotNil(t, New("key"))
}

func TestLookupMedicine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(modelResponse(`{"generic_name":"Paracetamol","manufacturer":"Cipla","category":"Tablet","hsn_code":"3004","storage_condition":"Below 25C","gst_percentage":12,"description":"Analgesic"}`)))
	}))
	defer server.Close()

	client := NewWithEndpoint("test-key", server.URL)
	details, err := client.LookupMedicine(context.Background(), "Calpol 500")
	require.NoError(t, err)

	assert.Equal(t, "Paracetamol", details.GenericName)
	assert.Equal(t, "Cipla", details.Manufacturer)
	assert.Equal(t, "Tablet", details.Category)
	assert.Equal(t, "3004", details.HSNCode)
	assert.InDelta(t, 12.0, details.GSTPercentage, 1e-9)
}

func TestLookupMedicineStripsCodeFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(modelResponse("```json\n{\"generic_name\":\"Ibuprofen\",\"gst_percentage\":12}\n```")))
	}))
	defer server.Close()

	client := NewWithEndpoint("test-key", server.URL)
	details, err := client.LookupMedicine(context.Background(), "Brufen")
	require.NoError(t, err)
	assert.Equal(t, "Ibuprofen", details.GenericName)
}

func TestLookupMedicineUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewWithEndpoint("test-key", server.URL)
	_, err := client.LookupMedicine(context.Background(), "Calpol 500")
	assert.Error(t, err)
}

func TestLookupMedicineEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewWithEndpoint("test-key", server.URL)
	_, err := client.LookupMedicine(context.Background(), "Calpol 500")
	assert.Error(t, err)
}
