// ABOUTME: Tests for the HTTP record store client
// ABOUTME: Uses httptest servers to exercise envelope handling
package recordstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		Host:      server.URL,
		ProjectID: "proj-test",
		PublicKey: "key-test",
		Timeout:   DefaultTimeout,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(&Config{Host: "https://example.com"}, zap.NewNop())
	assert.Error(t, err)
}

func TestFetchRecordsSendsAuthHeaders(t *testing.T) {
	var gotProject, gotKey, gotRequestID string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotProject = r.Header.Get("X-Trellis-Project-Id")
		gotKey = r.Header.Get("X-Trellis-Public-Key")
		gotRequestID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode(listEnvelope{Success: true, Data: []Record{{"Name": "Acme"}}})
	})

	records, err := client.FetchRecords(context.Background(), "company_c", Query{Fields: []string{"Name"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "proj-test", gotProject)
	assert.Equal(t, "key-test", gotKey)
	assert.NotEmpty(t, gotRequestID)
}

func TestFetchRecordsOuterFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listEnvelope{Success: false, Message: "table offline"})
	})

	_, err := client.FetchRecords(context.Background(), "company_c", Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table offline")
}

func TestCreateRecordsPartitionsResults(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload payloadRecords
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Records, 2)

		json.NewEncoder(w).Encode(writeEnvelope{
			Success: true,
			Results: []resultEnvelope{
				{Success: true, Data: Record{"Id": float64(7), "Name": "kept"}},
				{Success: false, Message: "state_c is required"},
			},
		})
	})

	result, err := client.CreateRecords(context.Background(), "company_c", []Record{
		{"Name": "kept"}, {"Name": "dropped"},
	})
	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 1)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, "state_c is required", result.Failed[0].Message)
	assert.Equal(t, "kept", result.First()["Name"])
}

func TestWriteOuterFailureIsError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(writeEnvelope{
			Success: false,
			Message: "quota exceeded",
			Results: []resultEnvelope{{Success: true, Data: Record{"Id": float64(1)}}},
		})
	})

	// Outer failure wins even when results claim success
	_, err := client.CreateRecords(context.Background(), "deal_c", []Record{{"title_c": "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDeleteRecordsSendsIDs(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload payloadIDs
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []int{42}, payload.RecordIDs)
		json.NewEncoder(w).Encode(writeEnvelope{
			Success: true,
			Results: []resultEnvelope{{Success: true}},
		})
	})

	result, err := client.DeleteRecords(context.Background(), "quote_c", []int{42})
	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 1)
}

func TestServerErrorStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchRecords(context.Background(), "contact_c", Query{})
	assert.Error(t, err)
}

func TestGetRecordByID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(recordEnvelope{Success: true, Data: Record{"Id": float64(3), "Name": "Acme"}})
	})

	rec, err := client.GetRecordByID(context.Background(), "company_c", 3, []string{"Name"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec["Name"])
}
