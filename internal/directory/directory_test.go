package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRecordAcceptsBothWireNames(t *testing.T) {
	var records []UserRecord
	payload := `[
		{"_id": "1", "username": "Alice", "email": "a@example.com", "profilePicture": "a.png"},
		{"id": "2", "username": "bob", "profilePictureUrl": "b.png"}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 2)
	assert.Equal(t, UserRecord{ID: "1", Username: "Alice", Email: "a@example.com", ProfilePictureURL: "a.png"}, records[0])
	assert.Equal(t, UserRecord{ID: "2", Username: "bob", ProfilePictureURL: "b.png"}, records[1])
}

func TestDecodeRecordsKeepsNonStringIDs(t *testing.T) {
	records, err := decodeRecords([]byte(`[
		{"_id": 1, "username": "Alice"},
		{"_id": "2", "username": "Bob"},
		{"id": 3.5, "username": "Cleo"},
		{"_id": null, "username": "Dee"}
	]`))
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"1", "2", "3.5", ""}, []string{records[0].ID, records[1].ID, records[2].ID, records[3].ID})
	assert.Equal(t, []string{"Alice", "Bob", "Cleo", "Dee"}, []string{records[0].Username, records[1].Username, records[2].Username, records[3].Username})
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("Ada Lovelace"))
	assert.Equal(t, "b", Initials("bob"))
	assert.Equal(t, "AB", Initials("A  B"))
	assert.Equal(t, "", Initials(""))
}

func TestHTTPSourceDecodesArrayAndEnvelope(t *testing.T) {
	bodies := map[string]string{
		"/array/users":    `[{"_id":"1","username":"Alice"},{"_id":"2","username":"alice2"}]`,
		"/envelope/users": `{"status":"success","data":[{"_id":"1","username":"Alice"},{"_id":"2","username":"alice2"}]}`,
	}
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	for _, prefix := range []string{"/array", "/envelope"} {
		src := NewHTTPSource(srv.URL+prefix+"/", "tok", srv.Client())
		records, err := src.FetchAllUsers(context.Background())
		require.NoError(t, err, prefix)
		require.Len(t, records, 2, prefix)
		assert.Equal(t, "1", records[0].ID)
		assert.Equal(t, "alice2", records[1].Username)
		assert.Equal(t, "Bearer tok", gotAuth)
	}
}

func TestHTTPSourceReportsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, "", srv.Client())
	records, err := src.FetchAllUsers(context.Background())
	require.Error(t, err)
	assert.Nil(t, records)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, srv.URL+"/users", fetchErr.Source)
}

func TestSQLiteSourceImportAndFetchKeepsOrder(t *testing.T) {
	ctx := context.Background()
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "directory.db"))
	require.NoError(t, err)
	defer src.Close()

	n, err := src.Import(ctx, []UserRecord{
		{ID: "3", Username: "Bob"},
		{ID: "1", Username: "Alice", Email: "alice@example.com"},
		{Username: "no-id"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	records, err := src.FetchAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "3", records[0].ID)
	assert.Equal(t, "1", records[1].ID)
	assert.Equal(t, "alice@example.com", records[1].Email)
	assert.NotEmpty(t, records[2].ID)

	_, err = src.Import(ctx, []UserRecord{{ID: "1", Username: "Alice Renamed"}})
	require.NoError(t, err)
	records, err = src.FetchAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Alice Renamed", records[1].Username)
}

func TestSQLiteSourceImportFile(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(seed, []byte(`{"data":[{"_id":"9","username":"Zed"}]}`), 0o644))

	src, err := OpenSQLite(filepath.Join(dir, "directory.db"))
	require.NoError(t, err)
	defer src.Close()

	n, err := src.ImportFile(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"_id":`), 0o644))
	_, err = src.ImportFile(context.Background(), bad)
	require.Error(t, err)
}
