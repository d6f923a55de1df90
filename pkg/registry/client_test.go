package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
)

func testClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	c := NewClient(endpoint, "test-key", logrus.WithField("test", t.Name()))
	c.backoff = wait.Backoff{Steps: 3, Duration: time.Millisecond, Factor: 1.0}
	return c
}

func TestListNamesDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"names": {
					"items": [
						{
							"name": "example.com",
							"expiresAt": "2026-01-01T00:00:00Z",
							"claimedBy": "0xabc",
							"registrar": {"name": "Test", "ianaId": 1234},
							"tokens": [
								{"tokenId": "1", "networkId": "eip155:1", "ownerAddress": "0xdef", "type": "OWNERSHIP", "expiresAt": "2026-01-01T00:00:00Z"}
							]
						}
					],
					"hasNextPage": true
				}
			}
		}`))
	}))
	defer srv.Close()

	page, err := testClient(t, srv.URL).ListNames(context.Background(), 0, 10, []string{"com"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 1 || !page.HasNextPage {
		t.Fatalf("unexpected page: %+v", page)
	}
	item := page.Items[0]
	if item.Name != "example.com" || item.Registrar.IanaID != 1234 {
		t.Errorf("unexpected item: %+v", item)
	}
	tok := item.OwnershipToken()
	if tok == nil || tok.TokenID != "1" {
		t.Errorf("expected ownership token, got %+v", tok)
	}
}

func TestGraphQLErrorsAreNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors": [{"message": "malformed query"}]}`))
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).ListNames(context.Background(), 0, 10, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*GraphQLError); !ok {
		t.Fatalf("expected *GraphQLError, got %T: %v", err, err)
	}
	if calls != 1 {
		t.Errorf("graphql errors must not be retried, got %d calls", calls)
	}
}

func TestTransportErrorsAreRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).ListNames(context.Background(), 0, 10, nil)
	if err == nil {
		t.Fatal("expected an error after retries were exhausted")
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestTransportRecoversOnRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"names": {"items": [], "hasNextPage": false}}}`))
	}))
	defer srv.Close()

	page, err := testClient(t, srv.URL).ListNames(context.Background(), 0, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("expected 2 attempts, got %d", calls)
	}
	if page.HasNextPage {
		t.Error("expected hasNextPage false")
	}
}

func TestMissingAPIKey(t *testing.T) {
	c := NewClient("http://localhost:0", "", logrus.WithField("test", t.Name()))
	_, err := c.ListNames(context.Background(), 0, 10, nil)
	if err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGetNameAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"name": null}}`))
	}))
	defer srv.Close()

	name, err := testClient(t, srv.URL).GetName(context.Background(), "missing.com")
	if err != nil {
		t.Fatal(err)
	}
	if name != nil {
		t.Fatalf("expected nil for an absent name, got %+v", name)
	}
}
