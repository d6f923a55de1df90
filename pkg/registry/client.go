// Package registry is the client for the Doma testnet subgraph, the
// upstream source of tokenized domain records.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
)

const DefaultEndpoint = "https://api-testnet.doma.xyz/graphql"

// ErrMissingAPIKey is returned before any request is made: the upstream
// rejects unauthenticated calls, so sending an empty key would only mask a
// configuration problem.
var ErrMissingAPIKey = errors.New("doma api key is not configured")

// GraphQLError is a business-level error payload on an otherwise successful
// HTTP response. Deterministic, so never retried.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("graphql errors: %v", e.Messages)
}

const listNamesQuery = `
  query GetDomains($skip: Int, $take: Int, $tlds: [String!], $claimStatus: NamesQueryClaimStatus) {
    names(skip: $skip, take: $take, tlds: $tlds, claimStatus: $claimStatus, sortOrder: DESC) {
      items {
        name
        expiresAt
        tokenizedAt
        claimedBy
        registrar {
          name
          ianaId
        }
        tokens {
          tokenId
          networkId
          ownerAddress
          type
          expiresAt
        }
      }
      totalCount
      pageSize
      currentPage
      hasNextPage
    }
  }
`

const getNameQuery = `
  query GetDomain($name: String!) {
    name(name: $name) {
      name
      expiresAt
      tokenizedAt
      claimedBy
      registrar {
        name
        ianaId
      }
      tokens {
        tokenId
        networkId
        ownerAddress
        type
        expiresAt
      }
    }
  }
`

type Token struct {
	TokenID      string `json:"tokenId"`
	NetworkID    string `json:"networkId"`
	OwnerAddress string `json:"ownerAddress"`
	Type         string `json:"type"`
	ExpiresAt    string `json:"expiresAt"`
}

type Registrar struct {
	Name   string `json:"name"`
	IanaID int    `json:"ianaId"`
}

// Name is one upstream registry record.
type Name struct {
	Name        string    `json:"name"`
	ExpiresAt   string    `json:"expiresAt"`
	TokenizedAt string    `json:"tokenizedAt"`
	ClaimedBy   string    `json:"claimedBy"`
	Registrar   Registrar `json:"registrar"`
	Tokens      []Token   `json:"tokens"`
}

// OwnershipToken returns the first token of type OWNERSHIP, or nil.
func (n *Name) OwnershipToken() *Token {
	for i := range n.Tokens {
		if n.Tokens[i].Type == "OWNERSHIP" {
			return &n.Tokens[i]
		}
	}
	return nil
}

// Page is one slice of the paginated names query.
type Page struct {
	Items       []Name `json:"items"`
	HasNextPage bool   `json:"hasNextPage"`
}

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      *logrus.Entry

	// transport retries only; graphql errors abort immediately
	backoff wait.Backoff
}

func NewClient(endpoint, apiKey string, log *logrus.Entry) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		log:      log,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		backoff: wait.Backoff{
			Steps:    3,
			Duration: 500 * time.Millisecond,
			Factor:   2.0,
			Jitter:   0.1,
		},
	}
}

// ListNames fetches one page of the registry, filtered to the given TLD set
// and all claim statuses.
func (c *Client) ListNames(ctx context.Context, skip, take int, tlds []string) (Page, error) {
	var out struct {
		Names Page `json:"names"`
	}
	err := c.query(ctx, listNamesQuery, map[string]interface{}{
		"skip":        skip,
		"take":        take,
		"tlds":        tlds,
		"claimStatus": "ALL",
	}, &out)
	return out.Names, err
}

// GetName fetches a single registry record, nil if the upstream has none.
func (c *Client) GetName(ctx context.Context, name string) (*Name, error) {
	var out struct {
		Name *Name `json:"name"`
	}
	err := c.query(ctx, getNameQuery, map[string]interface{}{
		"name": name,
	}, &out)
	return out.Name, err
}

type gqlMessage struct {
	Message string `json:"message"`
}

// query POSTs a GraphQL request and decodes the data payload into out.
// Transport-level failures are retried with exponential backoff; a graphql
// errors payload is surfaced as *GraphQLError without retrying.
func (c *Client) query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return err
	}

	var lastErr error
	err = wait.ExponentialBackoff(c.backoff, func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		resp, err := c.post(ctx, body)
		if err != nil {
			lastErr = err
			c.log.WithError(err).Warn("registry request failed, will retry")
			return false, nil
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			// drain so the connection can be reused
			_, _ = io.Copy(io.Discard, resp.Body)
			lastErr = fmt.Errorf("unexpected status %d from registry", resp.StatusCode)
			c.log.WithField("status", resp.StatusCode).Warn("registry request failed, will retry")
			return false, nil
		}

		var payload struct {
			Data   json.RawMessage `json:"data"`
			Errors []gqlMessage    `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			lastErr = fmt.Errorf("decoding registry response: %w", err)
			return false, nil
		}

		if len(payload.Errors) > 0 {
			messages := make([]string, 0, len(payload.Errors))
			for _, e := range payload.Errors {
				messages = append(messages, e.Message)
			}
			return false, &GraphQLError{Messages: messages}
		}

		if len(payload.Data) > 0 {
			if err := json.Unmarshal(payload.Data, out); err != nil {
				return false, fmt.Errorf("decoding registry data: %w", err)
			}
		}
		return true, nil
	})

	if err == wait.ErrWaitTimeout && lastErr != nil {
		return lastErr
	}
	return err
}

func (c *Client) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	return c.http.Do(req)
}
