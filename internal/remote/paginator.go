package remote

import (
	"context"
	"fmt"

	"github.com/deckhaus/storesync/internal/models"
)

// MaxPageSize is the largest page the remote API serves per request.
const MaxPageSize = 250

// RemoteRecord is one raw node as received from the platform, nested
// structures preserved. It only lives for the duration of one sync page.
type RemoteRecord map[string]interface{}

// Page is the decoded result of one paginated fetch.
type Page struct {
	Records   []RemoteRecord
	EndCursor string
	HasMore   bool
}

// Paginator fetches one page of an entity collection at a time.
type Paginator interface {
	FetchPage(ctx context.Context, kind models.EntityKind, cursor string, pageSize int) (*Page, error)
}

// GraphQLPaginator implements Paginator against the platform's Admin API.
type GraphQLPaginator struct {
	client *Client
}

// NewPaginator creates a paginator backed by the given client.
func NewPaginator(client *Client) *GraphQLPaginator {
	return &GraphQLPaginator{client: client}
}

// FetchPage fetches one page of records for a kind. A pure fetch: no caching,
// no persistence.
func (p *GraphQLPaginator) FetchPage(ctx context.Context, kind models.EntityKind, cursor string, pageSize int) (*Page, error) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	kq, err := queryForKind(kind, pageSize)
	if err != nil {
		return nil, err
	}

	variables := map[string]interface{}{}
	if cursor != "" {
		variables["cursor"] = cursor
	}

	data, err := p.client.Execute(ctx, kq.query, variables)
	if err != nil {
		return nil, err
	}

	return decodeConnection(data, kq.root)
}

// decodeConnection unwraps the edges/node envelope of one connection.
func decodeConnection(data map[string]interface{}, root string) (*Page, error) {
	conn, ok := data[root].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("response missing %q connection", root)
	}

	page := &Page{}

	if pageInfo, ok := conn["pageInfo"].(map[string]interface{}); ok {
		if hasNext, ok := pageInfo["hasNextPage"].(bool); ok {
			page.HasMore = hasNext
		}
		if endCursor, ok := pageInfo["endCursor"].(string); ok {
			page.EndCursor = endCursor
		}
	}

	edges, _ := conn["edges"].([]interface{})
	page.Records = make([]RemoteRecord, 0, len(edges))
	for _, edge := range edges {
		edgeMap, ok := edge.(map[string]interface{})
		if !ok {
			continue
		}
		node, ok := edgeMap["node"].(map[string]interface{})
		if !ok {
			continue
		}
		page.Records = append(page.Records, RemoteRecord(node))
	}

	// A continuation without a cursor would loop forever
	if page.HasMore && page.EndCursor == "" {
		return nil, fmt.Errorf("%s connection reports more pages but no end cursor", root)
	}

	return page, nil
}
