package transform

import (
	"strconv"
	"strings"
	"time"

	"github.com/deckhaus/storesync/internal/remote"
)

// ExternalID extracts the trailing segment of a composite remote identifier,
// e.g. "gid://platform/Collection/55" -> "55". Query parameters are stripped.
func ExternalID(gid string) string {
	if gid == "" {
		return ""
	}
	parts := strings.Split(gid, "/")
	id := parts[len(parts)-1]
	id = strings.Split(id, "?")[0]
	return id
}

func stringField(rec map[string]interface{}, key string) string {
	if val, ok := rec[key]; ok && val != nil {
		switch v := val.(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

func intField(rec map[string]interface{}, key string) int {
	if val, ok := rec[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}

// priceField resolves a price-like value to a decimal string, defaulting to
// "0.00" when absent. Handles plain strings, numbers and {amount} money maps
// (including the shopMoney price-set nesting).
func priceField(rec map[string]interface{}, key string) string {
	val, ok := rec[key]
	if !ok || val == nil {
		return "0.00"
	}
	switch v := val.(type) {
	case string:
		if v == "" {
			return "0.00"
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case map[string]interface{}:
		if money, ok := v["shopMoney"].(map[string]interface{}); ok {
			return priceField(money, "amount")
		}
		return priceField(v, "amount")
	}
	return "0.00"
}

func timeField(rec map[string]interface{}, key string) *time.Time {
	s := stringField(rec, key)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}

// tagsField joins a remote tag list into a comma-separated string.
func tagsField(rec map[string]interface{}, key string) string {
	raw, _ := rec[key].([]interface{})
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			tags = append(tags, s)
		}
	}
	return strings.Join(tags, ",")
}

// flattenConnection projects a nested collection into a plain array of
// objects, unwrapping the edges/node pagination envelope when present.
// Plain arrays pass through unchanged.
func flattenConnection(val interface{}) []interface{} {
	switch v := val.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		edges, ok := v["edges"].([]interface{})
		if !ok {
			return nil
		}
		nodes := make([]interface{}, 0, len(edges))
		for _, edge := range edges {
			edgeMap, ok := edge.(map[string]interface{})
			if !ok {
				continue
			}
			if node, ok := edgeMap["node"]; ok {
				nodes = append(nodes, node)
			}
		}
		return nodes
	}
	return nil
}

// nestedMap walks one level into a record, nil-safe.
func nestedMap(rec remote.RemoteRecord, key string) map[string]interface{} {
	m, _ := rec[key].(map[string]interface{})
	return m
}
