package remote

import (
	"fmt"

	"github.com/deckhaus/storesync/internal/models"
)

// kindQuery binds an entity kind to its paginated query and the root field
// the connection lives under in the response data map.
type kindQuery struct {
	root  string
	query string
}

const productsQuery = `
query GetProducts($cursor: String) {
	products(first: %d, after: $cursor, sortKey: UPDATED_AT) {
		pageInfo { hasNextPage endCursor }
		edges { node {
			id title handle status vendor productType tags createdAt updatedAt
			variants(first: 50) { edges { node { id title price sku barcode inventoryQuantity } } }
			images(first: 50) { edges { node { id url altText } } }
		} }
	}
}`

const collectionsQuery = `
query GetCollections($cursor: String) {
	collections(first: %d, after: $cursor) {
		pageInfo { hasNextPage endCursor }
		edges { node {
			id title handle description updatedAt
			image { url altText }
			productsCount { count }
		} }
	}
}`

const customersQuery = `
query GetCustomers($cursor: String) {
	customers(first: %d, after: $cursor, sortKey: UPDATED_AT) {
		pageInfo { hasNextPage endCursor }
		edges { node {
			id firstName lastName email phone state numberOfOrders tags createdAt updatedAt
			amountSpent { amount currencyCode }
			addresses(first: 10) { address1 address2 city countryCode zip phone company }
			defaultAddress { address1 address2 city countryCode zip phone company }
		} }
	}
}`

const ordersQuery = `
query GetOrders($cursor: String) {
	orders(first: %d, after: $cursor, sortKey: UPDATED_AT) {
		pageInfo { hasNextPage endCursor }
		edges { node {
			id name email displayFinancialStatus displayFulfillmentStatus
			currencyCode processedAt tags createdAt updatedAt
			totalPriceSet { shopMoney { amount } }
			subtotalPriceSet { shopMoney { amount } }
			lineItems(first: 50) { edges { node { id title quantity sku } } }
			shippingAddress { address1 address2 city countryCode zip }
		} }
	}
}`

const promotionsQuery = `
query GetPromotions($cursor: String) {
	codeDiscountNodes(first: %d, after: $cursor) {
		pageInfo { hasNextPage endCursor }
		edges { node {
			id
			codeDiscount {
				... on DiscountCodeBasic {
					title status startsAt endsAt
					codes(first: 1) { edges { node { code } } }
					customerGets { value {
						... on DiscountPercentage { percentage }
						... on DiscountAmount { amount { amount currencyCode } }
					} }
				}
			}
		} }
	}
}`

const tutorialsQuery = `
query GetTutorials($cursor: String) {
	articles(first: %d, after: $cursor) {
		pageInfo { hasNextPage endCursor }
		edges { node {
			id title handle tags publishedAt createdAt updatedAt
			author { name }
			blog { id title }
		} }
	}
}`

// queryForKind returns the filled-in query and root field for one kind.
func queryForKind(kind models.EntityKind, pageSize int) (kindQuery, error) {
	var kq kindQuery
	switch kind {
	case models.KindProduct:
		kq = kindQuery{root: "products", query: productsQuery}
	case models.KindCollection:
		kq = kindQuery{root: "collections", query: collectionsQuery}
	case models.KindCustomer:
		kq = kindQuery{root: "customers", query: customersQuery}
	case models.KindOrder:
		kq = kindQuery{root: "orders", query: ordersQuery}
	case models.KindPromotion:
		kq = kindQuery{root: "codeDiscountNodes", query: promotionsQuery}
	case models.KindTutorial:
		kq = kindQuery{root: "articles", query: tutorialsQuery}
	default:
		return kindQuery{}, fmt.Errorf("no remote query for entity kind %q", kind)
	}
	kq.query = fmt.Sprintf(kq.query, pageSize)
	return kq, nil
}
