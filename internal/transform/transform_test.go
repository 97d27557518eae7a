package transform

import (
	"testing"

	"github.com/deckhaus/storesync/internal/models"
	"github.com/deckhaus/storesync/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalID(t *testing.T) {
	cases := []struct {
		gid      string
		expected string
	}{
		{"gid://platform/Product/123456", "123456"},
		{"gid://platform/Collection/55", "55"},
		{"gid://platform/ProductVariant/99?inventory=true", "99"},
		{"789", "789"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ExternalID(c.gid), "gid %q", c.gid)
	}
}

func TestTransformProduct(t *testing.T) {
	rec := remote.RemoteRecord{
		"id":          "gid://platform/Product/123456",
		"title":       "Oak Desk",
		"handle":      "oak-desk",
		"status":      "ACTIVE",
		"vendor":      "Deckhaus",
		"productType": "Furniture",
		"tags":        []interface{}{"wood", "office"},
		"variants": map[string]interface{}{
			"edges": []interface{}{
				map[string]interface{}{"node": map[string]interface{}{
					"id":    "gid://platform/ProductVariant/1",
					"price": "249.00",
				}},
				map[string]interface{}{"node": map[string]interface{}{
					"id":    "gid://platform/ProductVariant/2",
					"price": "279.00",
				}},
			},
		},
		"images": map[string]interface{}{
			"edges": []interface{}{
				map[string]interface{}{"node": map[string]interface{}{"url": "https://cdn.example/desk.jpg"}},
			},
		},
	}

	entity, err := Transform(models.KindProduct, rec)
	require.NoError(t, err)

	product, ok := entity.(*models.Product)
	require.True(t, ok)

	assert.Equal(t, "123456", product.ExternalID)
	assert.Equal(t, "Oak Desk", product.Title)
	assert.Equal(t, "oak-desk", product.Handle)
	assert.Equal(t, "ACTIVE", product.Status)
	assert.Equal(t, "249.00", product.Price, "first variant price is promoted")
	assert.Equal(t, "gid://platform/Product/123456", product.AdditionalData["remote_gid"])
	assert.Equal(t, "wood,office", product.AdditionalData["tags"])

	variants, ok := product.AdditionalData["variants"].([]interface{})
	require.True(t, ok)
	assert.Len(t, variants, 2)
	assert.NotEmpty(t, product.RawData)
}

func TestTransformProductWithoutVariants(t *testing.T) {
	rec := remote.RemoteRecord{
		"id":    "gid://platform/Product/7",
		"title": "Giftcard",
	}

	entity, err := Transform(models.KindProduct, rec)
	require.NoError(t, err)

	product := entity.(*models.Product)
	assert.Equal(t, "0.00", product.Price)
}

func TestTransformMissingIdentifier(t *testing.T) {
	_, err := Transform(models.KindProduct, remote.RemoteRecord{"title": "No ID"})
	require.Error(t, err)

	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.KindProduct, terr.Kind)
}

func TestTransformIsDeterministic(t *testing.T) {
	rec := remote.RemoteRecord{
		"id":     "gid://platform/Customer/42",
		"email":  "kim@example.com",
		"state":  "ENABLED",
		"tags":   []interface{}{"vip"},
		"phone":  "+4915112345678",
		"amountSpent": map[string]interface{}{
			"amount": "120.50",
		},
	}

	first, err := Transform(models.KindCustomer, rec)
	require.NoError(t, err)
	second, err := Transform(models.KindCustomer, rec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTransformCustomer(t *testing.T) {
	rec := remote.RemoteRecord{
		"id":             "gid://platform/Customer/900",
		"email":          "anna@example.com",
		"firstName":      "Anna",
		"lastName":       "Berg",
		"numberOfOrders": "12",
		"amountSpent": map[string]interface{}{
			"amount":       "845.99",
			"currencyCode": "EUR",
		},
		"addresses": []interface{}{
			map[string]interface{}{"city": "Berlin"},
		},
	}

	entity, err := Transform(models.KindCustomer, rec)
	require.NoError(t, err)

	customer := entity.(*models.Customer)
	assert.Equal(t, "900", customer.ExternalID)
	assert.Equal(t, 12, customer.OrdersCount)
	assert.Equal(t, "845.99", customer.TotalSpent)

	addresses, ok := customer.AdditionalData["addresses"].([]interface{})
	require.True(t, ok, "plain address arrays pass through")
	assert.Len(t, addresses, 1)
}

func TestTransformOrderPriceSets(t *testing.T) {
	rec := remote.RemoteRecord{
		"id":                       "gid://platform/Order/1001",
		"name":                     "#1001",
		"displayFinancialStatus":   "PAID",
		"displayFulfillmentStatus": "FULFILLED",
		"currencyCode":             "EUR",
		"processedAt":              "2026-08-01T10:30:00Z",
		"totalPriceSet": map[string]interface{}{
			"shopMoney": map[string]interface{}{"amount": "99.95"},
		},
		"subtotalPriceSet": map[string]interface{}{
			"shopMoney": map[string]interface{}{"amount": "84.00"},
		},
		"lineItems": map[string]interface{}{
			"edges": []interface{}{
				map[string]interface{}{"node": map[string]interface{}{"title": "Oak Desk", "quantity": float64(1)}},
			},
		},
	}

	entity, err := Transform(models.KindOrder, rec)
	require.NoError(t, err)

	order := entity.(*models.Order)
	assert.Equal(t, "99.95", order.TotalPrice)
	assert.Equal(t, "84.00", order.SubtotalPrice)
	require.NotNil(t, order.ProcessedAt)
	assert.Equal(t, "2026-08-01T10:30:00Z", order.ProcessedAt.Format("2006-01-02T15:04:05Z"))

	items, ok := order.AdditionalData["line_items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestTransformPromotionPercentage(t *testing.T) {
	rec := remote.RemoteRecord{
		"id": "gid://platform/DiscountCodeNode/55",
		"codeDiscount": map[string]interface{}{
			"title":    "Summer Sale",
			"status":   "ACTIVE",
			"startsAt": "2026-06-01T00:00:00Z",
			"codes": map[string]interface{}{
				"edges": []interface{}{
					map[string]interface{}{"node": map[string]interface{}{"code": "SUMMER20"}},
				},
			},
			"customerGets": map[string]interface{}{
				"value": map[string]interface{}{"percentage": 0.2},
			},
		},
	}

	entity, err := Transform(models.KindPromotion, rec)
	require.NoError(t, err)

	promo := entity.(*models.Promotion)
	assert.Equal(t, "55", promo.ExternalID)
	assert.Equal(t, "SUMMER20", promo.Code)
	assert.Equal(t, "percentage", promo.ValueType)
	assert.Equal(t, "20.00", promo.Value)
}

func TestTransformPromotionFixedAmount(t *testing.T) {
	rec := remote.RemoteRecord{
		"id": "gid://platform/DiscountCodeNode/56",
		"codeDiscount": map[string]interface{}{
			"title": "Ten Off",
			"customerGets": map[string]interface{}{
				"value": map[string]interface{}{
					"amount": map[string]interface{}{"amount": "10.00"},
				},
			},
		},
	}

	entity, err := Transform(models.KindPromotion, rec)
	require.NoError(t, err)

	promo := entity.(*models.Promotion)
	assert.Equal(t, "fixed_amount", promo.ValueType)
	assert.Equal(t, "10.00", promo.Value)
}

func TestTransformPromotionWithoutDiscount(t *testing.T) {
	_, err := Transform(models.KindPromotion, remote.RemoteRecord{
		"id": "gid://platform/DiscountCodeNode/57",
	})
	require.Error(t, err)

	var terr *Error
	require.ErrorAs(t, err, &terr)
}

func TestTransformTutorial(t *testing.T) {
	rec := remote.RemoteRecord{
		"id":          "gid://platform/Article/300",
		"title":       "Caring for Oak Furniture",
		"handle":      "caring-for-oak",
		"publishedAt": "2026-03-15T08:00:00Z",
		"tags":        []interface{}{"care", "wood"},
		"author":      map[string]interface{}{"name": "M. Weber"},
		"blog":        map[string]interface{}{"title": "Workshop Notes"},
	}

	entity, err := Transform(models.KindTutorial, rec)
	require.NoError(t, err)

	tutorial := entity.(*models.Tutorial)
	assert.Equal(t, "300", tutorial.ExternalID)
	assert.Equal(t, "M. Weber", tutorial.AuthorName)
	assert.Equal(t, "care,wood", tutorial.Tags)
	require.NotNil(t, tutorial.PublishedAt)
}

func TestTransformCollection(t *testing.T) {
	rec := remote.RemoteRecord{
		"id":          "gid://platform/Collection/88",
		"title":       "Desks",
		"handle":      "desks",
		"description": "All desks",
		"productsCount": map[string]interface{}{
			"count": float64(14),
		},
	}

	entity, err := Transform(models.KindCollection, rec)
	require.NoError(t, err)

	collection := entity.(*models.Collection)
	assert.Equal(t, "88", collection.ExternalID)
	assert.Equal(t, 14, collection.AdditionalData["products_count"])
}
