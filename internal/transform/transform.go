package transform

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/deckhaus/storesync/internal/models"
	"github.com/deckhaus/storesync/internal/remote"
)

// Error marks one malformed remote record. The orchestrator treats it as a
// per-item failure, never a fatal one.
type Error struct {
	Kind   models.EntityKind
	Reason string
	Record remote.RemoteRecord
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot transform %s record: %s", e.Kind, e.Reason)
}

// Transform maps one raw remote record into its local mirror shape.
// Deterministic and side-effect free: the same record always yields the
// same entity.
func Transform(kind models.EntityKind, rec remote.RemoteRecord) (models.MirroredEntity, error) {
	gid := stringField(rec, "id")
	externalID := ExternalID(gid)
	if externalID == "" {
		return nil, &Error{Kind: kind, Reason: "missing remote identifier", Record: rec}
	}

	switch kind {
	case models.KindProduct:
		return transformProduct(rec, gid, externalID)
	case models.KindCollection:
		return transformCollection(rec, gid, externalID)
	case models.KindCustomer:
		return transformCustomer(rec, gid, externalID)
	case models.KindOrder:
		return transformOrder(rec, gid, externalID)
	case models.KindPromotion:
		return transformPromotion(rec, gid, externalID)
	case models.KindTutorial:
		return transformTutorial(rec, gid, externalID)
	}
	return nil, &Error{Kind: kind, Reason: "unsupported entity kind", Record: rec}
}

func transformProduct(rec remote.RemoteRecord, gid, externalID string) (models.MirroredEntity, error) {
	variants := flattenConnection(rec["variants"])
	images := flattenConnection(rec["images"])

	// Promote the first variant price; the full list stays in additional_data
	price := "0.00"
	if len(variants) > 0 {
		if variant, ok := variants[0].(map[string]interface{}); ok {
			price = priceField(variant, "price")
		}
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, &Error{Kind: models.KindProduct, Reason: "record not serializable", Record: rec}
	}

	return &models.Product{
		ExternalID:  externalID,
		Title:       stringField(rec, "title"),
		Handle:      stringField(rec, "handle"),
		Status:      stringField(rec, "status"),
		Vendor:      stringField(rec, "vendor"),
		ProductType: stringField(rec, "productType"),
		Price:       price,
		AdditionalData: models.JSONB{
			"remote_gid": gid,
			"variants":   variants,
			"images":     images,
			"tags":       tagsField(rec, "tags"),
		},
		RawData: raw,
	}, nil
}

func transformCollection(rec remote.RemoteRecord, gid, externalID string) (models.MirroredEntity, error) {
	productsCount := 0
	if counted := nestedMap(rec, "productsCount"); counted != nil {
		productsCount = intField(counted, "count")
	}

	return &models.Collection{
		ExternalID:  externalID,
		Title:       stringField(rec, "title"),
		Handle:      stringField(rec, "handle"),
		Description: stringField(rec, "description"),
		AdditionalData: models.JSONB{
			"remote_gid":     gid,
			"image":          nestedMap(rec, "image"),
			"products_count": productsCount,
		},
	}, nil
}

func transformCustomer(rec remote.RemoteRecord, gid, externalID string) (models.MirroredEntity, error) {
	totalSpent := "0.00"
	if spent := nestedMap(rec, "amountSpent"); spent != nil {
		totalSpent = priceField(spent, "amount")
	}

	return &models.Customer{
		ExternalID:  externalID,
		Email:       stringField(rec, "email"),
		FirstName:   stringField(rec, "firstName"),
		LastName:    stringField(rec, "lastName"),
		Phone:       stringField(rec, "phone"),
		State:       stringField(rec, "state"),
		OrdersCount: intField(rec, "numberOfOrders"),
		TotalSpent:  totalSpent,
		AdditionalData: models.JSONB{
			"remote_gid":      gid,
			"addresses":       flattenConnection(rec["addresses"]),
			"default_address": nestedMap(rec, "defaultAddress"),
			"tags":            tagsField(rec, "tags"),
		},
	}, nil
}

func transformOrder(rec remote.RemoteRecord, gid, externalID string) (models.MirroredEntity, error) {
	return &models.Order{
		ExternalID:        externalID,
		Name:              stringField(rec, "name"),
		Email:             stringField(rec, "email"),
		FinancialStatus:   stringField(rec, "displayFinancialStatus"),
		FulfillmentStatus: stringField(rec, "displayFulfillmentStatus"),
		Currency:          stringField(rec, "currencyCode"),
		TotalPrice:        priceField(rec, "totalPriceSet"),
		SubtotalPrice:     priceField(rec, "subtotalPriceSet"),
		ProcessedAt:       timeField(rec, "processedAt"),
		AdditionalData: models.JSONB{
			"remote_gid":       gid,
			"line_items":       flattenConnection(rec["lineItems"]),
			"shipping_address": nestedMap(rec, "shippingAddress"),
			"tags":             tagsField(rec, "tags"),
		},
	}, nil
}

func transformPromotion(rec remote.RemoteRecord, gid, externalID string) (models.MirroredEntity, error) {
	discount := nestedMap(rec, "codeDiscount")
	if discount == nil {
		return nil, &Error{Kind: models.KindPromotion, Reason: "missing discount payload", Record: rec}
	}

	code := ""
	if codes := flattenConnection(discount["codes"]); len(codes) > 0 {
		if node, ok := codes[0].(map[string]interface{}); ok {
			code = stringField(node, "code")
		}
	}

	valueType, value := discountValue(discount)

	return &models.Promotion{
		ExternalID: externalID,
		Title:      stringField(discount, "title"),
		Code:       code,
		ValueType:  valueType,
		Value:      value,
		Status:     stringField(discount, "status"),
		StartsAt:   timeField(discount, "startsAt"),
		EndsAt:     timeField(discount, "endsAt"),
		AdditionalData: models.JSONB{
			"remote_gid": gid,
			"discount":   discount,
		},
	}, nil
}

// discountValue reads the customerGets value union: a percentage fraction or
// a fixed money amount.
func discountValue(discount map[string]interface{}) (string, string) {
	gets, ok := discount["customerGets"].(map[string]interface{})
	if !ok {
		return "", "0.00"
	}
	val, ok := gets["value"].(map[string]interface{})
	if !ok {
		return "", "0.00"
	}
	if pct, ok := val["percentage"].(float64); ok {
		return "percentage", strconv.FormatFloat(pct*100, 'f', 2, 64)
	}
	if amount, ok := val["amount"].(map[string]interface{}); ok {
		return "fixed_amount", priceField(amount, "amount")
	}
	return "", "0.00"
}

func transformTutorial(rec remote.RemoteRecord, gid, externalID string) (models.MirroredEntity, error) {
	authorName := ""
	if author := nestedMap(rec, "author"); author != nil {
		authorName = stringField(author, "name")
	}

	return &models.Tutorial{
		ExternalID:  externalID,
		Title:       stringField(rec, "title"),
		Handle:      stringField(rec, "handle"),
		AuthorName:  authorName,
		Tags:        tagsField(rec, "tags"),
		PublishedAt: timeField(rec, "publishedAt"),
		AdditionalData: models.JSONB{
			"remote_gid": gid,
			"blog":       nestedMap(rec, "blog"),
		},
	}, nil
}
