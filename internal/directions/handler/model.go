package handler

import (
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"github.com/swamyrayudu/localhunt-backend/pkg/types"
)

// storePayload is the wire form of a store location. Prices arrive as
// either numbers or numeric strings.
type storePayload struct {
	ID          string               `json:"id" validate:"required"`
	Latitude    *float64             `json:"latitude"`
	Longitude   *float64             `json:"longitude"`
	DisplayName *string              `json:"displayName"`
	ShopName    *string              `json:"shopName"`
	ProductName *string              `json:"productName"`
	Address     *string              `json:"address"`
	Price       *types.FloatOrString `json:"price"`
	Image       *string              `json:"image"`
}

func (p storePayload) toDomain() store.Location {
	location := store.Location{
		ID:          p.ID,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		DisplayName: p.DisplayName,
		ShopName:    p.ShopName,
		ProductName: p.ProductName,
		Address:     p.Address,
		Image:       p.Image,
	}

	if p.Price != nil {
		price := float64(*p.Price)
		location.Price = &price
	}

	return location
}

func toDomainStores(payloads []storePayload) []store.Location {
	locations := make([]store.Location, 0, len(payloads))
	for _, p := range payloads {
		locations = append(locations, p.toDomain())
	}

	return locations
}

type CreateSessionRequest struct {
	Stores            []storePayload `json:"stores" validate:"omitempty,dive"`
	InitialSelectedID string         `json:"initialSelectedId"`
	Height            int            `json:"height" validate:"omitempty,min=0,max=4000"`
}

type LocateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type ActionRequest struct {
	Type    string `json:"type" validate:"required"`
	StoreID string `json:"storeId" validate:"required"`
}

type SetStoresRequest struct {
	Stores []storePayload `json:"stores" validate:"dive"`
}

type NavigationLinkResponse struct {
	URL string `json:"url"`
}
