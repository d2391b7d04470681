package db

import "github.com/swamyrayudu/localhunt-backend/internal/store"

type productLocationRow struct {
	ID          string
	Latitude    *float64
	Longitude   *float64
	DisplayName *string
	ShopName    *string
	ProductName *string
	Address     *string
	Price       *float64
	ImageKey    *string
}

func (r productLocationRow) toDomain() store.Location {
	return store.Location{
		ID:          r.ID,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		DisplayName: r.DisplayName,
		ShopName:    r.ShopName,
		ProductName: r.ProductName,
		Address:     r.Address,
		Price:       r.Price,
		Image:       r.ImageKey,
	}
}
