// Package catalog holds the supply-chain master data entities and their
// storage mappings.
package catalog

import "time"

type Supplier struct {
	ID            int64  `db:"supplier_id" json:"supplierId"`
	Name          string `db:"name" json:"name"`
	Description   string `db:"description" json:"description"`
	ContactPerson string `db:"contact_person" json:"contactPerson"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
}

type Product struct {
	ID          int64   `db:"product_id" json:"productId"`
	SupplierID  *int64  `db:"supplier_id" json:"supplierId,omitempty"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	SKU         string  `db:"sku" json:"sku"`
	Unit        string  `db:"unit" json:"unit"`
	ImgName     string  `db:"img_name" json:"imgName"`
}

type Headquarters struct {
	ID            int64  `db:"headquarters_id" json:"headquartersId"`
	Name          string `db:"name" json:"name"`
	Description   string `db:"description" json:"description"`
	Address       string `db:"address" json:"address"`
	ContactPerson string `db:"contact_person" json:"contactPerson"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
}

type Branch struct {
	ID             int64  `db:"branch_id" json:"branchId"`
	HeadquartersID *int64 `db:"headquarters_id" json:"headquartersId,omitempty"`
	Name           string `db:"name" json:"name"`
	Description    string `db:"description" json:"description"`
	Address        string `db:"address" json:"address"`
	Phone          string `db:"phone" json:"phone"`
}

type Delivery struct {
	ID           int64      `db:"delivery_id" json:"deliveryId"`
	OrderID      *int64     `db:"order_id" json:"orderId,omitempty"`
	Name         string     `db:"name" json:"name"`
	Description  string     `db:"description" json:"description"`
	Status       string     `db:"status" json:"status"`
	DeliveryDate *time.Time `db:"delivery_date" json:"deliveryDate,omitempty"`
}
