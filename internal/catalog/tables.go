package catalog

import (
	"github.com/copilot-skills-example/octocat-supply-api/internal/storage"
)

func Suppliers(db storage.Querier) *storage.Table[Supplier] {
	return storage.NewTable(db, storage.Mapping[Supplier]{
		Table:    "suppliers",
		IDColumn: "supplier_id",
		Columns:  []string{"name", "description", "contact_person", "email", "phone"},
		Values: func(s *Supplier) []any {
			return []any{s.Name, s.Description, s.ContactPerson, s.Email, s.Phone}
		},
		SetID:   func(s *Supplier, id int64) { s.ID = id },
		OrderBy: "name",
	})
}

func Products(db storage.Querier) *storage.Table[Product] {
	return storage.NewTable(db, storage.Mapping[Product]{
		Table:    "products",
		IDColumn: "product_id",
		Columns:  []string{"supplier_id", "name", "description", "price", "sku", "unit", "img_name"},
		Values: func(p *Product) []any {
			return []any{p.SupplierID, p.Name, p.Description, p.Price, p.SKU, p.Unit, p.ImgName}
		},
		SetID:   func(p *Product, id int64) { p.ID = id },
		OrderBy: "sku",
	})
}

func HeadquartersTable(db storage.Querier) *storage.Table[Headquarters] {
	return storage.NewTable(db, storage.Mapping[Headquarters]{
		Table:    "headquarters",
		IDColumn: "headquarters_id",
		Columns:  []string{"name", "description", "address", "contact_person", "email", "phone"},
		Values: func(h *Headquarters) []any {
			return []any{h.Name, h.Description, h.Address, h.ContactPerson, h.Email, h.Phone}
		},
		SetID:   func(h *Headquarters, id int64) { h.ID = id },
		OrderBy: "name",
	})
}

func Branches(db storage.Querier) *storage.Table[Branch] {
	return storage.NewTable(db, storage.Mapping[Branch]{
		Table:    "branches",
		IDColumn: "branch_id",
		Columns:  []string{"headquarters_id", "name", "description", "address", "phone"},
		Values: func(b *Branch) []any {
			return []any{b.HeadquartersID, b.Name, b.Description, b.Address, b.Phone}
		},
		SetID:   func(b *Branch, id int64) { b.ID = id },
		OrderBy: "name",
	})
}

func Deliveries(db storage.Querier) *storage.Table[Delivery] {
	return storage.NewTable(db, storage.Mapping[Delivery]{
		Table:    "deliveries",
		IDColumn: "delivery_id",
		Columns:  []string{"order_id", "name", "description", "status", "delivery_date"},
		Values: func(d *Delivery) []any {
			return []any{d.OrderID, d.Name, d.Description, d.Status, d.DeliveryDate}
		},
		SetID: func(d *Delivery, id int64) { d.ID = id },
	})
}
