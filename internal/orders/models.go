package orders

import (
	"time"

	"github.com/copilot-skills-example/octocat-supply-api/internal/catalog"
)

type Order struct {
	ID          int64     `db:"order_id" json:"orderId"`
	BranchID    int64     `db:"branch_id" json:"branchId"`
	OrderDate   time.Time `db:"order_date" json:"orderDate"`
	Status      string    `db:"status" json:"status"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
}

// OrderDetail.UnitPrice is a snapshot of the product price at order-creation
// time; later price changes never touch existing rows.
type OrderDetail struct {
	ID        int64   `db:"order_detail_id" json:"orderDetailId"`
	OrderID   int64   `db:"order_id" json:"orderId"`
	ProductID int64   `db:"product_id" json:"productId"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unitPrice"`
	Notes     string  `db:"notes" json:"notes"`
}

type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CartOrderRequest struct {
	BranchID int64      `json:"branchId"`
	Items    []CartItem `json:"items"`
}

type CartOrderDetail struct {
	OrderDetail
	Product *catalog.Product `json:"product"`
}

type CartOrderResponse struct {
	Order
	Details []CartOrderDetail `json:"details"`
}
