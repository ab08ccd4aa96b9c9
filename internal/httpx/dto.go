package httpx

// CreateProductRequest is the input-provider payload for the product
// factory. Only the fields relevant to the requested variant are read.
type CreateProductRequest struct {
	Category string  `json:"category"`
	Variant  string  `json:"variant"`
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`

	Brand      string `json:"brand,omitempty"`
	Processor  string `json:"processor,omitempty"`
	RAM        int    `json:"ram,omitempty"`
	Storage    int    `json:"storage,omitempty"`
	Material   string `json:"material,omitempty"`
	Color      string `json:"color,omitempty"`
	ChairType  string `json:"chair_type,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
	Size       string `json:"size,omitempty"`
	Fabric     string `json:"fabric,omitempty"`
	DenimStyle string `json:"denim_style,omitempty"`
}

type IncreaseStockRequest struct {
	Quantity int `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items []OrderItemDTO `json:"items"`
}

type OrderItemDTO struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type OrderResponse struct {
	OrderID   int                 `json:"order_id"`
	Paid      bool                `json:"paid"`
	Total     float64             `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt string              `json:"created_at"`
}

type OrderItemResponse struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type CancelOrderResponse struct {
	OrderID   int     `json:"order_id"`
	Cancelled bool    `json:"cancelled"`
	Refunded  float64 `json:"refunded"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
