package http

import (
	"time"

	"foodcourt/internal/core/application/usecases/queries"
)

// Request payloads.

type addCartItemRequest struct {
	MenuItemID   string `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions"`
}

type updateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryCity    string `json:"deliveryCity"`
	PaymentMethod   string `json:"paymentMethod"`
	Instructions    string `json:"instructions"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type processPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	PhoneNumber   string `json:"phoneNumber"`
	CardLastFour  string `json:"cardLastFour"`
}

type submitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Response payloads. Monetary amounts are rendered as fixed two-decimal
// strings so clients never see binary floating point artifacts.

type cartLineResponse struct {
	LineID       string `json:"lineId"`
	MenuItemID   string `json:"menuItemId"`
	ItemName     string `json:"itemName"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unitPrice"`
	Subtotal     string `json:"subtotal"`
	Instructions string `json:"instructions,omitempty"`
}

type cartResponse struct {
	RestaurantID   *string            `json:"restaurantId"`
	RestaurantName string             `json:"restaurantName,omitempty"`
	Lines          []cartLineResponse `json:"lines"`
	Total          string             `json:"total"`
	ItemCount      int                `json:"itemCount"`
}

type checkoutResponse struct {
	OrderNumber string `json:"orderNumber"`
}

type orderSummaryResponse struct {
	Number          string    `json:"number"`
	RestaurantID    string    `json:"restaurantId"`
	RestaurantName  string    `json:"restaurantName"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentState    string    `json:"paymentState"`
	GrandTotal      string    `json:"grandTotal"`
	DeliveryAddress string    `json:"deliveryAddress"`
	DeliveryCity    string    `json:"deliveryCity"`
	CreatedAt       time.Time `json:"createdAt"`
}

type orderLineResponse struct {
	MenuItemID   string `json:"menuItemId"`
	ItemName     string `json:"itemName"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unitPrice"`
	Instructions string `json:"instructions,omitempty"`
}

type orderDetailResponse struct {
	orderSummaryResponse
	Subtotal     string              `json:"subtotal"`
	DeliveryFee  string              `json:"deliveryFee"`
	Tax          string              `json:"tax"`
	Instructions string              `json:"instructions,omitempty"`
	Lines        []orderLineResponse `json:"lines"`
}

type processPaymentResponse struct {
	TransactionID string `json:"transactionId"`
}

func renderCart(view queries.GetCartQueryResponse) cartResponse {
	response := cartResponse{
		RestaurantName: view.RestaurantName,
		Lines:          make([]cartLineResponse, 0, len(view.Lines)),
		Total:          view.Total.StringFixed(2),
		ItemCount:      view.ItemCount,
	}

	if view.RestaurantID != nil {
		id := view.RestaurantID.String()
		response.RestaurantID = &id
	}

	for _, line := range view.Lines {
		response.Lines = append(response.Lines, cartLineResponse{
			LineID:       line.LineID.String(),
			MenuItemID:   line.MenuItemID.String(),
			ItemName:     line.ItemName,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice.StringFixed(2),
			Subtotal:     line.Subtotal.StringFixed(2),
			Instructions: line.Instructions,
		})
	}

	return response
}

func renderOrderSummary(summary queries.OrderSummary) orderSummaryResponse {
	return orderSummaryResponse{
		Number:          summary.Number,
		RestaurantID:    summary.RestaurantID.String(),
		RestaurantName:  summary.RestaurantName,
		Status:          summary.Status,
		PaymentMethod:   summary.PaymentMethod,
		PaymentState:    summary.PaymentState,
		GrandTotal:      summary.GrandTotal.StringFixed(2),
		DeliveryAddress: summary.DeliveryAddress,
		DeliveryCity:    summary.DeliveryCity,
		CreatedAt:       summary.CreatedAt,
	}
}

func renderOrderSummaries(summaries []queries.OrderSummary) []orderSummaryResponse {
	response := make([]orderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, renderOrderSummary(summary))
	}
	return response
}

func renderOrderDetail(detail queries.OrderDetail) orderDetailResponse {
	response := orderDetailResponse{
		orderSummaryResponse: renderOrderSummary(detail.OrderSummary),
		Subtotal:             detail.Subtotal.StringFixed(2),
		DeliveryFee:          detail.DeliveryFee.StringFixed(2),
		Tax:                  detail.Tax.StringFixed(2),
		Instructions:         detail.Instructions,
		Lines:                make([]orderLineResponse, 0, len(detail.Lines)),
	}

	for _, line := range detail.Lines {
		response.Lines = append(response.Lines, orderLineResponse{
			MenuItemID:   line.MenuItemID.String(),
			ItemName:     line.ItemName,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice.StringFixed(2),
			Instructions: line.Instructions,
		})
	}

	return response
}
