package response

import (
	"smartcontract/internal/domain/entities"
)

type QuotationResponse struct {
	ID              string  `json:"id"`
	DisplayID       string  `json:"display_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerContact string  `json:"customer_contact"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Currency        string  `json:"currency"`
	DeliveryDate    string  `json:"delivery_date"`
	Remark          string  `json:"remark,omitempty"`
	Content         string  `json:"content"`
	TotalAmount     float64 `json:"total_amount"`
	CreateDate      string  `json:"create_date"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:              q.ID,
		DisplayID:       q.DisplayID(),
		CustomerName:    q.CustomerName,
		CustomerContact: q.CustomerContact,
		ProductName:     q.ProductName,
		Quantity:        q.Quantity,
		UnitPrice:       q.UnitPrice,
		Currency:        string(q.Currency),
		DeliveryDate:    q.DeliveryDate,
		Remark:          q.Remark,
		Content:         q.Content,
		TotalAmount:     q.TotalAmount,
		CreateDate:      q.CreateDate,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
