package request

import (
	"smartcontract/internal/domain/entities"
	"smartcontract/internal/domain/template"
)

// CreateQuotationRequest carries the quotation form fields. The binding tags
// cover presence of the required fields; value-level validation (positive
// quantity, known currency) happens in the use case so the aggregate error
// is produced in one place.

type CreateQuotationRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerContact string  `json:"customer_contact" binding:"required"`
	ProductName     string  `json:"product_name" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required"`
	UnitPrice       float64 `json:"unit_price"`
	Currency        string  `json:"currency" binding:"required"`
	DeliveryDate    string  `json:"delivery_date" binding:"required"`
	Remark          string  `json:"remark"`
	SalesName       string  `json:"sales_name"`
	SalesContact    string  `json:"sales_contact"`
	SalesPhone      string  `json:"sales_phone"`
	SalesEmail      string  `json:"sales_email"`
}

func (r CreateQuotationRequest) ToInput() template.QuotationInput {
	return template.QuotationInput{
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		ProductName:     r.ProductName,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		Currency:        entities.Currency(r.Currency),
		DeliveryDate:    r.DeliveryDate,
		Remark:          r.Remark,
		SalesName:       r.SalesName,
		SalesContact:    r.SalesContact,
		SalesPhone:      r.SalesPhone,
		SalesEmail:      r.SalesEmail,
	}
}
