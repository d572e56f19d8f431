package response

import (
	"smartcontract/internal/domain/entities"
)

type ContractResponse struct {
	ID          string  `json:"id"`
	DisplayID   string  `json:"display_id"`
	Type        string  `json:"type"`
	Content     string  `json:"content"`
	Seller      string  `json:"seller"`
	Buyer       string  `json:"buyer"`
	ProductName string  `json:"product_name"`
	TotalAmount float64 `json:"total_amount"`
	CreateDate  string  `json:"create_date"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		DisplayID:   c.DisplayID(),
		Type:        string(c.Type),
		Content:     c.Content,
		Seller:      c.Seller,
		Buyer:       c.Buyer,
		ProductName: c.ProductName,
		TotalAmount: c.TotalAmount,
		CreateDate:  c.CreateDate,
	}
}

func FromContracts(cs []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContract(c))
	}
	return out
}
