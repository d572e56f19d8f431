package request

import (
	"strings"

	"smartcontract/internal/domain/entities"
)

// ContractDataRequest is the optional business data forwarded to the
// generation service. Blank fields get platform defaults in the use case.

type ContractDataRequest struct {
	Seller      string  `json:"seller"`
	Buyer       string  `json:"buyer"`
	Amount      float64 `json:"amount"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
}

// GenerateContractRequest selects the contract template and optionally the
// data rendered into it.

type GenerateContractRequest struct {
	TemplateID string               `json:"template_id" binding:"required"`
	Data       *ContractDataRequest `json:"data"`
}

func (r GenerateContractRequest) ResolveTemplateID() string {
	return strings.TrimSpace(r.TemplateID)
}

func (r GenerateContractRequest) ResolveData() entities.ContractData {
	if r.Data == nil {
		return entities.ContractData{}
	}
	return entities.ContractData{
		Seller:      strings.TrimSpace(r.Data.Seller),
		Buyer:       strings.TrimSpace(r.Data.Buyer),
		Amount:      r.Data.Amount,
		ProductName: strings.TrimSpace(r.Data.ProductName),
		Quantity:    r.Data.Quantity,
	}
}
