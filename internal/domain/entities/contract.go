package entities

// ContractType is the business category of a generated contract.
//
// Values are the user-facing Chinese labels because that is exactly what the
// platform displays and embeds in export filenames.

type ContractType string

const (
	ContractTypePurchase ContractType = "采购合同"
	ContractTypeSales    ContractType = "销售合同"
	ContractTypeService  ContractType = "服务合同"
)

// ContractTypeFromTemplate maps a generation template id to the contract type
// recorded on the stored entity. Unknown templates fall back to 采购合同,
// mirroring the platform default.
func ContractTypeFromTemplate(templateID string) ContractType {
	switch templateID {
	case "sales_contract":
		return ContractTypeSales
	case "service_contract":
		return ContractTypeService
	default:
		return ContractTypePurchase
	}
}

// ContractData is the payload sent to the remote generation service.

type ContractData struct {
	Seller      string  `json:"seller"`
	Buyer       string  `json:"buyer"`
	Amount      float64 `json:"amount"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
}

// Contract is a generated contract document held by the artifact store.
//
// Content is opaque to this service: it is stored and exported verbatim and
// never parsed.

type Contract struct {
	ID          string       `json:"id"`
	Type        ContractType `json:"type"`
	Content     string       `json:"content"`
	Seller      string       `json:"seller"`
	Buyer       string       `json:"buyer"`
	ProductName string       `json:"product_name"`
	TotalAmount float64      `json:"total_amount"`
	CreateDate  string       `json:"create_date"`
}

// DisplayID returns the user-facing contract number (CON + last 8 id digits).
func (c Contract) DisplayID() string {
	return "CON" + lastN(c.ID, 8)
}
