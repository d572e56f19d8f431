package entities

// Currency is the quotation currency code.

type Currency string

const (
	CurrencyCNY Currency = "CNY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// IsValid reports whether c is one of the supported currency codes.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyCNY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Quotation is a priced offer (报价单) held by the in-memory artifact store.
//
// Invariants:
//   - ID is assigned once at creation and never changes.
//   - TotalAmount is always Quantity × UnitPrice, computed at creation;
//     nothing mutates it independently afterwards.
//   - Content holds the rendered quotation document verbatim.

type Quotation struct {
	ID              string   `json:"id"`
	CustomerName    string   `json:"customer_name"`
	CustomerContact string   `json:"customer_contact"`
	ProductName     string   `json:"product_name"`
	Quantity        int      `json:"quantity"`
	UnitPrice       float64  `json:"unit_price"`
	Currency        Currency `json:"currency"`
	DeliveryDate    string   `json:"delivery_date"`
	Remark          string   `json:"remark,omitempty"`

	SalesName    string `json:"sales_name"`
	SalesContact string `json:"sales_contact"`
	SalesPhone   string `json:"sales_phone"`
	SalesEmail   string `json:"sales_email"`

	Content     string  `json:"content"`
	TotalAmount float64 `json:"total_amount"`
	CreateDate  string  `json:"create_date"`
}

// DisplayID returns the user-facing quotation number (QUO + last 8 id digits).
func (q Quotation) DisplayID() string {
	return "QUO" + lastN(q.ID, 8)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
