// Package template renders quotation documents.
//
// Rendering is pure: the current date and the identifier are injected by the
// caller so the output is fully deterministic and testable.
package template

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"smartcontract/internal/domain/entities"
)

// Defaults substituted for optional quotation fields.
const (
	DefaultRemark       = "无"
	DefaultSalesName    = "智合同平台"
	DefaultSalesContact = "销售经理"
	DefaultSalesPhone   = "400-123-4567"
	DefaultSalesEmail   = "sales@smart-contract.ai"
)

// DateLayout is the display layout used for creation and signing dates.
const DateLayout = "2006/1/2"

// QuotationInput is everything the renderer needs to produce a quotation
// document. Required-field validation happens before rendering; Render itself
// never fails on well-typed input.

type QuotationInput struct {
	CustomerName    string
	CustomerContact string
	ProductName     string
	Quantity        int
	UnitPrice       float64
	Currency        entities.Currency
	DeliveryDate    string
	Remark          string
	SalesName       string
	SalesContact    string
	SalesPhone      string
	SalesEmail      string
}

// TotalAmount derives the quotation total. The store never carries a total
// that was not computed here or by the same formula.
func (in QuotationInput) TotalAmount() float64 {
	return float64(in.Quantity) * in.UnitPrice
}

// Render produces the quotation document text for in.
//
// now supplies the creation date and id the quotation identifier; both come
// from the caller's Clock/IDGenerator capabilities.
func Render(in QuotationInput, now time.Time, id string) string {
	total := in.TotalAmount()

	var b strings.Builder
	b.WriteString("# 报价单\n\n")
	fmt.Fprintf(&b, "## 报价单编号：%s\n", serial(id))
	fmt.Fprintf(&b, "## 创建日期：%s\n\n", now.Format(DateLayout))
	b.WriteString("### 客户信息\n")
	fmt.Fprintf(&b, "客户名称：%s\n", in.CustomerName)
	fmt.Fprintf(&b, "联系人：%s\n\n", in.CustomerContact)
	b.WriteString("### 产品信息\n")
	fmt.Fprintf(&b, "产品名称：%s\n", in.ProductName)
	fmt.Fprintf(&b, "数量：%d 件\n", in.Quantity)
	fmt.Fprintf(&b, "单价：%s %s\n", formatAmount(in.UnitPrice), in.Currency)
	fmt.Fprintf(&b, "总金额：%s %s\n\n", formatAmount(total), in.Currency)
	b.WriteString("### 交货信息\n")
	fmt.Fprintf(&b, "交货日期：%s\n\n", in.DeliveryDate)
	b.WriteString("### 备注\n")
	fmt.Fprintf(&b, "%s\n\n", defaultIfEmpty(in.Remark, DefaultRemark))
	b.WriteString("### 报价有效期\n")
	b.WriteString("自报价之日起30天内有效\n\n")
	b.WriteString("### 联系方式\n")
	fmt.Fprintf(&b, "销售方：%s\n", defaultIfEmpty(in.SalesName, DefaultSalesName))
	fmt.Fprintf(&b, "联系人：%s\n", defaultIfEmpty(in.SalesContact, DefaultSalesContact))
	fmt.Fprintf(&b, "电话：%s\n", defaultIfEmpty(in.SalesPhone, DefaultSalesPhone))
	fmt.Fprintf(&b, "邮箱：%s\n", defaultIfEmpty(in.SalesEmail, DefaultSalesEmail))
	return b.String()
}

func serial(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return "QUO" + id
}

// formatAmount renders money without trailing zeros (50, 125.5).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func defaultIfEmpty(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
