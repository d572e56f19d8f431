package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"smartcontract/internal/domain/entities"
	"smartcontract/internal/domain/template"
	"smartcontract/internal/usecase/interfaces"
	"smartcontract/internal/usecase/session"
)

var (
	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrInvalidQuotationID    = errors.New("invalid quotation id")
	ErrInvalidQuotationInput = errors.New("invalid quotation input")
	ErrQuotationExportFailed = errors.New("quotation export failed")
)

// IQuotationUseCase exposes the quotation lifecycle operations.
//
// Each operation is an independent short-lived flow:
//   - CreateQuotation: validate → render → insert → open quotation preview
//   - DownloadQuotation: lookup → export content as 报价单_{customer}_{date}.md
//   - DeleteQuotation: idempotent removal

type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, in template.QuotationInput) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListQuotations(ctx context.Context) ([]entities.Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error
	DownloadQuotation(ctx context.Context, id string) (string, error)
}

type QuotationUseCase struct {
	store    interfaces.IQuotationStore
	exporter interfaces.IFileExporter
	clock    interfaces.Clock
	idgen    interfaces.IDGenerator
	session  *session.Session
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(store interfaces.IQuotationStore, exporter interfaces.IFileExporter, clock interfaces.Clock, idgen interfaces.IDGenerator, sess *session.Session) *QuotationUseCase {
	return &QuotationUseCase{store: store, exporter: exporter, clock: clock, idgen: idgen, session: sess}
}

// CreateQuotation validates the form input, renders the quotation document
// and inserts the new entity. Rendering cannot fail, so the only failure
// modes are validation and store errors; on either, nothing is mutated.
func (u *QuotationUseCase) CreateQuotation(ctx context.Context, in template.QuotationInput) (entities.Quotation, error) {
	if err := validateQuotationInput(in); err != nil {
		log.Printf("[quotation][usecase] create rejected err=%v", err)
		return entities.Quotation{}, err
	}

	now := u.clock.Now()
	id := u.idgen.Next()
	content := template.Render(in, now, id)

	q := entities.Quotation{
		ID:              id,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerContact: strings.TrimSpace(in.CustomerContact),
		ProductName:     strings.TrimSpace(in.ProductName),
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		Currency:        in.Currency,
		DeliveryDate:    strings.TrimSpace(in.DeliveryDate),
		Remark:          strings.TrimSpace(in.Remark),
		SalesName:       orDefault(in.SalesName, template.DefaultSalesName),
		SalesContact:    orDefault(in.SalesContact, template.DefaultSalesContact),
		SalesPhone:      orDefault(in.SalesPhone, template.DefaultSalesPhone),
		SalesEmail:      orDefault(in.SalesEmail, template.DefaultSalesEmail),
		Content:         content,
		TotalAmount:     in.TotalAmount(),
		CreateDate:      now.Format(template.DateLayout),
	}

	created, err := u.store.Insert(ctx, q)
	if err != nil {
		log.Printf("[quotation][usecase] insert failed id=%s err=%v", id, err)
		return entities.Quotation{}, err
	}

	u.session.ShowQuotation(created.Content)
	log.Printf("[quotation][usecase] create success id=%s customer=%s total=%s", created.ID, created.CustomerName, formatTotal(created.TotalAmount))
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.store.FindByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListQuotations(ctx context.Context) ([]entities.Quotation, error) {
	return u.store.All(ctx)
}

// DeleteQuotation removes the quotation. Deleting an id that no longer
// exists is a benign no-op, not an error: the delete may have raced another
// delete for the same row.
func (u *QuotationUseCase) DeleteQuotation(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuotationID
	}
	if err := u.store.RemoveByID(ctx, id); err != nil {
		log.Printf("[quotation][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[quotation][usecase] delete success id=%s", id)
	return nil
}

// DownloadQuotation exports the quotation content verbatim and returns the
// path written.
func (u *QuotationUseCase) DownloadQuotation(ctx context.Context, id string) (string, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("报价单_%s_%s.md", q.CustomerName, dashedDate(q.CreateDate))
	path, err := u.exporter.Export(filename, q.Content)
	if err != nil {
		log.Printf("[quotation][usecase] export failed id=%s err=%v", q.ID, err)
		return "", fmt.Errorf("%w: %v", ErrQuotationExportFailed, err)
	}
	log.Printf("[quotation][usecase] export success id=%s path=%s", q.ID, path)
	return path, nil
}

func validateQuotationInput(in template.QuotationInput) error {
	var missing []string
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(in.CustomerContact) == "" {
		missing = append(missing, "customer_contact")
	}
	if strings.TrimSpace(in.ProductName) == "" {
		missing = append(missing, "product_name")
	}
	if strings.TrimSpace(in.DeliveryDate) == "" {
		missing = append(missing, "delivery_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidQuotationInput, strings.Join(missing, ", "))
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidQuotationInput)
	}
	if in.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", ErrInvalidQuotationInput)
	}
	if !in.Currency.IsValid() {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidQuotationInput, in.Currency)
	}
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// dashedDate turns the display date (2025/12/12) into its filename-safe form.
func dashedDate(d string) string {
	return strings.ReplaceAll(d, "/", "-")
}

func formatTotal(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
