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
	ErrContractNotFound         = errors.New("contract not found")
	ErrInvalidContractID        = errors.New("invalid contract id")
	ErrInvalidTemplateID        = errors.New("invalid template id")
	ErrContractGenerationFailed = errors.New("contract generation failed")
	ErrContractExportFailed     = errors.New("contract export failed")
)

// Generation data defaults used when the caller leaves fields blank.
const (
	defaultSeller      = "供应商名称"
	defaultBuyer       = "采购商名称"
	defaultProductName = "产品名称"
	defaultAmount      = 10000
	defaultQuantity    = 10
)

// IContractUseCase exposes the contract lifecycle operations.
//
// GenerateContract is the only flow with a remote call; a gateway failure
// surfaces once and leaves the contract collection untouched.

type IContractUseCase interface {
	GenerateContract(ctx context.Context, templateID string, data entities.ContractData) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	ListContracts(ctx context.Context) ([]entities.Contract, error)
	DeleteContract(ctx context.Context, id string) error
	DownloadContract(ctx context.Context, id string) (string, error)
}

type ContractUseCase struct {
	store    interfaces.IContractStore
	gateway  interfaces.IDocumentGateway
	exporter interfaces.IFileExporter
	clock    interfaces.Clock
	idgen    interfaces.IDGenerator
	session  *session.Session
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(store interfaces.IContractStore, gateway interfaces.IDocumentGateway, exporter interfaces.IFileExporter, clock interfaces.Clock, idgen interfaces.IDGenerator, sess *session.Session) *ContractUseCase {
	return &ContractUseCase{store: store, gateway: gateway, exporter: exporter, clock: clock, idgen: idgen, session: sess}
}

// GenerateContract calls the remote generation service and, only on success,
// inserts the resulting contract and opens the contract preview. The entity
// is built after the full response arrives so a failure can never leave a
// partially-constructed contract behind.
func (u *ContractUseCase) GenerateContract(ctx context.Context, templateID string, data entities.ContractData) (entities.Contract, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		log.Printf("[contract][usecase] generate rejected: empty template id")
		return entities.Contract{}, ErrInvalidTemplateID
	}
	if u.gateway == nil {
		return entities.Contract{}, errors.New("document gateway not configured")
	}

	release := u.session.Begin()
	defer release()

	data = withGenerationDefaults(data)
	log.Printf("[contract][usecase] generate start template_id=%s seller=%s buyer=%s", templateID, data.Seller, data.Buyer)

	content, err := u.gateway.GenerateContract(ctx, templateID, data)
	if err != nil {
		log.Printf("[contract][usecase] gateway failed template_id=%s err=%v", templateID, err)
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrContractGenerationFailed, err)
	}

	now := u.clock.Now()
	c := entities.Contract{
		ID:          u.idgen.Next(),
		Type:        entities.ContractTypeFromTemplate(templateID),
		Content:     content,
		Seller:      data.Seller,
		Buyer:       data.Buyer,
		ProductName: data.ProductName,
		TotalAmount: data.Amount * float64(data.Quantity),
		CreateDate:  now.Format(template.DateLayout),
	}

	created, err := u.store.Insert(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] insert failed id=%s err=%v", c.ID, err)
		return entities.Contract{}, err
	}

	u.session.ShowContract(created.Content)
	log.Printf("[contract][usecase] generate success id=%s type=%s total=%s", created.ID, created.Type, formatTotal(created.TotalAmount))
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.store.FindByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) ListContracts(ctx context.Context) ([]entities.Contract, error) {
	return u.store.All(ctx)
}

// DeleteContract removes the contract; a missing id is a benign no-op.
func (u *ContractUseCase) DeleteContract(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidContractID
	}
	if err := u.store.RemoveByID(ctx, id); err != nil {
		log.Printf("[contract][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[contract][usecase] delete success id=%s", id)
	return nil
}

// DownloadContract exports the contract content verbatim and returns the
// path written.
func (u *ContractUseCase) DownloadContract(ctx context.Context, id string) (string, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("合同_%s_%s.md", c.Type, dashedDate(c.CreateDate))
	path, err := u.exporter.Export(filename, c.Content)
	if err != nil {
		log.Printf("[contract][usecase] export failed id=%s err=%v", c.ID, err)
		return "", fmt.Errorf("%w: %v", ErrContractExportFailed, err)
	}
	log.Printf("[contract][usecase] export success id=%s path=%s", c.ID, path)
	return path, nil
}

func withGenerationDefaults(data entities.ContractData) entities.ContractData {
	if strings.TrimSpace(data.Seller) == "" {
		data.Seller = defaultSeller
	}
	if strings.TrimSpace(data.Buyer) == "" {
		data.Buyer = defaultBuyer
	}
	if strings.TrimSpace(data.ProductName) == "" {
		data.ProductName = defaultProductName
	}
	if data.Amount <= 0 {
		data.Amount = defaultAmount
	}
	if data.Quantity <= 0 {
		data.Quantity = defaultQuantity
	}
	return data
}
