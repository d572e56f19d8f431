package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase/session"

	mock_interfaces "smartcontract/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContractUseCase_GenerateContract_Validations(t *testing.T) {
	t.Run("empty template id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil, nil, nil, session.New())
		_, err := uc.GenerateContract(context.Background(), "  ", entities.ContractData{})
		if !errors.Is(err, ErrInvalidTemplateID) {
			t.Fatalf("expected ErrInvalidTemplateID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil, nil, nil, session.New())
		_, err := uc.GenerateContract(context.Background(), "purchase_contract", entities.ContractData{})
		if err == nil || err.Error() != "document gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestContractUseCase_GenerateContract_AppliesDataDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	gateway := mock_interfaces.NewMockIDocumentGateway(ctrl)
	clock := mock_interfaces.NewMockClock(ctrl)
	idgen := mock_interfaces.NewMockIDGenerator(ctrl)
	sess := session.New()
	uc := NewContractUseCase(store, gateway, nil, clock, idgen, sess)

	gateway.EXPECT().GenerateContract(gomock.Any(), "purchase_contract", entities.ContractData{
		Seller:      "供应商名称",
		Buyer:       "采购商名称",
		ProductName: "产品名称",
		Amount:      10000,
		Quantity:    10,
	}).Return("# 采购合同", nil)
	clock.EXPECT().Now().Return(time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC))
	idgen.EXPECT().Next().Return("1765535400000")
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Contract) (entities.Contract, error) {
			return c, nil
		})

	created, err := uc.GenerateContract(context.Background(), "purchase_contract", entities.ContractData{})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if created.Type != entities.ContractTypePurchase {
		t.Fatalf("expected 采购合同, got %s", created.Type)
	}
	if created.TotalAmount != 100000 {
		t.Fatalf("expected total 100000, got %v", created.TotalAmount)
	}
	if created.CreateDate != "2025/12/12" {
		t.Fatalf("unexpected create date %s", created.CreateDate)
	}
	if !sess.Snapshot().Contract.Open {
		t.Fatalf("expected contract preview opened")
	}
}

func TestContractUseCase_GenerateContract_GatewayFailureSkipsInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	gateway := mock_interfaces.NewMockIDocumentGateway(ctrl)
	sess := session.New()
	uc := NewContractUseCase(store, gateway, nil, nil, nil, sess)

	gateway.EXPECT().GenerateContract(gomock.Any(), "sales_contract", gomock.Any()).Return("", errors.New("service unavailable"))

	_, err := uc.GenerateContract(context.Background(), "sales_contract", entities.ContractData{Seller: "甲方"})
	if !errors.Is(err, ErrContractGenerationFailed) {
		t.Fatalf("expected ErrContractGenerationFailed, got %v", err)
	}

	// The store mock has no Insert expectation: a call would fail the test.
	st := sess.Snapshot()
	if st.Contract.Open {
		t.Fatalf("failed generation must not open a preview")
	}
	if st.Loading {
		t.Fatalf("loading must be released on the failure path")
	}
}

func TestContractUseCase_GenerateContract_InsertOnlyAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	gateway := mock_interfaces.NewMockIDocumentGateway(ctrl)
	clock := mock_interfaces.NewMockClock(ctrl)
	idgen := mock_interfaces.NewMockIDGenerator(ctrl)
	sess := session.New()
	uc := NewContractUseCase(store, gateway, nil, clock, idgen, sess)

	data := entities.ContractData{Seller: "甲方", Buyer: "乙方", ProductName: "设备", Amount: 500, Quantity: 4}
	gateway.EXPECT().GenerateContract(gomock.Any(), "service_contract", data).Return("# 服务合同", nil)
	clock.EXPECT().Now().Return(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	idgen.EXPECT().Next().Return("1767571200000")
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Contract) (entities.Contract, error) {
			if c.Content != "# 服务合同" {
				t.Fatalf("inserted contract must carry the remote content, got %q", c.Content)
			}
			return c, nil
		})

	created, err := uc.GenerateContract(context.Background(), "service_contract", data)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if created.Type != entities.ContractTypeService {
		t.Fatalf("expected 服务合同, got %s", created.Type)
	}
	if created.TotalAmount != 2000 {
		t.Fatalf("expected total 2000, got %v", created.TotalAmount)
	}
	if created.Seller != "甲方" || created.Buyer != "乙方" {
		t.Fatalf("explicit data must not be overwritten: %+v", created)
	}
}

func TestContractUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil, nil, nil, session.New())
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		uc := NewContractUseCase(store, nil, nil, nil, nil, session.New())

		store.EXPECT().FindByID(gomock.Any(), "c-1").Return(entities.Contract{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestContractUseCase_DownloadContract(t *testing.T) {
	t.Run("filename layout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		exporter := mock_interfaces.NewMockIFileExporter(ctrl)
		uc := NewContractUseCase(store, nil, exporter, nil, nil, session.New())

		store.EXPECT().FindByID(gomock.Any(), "c-1").Return(entities.Contract{
			ID:         "c-1",
			Type:       entities.ContractTypePurchase,
			CreateDate: "2025/12/12",
			Content:    "# 采购合同",
		}, nil)
		exporter.EXPECT().Export("合同_采购合同_2025-12-12.md", "# 采购合同").Return("/exports/合同_采购合同_2025-12-12.md", nil)

		path, err := uc.DownloadContract(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("download failed: %v", err)
		}
		if path != "/exports/合同_采购合同_2025-12-12.md" {
			t.Fatalf("unexpected path %s", path)
		}
	})

	t.Run("export failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		exporter := mock_interfaces.NewMockIFileExporter(ctrl)
		uc := NewContractUseCase(store, nil, exporter, nil, nil, session.New())

		store.EXPECT().FindByID(gomock.Any(), "c-1").Return(entities.Contract{ID: "c-1", Type: entities.ContractTypeSales, CreateDate: "2025/12/12"}, nil)
		exporter.EXPECT().Export(gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		_, err := uc.DownloadContract(context.Background(), "c-1")
		if !errors.Is(err, ErrContractExportFailed) {
			t.Fatalf("expected ErrContractExportFailed, got %v", err)
		}
	})
}

func TestContractUseCase_DeleteContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	uc := NewContractUseCase(store, nil, nil, nil, nil, session.New())

	store.EXPECT().RemoveByID(gomock.Any(), "c-1").Return(nil)

	if err := uc.DeleteContract(context.Background(), "c-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := uc.DeleteContract(context.Background(), " "); !errors.Is(err, ErrInvalidContractID) {
		t.Fatalf("expected ErrInvalidContractID, got %v", err)
	}
}
