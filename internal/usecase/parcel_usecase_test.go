package usecase

import (
	"context"
	"errors"
	"testing"

	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase/interfaces"
	mock_interfaces "zapshift/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCreateParcel(t *testing.T) {
	t.Run("blank fields rejected", func(t *testing.T) {
		uc := NewParcelUseCase(nil, nil)
		_, err := uc.CreateParcel(context.Background(), " ", "books", "12.50")
		if !errors.Is(err, ErrInvalidParcelInput) {
			t.Fatalf("expected ErrInvalidParcelInput, got %v", err)
		}
		_, err = uc.CreateParcel(context.Background(), "a@b.com", "", "12.50")
		if !errors.Is(err, ErrInvalidParcelInput) {
			t.Fatalf("expected ErrInvalidParcelInput, got %v", err)
		}
		_, err = uc.CreateParcel(context.Background(), "a@b.com", "books", "  ")
		if !errors.Is(err, ErrInvalidParcelInput) {
			t.Fatalf("expected ErrInvalidParcelInput, got %v", err)
		}
	})

	t.Run("new parcel starts pending without tracking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParcelRepository(ctrl)
		uc := NewParcelUseCase(repo, nil)

		var created entities.Parcel
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Parcel) (entities.Parcel, error) {
				created = p
				return p, nil
			})

		p, err := uc.CreateParcel(context.Background(), " a@b.com ", "books", "12.50")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.ParcelStatusPending || created.TrackingID != "" {
			t.Fatalf("unexpected initial state: %+v", created)
		}
		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatalf("identity not assigned: %+v", created)
		}
		if p.SenderEmail != "a@b.com" {
			t.Fatalf("input not normalized: %+v", p)
		}
	})
}

func TestParcelGetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParcelRepository(ctrl)
		uc := NewParcelUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Parcel{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrParcelNotFound) {
			t.Fatalf("expected ErrParcelNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParcelRepository(ctrl)
		uc := NewParcelUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Parcel{ID: "p1"}, nil)

		p, err := uc.GetByID(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p1" {
			t.Fatalf("unexpected parcel: %+v", p)
		}
	})
}

func TestParcelList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIParcelRepository(ctrl)
	uc := NewParcelUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Parcel{{ID: "p1"}, {ID: "p2"}}, nil)
	repo.EXPECT().ListBySenderEmail(gomock.Any(), "a@b.com").Return([]entities.Parcel{{ID: "p1"}}, nil)

	all, err := uc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 parcels, got %d", len(all))
	}

	mine, err := uc.List(context.Background(), " a@b.com ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 parcel, got %d", len(mine))
	}
}

func TestDeleteParcel(t *testing.T) {
	t.Run("ledger reference blocks deletion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParcelRepository(ctrl)
		ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
		uc := NewParcelUseCase(repo, ledger)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Parcel{ID: "p1", Status: entities.ParcelStatusPaid}, nil)
		ledger.EXPECT().GetByParcelID(gomock.Any(), "p1").Return(entities.PaymentRecord{IdempotencyKey: "T1", ParcelID: "p1"}, nil)

		err := uc.DeleteParcel(context.Background(), "p1")
		if !errors.Is(err, ErrParcelHasPayment) {
			t.Fatalf("expected ErrParcelHasPayment, got %v", err)
		}
	})

	t.Run("guarded delete loses race to reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParcelRepository(ctrl)
		ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
		uc := NewParcelUseCase(repo, ledger)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Parcel{ID: "p1", Status: entities.ParcelStatusPending}, nil)
		ledger.EXPECT().GetByParcelID(gomock.Any(), "p1").Return(entities.PaymentRecord{}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(interfaces.ErrParcelNotDeletable)

		err := uc.DeleteParcel(context.Background(), "p1")
		if !errors.Is(err, ErrParcelHasPayment) {
			t.Fatalf("expected ErrParcelHasPayment, got %v", err)
		}
	})

	t.Run("pending parcel deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParcelRepository(ctrl)
		ledger := mock_interfaces.NewMockIPaymentLedgerRepository(ctrl)
		uc := NewParcelUseCase(repo, ledger)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Parcel{ID: "p1", Status: entities.ParcelStatusPending}, nil)
		ledger.EXPECT().GetByParcelID(gomock.Any(), "p1").Return(entities.PaymentRecord{}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		if err := uc.DeleteParcel(context.Background(), "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParcelRepository(ctrl)
		uc := NewParcelUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Parcel{}, nil)

		err := uc.DeleteParcel(context.Background(), "missing")
		if !errors.Is(err, ErrParcelNotFound) {
			t.Fatalf("expected ErrParcelNotFound, got %v", err)
		}
	})
}
