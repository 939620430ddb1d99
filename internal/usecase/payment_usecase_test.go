package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quoteforge/internal/domain/entities"
	mock_interfaces "quoteforge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotePaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"buyer@test.com"}}`)

	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "   ", payload)
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		repo := mock_interfaces.NewMockIQuotePaymentRepository(gomock.NewController(t))
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(gomock.NewController(t))
		uc := NewQuotePaymentUseCase(repo, quoteRepo, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-missing").Return(entities.Quote{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-missing", payload)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway)

		for _, status := range []entities.QuoteStatus{entities.QuoteStatusGenerated, entities.QuoteStatusReviewed, entities.QuoteStatusRejected} {
			quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: status}, nil)

			_, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
			if !errors.Is(err, ErrQuoteNotPayable) {
				t.Fatalf("status %s: expected ErrQuoteNotPayable, got %v", status, err)
			}
		}
	})

	t.Run("success enriches payload with quote amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID:         "q-1",
			Status:     entities.QuoteStatusApproved,
			FinalPrice: 116.025,
		}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(req, &m); err != nil {
					t.Fatalf("gateway received invalid json: %v", err)
				}
				if m["transaction_amount"] != 116.025 {
					t.Fatalf("expected transaction_amount 116.025, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "q-1" {
					t.Fatalf("expected external_reference q-1, got %v", m["external_reference"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				if p.ID != "mp-123" || p.QuoteID != "q-1" {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved, got %s", p.Status)
				}
				return p, nil
			})

		created, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "mp-123" {
			t.Fatalf("expected mp-123, got %q", created.ID)
		}
	})

	t.Run("gateway bad request maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusFinalized, FinalPrice: 10}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`mercadopago: {"error":"bad_request","status":400}`))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("mock mode skips gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved, FinalPrice: 10}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved, got %s", p.Status)
				}
				return p, nil
			})

		created, err := uc.CreateAndApprove(context.Background(), "q-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected synthesized payment id")
		}
	})
}

func TestQuotePaymentUseCase_ListByQuoteID(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.ListByQuoteID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{{ID: "p-1", QuoteID: "q-1"}}, nil)

		payments, err := uc.ListByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 || payments[0].ID != "p-1" {
			t.Fatalf("unexpected payments: %+v", payments)
		}
	})
}

func TestQuotePaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-missing").Return(entities.QuotePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-missing")
		if !errors.Is(err, ErrQuotePaymentNotFound) {
			t.Fatalf("expected ErrQuotePaymentNotFound, got %v", err)
		}
	})
}
