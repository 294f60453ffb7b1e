package gateway

import (
	"time"

	httppkg "github.com/workme/backend/internal/pkg/http"
	"github.com/workme/backend/internal/pkg/models"
	natspkg "github.com/workme/backend/internal/pkg/nats"
	"github.com/workme/backend/services/payments"
)

// PaymentGW implements the payments.PaymentGW interface
type PaymentGW struct {
	natsClient      *natspkg.Client
	processorClient *httppkg.Client
	payoutClient    *httppkg.Client
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(natsClient *natspkg.Client, cfg *models.Config) payments.PaymentGW {
	return &PaymentGW{
		natsClient:      natsClient,
		processorClient: httppkg.NewClient(cfg.Services.PaymentProcessorURL, 15*time.Second),
		payoutClient:    httppkg.NewClient(cfg.Services.PayoutProviderURL, 15*time.Second),
	}
}
