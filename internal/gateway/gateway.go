// Package gateway defines the payment gateway contract and the mock
// implementation used by the local store.
package gateway

import "context"

// ChargeRequest carries one payment attempt
type ChargeRequest struct {
	EventID      string
	TicketTypeID string
	Quantity     int
	Amount       float64
	Currency     string
}

// ChargeResponse is the gateway's answer to a successful charge
type ChargeResponse struct {
	TransactionID string
	Amount        float64
	Currency      string
}

// PaymentGateway processes charges. Charge returns an error when the
// payment is declined; callers must not retry automatically.
type PaymentGateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error)
	Name() string
}

// ApplicationRequest carries one job application submission
type ApplicationRequest struct {
	JobID string
	Name  string
	Email string
}

// ApplicationGateway delivers job applications to the hiring pipeline.
// Submit returns an error when the submission is rejected.
type ApplicationGateway interface {
	Submit(ctx context.Context, req *ApplicationRequest) error
	Name() string
}
