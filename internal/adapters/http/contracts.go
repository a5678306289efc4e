package httpadapter

import (
	"context"

	"cfomatch/internal/api"
	"cfomatch/internal/domain"
	"cfomatch/internal/fees"
	"cfomatch/internal/validate"
)

func (s *Server) CreateContract(ctx context.Context, req api.CreateContractRequestObject) (api.CreateContractResponseObject, error) {
	c, conv, err := s.svc.Contracts.Create(ctx, actorFrom(ctx), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CreateContract201JSONResponse{Contract: c, Conversation: conv}, nil
}

func (s *Server) ListContracts(ctx context.Context, req api.ListContractsRequestObject) (api.ListContractsResponseObject, error) {
	page, err := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	out, err := s.svc.Contracts.List(ctx, actorFrom(ctx), page)
	if err != nil {
		return nil, err
	}
	return api.ListContracts200JSONResponse(out), nil
}

func (s *Server) GetContract(ctx context.Context, req api.GetContractRequestObject) (api.GetContractResponseObject, error) {
	c, err := s.svc.Contracts.Get(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetContract200JSONResponse(c), nil
}

func (s *Server) TerminateContract(ctx context.Context, req api.TerminateContractRequestObject) (api.TerminateContractResponseObject, error) {
	c, err := s.svc.Contracts.Terminate(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.TerminateContract200JSONResponse(c), nil
}

func (s *Server) CompleteContract(ctx context.Context, req api.CompleteContractRequestObject) (api.CompleteContractResponseObject, error) {
	c, err := s.svc.Contracts.Complete(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.CompleteContract200JSONResponse(c), nil
}

func (s *Server) CreateInvoice(ctx context.Context, req api.CreateInvoiceRequestObject) (api.CreateInvoiceResponseObject, error) {
	inv, err := s.svc.Invoices.Create(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CreateInvoice201JSONResponse(inv), nil
}

func (s *Server) ListInvoices(ctx context.Context, req api.ListInvoicesRequestObject) (api.ListInvoicesResponseObject, error) {
	page, err := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	out, err := s.svc.Invoices.List(ctx, actorFrom(ctx), req.Id.String(), page)
	if err != nil {
		return nil, err
	}
	return api.ListInvoices200JSONResponse(out), nil
}

func (s *Server) GetInvoice(ctx context.Context, req api.GetInvoiceRequestObject) (api.GetInvoiceResponseObject, error) {
	inv, err := s.svc.Invoices.Get(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetInvoice200JSONResponse(inv), nil
}

func (s *Server) UpdateInvoice(ctx context.Context, req api.UpdateInvoiceRequestObject) (api.UpdateInvoiceResponseObject, error) {
	inv, err := s.svc.Invoices.Update(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.UpdateInvoice200JSONResponse(inv), nil
}

func (s *Server) DeleteInvoice(ctx context.Context, req api.DeleteInvoiceRequestObject) (api.DeleteInvoiceResponseObject, error) {
	if err := s.svc.Invoices.Delete(ctx, actorFrom(ctx), req.Id.String()); err != nil {
		return nil, err
	}
	return api.DeleteInvoice204Response{}, nil
}

func (s *Server) RecordPayment(ctx context.Context, req api.RecordPaymentRequestObject) (api.RecordPaymentResponseObject, error) {
	p, inv, err := s.svc.Invoices.RecordPayment(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.RecordPayment201JSONResponse{Payment: p, Invoice: inv}, nil
}

func (s *Server) ListPayments(ctx context.Context, req api.ListPaymentsRequestObject) (api.ListPaymentsResponseObject, error) {
	page, err := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	out, err := s.svc.Invoices.ListPayments(ctx, actorFrom(ctx), req.Id.String(), page)
	if err != nil {
		return nil, err
	}
	return api.ListPayments200JSONResponse(out), nil
}

func (s *Server) SubmitReview(ctx context.Context, req api.SubmitReviewRequestObject) (api.SubmitReviewResponseObject, error) {
	rv, err := s.svc.Reviews.Submit(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.SubmitReview201JSONResponse(rv), nil
}

func (s *Server) ListReviews(ctx context.Context, req api.ListReviewsRequestObject) (api.ListReviewsResponseObject, error) {
	page, err := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	out, err := s.svc.Reviews.List(ctx, actorFrom(ctx), req.Id.String(), page)
	if err != nil {
		return nil, err
	}
	return api.ListReviews200JSONResponse(out), nil
}

func (s *Server) QuoteContractFee(_ context.Context, req api.QuoteContractFeeRequestObject) (api.QuoteContractFeeResponseObject, error) {
	quote, err := fees.ComputeContractFee(req.Body.FeeBasis, req.Body.Rate, req.Body.DurationMonths)
	if err != nil {
		return nil, err
	}
	return api.QuoteContractFee200JSONResponse(quote), nil
}

func (s *Server) QuoteSuccessFee(_ context.Context, req api.QuoteSuccessFeeRequestObject) (api.QuoteSuccessFeeResponseObject, error) {
	if err := validate.Struct(req.Body); err != nil {
		return nil, err
	}
	fee, err := s.svc.Fees.ComputeSuccessFee(req.Body.Kind, req.Body.Amount)
	if err != nil {
		return nil, err
	}
	return api.QuoteSuccessFee200JSONResponse{Kind: req.Body.Kind, Amount: req.Body.Amount, Fee: fee}, nil
}
