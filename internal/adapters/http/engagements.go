package httpadapter

import (
	"context"

	"cfomatch/internal/api"
	"cfomatch/internal/domain"
)

func (s *Server) CreateApplication(ctx context.Context, req api.CreateApplicationRequestObject) (api.CreateApplicationResponseObject, error) {
	app, err := s.svc.Applications.Create(ctx, actorFrom(ctx), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CreateApplication201JSONResponse(app), nil
}

func (s *Server) ListApplications(ctx context.Context, req api.ListApplicationsRequestObject) (api.ListApplicationsResponseObject, error) {
	page, err := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	var status domain.ApplicationStatus
	if req.Params.Status != nil {
		if !req.Params.Status.Valid() {
			return nil, domain.FieldError("status", "must be pending, accepted or rejected")
		}
		status = domain.ApplicationStatus(*req.Params.Status)
	}
	out, err := s.svc.Applications.List(ctx, actorFrom(ctx), status, page)
	if err != nil {
		return nil, err
	}
	return api.ListApplications200JSONResponse(out), nil
}

func (s *Server) GetApplication(ctx context.Context, req api.GetApplicationRequestObject) (api.GetApplicationResponseObject, error) {
	app, err := s.svc.Applications.Get(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetApplication200JSONResponse(app), nil
}

func (s *Server) RespondApplication(ctx context.Context, req api.RespondApplicationRequestObject) (api.RespondApplicationResponseObject, error) {
	app, conv, err := s.svc.Applications.Respond(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.RespondApplication200JSONResponse{Application: app, Conversation: conv}, nil
}

func (s *Server) ListConversations(ctx context.Context, req api.ListConversationsRequestObject) (api.ListConversationsResponseObject, error) {
	page, err := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	out, err := s.svc.Conversations.List(ctx, actorFrom(ctx), page)
	if err != nil {
		return nil, err
	}
	return api.ListConversations200JSONResponse(out), nil
}

func (s *Server) GetConversation(ctx context.Context, req api.GetConversationRequestObject) (api.GetConversationResponseObject, error) {
	conv, err := s.svc.Conversations.Get(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetConversation200JSONResponse(conv), nil
}

// RecordMessage is called by the messaging service after it stores a
// message.
func (s *Server) RecordMessage(ctx context.Context, req api.RecordMessageRequestObject) (api.RecordMessageResponseObject, error) {
	conv, err := s.svc.Conversations.RecordMessage(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.RecordMessage200JSONResponse(conv), nil
}

func (s *Server) ProposeMeeting(ctx context.Context, req api.ProposeMeetingRequestObject) (api.ProposeMeetingResponseObject, error) {
	m, conv, err := s.svc.Meetings.Propose(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.ProposeMeeting201JSONResponse{Meeting: m, Conversation: conv}, nil
}

func (s *Server) ListMeetings(ctx context.Context, req api.ListMeetingsRequestObject) (api.ListMeetingsResponseObject, error) {
	page, err := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	out, err := s.svc.Meetings.List(ctx, actorFrom(ctx), req.Id.String(), page)
	if err != nil {
		return nil, err
	}
	return api.ListMeetings200JSONResponse(out), nil
}

func (s *Server) ResolveMeeting(ctx context.Context, req api.ResolveMeetingRequestObject) (api.ResolveMeetingResponseObject, error) {
	m, err := s.svc.Meetings.Resolve(ctx, actorFrom(ctx), req.Id.String(), *req.Body)
	if err != nil {
		return nil, err
	}
	return api.ResolveMeeting200JSONResponse(m), nil
}
