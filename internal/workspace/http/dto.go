package http

import (
	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/pkg/workspacesdk"
)

func toWorkspaceResponse(w domain.Workspace) workspacesdk.WorkspaceResponse {
	return workspacesdk.WorkspaceResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toWorkspaceList(summaries []domain.WorkspaceSummary) workspacesdk.WorkspaceListResponse {
	out := workspacesdk.WorkspaceListResponse{
		Workspaces: make([]workspacesdk.WorkspaceSummary, 0, len(summaries)),
	}
	for _, s := range summaries {
		out.Workspaces = append(out.Workspaces, workspacesdk.WorkspaceSummary{
			WorkspaceResponse: toWorkspaceResponse(s.Workspace),
			Role:              string(s.Role),
		})
	}
	return out
}

func toMemberResponse(m domain.MemberDetail) workspacesdk.MemberResponse {
	return workspacesdk.MemberResponse{
		UserID:   m.UserID,
		Email:    m.Email,
		Name:     m.Name,
		Role:     string(m.Role),
		JoinedAt: m.CreatedAt,
	}
}

func toMemberList(members []domain.MemberDetail) workspacesdk.MemberListResponse {
	out := workspacesdk.MemberListResponse{
		Members: make([]workspacesdk.MemberResponse, 0, len(members)),
	}
	for _, m := range members {
		out.Members = append(out.Members, toMemberResponse(m))
	}
	return out
}

func toInvitationResponse(inv domain.Invitation) workspacesdk.InvitationResponse {
	return workspacesdk.InvitationResponse{
		ID:          inv.ID,
		WorkspaceID: inv.WorkspaceID,
		Email:       inv.Email,
		Role:        string(inv.Role),
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
		ExpiresAt:   inv.ExpiresAt,
	}
}

func toInvitationList(details []domain.InvitationDetail) workspacesdk.InvitationListResponse {
	out := workspacesdk.InvitationListResponse{
		Invitations: make([]workspacesdk.InvitationResponse, 0, len(details)),
	}
	for _, d := range details {
		resp := toInvitationResponse(d.Invitation)
		resp.WorkspaceName = d.WorkspaceName
		resp.InviterEmail = d.InviterEmail
		resp.InviterName = d.InviterName
		out.Invitations = append(out.Invitations, resp)
	}
	return out
}
