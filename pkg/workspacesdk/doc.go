// Package workspacesdk is a Go client for the workspace service HTTP API.
//
// It covers workspace management, membership and the invitation lifecycle.
// Authentication is a bearer session token minted by the identity provider;
// the SDK never handles credentials itself.
//
// Usage:
//
//	client := workspacesdk.NewClient("https://workspaces.example.com", token)
//	invites, err := client.ListMyInvitations(ctx)
//	if err != nil { ... }
//	for _, inv := range invites.Invitations {
//		_, err := client.AcceptInvitation(ctx, inv.ID)
//	}
package workspacesdk
