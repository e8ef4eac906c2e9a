package service

import (
	"context"
	"fmt"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository"
)

type authorizer struct {
	perms repository.PermissionRepository
}

// NewAuthorizer answers role and capability questions from the permission store.
func NewAuthorizer(perms repository.PermissionRepository) Authorizer {
	return &authorizer{perms: perms}
}

func (a *authorizer) Roles(ctx context.Context, actorID int32) (domain.RoleSet, error) {
	roles, err := a.perms.ListRoles(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return domain.NewRoleSet(roles...), nil
}

func (a *authorizer) Can(ctx context.Context, actorID int32, capability domain.Capability) (bool, error) {
	ok, err := a.perms.HasPermission(ctx, actorID, capability)
	if err != nil {
		return false, fmt.Errorf("check permission %s: %w", capability, err)
	}
	return ok, nil
}

// capabilities resolves the actor's roles and a fixed set of capabilities.
func capabilities(ctx context.Context, authz Authorizer, actorID int32, caps ...domain.Capability) (domain.Actor, map[domain.Capability]bool, error) {
	roles, err := authz.Roles(ctx, actorID)
	if err != nil {
		return domain.Actor{}, nil, err
	}
	granted := make(map[domain.Capability]bool, len(caps))
	for _, c := range caps {
		ok, err := authz.Can(ctx, actorID, c)
		if err != nil {
			return domain.Actor{}, nil, err
		}
		granted[c] = ok
	}
	return domain.Actor{ID: actorID, Roles: roles}, granted, nil
}
