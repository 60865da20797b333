package resolver

import (
	"context"
	"themeconf/pkg/domain"
)

//go:generate mockgen -package mockresolver -source=interface.go -destination=mock/mockresolver.go *
type Resolver interface {
	Resolve(ctx context.Context, decl domain.Declaration) (*domain.Resolved, error)
}
