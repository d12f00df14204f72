// Package access centralizes resource authorization. Every mutating or
// reading operation on a site, page, or section resolves the full ownership
// chain here before touching the resource.
package access

import (
	"context"

	"github.com/webloom-dev/webloom/internal/domain/page"
	"github.com/webloom-dev/webloom/internal/domain/section"
	"github.com/webloom-dev/webloom/internal/domain/site"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/errors"
)

// Actor identifies the caller of an operation.
type Actor struct {
	UserID uint
	Role   authorization.UserRole
}

// Resolver walks the ownership chain with explicit lookups. A broken or
// soft-deleted link yields not found; an intact chain owned by someone else
// yields forbidden for non-admins. Admins pass the ownership check but
// still need the chain intact.
type Resolver struct {
	siteRepo    site.Repository
	pageRepo    page.Repository
	sectionRepo section.Repository
}

func NewResolver(siteRepo site.Repository, pageRepo page.Repository, sectionRepo section.Repository) *Resolver {
	return &Resolver{
		siteRepo:    siteRepo,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
	}
}

// AuthorizeSite loads the site and checks the actor may act on it.
func (r *Resolver) AuthorizeSite(ctx context.Context, actor Actor, siteSID string) (*site.Site, error) {
	s, err := r.siteRepo.GetBySID(ctx, siteSID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load site", err.Error())
	}
	if s == nil {
		return nil, errors.NewNotFoundError("site not found")
	}
	if !authorization.CanAccessResourceByOwnerID(actor.UserID, actor.Role, s.OwnerID()) {
		return nil, errors.NewForbiddenError("you do not have access to this site")
	}
	return s, nil
}

// AuthorizePage loads the page and its site and checks the whole chain.
func (r *Resolver) AuthorizePage(ctx context.Context, actor Actor, pageSID string) (*page.Page, *site.Site, error) {
	p, err := r.pageRepo.GetBySID(ctx, pageSID)
	if err != nil {
		return nil, nil, errors.NewInternalError("failed to load page", err.Error())
	}
	if p == nil {
		return nil, nil, errors.NewNotFoundError("page not found")
	}

	s, err := r.siteRepo.GetByID(ctx, p.SiteID())
	if err != nil {
		return nil, nil, errors.NewInternalError("failed to load site", err.Error())
	}
	if s == nil {
		// the parent site is gone or soft-deleted, so the page is
		// unreachable too
		return nil, nil, errors.NewNotFoundError("page not found")
	}
	if !authorization.CanAccessResourceByOwnerID(actor.UserID, actor.Role, s.OwnerID()) {
		return nil, nil, errors.NewForbiddenError("you do not have access to this page")
	}
	return p, s, nil
}

// AuthorizeSection loads the section, its page, and its site, checking the
// whole chain.
func (r *Resolver) AuthorizeSection(ctx context.Context, actor Actor, sectionSID string) (*section.Section, *page.Page, *site.Site, error) {
	sec, err := r.sectionRepo.GetBySID(ctx, sectionSID)
	if err != nil {
		return nil, nil, nil, errors.NewInternalError("failed to load section", err.Error())
	}
	if sec == nil {
		return nil, nil, nil, errors.NewNotFoundError("section not found")
	}

	p, err := r.pageRepo.GetByID(ctx, sec.PageID())
	if err != nil {
		return nil, nil, nil, errors.NewInternalError("failed to load page", err.Error())
	}
	if p == nil {
		return nil, nil, nil, errors.NewNotFoundError("section not found")
	}

	s, err := r.siteRepo.GetByID(ctx, p.SiteID())
	if err != nil {
		return nil, nil, nil, errors.NewInternalError("failed to load site", err.Error())
	}
	if s == nil {
		return nil, nil, nil, errors.NewNotFoundError("section not found")
	}
	if !authorization.CanAccessResourceByOwnerID(actor.UserID, actor.Role, s.OwnerID()) {
		return nil, nil, nil, errors.NewForbiddenError("you do not have access to this section")
	}
	return sec, p, s, nil
}
