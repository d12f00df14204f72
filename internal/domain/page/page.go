package page

import (
	"fmt"
	"time"

	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/utils/jsonutil"
)

// Status represents the publication state of a page.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// Type categorizes a page within its site.
type Type string

const (
	TypePage    Type = "page"
	TypeHome    Type = "home"
	TypeAbout   Type = "about"
	TypeContact Type = "contact"
	TypeBlog    Type = "blog"
	TypeCustom  Type = "custom"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePage, TypeHome, TypeAbout, TypeContact, TypeBlog, TypeCustom:
		return true
	}
	return false
}

// Page belongs to a site and holds an ordered list of sections. At most one
// page per site carries the homepage flag; the application layer swaps the
// flag inside a single transaction.
type Page struct {
	id         uint
	sid        string
	siteID     uint
	title      string
	slug       string
	status     Status
	pageType   Type
	isHomepage bool
	position   int

	seoSettings map[string]interface{}
	settings    map[string]interface{}

	deletedAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewPage creates a draft page. The slug must already be unique within the
// site; position is the dense index assigned by the caller.
func NewPage(siteID uint, title, slug string, pageType Type, position int, sidGen func() (string, error)) (*Page, error) {
	if siteID == 0 {
		return nil, fmt.Errorf("site ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("page title is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("page slug is required")
	}
	if !pageType.IsValid() {
		return nil, fmt.Errorf("invalid page type: %s", pageType)
	}
	if position < 0 {
		return nil, fmt.Errorf("page position cannot be negative")
	}

	sid, err := sidGen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate page ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Page{
		sid:       sid,
		siteID:    siteID,
		title:     title,
		slug:      slug,
		status:    StatusDraft,
		pageType:  pageType,
		position:  position,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewPageFromSnapshot builds a duplicate of src under siteID with fresh
// identity, the given slug and position. Duplicates are never marked
// homepage.
func NewPageFromSnapshot(src *Page, siteID uint, title, slug string, position int, sidGen func() (string, error)) (*Page, error) {
	if src == nil {
		return nil, fmt.Errorf("source page is required")
	}

	dup, err := NewPage(siteID, title, slug, src.pageType, position, sidGen)
	if err != nil {
		return nil, err
	}
	dup.seoSettings = jsonutil.Clone(src.seoSettings)
	dup.settings = jsonutil.Clone(src.settings)
	return dup, nil
}

// Retitle changes the title. Returns true when the title actually changed,
// which is the caller's signal to regenerate the slug.
func (p *Page) Retitle(title string) (bool, error) {
	if title == "" {
		return false, fmt.Errorf("page title is required")
	}
	if title == p.title {
		return false, nil
	}
	p.title = title
	p.touch()
	return true, nil
}

// SetSlug replaces the slug after the caller resolved site-scope uniqueness.
func (p *Page) SetSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("page slug is required")
	}
	p.slug = slug
	p.touch()
	return nil
}

// UpdateStatus changes the publication state.
func (p *Page) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid page status: %s", status)
	}
	p.status = status
	p.touch()
	return nil
}

// MarkHomepage flags this page as the site homepage. The previous holder
// must be unflagged in the same transaction.
func (p *Page) MarkHomepage() {
	if p.isHomepage {
		return
	}
	p.isHomepage = true
	p.touch()
}

// UnmarkHomepage clears the homepage flag.
func (p *Page) UnmarkHomepage() {
	if !p.isHomepage {
		return
	}
	p.isHomepage = false
	p.touch()
}

// SetPosition assigns the dense order index within the site.
func (p *Page) SetPosition(position int) error {
	if position < 0 {
		return fmt.Errorf("page position cannot be negative")
	}
	if position == p.position {
		return nil
	}
	p.position = position
	p.touch()
	return nil
}

// MergeSEOSettings overlays patch onto the SEO blob (shallow merge).
func (p *Page) MergeSEOSettings(patch map[string]interface{}) {
	p.seoSettings = jsonutil.MergeShallow(p.seoSettings, patch)
	p.touch()
}

// MergeSettings overlays patch onto the settings blob (shallow merge).
func (p *Page) MergeSettings(patch map[string]interface{}) {
	p.settings = jsonutil.MergeShallow(p.settings, patch)
	p.touch()
}

// SoftDelete marks the page removed. The homepage flag is cleared so a
// deleted page can never satisfy the exclusivity invariant, and the slug is
// retired with a SID suffix so the per-site unique index frees it for reuse.
func (p *Page) SoftDelete(now time.Time) {
	p.deletedAt = &now
	p.isHomepage = false
	p.slug = p.slug + "-" + p.sid
	p.touch()
}

func (p *Page) IsDeleted() bool {
	return p.deletedAt != nil
}

func (p *Page) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}

// SetID sets the numeric ID after persistence.
func (p *Page) SetID(id uint) {
	p.id = id
}

func (p *Page) ID() uint                              { return p.id }
func (p *Page) SID() string                           { return p.sid }
func (p *Page) SiteID() uint                          { return p.siteID }
func (p *Page) Title() string                         { return p.title }
func (p *Page) Slug() string                          { return p.slug }
func (p *Page) Status() Status                        { return p.status }
func (p *Page) PageType() Type                        { return p.pageType }
func (p *Page) IsHomepage() bool                      { return p.isHomepage }
func (p *Page) Position() int                         { return p.position }
func (p *Page) SEOSettings() map[string]interface{}   { return p.seoSettings }
func (p *Page) Settings() map[string]interface{}      { return p.settings }
func (p *Page) DeletedAt() *time.Time                 { return p.deletedAt }
func (p *Page) Version() int                          { return p.version }
func (p *Page) CreatedAt() time.Time                  { return p.createdAt }
func (p *Page) UpdatedAt() time.Time                  { return p.updatedAt }

// ReconstructPage rebuilds a page from persistence.
func ReconstructPage(
	id uint,
	sid string,
	siteID uint,
	title, slug string,
	status Status,
	pageType Type,
	isHomepage bool,
	position int,
	seoSettings, settings map[string]interface{},
	deletedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Page, error) {
	if id == 0 {
		return nil, fmt.Errorf("page ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid page status: %s", status)
	}
	if !pageType.IsValid() {
		return nil, fmt.Errorf("invalid page type: %s", pageType)
	}

	return &Page{
		id:          id,
		sid:         sid,
		siteID:      siteID,
		title:       title,
		slug:        slug,
		status:      status,
		pageType:    pageType,
		isHomepage:  isHomepage,
		position:    position,
		seoSettings: seoSettings,
		settings:    settings,
		deletedAt:   deletedAt,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}
