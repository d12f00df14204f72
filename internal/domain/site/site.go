package site

import (
	"fmt"
	"time"

	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/utils/jsonutil"
)

// Status represents the publication state of a site.
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

// Site is the website aggregate root. A site belongs to exactly one owner
// and holds the pages of a published website.
type Site struct {
	id       uint
	sid      string
	ownerID  uint
	name     string
	slug     string
	status   Status
	template string

	styleSettings map[string]interface{}
	seoSettings   map[string]interface{}
	customCode    map[string]interface{}

	publishedAt *time.Time
	deletedAt   *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSite creates a draft site. The slug must already be resolved for
// global uniqueness by the caller.
func NewSite(ownerID uint, name, slug, template string, sidGen func() (string, error)) (*Site, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("site name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("site slug is required")
	}

	sid, err := sidGen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate site ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Site{
		sid:       sid,
		ownerID:   ownerID,
		name:      name,
		slug:      slug,
		status:    StatusDraft,
		template:  template,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewSiteFromSnapshot builds a duplicate of src with fresh identity and
// timestamps. Publication state is reset to draft; blobs are copied so the
// duplicate never aliases the source.
func NewSiteFromSnapshot(src *Site, name, slug string, sidGen func() (string, error)) (*Site, error) {
	if src == nil {
		return nil, fmt.Errorf("source site is required")
	}

	dup, err := NewSite(src.ownerID, name, slug, src.template, sidGen)
	if err != nil {
		return nil, err
	}
	dup.styleSettings = jsonutil.Clone(src.styleSettings)
	dup.seoSettings = jsonutil.Clone(src.seoSettings)
	dup.customCode = jsonutil.Clone(src.customCode)
	return dup, nil
}

// Rename changes the display name. Slug regeneration is the caller's
// responsibility and applied via SetSlug.
func (s *Site) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("site name is required")
	}
	if name == s.name {
		return nil
	}
	s.name = name
	s.touch()
	return nil
}

// SetSlug replaces the slug after the caller resolved scope uniqueness.
func (s *Site) SetSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("site slug is required")
	}
	s.slug = slug
	s.touch()
	return nil
}

// SetTemplate changes the template tag.
func (s *Site) SetTemplate(template string) {
	s.template = template
	s.touch()
}

// Publish transitions the site to published. publishedAt is set only on the
// first transition into the published state.
func (s *Site) Publish() error {
	if s.status == StatusPublished {
		return nil
	}
	if s.status == StatusArchived {
		return fmt.Errorf("cannot publish an archived site")
	}
	now := biztime.NowUTC()
	s.status = StatusPublished
	if s.publishedAt == nil {
		s.publishedAt = &now
	}
	s.touch()
	return nil
}

// Archive retires the site from serving.
func (s *Site) Archive() {
	s.status = StatusArchived
	s.touch()
}

// Unpublish returns the site to draft.
func (s *Site) Unpublish() {
	s.status = StatusDraft
	s.touch()
}

// MergeStyleSettings overlays patch onto the style blob (shallow merge).
func (s *Site) MergeStyleSettings(patch map[string]interface{}) {
	s.styleSettings = jsonutil.MergeShallow(s.styleSettings, patch)
	s.touch()
}

// MergeSEOSettings overlays patch onto the SEO blob (shallow merge).
func (s *Site) MergeSEOSettings(patch map[string]interface{}) {
	s.seoSettings = jsonutil.MergeShallow(s.seoSettings, patch)
	s.touch()
}

// MergeCustomCode overlays patch onto the custom code blob (shallow merge).
func (s *Site) MergeCustomCode(patch map[string]interface{}) {
	s.customCode = jsonutil.MergeShallow(s.customCode, patch)
	s.touch()
}

// TransferTo reassigns ownership. Quota checks on the new owner happen in
// the application layer before this is called.
func (s *Site) TransferTo(newOwnerID uint) error {
	if newOwnerID == 0 {
		return fmt.Errorf("new owner ID is required")
	}
	if newOwnerID == s.ownerID {
		return fmt.Errorf("site already belongs to this owner")
	}
	s.ownerID = newOwnerID
	s.touch()
	return nil
}

// SoftDelete marks the site removed. Pages and sections are cascaded by the
// application layer within the same transaction. The slug is retired with a
// SID suffix: the unique index spans deleted rows, so the tombstone must not
// hold the slug hostage for future sites.
func (s *Site) SoftDelete(now time.Time) {
	s.deletedAt = &now
	s.slug = s.slug + "-" + s.sid
	s.touch()
}

func (s *Site) IsDeleted() bool {
	return s.deletedAt != nil
}

func (s *Site) touch() {
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// SetID sets the numeric ID after persistence.
func (s *Site) SetID(id uint) {
	s.id = id
}

func (s *Site) ID() uint                               { return s.id }
func (s *Site) SID() string                            { return s.sid }
func (s *Site) OwnerID() uint                          { return s.ownerID }
func (s *Site) Name() string                           { return s.name }
func (s *Site) Slug() string                           { return s.slug }
func (s *Site) Status() Status                         { return s.status }
func (s *Site) Template() string                       { return s.template }
func (s *Site) StyleSettings() map[string]interface{}  { return s.styleSettings }
func (s *Site) SEOSettings() map[string]interface{}    { return s.seoSettings }
func (s *Site) CustomCode() map[string]interface{}     { return s.customCode }
func (s *Site) PublishedAt() *time.Time                { return s.publishedAt }
func (s *Site) DeletedAt() *time.Time                  { return s.deletedAt }
func (s *Site) Version() int                           { return s.version }
func (s *Site) CreatedAt() time.Time                   { return s.createdAt }
func (s *Site) UpdatedAt() time.Time                   { return s.updatedAt }

// ReconstructSite rebuilds a site from persistence.
func ReconstructSite(
	id uint,
	sid string,
	ownerID uint,
	name, slug string,
	status Status,
	template string,
	styleSettings, seoSettings, customCode map[string]interface{},
	publishedAt, deletedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Site, error) {
	if id == 0 {
		return nil, fmt.Errorf("site ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid site status: %s", status)
	}

	return &Site{
		id:            id,
		sid:           sid,
		ownerID:       ownerID,
		name:          name,
		slug:          slug,
		status:        status,
		template:      template,
		styleSettings: styleSettings,
		seoSettings:   seoSettings,
		customCode:    customCode,
		publishedAt:   publishedAt,
		deletedAt:     deletedAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}
