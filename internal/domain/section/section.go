package section

import (
	"fmt"
	"time"

	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/utils/jsonutil"
)

// Type categorizes a section's rendering block.
type Type string

const (
	TypeHero         Type = "hero"
	TypeFeatures     Type = "features"
	TypeTestimonials Type = "testimonials"
	TypeCTA          Type = "cta"
	TypePricing      Type = "pricing"
	TypeTeam         Type = "team"
	TypeContact      Type = "contact"
	TypeContent      Type = "content"
	TypeGallery      Type = "gallery"
	TypeCustom       Type = "custom"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHero, TypeFeatures, TypeTestimonials, TypeCTA, TypePricing,
		TypeTeam, TypeContact, TypeContent, TypeGallery, TypeCustom:
		return true
	}
	return false
}

// DefaultContent returns the starter content blob for a section type so a
// freshly added section renders something sensible in the editor.
func (t Type) DefaultContent() map[string]interface{} {
	switch t {
	case TypeHero:
		return map[string]interface{}{
			"heading":    "Welcome",
			"subheading": "",
			"buttonText": "Get Started",
		}
	case TypeFeatures:
		return map[string]interface{}{"heading": "Features", "items": []interface{}{}}
	case TypeTestimonials:
		return map[string]interface{}{"heading": "What people say", "items": []interface{}{}}
	case TypeCTA:
		return map[string]interface{}{"heading": "Ready to start?", "buttonText": "Sign Up"}
	case TypePricing:
		return map[string]interface{}{"heading": "Pricing", "plans": []interface{}{}}
	case TypeTeam:
		return map[string]interface{}{"heading": "Our Team", "members": []interface{}{}}
	case TypeContact:
		return map[string]interface{}{"heading": "Contact Us", "email": ""}
	case TypeGallery:
		return map[string]interface{}{"images": []interface{}{}}
	default:
		return map[string]interface{}{"body": ""}
	}
}

// Section is an ordered content block within a page.
type Section struct {
	id          uint
	sid         string
	pageID      uint
	title       string
	sectionType Type
	position    int
	isActive    bool

	content  map[string]interface{}
	settings map[string]interface{}

	deletedAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSection creates an active section seeded with the type's default
// content. Position is the dense index assigned by the caller.
func NewSection(pageID uint, title string, sectionType Type, position int, sidGen func() (string, error)) (*Section, error) {
	if pageID == 0 {
		return nil, fmt.Errorf("page ID is required")
	}
	if !sectionType.IsValid() {
		return nil, fmt.Errorf("invalid section type: %s", sectionType)
	}
	if position < 0 {
		return nil, fmt.Errorf("section position cannot be negative")
	}

	sid, err := sidGen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate section ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Section{
		sid:         sid,
		pageID:      pageID,
		title:       title,
		sectionType: sectionType,
		position:    position,
		isActive:    true,
		content:     sectionType.DefaultContent(),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewSectionFromSnapshot builds a duplicate of src for the target page with
// fresh identity at the given position.
func NewSectionFromSnapshot(src *Section, pageID uint, position int, sidGen func() (string, error)) (*Section, error) {
	if src == nil {
		return nil, fmt.Errorf("source section is required")
	}

	dup, err := NewSection(pageID, src.title, src.sectionType, position, sidGen)
	if err != nil {
		return nil, err
	}
	dup.isActive = src.isActive
	dup.content = jsonutil.Clone(src.content)
	dup.settings = jsonutil.Clone(src.settings)
	return dup, nil
}

// Retitle changes the display title.
func (s *Section) Retitle(title string) {
	if title == s.title {
		return
	}
	s.title = title
	s.touch()
}

// MergeContent overlays patch onto the content blob (shallow merge).
func (s *Section) MergeContent(patch map[string]interface{}) {
	s.content = jsonutil.MergeShallow(s.content, patch)
	s.touch()
}

// MergeSettings overlays patch onto the settings blob (shallow merge).
func (s *Section) MergeSettings(patch map[string]interface{}) {
	s.settings = jsonutil.MergeShallow(s.settings, patch)
	s.touch()
}

// SetActive toggles visibility without removing the section.
func (s *Section) SetActive(active bool) {
	if s.isActive == active {
		return
	}
	s.isActive = active
	s.touch()
}

// SetPosition assigns the dense order index within the page.
func (s *Section) SetPosition(position int) error {
	if position < 0 {
		return fmt.Errorf("section position cannot be negative")
	}
	if position == s.position {
		return nil
	}
	s.position = position
	s.touch()
	return nil
}

// SoftDelete marks the section removed.
func (s *Section) SoftDelete(now time.Time) {
	s.deletedAt = &now
	s.touch()
}

func (s *Section) IsDeleted() bool {
	return s.deletedAt != nil
}

func (s *Section) touch() {
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// SetID sets the numeric ID after persistence.
func (s *Section) SetID(id uint) {
	s.id = id
}

func (s *Section) ID() uint                          { return s.id }
func (s *Section) SID() string                       { return s.sid }
func (s *Section) PageID() uint                      { return s.pageID }
func (s *Section) Title() string                     { return s.title }
func (s *Section) SectionType() Type                 { return s.sectionType }
func (s *Section) Position() int                     { return s.position }
func (s *Section) IsActive() bool                    { return s.isActive }
func (s *Section) Content() map[string]interface{}   { return s.content }
func (s *Section) Settings() map[string]interface{}  { return s.settings }
func (s *Section) DeletedAt() *time.Time             { return s.deletedAt }
func (s *Section) Version() int                      { return s.version }
func (s *Section) CreatedAt() time.Time              { return s.createdAt }
func (s *Section) UpdatedAt() time.Time              { return s.updatedAt }

// ReconstructSection rebuilds a section from persistence.
func ReconstructSection(
	id uint,
	sid string,
	pageID uint,
	title string,
	sectionType Type,
	position int,
	isActive bool,
	content, settings map[string]interface{},
	deletedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Section, error) {
	if id == 0 {
		return nil, fmt.Errorf("section ID cannot be zero")
	}
	if !sectionType.IsValid() {
		return nil, fmt.Errorf("invalid section type: %s", sectionType)
	}

	return &Section{
		id:          id,
		sid:         sid,
		pageID:      pageID,
		title:       title,
		sectionType: sectionType,
		position:    position,
		isActive:    isActive,
		content:     content,
		settings:    settings,
		deletedAt:   deletedAt,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}
