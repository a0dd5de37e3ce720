package slides

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/references"
	"github.com/goliatone/go-showcase/pkg/activity"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

var (
	ErrRepositoryRequired = errors.New("slides: repositories required")
	ErrSlideNotFound      = errors.New("slides: slide not found")
	ErrSectionNotFound    = errors.New("slides: hero section not found")
	ErrSectionExists      = errors.New("slides: hero section code already exists")
	ErrParentNotFound     = errors.New("slides: parent service not found")
	ErrReferenceNotFound  = errors.New("slides: referenced content not found")
	ErrReorderMismatch    = errors.New("slides: reorder must list every slide of the owner exactly once")
)

var sectionCodePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Service manages hero sections and their slides.
type Service interface {
	CreateSection(ctx context.Context, input SectionInput) (*HeroSection, error)
	GetSection(ctx context.Context, id uuid.UUID) (*HeroSection, error)
	GetSectionByCode(ctx context.Context, code string) (*HeroSection, error)
	ListSections(ctx context.Context) ([]*HeroSection, error)

	Create(ctx context.Context, input SlideInput) (*Record, error)
	Update(ctx context.Context, id uuid.UUID, input SlideInput) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]*Record, error)
	ListBySectionCode(ctx context.Context, code string) ([]*Record, error)
	ListByService(ctx context.Context, kind catalog.ServiceKind, serviceID uuid.UUID) ([]*Record, error)
	// Reorder assigns sort_order 0..n-1 following ids.
	Reorder(ctx context.Context, placement Placement, ids []uuid.UUID) ([]*Record, error)
}

// SectionInput creates a hero section.
type SectionInput struct {
	ID   uuid.UUID `json:"id,omitempty"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

func (in SectionInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Code, validation.Required, validation.Length(1, 64), validation.Match(sectionCodePattern)),
		validation.Field(&in.Name, validation.Length(0, 200)),
	)
}

// ReferenceResolver checks that a referenced entity exists.
type ReferenceResolver interface {
	Resolve(ctx context.Context, t domain.SlideType, id uuid.UUID) (*references.Reference, error)
}

// ServiceLookup loads parent services for service placements.
type ServiceLookup interface {
	GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

type ServiceOption func(*service)

func WithNow(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(gen func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.id = gen
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithActivity emits an event for every slide mutation.
func WithActivity(emitter *activity.Emitter) ServiceOption {
	return func(s *service) {
		s.activity = emitter
	}
}

// WithReferenceCheck rejects slides whose reference does not resolve.
func WithReferenceCheck(resolver ReferenceResolver) ServiceOption {
	return func(s *service) {
		s.references = resolver
	}
}

// WithServiceLookup rejects slides placed on unknown parent services.
func WithServiceLookup(lookup ServiceLookup) ServiceOption {
	return func(s *service) {
		s.services = lookup
	}
}

type service struct {
	slides     SlideRepository
	sections   HeroSectionRepository
	references ReferenceResolver
	services   ServiceLookup
	activity   *activity.Emitter
	now        func() time.Time
	id         func() uuid.UUID
	logger     interfaces.Logger
}

func NewService(slides SlideRepository, sections HeroSectionRepository, opts ...ServiceOption) Service {
	if slides == nil || sections == nil {
		panic(ErrRepositoryRequired)
	}
	s := &service{
		slides:   slides,
		sections: sections,
		now:      time.Now,
		id:       uuid.New,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateSection(ctx context.Context, input SectionInput) (*HeroSection, error) {
	input.Code = strings.ToLower(strings.TrimSpace(input.Code))
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.sections.GetByCode(ctx, input.Code); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrSectionExists, input.Code)
	} else if !isNotFound(err) {
		return nil, err
	}
	id := input.ID
	if id == uuid.Nil {
		id = s.id()
	}
	now := s.now().UTC()
	section, err := s.sections.Create(ctx, &HeroSection{
		ID:        id,
		Code:      input.Code,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("slides.section.created", "section_id", section.ID, "code", section.Code)
	return section, nil
}

func (s *service) GetSection(ctx context.Context, id uuid.UUID) (*HeroSection, error) {
	section, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, s.sectionError(err, id.String())
	}
	return section, nil
}

func (s *service) GetSectionByCode(ctx context.Context, code string) (*HeroSection, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	section, err := s.sections.GetByCode(ctx, code)
	if err != nil {
		return nil, s.sectionError(err, code)
	}
	return section, nil
}

func (s *service) ListSections(ctx context.Context) ([]*HeroSection, error) {
	return s.sections.List(ctx)
}

func (s *service) Create(ctx context.Context, input SlideInput) (*Record, error) {
	if err := s.checkInput(ctx, input); err != nil {
		return nil, err
	}
	placement := input.placement()

	sortOrder := 0
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	} else {
		next, err := s.nextSortOrder(ctx, placement.Owner())
		if err != nil {
			return nil, err
		}
		sortOrder = next
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	id := input.ID
	if id == uuid.Nil {
		id = s.id()
	}
	now := s.now().UTC()
	record := &Record{
		ID:        id,
		Placement: placement,
		Content:   input.content(),
		CTA:       input.cta(),
		IsActive:  active,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.slides.Create(ctx, Encode(record)); err != nil {
		return nil, err
	}

	logger := logging.WithSlideContext(s.logger, record.ID.String(), string(record.Type()), "")
	logger.Info("slides.create.success", "sort_order", record.SortOrder)
	s.emit(ctx, "create", record)
	return record, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input SlideInput) (*Record, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkInput(ctx, input); err != nil {
		return nil, err
	}

	record := &Record{
		ID:        existing.ID,
		Placement: input.placement(),
		Content:   input.content(),
		CTA:       input.cta(),
		IsActive:  existing.IsActive,
		SortOrder: existing.SortOrder,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: s.now().UTC(),
	}
	if input.IsActive != nil {
		record.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		record.SortOrder = *input.SortOrder
	}
	if _, err := s.slides.Update(ctx, Encode(record)); err != nil {
		return nil, s.slideError(err, id)
	}

	logger := logging.WithSlideContext(s.logger, record.ID.String(), string(record.Type()), "")
	if existing.Type() != record.Type() {
		logger.Info("slides.update.type_changed", "from", existing.Type())
	}
	logger.Info("slides.update.success")
	s.emit(ctx, "update", record)
	return record, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.slides.Delete(ctx, id); err != nil {
		return s.slideError(err, id)
	}
	s.logger.Info("slides.delete.success", "slide_id", id)
	s.emit(ctx, "delete", existing)
	return nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	row, err := s.slides.GetByID(ctx, id)
	if err != nil {
		return nil, s.slideError(err, id)
	}
	return Decode(row, s.logger)
}

func (s *service) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]*Record, error) {
	return s.listByOwner(ctx, SectionPlacement{SectionID: sectionID}.Owner())
}

func (s *service) ListBySectionCode(ctx context.Context, code string) ([]*Record, error) {
	section, err := s.GetSectionByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.ListBySection(ctx, section.ID)
}

func (s *service) ListByService(ctx context.Context, kind catalog.ServiceKind, serviceID uuid.UUID) ([]*Record, error) {
	return s.listByOwner(ctx, ServicePlacement{Kind: kind, ServiceID: serviceID}.Owner())
}

func (s *service) Reorder(ctx context.Context, placement Placement, ids []uuid.UUID) ([]*Record, error) {
	if placement == nil || !validOwner(placement.Owner()) {
		return nil, ErrPlacementRequired
	}
	rows, err := s.slides.ListByOwner(ctx, placement.Owner())
	if err != nil {
		return nil, err
	}
	if len(rows) != len(ids) {
		return nil, ErrReorderMismatch
	}
	byID := make(map[uuid.UUID]*Slide, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	now := s.now().UTC()
	ordered := make([]*Slide, 0, len(ids))
	for i, id := range ids {
		row, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrReorderMismatch, id)
		}
		delete(byID, id)
		row.SortOrder = i
		row.UpdatedAt = now
		ordered = append(ordered, row)
	}
	if err := s.slides.UpdateSortOrder(ctx, ordered); err != nil {
		return nil, err
	}

	records, err := s.decodeAll(ordered)
	if err != nil {
		return nil, err
	}
	s.logger.Info("slides.reorder.success", "owner_id", placement.Owner().ID, "count", len(records))
	s.emitReorder(ctx, placement, ids)
	return records, nil
}

func (s *service) listByOwner(ctx context.Context, owner Owner) ([]*Record, error) {
	if !validOwner(owner) {
		return nil, ErrPlacementRequired
	}
	rows, err := s.slides.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.decodeAll(rows)
}

func (s *service) decodeAll(rows []*Slide) ([]*Record, error) {
	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		record, err := Decode(row, s.logger)
		if err != nil {
			s.logger.Error("slides.decode.failed", "slide_id", row.ID, "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *service) nextSortOrder(ctx context.Context, owner Owner) (int, error) {
	rows, err := s.slides.ListByOwner(ctx, owner)
	if err != nil {
		return 0, err
	}
	next := 0
	for _, row := range rows {
		if row.SortOrder >= next {
			next = row.SortOrder + 1
		}
	}
	return next, nil
}

// checkInput validates input and confirms the owner and reference exist.
func (s *service) checkInput(ctx context.Context, input SlideInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	switch p := input.placement().(type) {
	case SectionPlacement:
		if _, err := s.GetSection(ctx, p.SectionID); err != nil {
			return err
		}
	case ServicePlacement:
		if s.services != nil {
			svc, err := s.services.GetService(ctx, p.ServiceID)
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrParentNotFound, p.ServiceID)
				}
				return err
			}
			if svc.Kind != p.Kind {
				return fmt.Errorf("%w: %s is not a %s service", ErrParentNotFound, p.ServiceID, p.Kind)
			}
		}
	}
	if ref, ok := input.content().(ReferenceContent); ok && s.references != nil {
		resolved, err := s.references.Resolve(ctx, ref.Type, ref.ID)
		if err != nil {
			return err
		}
		if resolved == nil {
			return fmt.Errorf("%w: %s %s", ErrReferenceNotFound, ref.Type, ref.ID)
		}
	}
	return nil
}

func (s *service) emit(ctx context.Context, verb string, record *Record) {
	if !s.activity.Enabled() {
		return
	}
	meta := map[string]any{
		"slide_type": string(record.Type()),
		"is_active":  record.IsActive,
		"sort_order": record.SortOrder,
	}
	if record.Placement != nil {
		meta["owner_id"] = record.Placement.Owner().ID.String()
	}
	if ref, ok := record.Content.(ReferenceContent); ok {
		meta["reference_id"] = ref.ID.String()
	}
	s.publish(ctx, activity.Event{
		Verb:           verb,
		ObjectType:     slideNamespace,
		ObjectID:       record.ID.String(),
		DefinitionCode: slideNamespace + ":" + verb,
		Metadata:       meta,
	})
}

func (s *service) emitReorder(ctx context.Context, placement Placement, ids []uuid.UUID) {
	if !s.activity.Enabled() {
		return
	}
	order := make([]string, len(ids))
	for i, id := range ids {
		order[i] = id.String()
	}
	owner := placement.Owner()
	s.publish(ctx, activity.Event{
		Verb:           "reorder",
		ObjectType:     slideNamespace,
		ObjectID:       owner.ID.String(),
		DefinitionCode: slideNamespace + ":reorder",
		Metadata:       map[string]any{"order": order},
	})
}

func (s *service) publish(ctx context.Context, event activity.Event) {
	if err := s.activity.Emit(ctx, event); err != nil {
		s.logger.Warn("slides.activity.failed", "verb", event.Verb, "error", err)
	}
}

func (s *service) slideError(err error, id uuid.UUID) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %s", ErrSlideNotFound, id)
	}
	return err
}

func (s *service) sectionError(err error, key string) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, key)
	}
	return err
}

// validOwner reports whether owner maps onto a placement column. Main
// services do not own slides.
func validOwner(owner Owner) bool {
	return owner.Section || owner.ServiceKind == catalog.ServiceKindImport || owner.ServiceKind == catalog.ServiceKindContracting
}

func isNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
