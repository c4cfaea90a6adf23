package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/noah-isme/sma-adp-views/internal/models"
	"github.com/noah-isme/sma-adp-views/internal/viewmodel"
	appErrors "github.com/noah-isme/sma-adp-views/pkg/errors"
	"github.com/noah-isme/sma-adp-views/pkg/middleware/requestid"
)

// Resource names a detail view served by ViewService.
type Resource string

const (
	ResourceClasses     Resource = "classes"
	ResourceDepartments Resource = "departments"
	ResourceSubjects    Resource = "subjects"
	ResourceFaculty     Resource = "faculty"
)

// ParseResource maps a path segment or CLI argument onto its Resource.
func ParseResource(raw string) (Resource, error) {
	switch r := Resource(strings.ToLower(strings.TrimSpace(raw))); r {
	case ResourceClasses, ResourceDepartments, ResourceSubjects, ResourceFaculty:
		return r, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown resource %q", raw))
	}
}

type classDetailsRepository interface {
	FindDetails(ctx context.Context, id string) (*models.ClassRecord, error)
}

type departmentDetailsRepository interface {
	FindDetails(ctx context.Context, id string) (*models.DepartmentDetails, error)
}

type subjectDetailsRepository interface {
	FindDetails(ctx context.Context, id string) (*models.SubjectDetails, error)
}

type facultyProfileRepository interface {
	FindProfile(ctx context.Context, id string) (*models.FacultyPayload, error)
}

const defaultLoadTimeout = 10 * time.Second

// ViewRequest identifies one detail view.
type ViewRequest struct {
	Resource Resource `validate:"required,oneof=classes departments subjects faculty"`
	ID       string   `validate:"required,max=64,printascii"`
}

// ViewRepositories groups the aggregate loaders behind each resource.
type ViewRepositories struct {
	Classes     classDetailsRepository
	Departments departmentDetailsRepository
	Subjects    subjectDetailsRepository
	Faculty     facultyProfileRepository
}

// ViewService loads aggregates and projects them into pages, caching ready pages.
type ViewService struct {
	repos     ViewRepositories
	projector *viewmodel.Projector
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration

	// loadTimeout bounds a shared load, which runs detached from the requests waiting on it.
	loadTimeout time.Duration
	flights     singleflight.Group
}

// NewViewService constructs a view service. cache and metrics may be nil; a non-positive
// loadTimeout uses defaultLoadTimeout.
func NewViewService(repos ViewRepositories, projector *viewmodel.Projector, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cacheTTL, loadTimeout time.Duration) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if projector == nil {
		projector = viewmodel.NewProjector(viewmodel.ProjectorConfig{})
	}
	if loadTimeout <= 0 {
		loadTimeout = defaultLoadTimeout
	}
	return &ViewService{
		repos:       repos,
		projector:   projector,
		cache:       cache,
		metrics:     metrics,
		validator:   validate,
		logger:      logger,
		cacheTTL:    cacheTTL,
		loadTimeout: loadTimeout,
	}
}

// Class renders the class page for id. The bool reports a cache hit.
func (s *ViewService) Class(ctx context.Context, id string) (viewmodel.ClassPage, bool, error) {
	return render(ctx, s, ViewRequest{Resource: ResourceClasses, ID: id}, s.repos.Classes.FindDetails, s.projector.Class)
}

// Department renders the department page for id.
func (s *ViewService) Department(ctx context.Context, id string) (viewmodel.DepartmentPage, bool, error) {
	return render(ctx, s, ViewRequest{Resource: ResourceDepartments, ID: id}, s.repos.Departments.FindDetails, s.projector.Department)
}

// Subject renders the subject page for id.
func (s *ViewService) Subject(ctx context.Context, id string) (viewmodel.SubjectPage, bool, error) {
	return render(ctx, s, ViewRequest{Resource: ResourceSubjects, ID: id}, s.repos.Subjects.FindDetails, s.projector.Subject)
}

// Faculty renders the faculty profile page for id.
func (s *ViewService) Faculty(ctx context.Context, id string) (viewmodel.FacultyPage, bool, error) {
	return render(ctx, s, ViewRequest{Resource: ResourceFaculty, ID: id}, s.repos.Faculty.FindProfile, s.projectFaculty)
}

func (s *ViewService) projectFaculty(f viewmodel.Fetch[models.FacultyPayload]) viewmodel.FacultyPage {
	page := s.projector.Faculty(f)
	if page.Profile != nil {
		s.metrics.ObserveFacultyVariant(string(page.Profile.Kind))
		s.logger.Debug("faculty profile discriminated",
			zap.String("user_id", f.Data.User.ID),
			zap.String("role", string(f.Data.User.Role)),
			zap.String("variant", string(page.Profile.Kind)),
		)
	}
	return page
}

// InvalidateRequest names the cached pages to drop. An empty ID selects every page of Resource;
// glob characters are rejected so one id never widens into a pattern.
type InvalidateRequest struct {
	Resource Resource `validate:"required,oneof=classes departments subjects faculty"`
	ID       string   `validate:"omitempty,max=64,printascii,excludesall=*?[]"`
}

// Invalidate drops cached pages for resource; an empty id drops every page of the resource.
func (s *ViewService) Invalidate(ctx context.Context, resource Resource, id string) error {
	req := InvalidateRequest{Resource: resource, ID: id}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid invalidate request")
	}
	if id == "" {
		id = "*"
	}
	if err := s.cache.Invalidate(ctx, cacheKey(resource, id)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to invalidate view cache")
	}
	return nil
}

func render[T any, P viewmodel.Page](
	ctx context.Context,
	s *ViewService,
	req ViewRequest,
	load func(context.Context, string) (*T, error),
	project func(viewmodel.Fetch[T]) P,
) (P, bool, error) {
	var zero P
	if err := s.validator.Struct(req); err != nil {
		return zero, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid view request")
	}

	key := cacheKey(req.Resource, req.ID)
	if s.cache.Enabled() {
		var cached P
		hit, err := s.cache.Get(ctx, key, &cached)
		if err == nil && hit {
			s.metrics.ObserveView(string(req.Resource), string(cached.PageHeader().State))
			return cached, true, nil
		}
	}

	// The shared load is detached from the caller that started it; each caller stops waiting
	// on its own ctx.
	flight := s.flights.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()
		data, err := load(loadCtx, req.ID)
		log := s.logger
		if id := requestid.FromContext(ctx); id != "" {
			log = log.With(zap.String("request_id", id))
		}
		page := project(toFetch(log, req, data, err))
		if page.PageHeader().State == viewmodel.StateReady {
			_ = s.cache.Set(loadCtx, key, page, s.cacheTTL)
		}
		return page, nil
	})

	var page P
	select {
	case <-ctx.Done():
		s.logger.Debug("view request abandoned",
			zap.String("resource", string(req.Resource)),
			zap.String("id", req.ID),
			zap.Error(ctx.Err()),
		)
		return zero, false, appErrors.Wrap(ctx.Err(), appErrors.ErrCanceled.Code, appErrors.ErrCanceled.Status, appErrors.ErrCanceled.Message)
	case res := <-flight:
		page = res.Val.(P)
	}

	s.metrics.ObserveView(string(req.Resource), string(page.PageHeader().State))
	return page, false, nil
}

// toFetch maps a repository result onto the fetch states the projector understands.
func toFetch[T any](logger *zap.Logger, req ViewRequest, data *T, err error) viewmodel.Fetch[T] {
	switch {
	case err == nil:
		return viewmodel.Fetch[T]{Data: data}
	case errors.Is(err, sql.ErrNoRows):
		return viewmodel.Fetch[T]{}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logger.Warn("view fetch interrupted",
			zap.String("resource", string(req.Resource)),
			zap.String("id", req.ID),
			zap.Error(err),
		)
		return viewmodel.Fetch[T]{IsError: true}
	default:
		logger.Error("view fetch failed",
			zap.String("resource", string(req.Resource)),
			zap.String("id", req.ID),
			zap.Error(err),
		)
		return viewmodel.Fetch[T]{IsError: true}
	}
}

// StateError converts a non-ready page header into the error the HTTP layer reports.
// It returns nil for ready pages.
func StateError(h viewmodel.Header) error {
	switch h.State {
	case viewmodel.StateReady:
		return nil
	case viewmodel.StateNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, h.Message)
	case viewmodel.StateLoading:
		return appErrors.Clone(appErrors.ErrLoading, h.Message)
	default:
		return appErrors.Clone(appErrors.ErrFetchFailed, h.Message)
	}
}

func cacheKey(resource Resource, id string) string {
	return "views:" + string(resource) + ":" + id
}
