// Package workspace orchestrates the persisted side of the app: projects
// and their saved visualizations. It glues the CRUD stores to the pipeline,
// keeps project categories in sync with the code they hold, and notifies
// watchers when visualizations change.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"algolens/internal/gateway/entity"
	"algolens/internal/gateway/repository/project"
	"algolens/internal/gateway/repository/stepblob"
	"algolens/internal/gateway/repository/visualization"
	"algolens/internal/gateway/service/pipeline"
	"algolens/internal/playback"
	"algolens/internal/render"
	"algolens/internal/trace"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStepOutOfRange  = errors.New("step index out of range")
	ErrUnknownCursorOp = errors.New("unknown cursor operation")
)

type Service struct {
	projects       project.Store
	visualizations visualization.Store
	steps          stepblob.Store
	pipeline       *pipeline.Service
	renderer       render.Renderer
	hub            *Hub
	logger         *zap.Logger

	now   func() time.Time
	newID func() string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDSource(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func New(
	projects project.Store,
	visualizations visualization.Store,
	steps stepblob.Store,
	pipe *pipeline.Service,
	renderer render.Renderer,
	hub *Hub,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if renderer == nil {
		renderer = render.NewSVGRenderer()
	}
	if hub == nil {
		hub = NewHub()
	}
	s := &Service{
		projects:       projects,
		visualizations: visualizations,
		steps:          steps,
		pipeline:       pipe,
		renderer:       renderer,
		hub:            hub,
		logger:         logger,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Hub() *Hub { return s.hub }

// CreateProject persists a new project. The stored category is the
// classifier's guess for the submitted code at save time.
func (s *Service) CreateProject(ctx context.Context, p entity.Project) (entity.Project, error) {
	if strings.TrimSpace(p.Name) == "" {
		return entity.Project{}, fmt.Errorf("project name is required")
	}
	p.ID = s.newID()
	p.Category = s.classify(ctx, p.Language, p.Code)
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

// UpdateProject applies the mutable fields onto the stored row. A code or
// language change triggers re-classification so the category never goes
// stale.
func (s *Service) UpdateProject(ctx context.Context, p entity.Project) (entity.Project, error) {
	existing, err := s.projects.Get(ctx, p.ID)
	if err != nil {
		return entity.Project{}, err
	}
	if strings.TrimSpace(p.Name) != "" {
		existing.Name = p.Name
	}
	reclassify := false
	if p.Language != "" && p.Language != existing.Language {
		existing.Language = p.Language
		reclassify = true
	}
	if p.Code != "" && p.Code != existing.Code {
		existing.Code = p.Code
		reclassify = true
	}
	if reclassify {
		existing.Category = s.classify(ctx, existing.Language, existing.Code)
	}
	existing.UpdatedAt = s.now()

	updated, err := s.projects.Update(ctx, existing)
	if err != nil {
		return entity.Project{}, err
	}
	s.hub.Publish(Event{Type: EventProjectUpdated, ProjectID: updated.ID})
	return updated, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (entity.Project, error) {
	return s.projects.Get(ctx, id)
}

// ListProjects lists every project, or just one user's when userID is set.
func (s *Service) ListProjects(ctx context.Context, userID string) ([]entity.Project, error) {
	if strings.TrimSpace(userID) == "" {
		return s.projects.List(ctx)
	}
	return s.projects.ListByUser(ctx, userID)
}

// DeleteProject removes the project and every visualization saved under
// it, step payloads included.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	vizzes, err := s.visualizations.ListByProject(ctx, id)
	if err != nil {
		return err
	}
	for _, v := range vizzes {
		if err := s.DeleteVisualization(ctx, v.ID); err != nil && !errors.Is(err, visualization.ErrNotFound) {
			return err
		}
	}
	return s.projects.Delete(ctx, id)
}

// CreateVisualization executes the project's code through the pipeline and
// stores the result: the step payload in the blob store, the metadata row
// alongside, and a change event to watchers.
func (s *Service) CreateVisualization(ctx context.Context, projectID, input string) (entity.Visualization, trace.TraceResult, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return entity.Visualization{}, trace.TraceResult{}, err
	}

	result, err := s.pipeline.Execute(ctx, p.Language, p.Code, input)
	if err != nil {
		return entity.Visualization{}, trace.TraceResult{}, err
	}

	payload, err := json.Marshal(result.Steps)
	if err != nil {
		return entity.Visualization{}, trace.TraceResult{}, fmt.Errorf("encode steps: %w", err)
	}

	now := s.now()
	v := entity.Visualization{
		ID:        s.newID(),
		ProjectID: p.ID,
		Category:  result.Category,
		StepCount: len(result.Steps),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.steps.Put(ctx, v.ID, payload); err != nil {
		return entity.Visualization{}, trace.TraceResult{}, fmt.Errorf("store steps: %w", err)
	}
	created, err := s.visualizations.Create(ctx, v)
	if err != nil {
		// Do not leave an orphaned payload behind the failed row.
		_ = s.steps.Delete(ctx, v.ID)
		return entity.Visualization{}, trace.TraceResult{}, err
	}
	v = created

	s.logger.Info("saved visualization",
		zap.String("visualization_id", v.ID),
		zap.String("project_id", p.ID),
		zap.Int("steps", v.StepCount))
	s.hub.Publish(Event{Type: EventVisualizationCreated, ProjectID: p.ID, VisualizationID: v.ID})
	return v, result, nil
}

func (s *Service) GetVisualization(ctx context.Context, id string) (entity.Visualization, error) {
	return s.visualizations.Get(ctx, id)
}

func (s *Service) ListVisualizations(ctx context.Context, projectID string) ([]entity.Visualization, error) {
	return s.visualizations.ListByProject(ctx, projectID)
}

func (s *Service) DeleteVisualization(ctx context.Context, id string) error {
	v, err := s.visualizations.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.visualizations.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.steps.Delete(ctx, id); err != nil && !errors.Is(err, stepblob.ErrNotFound) {
		s.logger.Warn("orphaned step payload", zap.String("visualization_id", id), zap.Error(err))
	}
	s.hub.Publish(Event{Type: EventVisualizationDeleted, ProjectID: v.ProjectID, VisualizationID: id})
	return nil
}

// Steps loads and decodes the stored step list for a visualization.
func (s *Service) Steps(ctx context.Context, visualizationID string) ([]trace.TraceStep, error) {
	if _, err := s.visualizations.Get(ctx, visualizationID); err != nil {
		return nil, err
	}
	payload, err := s.steps.Get(ctx, visualizationID)
	if err != nil {
		return nil, err
	}
	var steps []trace.TraceStep
	if err := json.Unmarshal(payload, &steps); err != nil {
		return nil, fmt.Errorf("decode steps: %w", err)
	}
	return steps, nil
}

// Frame renders one stored step as an SVG snapshot.
func (s *Service) Frame(ctx context.Context, visualizationID string, stepIndex int) (render.Frame, trace.TraceStep, error) {
	steps, err := s.Steps(ctx, visualizationID)
	if err != nil {
		return render.Frame{}, trace.TraceStep{}, err
	}
	if stepIndex < 0 || stepIndex >= len(steps) {
		return render.Frame{}, trace.TraceStep{}, ErrStepOutOfRange
	}
	step := steps[stepIndex]
	return s.renderer.RenderStep(step), step, nil
}

// CursorState reports where a navigation operation landed.
type CursorState struct {
	Index   int              `json:"index"`
	Total   int              `json:"total"`
	Playing bool             `json:"playing"`
	Step    *trace.TraceStep `json:"step,omitempty"`
}

// MoveCursor applies one navigation operation against the stored trace.
// Navigation is stateless on the server: the client sends its current
// index, the cursor replays it and applies the operation, and boundary
// hits are no-ops rather than errors.
func (s *Service) MoveCursor(ctx context.Context, visualizationID, op string, index int) (CursorState, error) {
	steps, err := s.Steps(ctx, visualizationID)
	if err != nil {
		return CursorState{}, err
	}

	cursor := playback.NewCursor(steps)
	cursor.Seek(index)
	switch op {
	case "forward":
		cursor.Forward()
	case "backward":
		cursor.Backward()
	case "seek":
		// Seek already applied above.
	case "play":
		cursor.Play()
	case "pause":
		cursor.Pause()
	case "reset":
		cursor.Reset()
	default:
		return CursorState{}, ErrUnknownCursorOp
	}

	state := CursorState{
		Index:   cursor.Index(),
		Total:   cursor.Len(),
		Playing: cursor.Playing(),
	}
	if step, ok := cursor.Current(); ok {
		state.Step = &step
	}
	return state, nil
}

func (s *Service) classify(ctx context.Context, language, code string) trace.Category {
	d, err := s.pipeline.Detect(ctx, language, code)
	if err != nil {
		return trace.CategoryUnknown
	}
	return d.Category
}
