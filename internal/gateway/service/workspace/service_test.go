package workspace

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"algolens/internal/cache/result"
	"algolens/internal/classifier"
	"algolens/internal/gateway/entity"
	"algolens/internal/gateway/repository/project"
	"algolens/internal/gateway/repository/stepblob"
	"algolens/internal/gateway/repository/visualization"
	"algolens/internal/gateway/service/pipeline"
	"algolens/internal/render"
	"algolens/internal/trace"
	"algolens/internal/tracegen"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWorkspace(t *testing.T) (*Service, stepblob.Store) {
	t.Helper()
	gen := tracegen.New(
		tracegen.WithMetrics(tracegen.FixedMetrics{TimeMS: 10, KB: 256}),
		tracegen.WithClock(func() time.Time { return time.Unix(0, 0) }),
	)
	pipe := pipeline.New(
		classifier.New(classifier.DefaultConfig()),
		gen,
		result.New(result.DefaultConfig()),
		zap.NewNop(),
	)
	steps := stepblob.NewMemoryStore()
	seq := 0
	svc := New(
		project.NewMemoryStore(),
		visualization.NewMemoryStore(),
		steps,
		pipe,
		render.NewSVGRenderer(),
		NewHub(),
		zap.NewNop(),
		WithClock(func() time.Time { return time.Unix(100, 0) }),
		WithIDSource(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	return svc, steps
}

const sortingCode = `function bubbleSort(arr) {
  // swap adjacent elements
  return arr;
}
bubbleSort([5, 3, 1]);`

func TestCreateProjectClassifiesCode(t *testing.T) {
	svc, _ := newTestWorkspace(t)
	p, err := svc.CreateProject(context.Background(), entity.Project{
		UserID:   "u1",
		Name:     "my sort",
		Code:     sortingCode,
		Language: "javascript",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, trace.CategorySorting, p.Category)
}

func TestCreateProjectRequiresName(t *testing.T) {
	svc, _ := newTestWorkspace(t)
	_, err := svc.CreateProject(context.Background(), entity.Project{UserID: "u1"})
	require.Error(t, err)
}

func TestUpdateProjectReclassifiesOnCodeChange(t *testing.T) {
	svc, _ := newTestWorkspace(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, entity.Project{
		UserID: "u1", Name: "p", Code: sortingCode, Language: "javascript",
	})
	require.NoError(t, err)
	require.Equal(t, trace.CategorySorting, p.Category)

	updated, err := svc.UpdateProject(ctx, entity.Project{
		ID:   p.ID,
		Code: "const queue = [];\nqueue.enqueue(1);\nqueue.dequeue();",
	})
	require.NoError(t, err)
	require.Equal(t, trace.CategoryQueue, updated.Category)
	require.Equal(t, p.Name, updated.Name)
}

func TestUpdateProjectNotFound(t *testing.T) {
	svc, _ := newTestWorkspace(t)
	_, err := svc.UpdateProject(context.Background(), entity.Project{ID: "missing"})
	require.ErrorIs(t, err, project.ErrNotFound)
}

func TestCreateVisualizationStoresRowAndSteps(t *testing.T) {
	svc, steps := newTestWorkspace(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, entity.Project{
		UserID: "u1", Name: "p", Code: sortingCode, Language: "javascript",
	})
	require.NoError(t, err)

	events := svc.Hub().Subscribe()
	defer svc.Hub().Unsubscribe(events)

	v, res, err := svc.CreateVisualization(ctx, p.ID, "")
	require.NoError(t, err)
	require.Equal(t, p.ID, v.ProjectID)
	require.Equal(t, trace.CategorySorting, v.Category)
	require.Equal(t, len(res.Steps), v.StepCount)
	require.NotZero(t, v.StepCount)

	// Blob store holds the serialized steps under the visualization ID.
	_, err = steps.Get(ctx, v.ID)
	require.NoError(t, err)

	loaded, err := svc.Steps(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, loaded, v.StepCount)

	select {
	case ev := <-events:
		require.Equal(t, EventVisualizationCreated, ev.Type)
		require.Equal(t, v.ID, ev.VisualizationID)
	default:
		t.Fatal("expected a visualization.created event")
	}
}

func TestCreateVisualizationUnknownProject(t *testing.T) {
	svc, _ := newTestWorkspace(t)
	_, _, err := svc.CreateVisualization(context.Background(), "missing", "")
	require.ErrorIs(t, err, project.ErrNotFound)
}

func TestFrameRendersStoredStep(t *testing.T) {
	svc, _ := newTestWorkspace(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, entity.Project{
		UserID: "u1", Name: "p", Code: sortingCode, Language: "javascript",
	})
	require.NoError(t, err)
	v, _, err := svc.CreateVisualization(ctx, p.ID, "")
	require.NoError(t, err)

	frame, step, err := svc.Frame(ctx, v.ID, 0)
	require.NoError(t, err)
	require.Equal(t, trace.ActionInit, step.Action)
	require.True(t, strings.HasPrefix(frame.SVG, "<svg"))

	_, _, err = svc.Frame(ctx, v.ID, v.StepCount)
	require.ErrorIs(t, err, ErrStepOutOfRange)
	_, _, err = svc.Frame(ctx, v.ID, -1)
	require.ErrorIs(t, err, ErrStepOutOfRange)
}

func TestMoveCursor(t *testing.T) {
	svc, _ := newTestWorkspace(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, entity.Project{
		UserID: "u1", Name: "p", Code: sortingCode, Language: "javascript",
	})
	require.NoError(t, err)
	v, _, err := svc.CreateVisualization(ctx, p.ID, "")
	require.NoError(t, err)

	state, err := svc.MoveCursor(ctx, v.ID, "forward", 0)
	require.NoError(t, err)
	require.Equal(t, 1, state.Index)
	require.Equal(t, v.StepCount, state.Total)
	require.NotNil(t, state.Step)

	// Backward at the start is a no-op.
	state, err = svc.MoveCursor(ctx, v.ID, "backward", 0)
	require.NoError(t, err)
	require.Equal(t, 0, state.Index)

	// Forward at the end is a no-op.
	state, err = svc.MoveCursor(ctx, v.ID, "forward", v.StepCount-1)
	require.NoError(t, err)
	require.Equal(t, v.StepCount-1, state.Index)

	// Seek clamps out-of-range targets.
	state, err = svc.MoveCursor(ctx, v.ID, "seek", 9999)
	require.NoError(t, err)
	require.Equal(t, v.StepCount-1, state.Index)

	state, err = svc.MoveCursor(ctx, v.ID, "reset", v.StepCount-1)
	require.NoError(t, err)
	require.Equal(t, 0, state.Index)
	require.False(t, state.Playing)

	state, err = svc.MoveCursor(ctx, v.ID, "play", 0)
	require.NoError(t, err)
	require.True(t, state.Playing)

	_, err = svc.MoveCursor(ctx, v.ID, "rewind", 0)
	require.ErrorIs(t, err, ErrUnknownCursorOp)
}

func TestDeleteProjectCascadesVisualizations(t *testing.T) {
	svc, steps := newTestWorkspace(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, entity.Project{
		UserID: "u1", Name: "p", Code: sortingCode, Language: "javascript",
	})
	require.NoError(t, err)
	v, _, err := svc.CreateVisualization(ctx, p.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, p.ID))

	_, err = svc.GetProject(ctx, p.ID)
	require.ErrorIs(t, err, project.ErrNotFound)
	_, err = svc.GetVisualization(ctx, v.ID)
	require.ErrorIs(t, err, visualization.ErrNotFound)
	_, err = steps.Get(ctx, v.ID)
	require.ErrorIs(t, err, stepblob.ErrNotFound)
}

func TestHubDropsEventsForSlowSubscribers(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	for i := 0; i < 100; i++ {
		hub.Publish(Event{Type: EventProjectUpdated})
	}
	// Buffered capacity only; the rest were dropped, not blocked on.
	require.Len(t, ch, 16)
}
