package publish

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/repos"
	"github.com/coursewave/coursewave-backend/internal/types"
)

var orchNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// mapRegistry is a fixed-answer AssetRegistry for tests. Keys are owner IDs;
// values are the variants the owner has.
type mapRegistry struct {
	mu       sync.Mutex
	variants map[uuid.UUID][]string
}

func newMapRegistry() *mapRegistry {
	return &mapRegistry{variants: map[uuid.UUID][]string{}}
}

func (m *mapRegistry) grant(ownerID uuid.UUID, variants ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variants[ownerID] = variants
}

func (m *mapRegistry) HasRequiredVariants(ctx context.Context, ownerID uuid.UUID, ownerKind, language string) (VariantCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	have := map[string]bool{}
	for _, v := range m.variants[ownerID] {
		have[v] = true
	}
	check := VariantCheck{Satisfied: true}
	for _, v := range RequiredVariants {
		if !have[v] {
			check.Satisfied = false
			check.Missing = append(check.Missing, v)
		}
	}
	return check, nil
}

type orchFixture struct {
	db        *gorm.DB
	orch      *Orchestrator
	lessons   repos.LessonRepo
	programs  repos.ProgramRepo
	registry  *mapRegistry
	program   *types.Program
	term      *types.Term
	lessonSeq int
}

var fixtureSeq atomic.Int64

func newOrchFixture(t *testing.T) *orchFixture {
	t.Helper()
	// A named in-memory database with a shared cache, so gorm's connection
	// pool sees one store instead of one per connection.
	dsn := fmt.Sprintf("file:orch_test_%d?mode=memory&cache=shared", fixtureSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Program{}, &types.Term{}, &types.Lesson{}, &types.Asset{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	log := logger.NewNop()
	lessonRepo := repos.NewLessonRepo(db, log)
	termRepo := repos.NewTermRepo(db, log)
	programRepo := repos.NewProgramRepo(db, log)
	registry := newMapRegistry()
	orch := NewOrchestrator(db, log, lessonRepo, termRepo, programRepo, registry)
	orch.now = func() time.Time { return orchNow }

	program := &types.Program{Title: "Go from Zero", PrimaryLanguage: "en", Languages: []string{"en"}, Status: types.StatusDraft}
	if err := db.Create(program).Error; err != nil {
		t.Fatalf("create program: %v", err)
	}
	term := &types.Term{ProgramID: program.ID, TermNumber: 1, Title: "Basics"}
	if err := db.Create(term).Error; err != nil {
		t.Fatalf("create term: %v", err)
	}
	return &orchFixture{
		db:       db,
		orch:     orch,
		lessons:  lessonRepo,
		programs: programRepo,
		registry: registry,
		program:  program,
		term:     term,
	}
}

func (f *orchFixture) seedLesson(t *testing.T, status string, publishAt *time.Time) *types.Lesson {
	t.Helper()
	f.lessonSeq++
	lesson := &types.Lesson{
		TermID:          f.term.ID,
		LessonNumber:    f.lessonSeq,
		Title:           "Variables",
		Kind:            types.LessonKindArticle,
		PrimaryLanguage: "en",
		Languages:       []string{"en"},
		Status:          status,
		PublishAt:       publishAt,
	}
	if err := f.db.Create(lesson).Error; err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	return lesson
}

func (f *orchFixture) reloadLesson(t *testing.T, id uuid.UUID) *types.Lesson {
	t.Helper()
	lesson, err := f.lessons.GetByID(context.Background(), nil, id)
	if err != nil {
		t.Fatalf("reload lesson: %v", err)
	}
	if lesson == nil {
		t.Fatalf("lesson %s vanished", id)
	}
	return lesson
}

func (f *orchFixture) reloadProgram(t *testing.T) *types.Program {
	t.Helper()
	program, err := f.programs.GetByID(context.Background(), nil, f.program.ID)
	if err != nil {
		t.Fatalf("reload program: %v", err)
	}
	return program
}

func TestPublishNowCascadesIntoProgram(t *testing.T) {
	f := newOrchFixture(t)
	lesson := f.seedLesson(t, types.StatusDraft, nil)
	f.registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)

	out, err := f.orch.PublishNow(context.Background(), lesson.ID)
	if err != nil {
		t.Fatalf("PublishNow: %v", err)
	}
	if out.Code != OutcomePublished {
		t.Fatalf("outcome: want=%q got=%q", OutcomePublished, out.Code)
	}
	if out.CascadeErr != nil {
		t.Fatalf("cascade: unexpected error %v", out.CascadeErr)
	}

	got := f.reloadLesson(t, lesson.ID)
	if got.Status != types.StatusPublished {
		t.Fatalf("lesson status: want=%q got=%q", types.StatusPublished, got.Status)
	}
	if got.PublishedAt == nil {
		t.Fatalf("lesson published_at not set")
	}
	if got.PublishAt != nil {
		t.Fatalf("lesson publish_at not cleared: %v", got.PublishAt)
	}

	program := f.reloadProgram(t)
	if program.Status != types.StatusPublished {
		t.Fatalf("program status: want=%q got=%q", types.StatusPublished, program.Status)
	}
	if program.PublishedAt == nil {
		t.Fatalf("program published_at not set")
	}
}

func TestPublishNowMissingVariantRejected(t *testing.T) {
	f := newOrchFixture(t)
	lesson := f.seedLesson(t, types.StatusDraft, nil)
	f.registry.grant(lesson.ID, types.VariantPortrait) // landscape missing

	out, err := f.orch.PublishNow(context.Background(), lesson.ID)
	if err != nil {
		t.Fatalf("PublishNow: %v", err)
	}
	if out.Code != OutcomeRejected {
		t.Fatalf("outcome: want=%q got=%q", OutcomeRejected, out.Code)
	}
	if len(out.MissingVariants) != 1 || out.MissingVariants[0] != types.VariantLandscape {
		t.Fatalf("missing variants: want=[landscape] got=%v", out.MissingVariants)
	}

	got := f.reloadLesson(t, lesson.ID)
	if got.Status != types.StatusDraft {
		t.Fatalf("rejection must not change status: got=%q", got.Status)
	}
	program := f.reloadProgram(t)
	if program.Status != types.StatusDraft {
		t.Fatalf("rejection must not cascade: got=%q", program.Status)
	}
}

func TestPublishNowOnPublishedIsNoOp(t *testing.T) {
	f := newOrchFixture(t)
	lesson := f.seedLesson(t, types.StatusDraft, nil)
	f.registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)

	if _, err := f.orch.PublishNow(context.Background(), lesson.ID); err != nil {
		t.Fatalf("first PublishNow: %v", err)
	}
	first := f.reloadLesson(t, lesson.ID)

	out, err := f.orch.PublishNow(context.Background(), lesson.ID)
	if err != nil {
		t.Fatalf("second PublishNow: %v", err)
	}
	if out.Code != OutcomeNoOp {
		t.Fatalf("outcome: want=%q got=%q", OutcomeNoOp, out.Code)
	}
	second := f.reloadLesson(t, lesson.ID)
	if !second.PublishedAt.Equal(*first.PublishedAt) {
		t.Fatalf("published_at changed on re-publish: %v -> %v", first.PublishedAt, second.PublishedAt)
	}
}

func TestScheduleThenDueTransition(t *testing.T) {
	f := newOrchFixture(t)
	lesson := f.seedLesson(t, types.StatusDraft, nil)
	f.registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)

	due := orchNow.Add(time.Hour)
	out, err := f.orch.Schedule(context.Background(), lesson.ID, due)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if out.Code != OutcomeScheduled {
		t.Fatalf("outcome: want=%q got=%q", OutcomeScheduled, out.Code)
	}
	got := f.reloadLesson(t, lesson.ID)
	if got.Status != types.StatusScheduled {
		t.Fatalf("lesson status: want=%q got=%q", types.StatusScheduled, got.Status)
	}
	if got.PublishAt == nil || !got.PublishAt.Equal(due) {
		t.Fatalf("publish_at: want=%v got=%v", due, got.PublishAt)
	}

	// Not yet due.
	out, err = f.orch.ProcessDue(context.Background(), lesson.ID, orchNow)
	if err != nil {
		t.Fatalf("ProcessDue early: %v", err)
	}
	if out.Code != OutcomeNoOp {
		t.Fatalf("early outcome: want=%q got=%q", OutcomeNoOp, out.Code)
	}

	// Past due.
	later := due.Add(time.Minute)
	out, err = f.orch.ProcessDue(context.Background(), lesson.ID, later)
	if err != nil {
		t.Fatalf("ProcessDue: %v", err)
	}
	if out.Code != OutcomePublished {
		t.Fatalf("outcome: want=%q got=%q", OutcomePublished, out.Code)
	}
	got = f.reloadLesson(t, lesson.ID)
	if got.Status != types.StatusPublished {
		t.Fatalf("lesson status: want=%q got=%q", types.StatusPublished, got.Status)
	}
	if got.PublishAt != nil {
		t.Fatalf("publish_at not cleared after due publish")
	}
	program := f.reloadProgram(t)
	if program.Status != types.StatusPublished {
		t.Fatalf("program status: want=%q got=%q", types.StatusPublished, program.Status)
	}
}

func TestProcessDueIsIdempotent(t *testing.T) {
	f := newOrchFixture(t)
	due := orchNow.Add(-time.Minute)
	lesson := f.seedLesson(t, types.StatusScheduled, &due)
	f.registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)

	out, err := f.orch.ProcessDue(context.Background(), lesson.ID, orchNow)
	if err != nil {
		t.Fatalf("first ProcessDue: %v", err)
	}
	if out.Code != OutcomePublished {
		t.Fatalf("first outcome: want=%q got=%q", OutcomePublished, out.Code)
	}
	first := f.reloadLesson(t, lesson.ID)

	out, err = f.orch.ProcessDue(context.Background(), lesson.ID, orchNow.Add(time.Minute))
	if err != nil {
		t.Fatalf("second ProcessDue: %v", err)
	}
	if out.Code != OutcomeNoOp {
		t.Fatalf("second outcome: want=%q got=%q", OutcomeNoOp, out.Code)
	}
	second := f.reloadLesson(t, lesson.ID)
	if !second.PublishedAt.Equal(*first.PublishedAt) {
		t.Fatalf("published_at changed on rerun: %v -> %v", first.PublishedAt, second.PublishedAt)
	}
}

func TestProcessDueIncompleteAssetsLeavesScheduled(t *testing.T) {
	f := newOrchFixture(t)
	due := orchNow.Add(-time.Minute)
	lesson := f.seedLesson(t, types.StatusScheduled, &due)
	// no variants granted

	out, err := f.orch.ProcessDue(context.Background(), lesson.ID, orchNow)
	if err != nil {
		t.Fatalf("ProcessDue: %v", err)
	}
	if out.Code != OutcomeRejected {
		t.Fatalf("outcome: want=%q got=%q", OutcomeRejected, out.Code)
	}
	got := f.reloadLesson(t, lesson.ID)
	if got.Status != types.StatusScheduled {
		t.Fatalf("lesson must stay scheduled: got=%q", got.Status)
	}
	if got.PublishAt == nil {
		t.Fatalf("publish_at must survive a rejected due transition")
	}

	// Variants uploaded; the next run publishes.
	f.registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)
	out, err = f.orch.ProcessDue(context.Background(), lesson.ID, orchNow.Add(time.Minute))
	if err != nil {
		t.Fatalf("retry ProcessDue: %v", err)
	}
	if out.Code != OutcomePublished {
		t.Fatalf("retry outcome: want=%q got=%q", OutcomePublished, out.Code)
	}
}

func TestCascadeKeepsEarlierProgramPublishedAt(t *testing.T) {
	f := newOrchFixture(t)
	earlier := orchNow.Add(-48 * time.Hour)
	if err := f.db.Model(&types.Program{}).Where("id = ?", f.program.ID).
		Updates(map[string]interface{}{"status": types.StatusPublished, "published_at": earlier}).Error; err != nil {
		t.Fatalf("seed program: %v", err)
	}
	lesson := f.seedLesson(t, types.StatusDraft, nil)
	f.registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)

	out, err := f.orch.PublishNow(context.Background(), lesson.ID)
	if err != nil {
		t.Fatalf("PublishNow: %v", err)
	}
	if out.Code != OutcomePublished || out.CascadeErr != nil {
		t.Fatalf("outcome: got=%q cascadeErr=%v", out.Code, out.CascadeErr)
	}
	program := f.reloadProgram(t)
	if program.PublishedAt == nil || !program.PublishedAt.Equal(earlier) {
		t.Fatalf("program published_at overwritten: want=%v got=%v", earlier, program.PublishedAt)
	}
}

func TestArchiveAndCancelSchedule(t *testing.T) {
	f := newOrchFixture(t)
	due := orchNow.Add(time.Hour)
	lesson := f.seedLesson(t, types.StatusScheduled, &due)

	out, err := f.orch.CancelSchedule(context.Background(), lesson.ID)
	if err != nil {
		t.Fatalf("CancelSchedule: %v", err)
	}
	if out.Code != OutcomeCanceled {
		t.Fatalf("outcome: want=%q got=%q", OutcomeCanceled, out.Code)
	}
	got := f.reloadLesson(t, lesson.ID)
	if got.Status != types.StatusDraft || got.PublishAt != nil {
		t.Fatalf("cancel result: status=%q publish_at=%v", got.Status, got.PublishAt)
	}

	out, err = f.orch.Archive(context.Background(), lesson.ID)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if out.Code != OutcomeArchived {
		t.Fatalf("outcome: want=%q got=%q", OutcomeArchived, out.Code)
	}
	got = f.reloadLesson(t, lesson.ID)
	if got.Status != types.StatusArchived {
		t.Fatalf("lesson status: want=%q got=%q", types.StatusArchived, got.Status)
	}

	// Archived lessons refuse publish and schedule.
	f.registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)
	out, err = f.orch.PublishNow(context.Background(), lesson.ID)
	if err != nil {
		t.Fatalf("PublishNow archived: %v", err)
	}
	if out.Code != OutcomeRejected {
		t.Fatalf("publish archived: want=%q got=%q", OutcomeRejected, out.Code)
	}
	out, err = f.orch.Schedule(context.Background(), lesson.ID, orchNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("Schedule archived: %v", err)
	}
	if out.Code != OutcomeRejected {
		t.Fatalf("schedule archived: want=%q got=%q", OutcomeRejected, out.Code)
	}
}

// raceLessonStore is an in-memory LessonRepo whose conditional writes are
// serialized by a mutex, standing in for the database's atomic UPDATE. It lets
// the exactly-once claim be tested with real goroutine interleaving.
type raceLessonStore struct {
	mu      sync.Mutex
	lessons map[uuid.UUID]*types.Lesson
}

func newRaceLessonStore() *raceLessonStore {
	return &raceLessonStore{lessons: map[uuid.UUID]*types.Lesson{}}
}

func (s *raceLessonStore) put(l *types.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.lessons[l.ID] = &cp
}

func (s *raceLessonStore) Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error) {
	for _, l := range lessons {
		s.put(l)
	}
	return lessons, nil
}

func (s *raceLessonStore) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (s *raceLessonStore) ListByTermIDs(ctx context.Context, tx *gorm.DB, termIDs []uuid.UUID) ([]*types.Lesson, error) {
	return nil, nil
}

func (s *raceLessonStore) ListPublishedByTermIDs(ctx context.Context, tx *gorm.DB, termIDs []uuid.UUID) ([]*types.Lesson, error) {
	return nil, nil
}

func (s *raceLessonStore) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	return nil
}

func (s *raceLessonStore) applyUpdates(l *types.Lesson, updates map[string]interface{}) {
	if v, ok := updates["status"]; ok {
		l.Status = v.(string)
	}
	if v, ok := updates["publish_at"]; ok {
		if v == nil {
			l.PublishAt = nil
		} else {
			at := v.(time.Time)
			l.PublishAt = &at
		}
	}
	if v, ok := updates["published_at"]; ok {
		if v == nil {
			l.PublishedAt = nil
		} else {
			at := v.(time.Time)
			l.PublishedAt = &at
		}
	}
}

func (s *raceLessonStore) ConditionalUpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, expected []string, updates map[string]interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	if !ok {
		return false, nil
	}
	match := false
	for _, st := range expected {
		if l.Status == st {
			match = true
			break
		}
	}
	if !match {
		return false, nil
	}
	s.applyUpdates(l, updates)
	return true, nil
}

func (s *raceLessonStore) ConditionalPublishDue(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time, updates map[string]interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	if !ok {
		return false, nil
	}
	if l.Status != types.StatusScheduled || l.PublishAt == nil || l.PublishAt.After(now) {
		return false, nil
	}
	s.applyUpdates(l, updates)
	return true, nil
}

func (s *raceLessonStore) FindDue(ctx context.Context, tx *gorm.DB, now time.Time) ([]*types.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*types.Lesson
	for _, l := range s.lessons {
		if l.Status == types.StatusScheduled && l.PublishAt != nil && !l.PublishAt.After(now) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *raceLessonStore) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lessons, id)
	return nil
}

type raceTermStore struct {
	term *types.Term
}

func (s *raceTermStore) Create(ctx context.Context, tx *gorm.DB, terms []*types.Term) ([]*types.Term, error) {
	return terms, nil
}

func (s *raceTermStore) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Term, error) {
	if s.term != nil && s.term.ID == id {
		cp := *s.term
		return &cp, nil
	}
	return nil, nil
}

func (s *raceTermStore) ListByProgramIDs(ctx context.Context, tx *gorm.DB, programIDs []uuid.UUID) ([]*types.Term, error) {
	return nil, nil
}

func (s *raceTermStore) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	return nil
}

func (s *raceTermStore) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return nil
}

type raceProgramStore struct {
	mu       sync.Mutex
	program  *types.Program
	cascades int
}

func (s *raceProgramStore) Create(ctx context.Context, tx *gorm.DB, programs []*types.Program) ([]*types.Program, error) {
	return programs, nil
}

func (s *raceProgramStore) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != nil && s.program.ID == id {
		cp := *s.program
		return &cp, nil
	}
	return nil, nil
}

func (s *raceProgramStore) List(ctx context.Context, tx *gorm.DB) ([]*types.Program, error) {
	return nil, nil
}

func (s *raceProgramStore) ListPublished(ctx context.Context, tx *gorm.DB) ([]*types.Program, error) {
	return nil, nil
}

func (s *raceProgramStore) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	return nil
}

func (s *raceProgramStore) ConditionalUpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, expected []string, updates map[string]interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program == nil || s.program.ID != id {
		return false, nil
	}
	match := false
	for _, st := range expected {
		if s.program.Status == st {
			match = true
			break
		}
	}
	if !match {
		return false, nil
	}
	if v, ok := updates["status"]; ok {
		s.program.Status = v.(string)
	}
	if v, ok := updates["published_at"]; ok && v != nil {
		at := v.(time.Time)
		s.program.PublishedAt = &at
	}
	s.cascades++
	return true, nil
}

func (s *raceProgramStore) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return nil
}

func TestProcessDueConcurrentRunsPublishOnce(t *testing.T) {
	program := &types.Program{ID: uuid.New(), Status: types.StatusDraft}
	term := &types.Term{ID: uuid.New(), ProgramID: program.ID, TermNumber: 1}
	due := orchNow.Add(-time.Minute)
	lesson := &types.Lesson{
		ID:              uuid.New(),
		TermID:          term.ID,
		LessonNumber:    1,
		Status:          types.StatusScheduled,
		PublishAt:       &due,
		PrimaryLanguage: "en",
	}

	store := newRaceLessonStore()
	store.put(lesson)
	registry := newMapRegistry()
	registry.grant(lesson.ID, types.VariantPortrait, types.VariantLandscape)
	programs := &raceProgramStore{program: program}
	orch := NewOrchestrator(nil, logger.NewNop(), store, &raceTermStore{term: term}, programs, registry)
	orch.now = func() time.Time { return orchNow }

	const workers = 8
	outcomes := make(chan Outcome, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := orch.ProcessDue(context.Background(), lesson.ID, orchNow)
			if err != nil {
				t.Errorf("ProcessDue: %v", err)
				return
			}
			outcomes <- out
		}()
	}
	wg.Wait()
	close(outcomes)

	published := 0
	for out := range outcomes {
		switch out.Code {
		case OutcomePublished:
			published++
		case OutcomeNoOp:
		default:
			t.Fatalf("unexpected outcome %q", out.Code)
		}
	}
	if published != 1 {
		t.Fatalf("published: want exactly 1, got %d", published)
	}
	if programs.cascades != 1 {
		t.Fatalf("program cascade writes: want exactly 1, got %d", programs.cascades)
	}

	got, _ := store.GetByID(context.Background(), nil, lesson.ID)
	if got.Status != types.StatusPublished {
		t.Fatalf("lesson status: want=%q got=%q", types.StatusPublished, got.Status)
	}
}
