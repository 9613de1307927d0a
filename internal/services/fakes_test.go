package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/types"
)

// memStore backs the fake repos for service tests. All fakes share one store
// so cross-repo effects (message + progress + audit) are observable.
type memStore struct {
	pods      []*types.Pod
	messages  []*types.PodMessage
	progress  []*types.DayProgress
	templates []*types.DayTemplate
	tags      []*types.UserTag
	users     []*types.User
	audit     []*types.UserMessageLog
	aiCalls   []*types.AICallLog

	clock time.Time

	failPodCreate     bool
	failMessageCreate bool
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
}

// tick hands out strictly increasing timestamps so pagination ordering is
// deterministic.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func visible(m *types.PodMessage, now time.Time) bool {
	if m.SentAt != nil || m.SenderType == types.SenderUser {
		return true
	}
	return m.ScheduledFor != nil && !m.ScheduledFor.After(now)
}

// --- PodRepo ---

type fakePodRepo struct{ s *memStore }

func (r *fakePodRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Pod) (*types.Pod, error) {
	if r.s.failPodCreate {
		return nil, errors.New("pod insert failed")
	}
	for _, p := range r.s.pods {
		if p.UserID == row.UserID {
			return nil, errors.New("duplicate key value violates unique constraint")
		}
	}
	r.s.pods = append(r.s.pods, row)
	return row, nil
}

func (r *fakePodRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Pod, error) {
	for _, p := range r.s.pods {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePodRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Pod, error) {
	for _, p := range r.s.pods {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

// --- PodMessageRepo ---

type fakePodMessageRepo struct{ s *memStore }

func (r *fakePodMessageRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.PodMessage) ([]*types.PodMessage, error) {
	if r.s.failMessageCreate {
		return nil, errors.New("message insert failed")
	}
	for _, m := range rows {
		if m.CreatedAt.IsZero() {
			m.CreatedAt = r.s.tick()
		}
		r.s.messages = append(r.s.messages, m)
	}
	return rows, nil
}

func (r *fakePodMessageRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.PodMessage, error) {
	var out []*types.PodMessage
	for _, m := range r.s.messages {
		for _, id := range ids {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (r *fakePodMessageRepo) ListVisibleBefore(ctx context.Context, tx *gorm.DB, podID uuid.UUID, before *time.Time, now time.Time, limit int) ([]*types.PodMessage, error) {
	var out []*types.PodMessage
	for _, m := range r.s.messages {
		if m.PodID != podID || !visible(m, now) {
			continue
		}
		if before != nil && !m.CreatedAt.Before(*before) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePodMessageRepo) ListLastSent(ctx context.Context, tx *gorm.DB, podID uuid.UUID, now time.Time, limit int) ([]*types.PodMessage, error) {
	newest, err := r.ListVisibleBefore(ctx, tx, podID, nil, now, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(newest)-1; i < j; i, j = i+1, j-1 {
		newest[i], newest[j] = newest[j], newest[i]
	}
	return newest, nil
}

// --- DayProgressRepo ---

type fakeDayProgressRepo struct{ s *memStore }

func (r *fakeDayProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.DayProgress) error {
	for _, p := range r.s.progress {
		if p.PodID == row.PodID && p.DayNumber == row.DayNumber {
			p.UserReplied = row.UserReplied
			return nil
		}
	}
	r.s.progress = append(r.s.progress, row)
	return nil
}

func (r *fakeDayProgressRepo) GetByPodID(ctx context.Context, tx *gorm.DB, podID uuid.UUID) ([]*types.DayProgress, error) {
	var out []*types.DayProgress
	for _, p := range r.s.progress {
		if p.PodID == podID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeDayProgressRepo) CountReplied(ctx context.Context, tx *gorm.DB, podID uuid.UUID) (int64, error) {
	var count int64
	for _, p := range r.s.progress {
		if p.PodID == podID && p.UserReplied {
			count++
		}
	}
	return count, nil
}

// --- DayTemplateRepo ---

type fakeDayTemplateRepo struct{ s *memStore }

func (r *fakeDayTemplateRepo) GetByNicheAndDay(ctx context.Context, tx *gorm.DB, niche string, day int) (*types.DayTemplate, error) {
	for _, t := range r.s.templates {
		if t.NicheCategory == niche && t.DayNumber == day {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeDayTemplateRepo) CountByNiche(ctx context.Context, tx *gorm.DB, niche string) (int64, error) {
	var count int64
	for _, t := range r.s.templates {
		if t.NicheCategory == niche {
			count++
		}
	}
	return count, nil
}

func (r *fakeDayTemplateRepo) UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.DayTemplate) error {
	r.s.templates = append(r.s.templates, rows...)
	return nil
}

// --- UserTagRepo ---

type fakeUserTagRepo struct{ s *memStore }

func (r *fakeUserTagRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.UserTag) ([]*types.UserTag, error) {
	r.s.tags = append(r.s.tags, rows...)
	return rows, nil
}

func (r *fakeUserTagRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserTag, error) {
	var latest *types.UserTag
	for _, t := range r.s.tags {
		if t.UserID != userID {
			continue
		}
		if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	return latest, nil
}

// --- UserRepo ---

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.User) ([]*types.User, error) {
	r.s.users = append(r.s.users, rows...)
	return rows, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.User, error) {
	var out []*types.User
	for _, u := range r.s.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.User, error) {
	var out []*types.User
	for _, u := range r.s.users {
		for _, e := range emails {
			if u.Email == e {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// --- UserMessageLogRepo / AICallLogRepo ---

type fakeUserMessageLogRepo struct{ s *memStore }

func (r *fakeUserMessageLogRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.UserMessageLog) ([]*types.UserMessageLog, error) {
	r.s.audit = append(r.s.audit, rows...)
	return rows, nil
}

type fakeAICallLogRepo struct{ s *memStore }

func (r *fakeAICallLogRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.AICallLog) ([]*types.AICallLog, error) {
	r.s.aiCalls = append(r.s.aiCalls, rows...)
	return rows, nil
}

// --- AIClient ---

type aiReply struct {
	text string
	err  error
}

// fakeAI hands out queued replies in call order (Sarah first, zombie second)
// and records the prompts it saw.
type fakeAI struct {
	replies []aiReply
	systems []string
	prompts []string
}

func (f *fakeAI) GenerateReply(ctx context.Context, system, userPrompt string) (string, error) {
	f.systems = append(f.systems, system)
	f.prompts = append(f.prompts, userPrompt)
	if len(f.replies) == 0 {
		return "ok", nil
	}
	next := f.replies[0]
	f.replies = f.replies[1:]
	return next.text, next.err
}

func (f *fakeAI) Model() string { return "fake-model" }

// --- DelayCalculator ---

type fixedDelay struct {
	sarah  time.Duration
	zombie time.Duration
}

func (d fixedDelay) SarahDelay() time.Duration  { return d.sarah }
func (d fixedDelay) ZombieDelay() time.Duration { return d.zombie }

// --- wiring helper ---

type podFixture struct {
	store *memStore
	ai    *fakeAI
	svc   PodService
	msgs  MessageService
}

func newPodFixture(t testingT) *podFixture {
	store := newMemStore()
	ai := &fakeAI{}
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	msgRepo := &fakePodMessageRepo{s: store}
	msgSvc := NewMessageService(nil, log, msgRepo)
	svc := NewPodService(
		nil,
		log,
		&fakePodRepo{s: store},
		msgRepo,
		&fakeDayProgressRepo{s: store},
		&fakeDayTemplateRepo{s: store},
		&fakeUserTagRepo{s: store},
		&fakeUserRepo{s: store},
		&fakeUserMessageLogRepo{s: store},
		&fakeAICallLogRepo{s: store},
		msgSvc,
		ai,
		fixedDelay{sarah: 30 * time.Minute, zombie: 2 * time.Hour},
	)
	return &podFixture{store: store, ai: ai, svc: svc, msgs: msgSvc}
}

type testingT interface {
	Fatalf(format string, args ...any)
}
