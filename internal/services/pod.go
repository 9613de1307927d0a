package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/personas"
	"github.com/wellforge/masterclass-backend/internal/repos"
	"github.com/wellforge/masterclass-backend/internal/types"
)

var (
	ErrPodNotFound  = errors.New("pod not found")
	ErrEmptyContent = errors.New("message content is required")
)

// sarahFallbackText replaces the coach reply when the model call fails. The
// student still gets a scheduled answer; nobody sees an error.
const sarahFallbackText = "Love that you shared this — give me a little bit to give you a proper answer, I'm in between client calls right now 💛"

// PodOverviewPod is the pod block of the GET payload.
type PodOverviewPod struct {
	ID                   uuid.UUID  `json:"id"`
	Status               string     `json:"status"`
	CurrentDay           int        `json:"currentDay"`
	StartedAt            time.Time  `json:"startedAt"`
	ExamPassed           bool       `json:"examPassed"`
	DeadlineAt           *time.Time `json:"deadlineAt,omitempty"`
	ScholarshipStatus    string     `json:"scholarshipStatus,omitempty"`
	ScholarshipExpiresAt *time.Time `json:"scholarshipExpiresAt,omitempty"`
}

type PodZombie struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type PodProgress struct {
	UserLessons   int `json:"userLessons"`
	ZombieLessons int `json:"zombieLessons"`
	TotalLessons  int `json:"totalLessons"`
}

type PodOverview struct {
	HasPod          bool                `json:"hasPod"`
	SettingUp       bool                `json:"settingUp,omitempty"`
	Phase           string              `json:"phase,omitempty"`
	Pod             *PodOverviewPod     `json:"pod,omitempty"`
	Zombie          *PodZombie          `json:"zombie,omitempty"`
	Messages        []*types.PodMessage `json:"messages"`
	HasMore         bool                `json:"hasMore"`
	OldestMessageID *uuid.UUID          `json:"oldestMessageId,omitempty"`
	Progress        *PodProgress        `json:"progress,omitempty"`
	TodayLesson     *types.DayTemplate  `json:"todayLesson,omitempty"`
}

type PodService interface {
	GetOrCreatePod(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Pod, error)
	// Overview assembles the whole GET payload. A pod creation failure
	// degrades to a "still setting up" placeholder instead of an error.
	Overview(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID, limit int) (*PodOverview, error)
	// PostMessage runs the send pipeline: persist the user message, then
	// best-effort progress/audit writes and two scheduled AI replies.
	PostMessage(ctx context.Context, userID uuid.UUID, content string) (*types.PodMessage, error)
}

type podService struct {
	db           *gorm.DB
	log          *logger.Logger
	pods         repos.PodRepo
	messages     repos.PodMessageRepo
	dayProgress  repos.DayProgressRepo
	dayTemplates repos.DayTemplateRepo
	userTags     repos.UserTagRepo
	users        repos.UserRepo
	auditLog     repos.UserMessageLogRepo
	aiCallLog    repos.AICallLogRepo
	messageSvc   MessageService
	ai           AIClient
	delays       DelayCalculator
}

func NewPodService(
	db *gorm.DB,
	baseLog *logger.Logger,
	podRepo repos.PodRepo,
	messageRepo repos.PodMessageRepo,
	dayProgressRepo repos.DayProgressRepo,
	dayTemplateRepo repos.DayTemplateRepo,
	userTagRepo repos.UserTagRepo,
	userRepo repos.UserRepo,
	auditLogRepo repos.UserMessageLogRepo,
	aiCallLogRepo repos.AICallLogRepo,
	messageSvc MessageService,
	ai AIClient,
	delays DelayCalculator,
) PodService {
	return &podService{
		db:           db,
		log:          baseLog.With("service", "PodService"),
		pods:         podRepo,
		messages:     messageRepo,
		dayProgress:  dayProgressRepo,
		dayTemplates: dayTemplateRepo,
		userTags:     userTagRepo,
		users:        userRepo,
		auditLog:     auditLogRepo,
		aiCallLog:    aiCallLogRepo,
		messageSvc:   messageSvc,
		ai:           ai,
		delays:       delays,
	}
}

func (s *podService) GetOrCreatePod(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Pod, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required")
	}
	pod, err := s.pods.GetByUserID(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch pod: %w", err)
	}
	if pod != nil {
		return pod, nil
	}

	niche := personas.NicheGeneral
	tag, err := s.userTags.GetLatestByUserID(ctx, tx, userID)
	if err != nil {
		s.log.Warn("Failed to look up user tag, defaulting niche", "user_id", userID, "error", err)
	} else if tag != nil {
		niche = personas.NicheFromTag(tag.Tag)
	}

	zombie := pickZombie(userID, niche)
	pod = &types.Pod{
		ID:             uuid.New(),
		UserID:         userID,
		NicheCategory:  niche,
		ZombieKey:      zombie.Key,
		MasterclassDay: 0,
		Status:         types.PodStatusActive,
		StartedAt:      time.Now().UTC(),
	}
	if _, err := s.pods.Create(ctx, tx, pod); err != nil {
		// A concurrent first GET may have won the unique user_id race.
		existing, getErr := s.pods.GetByUserID(ctx, tx, userID)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("create pod: %w", err)
	}
	s.log.Info("Created pod", "user_id", userID, "niche", niche, "zombie", zombie.Key)
	return pod, nil
}

// pickZombie pins a persona from the niche roster, stable per user.
func pickZombie(userID uuid.UUID, niche string) personas.ZombiePersona {
	roster := personas.ZombiesFor(niche)
	h := fnv.New32a()
	h.Write(userID[:])
	return roster[int(h.Sum32())%len(roster)]
}

func (s *podService) Overview(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID, limit int) (*PodOverview, error) {
	pod, err := s.GetOrCreatePod(ctx, nil, userID)
	if err != nil {
		// Soft failure: the client shows "your pod is being set up" and
		// polls again instead of getting a 5xx.
		s.log.Error("Pod setup failed, returning placeholder", "user_id", userID, "error", err)
		return &PodOverview{HasPod: false, SettingUp: true, Messages: []*types.PodMessage{}}, nil
	}

	now := time.Now().UTC()
	overview := &PodOverview{
		HasPod:   true,
		Phase:    pod.Phase(),
		Messages: []*types.PodMessage{},
	}

	podBlock := &PodOverviewPod{
		ID:                   pod.ID,
		Status:               pod.Status,
		CurrentDay:           pod.MasterclassDay,
		StartedAt:            pod.StartedAt,
		ExamPassed:           pod.ExamPassed(),
		ScholarshipStatus:    pod.ScholarshipState(now),
		ScholarshipExpiresAt: pod.ScholarshipExpiresAt,
	}
	if pod.Phase() == types.PodPhasePre {
		deadline := pod.DeadlineAt()
		podBlock.DeadlineAt = &deadline
	}
	overview.Pod = podBlock

	if zombie, ok := personas.ZombieByKey(pod.ZombieKey); ok {
		overview.Zombie = &PodZombie{Key: zombie.Key, Name: zombie.Name, Avatar: zombie.Avatar}
	}

	list, err := s.messageSvc.ListMessages(ctx, nil, pod.ID, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	overview.Messages = list.Messages
	overview.HasMore = list.HasMore
	overview.OldestMessageID = list.OldestMessageID

	overview.Progress = s.buildProgress(ctx, pod)

	lesson, err := s.dayTemplates.GetByNicheAndDay(ctx, nil, pod.NicheCategory, pod.MasterclassDay)
	if err != nil {
		s.log.Warn("Failed to load today's lesson", "pod_id", pod.ID, "error", err)
	} else {
		overview.TodayLesson = lesson
	}

	return overview, nil
}

func (s *podService) buildProgress(ctx context.Context, pod *types.Pod) *PodProgress {
	total := personas.TotalLessons(pod.NicheCategory)
	if count, err := s.dayTemplates.CountByNiche(ctx, nil, pod.NicheCategory); err == nil && count > 0 {
		total = int(count)
	}

	userLessons := 0
	if replied, err := s.dayProgress.CountReplied(ctx, nil, pod.ID); err != nil {
		s.log.Warn("Failed to count replied days", "pod_id", pod.ID, "error", err)
	} else {
		userLessons = int(replied)
	}

	// The peer always runs two lessons ahead of the student.
	zombieLessons := pod.MasterclassDay + 2
	if zombieLessons > total {
		zombieLessons = total
	}

	return &PodProgress{
		UserLessons:   userLessons,
		ZombieLessons: zombieLessons,
		TotalLessons:  total,
	}
}

func (s *podService) PostMessage(ctx context.Context, userID uuid.UUID, content string) (*types.PodMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	pod, err := s.pods.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch pod: %w", err)
	}
	if pod == nil {
		return nil, ErrPodNotFound
	}

	senderName := "You"
	firstName := ""
	if users, err := s.users.GetByIDs(ctx, nil, []uuid.UUID{userID}); err != nil {
		s.log.Warn("Failed to load user for message", "user_id", userID, "error", err)
	} else if len(users) > 0 {
		firstName = users[0].FirstName
		senderName = users[0].FirstName
	}

	now := time.Now().UTC()
	userMessage := &types.PodMessage{
		ID:         uuid.New(),
		PodID:      pod.ID,
		DayNumber:  pod.MasterclassDay,
		SenderType: types.SenderUser,
		SenderName: senderName,
		Content:    content,
		SentAt:     &now,
		CreatedAt:  now,
	}
	if _, err := s.messages.Create(ctx, nil, []*types.PodMessage{userMessage}); err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}

	// Everything past this point is best-effort: each step commits on its
	// own and a failure is logged, never surfaced. The user's message is
	// already safe.
	if err := s.dayProgress.Upsert(ctx, nil, &types.DayProgress{
		ID:          uuid.New(),
		PodID:       pod.ID,
		DayNumber:   pod.MasterclassDay,
		UserReplied: true,
	}); err != nil {
		s.log.Warn("Failed to upsert day progress", "pod_id", pod.ID, "error", err)
	}

	if _, err := s.auditLog.Create(ctx, nil, []*types.UserMessageLog{{
		ID:        uuid.New(),
		PodID:     pod.ID,
		UserID:    userID,
		DayNumber: pod.MasterclassDay,
		Content:   content,
	}}); err != nil {
		s.log.Warn("Failed to write user message audit log", "pod_id", pod.ID, "error", err)
	}

	s.scheduleReplies(ctx, pod, firstName, content, now)

	return userMessage, nil
}

// scheduleReplies generates the coach and peer responses and writes them as
// scheduled, undelivered messages. The delivery worker flips sent_at later.
func (s *podService) scheduleReplies(ctx context.Context, pod *types.Pod, firstName, content string, now time.Time) {
	history, err := s.messages.ListLastSent(ctx, nil, pod.ID, now, historyWindow)
	if err != nil {
		s.log.Warn("Failed to load prompt history", "pod_id", pod.ID, "error", err)
		history = nil
	}

	pc := PromptContext{
		UserFirstName: firstName,
		Niche:         pod.NicheCategory,
		DayNumber:     pod.MasterclassDay,
		History:       history,
		UserMessage:   content,
	}
	var lessonHasOffer bool
	if lesson, err := s.dayTemplates.GetByNicheAndDay(ctx, nil, pod.NicheCategory, pod.MasterclassDay); err == nil && lesson != nil {
		pc.LessonTitle = lesson.LessonTitle
		pc.GapTopic = lesson.GapTopic
		pc.HasOffer = lesson.HasOffer
		lessonHasOffer = lesson.HasOffer
	}

	zombie, ok := personas.ZombieByKey(pod.ZombieKey)
	if !ok {
		zombie = pickZombie(pod.UserID, pod.NicheCategory)
	}
	pc.Zombie = zombie

	// Coach reply. A model failure degrades to the canned fallback so the
	// student always hears back.
	sarahText, err := s.generateLogged(ctx, pod.ID, types.SenderSarah, BuildSarahPrompt(pc), content)
	if err != nil {
		s.log.Warn("Sarah generation failed, using fallback", "pod_id", pod.ID, "error", err)
		sarahText = sarahFallbackText
	}
	sarahAt := now.Add(s.delays.SarahDelay())
	if _, err := s.messages.Create(ctx, nil, []*types.PodMessage{{
		ID:           uuid.New(),
		PodID:        pod.ID,
		DayNumber:    pod.MasterclassDay,
		SenderType:   types.SenderSarah,
		SenderName:   personas.Sarah.Name,
		SenderAvatar: personas.Sarah.Avatar,
		Content:      sarahText,
		ScheduledFor: &sarahAt,
		OfferMention: lessonHasOffer,
	}}); err != nil {
		s.log.Error("Failed to schedule Sarah reply", "pod_id", pod.ID, "error", err)
	}

	// Peer reply. Failures and the skip sentinel both mean the peer stays
	// quiet this turn, which reads as normal chat behavior.
	pc.SarahReply = sarahText
	zombieText, err := s.generateLogged(ctx, pod.ID, types.SenderZombie, BuildZombiePrompt(pc), content)
	if err != nil {
		s.log.Warn("Zombie generation failed, staying quiet", "pod_id", pod.ID, "error", err)
		return
	}
	if strings.Contains(zombieText, SkipSentinel) {
		s.log.Debug("Zombie chose to skip this turn", "pod_id", pod.ID)
		return
	}
	zombieAt := now.Add(s.delays.ZombieDelay())
	if _, err := s.messages.Create(ctx, nil, []*types.PodMessage{{
		ID:           uuid.New(),
		PodID:        pod.ID,
		DayNumber:    pod.MasterclassDay,
		SenderType:   types.SenderZombie,
		SenderName:   zombie.Name,
		SenderAvatar: zombie.Avatar,
		Content:      strings.TrimSpace(zombieText),
		ScheduledFor: &zombieAt,
	}}); err != nil {
		s.log.Error("Failed to schedule zombie reply", "pod_id", pod.ID, "error", err)
	}
}

// generateLogged wraps one model call with a best-effort ai_call_log row.
func (s *podService) generateLogged(ctx context.Context, podID uuid.UUID, senderType, system, userPrompt string) (string, error) {
	start := time.Now()
	text, err := s.ai.GenerateReply(ctx, system, userPrompt)

	logRow := &types.AICallLog{
		ID:         uuid.New(),
		PodID:      podID,
		SenderType: senderType,
		Model:      s.ai.Model(),
		LatencyMS:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		logRow.ErrorText = err.Error()
	}
	if _, logErr := s.aiCallLog.Create(ctx, nil, []*types.AICallLog{logRow}); logErr != nil {
		s.log.Warn("Failed to write ai call log", "pod_id", podID, "error", logErr)
	}

	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
