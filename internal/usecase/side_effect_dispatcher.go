package usecase

import (
	"context"
	"time"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FunctionSendOrderPaidEmail = "send-order-paid-email"
	FunctionGenerateLyrics     = "generate-lyrics-for-approval"

	emailPendingFreshness = 10 * time.Second
	emailRecheckDelay     = 2 * time.Second
	defaultGuardTTL       = 5 * time.Minute
)

const (
	SkipEmailAlreadySent    = "email_already_sent"
	SkipEmailPendingStale   = "email_pending_stale"
	SkipEmailInvokeFailed   = "email_invoke_failed"
	SkipLyricsApprovalFound = "approval_exists"
	SkipLyricsNoQuiz        = "no_quiz"
	SkipLyricsJobFailed     = "job_unavailable"
	SkipLyricsInFlight      = "dispatch_in_flight"
	SkipLyricsLookupFailed  = "lookup_failed"
	SkipLyricsExhausted     = "retries_exhausted"
)

// jobIDNamespace derives one job id per order so concurrent creators collide
// on the primary key instead of inserting twice.
var jobIDNamespace = uuid.MustParse("6f1d7c5e-4b8a-4f1e-9a7d-2c3b5e8f0a41")

var gatedEmailStatuses = []entities.EmailStatus{
	entities.EmailStatusSent,
	entities.EmailStatusDelivered,
	entities.EmailStatusPending,
}

type DispatcherConfig struct {
	Retry    RetryPolicy
	GuardTTL time.Duration
}

// SideEffectDispatcher fires the paid-order notification email and lyrics
// generation. Both are best effort; the existence checks against email logs,
// approvals and jobs are the duplicate suppression boundary.
type SideEffectDispatcher struct {
	invoker   interfaces.IFunctionInvoker
	emailLogs interfaces.IEmailLogRepository
	approvals interfaces.ILyricsApprovalRepository
	jobs      interfaces.IJobRepository
	quizzes   interfaces.IQuizRepository
	guard     interfaces.IDispatchGuard
	metrics   interfaces.IWebhookMetrics
	cfg       DispatcherConfig
	sleep     Sleeper
	now       func() time.Time
	logger    *zap.Logger
}

// NewSideEffectDispatcher builds a dispatcher. guard and metrics may be nil.
func NewSideEffectDispatcher(
	invoker interfaces.IFunctionInvoker,
	emailLogs interfaces.IEmailLogRepository,
	approvals interfaces.ILyricsApprovalRepository,
	jobs interfaces.IJobRepository,
	quizzes interfaces.IQuizRepository,
	guard interfaces.IDispatchGuard,
	metrics interfaces.IWebhookMetrics,
	cfg DispatcherConfig,
	logger *zap.Logger,
) *SideEffectDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if cfg.GuardTTL <= 0 {
		cfg.GuardTTL = defaultGuardTTL
	}
	return &SideEffectDispatcher{
		invoker:   invoker,
		emailLogs: emailLogs,
		approvals: approvals,
		jobs:      jobs,
		quizzes:   quizzes,
		guard:     guard,
		metrics:   metrics,
		cfg:       cfg,
		sleep:     contextSleep,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger.Named("dispatcher"),
	}
}

func (d *SideEffectDispatcher) Dispatch(ctx context.Context, order entities.Order) entities.DispatchResult {
	var res entities.DispatchResult
	d.dispatchEmail(ctx, order, &res)
	d.dispatchLyrics(ctx, order, &res)
	return res
}

func (d *SideEffectDispatcher) dispatchEmail(ctx context.Context, order entities.Order, res *entities.DispatchResult) {
	log := d.logger.With(zap.String("order_id", order.ID), zap.String("effect", "email"))

	skip, reason := d.emailAlreadyHandled(ctx, order.ID, log)
	if skip {
		res.EmailSkipReason = reason
		d.metrics.IncSideEffect("email", "skipped")
		log.Info("email skipped", zap.String("reason", reason))
		return
	}

	body := map[string]string{"order_id": order.ID}
	callCtx, cancel := context.WithTimeout(ctx, d.cfg.Retry.withDefaults().CallTimeout)
	defer cancel()
	if _, err := d.invoker.Invoke(callCtx, FunctionSendOrderPaidEmail, body); err != nil {
		res.EmailSkipReason = SkipEmailInvokeFailed
		d.metrics.IncSideEffect("email", "failed")
		log.Error("email invoke failed", zap.Error(err))
		return
	}
	res.EmailTriggered = true
	d.metrics.IncSideEffect("email", "triggered")
	log.Info("email triggered")
}

// emailAlreadyHandled applies the order_paid email gate. A lookup failure
// does not block the email.
func (d *SideEffectDispatcher) emailAlreadyHandled(ctx context.Context, orderID string, log *zap.Logger) (bool, string) {
	existing, err := d.emailLogs.FindLatestByOrder(ctx, orderID, entities.EmailTypeOrderPaid, gatedEmailStatuses)
	if err != nil {
		log.Warn("email log lookup failed; sending anyway", zap.Error(err))
		return false, ""
	}
	if existing.ID == "" {
		return false, ""
	}
	if existing.Status.Terminal() {
		return true, SkipEmailAlreadySent
	}
	if d.now().Sub(existing.CreatedAt) > emailPendingFreshness {
		return true, SkipEmailPendingStale
	}

	log.Info("email pending and fresh; re-checking", zap.Duration("wait", emailRecheckDelay))
	if err := d.sleep(ctx, emailRecheckDelay); err != nil {
		return false, ""
	}
	again, err := d.emailLogs.FindLatestByOrder(ctx, orderID, entities.EmailTypeOrderPaid, gatedEmailStatuses)
	if err != nil {
		log.Warn("email log re-check failed; sending anyway", zap.Error(err))
		return false, ""
	}
	if again.ID != "" && again.Status.Terminal() {
		return true, SkipEmailAlreadySent
	}
	return false, ""
}

func (d *SideEffectDispatcher) dispatchLyrics(ctx context.Context, order entities.Order, res *entities.DispatchResult) {
	log := d.logger.With(zap.String("order_id", order.ID), zap.String("effect", "lyrics"))
	skip := func(reason string) {
		res.LyricsSkipReason = reason
		d.metrics.IncSideEffect("lyrics", "skipped")
		log.Info("lyrics skipped", zap.String("reason", reason))
	}

	exists, err := d.approvals.ExistsForOrder(ctx, order.ID)
	if err != nil {
		log.Error("approval lookup failed", zap.Error(err))
		skip(SkipLyricsLookupFailed)
		return
	}
	if exists {
		skip(SkipLyricsApprovalFound)
		return
	}

	quizID := d.resolveQuizID(ctx, order, log)
	if quizID == "" {
		skip(SkipLyricsNoQuiz)
		return
	}

	job, err := d.ensureJob(ctx, order.ID, quizID)
	if err != nil {
		log.Error("job ensure failed", zap.Error(err))
		skip(SkipLyricsJobFailed)
		return
	}
	res.JobID = job.ID

	if d.guard != nil {
		key := "lyrics-dispatch:" + order.ID
		acquired, err := d.guard.Acquire(ctx, key, d.cfg.GuardTTL)
		switch {
		case err != nil:
			log.Warn("dispatch guard unavailable; continuing", zap.Error(err))
		case !acquired:
			skip(SkipLyricsInFlight)
			return
		default:
			defer func() {
				if res.LyricsGenerated {
					return
				}
				if err := d.guard.Release(context.WithoutCancel(ctx), key); err != nil {
					log.Warn("dispatch guard release failed", zap.Error(err))
				}
			}()
		}
	}

	body := map[string]string{
		"order_id": order.ID,
		"quiz_id":  quizID,
		"job_id":   job.ID,
	}
	out := RetryInvoke(ctx, d.invoker, FunctionGenerateLyrics, body, d.cfg.Retry, log)
	res.LyricsAttempts = out.Attempts
	if !out.Succeeded {
		res.LyricsSkipReason = SkipLyricsExhausted
		d.metrics.IncSideEffect("lyrics", "failed")
		log.Error("lyrics generation not started",
			zap.Int("attempts", out.Attempts),
			zap.Error(out.LastErr),
		)
		return
	}
	res.LyricsGenerated = true
	d.metrics.IncSideEffect("lyrics", "generated")
	log.Info("lyrics generation started", zap.String("job_id", job.ID), zap.Int("attempts", out.Attempts))
}

func (d *SideEffectDispatcher) resolveQuizID(ctx context.Context, order entities.Order, log *zap.Logger) string {
	if order.QuizID != nil && *order.QuizID != "" {
		return *order.QuizID
	}
	email := normalizeEmail(order.CustomerEmail)
	if email == "" {
		return ""
	}
	quiz, err := d.quizzes.FindLatestByEmail(ctx, email)
	if err != nil {
		log.Warn("quiz lookup by email failed", zap.Error(err))
		return ""
	}
	if quiz.ID != "" {
		log.Info("quiz resolved by customer email", zap.String("quiz_id", quiz.ID))
	}
	return quiz.ID
}

// ensureJob returns the order's job, creating a pending one when absent.
func (d *SideEffectDispatcher) ensureJob(ctx context.Context, orderID, quizID string) (entities.Job, error) {
	job, err := d.jobs.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID != "" {
		return job, nil
	}

	now := d.now()
	created, err := d.jobs.Create(ctx, entities.Job{
		ID:        uuid.NewSHA1(jobIDNamespace, []byte(orderID)).String(),
		OrderID:   orderID,
		QuizID:    quizID,
		Status:    entities.JobStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Job{}, err
	}
	if created.ID != "" {
		return created, nil
	}
	return d.jobs.GetByOrderID(ctx, orderID)
}

type noopMetrics struct{}

func (noopMetrics) ObserveWebhook(string, string, time.Duration) {}
func (noopMetrics) IncMatchStrategy(string, string)              {}
func (noopMetrics) IncSideEffect(string, string)                 {}
