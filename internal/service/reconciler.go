package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

const tracerName = "github.com/GulfDevInnovations/royal-academy/internal/service"

// Reconciler merges weekly schedules with stored sessions into the month calendar.
type Reconciler struct {
	store *repository.Store
}

func NewReconciler(store *repository.Store) *Reconciler {
	return &Reconciler{store: store}
}

// SessionsForMonth returns every bookable occurrence of a zero-indexed month (0 = January),
// sorted by date then start time. Store failures fail the whole month.
func (r *Reconciler) SessionsForMonth(ctx context.Context, year, month int) ([]calendar.Occurrence, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Reconciler.SessionsForMonth")
	defer span.End()
	span.SetAttributes(attribute.Int("calendar.year", year), attribute.Int("calendar.month", month))

	m, err := calendar.NewMonth(year, month)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "reconcile", err)
	}

	out, err := r.reconcile(ctx, m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("calendar.occurrences", len(out)))
	return out, nil
}

// SessionsForDay returns one page of the occurrences on date (YYYY-MM-DD).
func (r *Reconciler) SessionsForDay(ctx context.Context, date string, page, pageSize int) (calendar.Page[calendar.Occurrence], error) {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return calendar.Page[calendar.Occurrence]{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "sessions for day", err)
	}

	all, err := r.SessionsForMonth(ctx, d.Year(), int(d.Month())-1)
	if err != nil {
		return calendar.Page[calendar.Occurrence]{}, err
	}

	key := calendar.FormatDate(d)
	day := make([]calendar.Occurrence, 0, 8)
	for _, occ := range all {
		if occ.SessionDate == key {
			day = append(day, occ)
		}
	}
	return calendar.Paginate(day, page, pageSize), nil
}

func (r *Reconciler) reconcile(ctx context.Context, m calendar.Month) ([]calendar.Occurrence, error) {
	var (
		sessions  []model.ClassSession
		schedules []model.ClassSchedule
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = r.store.Sessions.ListInRange(gctx, m.Start, m.End)
		return err
	})
	g.Go(func() error {
		var err error
		schedules, err = r.store.Schedules.ListActiveOverlapping(gctx, m.Start, m.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.StoreUnavailable("reconcile: load month", err)
	}

	live := make(map[string]*model.ClassSession, len(sessions))
	cancelled := make(map[string]struct{})
	ids := make([]uuid.UUID, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		key := calendar.SlotKey(s.ScheduleID, time.Time(s.SessionDate))
		if s.Status == model.SessionStatusCancelled {
			cancelled[key] = struct{}{}
			continue
		}
		live[key] = s
		ids = append(ids, s.ID)
	}

	taken, err := r.store.Bookings.CountActiveBySessions(ctx, ids)
	if err != nil {
		return nil, apperrors.StoreUnavailable("reconcile: count bookings", err)
	}

	sources := make([]occurrenceSource, 0, len(schedules)*5+len(live))
	emitted := make(map[uuid.UUID]struct{}, len(live))

	for i := range schedules {
		schedule := &schedules[i]
		wd, ok := schedule.DayOfWeek.Weekday()
		if !ok {
			log.Printf("[reconciler] schedule %s has unknown day_of_week %q, skipped", schedule.ID, schedule.DayOfWeek)
			continue
		}
		for _, day := range calendar.MatchingDays(m, wd, validity(schedule)) {
			key := calendar.SlotKey(schedule.ID, day)
			if s, ok := live[key]; ok {
				sources = append(sources, realSession{session: s, taken: taken[s.ID]})
				emitted[s.ID] = struct{}{}
				continue
			}
			if _, ok := cancelled[key]; ok {
				continue
			}
			sources = append(sources, virtualSlot{schedule: schedule, date: day})
		}
	}

	// one-off sessions: paused schedules, irregular dates
	for i := range sessions {
		s := &sessions[i]
		if s.Status == model.SessionStatusCancelled {
			continue
		}
		if _, ok := emitted[s.ID]; ok {
			continue
		}
		sources = append(sources, realSession{session: s, taken: taken[s.ID]})
		emitted[s.ID] = struct{}{}
	}

	out := make([]calendar.Occurrence, 0, len(sources))
	for _, src := range sources {
		out = append(out, src.toOccurrence())
	}
	sort.SliceStable(out, func(i, j int) bool { return calendar.Less(out[i], out[j]) })
	return out, nil
}
