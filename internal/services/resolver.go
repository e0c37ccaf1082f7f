package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

const (
	IntervalSourceTemplate = "template"
	IntervalSourceExplicit = "explicit"
)

// ResolvedInterval is one effective availability window for a resolved date.
// Overlapping intervals from different sources are all returned; collapsing
// them is the plan-matching caller's concern.
type ResolvedInterval struct {
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	Source       string     `json:"source"`
	PlanText     string     `json:"plan_text,omitempty"`
	LanguageCode string     `json:"language_code,omitempty"`
	CategoryID   *uint      `json:"category_id,omitempty"`
	IsFlexible   bool       `json:"is_flexible,omitempty"`
	SlotID       *uuid.UUID `json:"slot_id,omitempty"`
	TemplateID   *uuid.UUID `json:"template_id,omitempty"`
}

// DaySchedule groups the resolved intervals of one civil date.
type DaySchedule struct {
	Date      string             `json:"date"`
	Intervals []ResolvedInterval `json:"intervals"`
}

// dayPolicy enumerates the three resolution branches. Exactly one applies per
// user and date: clear > replace > template default.
type dayPolicy int

const (
	policyTemplateDefault dayPolicy = iota
	policyClear
	policyReplace
)

type ResolverUserRepository interface {
	ExistsByID(userID uuid.UUID) (bool, error)
}

type ResolverOverrideRepository interface {
	FindByUserAndDate(userID uuid.UUID, date time.Time) (models.DayOverride, bool, error)
}

type ResolverTemplateRepository interface {
	ListByUserWeekday(userID uuid.UUID, weekday int) ([]models.WeeklyTemplate, error)
}

type ResolverSlotRepository interface {
	ListByUserWindow(userID uuid.UUID, windowStart time.Time, windowEnd time.Time) ([]models.Availability, error)
}

type Resolver struct {
	users     ResolverUserRepository
	overrides ResolverOverrideRepository
	templates ResolverTemplateRepository
	slots     ResolverSlotRepository
	log       *zap.Logger
}

func NewResolver(
	users ResolverUserRepository,
	overrides ResolverOverrideRepository,
	templates ResolverTemplateRepository,
	slots ResolverSlotRepository,
	log *zap.Logger,
) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		users:     users,
		overrides: overrides,
		templates: templates,
		slots:     slots,
		log:       log,
	}
}

// Resolve computes the effective availability of userID on the civil date.
// The returned intervals are ordered by start instant. Stored rows that
// violate invariants the write path should have rejected are skipped with a
// warning rather than failing the whole resolution.
func (resolver *Resolver) Resolve(userID uuid.UUID, date time.Time) ([]ResolvedInterval, error) {
	exists, err := resolver.users.ExistsByID(userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	date = DateOnly(date)

	policy, err := resolver.policyFor(userID, date)
	if err != nil {
		return nil, err
	}

	switch policy {
	case policyClear:
		return []ResolvedInterval{}, nil
	case policyReplace:
		explicit, err := resolver.explicitForDate(userID, date)
		if err != nil {
			return nil, err
		}
		sortIntervals(explicit)
		return explicit, nil
	case policyTemplateDefault:
		explicit, err := resolver.explicitForDate(userID, date)
		if err != nil {
			return nil, err
		}
		materialized, err := resolver.templatesForDate(userID, date)
		if err != nil {
			return nil, err
		}
		merged := mergeIntervals(explicit, materialized)
		sortIntervals(merged)
		return merged, nil
	default:
		return nil, fmt.Errorf("unhandled day policy %d", policy)
	}
}

// ResolveRange resolves each date in [from, to] inclusive, for month views.
func (resolver *Resolver) ResolveRange(userID uuid.UUID, from time.Time, to time.Time) ([]DaySchedule, error) {
	from = DateOnly(from)
	to = DateOnly(to)

	schedule := make([]DaySchedule, 0)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		intervals, err := resolver.Resolve(userID, day)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, DaySchedule{
			Date:      day.Format("2006-01-02"),
			Intervals: intervals,
		})
	}
	return schedule, nil
}

func (resolver *Resolver) policyFor(userID uuid.UUID, date time.Time) (dayPolicy, error) {
	override, found, err := resolver.overrides.FindByUserAndDate(userID, date)
	if err != nil {
		return policyTemplateDefault, fmt.Errorf("load day override: %w", err)
	}
	if !found {
		return policyTemplateDefault, nil
	}

	switch override.OverrideType {
	case models.OverrideClear:
		return policyClear, nil
	case models.OverrideReplace:
		return policyReplace, nil
	default:
		resolver.log.Warn("skipping override with unknown type",
			zap.String("override_id", override.ID.String()),
			zap.String("override_type", override.OverrideType),
		)
		return policyTemplateDefault, nil
	}
}

// explicitForDate fetches stored slots over a widened UTC window and keeps
// those whose start instant falls on date in the slot's own timezone.
func (resolver *Resolver) explicitForDate(userID uuid.UUID, date time.Time) ([]ResolvedInterval, error) {
	windowStart, windowEnd := SlotFetchWindow(date)
	slots, err := resolver.slots.ListByUserWindow(userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("load availability slots: %w", err)
	}

	intervals := make([]ResolvedInterval, 0, len(slots))
	for _, slot := range slots {
		if !slot.StartTimeUTC.Before(slot.EndTimeUTC) {
			resolver.log.Warn("skipping slot with invalid time range",
				zap.String("slot_id", slot.ID.String()),
				zap.Time("start", slot.StartTimeUTC),
				zap.Time("end", slot.EndTimeUTC),
			)
			continue
		}

		location, err := time.LoadLocation(slot.Timezone)
		if err != nil {
			resolver.log.Warn("skipping slot with unknown timezone",
				zap.String("slot_id", slot.ID.String()),
				zap.String("timezone", slot.Timezone),
			)
			continue
		}

		if !LocalDateOf(slot.StartTimeUTC, location).Equal(date) {
			continue
		}

		slotID := slot.ID
		intervals = append(intervals, ResolvedInterval{
			Start:        slot.StartTimeUTC.UTC(),
			End:          slot.EndTimeUTC.UTC(),
			Source:       IntervalSourceExplicit,
			PlanText:     slot.PlanText,
			LanguageCode: slot.LanguageCode,
			CategoryID:   slot.CategoryID,
			IsFlexible:   slot.IsFlexible,
			SlotID:       &slotID,
		})
	}
	return intervals, nil
}

func (resolver *Resolver) templatesForDate(userID uuid.UUID, date time.Time) ([]ResolvedInterval, error) {
	templates, err := resolver.templates.ListByUserWeekday(userID, ISOWeekday(date))
	if err != nil {
		return nil, fmt.Errorf("load weekly templates: %w", err)
	}

	intervals := make([]ResolvedInterval, 0, len(templates))
	for _, tmpl := range templates {
		interval, err := MaterializeTemplate(tmpl, date)
		if err != nil {
			resolver.log.Warn("skipping malformed weekly template",
				zap.String("template_id", tmpl.ID.String()),
				zap.Error(err),
			)
			continue
		}

		templateID := tmpl.ID
		intervals = append(intervals, ResolvedInterval{
			Start:        interval.Start,
			End:          interval.End,
			Source:       IntervalSourceTemplate,
			PlanText:     tmpl.PlanText,
			LanguageCode: tmpl.LanguageCode,
			CategoryID:   tmpl.CategoryID,
			TemplateID:   &templateID,
		})
	}
	return intervals, nil
}

// mergeIntervals unions explicit slots with materialized template intervals.
// Overlaps are preserved; only an exact UTC-range duplicate collapses, keeping
// the explicit slot because it may carry user-edited plan text.
func mergeIntervals(explicit []ResolvedInterval, materialized []ResolvedInterval) []ResolvedInterval {
	type rangeKey struct {
		start int64
		end   int64
	}

	explicitRanges := make(map[rangeKey]struct{}, len(explicit))
	for _, interval := range explicit {
		explicitRanges[rangeKey{interval.Start.Unix(), interval.End.Unix()}] = struct{}{}
	}

	merged := make([]ResolvedInterval, 0, len(explicit)+len(materialized))
	merged = append(merged, explicit...)
	for _, interval := range materialized {
		if _, duplicate := explicitRanges[rangeKey{interval.Start.Unix(), interval.End.Unix()}]; duplicate {
			continue
		}
		merged = append(merged, interval)
	}
	return merged
}

func sortIntervals(intervals []ResolvedInterval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		if !intervals[i].Start.Equal(intervals[j].Start) {
			return intervals[i].Start.Before(intervals[j].Start)
		}
		if !intervals[i].End.Equal(intervals[j].End) {
			return intervals[i].End.Before(intervals[j].End)
		}
		return intervals[i].Source == IntervalSourceExplicit && intervals[j].Source == IntervalSourceTemplate
	})
}
