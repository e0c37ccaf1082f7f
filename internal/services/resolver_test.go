package services

import (
	"testing"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	known map[uuid.UUID]bool
}

func (repo *fakeUserRepo) ExistsByID(userID uuid.UUID) (bool, error) {
	return repo.known[userID], nil
}

type fakeOverrideRepo struct {
	overrides []models.DayOverride
}

func (repo *fakeOverrideRepo) FindByUserAndDate(userID uuid.UUID, date time.Time) (models.DayOverride, bool, error) {
	for _, override := range repo.overrides {
		if override.UserID == userID && override.Date.Equal(date) {
			return override, true, nil
		}
	}
	return models.DayOverride{}, false, nil
}

type fakeTemplateRepo struct {
	templates []models.WeeklyTemplate
}

func (repo *fakeTemplateRepo) ListByUserWeekday(userID uuid.UUID, weekday int) ([]models.WeeklyTemplate, error) {
	matched := make([]models.WeeklyTemplate, 0)
	for _, tmpl := range repo.templates {
		if tmpl.UserID == userID && tmpl.Weekday == weekday {
			matched = append(matched, tmpl)
		}
	}
	return matched, nil
}

type fakeSlotRepo struct {
	slots []models.Availability
}

func (repo *fakeSlotRepo) ListByUserWindow(userID uuid.UUID, windowStart time.Time, windowEnd time.Time) ([]models.Availability, error) {
	matched := make([]models.Availability, 0)
	for _, slot := range repo.slots {
		if slot.UserID != userID {
			continue
		}
		if slot.StartTimeUTC.Before(windowStart) || !slot.StartTimeUTC.Before(windowEnd) {
			continue
		}
		matched = append(matched, slot)
	}
	return matched, nil
}

type resolverFixture struct {
	resolver  *Resolver
	userID    uuid.UUID
	users     *fakeUserRepo
	overrides *fakeOverrideRepo
	templates *fakeTemplateRepo
	slots     *fakeSlotRepo
}

func newResolverFixture() *resolverFixture {
	userID := uuid.New()
	users := &fakeUserRepo{known: map[uuid.UUID]bool{userID: true}}
	overrides := &fakeOverrideRepo{}
	templates := &fakeTemplateRepo{}
	slots := &fakeSlotRepo{}

	return &resolverFixture{
		resolver:  NewResolver(users, overrides, templates, slots, nil),
		userID:    userID,
		users:     users,
		overrides: overrides,
		templates: templates,
		slots:     slots,
	}
}

func (fixture *resolverFixture) addMondayMorningTemplate() uuid.UUID {
	templateID := uuid.New()
	fixture.templates.templates = append(fixture.templates.templates, models.WeeklyTemplate{
		ID:           templateID,
		UserID:       fixture.userID,
		Weekday:      1,
		StartMinute:  9 * 60,
		EndMinute:    10 * 60,
		Timezone:     "Europe/Madrid",
		PlanText:     "morning run",
		LanguageCode: "es",
	})
	return templateID
}

func TestResolveTemplateDefault(t *testing.T) {
	fixture := newResolverFixture()
	templateID := fixture.addMondayMorningTemplate()

	// 2025-06-02 is a Monday with no override and no explicit slots.
	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	require.Len(t, intervals, 1)

	interval := intervals[0]
	assert.Equal(t, IntervalSourceTemplate, interval.Source)
	assert.Equal(t, time.Date(2025, time.June, 2, 7, 0, 0, 0, time.UTC), interval.Start)
	assert.Equal(t, time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC), interval.End)
	assert.Equal(t, "morning run", interval.PlanText)
	require.NotNil(t, interval.TemplateID)
	assert.Equal(t, templateID, *interval.TemplateID)
}

func TestResolveClearOverrideIsTerminal(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	fixture.overrides.overrides = append(fixture.overrides.overrides, models.DayOverride{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		Date:         UTCDate(2025, time.June, 9), // also a Monday
		Timezone:     "Europe/Madrid",
		OverrideType: models.OverrideClear,
	})

	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 9))
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

func TestResolveReplaceOverrideIgnoresTemplates(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	fixture.overrides.overrides = append(fixture.overrides.overrides, models.DayOverride{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		Date:         UTCDate(2025, time.June, 16), // also a Monday
		Timezone:     "Europe/Madrid",
		OverrideType: models.OverrideReplace,
	})

	slotID := uuid.New()
	fixture.slots.slots = append(fixture.slots.slots, models.Availability{
		ID:     slotID,
		UserID: fixture.userID,
		// 14:00-15:00 Madrid local on June 16th.
		StartTimeUTC: time.Date(2025, time.June, 16, 12, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 16, 13, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		PlanText:     "coffee with Ana",
		Source:       models.SourcePunctual,
	})

	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 16))
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, IntervalSourceExplicit, intervals[0].Source)
	assert.Equal(t, "coffee with Ana", intervals[0].PlanText)
	require.NotNil(t, intervals[0].SlotID)
	assert.Equal(t, slotID, *intervals[0].SlotID)
}

func TestResolveMergesTemplatesAndExplicitSlots(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	fixture.slots.slots = append(fixture.slots.slots, models.Availability{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		StartTimeUTC: time.Date(2025, time.June, 2, 16, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		Source:       models.SourcePunctual,
	})

	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	require.Len(t, intervals, 2)

	// Sorted by start: template interval first.
	assert.Equal(t, IntervalSourceTemplate, intervals[0].Source)
	assert.Equal(t, IntervalSourceExplicit, intervals[1].Source)
	assert.True(t, intervals[0].Start.Before(intervals[1].Start))
}

func TestResolveOverlapsAreNotMerged(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	// Overlaps the 07:00-08:00 UTC template interval but is not identical.
	fixture.slots.slots = append(fixture.slots.slots, models.Availability{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		StartTimeUTC: time.Date(2025, time.June, 2, 7, 30, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		Source:       models.SourcePunctual,
	})

	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	assert.Len(t, intervals, 2)
}

func TestResolveExactDuplicatePrefersExplicitSlot(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	fixture.slots.slots = append(fixture.slots.slots, models.Availability{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		StartTimeUTC: time.Date(2025, time.June, 2, 7, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		PlanText:     "run, then breakfast",
		Source:       models.SourceHabitual,
	})

	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, IntervalSourceExplicit, intervals[0].Source)
	assert.Equal(t, "run, then breakfast", intervals[0].PlanText)
}

func TestResolveSkipsMalformedRows(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	fixture.templates.templates = append(fixture.templates.templates, models.WeeklyTemplate{
		ID:          uuid.New(),
		UserID:      fixture.userID,
		Weekday:     1,
		StartMinute: 600,
		EndMinute:   540, // inverted, should never pass write validation
		Timezone:    "Europe/Madrid",
	})
	fixture.slots.slots = append(fixture.slots.slots, models.Availability{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		StartTimeUTC: time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 2, 13, 0, 0, 0, time.UTC),
		Timezone:     "Mars/Olympus",
		Source:       models.SourcePunctual,
	})

	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, IntervalSourceTemplate, intervals[0].Source)
}

func TestResolveFiltersSlotsByLocalDate(t *testing.T) {
	fixture := newResolverFixture()
	// Starts at 22:30 UTC on June 1st, which is already June 2nd in Madrid.
	fixture.slots.slots = append(fixture.slots.slots, models.Availability{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		StartTimeUTC: time.Date(2025, time.June, 1, 22, 30, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		Source:       models.SourcePunctual,
	})

	intervals, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	require.Len(t, intervals, 1)

	intervals, err = fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 1))
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

func TestResolveUnknownUser(t *testing.T) {
	fixture := newResolverFixture()

	_, err := fixture.resolver.Resolve(uuid.New(), UTCDate(2025, time.June, 2))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResolveIsIdempotent(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	fixture.slots.slots = append(fixture.slots.slots, models.Availability{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		StartTimeUTC: time.Date(2025, time.June, 2, 16, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		Source:       models.SourcePunctual,
	})

	first, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	second, err := fixture.resolver.Resolve(fixture.userID, UTCDate(2025, time.June, 2))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveRange(t *testing.T) {
	fixture := newResolverFixture()
	fixture.addMondayMorningTemplate()
	fixture.overrides.overrides = append(fixture.overrides.overrides, models.DayOverride{
		ID:           uuid.New(),
		UserID:       fixture.userID,
		Date:         UTCDate(2025, time.June, 9),
		Timezone:     "Europe/Madrid",
		OverrideType: models.OverrideClear,
	})

	schedule, err := fixture.resolver.ResolveRange(fixture.userID, UTCDate(2025, time.June, 2), UTCDate(2025, time.June, 9))
	require.NoError(t, err)
	require.Len(t, schedule, 8)

	assert.Equal(t, "2025-06-02", schedule[0].Date)
	assert.Len(t, schedule[0].Intervals, 1)

	// Tuesday through Sunday have no templates.
	for _, day := range schedule[1:7] {
		assert.Empty(t, day.Intervals)
	}

	// The cleared Monday stays empty even though a template matches.
	assert.Equal(t, "2025-06-09", schedule[7].Date)
	assert.Empty(t, schedule[7].Intervals)
}
