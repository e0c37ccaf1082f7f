package db

import (
	"errors"
	"testing"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		FirstName:    "Ana",
		LastName:     "García",
		PasswordHash: "x",
		IsActive:     true,
		Language:     "es",
		Timezone:     "Europe/Madrid",
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	repos := NewRepositories(openTestDB(t))
	user := createTestUser(t, repos, "ana@example.com")

	found, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.Email != "ana@example.com" {
		t.Fatalf("email = %q", found.Email)
	}

	exists, err := repos.Users.ExistsByNormalizedEmail("ana@example.com")
	if err != nil || !exists {
		t.Fatalf("exists by email = %v, %v", exists, err)
	}

	exists, err = repos.Users.ExistsByID(uuid.New())
	if err != nil || exists {
		t.Fatalf("random id exists = %v, %v", exists, err)
	}

	if _, err := repos.Users.FindByNormalizedEmail("nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing email = %v, want record not found", err)
	}
}

func TestDeleteAccountRemovesOwnedRows(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	user := createTestUser(t, repos, "ana@example.com")

	if err := repos.Templates.Create(&models.WeeklyTemplate{
		UserID:      user.ID,
		Weekday:     1,
		StartMinute: 540,
		EndMinute:   600,
		Timezone:    "Europe/Madrid",
	}); err != nil {
		t.Fatalf("create template: %v", err)
	}
	if err := repos.Overrides.Create(&models.DayOverride{
		UserID:       user.ID,
		Date:         time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		OverrideType: models.OverrideClear,
	}); err != nil {
		t.Fatalf("create override: %v", err)
	}
	if err := repos.Slots.Create(&models.Availability{
		UserID:       user.ID,
		StartTimeUTC: time.Date(2025, time.June, 2, 7, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		Source:       models.SourcePunctual,
	}); err != nil {
		t.Fatalf("create slot: %v", err)
	}

	if err := repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	for _, count := range []struct {
		table string
		model interface{}
	}{
		{"users", &models.User{}},
		{"availability_weekly_templates", &models.WeeklyTemplate{}},
		{"availability_day_overrides", &models.DayOverride{}},
		{"availabilities", &models.Availability{}},
	} {
		var rows int64
		if err := database.Model(count.model).Count(&rows).Error; err != nil {
			t.Fatalf("count %s: %v", count.table, err)
		}
		if rows != 0 {
			t.Fatalf("%s has %d rows after account deletion", count.table, rows)
		}
	}
}

func TestWeeklyTemplateRepositoryOrdering(t *testing.T) {
	repos := NewRepositories(openTestDB(t))
	user := createTestUser(t, repos, "ana@example.com")

	for _, startMinute := range []int{18 * 60, 9 * 60} {
		if err := repos.Templates.Create(&models.WeeklyTemplate{
			UserID:      user.ID,
			Weekday:     1,
			StartMinute: startMinute,
			EndMinute:   startMinute + 60,
			Timezone:    "Europe/Madrid",
		}); err != nil {
			t.Fatalf("create template: %v", err)
		}
	}
	if err := repos.Templates.Create(&models.WeeklyTemplate{
		UserID:      user.ID,
		Weekday:     3,
		StartMinute: 540,
		EndMinute:   600,
		Timezone:    "Europe/Madrid",
	}); err != nil {
		t.Fatalf("create template: %v", err)
	}

	mondays, err := repos.Templates.ListByUserWeekday(user.ID, 1)
	if err != nil {
		t.Fatalf("list by weekday: %v", err)
	}
	if len(mondays) != 2 {
		t.Fatalf("monday templates = %d, want 2", len(mondays))
	}
	if mondays[0].StartMinute != 9*60 || mondays[1].StartMinute != 18*60 {
		t.Fatalf("templates not ordered by start minute: %d, %d", mondays[0].StartMinute, mondays[1].StartMinute)
	}

	all, err := repos.Templates.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("templates = %d, want 3", len(all))
	}
}

func TestDayOverrideRepositoryFindByDate(t *testing.T) {
	repos := NewRepositories(openTestDB(t))
	user := createTestUser(t, repos, "ana@example.com")
	date := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

	if err := repos.Overrides.Create(&models.DayOverride{
		UserID:       user.ID,
		Date:         date,
		Timezone:     "Europe/Madrid",
		OverrideType: models.OverrideClear,
	}); err != nil {
		t.Fatalf("create override: %v", err)
	}

	override, found, err := repos.Overrides.FindByUserAndDate(user.ID, date)
	if err != nil || !found {
		t.Fatalf("find override = %v, %v", found, err)
	}
	if override.OverrideType != models.OverrideClear {
		t.Fatalf("override type = %q", override.OverrideType)
	}

	_, found, err = repos.Overrides.FindByUserAndDate(user.ID, date.AddDate(0, 0, 1))
	if err != nil || found {
		t.Fatalf("override found on wrong date = %v, %v", found, err)
	}

	if err := repos.Overrides.DeleteByUserAndDate(user.ID, date); err != nil {
		t.Fatalf("delete override: %v", err)
	}
	_, found, err = repos.Overrides.FindByUserAndDate(user.ID, date)
	if err != nil || found {
		t.Fatalf("override survived delete = %v, %v", found, err)
	}
}

func TestAvailabilityRepositoryWindow(t *testing.T) {
	repos := NewRepositories(openTestDB(t))
	user := createTestUser(t, repos, "ana@example.com")

	inside := models.Availability{
		UserID:       user.ID,
		StartTimeUTC: time.Date(2025, time.June, 2, 7, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		Source:       models.SourcePunctual,
	}
	outside := models.Availability{
		UserID:       user.ID,
		StartTimeUTC: time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC),
		EndTimeUTC:   time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Madrid",
		Source:       models.SourcePunctual,
	}
	if err := repos.Slots.Create(&inside); err != nil {
		t.Fatalf("create slot: %v", err)
	}
	if err := repos.Slots.Create(&outside); err != nil {
		t.Fatalf("create slot: %v", err)
	}

	windowStart := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC)
	slots, err := repos.Slots.ListByUserWindow(user.ID, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("list by window: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("slots in window = %d, want 1", len(slots))
	}
	if slots[0].ID != inside.ID {
		t.Fatalf("wrong slot returned: %s", slots[0].ID)
	}

	_, found, err := repos.Slots.FindByIDForUser(inside.ID, uuid.New())
	if err != nil || found {
		t.Fatalf("slot visible to another user = %v, %v", found, err)
	}
}

func TestPlanCategoryRepositorySeed(t *testing.T) {
	repos := NewRepositories(openTestDB(t))

	categories, err := repos.Categories.List()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 6 {
		t.Fatalf("categories = %d, want 6", len(categories))
	}

	exists, err := repos.Categories.ExistsByID(categories[0].ID)
	if err != nil || !exists {
		t.Fatalf("seeded category missing = %v, %v", exists, err)
	}
}
