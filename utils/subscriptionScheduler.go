package utils

import (
	"time"

	"homecooked/database"
	"homecooked/logger"
	"homecooked/models"
	"homecooked/store"
	"homecooked/weeks"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeScheduler starts the weekly menu publisher and the box reminder jobs.
func InitializeScheduler() *cron.Cron {
	logger.Log.Info("[SCHEDULER] Initializing scheduler...")

	c := cron.New()

	// Daily at 06:00
	addJob(c, "0 6 * * *", "weekly menu publishing", func() {
		logger.Log.Info("[SCHEDULER] Running weekly menu publishing...")
		if _, err := PublishUpcomingWeeklyMenus(database.Database.Db, time.Now()); err != nil {
			logger.Log.Errorf("[SCHEDULER] Error publishing weekly menus: %v", err)
		}
	})

	// Fridays at 09:00
	addJob(c, "0 9 * * 5", "box reminders", func() {
		logger.Log.Info("[SCHEDULER] Running box reminders...")
		if _, err := RemindIncompleteBoxes(database.Database.Db, time.Now()); err != nil {
			logger.Log.Errorf("[SCHEDULER] Error sending box reminders: %v", err)
		}
	})

	c.Start()
	logger.Log.Info("[SCHEDULER] Scheduler started - menus daily at 06:00, reminders Fridays at 09:00")
	return c
}

// addJob registers run on c and reports whether the schedule was accepted.
func addJob(c *cron.Cron, spec, name string, run func()) bool {
	if _, err := c.AddFunc(spec, run); err != nil {
		logger.Log.Errorf("[SCHEDULER] Failed to schedule %s at %q: %v", name, spec, err)
		return false
	}
	return true
}

// PublishUpcomingWeeklyMenus publishes draft menus for weeks starting within
// the next seven days and returns how many were published.
func PublishUpcomingWeeklyMenus(db *gorm.DB, now time.Time) (int64, error) {
	from := weeks.Of(now)
	until := now.AddDate(0, 0, 7).Format(weeks.Layout)

	result := db.Model(&models.WeeklyMenu{}).
		Where("is_published = ? AND week_of >= ? AND week_of <= ?", false, from, until).
		Update("is_published", true)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		logger.Log.Infof("[SCHEDULER] Published %d weekly menus", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// RemindIncompleteBoxes emails active subscribers whose box for next week
// holds fewer distinct recipes than their plan. It returns the number of
// reminders sent.
func RemindIncompleteBoxes(db *gorm.DB, now time.Time) (int, error) {
	week := weeks.NextWeek(now)

	var profiles []models.Profile
	if err := db.
		Where("subscription_status = ? AND status = ?", models.SubscriptionActive, models.AccountActive).
		Find(&profiles).Error; err != nil {
		return 0, err
	}

	sent := 0
	for _, profile := range profiles {
		if isPaused(profile, week) {
			continue
		}

		bx, err := store.LoadCart(db, profile.UserID)
		if err != nil {
			logger.Log.Errorf("[SCHEDULER] Error loading cart for user %d: %v", profile.UserID, err)
			continue
		}
		if bx.IsComplete(profile.RecipesPerWeek) {
			continue
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", profile.UserID, false).First(&user).Error; err != nil {
			logger.Log.Errorf("[SCHEDULER] Error fetching user %d: %v", profile.UserID, err)
			continue
		}

		if err := SendBoxReminderEmail(user.Email, user.Name, week, bx.DistinctCount(), profile.RecipesPerWeek); err != nil {
			continue
		}
		sent++
		logger.Log.Infof("[SCHEDULER] Sent box reminder for %s to %s", week, user.Email)
	}
	return sent, nil
}

func isPaused(profile models.Profile, week string) bool {
	for _, w := range profile.PausedWeeks {
		if w == week {
			return true
		}
	}
	return false
}
