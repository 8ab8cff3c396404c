package helper

import (
	"context"
	"lottery_manager/database"
	"lottery_manager/utils"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var (
	healthCron     *cron.Cron
	statsScheduler gocron.Scheduler

	healthMu   sync.Mutex
	lastStatus string
)

// StartHealthScheduler ping database mỗi phút, chỉ log khi trạng thái thay đổi
func StartHealthScheduler() error {
	healthCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := healthCron.AddFunc("@every 1m", func() { CheckDatabaseHealth() }); err != nil {
		return err
	}
	healthCron.Start()
	utils.Log.WithField("job", "db-health").Info("scheduler started (every 1m)")
	return nil
}

// CheckDatabaseHealth returns the current status and whether it differs from the previous probe.
func CheckDatabaseHealth() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	status := database.Status(ctx)

	healthMu.Lock()
	changed := status != lastStatus
	previous := lastStatus
	lastStatus = status
	healthMu.Unlock()

	if changed {
		entry := utils.Log.WithFields(logrus.Fields{"job": "db-health", "from": previous, "to": status})
		if status == database.STATUS_DOWN {
			entry.Warn("database status changed")
		} else {
			entry.Info("database status changed")
		}
	}
	return status, changed
}

// StartStatsScheduler logs ticket counts per status every day at 00:05.
func StartStatsScheduler() error {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return err
	}
	statsScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(LogTicketStats),
	)
	if err != nil {
		return err
	}

	s.Start()
	utils.Log.WithField("job", "ticket-stats").Info("scheduler started (daily 00:05)")
	return nil
}

func LogTicketStats() {
	if !database.Configured() {
		return
	}
	stats, err := CountTicketsByStatus(database.DB)
	if err != nil {
		utils.Log.WithField("job", "ticket-stats").Errorf("cannot count tickets: %v", err)
		return
	}
	utils.Log.WithFields(logrus.Fields{
		"job":       "ticket-stats",
		"pending":   stats.Pending,
		"confirmed": stats.Confirmed,
		"rejected":  stats.Rejected,
		"total":     stats.Total,
	}).Info("daily ticket stats")
}

func StopSchedulers() {
	if healthCron != nil {
		healthCron.Stop()
	}
	if statsScheduler != nil {
		if err := statsScheduler.Shutdown(); err != nil {
			utils.Log.Errorf("cannot stop stats scheduler: %v", err)
		}
	}
	utils.Log.Info("schedulers stopped")
}
