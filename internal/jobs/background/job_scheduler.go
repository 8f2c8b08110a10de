package background

import (
	"context"
	"log"
	"sync"
	"time"

	"restopos/internal/jobs"
	"restopos/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages the periodic background jobs: low-stock checks and
// restaurant revenue refreshes.
type JobScheduler struct {
	scheduler      gocron.Scheduler
	alertSvc       *jobs.RestockAlertService
	restaurantRepo repositories.RestaurantRepository
	jobs           map[string]gocron.Job
	mu             sync.RWMutex
}

// NewJobScheduler creates a new job scheduler. checkInterval controls how
// often the low-stock check runs.
func NewJobScheduler(alertSvc *jobs.RestockAlertService, restaurantRepo repositories.RestaurantRepository, checkInterval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:      scheduler,
		alertSvc:       alertSvc,
		restaurantRepo: restaurantRepo,
		jobs:           make(map[string]gocron.Job),
	}

	js.registerJobs(checkInterval)

	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs(checkInterval time.Duration) {
	restockJob, err := js.scheduler.NewJob(
		gocron.DurationJob(checkInterval),
		gocron.NewTask(js.alertSvc.ScheduledLowStockCheck, context.Background()),
		gocron.WithName("restock-low-stock-check"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create restock check job: %v", err)
	} else {
		js.setJob("restock", restockJob)
	}

	revenueJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.refreshRestaurantRevenue, context.Background()),
		gocron.WithName("restaurant-revenue-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create revenue refresh job: %v", err)
	} else {
		js.setJob("revenue", revenueJob)
	}
}

func (js *JobScheduler) setJob(name string, job gocron.Job) {
	js.mu.Lock()
	defer js.mu.Unlock()
	js.jobs[name] = job
}

// refreshRestaurantRevenue recomputes the stored revenue of every restaurant
// from the orders table.
func (js *JobScheduler) refreshRestaurantRevenue(ctx context.Context) {
	restaurants, err := js.restaurantRepo.List(ctx)
	if err != nil {
		log.Printf("Failed to list restaurants for revenue refresh: %v", err)
		return
	}

	for _, restaurant := range restaurants {
		if err := js.restaurantRepo.UpdateRevenue(ctx, restaurant.RestaurantID); err != nil {
			log.Printf("Failed to refresh revenue for restaurant %d: %v", restaurant.RestaurantID, err)
		}
	}
}
