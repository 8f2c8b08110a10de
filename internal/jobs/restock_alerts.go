package jobs

import (
	"context"
	"log"

	"restopos/internal/models"
	"restopos/internal/repositories"
)

const defaultRestockThreshold = 10

// RestockAlertService periodically surfaces inventory items at or below the
// restock threshold.
type RestockAlertService struct {
	reportRepo repositories.ReportRepository
	threshold  int
}

func NewRestockAlertService(reportRepo repositories.ReportRepository, threshold int) *RestockAlertService {
	if threshold <= 0 {
		threshold = defaultRestockThreshold
	}
	return &RestockAlertService{
		reportRepo: reportRepo,
		threshold:  threshold,
	}
}

// CheckLowStock returns every inventory item whose quantity is at or below
// the configured threshold, lowest first.
func (a *RestockAlertService) CheckLowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := a.reportRepo.RestockReport(ctx, a.threshold)
	if err != nil {
		log.Printf("Failed to run restock report: %v", err)
		return nil, err
	}
	return items, nil
}

// LogLowStockAlerts writes the alert lines for the kitchen log.
func (a *RestockAlertService) LogLowStockAlerts(items []*models.InventoryItem) {
	if len(items) == 0 {
		log.Println("No low stock alerts to log")
		return
	}

	log.Printf("Low stock alerts (threshold %d):", a.threshold)
	for _, item := range items {
		log.Printf("- Ingredient '%s' has %d units remaining", item.Name, item.Quantity)
	}
}

// ScheduledLowStockCheck is the periodic entry point used by the scheduler.
func (a *RestockAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	log.Println("Starting scheduled low stock check")

	items, err := a.CheckLowStock(ctx)
	if err != nil {
		log.Printf("Scheduled low stock check failed: %v", err)
		return err
	}
	a.LogLowStockAlerts(items)

	log.Println("Scheduled low stock check completed successfully")
	return nil
}
