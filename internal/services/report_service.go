package services

import (
	"context"
	"errors"
	"log"
	"time"

	"restopos/internal/caching"
	"restopos/internal/common"
	"restopos/internal/models"
	"restopos/internal/repositories"

	"github.com/shopspring/decimal"
)

// Items with less than this share of their stock sold since the cutoff are
// reported as excess.
const excessPercentThreshold = 10.0

const xReportCacheTTL = time.Minute

// ReportService produces the read-only aggregations and the X/Z register
// reports.
type ReportService interface {
	SalesReport(ctx context.Context, start, end time.Time) ([]models.SalesReportRow, error)
	RestockReport(ctx context.Context, threshold int) ([]*models.InventoryItem, error)
	ExcessReport(ctx context.Context, since time.Time) ([]models.ExcessReportRow, error)
	XReport(ctx context.Context, restaurantID int64) (*models.XReport, error)
	// ZReport persists an immutable close-out snapshot and returns it. When
	// the insert fails the returned report carries total_sales = -1 alongside
	// the error, preserving the register's sentinel contract.
	ZReport(ctx context.Context, restaurantID int64) (*models.ZReport, error)
}

type reportService struct {
	reportRepo    repositories.ReportRepository
	inventoryRepo repositories.InventoryRepository
	cacheService  caching.CacheService
}

func NewReportService(reportRepo repositories.ReportRepository, inventoryRepo repositories.InventoryRepository, cacheService caching.CacheService) ReportService {
	return &reportService{
		reportRepo:    reportRepo,
		inventoryRepo: inventoryRepo,
		cacheService:  cacheService,
	}
}

func (s *reportService) SalesReport(ctx context.Context, start, end time.Time) ([]models.SalesReportRow, error) {
	if end.Before(start) {
		return nil, common.Validationf("end date precedes start date")
	}
	report, err := s.reportRepo.SalesReport(ctx, start, end)
	if err != nil {
		return nil, common.Persistence("sales report", err)
	}
	return report, nil
}

func (s *reportService) RestockReport(ctx context.Context, threshold int) ([]*models.InventoryItem, error) {
	items, err := s.reportRepo.RestockReport(ctx, threshold)
	if err != nil {
		return nil, common.Persistence("restock report", err)
	}
	return items, nil
}

// ExcessReport lists inventory items with under 10% of their stock sold since
// the cutoff. Items with no recorded sales at all are included at 0%.
func (s *reportService) ExcessReport(ctx context.Context, since time.Time) ([]models.ExcessReportRow, error) {
	sales, err := s.reportRepo.InventorySalesSince(ctx, since)
	if err != nil {
		return nil, common.Persistence("inventory sales since timestamp", err)
	}

	sold := make(map[int64]bool, len(sales))
	var out []models.ExcessReportRow

	for _, row := range sales {
		sold[row.InventoryID] = true
		percent := percentageSold(row.TotalSold, row.Quantity)
		if percent < excessPercentThreshold {
			out = append(out, models.ExcessReportRow{
				InventoryID:    row.InventoryID,
				Name:           row.Name,
				Quantity:       row.Quantity,
				PercentageSold: percent,
			})
		}
	}

	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, common.Persistence("list inventory for excess report", err)
	}
	for _, item := range items {
		if !sold[item.InventoryID] {
			out = append(out, models.ExcessReportRow{
				InventoryID:    item.InventoryID,
				Name:           item.Name,
				Quantity:       item.Quantity,
				PercentageSold: 0,
			})
		}
	}
	return out, nil
}

// XReport reports revenue since the restaurant's last Z close-out, falling
// back to today's revenue when no Z report exists. Type records which branch
// was taken.
func (s *reportService) XReport(ctx context.Context, restaurantID int64) (*models.XReport, error) {
	if cached, err := s.cacheService.GetXReport(ctx, restaurantID); err == nil {
		return cached, nil
	}

	report := &models.XReport{RestaurantID: restaurantID}

	latest, err := s.reportRepo.LatestZReportDate(ctx, restaurantID)
	switch {
	case err == nil:
		total, err := s.reportRepo.TotalSalesSinceLastZ(ctx, restaurantID)
		if err != nil {
			return nil, common.Persistence("total sales since last z report", err)
		}
		report.ReportDate = latest
		report.TotalSales = total
		report.Type = models.XReportSinceLastZ
	case errors.Is(err, repositories.ErrNoZReports):
		total, err := s.reportRepo.TotalSalesToday(ctx, restaurantID)
		if err != nil {
			return nil, common.Persistence("total sales for today", err)
		}
		report.TotalSales = total
		report.Type = models.XReportSalesToday
	default:
		return nil, common.Persistence("latest z report date", err)
	}

	if err := s.cacheService.SetXReport(ctx, report, xReportCacheTTL); err != nil {
		log.Printf("Failed to cache x report for restaurant %d: %v", restaurantID, err)
	}
	log.Printf("X Report - Total Sales: %s", report.TotalSales)
	return report, nil
}

func (s *reportService) ZReport(ctx context.Context, restaurantID int64) (*models.ZReport, error) {
	totalSales, err := s.reportRepo.TotalSalesToday(ctx, restaurantID)
	if err != nil {
		return sentinelZReport(restaurantID), common.Persistence("total sales for today", err)
	}

	report, err := s.reportRepo.InsertZReport(ctx, totalSales, restaurantID)
	if err != nil {
		return sentinelZReport(restaurantID), common.Persistence("save z report", err)
	}

	// The close-out resets the X report window.
	if err := s.cacheService.DeleteXReport(ctx, restaurantID); err != nil {
		log.Printf("Failed to evict x report cache for restaurant %d: %v", restaurantID, err)
	}
	log.Printf("Z Report %d saved - Total Sales: %s", report.ReportID, report.TotalSales)
	return report, nil
}

func sentinelZReport(restaurantID int64) *models.ZReport {
	return &models.ZReport{
		ReportID:     -1,
		TotalSales:   decimal.NewFromInt(-1),
		RestaurantID: restaurantID,
	}
}

func percentageSold(totalSold int64, quantity int) float64 {
	denom := float64(totalSold) + float64(quantity)
	if denom == 0 {
		return 0
	}
	return float64(totalSold) / denom * 100
}
