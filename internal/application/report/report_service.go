package report

import (
	"context"
	"time"

	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/shopspring/decimal"
)

// DashboardFilter selects the reporting period. A zero From defaults to the
// start of the current month, a zero To defaults to now.
type DashboardFilter struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// DashboardResponse is the admin dashboard summary for a period. The two
// estimate maps are fixed proportional splits of the period counts, not
// measured data.
type DashboardResponse struct {
	From                         time.Time        `json:"from"`
	To                           time.Time        `json:"to"`
	Revenue                      decimal.Decimal  `json:"revenue"`
	OrderCount                   int64            `json:"order_count"`
	RepairCount                  int64            `json:"repair_count"`
	AverageOrderValue            decimal.Decimal  `json:"average_order_value"`
	OrdersByStatus               map[string]int64 `json:"orders_by_status"`
	OrdersByType                 map[string]int64 `json:"orders_by_type"`
	RepairsByStatus              map[string]int64 `json:"repairs_by_status"`
	CustomerDemographicsEstimate map[string]int64 `json:"customer_demographics_estimate"`
	RepairSatisfactionEstimate   map[string]int64 `json:"repair_satisfaction_estimate"`
}

// ReportService aggregates order and repair figures for the admin dashboard
type ReportService struct {
	orderRepo  ordering.Repository
	repairRepo repair.Repository
}

// NewReportService creates a new ReportService
func NewReportService(orderRepo ordering.Repository, repairRepo repair.Repository) *ReportService {
	return &ReportService{
		orderRepo:  orderRepo,
		repairRepo: repairRepo,
	}
}

var orderStatuses = []ordering.Status{
	ordering.StatusPending,
	ordering.StatusConfirmed,
	ordering.StatusProcessing,
	ordering.StatusShipped,
	ordering.StatusDelivered,
	ordering.StatusCancelled,
}

var orderTypes = []ordering.OrderType{
	ordering.OrderTypePCBuild,
	ordering.OrderTypePS5Controller,
	ordering.OrderTypeProduct,
	ordering.OrderTypeGiftCard,
}

var repairStatuses = []repair.Status{
	repair.StatusPending,
	repair.StatusReceived,
	repair.StatusDiagnosing,
	repair.StatusInProgress,
	repair.StatusCompleted,
	repair.StatusReadyForPickup,
	repair.StatusCancelled,
}

// Dashboard returns the summary for the requested period. Revenue only
// counts delivered and shipped order totals.
func (s *ReportService) Dashboard(ctx context.Context, filter DashboardFilter) (*DashboardResponse, error) {
	from, to := normalizePeriod(filter)

	revenue, err := s.orderRepo.RevenueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orderRepo.CountBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	repairCount, err := s.repairRepo.CountBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	ordersByStatus := make(map[string]int64, len(orderStatuses))
	for _, status := range orderStatuses {
		n, err := s.orderRepo.CountByStatus(ctx, status, from, to)
		if err != nil {
			return nil, err
		}
		ordersByStatus[status.String()] = n
	}

	ordersByType := make(map[string]int64, len(orderTypes))
	for _, orderType := range orderTypes {
		n, err := s.orderRepo.CountByType(ctx, orderType, from, to)
		if err != nil {
			return nil, err
		}
		ordersByType[orderType.String()] = n
	}

	repairsByStatus := make(map[string]int64, len(repairStatuses))
	for _, status := range repairStatuses {
		n, err := s.repairRepo.CountByStatus(ctx, status, from, to)
		if err != nil {
			return nil, err
		}
		repairsByStatus[status.String()] = n
	}

	revenueOrders := ordersByStatus[ordering.StatusShipped.String()] +
		ordersByStatus[ordering.StatusDelivered.String()]
	averageOrderValue := decimal.Zero
	if revenueOrders > 0 {
		averageOrderValue = revenue.DivRound(decimal.NewFromInt(revenueOrders), 2)
	}

	return &DashboardResponse{
		From:                         from,
		To:                           to,
		Revenue:                      revenue,
		OrderCount:                   orderCount,
		RepairCount:                  repairCount,
		AverageOrderValue:            averageOrderValue,
		OrdersByStatus:               ordersByStatus,
		OrdersByType:                 ordersByType,
		RepairsByStatus:              repairsByStatus,
		CustomerDemographicsEstimate: proportionalSplit(orderCount, demographicShares),
		RepairSatisfactionEstimate:   proportionalSplit(repairCount, satisfactionShares),
	}, nil
}

// The dashboard has no real demographic or satisfaction sources. These shares
// mirror the placeholder splits the dashboard always showed, so the figures
// are estimates derived from the period counts.
var demographicShares = []share{
	{"18-24", 0.20},
	{"25-34", 0.40},
	{"35-44", 0.25},
	{"45+", 0.15},
}

var satisfactionShares = []share{
	{"satisfied", 0.70},
	{"neutral", 0.20},
	{"unsatisfied", 0.10},
}

type share struct {
	label   string
	portion float64
}

func proportionalSplit(total int64, shares []share) map[string]int64 {
	split := make(map[string]int64, len(shares))
	for _, s := range shares {
		split[s.label] = int64(float64(total) * s.portion)
	}
	return split
}

func normalizePeriod(filter DashboardFilter) (time.Time, time.Time) {
	to := filter.To
	if to.IsZero() {
		to = time.Now()
	}
	from := filter.From
	if from.IsZero() {
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	}
	return from, to
}
