package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "weddingplanner/database/repository/bookings"
	cartRepo "weddingplanner/database/repository/carts"
	reviewRepo "weddingplanner/database/repository/reviews"
	userRepo "weddingplanner/database/repository/users"
	"weddingplanner/models"
	"weddingplanner/utils"

	"go.uber.org/zap"
)

// Revenue is derived from order volume at a fixed unit price; growth
// percentages and the probability figure are presentation constants.
const orderUnitPrice = 150

const cacheKeyPrefix = "dashboardStats:"

// StatsService computes the role-gated dashboard metrics.
type StatsService interface {
	Dashboard(ctx context.Context, email string) (*models.DashboardStats, error)
}

// DefaultStatsService is the production implementation. Cache is optional;
// when set, computed stats are reused for CacheTTL.
type DefaultStatsService struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Reviews  reviewRepo.ReviewRepository
	Carts    cartRepo.CartRepository
	Cache    Cache
	CacheTTL time.Duration
}

func (s *DefaultStatsService) Dashboard(ctx context.Context, email string) (*models.DashboardStats, error) {
	if cached := s.fromCache(ctx, email); cached != nil {
		return cached, nil
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// An unknown email is treated as a plain user with zero counts, never
	// an error.
	var result *models.DashboardStats
	if user != nil && user.Role == models.RoleAdmin {
		result, err = s.adminStats(ctx)
	} else {
		result, err = s.userStats(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, email, result)
	return result, nil
}

func (s *DefaultStatsService) adminStats(ctx context.Context) (*models.DashboardStats, error) {
	totalOrders, err := s.Bookings.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	totalReviews, err := s.Reviews.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	cartSum, err := s.Carts.SumItemCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		Role:  models.RoleAdmin,
		Title: "Platform Executive Overview",
		Metrics: []models.Metric{
			{Label: "Total Revenue", Value: fmt.Sprintf("$%d", totalOrders*orderUnitPrice), Growth: "+12.5%", Color: "blue"},
			{Label: "Active Clients", Value: totalUsers, Growth: "+5.2%", Color: "purple"},
			{Label: "Total Packages", Value: totalOrders, Growth: "+2.1%", Color: "green"},
			{Label: "Client Reviews", Value: totalReviews, Growth: "+8.4%", Color: "yellow"},
		},
		Probability: "82%",
		ChartData: models.ChartData{
			Orders:  totalOrders,
			Reviews: totalReviews,
			Carts:   cartSum,
		},
	}, nil
}

func (s *DefaultStatsService) userStats(ctx context.Context, email string) (*models.DashboardStats, error) {
	userOrders, err := s.Bookings.CountOrdersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	userReviews, err := s.Reviews.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	cart, err := s.Carts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	var cartItems int64
	if cart != nil {
		cartItems = int64(len(cart.CartItems))
	}

	return &models.DashboardStats{
		Role:  models.RoleUser,
		Title: "Wedding Planning Progress",
		Metrics: []models.Metric{
			{Label: "My Bookings", Value: userOrders, Growth: "Active", Color: "blue"},
			{Label: "Cart Items", Value: cartItems, Growth: "Pending", Color: "green"},
			{Label: "My Feedback", Value: userReviews, Growth: "Submitted", Color: "yellow"},
			{Label: "Planning Score", Value: "88%", Growth: "High", Color: "purple"},
		},
		Probability: "92%",
		ChartData: models.ChartData{
			Orders:  userOrders,
			Reviews: userReviews,
			Carts:   cartItems,
		},
	}, nil
}

// fromCache returns nil on a miss or any cache failure; stats are always
// recomputable from the store.
func (s *DefaultStatsService) fromCache(ctx context.Context, email string) *models.DashboardStats {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return nil
	}
	data, err := s.Cache.Get(ctx, cacheKeyPrefix+email)
	if err != nil {
		utils.GetLogger().Warn("stats cache read failed", zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}
	var cached models.DashboardStats
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *DefaultStatsService) toCache(ctx context.Context, email string, stats *models.DashboardStats) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKeyPrefix+email, data, s.CacheTTL); err != nil {
		utils.GetLogger().Warn("stats cache write failed", zap.Error(err))
	}
}
