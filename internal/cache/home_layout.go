package cache

import (
	"context"
	"time"

	"github.com/mercadoclone/api/internal/service"
)

const homeLayoutKey = "home:layout"

// GetHomeLayout reads the cached homepage aggregate, reporting a hit.
func GetHomeLayout(ctx context.Context) (*service.HomeLayout, bool, error) {
	var layout service.HomeLayout
	hit, err := GetJSON(ctx, homeLayoutKey, &layout)
	if err != nil || !hit {
		return nil, false, err
	}
	return &layout, true, nil
}

// SetHomeLayout caches the homepage aggregate for ttl.
func SetHomeLayout(ctx context.Context, layout *service.HomeLayout, ttl time.Duration) error {
	if layout == nil || ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, homeLayoutKey, layout, ttl)
}

// InvalidateHomeLayout drops the cached aggregate after a back-office
// layout change.
func InvalidateHomeLayout(ctx context.Context) error {
	return Del(ctx, homeLayoutKey)
}
