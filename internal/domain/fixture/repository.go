package fixture

import (
	"context"
	"time"
)

// Source fetches a day's fixtures from the sports-data provider. The date is
// interpreted in its own location.
type Source interface {
	FetchByDate(ctx context.Context, date time.Time) ([]Fixture, error)
}
