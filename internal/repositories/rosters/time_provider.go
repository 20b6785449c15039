package rosters

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockrosters -source=time_provider.go

// TimeProvider stamps CreatedAt/UpdatedAt
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// NewTimeProvider returns the wall-clock TimeProvider
func NewTimeProvider() TimeProvider {
	return realTimeProvider{}
}
