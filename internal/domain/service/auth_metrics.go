package service

import "arena/internal/domain/entity"

// AuthMetrics records authentication outcomes.
type AuthMetrics interface {
	ObserveFederation(source entity.AuthSource, result entity.ResultCode)
	ObserveLogin(result entity.ResultCode)
	ObserveTOTP(operation string, result entity.ResultCode)
}

// NopAuthMetrics discards every observation.
type NopAuthMetrics struct{}

func (NopAuthMetrics) ObserveFederation(entity.AuthSource, entity.ResultCode) {}
func (NopAuthMetrics) ObserveLogin(entity.ResultCode)                         {}
func (NopAuthMetrics) ObserveTOTP(string, entity.ResultCode)                  {}
