// Package metrics defines the sink contract the scheduling engine uses
// to report run outcomes. Concrete exporters live under infra/metrics.
package metrics
