package bot

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")

	searchNodes, _ = meter.Int64Histogram("search.nodes",
		metric.WithDescription("Positions visited by one minimax search"))
	searchDuration, _ = meter.Float64Histogram("search.duration",
		metric.WithDescription("Wall time of one minimax search"),
		metric.WithUnit("ms"))
)
