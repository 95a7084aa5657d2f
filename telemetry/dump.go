package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteText gathers every metric from g and writes it to w in the
// Prometheus text exposition format. The CLI uses it to dump metrics
// after a batch run instead of serving /metrics.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("WriteText: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("WriteText: %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
