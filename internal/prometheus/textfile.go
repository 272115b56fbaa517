// Package prometheus exposes dye counts in the Prometheus text format, for
// node_exporter's textfile collector.
package prometheus

import (
	"fmt"
	"io"

	"github.com/akasprzok/litedye/internal/dye"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "litedye"

// NewRegistry registers a gauge per color of demand, and per color of dyes
// labelled with the mode that produced them.
func NewRegistry(demand, dyes dye.Counts, mode dye.Mode) (*prom.Registry, error) {
	demandGauge := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "color_demand_units",
		Help:      "Dyes needed per color to craft every missing dyeable block.",
	}, []string{"color"})
	dyeGauge := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "dye_units",
		Help:      "Dye ingredients needed per color after decomposition.",
	}, []string{"color", "mode"})

	for color, count := range demand {
		demandGauge.WithLabelValues(color.String()).Set(float64(count))
	}
	for color, count := range dyes {
		dyeGauge.WithLabelValues(color.String(), mode.String()).Set(float64(count))
	}

	registry := prom.NewPedanticRegistry()
	for _, c := range []prom.Collector{demandGauge, dyeGauge} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return registry, nil
}

// WriteTextfile writes the counts to w in the Prometheus text format.
func WriteTextfile(w io.Writer, demand, dyes dye.Counts, mode dye.Mode) error {
	registry, err := NewRegistry(demand, dyes, mode)
	if err != nil {
		return err
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("encoding %s: %w", family.GetName(), err)
		}
	}
	return nil
}
