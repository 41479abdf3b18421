package cart

import "github.com/prometheus/client_golang/prometheus"

var (
	cartItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_items",
			Help: "Number of distinct products in the cart",
		},
	)

	cartUnits = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_units",
			Help: "Sum of quantities of all products in the cart",
		},
	)

	cartPersistWritesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_persist_writes_total",
			Help: "Total number of successful cart snapshot writes",
		},
	)

	cartPersistFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_persist_failures_total",
			Help: "Total number of failed cart snapshot writes",
		},
	)

	cartLoadTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_load_total",
			Help: "Initial cart loads by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		cartItems,
		cartUnits,
		cartPersistWritesTotal,
		cartPersistFailuresTotal,
		cartLoadTotal,
	)
}

func observeCart(s *Store) {
	units := 0
	for _, p := range s.products {
		units += p.Quantity
	}

	cartItems.Set(float64(len(s.products)))
	cartUnits.Set(float64(units))
}
