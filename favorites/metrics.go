package favorites

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gourmet_favorite_mutations_total",
	Help: "Successful favorite additions and removals.",
}, []string{"collection", "op"})
