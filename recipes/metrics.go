package recipes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var votesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "gourmet_recipe_votes_total",
	Help: "Votes recorded on recipes.",
})
