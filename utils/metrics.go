package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IngredientsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingredients_created_total",
		Help: "Number of ingredient records created, at top level or inline.",
	})

	MealsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meals_created_total",
		Help: "Number of meals successfully created.",
	})
)
