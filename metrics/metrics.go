package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the payroll counters on a private registry so that several
// apps (as in tests) can live in one process.
type Metrics struct {
	Registry           *prometheus.Registry
	RecordsCreated     *prometheus.CounterVec
	SalaryCalculations *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RecordsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_records_created_total",
			Help: "Records inserted, by kind (admin, member, earning).",
		}, []string{"kind"}),
		SalaryCalculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_salary_calculations_total",
			Help: "Salary calculations, by result (ok, not_found, error).",
		}, []string{"result"}),
	}
	m.Registry.MustRegister(m.RecordsCreated, m.SalaryCalculations)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
