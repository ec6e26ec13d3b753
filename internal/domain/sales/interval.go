package sales

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/ventas-api/internal/domain"
)

// Intervalos fijos para reportes rápidos. monthly y yearly son aproximaciones de longitud
// fija (30 y 365 días), no meses ni años de calendario.
var intervals = []struct {
	name     string
	duration time.Duration
}{
	{"daily", 24 * time.Hour},
	{"weekly", 7 * 24 * time.Hour},
	{"monthly", 30 * 24 * time.Hour},
	{"yearly", 365 * 24 * time.Hour},
}

var folder = cases.Fold()

// IntervalNames devuelve los nombres válidos en orden.
func IntervalNames() []string {
	names := make([]string, 0, len(intervals))
	for _, it := range intervals {
		names = append(names, it.name)
	}
	return names
}

// ParseInterval resuelve el nombre (sin distinguir mayúsculas) a su duración.
func ParseInterval(name string) (time.Duration, error) {
	key := folder.String(strings.TrimSpace(name))
	for _, it := range intervals {
		if it.name == key {
			return it.duration, nil
		}
	}
	return 0, domain.Errorf(domain.ErrInvalidInput,
		"Interval value not defined. possible choices are: %s", strings.Join(IntervalNames(), ","))
}

// Window devuelve [now - d, now] para el intervalo indicado.
func Window(name string, now time.Time) (start, end time.Time, err error) {
	d, err := ParseInterval(name)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return now.Add(-d), now, nil
}
