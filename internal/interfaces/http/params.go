package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate interpreta YYYY-MM-DD en hora local. Con endOfDay el resultado es el último
// instante del día, así el fin del rango es inclusivo.
func parseDate(key, value string, endOfDay bool) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, domain.Errorf(domain.ErrInvalidInput, "%s must be a date in YYYY-MM-DD format", key)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

// requiredDateRange lee un par de fechas obligatorias.
func requiredDateRange(c *fiber.Ctx, startKey, endKey string) (time.Time, time.Time, error) {
	startRaw, endRaw := c.Query(startKey), c.Query(endKey)
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, domain.Errorf(domain.ErrInvalidInput, "%s and %s are required", startKey, endKey)
	}
	start, err := parseDate(startKey, startRaw, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(endKey, endRaw, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// optionalDate devuelve nil si el parámetro no viene.
func optionalDate(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(key, raw, endOfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryInt lee un entero de 32 bits (las columnas de cantidades son INTEGER); def si el
// parámetro no viene.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.Errorf(domain.ErrInvalidInput, "%s must be an integer", key)
	}
	return int(n), nil
}

// queryDecimal lee un decimal; cero si el parámetro no viene.
func queryDecimal(c *fiber.Ctx, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.Errorf(domain.ErrInvalidInput, "%s must be a number", key)
	}
	return d, nil
}
