package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	HTTP      HTTPConfig
	Inventory InventoryConfig
	Kafka     KafkaConfig
	Receipt   ReceiptConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres, memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host    string
	Port    int
	Swagger bool // sirve /docs con docs/swagger.json
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryConfig constantes de negocio del inventario.
type InventoryConfig struct {
	LowStockLimit int // stock < LowStockLimit => low_stock
	SKULength     int // largo del SKU generado cuando no se envía
}

// KafkaConfig publicación de eventos. Sin brokers no se publica nada.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled indica si hay brokers configurados.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

// ReceiptConfig datos impresos en el recibo PDF.
type ReceiptConfig struct {
	StoreName string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, HTTP_PORT, KAFKA_BROKERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ventas-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", DriverPostgres)),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "ventas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host:    getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:    getInt(v, "HTTP_PORT", 8080),
			Swagger: getBool(v, "HTTP_SWAGGER", true),
		},
		Inventory: InventoryConfig{
			LowStockLimit: getInt(v, "INVENTORY_LOW_STOCK_LIMIT", 30),
			SKULength:     getInt(v, "INVENTORY_SKU_LENGTH", 4),
		},
		Kafka: KafkaConfig{
			Brokers: getList(v, "KAFKA_BROKERS"),
			Topic:   getString(v, "KAFKA_TOPIC", "inventory-events"),
		},
		Receipt: ReceiptConfig{
			StoreName: getString(v, "RECEIPT_STORE_NAME", "Ventas"),
		},
	}

	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverMemory {
		return nil, fmt.Errorf("DB_DRIVER inválido: %q (postgres|memory)", cfg.DB.Driver)
	}
	if cfg.Inventory.SKULength <= 0 {
		return nil, fmt.Errorf("INVENTORY_SKU_LENGTH debe ser positivo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

// getList separa un valor "a,b,c" ignorando espacios y elementos vacíos.
func getList(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v.GetString(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
