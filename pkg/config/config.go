package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Data   DataConfig
	Export ExportConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DataConfig ubicación de las fuentes de entrada.
type DataConfig struct {
	Root          string
	IncomingDir   string // relativo a Root salvo que sea absoluto
	CatalogFile   string
	StockFile     string
	SuppliersFile string
}

// IncomingPath devuelve el directorio donde se dejan los extractos.
func (c DataConfig) IncomingPath() string {
	return resolve(c.Root, c.IncomingDir)
}

// CatalogPath ruta del catálogo de artículos.
func (c DataConfig) CatalogPath() string { return resolve(c.IncomingPath(), c.CatalogFile) }

// StockPath ruta del extracto de stock por almacén.
func (c DataConfig) StockPath() string { return resolve(c.IncomingPath(), c.StockFile) }

// SuppliersPath ruta del directorio de proveedores.
func (c DataConfig) SuppliersPath() string { return resolve(c.IncomingPath(), c.SuppliersFile) }

// ExportConfig destino de los exports por centro.
type ExportConfig struct {
	OutputRoot   string // <OutputRoot>/<centro>/<FileName>
	FileName     string
	OverridesDir string // <OverridesDir>/{ean,images}/<centro>.json
	PDF          bool   // además escribe <centro>/Articulos.pdf
}

// JWTConfig configuración de JWT. Secret vacío = webhooks sin autenticación.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_ROOT, OUTPUT_ROOT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	root := getString(v, "DATA_ROOT", ".")
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "articulos-centros"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			Root:          root,
			IncomingDir:   getString(v, "INCOMING_DIR", "imports"),
			CatalogFile:   getString(v, "CATALOG_FILE", "base_articulos.csv"),
			StockFile:     getString(v, "STOCK_FILE", "stock_por_almacen.csv"),
			SuppliersFile: getString(v, "SUPPLIERS_FILE", "lista_proveedores.csv"),
		},
		Export: ExportConfig{
			OutputRoot:   getString(v, "OUTPUT_ROOT", root),
			FileName:     getString(v, "EXPORT_FILE", "Articulos.csv"),
			OverridesDir: getString(v, "OVERRIDES_DIR", filepath.Join(root, "overrides")),
			PDF:          getBool(v, "EXPORT_PDF", false),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "articulos-centros"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for key, val := range map[string]string{
		"CATALOG_FILE":   c.Data.CatalogFile,
		"STOCK_FILE":     c.Data.StockFile,
		"SUPPLIERS_FILE": c.Data.SuppliersFile,
		"EXPORT_FILE":    c.Export.FileName,
	} {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("config: %s no puede estar vacío", key)
		}
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	return nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
